package lint

import (
	"fmt"

	"github.com/yaklabco/gojscs/pkg/config"
)

// BaseRule provides the option name and description of a rule.
// Embed it in rule implementations.
//
// Fields are unexported to avoid stutter and name collisions with
// interface methods.
type BaseRule struct {
	name string
	desc string
}

// NewBaseRule creates a BaseRule.
func NewBaseRule(name, desc string) BaseRule {
	return BaseRule{name: name, desc: desc}
}

// OptionName returns the rule's option name.
func (r *BaseRule) OptionName() string {
	return r.name
}

// Description returns the rule's summary.
func (r *BaseRule) Description() string {
	return r.desc
}

// OptionError builds the error a rule returns for an invalid option.
func (r *BaseRule) OptionError(format string, args ...any) error {
	return &RuleConfigError{Rule: r.name, Err: fmt.Errorf(format, args...)}
}

// RequireTrue accepts only the literal true.
func (r *BaseRule) RequireTrue(value any) error {
	if b, ok := config.AsBool(value); ok && b {
		return nil
	}
	return r.OptionError("%s option requires a true value or should be removed", r.name)
}
