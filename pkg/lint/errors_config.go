package lint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/gojscs/pkg/jsast"
)

// ConfigError reports an invalid value for a built-in option.
type ConfigError struct {
	Option  string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Option == "" {
		return e.Message
	}
	return fmt.Sprintf("`%s` option %s", e.Option, e.Message)
}

// DuplicateRuleError reports a second rule registered under a taken name.
type DuplicateRuleError struct {
	Name string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("rule %q is already registered", e.Name)
}

// UnsupportedRulesError lists every settings key that named neither a
// built-in option nor a registered rule.
type UnsupportedRulesError struct {
	Names []string
}

func (e *UnsupportedRulesError) Error() string {
	return "Unsupported rules: " + strings.Join(e.Names, ", ")
}

// RuleConfigError reports a rule rejecting its option value.
type RuleConfigError struct {
	Rule string
	Err  error
}

func (e *RuleConfigError) Error() string {
	return e.Err.Error()
}

func (e *RuleConfigError) Unwrap() error {
	return e.Err
}

// ParseError reports a file that could not be parsed.
// It is a per-file fatal result, distinct from style violations.
type ParseError struct {
	Filename string
	Line     int
	Column   int
	Message  string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Filename, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(filename string, err error) *ParseError {
	pe := &ParseError{Filename: filename, Message: err.Error(), Err: err}
	var se *jsast.SyntaxError
	if errors.As(err, &se) {
		pe.Line = se.Pos.Line
		pe.Column = se.Pos.Column
		pe.Message = se.Message
	}
	return pe
}
