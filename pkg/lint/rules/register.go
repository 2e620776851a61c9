package rules

import (
	"errors"

	"github.com/yaklabco/gojscs/pkg/lint"
)

// DefaultRules returns a fresh instance of every built-in rule.
func DefaultRules() []lint.Rule {
	return []lint.Rule{
		// Keywords and statements
		NewDisallowKeywordsRule(),
		NewRequireSpaceAfterKeywordsRule(),
		NewRequireCurlyBracesRule(),

		// Declarations
		NewDisallowMultipleVarDeclRule(),

		// Literals
		NewDisallowTrailingCommaRule(),
		NewValidateQuoteMarksRule(),

		// Whitespace and layout
		NewDisallowTrailingWhitespaceRule(),
		NewDisallowMultipleLineBreaksRule(),
		NewValidateIndentationRule(),
		NewMaximumLineLengthRule(),

		// Identifiers
		NewRequireCamelCaseOrUpperCaseIdentifiersRule(nil),
	}
}

// RegisterDefaultRules registers every built-in rule on cfg.
func RegisterDefaultRules(cfg *lint.Configuration) error {
	var errs []error
	for _, rule := range DefaultRules() {
		if err := cfg.RegisterRule(rule); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RegisterDefaults registers the built-in rules and presets on cfg.
func RegisterDefaults(cfg *lint.Configuration) error {
	return errors.Join(RegisterDefaultRules(cfg), RegisterDefaultPresets(cfg))
}

// autoFixing names the rules whose errors carry a lint.AutoFix instead of
// going through a Fixer.
var autoFixing = map[string]bool{
	"disallowTrailingWhitespace": true,
	"requireSpaceAfterKeywords":  true,
	"validateIndentation":        true,
	"validateQuoteMarks":         true,
}

// CanFix reports whether the fix phase can repair errors of rule.
func CanFix(rule lint.Rule) bool {
	return lint.Fixable(rule) || autoFixing[rule.OptionName()]
}

// examples are sample option values written by configuration templates.
var examples = map[string]any{
	"disallowKeywords":           []any{"with"},
	"disallowMultipleLineBreaks": true,
	"disallowMultipleVarDecl":    true,
	"disallowTrailingComma":      true,
	"disallowTrailingWhitespace": true,
	"maximumLineLength":          120,
	"requireCurlyBraces":         []any{"if", "else", "for", "while", "do"},
	"requireSpaceAfterKeywords":  []any{"if", "else", "for", "while", "do", "switch", "return", "try", "catch"},
	"validateIndentation":        4,
	"validateQuoteMarks":         true,

	"requireCamelCaseOrUpperCaseIdentifiers": true,
}

// Example returns a sample option value for the rule named name, or nil.
func Example(name string) any {
	return examples[name]
}
