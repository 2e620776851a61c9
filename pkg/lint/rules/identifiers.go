package rules

import (
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/jsast"
	"github.com/yaklabco/gojscs/pkg/lint"
)

// CaseMapper upper-cases an identifier.
type CaseMapper func(s string) string

// unicodeUpper maps with Unicode rules. Casers keep state, so each call
// builds its own.
func unicodeUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// identMatcher matches an identifier part either literally or with an
// ECMAScript pattern written as "/source/". Exception patterns are not
// anchored.
type identMatcher struct {
	literal string
	re      *regexp2.Regexp
}

func newIdentMatcher(spec, anchor string) (identMatcher, error) {
	if len(spec) > 2 && strings.HasPrefix(spec, "/") && strings.HasSuffix(spec, "/") {
		source := spec[1 : len(spec)-1]
		var pattern string
		switch anchor {
		case "prefix":
			pattern = "^(?:" + source + ")"
		case "suffix":
			pattern = "(?:" + source + ")$"
		default:
			pattern = source
		}
		re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
		if err != nil {
			return identMatcher{}, err
		}
		return identMatcher{re: re}, nil
	}
	return identMatcher{literal: spec}, nil
}

// strip removes the matched prefix or suffix from name.
func (m identMatcher) strip(name string, suffix bool) (string, bool) {
	if m.re == nil {
		if suffix {
			return strings.CutSuffix(name, m.literal)
		}
		return strings.CutPrefix(name, m.literal)
	}
	match, err := m.re.FindStringMatch(name)
	if err != nil || match == nil {
		return name, false
	}
	// Match offsets count runes.
	runes := []rune(name)
	return string(runes[:match.Index]) + string(runes[match.Index+match.Length:]), true
}

func (m identMatcher) matches(name string) bool {
	if m.re == nil {
		return name == m.literal
	}
	ok, err := m.re.MatchString(name)
	return err == nil && ok
}

// RequireCamelCaseOrUpperCaseIdentifiersRule requires identifiers to be
// camelCase or UPPER_CASE.
type RequireCamelCaseOrUpperCaseIdentifiersRule struct {
	lint.BaseRule
	upper            CaseMapper
	ignoreProperties bool
	prefixes         []identMatcher
	suffixes         []identMatcher
	exceptions       []identMatcher
}

// NewRequireCamelCaseOrUpperCaseIdentifiersRule creates the
// requireCamelCaseOrUpperCaseIdentifiers rule. A nil upper uses Unicode
// case mapping.
func NewRequireCamelCaseOrUpperCaseIdentifiersRule(upper CaseMapper) *RequireCamelCaseOrUpperCaseIdentifiersRule {
	if upper == nil {
		upper = unicodeUpper
	}
	return &RequireCamelCaseOrUpperCaseIdentifiersRule{
		BaseRule: lint.NewBaseRule("requireCamelCaseOrUpperCaseIdentifiers", "Requires identifiers to be camelCase or UPPER_CASE"),
		upper:    upper,
	}
}

// Configure accepts true, "ignoreProperties" or {ignoreProperties,
// allowedPrefixes, allowedSuffixes, allExcept}.
func (r *RequireCamelCaseOrUpperCaseIdentifiersRule) Configure(value any) error {
	r.ignoreProperties = false
	r.prefixes, r.suffixes, r.exceptions = nil, nil, nil

	if b, ok := config.AsBool(value); ok && b {
		return nil
	}
	if s, ok := config.AsString(value); ok && s == "ignoreProperties" {
		r.ignoreProperties = true
		return nil
	}

	obj, ok := config.AsSettings(value)
	if !ok {
		return r.OptionError(`requireCamelCaseOrUpperCaseIdentifiers option requires true, "ignoreProperties" or an object`)
	}

	if raw, ok := obj.Get("ignoreProperties"); ok {
		ignore, ok := config.AsBool(raw)
		if !ok {
			return r.OptionError(`requireCamelCaseOrUpperCaseIdentifiers "ignoreProperties" option requires a boolean`)
		}
		r.ignoreProperties = ignore
	}

	var err error
	if r.prefixes, err = r.matchers(obj, "allowedPrefixes", "prefix"); err != nil {
		return err
	}
	if r.suffixes, err = r.matchers(obj, "allowedSuffixes", "suffix"); err != nil {
		return err
	}
	if r.exceptions, err = r.matchers(obj, "allExcept", "exact"); err != nil {
		return err
	}
	return nil
}

func (r *RequireCamelCaseOrUpperCaseIdentifiersRule) matchers(obj *config.Settings, key, anchor string) ([]identMatcher, error) {
	raw, ok := obj.Get(key)
	if !ok {
		return nil, nil
	}
	list, ok := config.AsStringList(raw)
	if !ok {
		return nil, r.OptionError("requireCamelCaseOrUpperCaseIdentifiers %q option requires an array of strings", key)
	}
	out := make([]identMatcher, 0, len(list))
	for _, spec := range list {
		m, err := newIdentMatcher(spec, anchor)
		if err != nil {
			return nil, r.OptionError("requireCamelCaseOrUpperCaseIdentifiers %q pattern %s: %v", key, spec, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// Check reports identifiers that mix underscores with lower case.
func (r *RequireCamelCaseOrUpperCaseIdentifiersRule) Check(file *lint.File, errs *lint.Errors) {
	file.IterateTokensByType(func(tok *jsast.Token) {
		if r.valid(tok.Value) {
			return
		}
		if r.ignoreProperties && isPropertyName(file, tok) {
			return
		}
		errs.Add("All identifiers must be camelCase or UPPER_CASE", tok)
	}, jsast.TokenIdentifier)
}

func (r *RequireCamelCaseOrUpperCaseIdentifiersRule) valid(name string) bool {
	for _, m := range r.exceptions {
		if m.matches(name) {
			return true
		}
	}

	name = strings.Trim(name, "_")
	for _, m := range r.prefixes {
		if stripped, ok := m.strip(name, false); ok {
			name = stripped
			break
		}
	}
	for _, m := range r.suffixes {
		if stripped, ok := m.strip(name, true); ok {
			name = stripped
			break
		}
	}
	name = strings.Trim(name, "_")

	return !strings.Contains(name, "_") || r.upper(name) == name
}

// isPropertyName reports an identifier used as a member property or an
// object key.
func isPropertyName(file *lint.File, tok *jsast.Token) bool {
	n := file.GetNodeByRange(tok.Range.Start)
	if n == nil || n.Range.Start != tok.Range.Start {
		return false
	}
	return n.Field == "property" || n.Field == "key"
}
