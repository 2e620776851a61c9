package rules

import (
	"errors"
	"strings"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/jsast"
	"github.com/yaklabco/gojscs/pkg/lint"
)

var errCommaNotFound = errors.New("trailing comma not found")

// DisallowTrailingCommaRule reports a comma after the last element of an
// object or array literal.
type DisallowTrailingCommaRule struct {
	lint.BaseRule
}

// NewDisallowTrailingCommaRule creates the disallowTrailingComma rule.
func NewDisallowTrailingCommaRule() *DisallowTrailingCommaRule {
	return &DisallowTrailingCommaRule{
		BaseRule: lint.NewBaseRule("disallowTrailingComma", "Disallows a comma after the last element of a literal"),
	}
}

// Configure accepts only true.
func (r *DisallowTrailingCommaRule) Configure(value any) error {
	return r.RequireTrue(value)
}

// Check reports the comma before a closing brace or bracket.
func (r *DisallowTrailingCommaRule) Check(file *lint.File, errs *lint.Errors) {
	file.IterateNodesByType(func(n *jsast.Node) {
		closing := file.GetLastNodeToken(n)
		if closing == nil || !(closing.IsPunctuator("}") || closing.IsPunctuator("]")) {
			return
		}
		comma := file.GetPrevToken(closing)
		if comma == nil || !comma.IsPunctuator(",") || comma.Range.Start < n.Range.Start {
			return
		}
		errs.AddWithContext(
			"Extra comma following the final element of an array or object literal",
			comma,
			comma.Range.Start,
		)
	}, jsast.TypeObjectExpression, jsast.TypeArrayExpression)
}

// Fix removes the reported comma.
func (r *DisallowTrailingCommaRule) Fix(file *lint.File, e lint.Error) error {
	start, ok := e.Additional.(int)
	if !ok {
		return errCommaNotFound
	}
	tok := file.GetTokenByRangeStart(start)
	if tok == nil || !tok.IsPunctuator(",") {
		return errCommaNotFound
	}
	file.RemoveToken(tok)
	return nil
}

const (
	doubleQuote = `"`
	singleQuote = `'`
)

// ValidateQuoteMarksRule requires string literals to use one quote mark.
type ValidateQuoteMarksRule struct {
	lint.BaseRule

	// mark is the required quote, or "" to follow the first string of
	// each file.
	mark   string
	escape bool
}

// NewValidateQuoteMarksRule creates the validateQuoteMarks rule.
func NewValidateQuoteMarksRule() *ValidateQuoteMarksRule {
	return &ValidateQuoteMarksRule{
		BaseRule: lint.NewBaseRule("validateQuoteMarks", "Requires all strings to use one quote mark"),
	}
}

// Configure accepts `"`, `'`, true or {mark, escape}.
func (r *ValidateQuoteMarksRule) Configure(value any) error {
	r.mark, r.escape = "", false

	if obj, ok := config.AsSettings(value); ok {
		raw, _ := obj.Get("mark")
		if err := r.configureMark(raw); err != nil {
			return err
		}
		if raw, ok := obj.Get("escape"); ok {
			escape, ok := config.AsBool(raw)
			if !ok {
				return r.OptionError(`validateQuoteMarks "escape" option requires a boolean`)
			}
			r.escape = escape
		}
		return nil
	}
	return r.configureMark(value)
}

func (r *ValidateQuoteMarksRule) configureMark(value any) error {
	if b, ok := config.AsBool(value); ok && b {
		return nil
	}
	if s, ok := config.AsString(value); ok && (s == doubleQuote || s == singleQuote) {
		r.mark = s
		return nil
	}
	return r.OptionError(`validateQuoteMarks accepted values are true, "\"" and "'"`)
}

// Check reports strings quoted with the wrong mark.
func (r *ValidateQuoteMarksRule) Check(file *lint.File, errs *lint.Errors) {
	tree := file.Tree()
	mark := r.mark

	file.IterateTokensByType(func(tok *jsast.Token) {
		if len(tok.Value) < 2 {
			return
		}
		if n := file.GetNodeByRange(tok.Range.Start); n != nil {
			if parent := tree.Parent(n); parent != nil && parent.Type == "jsx_attribute" {
				return
			}
		}

		used := tok.Value[:1]
		if mark == "" {
			mark = used
			return
		}
		if used == mark {
			return
		}
		body := tok.Value[1 : len(tok.Value)-1]
		if r.escape && strings.Contains(body, mark) {
			return
		}
		errs.AddWithContext("Invalid quote mark found", tok, lint.AutoFix{
			Start: tok.Range.Start,
			End:   tok.Range.End,
			Text:  requote(body, used, mark),
		})
	}, jsast.TokenString)
}

// requote rewrites a string body quoted with from so it can be quoted
// with to.
func requote(body, from, to string) string {
	var sb strings.Builder
	sb.Grow(len(body) + 2)
	sb.WriteString(to)

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body):
			next := body[i+1]
			if string(next) != from {
				sb.WriteByte(c)
			}
			sb.WriteByte(next)
			i++
		case string(c) == to:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}

	sb.WriteString(to)
	return sb.String()
}
