package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/jsast"
	"github.com/yaklabco/gojscs/pkg/lint"
)

// urlPattern matches a URL inside a comment.
var urlPattern = regexp2.MustCompile(
	`(https?|ftp):\/\/(www\.)?[-a-zA-Z0-9@:%._\+~#=]{2,256}\.[a-z]{2,6}\b([-a-zA-Z0-9@:%_\+.~#?&//=]*)`,
	regexp2.ECMAScript,
)

// MaximumLineLengthRule limits the length of source lines.
type MaximumLineLengthRule struct {
	lint.BaseRule
	maximum     int
	tabSize     int
	comments    bool
	urlComments bool
	regex       bool
}

// NewMaximumLineLengthRule creates the maximumLineLength rule.
func NewMaximumLineLengthRule() *MaximumLineLengthRule {
	return &MaximumLineLengthRule{
		BaseRule: lint.NewBaseRule("maximumLineLength", "Requires lines to be at most the given length"),
	}
}

// Configure accepts a positive integer or {value, tabSize, allExcept}.
func (r *MaximumLineLengthRule) Configure(value any) error {
	r.tabSize, r.comments, r.urlComments, r.regex = 1, false, false, false

	if n, ok := config.AsInt(value); ok && n > 0 {
		r.maximum = n
		return nil
	}

	obj, ok := config.AsSettings(value)
	if !ok {
		return r.OptionError("maximumLineLength option requires number value or options object")
	}
	raw, _ := obj.Get("value")
	n, ok := config.AsInt(raw)
	if !ok || n <= 0 {
		return r.OptionError(`maximumLineLength "value" option requires a positive number`)
	}
	r.maximum = n

	if raw, ok := obj.Get("tabSize"); ok {
		size, ok := config.AsInt(raw)
		if !ok || size <= 0 {
			return r.OptionError(`maximumLineLength "tabSize" option requires a positive number`)
		}
		r.tabSize = size
	}

	if raw, ok := obj.Get("allExcept"); ok {
		list, ok := config.AsStringList(raw)
		if !ok {
			return r.OptionError(`maximumLineLength "allExcept" option requires an array`)
		}
		for _, item := range list {
			switch item {
			case "comments":
				r.comments = true
			case "urlComments":
				r.urlComments = true
			case "regex":
				r.regex = true
			default:
				return r.OptionError("maximumLineLength unknown exception %q", item)
			}
		}
	}
	return nil
}

// Check reports every line longer than the maximum. Tabs count as
// tabSize characters.
func (r *MaximumLineLengthRule) Check(file *lint.File, errs *lint.Errors) {
	lines := file.GetLines()
	skipped := make([]bool, len(lines))
	skip := func(tok *jsast.Token) {
		for line := tok.Loc.Start.Line; line <= tok.Loc.End.Line && line <= len(lines); line++ {
			skipped[line-1] = true
		}
	}

	if r.regex {
		file.IterateTokensByType(skip, jsast.TokenRegExp)
	}
	if r.comments || r.urlComments {
		for _, comment := range file.GetComments() {
			if r.comments || matchesURL(comment.Value) {
				skip(comment)
			}
		}
	}

	tab := strings.Repeat(" ", r.tabSize)
	for i, line := range lines {
		if skipped[i] {
			continue
		}
		length := utf8.RuneCountInString(strings.ReplaceAll(line, "\t", tab))
		if length > r.maximum {
			errs.AddAt(fmt.Sprintf("Line must be at most %d characters", r.maximum), i+1, length)
		}
	}
}

func matchesURL(s string) bool {
	ok, err := urlPattern.MatchString(s)
	return err == nil && ok
}
