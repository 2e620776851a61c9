package rules

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/jsast"
	"github.com/yaklabco/gojscs/pkg/lint"
)

// DisallowTrailingWhitespaceRule reports whitespace at the end of lines.
type DisallowTrailingWhitespaceRule struct {
	lint.BaseRule
	ignoreEmptyLines bool
}

// NewDisallowTrailingWhitespaceRule creates the disallowTrailingWhitespace rule.
func NewDisallowTrailingWhitespaceRule() *DisallowTrailingWhitespaceRule {
	return &DisallowTrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule("disallowTrailingWhitespace", "Disallows whitespace at the end of lines"),
	}
}

// Configure accepts true or "ignoreEmptyLines".
func (r *DisallowTrailingWhitespaceRule) Configure(value any) error {
	r.ignoreEmptyLines = false
	if b, ok := config.AsBool(value); ok && b {
		return nil
	}
	if s, ok := config.AsString(value); ok && s == "ignoreEmptyLines" {
		r.ignoreEmptyLines = true
		return nil
	}
	return r.OptionError(`disallowTrailingWhitespace option requires true or "ignoreEmptyLines"`)
}

// Check reports each line ending in whitespace outside template literals.
func (r *DisallowTrailingWhitespaceRule) Check(file *lint.File, errs *lint.Errors) {
	verbatim := multilineRanges(file, jsast.TokenTemplate, jsast.TokenString)

	for i, line := range file.GetLines() {
		trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
		if len(trimmed) == len(line) {
			continue
		}
		if r.ignoreEmptyLines && trimmed == "" {
			continue
		}

		pos := jsast.Position{Line: i + 1, Column: utf8.RuneCountInString(trimmed)}
		start := file.OffsetOf(pos)
		if inRanges(verbatim, start) {
			continue
		}
		errs.AddWithContext("Illegal trailing whitespace", pos, lint.AutoFix{
			Start: start,
			End:   start + len(line) - len(trimmed),
		})
	}
}

// DisallowMultipleLineBreaksRule allows at most one blank line in a row.
type DisallowMultipleLineBreaksRule struct {
	lint.BaseRule
}

// NewDisallowMultipleLineBreaksRule creates the disallowMultipleLineBreaks rule.
func NewDisallowMultipleLineBreaksRule() *DisallowMultipleLineBreaksRule {
	return &DisallowMultipleLineBreaksRule{
		BaseRule: lint.NewBaseRule("disallowMultipleLineBreaks", "Disallows multiple blank lines in a row"),
	}
}

// Configure accepts only true.
func (r *DisallowMultipleLineBreaksRule) Configure(value any) error {
	return r.RequireTrue(value)
}

// Check asserts at most two line breaks between consecutive tokens.
func (r *DisallowMultipleLineBreaksRule) Check(file *lint.File, errs *lint.Errors) {
	tokens := file.Tokens()
	assert := errs.Assert()
	for i := 1; i < len(tokens); i++ {
		assert.LinesBetween(lint.LinesOptions{
			Token:     &tokens[i-1],
			NextToken: &tokens[i],
			AtMost:    2,
			Message:   "Multiple line break",
		})
	}
}

// ValidateIndentationRule checks that statements are indented one level
// deeper than the block that holds them.
type ValidateIndentationRule struct {
	lint.BaseRule
	char              string
	size              int
	includeEmptyLines bool
}

// NewValidateIndentationRule creates the validateIndentation rule.
func NewValidateIndentationRule() *ValidateIndentationRule {
	return &ValidateIndentationRule{
		BaseRule: lint.NewBaseRule("validateIndentation", "Validates indentation of block statements"),
	}
}

// Configure accepts a positive number of spaces, "\t", or
// {value, includeEmptyLines}.
func (r *ValidateIndentationRule) Configure(value any) error {
	r.includeEmptyLines = false

	if obj, ok := config.AsSettings(value); ok {
		raw, _ := obj.Get("value")
		if err := r.configureSize(raw); err != nil {
			return err
		}
		if raw, ok := obj.Get("includeEmptyLines"); ok {
			include, ok := config.AsBool(raw)
			if !ok {
				return r.OptionError(`validateIndentation "includeEmptyLines" option requires a boolean`)
			}
			r.includeEmptyLines = include
		}
		return nil
	}
	return r.configureSize(value)
}

func (r *ValidateIndentationRule) configureSize(value any) error {
	if n, ok := config.AsInt(value); ok && n > 0 {
		r.char, r.size = " ", n
		return nil
	}
	if s, ok := config.AsString(value); ok && s == "\t" {
		r.char, r.size = "\t", 1
		return nil
	}
	return r.OptionError(`validateIndentation option requires a positive number of spaces or "\t"`)
}

// Check validates the first line of every statement in a block and the
// line of the closing brace.
func (r *ValidateIndentationRule) Check(file *lint.File, errs *lint.Errors) {
	tree := file.Tree()
	lines := file.GetLines()
	assert := errs.Assert()

	indentOf := func(line int) int {
		if line < 1 || line > len(lines) {
			return 0
		}
		return leadingCount(lines[line-1], r.char)
	}

	checkLine := func(tok *jsast.Token, expected int) {
		if tok == nil {
			return
		}
		first := file.GetFirstTokenOnLine(tok.Loc.Start.Line)
		if first == nil || first.Index != tok.Index {
			return
		}
		assert.Indentation(lint.IndentationOptions{
			Token:      tok,
			Actual:     indentOf(tok.Loc.Start.Line),
			Expected:   expected,
			IndentChar: r.char,
		})
	}

	for _, child := range tree.Children(tree.Root()) {
		checkLine(file.GetFirstNodeToken(child), 0)
	}

	file.IterateNodesByType(func(n *jsast.Node) {
		base := indentOf(n.Loc.Start.Line)
		for _, child := range indentedChildren(tree, n) {
			checkLine(file.GetFirstNodeToken(child), base+r.size)
		}
		if n.Type == jsast.TypeSwitchCase {
			return
		}
		if closing := file.GetLastNodeToken(n); closing != nil && closing.IsPunctuator("}") {
			checkLine(closing, base)
		}
	}, indentContainers...)

	if r.includeEmptyLines {
		r.checkEmptyLines(file, errs, indentOf)
	}
}

// indentContainers are the node types whose children sit one level deeper.
var indentContainers = []string{
	jsast.TypeBlockStatement,
	jsast.TypeSwitchCase,
	"switch_body",
	"class_body",
}

// indentedChildren returns the children of n that start an indented line.
func indentedChildren(tree *jsast.Tree, n *jsast.Node) []*jsast.Node {
	children := tree.Children(n)
	if n.Type != jsast.TypeSwitchCase {
		return children
	}
	body := children[:0:0]
	for _, child := range children {
		if child.Field == "body" {
			body = append(body, child)
		}
	}
	return body
}

// enclosingContainer returns n or its nearest ancestor that indents its
// children.
func enclosingContainer(tree *jsast.Tree, n *jsast.Node) *jsast.Node {
	if n == nil {
		return nil
	}
	if slices.Contains(indentContainers, n.Type) {
		return n
	}
	return tree.ClosestAncestor(n, indentContainers...)
}

// checkEmptyLines validates whitespace-only lines against the innermost
// container around them.
func (r *ValidateIndentationRule) checkEmptyLines(file *lint.File, errs *lint.Errors, indentOf func(int) int) {
	tree := file.Tree()
	verbatim := multilineRanges(file, jsast.TokenTemplate, jsast.TokenString, jsast.TokenBlock)

	for i, line := range file.GetLines() {
		if strings.TrimSpace(line) != "" {
			continue
		}
		lineNo := i + 1
		start := file.OffsetOf(jsast.Position{Line: lineNo})
		if inRanges(verbatim, start) {
			continue
		}

		expected := 0
		if container := enclosingContainer(tree, file.GetNodeByRange(start)); container != nil {
			expected = indentOf(container.Loc.Start.Line) + r.size
		}
		if leadingCount(line, r.char) == expected && len(line) == expected*len(r.char) {
			continue
		}

		unit := "characters"
		if r.char == "\t" {
			unit = "tabs"
		}
		errs.AddWithContext(
			fmt.Sprintf("Expected indentation of %d %s", expected, unit),
			jsast.Position{Line: lineNo, Column: 0},
			lint.AutoFix{Start: start, End: start + len(line), Text: strings.Repeat(r.char, expected)},
		)
	}
}

// leadingCount counts the leading repetitions of char in line.
func leadingCount(line, char string) int {
	n := 0
	for strings.HasPrefix(line, char) {
		line = line[len(char):]
		n++
	}
	return n
}

// multilineRanges returns the byte ranges of tokens of the given types
// that span more than one line.
func multilineRanges(file *lint.File, types ...string) []jsast.SourceRange {
	var ranges []jsast.SourceRange
	file.IterateTokensByType(func(tok *jsast.Token) {
		if tok.Loc.Start.Line != tok.Loc.End.Line {
			ranges = append(ranges, tok.Range)
		}
	}, types...)
	return ranges
}

// inRanges reports whether offset falls strictly inside one of ranges.
func inRanges(ranges []jsast.SourceRange, offset int) bool {
	for _, rng := range ranges {
		if offset > rng.Start && offset < rng.End {
			return true
		}
	}
	return false
}
