package lint

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gojscs/pkg/jsast"
)

// AutoFix is the fix context attached to errors raised by assertions. The
// fix phase replaces the source bytes [Start, End) with Text.
type AutoFix struct {
	Start int
	End   int
	Text  string
}

// Assert provides predicate helpers that report through the collector
// only when the predicate fails.
type Assert struct {
	errs *Errors
}

// Assert returns the assertion helpers bound to the collector.
func (e *Errors) Assert() *Assert {
	return &Assert{errs: e}
}

// PairOptions names two tokens for a line assertion.
type PairOptions struct {
	Token     *jsast.Token
	NextToken *jsast.Token

	// Message replaces the standard message when set.
	Message string
}

// WhitespaceOptions configures WhitespaceBetween.
type WhitespaceOptions struct {
	Token     *jsast.Token
	NextToken *jsast.Token

	// Spaces, when positive, requires exactly that many spaces between
	// tokens on the same line.
	Spaces int

	Message string
}

// NoWhitespaceOptions configures NoWhitespaceBetween.
type NoWhitespaceOptions struct {
	Token     *jsast.Token
	NextToken *jsast.Token

	// DisallowNewLine also rejects a line break between the tokens.
	DisallowNewLine bool

	Message string
}

// LinesOptions configures LinesBetween. Unset bounds are zero; at least
// one of Exactly, AtLeast or AtMost must be positive.
type LinesOptions struct {
	Token     *jsast.Token
	NextToken *jsast.Token

	Exactly int
	AtLeast int
	AtMost  int

	Message string
}

// IndentationOptions configures Indentation.
type IndentationOptions struct {
	// Token is the first token on the checked line.
	Token *jsast.Token

	// Actual and Expected are indentation widths in IndentChar units.
	Actual   int
	Expected int

	// IndentChar is " " or "\t".
	IndentChar string

	Message string
}

func messageOr(custom, standard string) string {
	if custom != "" {
		return custom
	}
	return standard
}

// SameLine reports when the tokens are on different lines.
func (a *Assert) SameLine(opts PairOptions) bool {
	if opts.Token == nil || opts.NextToken == nil {
		return true
	}
	if opts.Token.Loc.End.Line == opts.NextToken.Loc.Start.Line {
		return true
	}
	msg := fmt.Sprintf("%s and %s should be on the same line", opts.Token.Value, opts.NextToken.Value)
	a.errs.AddWithContext(messageOr(opts.Message, msg), opts.NextToken, a.gapFix(opts.Token, opts.NextToken, " "))
	return false
}

// DifferentLine reports when the tokens are on the same line.
func (a *Assert) DifferentLine(opts PairOptions) bool {
	if opts.Token == nil || opts.NextToken == nil {
		return true
	}
	if opts.Token.Loc.End.Line != opts.NextToken.Loc.Start.Line {
		return true
	}
	msg := fmt.Sprintf("%s and %s should be on different lines", opts.Token.Value, opts.NextToken.Value)
	a.errs.AddWithContext(messageOr(opts.Message, msg), opts.NextToken, a.gapFix(opts.Token, opts.NextToken, "\n"))
	return false
}

// WhitespaceBetween reports missing whitespace between the tokens, or a
// wrong number of spaces when Spaces is set.
func (a *Assert) WhitespaceBetween(opts WhitespaceOptions) bool {
	if opts.Token == nil || opts.NextToken == nil {
		return true
	}
	gap := a.gap(opts.Token, opts.NextToken)

	if opts.Spaces > 0 {
		if opts.Token.Loc.End.Line != opts.NextToken.Loc.Start.Line || gap == strings.Repeat(" ", opts.Spaces) {
			return true
		}
		msg := fmt.Sprintf("%d spaces required between %s and %s", opts.Spaces, opts.Token.Value, opts.NextToken.Value)
		a.errs.AddWithContext(messageOr(opts.Message, msg), opts.Token,
			a.gapFix(opts.Token, opts.NextToken, strings.Repeat(" ", opts.Spaces)))
		return false
	}

	if gap != "" {
		return true
	}
	msg := fmt.Sprintf("Missing space between %s and %s", opts.Token.Value, opts.NextToken.Value)
	a.errs.AddWithContext(messageOr(opts.Message, msg), opts.Token, a.gapFix(opts.Token, opts.NextToken, " "))
	return false
}

// NoWhitespaceBetween reports whitespace between the tokens. A line break
// is allowed unless DisallowNewLine is set.
func (a *Assert) NoWhitespaceBetween(opts NoWhitespaceOptions) bool {
	if opts.Token == nil || opts.NextToken == nil {
		return true
	}
	if a.gap(opts.Token, opts.NextToken) == "" {
		return true
	}
	if !opts.DisallowNewLine && opts.Token.Loc.End.Line != opts.NextToken.Loc.Start.Line {
		return true
	}
	msg := fmt.Sprintf("Unexpected whitespace between %s and %s", opts.Token.Value, opts.NextToken.Value)
	a.errs.AddWithContext(messageOr(opts.Message, msg), opts.Token, a.gapFix(opts.Token, opts.NextToken, ""))
	return false
}

// LinesBetween checks the number of line breaks between the tokens.
func (a *Assert) LinesBetween(opts LinesOptions) bool {
	if opts.Token == nil || opts.NextToken == nil {
		return true
	}
	lines := opts.NextToken.Loc.Start.Line - opts.Token.Loc.End.Line
	pair := fmt.Sprintf("between %s and %s", opts.Token.Value, opts.NextToken.Value)

	var msg string
	var want int
	switch {
	case opts.Exactly > 0 && lines != opts.Exactly:
		msg = fmt.Sprintf("Expected %d %s %s", opts.Exactly, plural(opts.Exactly, "line"), pair)
		want = opts.Exactly
	case opts.AtLeast > 0 && lines < opts.AtLeast:
		msg = fmt.Sprintf("Expected at least %d %s %s", opts.AtLeast, plural(opts.AtLeast, "line"), pair)
		want = opts.AtLeast
	case opts.AtMost > 0 && lines > opts.AtMost:
		msg = fmt.Sprintf("Expected at most %d %s %s", opts.AtMost, plural(opts.AtMost, "line"), pair)
		want = opts.AtMost
	default:
		return true
	}

	a.errs.AddWithContext(messageOr(opts.Message, msg), opts.NextToken, a.linesFix(opts.Token, opts.NextToken, want))
	return false
}

// Indentation reports a line whose indentation differs from Expected.
func (a *Assert) Indentation(opts IndentationOptions) bool {
	if opts.Token == nil || opts.Actual == opts.Expected {
		return true
	}
	char := opts.IndentChar
	if char == "" {
		char = " "
	}
	unit := "characters"
	if char == "\t" {
		unit = "tabs"
	}
	msg := fmt.Sprintf("Expected indentation of %d %s", opts.Expected, unit)

	var fix any
	if file := a.errs.file; file != nil {
		lineStart := file.OffsetOf(jsast.Position{Line: opts.Token.Loc.Start.Line})
		fix = AutoFix{Start: lineStart, End: opts.Token.Range.Start, Text: strings.Repeat(char, opts.Expected)}
	}
	a.errs.AddWithContext(messageOr(opts.Message, msg), opts.Token, fix)
	return false
}

func (a *Assert) gap(tok, next *jsast.Token) string {
	file := a.errs.file
	if file == nil || tok.Range.End > next.Range.Start {
		return ""
	}
	return string(file.Source()[tok.Range.End:next.Range.Start])
}

// gapFix builds a fix replacing the text between adjacent tokens. Tokens
// separated by a comment get no fix.
func (a *Assert) gapFix(tok, next *jsast.Token, text string) any {
	file := a.errs.file
	if file == nil || tok.Range.End > next.Range.Start {
		return nil
	}
	if between := file.GetNextToken(tok, IncludeComments()); between == nil || between.Index != next.Index {
		return nil
	}
	return AutoFix{Start: tok.Range.End, End: next.Range.Start, Text: text}
}

// linesFix rewrites the whitespace between adjacent tokens to hold want
// line breaks, keeping the indentation of the next token.
func (a *Assert) linesFix(tok, next *jsast.Token, want int) any {
	gap := a.gap(tok, next)
	if strings.TrimSpace(gap) != "" {
		return nil
	}
	brk := "\n"
	if strings.Contains(gap, "\r\n") {
		brk = "\r\n"
	}
	indent := gap[strings.LastIndexAny(gap, "\r\n")+1:]
	return a.gapFix(tok, next, strings.Repeat(brk, want)+indent)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
