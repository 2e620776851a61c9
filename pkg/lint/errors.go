package lint

import (
	"github.com/yaklabco/gojscs/internal/ui/pretty"
	"github.com/yaklabco/gojscs/pkg/jsast"
)

// DefaultMaxErrors is the error cutoff used when maxErrors is not
// configured.
const DefaultMaxErrors = 50

// explainContextLines is the number of lines shown on each side of the
// offending line by ExplainError.
const explainContextLines = 2

// Error is a single style violation.
type Error struct {
	Filename string
	RuleName string
	Message  string

	// Line is 1-based; Column is 0-based.
	Line   int
	Column int

	// Additional carries rule-specific context for the fix phase.
	Additional any

	// Fixed is set once the fix phase has repaired the error.
	Fixed bool

	// tokenIndex is the token the error was reported on, or -1.
	tokenIndex int
}

// Position returns the location of the error.
func (e *Error) Position() jsast.Position {
	return jsast.Position{Line: e.Line, Column: e.Column}
}

// ErrorFilter decides whether an error is reported. Returning false hides
// the error from readers of the collector.
type ErrorFilter func(Error) bool

// Errors collects the violations found in one file.
//
// The checker binds the collector to the rule being run, so every stored
// Error carries exactly one rule name. Errors on tokens where the rule is
// disabled by a pragma are dropped before storage and never count toward
// the limit.
type Errors struct {
	file        *File
	currentRule string
	list        []Error

	limit    int
	visible  int
	exceeded bool
	filter   ErrorFilter
}

// NewErrors creates a collector for file.
func NewErrors(file *File) *Errors {
	return &Errors{file: file, limit: DefaultMaxErrors}
}

// File returns the file the collector belongs to.
func (e *Errors) File() *File {
	return e.file
}

// Filename returns the name of the checked file.
func (e *Errors) Filename() string {
	if e.file == nil {
		return ""
	}
	return e.file.Filename()
}

// SetMaxErrors sets the cutoff. Zero or a negative value means unlimited.
func (e *Errors) SetMaxErrors(limit int) {
	e.limit = limit
}

// SetFilter installs the read-time filter.
func (e *Errors) SetFilter(filter ErrorFilter) {
	e.filter = filter
}

func (e *Errors) setCurrentRule(name string) {
	e.currentRule = name
}

// CurrentRule returns the name of the rule the collector is bound to.
func (e *Errors) CurrentRule() string {
	return e.currentRule
}

// Add reports message at loc, which is a jsast.Position, a *jsast.Token
// or a *jsast.Node.
func (e *Errors) Add(message string, loc jsast.Locator) {
	e.AddWithContext(message, loc, nil)
}

// AddAt reports message at a 1-based line and 0-based column.
func (e *Errors) AddAt(message string, line, column int) {
	e.AddWithContext(message, jsast.Position{Line: line, Column: column}, nil)
}

// AddWithContext reports message at loc with fix context.
func (e *Errors) AddWithContext(message string, loc jsast.Locator, additional any) {
	pos, tokenIndex := e.resolve(loc)
	if e.currentRule != "" && e.file != nil && !e.file.IsEnabled(e.currentRule, tokenIndex) {
		return
	}
	e.store(Error{
		Filename:   e.Filename(),
		RuleName:   e.currentRule,
		Message:    message,
		Line:       pos.Line,
		Column:     pos.Column,
		Additional: additional,
		tokenIndex: tokenIndex,
	})
}

// addUnsuppressible stores an error without consulting pragmas.
func (e *Errors) addUnsuppressible(message string, pos jsast.Position) {
	e.store(Error{
		Filename:   e.Filename(),
		RuleName:   e.currentRule,
		Message:    message,
		Line:       pos.Line,
		Column:     pos.Column,
		tokenIndex: -1,
	})
}

func (e *Errors) store(err Error) {
	passes := e.filter == nil || e.filter(err)
	if passes && e.limit > 0 && e.visible >= e.limit {
		e.exceeded = true
		return
	}
	if passes {
		e.visible++
	}
	e.list = append(e.list, err)
}

// resolve finds the position and token index of loc.
func (e *Errors) resolve(loc jsast.Locator) (jsast.Position, int) {
	switch l := loc.(type) {
	case *jsast.Token:
		if l == nil {
			return jsast.Position{Line: 1}, -1
		}
		return l.Loc.Start, l.Index
	case *jsast.Node:
		if l == nil {
			return jsast.Position{Line: 1}, -1
		}
		if e.file != nil {
			if idx, ok := e.file.GetTokenPosByRangeStart(l.Range.Start); ok {
				return l.Loc.Start, idx
			}
		}
		return l.Loc.Start, -1
	case nil:
		return jsast.Position{Line: 1}, -1
	default:
		pos := loc.StartPosition()
		if e.file != nil {
			if idx, ok := e.file.tokenIndexAt(pos); ok {
				return pos, idx
			}
		}
		return pos, -1
	}
}

// MaxErrorsExceeded reports whether an add was dropped because of the
// cutoff.
func (e *Errors) MaxErrorsExceeded() bool {
	return e.exceeded
}

// GetErrorList returns the errors that pass the filter, in report order.
func (e *Errors) GetErrorList() []Error {
	if e.filter == nil {
		out := make([]Error, len(e.list))
		copy(out, e.list)
		return out
	}
	out := make([]Error, 0, len(e.list))
	for _, err := range e.list {
		if e.filter(err) {
			out = append(out, err)
		}
	}
	return out
}

// GetUnfilteredList returns every stored error, filtered or not. The fix
// phase uses it; the slice is the collector's own.
func (e *Errors) GetUnfilteredList() []Error {
	return e.list
}

// GetErrorCount returns the number of errors that pass the filter.
func (e *Errors) GetErrorCount() int {
	if e.filter == nil {
		return len(e.list)
	}
	count := 0
	for _, err := range e.list {
		if e.filter(err) {
			count++
		}
	}
	return count
}

// IsEmpty reports whether no error passes the filter.
func (e *Errors) IsEmpty() bool {
	return e.GetErrorCount() == 0
}

// Truncate keeps at most n visible errors. The runner uses it to apply the
// cutoff across files.
func (e *Errors) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	kept := e.list[:0]
	visible := 0
	for _, err := range e.list {
		passes := e.filter == nil || e.filter(err)
		if passes {
			if visible >= n {
				e.exceeded = true
				continue
			}
			visible++
		}
		kept = append(kept, err)
	}
	e.list = kept
	e.visible = visible
}

// ExplainError renders err with up to two lines of source context on each
// side and a pointer line under the offending line.
func (e *Errors) ExplainError(err Error, colorize bool) string {
	var lines []string
	if e.file != nil {
		lines = e.file.GetLines()
	}

	excerpt := pretty.Excerpt{
		Rule:     err.RuleName,
		Message:  err.Message,
		Filename: err.Filename,
		Line:     err.Line,
		Column:   err.Column,
	}
	idx := err.Line - 1
	if idx >= 0 && idx < len(lines) {
		first := max(idx-explainContextLines, 0)
		last := min(idx+explainContextLines, len(lines)-1)
		for i := first; i <= last; i++ {
			excerpt.Lines = append(excerpt.Lines, pretty.ExcerptLine{Number: i + 1, Text: lines[i]})
		}
	}

	return pretty.NewStyles(colorize).FormatExcerpt(excerpt)
}
