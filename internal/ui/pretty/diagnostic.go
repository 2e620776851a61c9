package pretty

import (
	"fmt"
	"strings"
)

// ExcerptLine is one numbered source line of an excerpt.
type ExcerptLine struct {
	Number int
	Text   string
}

// Excerpt is the source context of a single error.
type Excerpt struct {
	Rule     string
	Message  string
	Filename string

	// Lines are the numbered lines around the error, in order.
	Lines []ExcerptLine

	// Line is the 1-based number of the offending line.
	Line int

	// Column is the 0-based column of the error on Line.
	Column int
}

// pointerOffset is the width of the "NNNNNN |" gutter plus the caret
// lead-in used by the excerpt pointer line.
const pointerOffset = 10

// FormatExcerpt renders an error header followed by its numbered source
// lines, with a pointer line under the offending line. The result has no
// trailing newline.
//
//	rule: message at file :
//	     1 |with (x) {}
//	----------^
func (s *Styles) FormatExcerpt(e Excerpt) string {
	var builder strings.Builder

	builder.WriteString(s.RuleID.Render(e.Rule + ":"))
	builder.WriteString(" ")
	builder.WriteString(s.Message.Render(e.Message))
	builder.WriteString(" at ")
	builder.WriteString(s.FilePath.Render(e.Filename))
	builder.WriteString(" :")

	for _, line := range e.Lines {
		builder.WriteString("\n")
		builder.WriteString(s.Location.Render(fmt.Sprintf("%6d |", line.Number)))
		builder.WriteString(s.SourceLine.Render(line.Text))
		if line.Number == e.Line {
			builder.WriteString("\n")
			builder.WriteString(s.Caret.Render(strings.Repeat("-", max(e.Column, 0)+pointerOffset) + "^"))
		}
	}

	return builder.String()
}

// FormatLocation renders "path:line:col" for one-line formats.
func (s *Styles) FormatLocation(path string, line, column int) string {
	return fmt.Sprintf("%s:%d:%d", s.FilePath.Render(path), line, column)
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, errorCount int) string {
	header := s.FilePath.Render(path)
	if errorCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d errors)", errorCount))
	}
	return header
}
