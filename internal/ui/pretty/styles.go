// Package pretty renders the human-facing output of gojscs with lipgloss:
// source excerpts under an error, run summaries and result tables.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Source excerpts
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	RuleID     lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Unified diffs
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Run summaries
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Tables
	TableHeader    lipgloss.Style
	TableErrorRow  lipgloss.Style
	TableFixable   lipgloss.Style
	TableLegend    lipgloss.Style
	TableSeparator lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// newColorStyles creates styles with ANSI colors.
func newColorStyles() *Styles {
	const (
		red    = "9"
		green  = "10"
		yellow = "11"
		cyan   = "14"
		grey   = "8"
		light  = "7"
	)
	return &Styles{
		Error:   fg(red).Bold(true),
		Warning: fg(yellow).Bold(true),

		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   fg(grey),
		RuleID:     fg(grey),
		Message:    lipgloss.NewStyle(),
		SourceLine: fg(light),
		Caret:      fg(red),

		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    fg(cyan),
		DiffAdd:     fg(green),
		DiffRemove:  fg(red),
		DiffContext: fg(grey),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      fg(green).Bold(true),
		Failure:      fg(red).Bold(true),

		TableHeader:    fg(light).Bold(true),
		TableErrorRow:  fg(red),
		TableFixable:   fg(green),
		TableLegend:    fg(grey).Italic(true),
		TableSeparator: fg(grey),

		Dim:  fg(grey),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		FilePath:       plain,
		Location:       plain,
		RuleID:         plain,
		Message:        plain,
		SourceLine:     plain,
		Caret:          plain,
		DiffHeader:     plain,
		DiffHunk:       plain,
		DiffAdd:        plain,
		DiffRemove:     plain,
		DiffContext:    plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableErrorRow:  plain,
		TableFixable:   plain,
		TableLegend:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled reports whether output to writer should be colored.
// Mode is "always", "never" or "auto"; auto colors a terminal unless
// NO_COLOR is set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
