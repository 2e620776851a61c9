package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table formatting constants.
const (
	fixableSymbol      = "+"
	tablePadding       = 2
	tableColumnCount   = 4 // FILE, LOC, MESSAGE, RULE
	fixableColumnWidth = 3
	minFileWidth       = 20
	minLocWidth        = 8
	minMessageWidth    = 35
	minRuleWidth       = 8
	heavySeparator     = "="
	lightSeparator     = "-"
	defaultTermWidth   = 100
)

// TableRow is one error in the table.
type TableRow struct {
	File    string
	Line    int
	Column  int
	Message string
	Rule    string
	Fixable bool
}

// Location returns "line:column".
func (r TableRow) Location() string {
	return fmt.Sprintf("%d:%d", r.Line, r.Column)
}

// TableFormatter formats errors as a styled table grouped by file.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a table formatter. A non-positive termWidth
// uses a default width.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

type columnWidths struct {
	file    int
	loc     int
	message int
	rule    int
}

func (w columnWidths) total() int {
	return w.file + w.loc + w.message + w.rule + tablePadding*tableColumnCount + fixableColumnWidth
}

// FormatTable formats groups of rows, one group per file. Empty groups
// are skipped.
func (t *TableFormatter) FormatTable(groups [][]TableRow) string {
	var nonEmpty [][]TableRow
	for _, group := range groups {
		if len(group) > 0 {
			nonEmpty = append(nonEmpty, group)
		}
	}
	if len(nonEmpty) == 0 {
		return ""
	}

	widths := t.columnWidths(nonEmpty)
	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for i, group := range nonEmpty {
		if i > 0 {
			builder.WriteString(t.formatSeparator(widths, lightSeparator))
			builder.WriteString("\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, widths))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")
	builder.WriteString(t.formatLegend())
	builder.WriteString("\n")

	return builder.String()
}

// columnWidths fits the columns to the content, then shrinks the message
// and file columns to the terminal width.
func (t *TableFormatter) columnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:    minFileWidth,
		loc:     minLocWidth,
		message: minMessageWidth,
		rule:    minRuleWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, lipgloss.Width(row.File))
			widths.loc = max(widths.loc, len(row.Location()))
			widths.message = max(widths.message, lipgloss.Width(row.Message))
			widths.rule = max(widths.rule, len(row.Rule))
		}
	}

	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.message = max(minMessageWidth, widths.message-excess)
	}
	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.file = max(minFileWidth, widths.file-excess)
	}

	return widths
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s   ",
		widths.file, "FILE",
		widths.loc, "LOC",
		widths.message, "MESSAGE",
		widths.rule, "RULE",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, widths.total()))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	fixable := " "
	if row.Fixable {
		fixable = t.styles.TableFixable.Render(fixableSymbol)
	}

	return fmt.Sprintf(" %s  %s  %s  %s  %s",
		t.styles.FilePath.Render(padRight(truncateFilePath(row.File, widths.file), widths.file)),
		t.styles.Location.Render(padRight(row.Location(), widths.loc)),
		t.styles.TableErrorRow.Render(padRight(truncateString(row.Message, widths.message), widths.message)),
		t.styles.RuleID.Render(padRight(truncateString(row.Rule, widths.rule), widths.rule)),
		fixable,
	)
}

func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(fmt.Sprintf(" Legend: %s = fixable", fixableSymbol))
	}
	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s = fixable with --fix", t.styles.TableFixable.Render(fixableSymbol)))
}

// FormatTableSummary formats the line under the table.
func (t *TableFormatter) FormatTableSummary(stats RunStats) string {
	parts := []string{fmt.Sprintf("%d %s checked", stats.Files, plural(stats.Files, wordFile, wordFiles))}
	if stats.Errors > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d %s", stats.Errors, plural(stats.Errors, "error", "errors"))))
	}
	if stats.FilesFailed > 0 {
		parts = append(parts, t.styles.Failure.Render(fmt.Sprintf("%d failed", stats.FilesFailed)))
	}
	if stats.Fixed > 0 {
		parts = append(parts, t.styles.TableFixable.Render(fmt.Sprintf("%d fixed", stats.Fixed)))
	}
	return " " + strings.Join(parts, " | ")
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// truncateString shortens s to maxLen runes, ending in "...".
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// truncateFilePath shortens a path from the front so the file name stays.
func truncateFilePath(path string, maxLen int) string {
	runes := []rune(path)
	if len(runes) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return string(runes[len(runes)-maxLen:])
	}
	return "..." + string(runes[len(runes)-maxLen+3:])
}
