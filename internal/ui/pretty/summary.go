package pretty

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// RunStats are the totals of a run as the summary formatters see them.
type RunStats struct {
	// Files is the number of files checked.
	Files int

	// FilesWithErrors is the number of files with at least one error.
	FilesWithErrors int

	// FilesFailed is the number of files that could not be checked.
	FilesFailed int

	// Errors is the number of reported style errors.
	Errors int

	// Fixed is the number of errors repaired by fixes.
	Fixed int

	// FilesModified is the number of files rewritten by fixes.
	FilesModified int
}

// FormatErrorCount returns the closing line of a report.
func (s *Styles) FormatErrorCount(count int) string {
	switch count {
	case 0:
		return s.Success.Render("No code style errors found.")
	case 1:
		return s.Failure.Render("1 code style error found.")
	default:
		return s.Failure.Render(fmt.Sprintf("%d code style errors found.", count))
	}
}

// FormatMaxErrorsNotice explains that output was cut short.
func (s *Styles) FormatMaxErrorsNotice(limit int) string {
	return s.Warning.Render(fmt.Sprintf(
		"Too many errors... Increase `maxErrors` configuration option value to see more (currently %d).", limit))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run totals as a single line.
// Example: "12 errors in 3 files, 6 fixed in 2 files".
func (s *Styles) FormatSummaryOneLine(stats RunStats) string {
	if stats.Errors == 0 {
		msg := s.Success.Render("No code style errors found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.Files, plural(stats.Files, wordFile, wordFiles)))
		if stats.Fixed > 0 {
			msg += ", " + s.Success.Render(fmt.Sprintf("%d fixed in %d %s",
				stats.Fixed, stats.FilesModified, plural(stats.FilesModified, wordFile, wordFiles)))
		}
		return msg + "\n"
	}

	parts := []string{
		s.Error.Render(fmt.Sprintf("%d %s", stats.Errors, plural(stats.Errors, "error", "errors"))) +
			fmt.Sprintf(" in %d %s", stats.FilesWithErrors, plural(stats.FilesWithErrors, wordFile, wordFiles)),
	}
	if stats.FilesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s could not be checked",
			stats.FilesFailed, plural(stats.FilesFailed, wordFile, wordFiles))))
	}
	if stats.Fixed > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixed in %d %s",
			stats.Fixed, stats.FilesModified, plural(stats.FilesModified, wordFile, wordFiles))))
	}
	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run totals as a block.
func (s *Styles) FormatSummary(stats RunStats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " + s.SummaryValue.Render(strconv.Itoa(stats.Files)) + "\n")
	if stats.FilesWithErrors > 0 {
		builder.WriteString("  Files with errors: " + s.Failure.Render(strconv.Itoa(stats.FilesWithErrors)) + "\n")
	}
	if stats.FilesFailed > 0 {
		builder.WriteString("  Files failed:      " + s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
	}
	if stats.FilesModified > 0 {
		builder.WriteString("  Files modified:    " + s.Success.Render(strconv.Itoa(stats.FilesModified)) + "\n")
	}
	builder.WriteString("  Errors:            " + s.SummaryValue.Render(strconv.Itoa(stats.Errors)) + "\n")
	if stats.Fixed > 0 {
		builder.WriteString("  Fixed:             " + s.Success.Render(strconv.Itoa(stats.Fixed)) + "\n")
	}

	builder.WriteString("\n")
	switch {
	case stats.FilesFailed > 0:
		builder.WriteString(s.Failure.Render("Check failed"))
	case stats.Errors > 0:
		builder.WriteString(s.Failure.Render("Code style errors found"))
	default:
		builder.WriteString(s.Success.Render("Code style OK"))
	}
	builder.WriteString("\n")

	return builder.String()
}
