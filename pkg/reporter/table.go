package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/gojscs/internal/ui/pretty"
	"github.com/yaklabco/gojscs/pkg/analysis"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TableRenderer formats a report as a styled table grouped by file.
type TableRenderer struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
}

// NewTableRenderer creates a new table renderer.
func NewTableRenderer(opts Options) *TableRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	return &TableRenderer{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, colorEnabled, getTerminalWidth(opts.Writer)),
	}
}

// Render implements Renderer.
func (r *TableRenderer) Render(_ context.Context, report *analysis.Report) error {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)

	if report.Totals.Errors == 0 {
		fmt.Fprintln(bw, r.styles.FormatErrorCount(0))
		if r.opts.ShowSummary {
			fmt.Fprint(bw, r.styles.FormatSummaryOneLine(runStats(report.Totals)))
		}
	} else {
		fmt.Fprint(bw, r.formatter.FormatTable(tableGroups(report.Errors)))
		if r.opts.ShowSummary {
			fmt.Fprintln(bw, r.formatter.FormatTableSummary(runStats(report.Totals)))
			if report.Totals.Fixable > 0 {
				fmt.Fprintln(bw)
				fmt.Fprintln(bw, r.styles.Dim.Render("Run with --fix to auto-repair fixable errors"))
			}
		}
	}

	for _, f := range report.Failures {
		fmt.Fprintf(bw, "%s: %s\n", r.styles.FilePath.Render(f.File), r.styles.Error.Render(f.Message))
	}
	if report.MaxErrorsExceeded {
		fmt.Fprintln(bw, r.styles.FormatMaxErrorsNotice(r.opts.MaxErrors))
	}

	return bw.Flush()
}

// tableGroups splits the flat error list into one group per file, keeping
// run order.
func tableGroups(entries []analysis.ErrorEntry) [][]pretty.TableRow {
	var groups [][]pretty.TableRow
	for i, e := range entries {
		row := pretty.TableRow{
			File:    e.File,
			Line:    e.Line,
			Column:  e.Column,
			Message: e.Message,
			Rule:    e.Rule,
			Fixable: e.Fixable,
		}
		if i == 0 || entries[i-1].File != e.File {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], row)
	}
	return groups
}

func runStats(totals analysis.Totals) pretty.RunStats {
	return pretty.RunStats{
		Files:           totals.Files,
		FilesWithErrors: totals.FilesWithErrors,
		FilesFailed:     totals.FilesFailed,
		Errors:          totals.Errors,
		Fixed:           totals.Fixed,
		FilesModified:   totals.FilesModified,
	}
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
