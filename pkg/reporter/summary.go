package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/gojscs/internal/ui/pretty"
	"github.com/yaklabco/gojscs/pkg/analysis"
)

// Table layout constants for summary output.
// Both tables use the same width for visual consistency.
const (
	tableWidth        = 90
	ruleColWidth      = 44
	fileColWidth      = 60
	numColWidth       = 7
	fixableColWidth   = 8
	maxRuleNameLength = 42
	maxFilePathLength = 58
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats a report as per-rule and per-file tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Errors == 0 && report.Totals.FilesFailed == 0 {
		fmt.Fprintln(r.out, r.styles.FormatErrorCount(0))
		return nil
	}

	if r.opts.SummaryOrder == SummaryOrderFiles {
		r.renderFileTable(report.ByFile)
		fmt.Fprintln(r.out)
		r.renderRuleTable(report.ByRule)
	} else {
		r.renderRuleTable(report.ByRule)
		fmt.Fprintln(r.out)
		r.renderFileTable(report.ByFile)
	}

	for _, f := range report.Failures {
		fmt.Fprintf(r.out, "%s: %s\n", r.styles.FilePath.Render(f.File), r.styles.Error.Render(f.Message))
	}

	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)
	if report.MaxErrorsExceeded {
		fmt.Fprintln(r.out, r.styles.FormatMaxErrorsNotice(r.opts.MaxErrors))
	}

	return nil
}

func (r *SummaryRenderer) separator() {
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))
}

func (r *SummaryRenderer) renderRuleTable(rules []analysis.RuleAnalysis) {
	if len(rules) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Rules Summary"))
	r.separator()
	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("Rule", ruleColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Fixable", fixableColWidth)),
	)
	r.separator()

	for _, rule := range rules {
		name := rule.Rule
		if len(name) > maxRuleNameLength {
			name = name[:maxRuleNameLength] + "…"
		}

		fixable := padLeft("", fixableColWidth)
		if rule.Fixable {
			fixable = r.styles.Success.Render(padLeft("✓", fixableColWidth))
		}

		fmt.Fprintf(r.out, "%s %s %s\n",
			r.styles.TableErrorRow.Render(padRight(name, ruleColWidth)),
			padLeft(strconv.Itoa(rule.Errors), numColWidth),
			fixable,
		)
	}
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))
	r.separator()
	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Fixable", fixableColWidth)),
	)
	r.separator()

	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		fmt.Fprintf(r.out, "%s %s %s\n",
			r.styles.TableErrorRow.Render(padRight(path, fileColWidth)),
			padLeft(strconv.Itoa(file.Errors), numColWidth),
			padLeft(strconv.Itoa(file.Fixable), fixableColWidth),
		)
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	errorWord := "errors"
	if totals.Errors == 1 {
		errorWord = "error"
	}
	fileWord := "files"
	if totals.FilesWithErrors == 1 {
		fileWord = "file"
	}

	line := fmt.Sprintf("%s in %d %s",
		r.styles.Error.Render(fmt.Sprintf("%d %s", totals.Errors, errorWord)), totals.FilesWithErrors, fileWord)
	if totals.Fixable > 0 {
		line += fmt.Sprintf(" (%d fixable)", totals.Fixable)
	}
	if totals.FilesFailed > 0 {
		line += ", " + r.styles.Failure.Render(fmt.Sprintf("%d could not be checked", totals.FilesFailed))
	}
	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+line)
}
