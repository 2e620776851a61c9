package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gojscs/internal/ui/pretty"
	"github.com/yaklabco/gojscs/pkg/runner"
)

// TextReporter writes every error as a source excerpt followed by a count
// line. Output is never colored and nothing is written for a clean run.
type TextReporter struct {
	opts     Options
	styles   *pretty.Styles
	colorize bool
	bw       *bufio.Writer

	// announceClean prints the count line even when there are no errors.
	announceClean bool
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(false),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// NewConsoleReporter creates the default terminal reporter. It behaves
// like the text reporter with color and a success line for a clean run.
func NewConsoleReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:          opts,
		styles:        pretty.NewStyles(colorEnabled),
		colorize:      colorEnabled,
		bw:            bufio.NewWriterSize(opts.Writer, bufWriterSize),
		announceClean: true,
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	var total int
	for i := range result.Files {
		file := &result.Files[i]
		if file.Err != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(r.opts.displayPath(file.Path)),
				r.styles.Error.Render(file.Err.Error()),
			)
			continue
		}
		if file.Errors == nil {
			continue
		}
		for _, e := range file.Errors.GetErrorList() {
			e.Filename = r.opts.displayPath(e.Filename)
			fmt.Fprintln(r.bw, file.Errors.ExplainError(e, r.colorize))
			total++
		}
	}

	if total > 0 || r.announceClean {
		if total > 0 {
			fmt.Fprintln(r.bw)
		}
		fmt.Fprintln(r.bw, r.styles.FormatErrorCount(total))
	}
	if result.MaxErrorsExceeded {
		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.FormatMaxErrorsNotice(r.opts.MaxErrors))
	}

	return total, nil
}
