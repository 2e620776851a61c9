package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gojscs/pkg/lint"
	"github.com/yaklabco/gojscs/pkg/runner"
)

// lineFormatter renders one error as a single line.
type lineFormatter func(path string, e lint.Error) string

// LineReporter writes one line per error.
type LineReporter struct {
	opts   Options
	format lineFormatter
}

// NewInlineReporter writes "path: line L, col C, message" lines.
func NewInlineReporter(opts Options) *LineReporter {
	return &LineReporter{
		opts: opts,
		format: func(path string, e lint.Error) string {
			return fmt.Sprintf("%s: line %d, col %d, %s", path, e.Line, e.Column, opts.message(e))
		},
	}
}

// NewUnixReporter writes "path:L:C: message" lines with 1-based columns,
// the layout editors and grep-style tooling parse.
func NewUnixReporter(opts Options) *LineReporter {
	return &LineReporter{
		opts: opts,
		format: func(path string, e lint.Error) string {
			return fmt.Sprintf("%s:%d:%d: %s", path, e.Line, e.Column+1, opts.message(e))
		},
	}
}

// Report implements Reporter.
func (r *LineReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var total int
	for i := range result.Files {
		file := &result.Files[i]
		path := r.opts.displayPath(file.Path)
		if file.Err != nil {
			fmt.Fprintln(bw, r.format(path, lint.Error{Line: 1, Message: file.Err.Error()}))
			continue
		}
		if file.Errors == nil {
			continue
		}
		for _, e := range file.Errors.GetErrorList() {
			fmt.Fprintln(bw, r.format(path, e))
			total++
		}
	}
	return total, nil
}
