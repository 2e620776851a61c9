package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gojscs/pkg/analysis"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version           string           `json:"version"`
	Files             []JSONFileResult `json:"files"`
	Summary           analysis.Totals  `json:"summary"`
	MaxErrorsExceeded bool             `json:"maxErrorsExceeded,omitempty"`
}

// JSONFileResult holds the errors of one file.
type JSONFileResult struct {
	Path   string      `json:"path"`
	Errors []JSONError `json:"errors"`
}

// JSONError is a single code style error.
type JSONError struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Fixable bool   `json:"fixable"`
}

// JSONFailure is a file that could not be checked.
type JSONFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// JSONRenderer formats a report as JSON. Files appear in run order and
// files without errors are omitted.
type JSONRenderer struct {
	opts Options
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	return &JSONRenderer{opts: opts}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(_ context.Context, report *analysis.Report) error {
	output := struct {
		JSONOutput
		Failures []JSONFailure `json:"failures,omitempty"`
	}{
		JSONOutput: r.buildOutput(report),
	}
	for _, f := range report.Failures {
		output.Failures = append(output.Failures, JSONFailure{Path: f.File, Error: f.Message})
	}

	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return bw.Flush()
}

func (r *JSONRenderer) buildOutput(report *analysis.Report) JSONOutput {
	output := JSONOutput{
		Version:           report.Version,
		Files:             make([]JSONFileResult, 0),
		Summary:           report.Totals,
		MaxErrorsExceeded: report.MaxErrorsExceeded,
	}

	index := make(map[string]int)
	for _, e := range report.Errors {
		i, ok := index[e.File]
		if !ok {
			i = len(output.Files)
			index[e.File] = i
			output.Files = append(output.Files, JSONFileResult{Path: e.File})
		}
		output.Files[i].Errors = append(output.Files[i].Errors, JSONError{
			Rule:    e.Rule,
			Message: e.Message,
			Line:    e.Line,
			Column:  e.Column,
			Fixable: e.Fixable,
		})
	}
	return output
}
