// Package reporter writes the results of a run in one of several formats.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gojscs/pkg/analysis"
	"github.com/yaklabco/gojscs/pkg/runner"
)

// Compile-time interface check for reporterFacade.
var _ Reporter = (*reporterFacade)(nil)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of errors reported and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// reporterFacade bridges the Reporter interface to Renderer implementations.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

// Report implements Reporter by analyzing the result and rendering it.
func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.Errors, nil
}

// newRendererFacade creates a facade wrapping a Renderer.
func newRendererFacade(renderer Renderer, opts Options) *reporterFacade {
	analysisOpts := analysis.DefaultOptions()
	analysisOpts.WorkingDir = opts.WorkingDir
	analysisOpts.Fixable = opts.Fixable
	return &reporterFacade{
		renderer:     renderer,
		analysisOpts: analysisOpts,
	}
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.SummaryOrder == "" {
		opts.SummaryOrder = defaults.SummaryOrder
	}
	if opts.Version == "" {
		opts.Version = defaults.Version
	}

	format := opts.Format
	if format == "" {
		format = FormatConsole
	}

	switch format {
	case FormatConsole:
		return NewConsoleReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatTable:
		return newRendererFacade(NewTableRenderer(opts), opts), nil
	case FormatJSON:
		return newRendererFacade(NewJSONRenderer(opts), opts), nil
	case FormatJUnit:
		return NewJUnitReporter(opts), nil
	case FormatCheckstyle:
		return NewCheckstyleReporter(opts), nil
	case FormatInline:
		return NewInlineReporter(opts), nil
	case FormatUnix:
		return NewUnixReporter(opts), nil
	case FormatSARIF:
		return newRendererFacade(NewSARIFRenderer(opts), opts), nil
	case FormatSummary:
		return newRendererFacade(NewSummaryRenderer(opts), opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
