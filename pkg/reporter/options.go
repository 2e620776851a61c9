package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/gojscs/pkg/analysis"
	"github.com/yaklabco/gojscs/pkg/lint"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// SummaryOrder controls which table the summary format prints first.
type SummaryOrder string

// Summary table orders.
const (
	SummaryOrderRules SummaryOrder = "rules"
	SummaryOrderFiles SummaryOrder = "files"
)

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// Compact uses minified output where applicable.
	Compact bool

	// ShowSummary prints run totals after the table and diff formats.
	ShowSummary bool

	// SummaryOrder controls the order of tables in summary output.
	SummaryOrder SummaryOrder

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string

	// MaxErrors is the cutoff quoted by the truncation notice.
	MaxErrors int

	// Verbose prefixes messages of the single-line formats with the rule
	// name.
	Verbose bool

	// Version is the tool version written into machine-readable reports.
	Version string

	// Fixable reports whether an error can be repaired. If nil, only
	// errors carrying a lint.AutoFix are fixable.
	Fixable func(lint.Error) bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:       os.Stdout,
		Format:       FormatConsole,
		Color:        "auto",
		ShowSummary:  true,
		SummaryOrder: SummaryOrderRules,
		MaxErrors:    lint.DefaultMaxErrors,
		Version:      "dev",
	}
}

// displayPath returns path relative to the working directory.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" {
		return path
	}
	return analysis.RelativePath(path, o.WorkingDir)
}

// message returns the text of e, prefixed with its rule in verbose mode.
func (o Options) message(e lint.Error) string {
	if o.Verbose && e.RuleName != "" {
		return e.RuleName + ": " + e.Message
	}
	return e.Message
}
