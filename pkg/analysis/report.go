package analysis

import "time"

// Report contains pre-computed views of a run.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Errors is the flat list for detailed output.
	Errors []ErrorEntry `json:"errors,omitempty"`

	// Failures lists files that could not be checked.
	Failures []FailureEntry `json:"failures,omitempty"`

	// ByFile groups errors by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByRule groups errors by rule.
	ByRule []RuleAnalysis `json:"byRule,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// MaxErrorsExceeded is set when errors were dropped by maxErrors.
	MaxErrorsExceeded bool `json:"maxErrorsExceeded,omitempty"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// ErrorEntry is a single code style error in the report.
type ErrorEntry struct {
	File    string `json:"file"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Fixable bool   `json:"fixable"`
}

// FailureEntry is a file that could not be processed.
type FailureEntry struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesWithErrors int `json:"filesWithErrors"`
	FilesFailed     int `json:"filesFailed"`
	Errors          int `json:"errors"`
	Fixable         int `json:"fixable"`
	Fixed           int `json:"fixed"`
	FilesModified   int `json:"filesModified"`
}

// HasErrors returns true if any code style error was reported.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// HasFailures returns true if any file could not be processed.
func (t Totals) HasFailures() bool {
	return t.FilesFailed > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path    string   `json:"path"`
	Errors  int      `json:"errors"`
	Fixable int      `json:"fixable"`
	Rules   []string `json:"rules,omitempty"`
}

// RuleAnalysis contains aggregated data for a single rule.
type RuleAnalysis struct {
	Rule    string   `json:"rule"`
	Errors  int      `json:"errors"`
	Fixable bool     `json:"fixable"`
	Files   []string `json:"files,omitempty"`
}
