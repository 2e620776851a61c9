package analysis

import "github.com/yaklabco/gojscs/pkg/lint"

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by error count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically.
	SortByAlpha SortField = "alpha"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha:
		return true
	default:
		return false
	}
}

// Options configures Analyze.
type Options struct {
	// IncludeErrors includes the flat error list.
	IncludeErrors bool

	// IncludeByFile includes the per-file analysis.
	IncludeByFile bool

	// IncludeByRule includes the per-rule analysis.
	IncludeByRule bool

	// SortBy specifies how to sort ByFile and ByRule.
	SortBy SortField

	// SortDesc sorts counts highest first.
	SortDesc bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string

	// Fixable reports whether an error can be repaired. If nil, errors
	// carrying a lint.AutoFix are fixable.
	Fixable func(lint.Error) bool
}

// DefaultOptions returns Options with every view enabled.
func DefaultOptions() Options {
	return Options{
		IncludeErrors: true,
		IncludeByFile: true,
		IncludeByRule: true,
		SortBy:        SortByCount,
		SortDesc:      true,
	}
}

func (o Options) fixable(e lint.Error) bool {
	if o.Fixable != nil {
		return o.Fixable(e)
	}
	_, ok := e.Additional.(lint.AutoFix)
	return ok
}
