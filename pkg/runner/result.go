package runner

import "github.com/yaklabco/gojscs/pkg/lint"

// FileResult is the outcome of one file.
type FileResult struct {
	// Path is the absolute path of the file.
	Path string

	// Errors are the violations found, nil when Err is set.
	Errors *lint.Errors

	// Fix is the fix outcome when fixing was requested.
	Fix *lint.FixResult

	// Diff is the unified diff of the fix in dry-run mode.
	Diff string

	// Written is true when fixed content was written back.
	Written bool

	// Skipped is true when a fix was not written because the file
	// changed on disk.
	Skipped bool

	// Err is set when the file could not be processed, for example a
	// *lint.ParseError.
	Err error
}

// ErrorCount returns the number of visible errors of the file.
func (f *FileResult) ErrorCount() int {
	if f.Errors == nil {
		return 0
	}
	return f.Errors.GetErrorCount()
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesChecked is the number of files checked without a fatal error.
	FilesChecked int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// FilesWithErrors is the number of files with at least one error.
	FilesWithErrors int

	// ErrorCount is the number of reported errors across all files.
	ErrorCount int

	// ErrorsFixed is the number of errors repaired across all files.
	ErrorsFixed int

	// FilesModified is the number of files rewritten by fixes.
	FilesModified int

	// ErrorsByRule counts reported errors per rule name.
	ErrorsByRule map[string]int
}

// Result is the outcome of a run.
type Result struct {
	// Files are in discovery order.
	Files []FileResult

	Stats Stats

	// MaxErrorsExceeded is set when errors were dropped because of the
	// maxErrors option.
	MaxErrorsExceeded bool
}

// HasErrors reports whether any style error was reported.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.ErrorCount > 0
}

// HasFailures reports whether any file could not be processed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// truncate enforces limit across the files in order. Zero means no limit.
func (r *Result) truncate(limit int) {
	remaining := limit
	for i := range r.Files {
		errs := r.Files[i].Errors
		if errs == nil {
			continue
		}
		if errs.MaxErrorsExceeded() {
			r.MaxErrorsExceeded = true
		}
		if limit <= 0 {
			continue
		}
		count := errs.GetErrorCount()
		if count > remaining {
			errs.Truncate(remaining)
			r.MaxErrorsExceeded = true
			count = remaining
		}
		remaining -= count
	}
}

// accumulate updates the stats with a file outcome.
func (r *Result) accumulate(f FileResult) {
	if f.Err != nil {
		r.Stats.FilesErrored++
		return
	}
	r.Stats.FilesChecked++

	if f.Written {
		r.Stats.FilesModified++
	}
	if f.Fix != nil {
		r.Stats.ErrorsFixed += f.Fix.FixedErrors
	}

	if f.Errors == nil {
		return
	}
	list := f.Errors.GetErrorList()
	if len(list) > 0 {
		r.Stats.FilesWithErrors++
	}
	r.Stats.ErrorCount += len(list)
	for _, e := range list {
		r.Stats.ErrorsByRule[e.RuleName]++
	}
}
