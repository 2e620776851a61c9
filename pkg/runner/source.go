package runner

import (
	"context"

	"github.com/yaklabco/gojscs/pkg/lint"
)

// StdinName is the file name given to source read from standard input.
const StdinName = "input"

// CheckSource checks one in-memory source under name and wraps the
// outcome in a Result, so it can be reported like a file run. With fix
// set the source is repaired and the remaining errors are returned; the
// repaired source is in Files[0].Fix.Output.
func CheckSource(ctx context.Context, checker *lint.Checker, source, name string, fix bool) *Result {
	result := &Result{
		Files: []FileResult{{Path: name}},
		Stats: Stats{FilesDiscovered: 1, ErrorsByRule: make(map[string]int)},
	}
	fr := &result.Files[0]

	if fix {
		fixed, err := checker.FixString(ctx, source, name)
		if err != nil {
			fr.Err = err
		} else {
			fr.Fix = fixed
			fr.Errors = fixed.Errors
		}
	} else {
		errs, err := checker.CheckString(ctx, source, name)
		if err != nil {
			fr.Err = err
		} else {
			fr.Errors = errs
		}
	}

	result.truncate(checker.Configuration().MaxErrors())
	result.accumulate(*fr)
	return result
}
