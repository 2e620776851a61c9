package lint

import (
	"bytes"
	"context"
	"fmt"
	"os"
)

// DefaultMaxFixPasses bounds the check-fix-reparse loop. Rules whose
// fixes keep producing new errors for each other stop here.
const DefaultMaxFixPasses = 5

// FixResult is the outcome of fixing one source.
type FixResult struct {
	// Output is the fixed source.
	Output []byte

	// Errors are the violations left after the final pass.
	Errors *Errors

	// Passes is the number of passes that changed the source.
	Passes int

	// FixedErrors is the number of errors repaired across passes.
	FixedErrors int

	// EditsApplied is the number of edits applied across passes.
	EditsApplied int

	// EditsSkipped is the number of edits dropped as conflicting.
	EditsSkipped int
}

// Modified reports whether the output differs from the input.
func (r *FixResult) Modified() bool {
	return r.Passes > 0
}

// FixString checks source and repairs what it can.
//
// Each pass runs every rule, then applies the fix of every error whose
// rule implements Fixer or that carries an AutoFix, then re-parses the
// result. Passes repeat until nothing changes or DefaultMaxFixPasses is
// reached. A pass whose output no longer parses is discarded.
func (c *Checker) FixString(ctx context.Context, source, filename string) (*FixResult, error) {
	content := []byte(source)
	result := &FixResult{}

	file, errs, err := c.check(ctx, content, filename)
	if err != nil {
		return nil, err
	}

	for range DefaultMaxFixPasses {
		fixed := c.applyFixes(file, errs)
		if !file.HasEdits() {
			break
		}

		out, applied, err := file.ApplyEdits()
		if err != nil {
			return nil, fmt.Errorf("apply fixes to %s: %w", filename, err)
		}
		if bytes.Equal(out, content) {
			break
		}

		nextFile, nextErrs, err := c.check(ctx, out, filename)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("fix cancelled: %w", ctxErr)
			}
			// Keep the last source that parsed.
			break
		}

		content = out
		file, errs = nextFile, nextErrs
		result.Passes++
		result.FixedErrors += fixed
		result.EditsApplied += applied.Applied
		result.EditsSkipped += applied.Skipped
	}

	result.Output = content
	result.Errors = errs
	return result, nil
}

// applyFixes runs the fix of every unfixed error and returns how many
// were repaired. Fixes only record edits on file.
func (c *Checker) applyFixes(file *File, errs *Errors) int {
	fixed := 0
	list := errs.GetUnfilteredList()
	for i := range list {
		e := &list[i]
		if e.Fixed {
			continue
		}
		if af, ok := e.Additional.(AutoFix); ok {
			file.ReplaceRange(af.Start, af.End, af.Text)
			e.Fixed = true
			fixed++
			continue
		}
		rule, ok := c.config.GetConfiguredRule(e.RuleName)
		if !ok {
			continue
		}
		fixer, ok := rule.(Fixer)
		if !ok {
			continue
		}
		if err := runFix(fixer, file, *e); err == nil {
			e.Fixed = true
			fixed++
		}
	}
	return fixed
}

func runFix(fixer Fixer, file *File, e Error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fix panicked: %v", r)
		}
	}()
	return fixer.Fix(file, e)
}

// FixFile reads the file at path and fixes it in memory. Markdown files
// matched by an extract mask are checked but not fixed.
func (c *Checker) FixFile(ctx context.Context, path string) (*FixResult, error) {
	if c.config.IsFileExcluded(path) {
		return nil, ErrFileExcluded
	}
	extracting := c.config.ShouldExtract(path)
	if !extracting && !c.config.HasCorrectExtension(path) {
		return nil, ErrFileExcluded
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if extracting {
		errs, err := c.CheckExtracted(ctx, content, path)
		if err != nil {
			return nil, err
		}
		return &FixResult{Output: content, Errors: errs}, nil
	}
	return c.FixString(ctx, string(content), path)
}
