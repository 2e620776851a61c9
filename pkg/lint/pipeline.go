package lint

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/gojscs/pkg/fix"
	"github.com/yaklabco/gojscs/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineOptions controls how a file is processed.
type PipelineOptions struct {
	// Fix enables the fix phase.
	Fix bool

	// DryRun computes a diff instead of writing fixed files.
	DryRun bool

	// Backup keeps a sidecar copy of every file before it is rewritten.
	Backup bool

	// StrictRaceDetection re-hashes a file before writing to detect edits
	// made while it was being processed.
	StrictRaceDetection bool
}

// PipelineResult is the outcome of processing one file.
type PipelineResult struct {
	Path string

	// Errors are the violations found, after fixing when Fix is set.
	Errors *Errors

	// Fix is the fix outcome, nil when Fix is not set.
	Fix *FixResult

	// Diff is the unified diff of the fix in dry-run mode.
	Diff string

	// Written is true when the fixed content was written back.
	Written bool

	// BackupCreated is true when a backup was written.
	BackupCreated bool

	// Skipped is true when the fixed content was not written because
	// the file changed on disk.
	Skipped    bool
	SkipReason string
}

// Summary returns a short description of the result.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "fixed (backup created)"
	case pr.Written:
		return "fixed"
	case pr.Diff != "":
		return "changes pending"
	case pr.Errors != nil && !pr.Errors.IsEmpty():
		return "errors found"
	default:
		return "ok"
	}
}

// Pipeline checks a file and, when asked, writes fixes back safely.
type Pipeline struct {
	Checker *Checker
}

// NewPipeline creates a pipeline around checker.
func NewPipeline(checker *Checker) *Pipeline {
	return &Pipeline{Checker: checker}
}

// ProcessFile runs the pipeline for one file:
//  1. Read the file and snapshot its state.
//  2. Check it, or fix it in memory when Fix is set.
//  3. In dry-run mode, return the diff.
//  4. Otherwise make sure the file did not change meanwhile, back it up
//     if asked, and write the fixed content atomically.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	cfg := p.Checker.Configuration()
	if cfg.IsFileExcluded(path) {
		return nil, ErrFileExcluded
	}
	extracting := cfg.ShouldExtract(path)
	if !extracting && !cfg.HasCorrectExtension(path) {
		return nil, ErrFileExcluded
	}

	content, snap, err := fsutil.Read(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result := &PipelineResult{Path: path}

	if extracting {
		result.Errors, err = p.Checker.CheckExtracted(ctx, content, path)
		return result, err
	}
	if !opts.Fix {
		_, result.Errors, err = p.Checker.check(ctx, content, path)
		return result, err
	}

	fixed, err := p.Checker.FixString(ctx, string(content), path)
	if err != nil {
		return nil, err
	}
	result.Fix = fixed
	result.Errors = fixed.Errors
	if !fixed.Modified() {
		return result, nil
	}

	if opts.DryRun {
		result.Diff = fix.UnifiedDiff(path, content, fixed.Output)
		return result, nil
	}

	changed, err := snap.Changed(ctx, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if changed {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup {
		created, err := fsutil.CreateBackup(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, fixed.Output, snap.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true
	return result, nil
}

// categorizeError wraps err with the matching pipeline error.
func categorizeError(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}

// IsPipelineError reports whether err is a known pipeline error.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrWriteFailure)
}
