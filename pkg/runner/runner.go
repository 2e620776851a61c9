package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gojscs/pkg/lint"
)

// Runner checks files concurrently through a lint.Pipeline.
type Runner struct {
	// Pipeline handles per-file processing with safe writes.
	Pipeline *lint.Pipeline
}

// New creates a Runner around checker.
func New(checker *lint.Checker) *Runner {
	return &Runner{Pipeline: lint.NewPipeline(checker)}
}

// Run discovers the files under paths and checks them with checker.
func Run(ctx context.Context, checker *lint.Checker, paths []string, opts Options) (*Result, error) {
	return New(checker).Run(ctx, paths, opts)
}

type job struct {
	index int
	path  string
}

type outcome struct {
	index  int
	result FileResult
}

// Run discovers files and processes them with a bounded worker pool.
// Results keep discovery order, and the maxErrors option is applied
// across the whole run.
func (r *Runner) Run(ctx context.Context, paths []string, opts Options) (*Result, error) {
	cfg := r.Pipeline.Checker.Configuration()

	files, err := Discover(ctx, cfg, paths, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileResult, len(files)),
		Stats: Stats{ErrorsByRule: make(map[string]int)},
	}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	pipelineOpts := lint.PipelineOptions{
		Fix:    opts.Fix || opts.DryRun || cfg.ShouldFix(),
		DryRun: opts.DryRun,
		Backup: opts.Backup,
	}

	workCh := make(chan job)
	outCh := make(chan outcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, pipelineOpts)
		}()
	}

	go func() {
		defer close(workCh)
		for i, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- job{index: i, path: path}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	done := make([]bool, len(files))
	for out := range outCh {
		result.Files[out.index] = out.result
		done[out.index] = true
	}

	if err := ctx.Err(); err != nil {
		kept := result.Files[:0]
		for i, f := range result.Files {
			if done[i] {
				kept = append(kept, f)
			}
		}
		result.Files = kept
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	result.truncate(cfg.MaxErrors())
	for _, f := range result.Files {
		result.accumulate(f)
	}
	return result, nil
}

// worker processes jobs until workCh closes or ctx is cancelled.
func (r *Runner) worker(ctx context.Context, workCh <-chan job, outCh chan<- outcome, opts lint.PipelineOptions) {
	for j := range workCh {
		if ctx.Err() != nil {
			return
		}

		fr := FileResult{Path: j.path}
		pr, err := r.Pipeline.ProcessFile(ctx, j.path, opts)
		switch {
		case err != nil && !errors.Is(err, lint.ErrFileExcluded):
			fr.Err = err
		case pr != nil:
			fr.Errors = pr.Errors
			fr.Fix = pr.Fix
			fr.Diff = pr.Diff
			fr.Written = pr.Written
			fr.Skipped = pr.Skipped
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome{index: j.index, result: fr}:
		}
	}
}
