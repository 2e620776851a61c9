package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/gojscs/internal/logging"
	"github.com/yaklabco/gojscs/pkg/lint"
)

// defaultDebounce groups the events of one save into a single re-check.
const defaultDebounce = 200 * time.Millisecond

// watch re-runs onChange with the changed files until ctx is cancelled or
// the process is interrupted.
func watch(
	ctx context.Context,
	cfg *lint.Configuration,
	paths []string,
	workDir string,
	debounce time.Duration,
	onChange func(ctx context.Context, changed []string),
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	dirs, err := watchDirs(paths, workDir)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	logging.FromContext(ctx).Debug("watching directories", logging.FieldPaths, dirs)

	accept := func(path string) bool {
		return cfg.HasCorrectExtension(path) && !cfg.IsFileExcluded(path)
	}
	batches := make(chan []string)
	go collect(ctx, fsw.Events, fsw.Errors, accept, debounce, batches)

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-batches:
			onChange(ctx, changed)
		}
	}
}

// collect turns raw events into batches of changed files. A batch is sent
// once no accepted event arrived for the debounce interval.
func collect(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	accept func(string) bool,
	debounce time.Duration,
	out chan<- []string,
) {
	logger := logging.FromContext(ctx)
	pending := map[string]bool{}
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !accept(event.Name) {
				continue
			}
			pending[event.Name] = true
			timer.Reset(debounce)
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Warn("watch error", logging.FieldError, err)
		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			sort.Strings(changed)
			pending = map[string]bool{}
			select {
			case out <- changed:
			case <-ctx.Done():
				return
			}
		}
	}
}

// watchDirs returns every directory holding a checked path: the parent
// of each file and each directory tree, minus hidden and node_modules
// directories. Glob arguments watch the directory before the first
// pattern segment.
func watchDirs(paths []string, workDir string) ([]string, error) {
	seen := map[string]bool{}
	var dirs []string
	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(workDir, p)
		}
		if strings.ContainsAny(p, "*?[{") {
			base, _ := doublestar.SplitPattern(filepath.ToSlash(p))
			p = filepath.FromSlash(base)
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		if !info.IsDir() {
			add(filepath.Dir(p))
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			name := d.Name()
			if path != p && (name == "node_modules" || (len(name) > 1 && name[0] == '.')) {
				return filepath.SkipDir
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}
