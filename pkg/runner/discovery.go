package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/gojscs/pkg/lint"
)

// Discover expands paths into the files cfg accepts.
//
// Directories are walked recursively, skipping hidden and vendored
// directories. Arguments containing glob syntax are expanded with
// doublestar. Every candidate must pass IsFileExcluded and either
// HasCorrectExtension or ShouldExtract. Files keep argument order, each
// directory contributes its files in lexical order, and duplicates are
// dropped.
func Discover(ctx context.Context, cfg *lint.Configuration, paths []string, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, inputPath := range effectivePaths(paths) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		targets, err := expand(workDir, inputPath)
		if err != nil {
			return nil, err
		}

		for _, absPath := range targets {
			info, err := os.Stat(absPath)
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", inputPath, err)
			}
			if !info.IsDir() {
				if accepts(cfg, absPath) {
					add(absPath)
				}
				continue
			}
			discovered, err := walkDirectory(ctx, cfg, absPath, opts)
			if err != nil {
				return nil, err
			}
			for _, f := range discovered {
				add(f)
			}
		}
	}

	return files, nil
}

// expand resolves one argument to absolute paths. Glob arguments may
// match nothing.
func expand(workDir, inputPath string) ([]string, error) {
	if !hasGlobMeta(inputPath) {
		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		return []string{filepath.Clean(absPath)}, nil
	}

	if filepath.IsAbs(inputPath) {
		matches, err := doublestar.FilepathGlob(inputPath)
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", inputPath, err)
		}
		slices.Sort(matches)
		return matches, nil
	}

	pattern := strings.TrimPrefix(filepath.ToSlash(inputPath), "./")
	matches, err := doublestar.Glob(os.DirFS(workDir), pattern)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", inputPath, err)
	}
	out := make([]string, len(matches))
	for i, match := range matches {
		out[i] = filepath.Join(workDir, filepath.FromSlash(match))
	}
	slices.Sort(out)
	return out, nil
}

func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory recursively walks root and returns the accepted files.
func walkDirectory(ctx context.Context, cfg *lint.Configuration, root string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if skipDirectory(root, path, entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // broken symlinks are skipped
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // unreadable targets are skipped
			}
			if info.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				// Walk the target; WalkDir does not follow a symlinked root.
				sub, err := walkDirectory(ctx, cfg, realPath, opts)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if accepts(cfg, path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// skipDirectory reports hidden and vendored directories below root.
func skipDirectory(root, path, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return enry.IsVendor(filepath.ToSlash(rel) + "/")
}

// accepts reports whether cfg would check the file at path.
func accepts(cfg *lint.Configuration, path string) bool {
	if cfg.IsFileExcluded(path) {
		return false
	}
	return cfg.HasCorrectExtension(path) || cfg.ShouldExtract(path)
}
