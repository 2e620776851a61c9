package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/lint"
	"github.com/yaklabco/gojscs/pkg/runner"
)

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// newConfig loads doc with dir as the base path.
func newConfig(t *testing.T, dir, doc string) *lint.Configuration {
	t.Helper()

	settings, err := config.FromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	cfg := lint.NewConfiguration()
	cfg.SetBasePath(dir)
	if err := cfg.Load(settings); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return cfg
}

func relPaths(t *testing.T, dir string, files []string) []string {
	t.Helper()

	out := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsFile := writeFile(t, dir, "app.js", "a;\n")

	files, err := runner.Discover(context.Background(), newConfig(t, dir, `{}`), []string{jsFile}, runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 || files[0] != jsFile {
		t.Fatalf("files = %v, want [%s]", files, jsFile)
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.js", "")
	writeFile(t, dir, "a.js", "")
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, "README.md", "")
	writeFile(t, dir, "lib/c.js", "")
	writeFile(t, dir, "node_modules/dep/index.js", "")
	writeFile(t, dir, ".cache/d.js", "")
	writeFile(t, dir, ".hidden.js", "")

	files, err := runner.Discover(context.Background(), newConfig(t, dir, `{}`), nil, runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"a.js", "b.js", "lib/c.js"}
	if got := relPaths(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

func TestDiscover_SkipsVendoredDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "src/app.js", "")
	writeFile(t, dir, "node_modules/dep/index.js", "")

	// Even with no excludeFiles masks the vendored tree is skipped.
	files, err := runner.Discover(context.Background(), newConfig(t, dir, `{"excludeFiles": []}`), []string{"."}, runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"src/app.js"}
	if got := relPaths(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

func TestDiscover_ExcludeFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "src/app.js", "")
	writeFile(t, dir, "src/app.min.js", "")
	writeFile(t, dir, "build/out.js", "")

	cfg := newConfig(t, dir, `{"excludeFiles": ["build/**", "**/*.min.js"]}`)
	files, err := runner.Discover(context.Background(), cfg, nil, runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"src/app.js"}
	if got := relPaths(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

func TestDiscover_FileExtensionsAndExtract(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.js", "")
	writeFile(t, dir, "b.jsx", "")
	writeFile(t, dir, "docs/guide.md", "")

	cfg := newConfig(t, dir, `{"fileExtensions": [".jsx"], "extract": ["docs/*.md"]}`)
	files, err := runner.Discover(context.Background(), cfg, nil, runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"b.jsx", "docs/guide.md"}
	if got := relPaths(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

func TestDiscover_GlobArguments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "src/a.js", "")
	writeFile(t, dir, "src/deep/b.js", "")
	writeFile(t, dir, "test/c.js", "")

	cfg := newConfig(t, dir, `{}`)
	files, err := runner.Discover(context.Background(), cfg, []string{"src/**/*.js"}, runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"src/a.js", "src/deep/b.js"}
	if got := relPaths(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}

	files, err = runner.Discover(context.Background(), cfg, []string{"nothing/*.js"}, runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("files = %v, want none", files)
	}
}

func TestDiscover_ArgumentOrderAndDeduplication(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "z/last.js", "")
	writeFile(t, dir, "a/first.js", "")

	cfg := newConfig(t, dir, `{}`)
	files, err := runner.Discover(context.Background(), cfg, []string{"z", "a", "z/last.js", "."}, runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{"z/last.js", "a/first.js"}
	if got := relPaths(t, dir, files); !slices.Equal(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := runner.Discover(context.Background(), newConfig(t, dir, `{}`), []string{"missing.js"}, runner.Options{WorkingDir: dir})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.js", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, newConfig(t, dir, `{}`), nil, runner.Options{WorkingDir: dir})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outside := t.TempDir()
	writeFile(t, outside, "linked.js", "")
	writeFile(t, dir, "own.js", "")
	if err := os.Symlink(outside, filepath.Join(dir, "shared")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	cfg := newConfig(t, dir, `{}`)

	files, err := runner.Discover(context.Background(), cfg, nil, runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 {
		t.Errorf("without FollowSymlinks files = %v, want 1", files)
	}

	files, err = runner.Discover(context.Background(), cfg, nil, runner.Options{WorkingDir: dir, FollowSymlinks: true})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("with FollowSymlinks files = %v, want 2", files)
	}
}
