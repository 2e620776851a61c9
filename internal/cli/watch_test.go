package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, dir := range []string{"src/lib", "node_modules/pkg", ".git/objects"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.js"), nil, 0o644))

	dirs, err := watchDirs([]string{"src", "app.js", "src/**/*.js"}, root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		root,
		filepath.Join(root, "src"),
		filepath.Join(root, "src", "lib"),
	}, dirs)

	dirs, err = watchDirs(nil, root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		root,
		filepath.Join(root, "src"),
		filepath.Join(root, "src", "lib"),
	}, dirs)

	_, err = watchDirs([]string{"missing"}, root)
	assert.Error(t, err)
}

func TestCollect_DebouncesAndFilters(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan fsnotify.Event)
	errs := make(chan error)
	out := make(chan []string)
	accept := func(path string) bool { return strings.HasSuffix(path, ".js") }

	go collect(ctx, events, errs, accept, 20*time.Millisecond, out)

	events <- fsnotify.Event{Name: "/p/b.js", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "/p/a.js", Op: fsnotify.Create}
	events <- fsnotify.Event{Name: "/p/b.js", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "/p/notes.txt", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "/p/c.js", Op: fsnotify.Remove}

	select {
	case batch := <-out:
		assert.Equal(t, []string{"/p/a.js", "/p/b.js"}, batch)
	case <-time.After(5 * time.Second):
		t.Fatal("no batch received")
	}
}

func TestCollect_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		collect(ctx, make(chan fsnotify.Event), make(chan error), func(string) bool { return true }, time.Second, make(chan []string))
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("collect did not return after cancel")
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(ErrViolationsFound))
	assert.Equal(t, ExitFailure, ExitCode(os.ErrNotExist))
	assert.Equal(t, ExitUsage, ExitCode(&UsageError{Err: errNoInput}))
}

func TestStdinSource(t *testing.T) {
	t.Parallel()

	src, ok, err := stdinSource(strings.NewReader("var a;"), nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "var a;", src)

	_, ok, err = stdinSource(strings.NewReader("var a;"), []string{"a.js"})
	require.NoError(t, err)
	assert.False(t, ok)
}
