package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojscs/pkg/fsutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRead(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", "var a;\n")

	content, snap, err := fsutil.Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "var a;\n", string(content))
	assert.Equal(t, int64(7), snap.Size)
	assert.Equal(t, os.FileMode(0o600), snap.Mode.Perm())
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, err := fsutil.Read(context.Background(), filepath.Join(dir, "missing.js"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)

	_, _, err = fsutil.Read(context.Background(), dir)
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = fsutil.Read(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSnapshot_Changed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", "one")

	_, snap, err := fsutil.Read(ctx, path)
	require.NoError(t, err)

	changed, err := snap.Changed(ctx, true)
	require.NoError(t, err)
	assert.False(t, changed)

	// Same size, different content, mod time pinned back.
	require.NoError(t, os.WriteFile(path, []byte("two"), 0o600))
	require.NoError(t, os.Chtimes(path, time.Now(), snap.ModTime))

	changed, err = snap.Changed(ctx, false)
	require.NoError(t, err)
	assert.False(t, changed, "quick check only compares size and time")

	changed, err = snap.Changed(ctx, true)
	require.NoError(t, err)
	assert.True(t, changed)

	require.NoError(t, os.Remove(path))
	changed, err = snap.Changed(ctx, false)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", "old")

	require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("new"), 0o640))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be renamed away")
}

func TestBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := writeFile(t, dir, "a.js", "original")

	created, err := fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, created)

	require.NoError(t, os.WriteFile(path, []byte("changed"), 0o600))

	created, err = fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.False(t, created, "existing backup is kept")

	restored, err := fsutil.RestoreBackup(path)
	require.NoError(t, err)
	assert.True(t, restored)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))

	restored, err = fsutil.RestoreBackup(path)
	require.NoError(t, err)
	assert.False(t, restored)
}
