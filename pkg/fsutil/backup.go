package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// BackupSuffix is appended to a file name to form its backup.
const BackupSuffix = ".jscs.bak"

// BackupPath returns the sidecar backup path of path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies path to its sidecar backup. An existing backup is
// kept, so repeated runs never lose the original content. It reports
// whether a backup was written.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("backup %s: %w", path, err)
	}

	backup := BackupPath(path)
	if _, err := os.Stat(backup); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat backup: %w", err)
	}

	content, snap, err := Read(ctx, path)
	if err != nil {
		return false, err
	}
	if err := WriteAtomic(ctx, backup, content, snap.Mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}

// RestoreBackup moves the backup of path back into place. It reports
// whether a backup existed.
func RestoreBackup(path string) (bool, error) {
	backup := BackupPath(path)
	if err := os.Rename(backup, path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("restore backup: %w", err)
	}
	return true, nil
}
