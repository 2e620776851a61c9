// Package runner checks many files with one configured checker.
package runner

// Options controls a multi-file run.
type Options struct {
	// WorkingDir is the base directory used to resolve relative paths and
	// glob patterns. If empty, the process working directory is used.
	WorkingDir string

	// Jobs bounds the number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Fix repairs what the configured rules can fix and writes the result.
	Fix bool

	// DryRun computes diffs instead of writing fixes. It implies Fix.
	DryRun bool

	// Backup keeps a copy of every file before it is rewritten.
	Backup bool

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func effectivePaths(paths []string) []string {
	if len(paths) == 0 {
		return []string{"."}
	}
	return paths
}
