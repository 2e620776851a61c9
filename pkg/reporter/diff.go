package reporter

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gojscs/internal/ui/pretty"
	"github.com/yaklabco/gojscs/pkg/runner"
)

// DiffReporter writes the fixes of a dry run as git-style unified diffs.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Report implements Reporter. The count is the number of files with
// changes.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var files, additions, deletions int
	for i := range result.Files {
		file := &result.Files[i]
		if file.Err != nil {
			fmt.Fprintf(bw, "%s: %s\n",
				r.styles.FilePath.Render(r.opts.displayPath(file.Path)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Err)),
			)
			continue
		}
		if file.Diff == "" {
			continue
		}

		files++
		add, del := r.writeDiff(bw, filepath.ToSlash(r.opts.displayPath(file.Path)), file.Diff)
		additions += add
		deletions += del
	}

	if files > 0 && r.opts.ShowSummary {
		r.writeSummary(bw, files, additions, deletions)
	}

	return files, nil
}

// writeDiff outputs a single file's diff with formatting and returns its
// added and removed line counts.
func (r *DiffReporter) writeDiff(bw *bufio.Writer, path, diff string) (int, int) {
	fmt.Fprintln(bw, r.styles.DiffHeader.Render(fmt.Sprintf("diff --git a/%s b/%s", path, path)))
	fmt.Fprintln(bw, r.styles.DiffRemove.Render("--- a/"+path))
	fmt.Fprintln(bw, r.styles.DiffAdd.Render("+++ b/"+path))

	var additions, deletions int
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		var styled string
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			continue
		case strings.HasPrefix(line, "@@"):
			styled = r.styles.DiffHunk.Render(line)
		case strings.HasPrefix(line, "+"):
			additions++
			styled = r.styles.DiffAdd.Render(line)
		case strings.HasPrefix(line, "-"):
			deletions++
			styled = r.styles.DiffRemove.Render(line)
		default:
			styled = r.styles.DiffContext.Render(line)
		}
		fmt.Fprintln(bw, styled)
	}

	fmt.Fprintln(bw)
	return additions, deletions
}

// writeSummary writes a summary line at the end.
func (r *DiffReporter) writeSummary(bw *bufio.Writer, files, additions, deletions int) {
	fileWord := "files"
	if files == 1 {
		fileWord = "file"
	}
	parts := []string{fmt.Sprintf("%d %s changed", files, fileWord)}

	if additions > 0 {
		insertionWord := "insertions"
		if additions == 1 {
			insertionWord = "insertion"
		}
		parts = append(parts, r.styles.DiffAdd.Render(fmt.Sprintf("%d %s(+)", additions, insertionWord)))
	}
	if deletions > 0 {
		deletionWord := "deletions"
		if deletions == 1 {
			deletionWord = "deletion"
		}
		parts = append(parts, r.styles.DiffRemove.Render(fmt.Sprintf("%d %s(-)", deletions, deletionWord)))
	}

	fmt.Fprintln(bw, strings.Join(parts, ", "))
}
