package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gojscs/internal/ui/pretty"
)

func TestFormatErrorCount(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		count int
		want  string
	}{
		{count: 0, want: "No code style errors found."},
		{count: 1, want: "1 code style error found."},
		{count: 7, want: "7 code style errors found."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, styles.FormatErrorCount(tt.count))
	}
}

func TestFormatMaxErrorsNotice(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t,
		"Too many errors... Increase `maxErrors` configuration option value to see more (currently 50).",
		styles.FormatMaxErrorsNotice(50))
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name        string
		stats       pretty.RunStats
		contains    []string
		notContains []string
	}{
		{
			name:        "clean",
			stats:       pretty.RunStats{Files: 5},
			contains:    []string{"Summary", "Files checked:     5", "Errors:            0", "Code style OK"},
			notContains: []string{"Files with errors:", "Fixed:"},
		},
		{
			name:     "errors",
			stats:    pretty.RunStats{Files: 10, FilesWithErrors: 3, Errors: 15},
			contains: []string{"Files with errors: 3", "Errors:            15", "Code style errors found"},
		},
		{
			name:     "failed file",
			stats:    pretty.RunStats{Files: 2, FilesFailed: 1},
			contains: []string{"Files failed:      1", "Check failed"},
		},
		{
			name:     "fixed",
			stats:    pretty.RunStats{Files: 2, Fixed: 4, FilesModified: 1},
			contains: []string{"Files modified:    1", "Fixed:             4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := styles.FormatSummary(tt.stats)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats pretty.RunStats
		want  string
	}{
		{
			name:  "clean",
			stats: pretty.RunStats{Files: 1},
			want:  "No code style errors found (1 file checked)\n",
		},
		{
			name:  "clean after fixing",
			stats: pretty.RunStats{Files: 3, Fixed: 2, FilesModified: 1},
			want:  "No code style errors found (3 files checked), 2 fixed in 1 file\n",
		},
		{
			name:  "errors",
			stats: pretty.RunStats{Files: 4, FilesWithErrors: 2, Errors: 5},
			want:  "5 errors in 2 files\n",
		},
		{
			name:  "single error and failure",
			stats: pretty.RunStats{Files: 2, FilesWithErrors: 1, Errors: 1, FilesFailed: 1},
			want:  "1 error in 1 file, 1 file could not be checked\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}
