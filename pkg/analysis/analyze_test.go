package analysis

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/lint"
	"github.com/yaklabco/gojscs/pkg/lint/rules"
	"github.com/yaklabco/gojscs/pkg/parser/treesitter"
	"github.com/yaklabco/gojscs/pkg/runner"
)

const testConfig = `{
	"disallowKeywords": ["with"],
	"disallowTrailingComma": true,
	"disallowTrailingWhitespace": true
}`

func newTestChecker(t *testing.T) *lint.Checker {
	t.Helper()

	settings, err := config.FromJSON([]byte(testConfig))
	require.NoError(t, err)
	cfg := lint.NewConfiguration()
	require.NoError(t, rules.RegisterDefaults(cfg))
	require.NoError(t, cfg.Load(settings))
	return lint.NewChecker(cfg, treesitter.New())
}

// fileResult checks source and wraps it the way the runner does.
func fileResult(t *testing.T, checker *lint.Checker, path, source string) runner.FileResult {
	t.Helper()

	errs, err := checker.CheckString(context.Background(), source, path)
	require.NoError(t, err)
	return runner.FileResult{Path: path, Errors: errs}
}

func sampleResult(t *testing.T) *runner.Result {
	t.Helper()

	checker := newTestChecker(t)
	return &runner.Result{
		Files: []runner.FileResult{
			fileResult(t, checker, "/work/a.js", "with (x) {}\nwith (y) {}\nvar a = 1; \n"),
			fileResult(t, checker, "/work/lib/b.js", "var b = [1,];\n"),
			fileResult(t, checker, "/work/clean.js", "var c = 1;\n"),
			{Path: "/work/broken.js", Err: errors.New("Unexpected token")},
		},
	}
}

func TestAnalyze_NilResult(t *testing.T) {
	t.Parallel()

	report := Analyze(nil, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, ReportVersion, report.Version)
	assert.Zero(t, report.Totals)
	assert.Empty(t, report.Errors)
}

func TestAnalyze_EmptyResult(t *testing.T) {
	t.Parallel()

	report := Analyze(&runner.Result{}, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, 0, report.Totals.Errors)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.ByFile)
	assert.Empty(t, report.ByRule)
}

func TestAnalyze_CountsTotals(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(t), DefaultOptions())

	assert.Equal(t, 3, report.Totals.Files)
	assert.Equal(t, 2, report.Totals.FilesWithErrors)
	assert.Equal(t, 1, report.Totals.FilesFailed)
	assert.Equal(t, 4, report.Totals.Errors)
	assert.Equal(t, 1, report.Totals.Fixable)
	assert.True(t, report.Totals.HasErrors())
	assert.True(t, report.Totals.HasFailures())
}

func TestAnalyze_GroupsByRule(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(t), DefaultOptions())

	require.Len(t, report.ByRule, 3)
	assert.Equal(t, "disallowKeywords", report.ByRule[0].Rule)
	assert.Equal(t, 2, report.ByRule[0].Errors)
	assert.Equal(t, []string{"/work/a.js"}, report.ByRule[0].Files)
	assert.False(t, report.ByRule[0].Fixable)

	// Ties fall back to the rule name.
	assert.Equal(t, "disallowTrailingComma", report.ByRule[1].Rule)
	assert.Equal(t, "disallowTrailingWhitespace", report.ByRule[2].Rule)
	assert.True(t, report.ByRule[2].Fixable)
}

func TestAnalyze_GroupsByFile(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(t), DefaultOptions())

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "/work/a.js", report.ByFile[0].Path)
	assert.Equal(t, 3, report.ByFile[0].Errors)
	assert.Equal(t, 1, report.ByFile[0].Fixable)
	assert.Equal(t, []string{"disallowKeywords", "disallowTrailingWhitespace"}, report.ByFile[0].Rules)
	assert.Equal(t, "/work/lib/b.js", report.ByFile[1].Path)
}

func TestAnalyze_SortAlpha(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.SortBy = SortByAlpha
	report := Analyze(sampleResult(t), opts)

	var names []string
	for _, ra := range report.ByRule {
		names = append(names, ra.Rule)
	}
	assert.Equal(t, []string{"disallowKeywords", "disallowTrailingComma", "disallowTrailingWhitespace"}, names)
}

func TestAnalyze_SortAscending(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.SortDesc = false
	report := Analyze(sampleResult(t), opts)

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "/work/lib/b.js", report.ByFile[0].Path)
}

func TestAnalyze_ErrorEntries(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(t), DefaultOptions())

	require.Len(t, report.Errors, 4)
	first := report.Errors[0]
	assert.Equal(t, "/work/a.js", first.File)
	assert.Equal(t, "disallowKeywords", first.Rule)
	assert.Equal(t, "Illegal keyword: with", first.Message)
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 0, first.Column)

	require.Len(t, report.Failures, 1)
	assert.Equal(t, FailureEntry{File: "/work/broken.js", Message: "Unexpected token"}, report.Failures[0])
}

func TestAnalyze_ExcludeViews(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(t), Options{SortBy: SortByCount})

	assert.Empty(t, report.Errors)
	assert.Empty(t, report.ByFile)
	assert.Empty(t, report.ByRule)
	assert.Equal(t, 4, report.Totals.Errors)
}

func TestAnalyze_FixableFunc(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Fixable = func(e lint.Error) bool { return e.RuleName == "disallowTrailingComma" }
	report := Analyze(sampleResult(t), opts)

	assert.Equal(t, 1, report.Totals.Fixable)
	for _, ra := range report.ByRule {
		assert.Equal(t, ra.Rule == "disallowTrailingComma", ra.Fixable, ra.Rule)
	}
}

func TestAnalyze_RelativePaths(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.WorkingDir = "/work"
	report := Analyze(sampleResult(t), opts)

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "a.js", report.ByFile[0].Path)
	assert.Equal(t, filepath.Join("lib", "b.js"), report.ByFile[1].Path)
	assert.Equal(t, "broken.js", report.Failures[0].File)
}

func TestAnalyze_MaxErrorsExceeded(t *testing.T) {
	t.Parallel()

	report := Analyze(&runner.Result{MaxErrorsExceeded: true}, DefaultOptions())
	assert.True(t, report.MaxErrorsExceeded)
}

func TestRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		workDir string
		want    string
	}{
		{name: "no working dir", path: "/a/b.js", want: "/a/b.js"},
		{name: "inside", path: "/a/b/c.js", workDir: "/a", want: filepath.Join("b", "c.js")},
		{name: "outside", path: "/x/c.js", workDir: "/a", want: filepath.Join("..", "x", "c.js")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RelativePath(tt.path, tt.workDir))
		})
	}
}
