package reporter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/lint"
	"github.com/yaklabco/gojscs/pkg/lint/rules"
	"github.com/yaklabco/gojscs/pkg/parser/treesitter"
	"github.com/yaklabco/gojscs/pkg/runner"
)

func newChecker(t *testing.T, doc string) *lint.Checker {
	t.Helper()

	settings, err := config.FromJSON([]byte(doc))
	require.NoError(t, err)
	cfg := lint.NewConfiguration()
	require.NoError(t, rules.RegisterDefaults(cfg))
	require.NoError(t, cfg.Load(settings))
	return lint.NewChecker(cfg, treesitter.New())
}

// checked returns a FileResult for source checked as path.
func checked(t *testing.T, checker *lint.Checker, path, source string) runner.FileResult {
	t.Helper()

	errs, err := checker.CheckString(context.Background(), source, path)
	require.NoError(t, err)
	return runner.FileResult{Path: path, Errors: errs}
}

// keywordResult is one file named "input" with one disallowKeywords error.
func keywordResult(t *testing.T) *runner.Result {
	t.Helper()

	checker := newChecker(t, `{"disallowKeywords": ["with"]}`)
	return &runner.Result{Files: []runner.FileResult{checked(t, checker, "input", "with (x) {}")}}
}

// mixedResult has a file with errors, a clean file and a parse failure,
// all under /work.
func mixedResult(t *testing.T) *runner.Result {
	t.Helper()

	checker := newChecker(t, `{"disallowKeywords": ["with"], "disallowTrailingWhitespace": true}`)
	return &runner.Result{Files: []runner.FileResult{
		checked(t, checker, "/work/a.js", "with (x) {}\nvar a = 1; \n"),
		checked(t, checker, "/work/b.js", "var b = 2;\n"),
		{Path: "/work/c.js", Err: errors.New("Unexpected token (1:4)")},
	}}
}
