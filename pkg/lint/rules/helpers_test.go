package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/lint"
	"github.com/yaklabco/gojscs/pkg/lint/rules"
	"github.com/yaklabco/gojscs/pkg/parser/treesitter"
)

// newChecker builds a checker with the built-in rules loaded from a JSON
// settings document.
func newChecker(t *testing.T, settings string) *lint.Checker {
	t.Helper()

	cfg := lint.NewConfiguration()
	require.NoError(t, rules.RegisterDefaults(cfg))
	require.NoError(t, cfg.Load(mustSettings(t, settings)))

	return lint.NewChecker(cfg, treesitter.New())
}

func mustSettings(t *testing.T, doc string) *config.Settings {
	t.Helper()

	s, err := config.FromJSON([]byte(doc))
	require.NoError(t, err)
	return s
}

// checkWith checks source against a loaded configuration.
func checkWith(t *testing.T, cfg *lint.Configuration, source string) []lint.Error {
	t.Helper()

	errs, err := lint.NewChecker(cfg, treesitter.New()).CheckString(context.Background(), source, "input")
	require.NoError(t, err)
	return errs.GetErrorList()
}

// checkSource returns the visible errors for source.
func checkSource(t *testing.T, settings, source string) []lint.Error {
	t.Helper()

	errs, err := newChecker(t, settings).CheckString(context.Background(), source, "input")
	require.NoError(t, err)
	return errs.GetErrorList()
}

// fixSource runs the fix phase and returns the fixed source.
func fixSource(t *testing.T, settings, source string) (string, []lint.Error) {
	t.Helper()

	result, err := newChecker(t, settings).FixString(context.Background(), source, "input")
	require.NoError(t, err)
	return string(result.Output), result.Errors.GetErrorList()
}

func messages(errs []lint.Error) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}
