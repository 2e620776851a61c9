package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/jsast"
	"github.com/yaklabco/gojscs/pkg/lint"
	"github.com/yaklabco/gojscs/pkg/lint/rules"
	"github.com/yaklabco/gojscs/pkg/parser/treesitter"
)

func settings(t *testing.T, doc string) *config.Settings {
	t.Helper()

	s, err := config.FromJSON([]byte(doc))
	require.NoError(t, err)
	return s
}

// loadedConfig registers the built-in rules and presets and loads doc.
func loadedConfig(t *testing.T, doc string) *lint.Configuration {
	t.Helper()

	cfg := lint.NewConfiguration()
	require.NoError(t, rules.RegisterDefaults(cfg))
	require.NoError(t, cfg.Load(settings(t, doc)))
	return cfg
}

func checkString(t *testing.T, cfg *lint.Configuration, source string) *lint.Errors {
	t.Helper()

	errs, err := lint.NewChecker(cfg, treesitter.New()).CheckString(context.Background(), source, "input")
	require.NoError(t, err)
	return errs
}

func parseFile(t *testing.T, source string) *lint.File {
	t.Helper()

	prog, err := treesitter.New().Parse(context.Background(), "input", []byte(source), jsast.ParseOptions{})
	require.NoError(t, err)
	return lint.NewFile("input", prog, jsast.ParseOptions{})
}

// funcRule adapts a function into a rule.
type funcRule struct {
	lint.BaseRule
	check func(file *lint.File, errs *lint.Errors)
}

func newFuncRule(name string, check func(file *lint.File, errs *lint.Errors)) *funcRule {
	return &funcRule{BaseRule: lint.NewBaseRule(name, "test rule"), check: check}
}

func (r *funcRule) Configure(value any) error { return r.RequireTrue(value) }

func (r *funcRule) Check(file *lint.File, errs *lint.Errors) { r.check(file, errs) }
