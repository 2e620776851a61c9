package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojscs/pkg/lint"
	"github.com/yaklabco/gojscs/pkg/lint/rules"
)

func TestPresetNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"airbnb", "google", "jquery"}, rules.PresetNames())
}

func TestPresets_LoadCleanly(t *testing.T) {
	t.Parallel()

	for _, name := range rules.PresetNames() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := lint.NewConfiguration()
			require.NoError(t, rules.RegisterDefaults(cfg))
			require.NoError(t, cfg.Load(mustSettings(t, `{"preset": "`+name+`"}`)))
			assert.NotEmpty(t, cfg.GetConfiguredRules())

			processed := cfg.GetProcessedConfig()
			preset, ok := processed.Get("preset")
			require.True(t, ok)
			assert.Equal(t, name, preset)
		})
	}
}

func TestPresets_RuleOrderFollowsPreset(t *testing.T) {
	t.Parallel()

	preset, err := rules.LoadPreset("google")
	require.NoError(t, err)

	cfg := lint.NewConfiguration()
	require.NoError(t, rules.RegisterDefaults(cfg))
	require.NoError(t, cfg.Load(mustSettings(t, `{"preset": "google"}`)))

	var names []string
	for _, rule := range cfg.GetConfiguredRules() {
		names = append(names, rule.OptionName())
	}
	assert.Equal(t, preset.Keys(), names)
}

func TestPresets_LocalSettingOverridesPreset(t *testing.T) {
	t.Parallel()

	errs := checkSource(t, `{"preset": "google", "validateQuoteMarks": "\""}`, "var a = \"x\";\n")
	assert.Empty(t, errs)

	errs = checkSource(t, `{"preset": "google", "validateQuoteMarks": null}`, "var a = \"x\";\n")
	assert.Empty(t, errs)

	errs = checkSource(t, `{"preset": "google"}`, "var a = \"x\";\n")
	assert.Equal(t, []string{"Invalid quote mark found"}, messages(errs))
}

func TestLoadPreset_Unknown(t *testing.T) {
	t.Parallel()

	_, err := rules.LoadPreset("nope")
	assert.Error(t, err)
}

func TestDefaultRules_Unique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, rule := range rules.DefaultRules() {
		name := rule.OptionName()
		assert.False(t, seen[name], "duplicate rule %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 11)

	cfg := lint.NewConfiguration()
	require.NoError(t, rules.RegisterDefaultRules(cfg))
	var dup *lint.DuplicateRuleError
	assert.ErrorAs(t, rules.RegisterDefaultRules(cfg), &dup)
}

func TestDefaultRules_ExamplesConfigure(t *testing.T) {
	t.Parallel()

	for _, rule := range rules.DefaultRules() {
		example := rules.Example(rule.OptionName())
		require.NotNil(t, example, rule.OptionName())
		assert.NoError(t, rule.Configure(example), rule.OptionName())
	}
}

func TestCanFix(t *testing.T) {
	t.Parallel()

	fixable := map[string]bool{}
	for _, rule := range rules.DefaultRules() {
		fixable[rule.OptionName()] = rules.CanFix(rule)
	}
	assert.True(t, fixable["disallowTrailingComma"])
	assert.True(t, fixable["disallowTrailingWhitespace"])
	assert.False(t, fixable["disallowKeywords"])
	assert.False(t, fixable["maximumLineLength"])
}
