package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojscs/pkg/config"
)

func TestFromJSON(t *testing.T) {
	t.Parallel()

	src := `{
	// rules
	"preset": "google",
	"disallowKeywords": ["with"], /* inline */
	"maxErrors": 10,
	"ratio": 0.5,
	"url": "http://example.com//not-a-comment",
	"nested": {"b": 1, "a": null,},
}`

	s, err := config.FromJSON([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"preset", "disallowKeywords", "maxErrors", "ratio", "url", "nested"}, s.Keys())

	v, _ := s.Get("disallowKeywords")
	assert.Equal(t, []any{"with"}, v)
	v, _ = s.Get("maxErrors")
	assert.Equal(t, 10, v)
	v, _ = s.Get("ratio")
	assert.InDelta(t, 0.5, v, 0)
	v, _ = s.Get("url")
	assert.Equal(t, "http://example.com//not-a-comment", v)

	v, _ = s.Get("nested")
	nested, ok := config.AsSettings(v)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, nested.Keys())
}

func TestFromJSON_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.FromJSON([]byte(`["a"]`))
	require.ErrorIs(t, err, config.ErrNotObject)

	_, err = config.FromJSON([]byte(`{"a": }`))
	require.Error(t, err)

	_, err = config.FromJSON([]byte(`{} {}`))
	require.Error(t, err)
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	src := `
preset: jquery
requireCurlyBraces:
  - if
  - else
maximumLineLength:
  value: 100
  allExcept: [comments]
disallowMultipleVarDecl: null
`
	s, err := config.FromYAML([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"preset", "requireCurlyBraces", "maximumLineLength", "disallowMultipleVarDecl"}, s.Keys())

	v, _ := s.Get("maximumLineLength")
	mll, ok := config.AsSettings(v)
	require.True(t, ok)
	value, _ := mll.Get("value")
	assert.Equal(t, 100, value)

	v, ok = s.Get("disallowMultipleVarDecl")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestFromYAML_EmptyAndInvalid(t *testing.T) {
	t.Parallel()

	s, err := config.FromYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	_, err = config.FromYAML([]byte("- a\n- b\n"))
	require.ErrorIs(t, err, config.ErrNotObject)
}

func TestToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	s := config.New()
	s.Set("zeta", true)
	s.Set("alpha", []any{"x"})

	out, err := s.ToYAML()
	require.NoError(t, err)
	assert.Equal(t, "zeta: true\nalpha:\n  - x\n", string(out))

	back, err := config.FromYAML(out)
	require.NoError(t, err)
	assert.Equal(t, s.Keys(), back.Keys())
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	opts := config.TemplateOptions{
		Preset: "jquery",
		Rules: []config.RuleInfo{
			{Name: "disallowKeywords", Example: []string{"with"}},
			{Name: "maximumLineLength"},
		},
	}

	out, err := config.GenerateTemplate(opts)
	require.NoError(t, err)
	s, err := config.FromJSON(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"preset", "excludeFiles", "disallowKeywords"}, s.Keys())

	opts.Full = true
	opts.Format = config.TemplateYAML
	out, err = config.GenerateTemplate(opts)
	require.NoError(t, err)
	assert.Contains(t, string(out), "# gojscs configuration")
	s, err = config.FromYAML(out)
	require.NoError(t, err)
	assert.True(t, s.Has("maximumLineLength"))

	_, err = config.GenerateTemplate(config.TemplateOptions{Format: "toml"})
	require.Error(t, err)
}
