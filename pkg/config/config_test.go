package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gojscs/pkg/config"
)

func TestSettings_InsertionOrder(t *testing.T) {
	t.Parallel()

	s := config.New()
	s.Set("b", 1)
	s.Set("a", 2)
	s.Set("c", 3)
	s.Set("b", 4)
	assert.Equal(t, []string{"b", "a", "c"}, s.Keys())

	v, ok := s.Get("b")
	require.True(t, ok)
	assert.Equal(t, 4, v)

	s.Delete("b")
	s.Set("b", 5)
	assert.Equal(t, []string{"a", "c", "b"}, s.Keys())
	assert.Equal(t, 3, s.Len())

	s.Delete("missing")
	assert.Equal(t, 3, s.Len())
}

func TestSettings_NilSafe(t *testing.T) {
	t.Parallel()

	var s *config.Settings
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Keys())
	assert.False(t, s.Has("x"))
	assert.Nil(t, s.Clone())
	s.Each(func(string, any) { t.Fatal("unexpected call") })
}

func TestSettings_CloneIsDeep(t *testing.T) {
	t.Parallel()

	inner := config.New()
	inner.Set("x", 1)
	s := config.New()
	s.Set("nested", inner)
	s.Set("list", []any{"a"})

	clone := s.Clone()
	inner.Set("x", 2)
	list, _ := s.Get("list")
	list.([]any)[0] = "changed"

	nested, _ := clone.Get("nested")
	got, _ := nested.(*config.Settings).Get("x")
	assert.Equal(t, 1, got)

	clonedList, _ := clone.Get("list")
	assert.Equal(t, []any{"a"}, clonedList)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.New()
	base.Set("a", 1)
	base.Set("b", 2)

	override := config.New()
	override.Set("c", 3)
	override.Set("a", nil)

	merged := config.Merge(base, override)
	assert.Equal(t, []string{"a", "b", "c"}, merged.Keys())
	v, _ := merged.Get("a")
	assert.Nil(t, v)

	v, _ = base.Get("a")
	assert.Equal(t, 1, v, "base must not change")

	assert.Equal(t, 2, config.Merge(nil, override).Len())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	v, err := config.Normalize(map[string]any{"z": 1, "a": []string{"x"}, "f": 2.0, "g": 1.5})
	require.NoError(t, err)
	s, ok := config.AsSettings(v)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "f", "g", "z"}, s.Keys())

	f, _ := s.Get("f")
	assert.Equal(t, 2, f)
	g, _ := s.Get("g")
	assert.InDelta(t, 1.5, g, 0)
	a, _ := s.Get("a")
	assert.Equal(t, []any{"x"}, a)

	_, err = config.Normalize(func() {})
	require.ErrorIs(t, err, config.ErrNotJSON)

	_, err = config.Normalize(map[string]any{"k": []any{make(chan int)}})
	require.ErrorIs(t, err, config.ErrNotJSON)
	assert.Contains(t, err.Error(), "k")
}

func TestValueHelpers(t *testing.T) {
	t.Parallel()

	_, ok := config.AsStringList([]any{"a", 1})
	assert.False(t, ok)

	list, ok := config.AsStringOrList("one")
	assert.True(t, ok)
	assert.Equal(t, []string{"one"}, list)

	n, ok := config.AsInt(3.0)
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	_, ok = config.AsInt(3.5)
	assert.False(t, ok)

	assert.True(t, config.IsDisabled(nil))
	assert.True(t, config.IsDisabled(false))
	assert.False(t, config.IsDisabled(true))
	assert.False(t, config.IsDisabled([]any{}))
}

func TestSettings_MarshalJSON(t *testing.T) {
	t.Parallel()

	inner := config.New()
	inner.Set("y", true)
	inner.Set("x", nil)
	s := config.New()
	s.Set("z", inner)
	s.Set("a", []any{1, "two"})

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":{"y":true,"x":null},"a":[1,"two"]}`, string(raw))
	assert.Equal(t, `{"z":{"y":true,"x":null},"a":[1,"two"]}`, string(raw))
}
