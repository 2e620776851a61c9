// Package config defines the settings object that drives a check run.
// These types are pure data structures; binding settings to rules lives in
// the lint package.
package config

import "slices"

// Settings is a JSON-like object that remembers key insertion order.
//
// Values are nil, bool, int, float64, string, []any or *Settings.
// Setting an existing key keeps its position; deleting and re-adding a
// key moves it to the end.
type Settings struct {
	keys   []string
	values map[string]any
}

// New returns an empty Settings.
func New() *Settings {
	return &Settings{values: make(map[string]any)}
}

// Len returns the number of keys.
func (s *Settings) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns the keys in insertion order.
func (s *Settings) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.keys)
}

// Get returns the value for key.
func (s *Settings) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Settings) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Set stores value under key.
func (s *Settings) Set(key string, value any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Delete removes key.
func (s *Settings) Delete(key string) {
	if s == nil {
		return
	}
	if _, exists := s.values[key]; !exists {
		return
	}
	delete(s.values, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
}

// Each calls fn for every key in insertion order.
func (s *Settings) Each(fn func(key string, value any)) {
	if s == nil {
		return
	}
	for _, k := range s.keys {
		fn(k, s.values[k])
	}
}

// Clone returns a deep copy.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	out := &Settings{
		keys:   slices.Clone(s.keys),
		values: make(map[string]any, len(s.values)),
	}
	for k, v := range s.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *Settings:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// ToMap converts the settings into plain maps and slices.
// Key order is lost.
func (s *Settings) ToMap() map[string]any {
	if s == nil {
		return nil
	}
	out := make(map[string]any, len(s.keys))
	for _, k := range s.keys {
		out[k] = plainValue(s.values[k])
	}
	return out
}

func plainValue(v any) any {
	switch val := v.(type) {
	case *Settings:
		return val.ToMap()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plainValue(item)
		}
		return out
	default:
		return v
	}
}

// Merge returns base overlaid with override. Keys present in override
// win; base keys keep their order and new keys are appended.
// Neither input is modified.
func Merge(base, override *Settings) *Settings {
	out := base.Clone()
	if out == nil {
		out = New()
	}
	override.Each(func(k string, v any) {
		out.Set(k, cloneValue(v))
	})
	return out
}
