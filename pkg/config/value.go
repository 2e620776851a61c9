package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
)

// ErrNotJSON is returned for values that have no JSON representation.
var ErrNotJSON = errors.New("value is not JSON-serializable")

// Normalize converts v into the value forms Settings holds.
// Maps become *Settings with sorted keys, integral floats become int,
// and any other slice becomes []any. Functions, channels and other
// non-JSON values fail with ErrNotJSON.
func Normalize(v any) (any, error) {
	switch val := v.(type) {
	case nil, bool, string:
		return val, nil
	case int:
		return val, nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return int(reflect.ValueOf(val).Convert(reflect.TypeOf(int64(0))).Int()), nil
	case float32:
		return normalizeFloat(float64(val))
	case float64:
		return normalizeFloat(val)
	case *Settings:
		return normalizeSettings(val)
	case map[string]any:
		return FromMap(val)
	case []any:
		return normalizeSlice(val)
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return normalizeSlice(items)
	}
	return nil, fmt.Errorf("%w: %T", ErrNotJSON, v)
}

func normalizeFloat(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", ErrNotJSON, f)
	}
	if f == math.Trunc(f) && math.Abs(f) < math.MaxInt32 {
		return int(f), nil
	}
	return f, nil
}

func normalizeSlice(items []any) ([]any, error) {
	out := make([]any, len(items))
	for i, item := range items {
		nv, err := Normalize(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = nv
	}
	return out, nil
}

func normalizeSettings(s *Settings) (*Settings, error) {
	out := New()
	var err error
	s.Each(func(k string, v any) {
		if err != nil {
			return
		}
		nv, nerr := Normalize(v)
		if nerr != nil {
			err = fmt.Errorf("%s: %w", k, nerr)
			return
		}
		out.Set(k, nv)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FromMap builds Settings from a plain map. Go maps have no order, so
// keys are inserted in sorted order.
func FromMap(m map[string]any) (*Settings, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := New()
	for _, k := range keys {
		nv, err := Normalize(m[k])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out.Set(k, nv)
	}
	return out, nil
}

// AsBool reports v as a bool.
func AsBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// AsInt reports v as an int. Integral floats are accepted.
func AsInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case float64:
		if val == math.Trunc(val) {
			return int(val), true
		}
	}
	return 0, false
}

// AsString reports v as a string.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsStringList reports v as a list of strings. Every element must be a
// string.
func AsStringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// AsStringOrList accepts a single string or a list of strings.
func AsStringOrList(v any) ([]string, bool) {
	if s, ok := v.(string); ok {
		return []string{s}, true
	}
	return AsStringList(v)
}

// AsSettings reports v as a nested object.
func AsSettings(v any) (*Settings, bool) {
	s, ok := v.(*Settings)
	return s, ok && s != nil
}

// IsDisabled reports whether a rule value deconfigures the rule.
func IsDisabled(v any) bool {
	if v == nil {
		return true
	}
	b, ok := v.(bool)
	return ok && !b
}
