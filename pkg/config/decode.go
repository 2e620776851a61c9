package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// ErrNotObject is returned when a document's top level is not an object.
var ErrNotObject = errors.New("configuration must be an object")

// FromJSON decodes a JSON object, keeping key order.
// Comments and trailing commas are allowed (JWCC).
func FromJSON(data []byte) (*Settings, error) {
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	s, err := decodeJSONObject(dec)
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json: unexpected data after top-level object")
	}
	return s, nil
}

func decodeJSONObject(dec *json.Decoder) (*Settings, error) {
	out := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out.Set(key, val)
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch val := tok.(type) {
	case json.Delim:
		switch val {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			items := []any{}
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return items, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", val)
	case json.Number:
		if i, err := strconv.Atoi(val.String()); err == nil {
			return i, nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		// nil, bool, string
		return val, nil
	}
}

// FromYAML decodes a YAML mapping, keeping key order.
func FromYAML(data []byte) (*Settings, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if doc.Kind == 0 {
		return New(), nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}

	v, err := yamlValue(root)
	if err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	s, _ := v.(*Settings)
	return s, nil
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		out := New()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			val, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out.Set(key, val)
		}
		return out, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Normalize(v)
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node", n.Line)
	}
}
