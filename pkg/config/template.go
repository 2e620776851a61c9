package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Template formats.
const (
	TemplateJSON = "json"
	TemplateYAML = "yaml"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Preset is written as the "preset" key when non-empty.
	Preset string

	// Format is the output format: "json" or "yaml".
	Format string

	// Rules lists rules to spell out explicitly with a sample value.
	// With Full unset only rules that have a non-nil Example are kept.
	Rules []RuleInfo

	// Full includes every rule in Rules, disabled (null) when it has no
	// example value.
	Full bool
}

// RuleInfo describes a rule for template generation.
type RuleInfo struct {
	Name    string
	Example any
	CanFix  bool
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	s := New()
	if opts.Preset != "" {
		s.Set("preset", opts.Preset)
	}
	s.Set("excludeFiles", []any{"node_modules/**"})

	for _, r := range opts.Rules {
		if r.Example == nil && !opts.Full {
			continue
		}
		v, err := Normalize(r.Example)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.Name, err)
		}
		s.Set(r.Name, v)
	}

	switch strings.ToLower(opts.Format) {
	case "", TemplateJSON:
		raw, err := s.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("marshal JSON: %w", err)
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "    "); err != nil {
			return nil, fmt.Errorf("indent JSON: %w", err)
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	case TemplateYAML:
		body, err := s.ToYAML()
		if err != nil {
			return nil, err
		}
		return append([]byte(DefaultTemplateHeader()+"\n\n"), body...), nil
	default:
		return nil, fmt.Errorf("unsupported template format: %s", opts.Format)
	}
}

// DefaultTemplateHeader returns the header for generated YAML configs.
func DefaultTemplateHeader() string {
	return `# gojscs configuration
# Rule names are the keys; null or false disables a rule.`
}
