package rules

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/lint"
)

//go:embed presets/*.json
var presetFS embed.FS

// PresetNames returns the names of the bundled presets in sorted order.
func PresetNames() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// LoadPreset decodes a bundled preset, keeping its key order.
func LoadPreset(name string) (*config.Settings, error) {
	data, err := presetFS.ReadFile(path.Join("presets", name+".json"))
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	settings, err := config.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	return settings, nil
}

// RegisterDefaultPresets registers every bundled preset on cfg.
func RegisterDefaultPresets(cfg *lint.Configuration) error {
	var errs []error
	for _, name := range PresetNames() {
		settings, err := LoadPreset(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := cfg.RegisterPreset(name, settings); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
