package configloader

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/lint"
)

// EnvPrefix is the prefix of environment variables that override
// settings. GOJSCS_MAX_ERRORS=10 sets maxErrors to 10. Only built-in
// options are read from the environment; rules are configured in files.
const EnvPrefix = "GOJSCS_"

// Overrides layers environment variables and flag values, flags last,
// into settings for lint.Configuration.Override. Keys are returned in
// sorted order.
func Overrides(environ []string, flags map[string]any) (*config.Settings, error) {
	if environ == nil {
		environ = os.Environ()
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKeyTransform,
		EnvironFunc:   func() []string { return environ },
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, ""), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	settings, err := config.FromMap(k.Raw())
	if err != nil {
		return nil, fmt.Errorf("overrides: %w", err)
	}
	return settings, nil
}

// envKeyTransform maps GOJSCS_MAX_ERRORS to maxErrors and decodes the
// value as a YAML scalar or flow collection, so "10", "true", "null" and
// "[build/**, dist/**]" keep their types. Variables that do not name a
// built-in option, such as GOJSCS_LOG_LEVEL, are skipped.
func envKeyTransform(k, v string) (string, any) {
	key := camelCase(strings.TrimPrefix(k, EnvPrefix))
	if key == "" {
		return "", nil
	}
	if !lint.IsBuiltinOption(key) {
		return "", nil
	}

	var value any
	if err := yaml.Unmarshal([]byte(v), &value); err != nil {
		return key, v
	}
	return key, value
}

// camelCase turns SNAKE_CASE into snakeCase.
func camelCase(s string) string {
	var sb strings.Builder
	upperNext := false
	for _, r := range strings.ToLower(s) {
		if r == '_' {
			upperNext = sb.Len() > 0
			continue
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
