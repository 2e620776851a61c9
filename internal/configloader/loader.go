// Package configloader finds, reads and layers the settings of a run:
// a configuration file, GOJSCS_ environment variables and command line
// flags.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/gojscs/internal/logging"
	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/lint"
)

// NotFoundError reports an explicit configuration path that does not
// exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Configuration source %s was not found.", e.Path)
}

// NoConfigError reports that discovery found no configuration file.
type NoConfigError struct {
	Dir string
}

func (e *NoConfigError) Error() string {
	return fmt.Sprintf("No configuration found. Add a %s file or a %q key in %s to %s or a parent directory, or pass --preset.",
		strings.Join(ConfigFiles[:len(ConfigFiles)-1], ", "), packageConfigKey, packageJSON, e.Dir)
}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from. Defaults to the
	// current working directory if empty.
	WorkingDir string

	// ExplicitPath is a config file path from the --config flag. If set,
	// discovery is skipped. Relative paths resolve against WorkingDir.
	ExplicitPath string

	// HomeDir is searched after the ancestors of WorkingDir. Defaults to
	// the user's home directory.
	HomeDir string

	// Environ is the environment to read GOJSCS_ variables from. Defaults
	// to os.Environ().
	Environ []string

	// Flags are option values set on the command line, keyed by option
	// name. They take highest precedence.
	Flags map[string]any
}

// LoadResult contains the settings of a run and where they came from.
type LoadResult struct {
	// Settings are the file settings, including configPath when a file
	// was loaded.
	Settings *config.Settings

	// Overrides are the environment and flag settings.
	Overrides *config.Settings

	// Path is the loaded file, or "" when none was found and a preset
	// override stands in for it.
	Path string
}

// Load resolves the settings of a run.
// Precedence (highest to lowest):
//  1. CLI flags (opts.Flags)
//  2. Environment variables (GOJSCS_*)
//  3. Explicit config file (opts.ExplicitPath) or the discovered file
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	overrides, err := Overrides(opts.Environ, opts.Flags)
	if err != nil {
		return nil, err
	}
	result := &LoadResult{Overrides: overrides}

	if opts.ExplicitPath != "" {
		path := opts.ExplicitPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		settings, err := ReadConfig(path)
		if err != nil {
			return nil, err
		}
		result.Path, result.Settings = path, settings
	} else {
		homeDir := opts.HomeDir
		if homeDir == "" {
			homeDir, _ = os.UserHomeDir()
		}
		path, settings, err := FindConfig(ctx, workDir, homeDir)
		if err != nil {
			return nil, err
		}
		if settings == nil {
			if !overrides.Has(lint.OptionPreset) {
				return nil, &NoConfigError{Dir: workDir}
			}
			settings = config.New()
		}
		result.Path, result.Settings = path, settings
	}

	if result.Path != "" {
		result.Settings = result.Settings.Clone()
		result.Settings.Set(lint.OptionConfigPath, result.Path)
	}

	logger.Debug("configuration loaded",
		logging.FieldConfig, result.Path,
		logging.FieldEnvKeys, overrides.Keys(),
		logging.FieldDuration, time.Since(start),
	)
	return result, nil
}

// Apply loads the result into cfg. Settings without a file resolve
// relative paths against workDir.
func (r *LoadResult) Apply(cfg *lint.Configuration, workDir string) error {
	if r.Path == "" && workDir != "" {
		cfg.SetBasePath(workDir)
	}
	cfg.Override(r.Overrides)
	if err := cfg.Load(r.Settings); err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	return nil
}
