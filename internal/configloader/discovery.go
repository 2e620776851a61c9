package configloader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gojscs/pkg/config"
)

// packageJSON is the manifest file whose jscsConfig key holds settings.
const packageJSON = "package.json"

// packageConfigKey is the package.json key that holds settings.
const packageConfigKey = "jscsConfig"

// ConfigFiles are the file names searched for in each directory, in
// order of preference. package.json only counts when it has a jscsConfig
// key.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ConfigFiles = []string{
	".jscsrc",
	".jscs.json",
	".jscs.yaml",
	".jscs.yml",
	packageJSON,
}

// errNoPackageConfig marks a package.json without a jscsConfig key.
var errNoPackageConfig = errors.New("package.json has no jscsConfig")

// FindConfig searches startDir and its ancestors for a configuration
// file, then homeDir. It returns the path and settings of the first
// match, or "" and nil when there is none.
func FindConfig(ctx context.Context, startDir, homeDir string) (string, *config.Settings, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", nil, fmt.Errorf("resolve absolute path: %w", err)
	}

	dirs := ancestors(absDir)
	if homeDir != "" {
		dirs = append(dirs, homeDir)
	}

	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return "", nil, fmt.Errorf("context cancelled: %w", err)
		}
		path, settings, err := configInDir(dir)
		if err != nil {
			return "", nil, err
		}
		if settings != nil {
			return path, settings, nil
		}
	}
	return "", nil, nil
}

// ancestors returns dir followed by each parent up to the filesystem root.
func ancestors(dir string) []string {
	var dirs []string
	for {
		dirs = append(dirs, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			return dirs
		}
		dir = parent
	}
}

// configInDir returns the first usable configuration file in dir.
func configInDir(dir string) (string, *config.Settings, error) {
	for _, name := range ConfigFiles {
		path := filepath.Join(dir, name)
		if !fileExists(path) {
			continue
		}
		settings, err := ReadConfig(path)
		if errors.Is(err, errNoPackageConfig) {
			continue
		}
		if err != nil {
			return "", nil, err
		}
		return path, settings, nil
	}
	return "", nil, nil
}

// ReadConfig decodes the configuration file at path. The format follows
// the file name: YAML for .yaml and .yml, the jscsConfig key for
// package.json, and JSON with comments otherwise.
func ReadConfig(path string) (*config.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var settings *config.Settings
	switch {
	case filepath.Base(path) == packageJSON:
		settings, err = packageSettings(data)
	case IsYAMLConfig(path):
		settings, err = config.FromYAML(data)
	default:
		settings, err = config.FromJSON(data)
		if errors.Is(err, config.ErrNotObject) || (err != nil && filepath.Ext(path) == "") {
			// Extensionless files such as .jscsrc may hold YAML.
			if yamlSettings, yamlErr := config.FromYAML(data); yamlErr == nil {
				settings, err = yamlSettings, nil
			}
		}
	}
	if errors.Is(err, errNoPackageConfig) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return settings, nil
}

func packageSettings(data []byte) (*config.Settings, error) {
	manifest, err := config.FromJSON(data)
	if err != nil {
		return nil, err
	}
	raw, ok := manifest.Get(packageConfigKey)
	if !ok {
		return nil, errNoPackageConfig
	}
	settings, ok := config.AsSettings(raw)
	if !ok {
		return nil, fmt.Errorf("%s: %w", packageConfigKey, config.ErrNotObject)
	}
	return settings, nil
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsYAMLConfig returns true if the path is a YAML config file.
func IsYAMLConfig(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
