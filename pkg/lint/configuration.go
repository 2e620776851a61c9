package lint

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/jsast"
)

// Built-in option keys. Every other settings key names a rule.
const (
	OptionConfigPath      = "configPath"
	OptionPlugins         = "plugins"
	OptionAdditionalRules = "additionalRules"
	OptionPreset          = "preset"
	OptionExcludeFiles    = "excludeFiles"
	OptionFileExtensions  = "fileExtensions"
	OptionExtract         = "extract"
	OptionMaxErrors       = "maxErrors"
	OptionESNext          = "esnext"
	OptionES3             = "es3"
	OptionParser          = "esprima"
	OptionErrorFilter     = "errorFilter"
	OptionVerbose         = "verbose"
	OptionFix             = "fix"
)

// builtinOptions lists the built-in keys in processing order. configPath
// comes first because it sets the base path excludeFiles resolves against.
var builtinOptions = []string{
	OptionConfigPath,
	OptionPlugins,
	OptionAdditionalRules,
	OptionPreset,
	OptionExcludeFiles,
	OptionFileExtensions,
	OptionExtract,
	OptionMaxErrors,
	OptionESNext,
	OptionES3,
	OptionParser,
	OptionErrorFilter,
	OptionVerbose,
	OptionFix,
}

// IsBuiltinOption reports whether key is a built-in option.
func IsBuiltinOption(key string) bool {
	return slices.Contains(builtinOptions, key)
}

// Defaults applied by every Load.
var (
	DefaultExcludeFiles   = []string{"node_modules/**"}
	DefaultFileExtensions = []string{".js"}
	DefaultExtractMasks   = []string{"**/*.md", "**/*.markdown"}
)

// Plugin extends a configuration through a narrow host surface.
type Plugin func(host PluginHost) error

// PluginHost is the capability handed to plugins.
type PluginHost interface {
	RegisterRule(rule Rule) error
	RegisterPreset(name string, settings any) error
	RegisterErrorFilter(name string, filter ErrorFilter)
	RegisterParser(name string, parser Parser)
}

// RuleSet produces the rules of an additionalRules entry.
type RuleSet func() []Rule

// Configuration binds a settings object to configured rule instances and
// the global options of a run.
//
// Registration methods and Load are not safe for concurrent use. After
// Load returns, the configuration and its rules are read-only and may be
// shared by concurrent checks.
type Configuration struct {
	*Registry

	presets      map[string]*config.Settings
	plugins      map[string]Plugin
	ruleSets     map[string]RuleSet
	parsers      map[string]Parser
	errorFilters map[string]ErrorFilter

	// applied remembers plugins and rule sets already run, so a second
	// Load does not register their rules twice.
	applied map[string]bool

	overrides     *config.Settings
	programFilter ErrorFilter
	basePath      string

	// Derived by Load.
	ruleSettings    *config.Settings
	processed       *config.Settings
	configuredRules []Rule
	unsupported     []string
	loading         map[string]bool

	maxErrors      int
	excludeMasks   []string
	excluded       []glob.Glob
	fileExtensions []string
	extractMasks   []string
	extract        []glob.Glob
	esnext         bool
	es3            bool
	verbose        bool
	fix            bool
	parserName     string
	errorFilter    ErrorFilter
}

// NewConfiguration creates an empty configuration whose base path is the
// working directory.
func NewConfiguration() *Configuration {
	basePath, err := os.Getwd()
	if err != nil {
		basePath = "."
	}
	c := &Configuration{
		Registry:     NewRegistry(),
		presets:      make(map[string]*config.Settings),
		plugins:      make(map[string]Plugin),
		ruleSets:     make(map[string]RuleSet),
		parsers:      make(map[string]Parser),
		errorFilters: make(map[string]ErrorFilter),
		applied:      make(map[string]bool),
		overrides:    config.New(),
		basePath:     basePath,
	}
	c.reset()
	return c
}

func (c *Configuration) reset() {
	c.ruleSettings = config.New()
	c.processed = config.New()
	c.configuredRules = nil
	c.unsupported = nil
	c.loading = make(map[string]bool)
	c.maxErrors = DefaultMaxErrors
	c.excludeMasks = nil
	c.excluded = nil
	c.fileExtensions = slices.Clone(DefaultFileExtensions)
	c.extractMasks = nil
	c.extract = nil
	c.esnext = false
	c.es3 = false
	c.verbose = false
	c.fix = false
	c.parserName = ""
	c.errorFilter = nil
}

// RegisterRule adds a rule to the registry.
func (c *Configuration) RegisterRule(rule Rule) error {
	return c.Register(rule)
}

// RegisterPreset stores a named settings bundle. The value must be a
// JSON-like object.
func (c *Configuration) RegisterPreset(name string, settings any) error {
	normalized, err := config.Normalize(settings)
	if err != nil {
		return &ConfigError{Option: OptionPreset, Message: fmt.Sprintf("%q should be a JSON-serializable object: %v", name, err)}
	}
	s, ok := config.AsSettings(normalized)
	if !ok {
		return &ConfigError{Option: OptionPreset, Message: fmt.Sprintf("%q should be an object", name)}
	}
	c.presets[name] = s
	return nil
}

// GetPreset returns a copy of a registered preset.
func (c *Configuration) GetPreset(name string) (*config.Settings, bool) {
	s, ok := c.presets[name]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// PresetNames returns registered preset names in sorted order.
func (c *Configuration) PresetNames() []string {
	names := make([]string, 0, len(c.presets))
	for name := range c.presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefinePlugin makes a plugin available to the plugins option.
func (c *Configuration) DefinePlugin(name string, plugin Plugin) {
	c.plugins[name] = plugin
}

// DefineRuleSet makes a rule set available to the additionalRules option.
func (c *Configuration) DefineRuleSet(name string, set RuleSet) {
	c.ruleSets[name] = set
}

// RegisterParser makes a parser available to the esprima option.
func (c *Configuration) RegisterParser(name string, parser Parser) {
	c.parsers[name] = parser
}

// RegisterErrorFilter makes a filter available to the errorFilter option.
func (c *Configuration) RegisterErrorFilter(name string, filter ErrorFilter) {
	c.errorFilters[name] = filter
}

// SetErrorFilter installs a filter directly. It takes precedence over the
// errorFilter option.
func (c *Configuration) SetErrorFilter(filter ErrorFilter) {
	c.programFilter = filter
}

// SetBasePath sets the directory excludeFiles masks resolve against.
// The configPath option overrides it.
func (c *Configuration) SetBasePath(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	c.basePath = path
}

// BasePath returns the directory excludeFiles masks resolve against.
func (c *Configuration) BasePath() string {
	return c.basePath
}

// Override stores settings that win over everything passed to Load.
// Call it before Load.
func (c *Configuration) Override(settings *config.Settings) {
	c.overrides = config.Merge(c.overrides, settings)
}

// Load replaces the active settings with settings plus the overrides.
// Loading the same settings twice yields the same configured rules.
func (c *Configuration) Load(settings *config.Settings) error {
	c.reset()
	if settings == nil {
		settings = config.New()
	}

	if err := c.processConfig(settings); err != nil {
		return err
	}
	if err := c.processConfig(c.overrides); err != nil {
		return err
	}

	if len(c.unsupported) > 0 {
		return &UnsupportedRulesError{Names: slices.Clone(c.unsupported)}
	}

	if err := c.compileMasks(); err != nil {
		return err
	}
	return c.useRules()
}

// processConfig applies one settings layer. Presets are applied before the
// layer's own rule keys, so those keys win.
func (c *Configuration) processConfig(settings *config.Settings) error {
	for _, key := range builtinOptions {
		value, ok := settings.Get(key)
		if !ok {
			continue
		}
		if err := c.applyBuiltin(key, value); err != nil {
			return err
		}
		if key != OptionPreset {
			c.processed.Set(key, value)
		}
	}

	for _, key := range settings.Keys() {
		if IsBuiltinOption(key) {
			continue
		}
		value, _ := settings.Get(key)
		if _, ok := c.Get(key); !ok {
			if !slices.Contains(c.unsupported, key) {
				c.unsupported = append(c.unsupported, key)
			}
			continue
		}
		if config.IsDisabled(value) {
			c.ruleSettings.Delete(key)
			continue
		}
		c.ruleSettings.Set(key, value)
	}
	return nil
}

func (c *Configuration) applyBuiltin(key string, value any) error {
	switch key {
	case OptionConfigPath:
		path, ok := config.AsString(value)
		if !ok {
			return &ConfigError{Option: key, Message: "should be a string"}
		}
		c.SetBasePath(filepath.Dir(path))
	case OptionPlugins:
		return c.applyPlugins(value)
	case OptionAdditionalRules:
		return c.applyRuleSets(value)
	case OptionPreset:
		return c.applyPreset(value)
	case OptionExcludeFiles:
		masks, ok := config.AsStringList(value)
		if !ok {
			return &ConfigError{Option: key, Message: "should be an array of strings"}
		}
		c.excludeMasks = masks
	case OptionFileExtensions:
		exts, ok := config.AsStringOrList(value)
		if !ok {
			return &ConfigError{Option: key, Message: "should be a string or an array of strings"}
		}
		c.fileExtensions = make([]string, len(exts))
		for i, ext := range exts {
			c.fileExtensions[i] = strings.ToLower(ext)
		}
	case OptionExtract:
		return c.applyExtract(value)
	case OptionMaxErrors:
		return c.applyMaxErrors(value)
	case OptionESNext:
		return c.applyBool(key, value, &c.esnext)
	case OptionES3:
		return c.applyBool(key, value, &c.es3)
	case OptionVerbose:
		return c.applyBool(key, value, &c.verbose)
	case OptionFix:
		return c.applyBool(key, value, &c.fix)
	case OptionParser:
		name, ok := config.AsString(value)
		if !ok {
			return &ConfigError{Option: key, Message: "should be the name of a registered parser"}
		}
		if _, ok := c.parsers[name]; !ok {
			return &ConfigError{Option: key, Message: fmt.Sprintf("names unknown parser %q", name)}
		}
		c.parserName = name
	case OptionErrorFilter:
		name, ok := config.AsString(value)
		if !ok {
			return &ConfigError{Option: key, Message: "should be the name of a registered filter"}
		}
		filter, ok := c.errorFilters[name]
		if !ok {
			return &ConfigError{Option: key, Message: fmt.Sprintf("names unknown filter %q", name)}
		}
		c.errorFilter = filter
	}
	return nil
}

func (c *Configuration) applyBool(key string, value any, dst *bool) error {
	b, ok := config.AsBool(value)
	if !ok {
		return &ConfigError{Option: key, Message: "should be true or false"}
	}
	*dst = b
	return nil
}

func (c *Configuration) applyMaxErrors(value any) error {
	if value == nil {
		c.maxErrors = 0
		return nil
	}
	n, ok := config.AsInt(value)
	if !ok || n <= 0 {
		return &ConfigError{Option: OptionMaxErrors, Message: "should be a positive number or null"}
	}
	c.maxErrors = n
	return nil
}

func (c *Configuration) applyExtract(value any) error {
	if b, ok := config.AsBool(value); ok {
		c.extractMasks = nil
		if b {
			c.extractMasks = slices.Clone(DefaultExtractMasks)
		}
		return nil
	}
	masks, ok := config.AsStringList(value)
	if !ok {
		return &ConfigError{Option: OptionExtract, Message: "should be true, false or an array of masks"}
	}
	c.extractMasks = masks
	return nil
}

func (c *Configuration) applyPlugins(value any) error {
	names, ok := config.AsStringList(value)
	if !ok {
		return &ConfigError{Option: OptionPlugins, Message: "should be an array of plugin names"}
	}
	for _, name := range names {
		plugin, ok := c.plugins[name]
		if !ok {
			return &ConfigError{Option: OptionPlugins, Message: fmt.Sprintf("names unknown plugin %q", name)}
		}
		id := "plugin:" + name
		if c.applied[id] {
			continue
		}
		if err := plugin(c); err != nil {
			return fmt.Errorf("plugin %q: %w", name, err)
		}
		c.applied[id] = true
	}
	return nil
}

func (c *Configuration) applyRuleSets(value any) error {
	names, ok := config.AsStringOrList(value)
	if !ok {
		return &ConfigError{Option: OptionAdditionalRules, Message: "should be an array of rule set names"}
	}
	for _, name := range names {
		set, ok := c.ruleSets[name]
		if !ok {
			return &ConfigError{Option: OptionAdditionalRules, Message: fmt.Sprintf("names unknown rule set %q", name)}
		}
		id := "rules:" + name
		if c.applied[id] {
			continue
		}
		for _, rule := range set() {
			if err := c.RegisterRule(rule); err != nil {
				return err
			}
		}
		c.applied[id] = true
	}
	return nil
}

// applyPreset applies a preset and, recursively, the presets it names.
// A preset already being applied in this Load is skipped, so circular
// references apply each preset once.
func (c *Configuration) applyPreset(value any) error {
	name, ok := config.AsString(value)
	if !ok {
		return &ConfigError{Option: OptionPreset, Message: "should be a preset name"}
	}
	if c.loading[name] {
		return nil
	}
	preset, ok := c.presets[name]
	if !ok {
		return &ConfigError{Option: OptionPreset, Message: fmt.Sprintf("names unknown preset %q", name)}
	}
	c.loading[name] = true
	if _, seen := c.processed.Get(OptionPreset); !seen {
		c.processed.Set(OptionPreset, name)
	}
	return c.processConfig(preset)
}

func (c *Configuration) compileMasks() error {
	masks := c.excludeMasks
	if masks == nil {
		masks = DefaultExcludeFiles
	}
	excluded, err := c.compile(OptionExcludeFiles, masks)
	if err != nil {
		return err
	}
	extract, err := c.compile(OptionExtract, c.extractMasks)
	if err != nil {
		return err
	}
	c.excluded = excluded
	c.extract = extract
	return nil
}

// compile resolves masks against the base path and compiles them.
func (c *Configuration) compile(option string, masks []string) ([]glob.Glob, error) {
	base := glob.QuoteMeta(filepath.ToSlash(c.basePath))
	out := make([]glob.Glob, 0, len(masks))
	for _, mask := range masks {
		for _, pattern := range maskPatterns(base, mask) {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				return nil, &ConfigError{Option: option, Message: fmt.Sprintf("has an invalid mask %q: %v", mask, err)}
			}
			out = append(out, g)
		}
	}
	return out, nil
}

// maskPatterns anchors a mask at base. A leading "**/" needs at least one
// directory in gobwas/glob, so such masks also get a pattern for files
// directly under base.
func maskPatterns(base, mask string) []string {
	pattern := filepath.ToSlash(mask)
	if filepath.IsAbs(mask) {
		return []string{pattern}
	}
	pattern = strings.TrimPrefix(pattern, "./")
	root := strings.TrimSuffix(base, "/") + "/"
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		return []string{root + pattern, root + rest}
	}
	return []string{root + pattern}
}

// useRules configures every remaining rule in settings order.
func (c *Configuration) useRules() error {
	rules := make([]Rule, 0, c.ruleSettings.Len())
	for _, name := range c.ruleSettings.Keys() {
		rule, _ := c.Get(name)
		value, _ := c.ruleSettings.Get(name)
		if err := rule.Configure(value); err != nil {
			var rce *RuleConfigError
			if !errors.As(err, &rce) {
				err = &RuleConfigError{Rule: name, Err: err}
			}
			return err
		}
		rules = append(rules, rule)
		c.processed.Set(name, value)
	}
	c.configuredRules = rules
	return nil
}

// GetConfiguredRules returns the configured rules in settings order.
func (c *Configuration) GetConfiguredRules() []Rule {
	return slices.Clone(c.configuredRules)
}

// GetConfiguredRule returns a configured rule by name.
func (c *Configuration) GetConfiguredRule(name string) (Rule, bool) {
	for _, rule := range c.configuredRules {
		if rule.OptionName() == name {
			return rule, true
		}
	}
	return nil, false
}

// GetProcessedConfig returns the merged settings: the built-in options
// that were set followed by the active rule settings.
func (c *Configuration) GetProcessedConfig() *config.Settings {
	return c.processed.Clone()
}

// MaxErrors returns the error cutoff; zero means unlimited.
func (c *Configuration) MaxErrors() int {
	return c.maxErrors
}

// Verbose reports whether reporters should prefix messages with rule
// names.
func (c *Configuration) Verbose() bool {
	return c.verbose
}

// ShouldFix reports whether the fix option is set.
func (c *Configuration) ShouldFix() bool {
	return c.fix
}

// ParseOptions returns the dialect options for the parser.
func (c *Configuration) ParseOptions() jsast.ParseOptions {
	return jsast.ParseOptions{ESNext: c.esnext, ES3: c.es3}
}

// Parser returns the parser selected by the esprima option.
func (c *Configuration) Parser() (Parser, bool) {
	if c.parserName == "" {
		return nil, false
	}
	p, ok := c.parsers[c.parserName]
	return p, ok
}

// ErrorFilter returns the active error filter, or nil.
func (c *Configuration) ErrorFilter() ErrorFilter {
	if c.programFilter != nil {
		return c.programFilter
	}
	return c.errorFilter
}

// ExcludedFileMasks returns the active excludeFiles masks.
func (c *Configuration) ExcludedFileMasks() []string {
	if c.excludeMasks == nil {
		return slices.Clone(DefaultExcludeFiles)
	}
	return slices.Clone(c.excludeMasks)
}

// FileExtensions returns the accepted file extensions.
func (c *Configuration) FileExtensions() []string {
	return slices.Clone(c.fileExtensions)
}

// IsFileExcluded reports whether path matches an excludeFiles mask.
func (c *Configuration) IsFileExcluded(path string) bool {
	return matchAny(c.excluded, path)
}

// ShouldExtract reports whether path matches an extract mask.
func (c *Configuration) ShouldExtract(path string) bool {
	return matchAny(c.extract, path)
}

// HasCorrectExtension reports whether path has an accepted extension.
func (c *Configuration) HasCorrectExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range c.fileExtensions {
		if ext == "*" || strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func matchAny(globs []glob.Glob, path string) bool {
	if len(globs) == 0 {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	abs = filepath.ToSlash(abs)
	for _, g := range globs {
		if g.Match(abs) {
			return true
		}
	}
	return false
}

// IsFixable reports whether the fix phase can repair e: it carries an
// AutoFix or its rule implements Fixer.
func (c *Configuration) IsFixable(e Error) bool {
	if _, ok := e.Additional.(AutoFix); ok {
		return true
	}
	rule, ok := c.GetConfiguredRule(e.RuleName)
	if !ok {
		return false
	}
	_, ok = rule.(Fixer)
	return ok
}
