package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gojscs/internal/logging"
	"github.com/yaklabco/gojscs/pkg/config"
	"github.com/yaklabco/gojscs/pkg/lint/rules"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	preset string
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		Long: `Create a .jscsrc configuration file in the current directory.

Examples:
  gojscs init                      Create .jscsrc with the fixable rules
  gojscs init --preset google      Start from the google preset
  gojscs init --full               List every rule with a sample value
  gojscs init --format yaml        Create .jscs.yaml instead
  gojscs init --output style.json  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "List every rule in the generated file")
	cmd.Flags().StringVarP(&flags.preset, "preset", "p", "", "Preset the generated file extends")
	cmd.Flags().StringVar(&flags.format, "format", config.TemplateJSON, "Output format: json or yaml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .jscsrc or .jscs.yaml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive(cmd.OutOrStdout())

	if flags.format != config.TemplateJSON && flags.format != config.TemplateYAML {
		return &UsageError{Err: fmt.Errorf("invalid format %q: must be json or yaml", flags.format)}
	}
	if flags.preset != "" && !slices.Contains(rules.PresetNames(), flags.preset) {
		return &UsageError{Err: fmt.Errorf("unknown preset %q; available presets: %v", flags.preset, rules.PresetNames())}
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".jscsrc"
		if flags.format == config.TemplateYAML {
			outputPath = ".jscs.yaml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	opts := config.TemplateOptions{
		Preset: flags.preset,
		Format: flags.format,
		Full:   flags.full,
	}
	// Without --full, a preset stands alone and a bare file starts with
	// the rules --fix can repair.
	for _, rule := range rules.DefaultRules() {
		if !flags.full && (flags.preset != "" || !rules.CanFix(rule)) {
			continue
		}
		opts.Rules = append(opts.Rules, config.RuleInfo{
			Name:    rule.OptionName(),
			Example: rules.Example(rule.OptionName()),
			CanFix:  rules.CanFix(rule),
		})
	}

	content, err := config.GenerateTemplate(opts)
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'gojscs rules' to see all available rules")

	return nil
}
