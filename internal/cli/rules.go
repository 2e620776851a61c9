package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gojscs/internal/logging"
	"github.com/yaklabco/gojscs/pkg/lint"
	"github.com/yaklabco/gojscs/pkg/lint/rules"
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Fixable     bool   `json:"fixable"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Long: `List every built-in rule with its description and whether gojscs can
repair its errors with --fix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := rules.DefaultRules()

			if format == formatJSON {
				return outputRulesJSON(cmd.OutOrStdout(), list)
			}
			if format != "text" {
				return &UsageError{Err: fmt.Errorf("invalid format %q: must be text or json", format)}
			}

			logger := logging.NewInteractive(cmd.OutOrStdout())
			logger.Info("available rules")

			for _, rule := range list {
				fixable := "-"
				if rules.CanFix(rule) {
					fixable = "yes"
				}
				logger.Info(rule.OptionName(),
					logging.FieldFixable, fixable,
					logging.FieldDescription, describe(rule),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func describe(rule lint.Rule) string {
	if d, ok := rule.(lint.Describer); ok {
		return d.Description()
	}
	return ""
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(w io.Writer, list []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(list))
	for _, rule := range list {
		infos = append(infos, ruleInfo{
			Name:        rule.OptionName(),
			Description: describe(rule),
			Fixable:     rules.CanFix(rule),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

func newPresetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "List bundled presets or print one",
		Long: `Without arguments, list the bundled presets. With a preset name, print
its settings as JSON in the order they are applied.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range rules.PresetNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			settings, err := rules.LoadPreset(args[0])
			if err != nil {
				return &UsageError{Err: fmt.Errorf("unknown preset %q; available presets: %v", args[0], rules.PresetNames())}
			}
			raw, err := settings.MarshalJSON()
			if err != nil {
				return fmt.Errorf("encode preset: %w", err)
			}
			var buf bytes.Buffer
			if err := json.Indent(&buf, raw, "", "    "); err != nil {
				return fmt.Errorf("indent preset: %w", err)
			}
			buf.WriteByte('\n')
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}

	return cmd
}
