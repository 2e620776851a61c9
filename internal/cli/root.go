// Package cli provides the Cobra command structure for gojscs.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gojscs command with all subcommands.
// The root command itself checks the files given as arguments.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &checkFlags{}

	rootCmd := &cobra.Command{
		Use:   "gojscs [flags] [path...]",
		Short: "A JavaScript code style checker",
		Long: `gojscs checks JavaScript source against a configurable set of style rules.

Rules are configured in a .jscsrc, .jscs.json, .jscs.yaml or .jscs.yml file,
or under the "jscsConfig" key of package.json, found in the working directory
or one of its parents. Presets bundle a whole style guide. Many rules can
repair their own errors with --fix.`,
		Example: `  gojscs src/                    # Check every .js file under src
  gojscs --preset google app.js  # Check against the google preset
  gojscs --fix src/              # Repair what can be repaired
  gojscs --diff src/             # Show repairs without writing them
  gojscs -r junit src/ > out.xml # Report as JUnit XML for CI
  cat app.js | gojscs            # Check standard input`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, info)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addCheckFlags(rootCmd, flags)

	// Add subcommands.
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newPresetsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
