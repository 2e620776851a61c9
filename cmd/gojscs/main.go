// Package main is the entry point for the gojscs CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gojscs/internal/cli"
	"github.com/yaklabco/gojscs/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// The report already describes the violations.
		if !errors.Is(err, cli.ErrViolationsFound) {
			logging.Default().Error(err.Error())
			if cli.ExitCode(err) == cli.ExitUsage {
				rootCmd.PrintErrln(rootCmd.UsageString())
			}
		}
		return cli.ExitCode(err)
	}

	return 0
}
