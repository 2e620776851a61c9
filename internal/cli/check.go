package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gojscs/internal/configloader"
	"github.com/yaklabco/gojscs/internal/logging"
	"github.com/yaklabco/gojscs/pkg/fix"
	"github.com/yaklabco/gojscs/pkg/lint"
	"github.com/yaklabco/gojscs/pkg/lint/rules"
	"github.com/yaklabco/gojscs/pkg/parser/treesitter"
	"github.com/yaklabco/gojscs/pkg/reporter"
	"github.com/yaklabco/gojscs/pkg/runner"
)

// errNoInput is returned when no paths are given and stdin is a terminal.
var errNoInput = errors.New("no input files specified; try --help for usage information")

type checkFlags struct {
	configPath   string
	reporter     string
	preset       string
	maxErrors    int
	fix          bool
	diff         bool
	backup       bool
	verbose      bool
	esnext       bool
	color        string
	compact      bool
	summaryOrder string
	jobs         int
	watch        bool
	logLevel     string
	debug        bool
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "path to a configuration file")
	f.StringVarP(&flags.reporter, "reporter", "r", string(reporter.FormatConsole),
		"output format: "+reporter.FormatNames())
	f.StringVarP(&flags.preset, "preset", "p", "", "preset to apply, overriding the configured one")
	f.IntVarP(&flags.maxErrors, "max-errors", "m", 0, "maximum number of errors to report; -1 for no limit")
	f.BoolVarP(&flags.fix, "fix", "x", false, "repair fixable errors in place")
	f.BoolVar(&flags.diff, "diff", false, "print repairs as a unified diff instead of writing them")
	f.BoolVar(&flags.backup, "backup", false, "keep a copy of every file rewritten by --fix")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "prefix messages with the rule name")
	f.BoolVar(&flags.esnext, "esnext", false, "accept ES2015+ syntax")
	f.StringVar(&flags.color, "color", "auto", "colorize output: auto, always, never")
	f.BoolVar(&flags.compact, "compact", false, "minify machine-readable output")
	f.StringVar(&flags.summaryOrder, "summary-order", string(reporter.SummaryOrderRules),
		"order of tables in summary output: rules, files")
	f.IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = number of CPUs)")
	f.BoolVar(&flags.watch, "watch", false, "check again whenever a watched file changes")
	f.StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	f.BoolVar(&flags.debug, "debug", false, "enable debug logging (same as --log-level debug)")
}

// overrideFlags returns the option values set on the command line, keyed
// by configuration option.
func overrideFlags(cmd *cobra.Command, flags *checkFlags) map[string]any {
	out := map[string]any{}
	changed := cmd.Flags().Changed

	if changed("preset") {
		out[lint.OptionPreset] = flags.preset
	}
	if changed("max-errors") {
		if flags.maxErrors < 0 {
			out[lint.OptionMaxErrors] = nil
		} else {
			out[lint.OptionMaxErrors] = flags.maxErrors
		}
	}
	if changed("esnext") {
		out[lint.OptionESNext] = flags.esnext
	}
	if changed("verbose") {
		out[lint.OptionVerbose] = flags.verbose
	}
	if changed("fix") {
		out[lint.OptionFix] = flags.fix
	}
	return out
}

// validate checks flag combinations before any work starts.
func (f *checkFlags) validate() (reporter.Format, error) {
	format, err := reporter.ParseFormat(f.reporter)
	if err != nil {
		return "", &UsageError{Err: err}
	}
	if f.diff {
		format = reporter.FormatDiff
	}
	switch f.color {
	case "auto", "always", "never":
	default:
		return "", &UsageError{Err: fmt.Errorf("invalid --color %q: must be auto, always or never", f.color)}
	}
	switch reporter.SummaryOrder(f.summaryOrder) {
	case reporter.SummaryOrderRules, reporter.SummaryOrderFiles:
	default:
		return "", &UsageError{Err: fmt.Errorf("invalid --summary-order %q: must be rules or files", f.summaryOrder)}
	}
	if f.watch && f.fix {
		return "", &UsageError{Err: errors.New("--watch cannot be combined with --fix")}
	}
	return format, nil
}

func setupLogging(cmd *cobra.Command, flags *checkFlags) (context.Context, error) {
	level := flags.logLevel
	if flags.debug {
		level = "debug"
	}
	if _, err := logging.ParseLevel(level); err != nil {
		return nil, &UsageError{Err: err}
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
	logging.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, logger), nil
}

// stdinSource returns the piped standard input, or false when paths
// should be checked instead.
func stdinSource(in io.Reader, args []string) (string, bool, error) {
	if len(args) > 0 {
		return "", false, nil
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", false, &UsageError{Err: errNoInput}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", false, fmt.Errorf("read standard input: %w", err)
	}
	return string(data), true, nil
}

// newChecker loads the run configuration and builds a checker for it.
func newChecker(ctx context.Context, cmd *cobra.Command, flags *checkFlags, workDir string) (*lint.Checker, error) {
	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: flags.configPath,
		Flags:        overrideFlags(cmd, flags),
	})
	if err != nil {
		return nil, err
	}

	cfg := lint.NewConfiguration()
	if err := rules.RegisterDefaults(cfg); err != nil {
		return nil, fmt.Errorf("register built-in rules: %w", err)
	}
	if err := loaded.Apply(cfg, workDir); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug("rules configured",
		logging.FieldConfig, loaded.Path,
		logging.FieldRules, len(cfg.GetConfiguredRules()),
	)
	return lint.NewChecker(cfg, treesitter.New()), nil
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags, info BuildInfo) error {
	format, err := flags.validate()
	if err != nil {
		return err
	}
	ctx, err := setupLogging(cmd, flags)
	if err != nil {
		return err
	}
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	source, fromStdin, err := stdinSource(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if fromStdin && flags.watch {
		return &UsageError{Err: errors.New("--watch needs paths to watch")}
	}

	checker, err := newChecker(ctx, cmd, flags, workDir)
	if err != nil {
		return err
	}
	cfg := checker.Configuration()

	repOpts := reporter.Options{
		Writer:       cmd.OutOrStdout(),
		Format:       format,
		Color:        flags.color,
		Compact:      flags.compact,
		ShowSummary:  true,
		SummaryOrder: reporter.SummaryOrder(flags.summaryOrder),
		WorkingDir:   workDir,
		MaxErrors:    cfg.MaxErrors(),
		Verbose:      cfg.Verbose(),
		Version:      info.Version,
		Fixable:      cfg.IsFixable,
	}

	if fromStdin {
		return checkStdin(ctx, cmd, checker, source, flags, repOpts)
	}

	rep, err := reporter.New(repOpts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	runOpts := runner.Options{
		WorkingDir: workDir,
		Jobs:       flags.jobs,
		Fix:        flags.fix,
		DryRun:     flags.diff,
		Backup:     flags.backup,
	}
	check := func(ctx context.Context) error {
		return checkPaths(ctx, checker, rep, args, runOpts)
	}

	err = check(ctx)
	if !flags.watch {
		return err
	}
	if err != nil && !errors.Is(err, ErrViolationsFound) {
		return err
	}

	logger.Info("watching for changes", logging.FieldPaths, args)
	return watch(ctx, cfg, args, workDir, defaultDebounce, func(ctx context.Context, changed []string) {
		logger.Info("files changed", logging.FieldFiles, changed)
		if err := check(ctx); err != nil && !errors.Is(err, ErrViolationsFound) {
			logger.Error("check failed", logging.FieldError, err)
		}
	})
}

// checkPaths runs one check over paths and reports it.
func checkPaths(ctx context.Context, checker *lint.Checker, rep reporter.Reporter, paths []string, opts runner.Options) error {
	logger := logging.FromContext(ctx)
	start := time.Now()

	logger.Debug("starting check",
		logging.FieldPaths, paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldJobs, opts.Jobs,
		logging.FieldFix, opts.Fix,
		logging.FieldDryRun, opts.DryRun,
	)

	result, err := runner.Run(ctx, checker, paths, opts)
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}

	logger.Debug("check finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldFilesWithErrors, result.Stats.FilesWithErrors,
		logging.FieldErrors, result.Stats.ErrorCount,
		logging.FieldErrorsFixed, result.Stats.ErrorsFixed,
		logging.FieldFilesModified, result.Stats.FilesModified,
		logging.FieldDuration, time.Since(start),
	)

	return report(ctx, rep, result)
}

// checkStdin checks source read from standard input. With --fix the
// repaired source goes to stdout and the report to stderr.
func checkStdin(
	ctx context.Context,
	cmd *cobra.Command,
	checker *lint.Checker,
	source string,
	flags *checkFlags,
	opts reporter.Options,
) error {
	fixing := flags.fix || flags.diff || checker.Configuration().ShouldFix()
	result := runner.CheckSource(ctx, checker, source, runner.StdinName, fixing)

	if fixing {
		if file := result.Files[0]; file.Fix != nil {
			if flags.diff {
				file.Diff = fix.UnifiedDiff(runner.StdinName, []byte(source), file.Fix.Output)
				result.Files[0] = file
			} else {
				if _, err := cmd.OutOrStdout().Write(file.Fix.Output); err != nil {
					return fmt.Errorf("write fixed source: %w", err)
				}
				opts.Writer = cmd.ErrOrStderr()
			}
		}
	}

	rep, err := reporter.New(opts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	return report(ctx, rep, result)
}

func report(ctx context.Context, rep reporter.Reporter, result *runner.Result) error {
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}
	if result.HasErrors() || result.HasFailures() {
		return ErrViolationsFound
	}
	return nil
}
