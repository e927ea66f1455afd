package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/rstfy/internal/config"
	"github.com/nao1215/rstfy/internal/judge"
	"github.com/nao1215/rstfy/internal/log"
	"github.com/nao1215/rstfy/internal/model"
	"github.com/nao1215/rstfy/internal/project"
	"github.com/nao1215/rstfy/internal/report"
	"github.com/nao1215/rstfy/internal/task"
	"github.com/spf13/cobra"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the project report",
		Long: `Report cleans the project, evaluates every problem with the judge and
writes a reStructuredText section to the path declared by PROJECT.yaml:

  rstfy:
    path: README.rst
    title: Problems

The table lists, per problem, the title, assignees, number of correct and
incorrect solutions, number of test inputs, accepted/correct solutions and
whether input validators exist. Problems are evaluated concurrently and
listed in declaration order.

Examples:
  # Report on the project containing the current directory
  rstfy report

  # Report on another project, evaluating at most 4 problems at once
  rstfy report -C ~/contest -j 4

  # Write the report somewhere else
  rstfy report -o /tmp/report.rst`,
		Args: cobra.ArbitraryArgs,
		RunE: runReportCmd,
	}

	cmd.Flags().StringP("dir", "C", config.DefaultProjectDir,
		"Directory to search for PROJECT.yaml from")
	cmd.Flags().IntP("jobs", "j", config.DefaultConcurrency,
		"Number of problems evaluated at once")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to this path instead of the declared one")
	cmd.Flags().StringP("config", "c", "",
		"User defaults file (default: config.yaml in the XDG config directory)")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &model.UsageError{Err: fmt.Errorf("%w: %v", model.ErrExtraArguments, args)}
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return &model.ConfigurationError{Err: err}
	}

	logger := setupLogger(cmd, cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := log.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), log.WithConsoleLogger(logger))
	return runReport(ctx, cfg, console, logger)
}

// buildConfig creates a Config from cobra command flags and the user defaults file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ProjectDir, err = cmd.Flags().GetString("dir")
	if err != nil {
		return nil, err
	}
	cfg.Concurrency, err = cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, err
	}
	cfg.Output, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	cfg.UserConfigPath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.Verbose = getBoolFlag(cmd, "verbose")
	cfg.JSONLog = getBoolFlag(cmd, "log-json")

	// An explicitly named file must exist; the XDG default is optional.
	path := config.FindUserFile(cfg.UserConfigPath)
	if path == "" {
		if cfg.UserConfigPath != "" {
			return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.UserConfigPath)
		}
		return cfg, nil
	}

	uf, err := config.LoadUserFile(path)
	if err != nil {
		return nil, &model.ConfigurationError{Target: path, Err: err}
	}
	jobs := cfg.Concurrency
	cfg.ApplyUserFile(uf)
	if cmd.Flags().Changed("jobs") {
		cfg.Concurrency = jobs
	}
	return cfg, nil
}

// getBoolFlag retrieves a boolean flag from the command or the root's persistent flags.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// setupLogger creates the diagnostic logger on the command's error stream.
func setupLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	if cfg.JSONLog {
		return log.NewJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)
	}
	return log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
}

// runReport generates the report for the project found from cfg.ProjectDir
// and writes it. Nothing is written when generation fails.
func runReport(ctx context.Context, cfg *config.Config, console *log.Console, logger *slog.Logger) error {
	target, err := project.ResolveTarget(cfg.ProjectDir)
	if err != nil {
		if errors.Is(err, project.ErrNoTarget) {
			return &model.UsageError{Err: err}
		}
		return err
	}
	if target.Kind != project.TargetProject {
		return &model.UsageError{Err: fmt.Errorf("%w: %s %s", model.ErrUnsupportedTarget, target.Kind, target.Dir)}
	}

	proj, err := project.NewLoader(project.WithLogger(logger)).Load(target.Dir)
	if err != nil {
		return err
	}

	engineOpts := []judge.CommandEngineOption{judge.WithLogger(logger)}
	if proj.Judge.IsZero() && !cfg.Judge.IsZero() {
		engineOpts = append(engineOpts, judge.WithJudgeConfig(cfg.Judge))
	}
	engine := judge.NewCommandEngine(proj, engineOpts...)

	scheduler := task.NewScheduler(
		task.WithConcurrency(cfg.Concurrency),
		task.WithLogger(logger),
	)
	generator := report.NewGenerator(engine,
		report.WithScheduler(scheduler),
		report.WithWarner(console),
		report.WithLogger(logger),
	)

	doc, err := generator.Generate(ctx, proj)
	if err != nil {
		return err
	}

	path := proj.Report.Path
	if cfg.Output != "" {
		path = cfg.Output
	}
	if err := report.WriteFile(path, doc); err != nil {
		return err
	}

	console.PrintAction("OUTPUT", path)
	console.Summary()
	return nil
}
