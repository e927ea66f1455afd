package judge

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/nao1215/rstfy/internal/log"
	"github.com/nao1215/rstfy/internal/model"
	"gopkg.in/yaml.v3"
)

// Engine is the external build/judge engine.
type Engine interface {
	// Clean removes stale build artifacts of the project.
	Clean(ctx context.Context, project *model.Project) error

	// Test evaluates every solution of the problem and returns one result
	// per solution.
	Test(ctx context.Context, problem *model.Problem) ([]model.EvaluationResult, error)
}

// Runner executes argv in dir and returns its standard output and error.
type Runner func(ctx context.Context, dir string, argv []string) (stdout, stderr []byte, err error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, dir string, argv []string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // Commands come from the project definition
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// CommandEngine implements Engine by running the project's judge commands.
type CommandEngine struct {
	// judge holds the clean and test commands.
	judge model.JudgeConfig

	// projectDir is the working directory of every command.
	projectDir string

	// runner executes commands.
	runner Runner

	// logger for structured logging.
	logger *slog.Logger
}

// CommandEngineOption configures a CommandEngine.
type CommandEngineOption func(*CommandEngine)

// WithRunner replaces the command runner.
func WithRunner(r Runner) CommandEngineOption {
	return func(e *CommandEngine) {
		e.runner = r
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(logger *slog.Logger) CommandEngineOption {
	return func(e *CommandEngine) {
		e.logger = logger
	}
}

// WithJudgeConfig overrides the commands declared by the project.
func WithJudgeConfig(cfg model.JudgeConfig) CommandEngineOption {
	return func(e *CommandEngine) {
		e.judge = cfg
	}
}

// NewCommandEngine creates an engine for the project's judge commands.
func NewCommandEngine(project *model.Project, opts ...CommandEngineOption) *CommandEngine {
	e := &CommandEngine{
		judge:      project.Judge,
		projectDir: project.Dir,
		runner:     ExecRunner,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Clean runs the clean command. With no clean command there is nothing to
// clean and Clean returns nil.
func (e *CommandEngine) Clean(ctx context.Context, project *model.Project) error {
	if len(e.judge.Clean) == 0 {
		e.logger.Debug("no clean command configured", "project", project.Name)
		return nil
	}

	argv := expand(e.judge.Clean, map[string]string{
		"{project}": project.Dir,
		"{problem}": "",
		"{dir}":     project.Dir,
	})
	_, err := e.run(ctx, argv)
	return err
}

// Test runs the test command for the problem and decodes its results.
func (e *CommandEngine) Test(ctx context.Context, problem *model.Problem) ([]model.EvaluationResult, error) {
	if len(e.judge.Test) == 0 {
		return nil, ErrNoTestCommand
	}

	argv := expand(e.judge.Test, map[string]string{
		"{project}": e.projectDir,
		"{problem}": problem.Name,
		"{dir}":     problem.Dir,
	})
	stdout, err := e.run(ctx, argv)
	if err != nil {
		return nil, err
	}

	results, err := ParseResults(stdout, problem)
	if err != nil {
		return nil, fmt.Errorf("problem %s: %w", problem.Name, err)
	}
	return results, nil
}

// run executes argv in the project directory.
func (e *CommandEngine) run(ctx context.Context, argv []string) ([]byte, error) {
	redacted := log.RedactArgs(argv)
	start := time.Now()
	e.logger.Debug("running judge command", "args", redacted)

	stdout, stderr, err := e.runner(ctx, e.projectDir, argv)
	if err != nil {
		return nil, &CommandError{
			Args:   redacted,
			Stderr: strings.TrimSpace(string(stderr)),
			Err:    err,
		}
	}

	e.logger.Debug("judge command finished",
		"args", redacted,
		"elapsed", time.Since(start),
	)
	return stdout, nil
}

// resultEntry is one element of the test command's output.
type resultEntry struct {
	Solution string `yaml:"solution"`
	Expected *bool  `yaml:"expected"`
}

// ParseResults decodes the test command's output and matches every entry
// to a solution declared by the problem.
func ParseResults(data []byte, problem *model.Problem) ([]model.EvaluationResult, error) {
	var entries []resultEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResult, err)
	}

	results := make([]model.EvaluationResult, 0, len(entries))
	for i, entry := range entries {
		if entry.Solution == "" || entry.Expected == nil {
			return nil, fmt.Errorf("%w: entry %d needs solution and expected", ErrMalformedResult, i)
		}
		solution := problem.Solution(entry.Solution)
		if solution == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSolution, entry.Solution)
		}
		results = append(results, model.EvaluationResult{
			Solution: solution,
			Expected: *entry.Expected,
		})
	}
	return results, nil
}

// expand substitutes placeholders in every argument.
func expand(argv []string, vars map[string]string) []string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, k, v)
	}
	r := strings.NewReplacer(pairs...)

	out := make([]string, len(argv))
	for i, arg := range argv {
		out[i] = r.Replace(arg)
	}
	return out
}
