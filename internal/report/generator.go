package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nao1215/rstfy/internal/judge"
	"github.com/nao1215/rstfy/internal/model"
	"github.com/nao1215/rstfy/internal/pipeline"
	"github.com/nao1215/rstfy/internal/task"
)

// unknownIdentity replaces a user or host name that cannot be determined.
const unknownIdentity = "unknown"

// Generator produces the complete report document for a project.
type Generator struct {
	engine    judge.Engine
	scheduler *task.Scheduler
	env       Environment
	warner    Warner
	logger    *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithScheduler sets the scheduler used for per-problem aggregation.
func WithScheduler(s *task.Scheduler) GeneratorOption {
	return func(g *Generator) {
		g.scheduler = s
	}
}

// WithEnvironment sets the source of the user and host names.
func WithEnvironment(env Environment) GeneratorOption {
	return func(g *Generator) {
		g.env = env
	}
}

// WithWarner sets where missing-field warnings go.
func WithWarner(w Warner) GeneratorOption {
	return func(g *Generator) {
		g.warner = w
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a Generator that evaluates problems with engine.
func NewGenerator(engine judge.Engine, opts ...GeneratorOption) *Generator {
	g := &Generator{
		engine: engine,
		env:    SystemEnvironment{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.scheduler == nil {
		g.scheduler = task.NewScheduler(task.WithLogger(g.logger))
	}
	return g
}

// generation is the state shared by the generation steps.
type generation struct {
	project *model.Project
	rows    []model.MetricRow
	doc     string
}

// Generate cleans the project, evaluates every problem and returns the
// report document. Problems are evaluated concurrently; their rows appear
// in declaration order. Any failure aborts generation and no document is
// returned.
func (g *Generator) Generate(ctx context.Context, project *model.Project) (string, error) {
	if !project.HasReportConfig() {
		return "", &model.ConfigurationError{Target: project.Name, Err: model.ErrReportConfigMissing}
	}

	p := pipeline.New[*generation](pipeline.WithLogger(g.logger))
	p.AddSteps(
		pipeline.StepFunc("clean", g.clean),
		pipeline.StepFunc("aggregate", g.aggregate),
		pipeline.StepFunc("compose", g.compose),
	)

	state := &generation{project: project}
	if err := p.Execute(ctx, state); err != nil {
		return "", err
	}
	return state.doc, nil
}

func (g *Generator) clean(ctx context.Context, s *generation) error {
	return g.engine.Clean(ctx, s.project)
}

// aggregate spawns every aggregation before awaiting any of them.
func (g *Generator) aggregate(ctx context.Context, s *generation) error {
	agg := NewAggregator(g.engine, g.warner)

	futures := make([]*task.Future[model.MetricRow], 0, len(s.project.Problems))
	for _, problem := range s.project.Problems {
		problem := problem
		futures = append(futures, task.Spawn(ctx, g.scheduler, problem.Name,
			func(ctx context.Context) (model.MetricRow, error) {
				return agg.Aggregate(ctx, problem)
			}))
	}

	rows, err := task.JoinAll(ctx, futures)
	if err != nil {
		return err
	}
	s.rows = rows
	return nil
}

func (g *Generator) compose(_ context.Context, s *generation) error {
	user := g.identity("user", g.env.Username)
	host := g.identity("host", g.env.Hostname)
	s.doc = ComposeDocument(s.project.Report.Title, user, host, s.rows)
	return nil
}

func (g *Generator) identity(kind string, lookup func() (string, error)) string {
	v, err := lookup()
	if err != nil || v == "" {
		g.logger.Warn(fmt.Sprintf("cannot determine %s name", kind), "error", err)
		return unknownIdentity
	}
	return v
}
