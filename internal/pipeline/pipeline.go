package pipeline

import (
	"context"
	"log/slog"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the state
// accumulated by the previous steps.
type Step[S any] interface {
	// Do executes the pipeline step. A returned error stops the pipeline.
	Do(ctx context.Context, state S) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// funcStep adapts a plain function to the Step interface.
type funcStep[S any] struct {
	name string
	fn   func(ctx context.Context, state S) error
}

// Do implements Step.Do.
func (s *funcStep[S]) Do(ctx context.Context, state S) error {
	return s.fn(ctx, state)
}

// Name implements Step.Name.
func (s *funcStep[S]) Name() string {
	return s.name
}

// StepFunc returns a Step that runs fn under the given name.
func StepFunc[S any](name string, fn func(ctx context.Context, state S) error) Step[S] {
	return &funcStep[S]{name: name, fn: fn}
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline[S any] struct {
	// steps contains the ordered list of steps to execute.
	steps []Step[S]

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// options holds the settings applied by Option values.
type options struct {
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*options)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New[S any](opts ...Option) *Pipeline[S] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return &Pipeline[S]{
		steps:  make([]Step[S], 0),
		logger: o.logger,
	}
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline[S]) AddStep(step Step[S]) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline[S]) AddSteps(steps ...Step[S]) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence.
// Cancellation is checked before each step; a running step handles its
// own context. The first step error is returned unmodified.
func (p *Pipeline[S]) Execute(ctx context.Context, state S) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step", "step", step.Name())

		if err := step.Do(ctx, state); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
			)
			return err
		}

		p.logger.Debug("step completed", "step", step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline[S]) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline[S]) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
