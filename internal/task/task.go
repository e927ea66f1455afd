package task

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultConcurrency is the number of tasks a Scheduler runs at once when
// no limit is configured.
const DefaultConcurrency = 10

// Scheduler starts tasks and bounds how many of them run concurrently.
type Scheduler struct {
	// sem limits the number of running tasks.
	sem *semaphore.Weighted

	// concurrency is the configured limit, kept for logging.
	concurrency int

	// logger is used for task-level logging.
	logger *slog.Logger
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithConcurrency sets the maximum number of concurrently running tasks.
// Non-positive values keep the default.
func WithConcurrency(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for the scheduler.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// NewScheduler creates a Scheduler.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.sem = semaphore.NewWeighted(int64(s.concurrency))

	return s
}

// Concurrency returns the configured concurrency limit.
func (s *Scheduler) Concurrency() int {
	return s.concurrency
}

// Future is the pending result of a spawned task.
type Future[T any] struct {
	name  string
	done  chan struct{}
	value T
	err   error
}

// Name returns the name the task was spawned with.
func (f *Future[T]) Name() string {
	return f.name
}

// Done returns a channel that is closed when the task has finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the task finishes and returns its result.
// If ctx is done first, Wait returns ctx.Err() and the task keeps running.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Spawn starts fn as an independent task and returns its Future.
// The task begins as soon as the scheduler has a free slot; Spawn itself
// returns immediately.
func Spawn[T any](ctx context.Context, s *Scheduler, name string, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{
		name: name,
		done: make(chan struct{}),
	}

	go func() {
		defer close(f.done)

		if err := s.sem.Acquire(ctx, 1); err != nil {
			f.err = err
			return
		}
		defer s.sem.Release(1)

		start := time.Now()
		s.logger.Debug("task started", "task", name)

		f.value, f.err = fn(ctx)

		if f.err != nil {
			s.logger.Debug("task failed",
				"task", name,
				"elapsed", time.Since(start),
				"error", f.err,
			)
			return
		}
		s.logger.Debug("task completed",
			"task", name,
			"elapsed", time.Since(start),
		)
	}()

	return f
}

// JoinAll waits for every future and returns their values in input order.
//
// All futures are awaited even when one fails, since spawned tasks are not
// cancelled. If any task failed, the error of the earliest failed future in
// input order is returned unmodified together with a nil slice.
func JoinAll[T any](ctx context.Context, futures []*Future[T]) ([]T, error) {
	values := make([]T, len(futures))
	errs := make([]error, len(futures))

	var g errgroup.Group
	for i, f := range futures {
		i, f := i, f
		g.Go(func() error {
			values[i], errs[i] = f.Wait(ctx)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // per-future errors are collected in errs

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}
