// Package pipeline provides a framework for executing named steps in sequence.
//
// Report generation is a short chain of stages (clean, aggregate, compose)
// that share one piece of state. Each stage is implemented as a Step that
// receives that state and may modify it; the Pipeline logs every stage,
// checks for cancellation between stages and stops at the first failure.
//
// The Pipeline is generic over its state type so that it carries no
// knowledge of what the steps build.
package pipeline
