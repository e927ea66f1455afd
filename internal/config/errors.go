package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can match them
// with errors.Is() while still printing a human-readable message.
var (
	// ErrNoProjectDir is returned when the project directory is empty.
	ErrNoProjectDir = errors.New("no project directory specified")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	// Zero concurrency would mean no problem is ever evaluated.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidOutput is returned when the output override names a directory.
	ErrInvalidOutput = errors.New("invalid output path: must name a file")
)
