package model

import "errors"

// Report generation errors.
// Sentinels are wrapped by ConfigurationError or UsageError so callers can
// match either the kind (errors.As) or the exact cause (errors.Is).
var (
	// ErrReportConfigMissing is returned when the project has no rstfy block.
	ErrReportConfigMissing = errors.New("rstfy_config() is not defined")

	// ErrExtraArguments is returned when the report command receives
	// positional arguments.
	ErrExtraArguments = errors.New("extra argument passed to rstfy command")

	// ErrUnsupportedTarget is returned when the report command is invoked
	// against something other than a project.
	ErrUnsupportedTarget = errors.New("rstfy is not supported for the specified target")

	// ErrUnclassifiedResult is returned when an evaluation result does not
	// reference a solution and therefore cannot be counted as correct or
	// incorrect.
	ErrUnclassifiedResult = errors.New("evaluation result has no solution")
)

// ConfigurationError reports a project whose configuration prevents report
// generation. No document is written when it is returned.
type ConfigurationError struct {
	// Target names the project or file the error refers to.
	Target string
	Err    error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Target == "" {
		return "configuration error: " + e.Err.Error()
	}
	return "configuration error: " + e.Target + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// UsageError reports a wrong invocation of a command.
type UsageError struct {
	Err error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return "usage error: " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *UsageError) Unwrap() error {
	return e.Err
}
