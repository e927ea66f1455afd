package judge

import (
	"errors"
	"fmt"
	"strings"
)

// Judge errors.
var (
	// ErrNoTestCommand is returned when no test command is configured.
	ErrNoTestCommand = errors.New("no judge test command configured")

	// ErrUnknownSolution is returned when the judge reports a solution the
	// problem does not declare.
	ErrUnknownSolution = errors.New("judge reported an undeclared solution")

	// ErrMalformedResult is returned when a result entry lacks a field.
	ErrMalformedResult = errors.New("malformed judge result")
)

// CommandError reports a judge command that could not run or exited non-zero.
type CommandError struct {
	// Args is the command line, with credentials redacted.
	Args []string

	// Stderr is the trimmed standard error output of the command.
	Stderr string

	// Err is the underlying execution error.
	Err error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("judge command %q failed: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap returns the underlying execution error.
func (e *CommandError) Unwrap() error {
	return e.Err
}
