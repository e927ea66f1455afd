package log

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// actionWidth is the width the action label is centred in.
const actionWidth = 10

// Console is the user notification sink.
// It is safe for concurrent use; aggregation tasks report through it.
type Console struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	logger   *slog.Logger
	warnings int
	errors   int
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithConsoleLogger mirrors every notification to logger at debug level,
// so verbose logs show them in context.
func WithConsoleLogger(logger *slog.Logger) ConsoleOption {
	return func(c *Console) {
		c.logger = logger
	}
}

// NewConsole creates a Console printing actions to out and diagnostics to errOut.
func NewConsole(out, errOut io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{out: out, errOut: errOut}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PrintAction announces a completed action, e.g. PrintAction("OUTPUT", path).
func (c *Console) PrintAction(action, target string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, "[%s] %s\n", center(action, actionWidth), target) //nolint:errcheck
	if c.logger != nil {
		c.logger.Debug("action", "action", action, "target", target)
	}
}

// PrintWarning prints a non-fatal warning. Each call prints once and is counted.
func (c *Console) PrintWarning(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.warnings++
	fmt.Fprintf(c.errOut, "WARNING: %s\n", msg) //nolint:errcheck
	if c.logger != nil {
		c.logger.Debug("warning reported", "message", msg)
	}
}

// PrintError prints an error that stopped an operation.
func (c *Console) PrintError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errors++
	fmt.Fprintf(c.errOut, "ERROR: %s\n", msg) //nolint:errcheck
	if c.logger != nil {
		c.logger.Debug("error reported", "message", msg)
	}
}

// Warnings returns the number of warnings printed so far.
func (c *Console) Warnings() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.warnings
}

// Errors returns the number of errors printed so far.
func (c *Console) Errors() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors
}

// Summary prints the error and warning totals to errOut when either is non-zero.
func (c *Console) Summary() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.errors == 0 && c.warnings == 0 {
		return
	}
	fmt.Fprintf(c.errOut, "%d error(s), %d warning(s)\n", c.errors, c.warnings) //nolint:errcheck
}

// center pads s with spaces on both sides to width.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	total := width - len(s)
	left := total / 2
	return fmt.Sprintf("%*s%s%*s", left, "", s, total-left, "")
}
