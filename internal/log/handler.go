package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync/atomic"
)

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***REDACTED***"

// sensitiveKeywords mark attribute keys whose values must not be logged.
var sensitiveKeywords = []string{
	"password", "passwd", "secret", "token", "credential", "api_key", "apikey",
}

// sensitiveArgPattern matches "key=value" command arguments carrying credentials.
var sensitiveArgPattern = regexp.MustCompile(`(?i)^(-{0,2}[a-z_-]*(password|passwd|secret|token|credential|api[_-]?key)[a-z_-]*=).+$`)

// counters is shared by a CountingHandler and every handler derived from it
// through WithAttrs or WithGroup.
type counters struct {
	warnings atomic.Int64
	errors   atomic.Int64
}

// CountingHandler wraps an slog.Handler, counts warning and error records
// and redacts sensitive attributes before passing records on.
type CountingHandler struct {
	// handler is the underlying slog handler that receives records.
	handler slog.Handler

	// counts is shared with derived handlers.
	counts *counters
}

// NewCountingHandler creates a new CountingHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewCountingHandler(handler slog.Handler) *CountingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &CountingHandler{handler: handler, counts: &counters{}}
}

// Enabled reports whether the handler handles records at the given level.
func (h *CountingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle counts the record, redacts its attributes and forwards it.
func (h *CountingHandler) Handle(ctx context.Context, r slog.Record) error {
	switch {
	case r.Level >= slog.LevelError:
		h.counts.errors.Add(1)
	case r.Level >= slog.LevelWarn:
		h.counts.warnings.Add(1)
	}

	sanitized := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		sanitized.AddAttrs(redactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, sanitized)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *CountingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}
	return &CountingHandler{handler: h.handler.WithAttrs(redacted), counts: h.counts}
}

// WithGroup returns a new handler with the given group name.
func (h *CountingHandler) WithGroup(name string) slog.Handler {
	return &CountingHandler{handler: h.handler.WithGroup(name), counts: h.counts}
}

// Warnings returns the number of warning records handled so far.
func (h *CountingHandler) Warnings() int {
	return int(h.counts.warnings.Load())
}

// Errors returns the number of error records handled so far.
func (h *CountingHandler) Errors() int {
	return int(h.counts.errors.Load())
}

// redactAttr masks a single attribute, recursively handling groups.
func redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redacted := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			redacted[i] = redactAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	}

	key := strings.ToLower(a.Key)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(key, kw) {
			return slog.String(a.Key, MaskValue)
		}
	}

	if args, ok := a.Value.Any().([]string); ok {
		return slog.Any(a.Key, RedactArgs(args))
	}
	return a
}

// RedactArgs returns a copy of a command line with credential values masked.
// Both "--token=abc" and "--token abc" forms are handled.
func RedactArgs(args []string) []string {
	out := make([]string, len(args))
	maskNext := false
	for i, arg := range args {
		switch {
		case maskNext:
			out[i] = MaskValue
			maskNext = false
		case sensitiveArgPattern.MatchString(arg):
			m := sensitiveArgPattern.FindStringSubmatch(arg)
			out[i] = m[1] + MaskValue
		default:
			out[i] = arg
			maskNext = isSensitiveFlag(arg)
		}
	}
	return out
}

// isSensitiveFlag reports whether arg is a flag whose next argument is a credential.
func isSensitiveFlag(arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}
	name := strings.ToLower(strings.TrimLeft(arg, "-"))
	for _, kw := range sensitiveKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// newHandlerOptions returns handler options for the verbosity.
func newHandlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}

// NewLogger creates a text slog.Logger writing to w.
// If verbose is true the level is Debug, otherwise Warn.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewCountingHandler(slog.NewTextHandler(w, newHandlerOptions(verbose))))
}

// NewJSONLogger creates a JSON slog.Logger writing to w.
// Useful when rstfy runs inside CI and logs are collected.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewCountingHandler(slog.NewJSONHandler(w, newHandlerOptions(verbose))))
}
