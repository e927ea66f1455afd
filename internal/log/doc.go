// Package log provides structured logging and the user-facing console for
// rstfy, built on top of the standard slog package.
//
// Two output channels exist:
//   - A *slog.Logger for diagnostic records (debug traces of judge commands,
//     task timing). Its level is Warn by default and Debug in verbose mode.
//   - A Console for user notifications: actions such as "OUTPUT report.rst",
//     warnings such as a problem without assignees, and errors such as a
//     missing report configuration.
//
// # Counting
//
// CountingHandler wraps any slog.Handler and counts the warning and error
// records passing through it. The Console counts what it prints as well,
// so a run can finish with a "N error(s), M warning(s)" summary.
//
// # Redaction
//
// Judge commands are logged with their argv. Arguments and attributes that
// carry credentials (token=..., --password ...) are replaced with MaskValue
// before they reach the underlying handler.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	console := log.NewConsole(os.Stdout, os.Stderr)
//	console.PrintWarning("assignees was not set in Sample PROBLEM")
//	console.PrintAction("OUTPUT", "report.rst")
package log
