// Package logging assembles structured slog loggers for the marquee CLI.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so command code can tag log
// lines with the invocation's request ID and command name. Logs go to the
// data directory's log file (and optionally stderr) so command output on
// stdout stays machine-readable.
package logging
