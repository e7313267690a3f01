package logging

import (
	"io"
	"log/slog"
	"os"
)

// Verbose reports whether debug-level logging is enabled.
// Set by Setup; read by callers that want to skip expensive
// diagnostics entirely.
var Verbose bool

// Logger is the structured debug logger. Configured by Setup.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Setup configures the structured debug logger.
// verbose enables debug-level records, jsonOutput switches the handler
// to JSON lines, and w is the destination (os.Stderr in the CLI, a
// buffer in tests). A nil writer falls back to os.Stderr.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	Verbose = verbose

	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if jsonOutput {
		Logger = slog.New(slog.NewJSONHandler(w, opts))
	} else {
		Logger = slog.New(slog.NewTextHandler(w, opts))
	}
}

// With returns a logger with the given attributes attached to every record.
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}

// Debug logs a debug message with key-value pairs.
// Suppressed unless Setup was called with verbose=true.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message with key-value pairs.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message with key-value pairs.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message with key-value pairs.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
