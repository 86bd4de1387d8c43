// Package logger provides the SDK's internal debug logging.
//
// Output is disabled by default: the SDK never logs on behalf of the
// application unless it is explicitly asked to. All messages are
// informational; failures are reported through error returns, not logs.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var enabled atomic.Bool

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
}))

// Enable turns on debug output to stderr.
func Enable() {
	enabled.Store(true)
}

// Disable turns debug output back off.
func Disable() {
	enabled.Store(false)
}

// SetOutput redirects debug output, mainly for tests.
func SetOutput(w io.Writer) {
	defaultLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Debug logs at debug level when enabled.
func Debug(msg string, args ...any) {
	if enabled.Load() {
		defaultLogger.Debug(msg, args...)
	}
}

// Info logs at info level when enabled.
func Info(msg string, args ...any) {
	if enabled.Load() {
		defaultLogger.Info(msg, args...)
	}
}

// Warn logs at warn level when enabled.
func Warn(msg string, args ...any) {
	if enabled.Load() {
		defaultLogger.Warn(msg, args...)
	}
}
