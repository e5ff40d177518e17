// Package logger provides the structured logging interface used by the
// go-recur command line programs and examples, with an implementation backed
// by log/slog and a package-level default.
package logger

import "sync/atomic"

// Logger is an interface for handling structured log records at different
// severity levels. Args are alternating key/value pairs, as for log/slog.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// Enabled reports whether the logger handles records at the given level.
	Enabled(level Level) bool
}

// NoOpLogger satisfies the Logger interface and discards all log messages.
type NoOpLogger struct{}

var _ Logger = (*NoOpLogger)(nil)

func (NoOpLogger) Trace(_ string, _ ...any) {}
func (NoOpLogger) Debug(_ string, _ ...any) {}
func (NoOpLogger) Info(_ string, _ ...any)  {}
func (NoOpLogger) Warn(_ string, _ ...any)  {}
func (NoOpLogger) Error(_ string, _ ...any) {}

func (NoOpLogger) Enabled(_ Level) bool { return false }

type holder struct{ Logger }

var defaultLogger atomic.Pointer[holder]

func init() {
	defaultLogger.Store(&holder{NoOpLogger{}})
}

// Default returns the default Logger, a NoOpLogger unless SetDefault
// has been called.
func Default() Logger {
	return defaultLogger.Load().Logger
}

// SetDefault makes l the default Logger. A nil l restores the NoOpLogger.
func SetDefault(l Logger) {
	if l == nil {
		l = NoOpLogger{}
	}
	defaultLogger.Store(&holder{l})
}

// Trace logs at LevelTrace using the default logger.
func Trace(msg string, args ...any) { Default().Trace(msg, args...) }

// Debug logs at LevelDebug using the default logger.
func Debug(msg string, args ...any) { Default().Debug(msg, args...) }

// Info logs at LevelInfo using the default logger.
func Info(msg string, args ...any) { Default().Info(msg, args...) }

// Warn logs at LevelWarn using the default logger.
func Warn(msg string, args ...any) { Default().Warn(msg, args...) }

// Error logs at LevelError using the default logger.
func Error(msg string, args ...any) { Default().Error(msg, args...) }

// Enabled reports whether the default logger handles records at level.
func Enabled(level Level) bool { return Default().Enabled(level) }
