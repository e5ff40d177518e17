package logger

import (
	"fmt"
	"log"
	"strings"
)

// SimpleLogger implements the [Logger] interface on top of a *log.Logger,
// formatting each record as "LEVEL msg=... key=value ...".
type SimpleLogger struct {
	logger *log.Logger
	level  Level
}

var _ Logger = (*SimpleLogger)(nil)

// NewSimpleLogger returns a new [SimpleLogger].
// It will panic if the logger is nil.
func NewSimpleLogger(logger *log.Logger, level Level) *SimpleLogger {
	if logger == nil {
		panic("nil logger")
	}
	return &SimpleLogger{
		logger: logger,
		level:  level,
	}
}

// Trace logs at the trace level.
func (l *SimpleLogger) Trace(msg string, args ...any) {
	l.output(LevelTrace, msg, args)
}

// Debug logs at the debug level.
func (l *SimpleLogger) Debug(msg string, args ...any) {
	l.output(LevelDebug, msg, args)
}

// Info logs at the info level.
func (l *SimpleLogger) Info(msg string, args ...any) {
	l.output(LevelInfo, msg, args)
}

// Warn logs at the warn level.
func (l *SimpleLogger) Warn(msg string, args ...any) {
	l.output(LevelWarn, msg, args)
}

// Error logs at the error level.
func (l *SimpleLogger) Error(msg string, args ...any) {
	l.output(LevelError, msg, args)
}

// Enabled reports whether the SimpleLogger handles records at the given level.
func (l *SimpleLogger) Enabled(level Level) bool {
	return level < LevelOff && level >= l.level
}

func (l *SimpleLogger) output(level Level, msg string, args []any) {
	if l.Enabled(level) {
		// calldepth 3 attributes Lshortfile output to the caller of the
		// exported method.
		_ = l.logger.Output(3, level.String()+" "+formatMessage(msg, args))
	}
}

func formatMessage(msg string, args []any) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "msg=%s", msg)

	n := len(args)
	for i := 0; i < n; i += 2 {
		if i+1 < n {
			_, _ = fmt.Fprintf(&b, " %s=%v", args[i], args[i+1])
		} else {
			_, _ = fmt.Fprintf(&b, " %v", args[i])
		}
	}

	return b.String()
}
