// Package logging provides the structured logger that fsio reports
// unexpected operating system failures to.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents different logging levels
type LogLevel int

// LogLevelDebug represents debug logging level
const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the lower-case level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger provides structured logging for filesystem operations.
// It wraps different logger implementations for consistent behavior.
// A nil *Logger is valid and discards everything.
type Logger struct {
	impl loggerImpl
}

// loggerImpl defines the internal interface for logger implementations.
type loggerImpl interface {
	debug(msg string, args ...any)
	info(msg string, args ...any)
	warn(msg string, args ...any)
	error(msg string, args ...any)
	with(args ...any) loggerImpl
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, args ...any) {
	if l != nil && l.impl != nil {
		l.impl.debug(msg, args...)
	}
}

// Info logs info-level messages
func (l *Logger) Info(msg string, args ...any) {
	if l != nil && l.impl != nil {
		l.impl.info(msg, args...)
	}
}

// Warn logs warning-level messages
func (l *Logger) Warn(msg string, args ...any) {
	if l != nil && l.impl != nil {
		l.impl.warn(msg, args...)
	}
}

// Error logs error-level messages
func (l *Logger) Error(msg string, args ...any) {
	if l != nil && l.impl != nil {
		l.impl.error(msg, args...)
	}
}

// With returns a logger with additional context fields
func (l *Logger) With(args ...any) *Logger {
	if l == nil || l.impl == nil {
		return l
	}
	// The nop logger carries no fields, so the same instance is returned.
	if _, ok := l.impl.(*nopLogger); ok {
		return l
	}
	return &Logger{impl: l.impl.with(args...)}
}

// WithOperation returns a logger with operation context
func (l *Logger) WithOperation(operation string) *Logger {
	return l.With("operation", operation)
}

// WithPath returns a logger with path context
func (l *Logger) WithPath(path string) *Logger {
	return l.With("path", path)
}

// LogConfig holds configuration for the logger.
type LogConfig struct {
	// Level sets the minimum log level (debug, info, warn, error)
	Level LogLevel
	// EnableCallerInfo includes file and line number in logs
	EnableCallerInfo bool
	// JSON selects the JSON handler instead of the text handler
	JSON bool
	// Output receives log records. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultLogConfig returns a default logging configuration.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            LogLevelInfo,
		EnableCallerInfo: false,
		Output:           os.Stderr,
	}
}

// slogLogger implements loggerImpl using slog.
type slogLogger struct {
	logger *slog.Logger
	level  LogLevel
	fields []any
}

// NewLogger creates a new structured logger with the given configuration.
func NewLogger(config LogConfig) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     config.Level.slogLevel(),
		AddSource: config.EnableCallerInfo,
	}

	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{
		impl: &slogLogger{
			logger: slog.New(handler),
			level:  config.Level,
		},
	}
}

// NewNopLogger creates a no-op logger that discards all log messages.
func NewNopLogger() *Logger {
	return &Logger{
		impl: &nopLogger{},
	}
}

func (l *slogLogger) args(args []any) []any {
	allArgs := make([]any, len(l.fields)+len(args))
	copy(allArgs, l.fields)
	copy(allArgs[len(l.fields):], args)
	return allArgs
}

// debug logs debug-level messages.
func (l *slogLogger) debug(msg string, args ...any) {
	if l.level <= LogLevelDebug {
		l.logger.Debug(msg, l.args(args)...)
	}
}

// info logs info-level messages.
func (l *slogLogger) info(msg string, args ...any) {
	if l.level <= LogLevelInfo {
		l.logger.Info(msg, l.args(args)...)
	}
}

// warn logs warning-level messages.
func (l *slogLogger) warn(msg string, args ...any) {
	if l.level <= LogLevelWarn {
		l.logger.Warn(msg, l.args(args)...)
	}
}

// error logs error-level messages.
func (l *slogLogger) error(msg string, args ...any) {
	if l.level <= LogLevelError {
		l.logger.Error(msg, l.args(args)...)
	}
}

// with returns a logger with additional context fields.
func (l *slogLogger) with(args ...any) loggerImpl {
	return &slogLogger{
		logger: l.logger,
		level:  l.level,
		fields: l.args(args),
	}
}

// nopLogger is a no-op logger implementation that discards all messages.
type nopLogger struct{}

func (n *nopLogger) debug(msg string, args ...any) {}
func (n *nopLogger) info(msg string, args ...any)  {}
func (n *nopLogger) warn(msg string, args ...any)  {}
func (n *nopLogger) error(msg string, args ...any) {}
func (n *nopLogger) with(args ...any) loggerImpl   { return n }

// ParseLogLevel parses a string log level into a LogLevel.
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}
