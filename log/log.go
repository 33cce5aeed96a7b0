package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger provides a concurrency-safe simplified logging interface.
// The zero value discards all messages.
type Logger struct {
	handler slog.Handler
	config  config
}

// Make creates a new [Logger] that writes to the specified writer.
// The default configuration is [DefaultFormat], [DefaultLevel], and
// [DefaultTimeLayout].
//
// Optional configuration can be applied using functional options like
// [WithFormat], [WithLevel], and [WithTimeLayout].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{
		config:  cfg,
		handler: cfg.handler(),
	}
}

// Wrap returns a new [Logger] using the receiver's configuration as the
// base, overridden by any provided options.
func (l Logger) Wrap(opts ...Option) Logger {
	cfg := apply(l.config, opts...)

	return Logger{
		config:  cfg,
		handler: cfg.handler(),
	}
}

// With returns a new [Logger] that includes the given attributes in each
// log message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.handler == nil {
		return l
	}

	return Logger{
		config:  l.config,
		handler: l.handler.WithAttrs(attrs),
	}
}

// Level returns the minimum log level.
func (l Logger) Level() Level {
	if l.handler == nil {
		return DefaultLevel
	}

	return l.config.level
}

// Format returns the log output format.
func (l Logger) Format() Format {
	if l.handler == nil {
		return DefaultFormat
	}

	return l.config.format
}

// Debug logs a message at Debug level.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(LevelDebug, msg, attrs...)
}

// Info logs a message at Info level.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(LevelInfo, msg, attrs...)
}

// Warn logs a message at Warn level.
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(LevelWarn, msg, attrs...)
}

// Error logs a message at Error level.
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(LevelError, msg, attrs...)
}

// log writes a log message at the specified level.
func (l Logger) log(level Level, msg string, attrs ...slog.Attr) {
	// Silently return for zero value loggers.
	if l.handler == nil {
		return
	}

	slog.New(l.handler).LogAttrs(context.Background(), slog.Level(level), msg, attrs...)
}

// defaultLog is the logger used by the package-level functions.
var defaultLog = Make(os.Stderr)

// Default returns the package-level default logger.
func Default() Logger { return defaultLog }

// Config replaces the default logger configuration with the given options
// applied on top of its current configuration.
func Config(opts ...Option) {
	defaultLog = defaultLog.Wrap(opts...)
}

// Debug logs a message at Debug level using the default logger.
func Debug(msg string, attrs ...slog.Attr) { defaultLog.Debug(msg, attrs...) }

// Info logs a message at Info level using the default logger.
func Info(msg string, attrs ...slog.Attr) { defaultLog.Info(msg, attrs...) }

// Warn logs a message at Warn level using the default logger.
func Warn(msg string, attrs ...slog.Attr) { defaultLog.Warn(msg, attrs...) }

// Error logs a message at Error level using the default logger.
func Error(msg string, attrs ...slog.Attr) { defaultLog.Error(msg, attrs...) }
