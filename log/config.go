package log

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelError

// ParseLevel parses a string representation of a log level.
// Valid level strings are "DEBUG", "INFO", "WARN", and "ERROR",
// optionally followed by a "+" or "-" and an integer offset.
// Unrecognized strings yield [DefaultLevel].
// See [slog.Level.UnmarshalText] for details.
func ParseLevel(s string) Level {
	l := new(slog.Level)

	err := l.UnmarshalText([]byte(s))
	if err != nil {
		return DefaultLevel
	}

	return Level(*l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatText

// ParseFormat parses a string representation of a log format.
// Valid format strings are "json" and "text".
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return DefaultFormat
	}
}

// DefaultTimeLayout is the default used when no time layout is provided.
const DefaultTimeLayout = time.RFC3339

// config holds the configuration options for a Logger.
// It is immutable once the logger is constructed.
type config struct {
	output     io.Writer
	timeLayout string
	level      Level
	format     Format
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(w io.Writer, opts ...Option) config {
	var c config

	return apply(apply(c, WithDefaults(w)), opts...)
}

// handler creates a slog.Handler based on the current configuration.
func (c config) handler() slog.Handler {
	if c.output == nil {
		c.output = io.Discard
	}

	opt := &slog.HandlerOptions{
		Level: slog.Level(c.level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					if c.timeLayout == "" {
						return slog.Attr{}
					}

					a.Value = slog.StringValue(t.Format(c.timeLayout))
				}
			}

			return a
		},
	}

	switch c.format {
	case FormatJSON:
		return slog.NewJSONHandler(c.output, opt)

	case FormatText:
		return slog.NewTextHandler(c.output, opt)

	default:
		return slog.NewTextHandler(io.Discard, opt)
	}
}

// WithDefaults returns a functional option that sets the default
// configuration: [DefaultLevel], [DefaultFormat], and [DefaultTimeLayout].
func WithDefaults(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w
		c.timeLayout = DefaultTimeLayout
		c.level = DefaultLevel
		c.format = DefaultFormat

		return c
	}
}

// WithOutput returns a functional option that sets the output [io.Writer]
// for log messages.
// If a nil writer is provided, [io.Discard] is used instead.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithLevel returns a functional option that sets the minimum log level.
// Messages below this level are discarded.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat returns a functional option that sets the output format
// for log messages.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithTimeLayout returns a functional option that sets the layout used to
// format log timestamps, passed verbatim to [time.Time.Format].
// An empty layout disables timestamps entirely.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.timeLayout = layout

		return c
	}
}
