package chrono

import (
	"os"

	"github.com/ardnew/chrono/log"
	"github.com/ardnew/chrono/profile"
)

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// config holds the configuration options for a Collector.
type config struct {
	logger   log.Logger
	profiler profile.Profiler
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	var c config

	return apply(apply(c, WithDefaults()), opts...)
}

// WithDefaults returns a functional option that sets the default
// configuration: diagnostics to standard error at the default level, and no
// companion pprof capture.
func WithDefaults() Option {
	return func(c config) config {
		c.logger = log.Make(os.Stderr)
		c.profiler = profile.Profiler{}

		return c
	}
}

// WithLogger returns a functional option that sets the logger used for the
// collector's own diagnostics. Instrumentation faults are reported here and
// nowhere else; they never propagate into the instrumented program.
func WithLogger(l log.Logger) Option {
	return func(c config) config {
		c.logger = l

		return c
	}
}

// WithProfile returns a functional option that attaches a companion pprof
// capture to the collector. The profiler starts when a session begins and
// stops when it ends. It is a no-op unless built with the pprof tag.
func WithProfile(p profile.Profiler) Option {
	return func(c config) config {
		c.profiler = p

		return c
	}
}
