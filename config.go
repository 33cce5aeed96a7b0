package chrono

import (
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/chrono/log"
	"github.com/ardnew/chrono/profile"
)

// Config declares a recording session in a form loadable from YAML, so
// instrumented applications can keep profiling settings in a file instead of
// code:
//
//	session: startup
//	path: trace.json
//	profile:
//	  mode: cpu
//	log:
//	  level: debug
type Config struct {
	Session string        `yaml:"session"`
	Path    string        `yaml:"path"`
	Profile ProfileConfig `yaml:"profile,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// ProfileConfig selects the companion pprof capture for a session.
// See [github.com/ardnew/chrono/profile] for supported modes.
type ProfileConfig struct {
	Mode  string `yaml:"mode"`
	Path  string `yaml:"path,omitempty"`
	Quiet bool   `yaml:"quiet,omitempty"`
}

// LogConfig adjusts the collector's diagnostics logger.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// ParseConfig decodes a YAML session configuration.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config

	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, ErrParseConfig.Wrap(err)
	}

	return cfg, nil
}

// options converts the declarative form into collector options.
func (cfg Config) options() []Option {
	opts := make([]Option, 0, 2)

	if cfg.Profile.Mode != "" {
		opts = append(opts, WithProfile(profile.Profiler{
			Mode:  cfg.Profile.Mode,
			Path:  cfg.Profile.Path,
			Quiet: cfg.Profile.Quiet,
		}))
	}

	if cfg.Log != (LogConfig{}) {
		opts = append(opts, WithLogger(log.Make(os.Stderr,
			log.WithLevel(log.ParseLevel(cfg.Log.Level)),
			log.WithFormat(log.ParseFormat(cfg.Log.Format)),
		)))
	}

	return opts
}

// BeginConfig applies cfg's options to the collector and begins the session
// it describes. Session-begin semantics are those of [Collector.BeginSession].
func (c *Collector) BeginConfig(cfg Config) error {
	c.Configure(cfg.options()...)

	return c.BeginSession(cfg.Session, cfg.Path)
}

// BeginConfig applies cfg to the default collector and begins the session it
// describes. Failures are logged and swallowed, as with [BeginSession].
func BeginConfig(cfg Config) {
	_ = defaultCollector.BeginConfig(cfg)
}
