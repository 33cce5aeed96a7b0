package profile

// Profiler configures a pprof capture.
type Profiler struct {
	Mode  string // profiling mode; see package doc for supported values
	Path  string // output directory; empty uses the pkg/profile default
	Quiet bool   // suppress pkg/profile status messages
}

// Start initializes the profiler and returns an interface for stopping it.
//
// If the pprof build tag or p.Mode is unset, or p.Mode names an unsupported
// mode, Start returns a no-op implementation.
// Both Start and Stop are always safely callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p.Mode, p.Path, p.Quiet)
}

// WithMode returns a functional option for setting a profiler's mode.
func WithMode(mode string) func(Profiler) Profiler {
	return func(p Profiler) Profiler {
		p.Mode = mode

		return p
	}
}

// WithPath returns a functional option for setting a profiler's output path.
func WithPath(path string) func(Profiler) Profiler {
	return func(p Profiler) Profiler {
		p.Path = path

		return p
	}
}

// WithQuiet returns a functional option for setting a profiler's quiet flag.
func WithQuiet(quiet bool) func(Profiler) Profiler {
	return func(p Profiler) Profiler {
		p.Quiet = quiet

		return p
	}
}

type ignore struct{}

func (ignore) Stop() {}
