package chrono

// defaultCollector backs the package-level convenience functions. It plays
// the role of a process-wide recording singleton while remaining an ordinary
// [Collector] that tests can sidestep with their own instances.
var defaultCollector = NewCollector()

// Default returns the package-level default collector.
func Default() *Collector { return defaultCollector }

// Configure applies options to the default collector.
// Options affect sessions begun after the call.
func Configure(opts ...Option) {
	defaultCollector.Configure(opts...)
}

// BeginSession opens a recording session on the default collector.
// Failures are logged and swallowed; recording degrades to a no-op.
func BeginSession(name, path string) {
	_ = defaultCollector.BeginSession(name, path)
}

// EndSession terminates the default collector's active session, making its
// file a complete JSON document. A no-op when no session is active.
func EndSession() {
	_ = defaultCollector.EndSession()
}

// StartTimer starts a timer on the default collector for the region labeled
// name.
func StartTimer(name string) *Timer {
	return defaultCollector.StartTimer(name)
}

// Scope starts a timer on the default collector and returns its stop
// function for deferred calls:
//
//	defer chrono.Scope("work")()
func Scope(name string) func() {
	return defaultCollector.Scope(name)
}
