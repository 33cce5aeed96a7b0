// Package chrono instruments arbitrary code scopes with wall-clock timers and
// records the results to a trace file in Chrome Trace Event JSON format,
// viewable with chrome://tracing, Perfetto, or any compatible viewer.
//
// # Overview
//
// A [Collector] owns one recording session at a time. While a session is
// active, any number of goroutines may create and stop timers concurrently;
// each completed timer contributes exactly one event to the session's trace
// file. The collector serializes concurrent writers so the file is always a
// sequence of complete event objects, and a syntactically valid JSON document
// once the session ends.
//
// # Basic Usage
//
// The package-level functions operate on a shared default collector:
//
//	chrono.BeginSession("startup", "trace.json")
//	defer chrono.EndSession()
//
//	func load() {
//		defer chrono.Scope("load")()
//		// timed work
//	}
//
// Timers can also be stopped explicitly, which is useful when the timed
// region does not align with a function scope:
//
//	t := chrono.StartTimer("parse")
//	parse(input)
//	t.Stop()
//
// Stopping a timer more than once is harmless; only the first stop reports.
//
// # Independent Collectors
//
// Tests and embedded uses can construct isolated collectors with
// [NewCollector] instead of sharing the package default:
//
//	c := chrono.NewCollector()
//	c.BeginSession("bench", filepath.Join(dir, "bench.json"))
//	defer c.EndSession()
//
// # Failure Behavior
//
// Instrumentation must never alter the behavior of the program under
// measurement. Every operation is safe to call when no session is active,
// and I/O failures degrade recording to a no-op instead of propagating into
// the host program. Methods on [Collector] report failures as error values
// for callers that want them; the package-level functions log them through
// [github.com/ardnew/chrono/log] and otherwise stay silent.
//
// # Companion pprof Capture
//
// When built with the pprof build tag, a session can additionally drive a
// runtime profiler via [github.com/ardnew/chrono/profile]:
//
//	chrono.Configure(chrono.WithProfile(profile.Profiler{Mode: "cpu"}))
//
// The profiler starts with BeginSession and stops with EndSession.
package chrono
