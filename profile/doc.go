// Package profile provides optional pprof capture alongside a chrono
// recording session.
//
// The package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When the tag is unset (the default), every operation is a no-op with
// zero runtime overhead, so instrumented programs can leave the wiring in
// place for release builds.
//
// # Available Modes
//
// When built with the pprof tag, the following modes are supported:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list supported by the current build.
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	ctrl := p.Start()
//	defer ctrl.Stop()
//
// Profile files are written to the configured directory with names matching
// the mode (e.g. cpu.pprof). Analyze them with:
//
//	go tool pprof /tmp/profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
