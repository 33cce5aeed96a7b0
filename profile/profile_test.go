package profile

import "testing"

func TestProfiler_Start_NoMode(t *testing.T) {
	ctrl := Profiler{}.Start()

	// Stop is always safely callable, repeatedly.
	ctrl.Stop()
	ctrl.Stop()
}

func TestProfiler_Options_Compose(t *testing.T) {
	var p Profiler

	for _, opt := range []func(Profiler) Profiler{
		WithMode("cpu"),
		WithPath("/tmp/profiles"),
		WithQuiet(true),
	} {
		p = opt(p)
	}

	want := Profiler{Mode: "cpu", Path: "/tmp/profiles", Quiet: true}
	if p != want {
		t.Errorf("composed profiler = %+v, want %+v", p, want)
	}
}
