package chrono

import (
	"sync/atomic"
	"time"
)

// Timer measures the wall-clock duration of one labeled region and submits
// exactly one event to its collector, no matter how many times or from how
// many goroutines Stop is called.
type Timer struct {
	c       *Collector
	name    string
	start   time.Time
	stopped atomic.Bool
}

// StartTimer starts a timer for the region labeled name. Pair it with
// [Timer.Stop], or use [Collector.Scope] to bind the stop to a function
// scope. A timer created before its session begins is reported from the
// session origin rather than a negative offset.
func (c *Collector) StartTimer(name string) *Timer {
	return &Timer{
		c:     c,
		name:  name,
		start: time.Now(),
	}
}

// Stop ends the timed region and submits its event. Stop is idempotent:
// only the first call reports, later calls are no-ops. A nil timer is also
// a no-op.
func (t *Timer) Stop() {
	if t == nil || !t.stopped.CompareAndSwap(false, true) {
		return
	}

	dur := time.Since(t.start)

	t.c.writeEvent(t.name, t.start, dur, goroutineID())
}

// Scope starts a timer for the region labeled name and returns its stop
// function, intended for deferred calls:
//
//	defer c.Scope("load")()
//
// The deferred call runs on every exit path, including panics, so the
// region reports exactly once regardless of how the scope ends.
func (c *Collector) Scope(name string) func() {
	return c.StartTimer(name).Stop
}
