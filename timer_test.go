package chrono

import (
	"path/filepath"
	"sync"
	"testing"
)

// oneShotSession runs fn inside a fresh session and returns the decoded
// trace document.
func oneShotSession(t *testing.T, fn func(c *Collector)) Document {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trace.json")

	c := quietCollector()

	if err := c.BeginSession("test", path); err != nil {
		t.Fatalf("begin session: %v", err)
	}

	fn(c)

	if err := c.EndSession(); err != nil {
		t.Fatalf("end session: %v", err)
	}

	return readDocument(t, path)
}

func TestTimer_Stop_Idempotent(t *testing.T) {
	doc := oneShotSession(t, func(c *Collector) {
		tm := c.StartTimer("once")
		tm.Stop()
		tm.Stop()
		tm.Stop()
	})

	if len(doc.TraceEvents) != 1 {
		t.Errorf("expected 1 event from repeated Stop, got %d", len(doc.TraceEvents))
	}
}

func TestTimer_Stop_Nil(t *testing.T) {
	var tm *Timer

	tm.Stop() // must not panic
}

func TestTimer_ScopeGuard_EarlyReturn(t *testing.T) {
	region := func(c *Collector, early bool) {
		defer c.Scope("region")()

		if early {
			return
		}
	}

	doc := oneShotSession(t, func(c *Collector) {
		region(c, true)
		region(c, false)
	})

	if len(doc.TraceEvents) != 2 {
		t.Fatalf("expected 2 events, got %d", len(doc.TraceEvents))
	}

	for _, ev := range doc.TraceEvents {
		if ev.Dur < 0 {
			t.Errorf("negative duration: %+v", ev)
		}
	}
}

func TestTimer_ScopeGuard_Panic(t *testing.T) {
	doc := oneShotSession(t, func(c *Collector) {
		func() {
			defer func() { _ = recover() }()
			defer c.Scope("panics")()

			panic("bail out")
		}()
	})

	if len(doc.TraceEvents) != 1 {
		t.Fatalf("expected 1 event from panicking scope, got %d", len(doc.TraceEvents))
	}

	if doc.TraceEvents[0].Name != "panics" {
		t.Errorf("name = %q, want %q", doc.TraceEvents[0].Name, "panics")
	}
}

func TestTimer_Stop_SharedAcrossGoroutines(t *testing.T) {
	doc := oneShotSession(t, func(c *Collector) {
		tm := c.StartTimer("shared")

		var wg sync.WaitGroup

		for i := 0; i < 16; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				tm.Stop()
			}()
		}

		wg.Wait()
	})

	if len(doc.TraceEvents) != 1 {
		t.Errorf("expected exactly 1 event from shared timer, got %d", len(doc.TraceEvents))
	}
}
