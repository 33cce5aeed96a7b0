package chrono

import (
	"log/slog"
	"os"
	"sync"
	"time"
)

// Fixed document framing. The preamble opens the traceEvents array; the
// footer closes it. Between them the stream is a comma-separated sequence of
// event objects, so the file is valid JSON only after EndSession.
const (
	documentPreamble = `{"otherData": {},"traceEvents":[`
	documentFooter   = `]}`
)

// Collector owns at most one recording session and serializes concurrently
// produced timing events into the session's trace file.
//
// All methods are safe for concurrent use and safe to call when no session
// is active. Construct collectors with [NewCollector]; the zero value is not
// usable.
type Collector struct {
	mu   sync.Mutex
	cfg  config
	sess *session
}

// session is the state bound to one output file between BeginSession and
// EndSession.
type session struct {
	name     string
	out      *os.File
	epoch    time.Time
	count    int
	pprof    interface{ Stop() }
	poisoned bool
}

// NewCollector creates a new Collector with the given options and no active
// session.
func NewCollector(opts ...Option) *Collector {
	return &Collector{cfg: makeConfig(opts...)}
}

// Configure applies options on top of the collector's current configuration.
// Options affect sessions begun after the call.
func (c *Collector) Configure(opts ...Option) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cfg = apply(c.cfg, opts...)
}

// Active reports whether a recording session is in progress.
func (c *Collector) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sess != nil
}

// BeginSession opens a recording session named name writing to the file at
// path, creating or truncating it. If a session is already active, the call
// is a no-op and the active session keeps its file.
//
// A file that cannot be created leaves the collector with no session:
// recording degrades to a no-op rather than disturbing the host program.
// The failure is logged and returned for callers that want it; the
// package-level [BeginSession] discards it.
func (c *Collector) BeginSession(name, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess != nil {
		c.cfg.logger.Debug("session already active",
			slog.String("active", c.sess.name),
			slog.String("ignored", name),
		)

		return nil
	}

	out, err := os.Create(path)
	if err != nil {
		fail := ErrCreateFile.Wrap(err).With(slog.String("path", path))
		c.cfg.logger.Error("begin session", slog.Any("error", fail))

		return fail
	}

	if _, err := out.WriteString(documentPreamble); err != nil {
		_ = out.Close()

		fail := ErrWriteTrace.Wrap(err).With(slog.String("path", path))
		c.cfg.logger.Error("begin session", slog.Any("error", fail))

		return fail
	}

	c.sess = &session{
		name:  name,
		out:   out,
		epoch: time.Now(),
		pprof: c.cfg.profiler.Start(),
	}

	c.cfg.logger.Debug("session started",
		slog.String("session", name),
		slog.String("path", path),
	)

	return nil
}

// EndSession terminates the active session: it writes the closing token,
// flushes and closes the file, and stops the companion profiler if one was
// configured. After EndSession the file is a complete JSON document.
//
// Without an active session the call is a no-op.
func (c *Collector) EndSession() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sess
	if s == nil {
		return nil
	}

	c.sess = nil

	s.pprof.Stop()

	var fail *Error

	// A poisoned stream is in an unknown byte position; appending the footer
	// would only corrupt it further.
	if !s.poisoned {
		if _, err := s.out.WriteString(documentFooter); err != nil {
			fail = ErrWriteTrace.Wrap(err)
		} else if err := s.out.Sync(); err != nil {
			fail = ErrWriteTrace.Wrap(err)
		}
	}

	if err := s.out.Close(); err != nil && fail == nil {
		fail = ErrCloseFile.Wrap(err)
	}

	if fail != nil {
		fail = fail.With(slog.String("session", s.name))
		c.cfg.logger.Error("end session", slog.Any("error", fail))

		return fail
	}

	// A poisoned session closed cleanly still left an un-terminated file;
	// report the degraded outcome instead of a routine shutdown.
	if s.poisoned {
		c.cfg.logger.Warn("session ended after write fault",
			slog.String("session", s.name),
			slog.Int("events", s.count),
			slog.Bool("poisoned", true),
		)

		return nil
	}

	c.cfg.logger.Debug("session ended",
		slog.String("session", s.name),
		slog.Int("events", s.count),
	)

	return nil
}

// writeEvent appends one completed timed region to the active session.
// Events submitted while no session is active, or after a write fault has
// poisoned the session, are dropped.
//
// The mutex is held across the whole check-write-increment sequence: comma
// placement depends on the event count, so the count must change atomically
// with the bytes it describes.
func (c *Collector) writeEvent(name string, start time.Time, dur time.Duration, tid uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sess
	if s == nil || s.poisoned {
		return
	}

	ts := start.Sub(s.epoch).Microseconds()

	// A timer created before the session began would carry a negative
	// offset, which viewers render off-canvas; pin it to the session origin.
	if ts < 0 {
		ts = 0
	}

	ev := Event{
		Cat:  categoryFunction,
		Dur:  dur.Microseconds(),
		Name: name,
		Ph:   phaseComplete,
		Pid:  0,
		Tid:  tid,
		Ts:   ts,
	}

	buf := make([]byte, 0, 128)

	if s.count > 0 {
		buf = append(buf, ',')
	}

	buf = ev.appendTo(buf)

	if _, err := s.out.Write(buf); err != nil {
		// Stop recording for the remainder of the session; the stream may
		// hold a partial event, and the host program must not be disturbed.
		s.poisoned = true

		c.cfg.logger.Error("write trace event",
			slog.Any("error", ErrWriteTrace.Wrap(err)),
			slog.String("session", s.name),
			slog.String("name", ev.Name),
		)

		return
	}

	s.count++

	// Flush so a crash mid-session still leaves every written event intact.
	// A failed sync leaves the data in the page cache; not a write fault.
	if err := s.out.Sync(); err != nil {
		c.cfg.logger.Warn("sync trace file",
			slog.Any("error", err),
			slog.String("session", s.name),
		)
	}
}
