package chrono

import (
	"bytes"
	"hash/fnv"
	"runtime"
	"strconv"
	"strings"
)

// Constants fixed by the subset of the Trace Event Format this package emits:
// every event is a "complete" event (begin and end folded into one record)
// attributed to a function-like category in a single-process model.
const (
	phaseComplete    = "X"
	categoryFunction = "function"
)

// Event is one completed timed region in Chrome Trace Event Format.
// Field order matches the key order written to the trace stream.
//
// Cat is always "function", Ph is always "X", and Pid is always 0.
// Dur and Ts are integer microseconds; Ts is relative to the start of the
// recording session. Tid identifies the goroutine that stopped the timer.
type Event struct {
	Cat  string `json:"cat"`
	Dur  int64  `json:"dur"`
	Name string `json:"name"`
	Ph   string `json:"ph"`
	Pid  int    `json:"pid"`
	Tid  uint32 `json:"tid"`
	Ts   int64  `json:"ts"`
}

// Document is the schema of a complete trace file. It can decode a finished
// session's output with encoding/json.
type Document struct {
	OtherData   map[string]any `json:"otherData"`
	TraceEvents []Event        `json:"traceEvents"`
}

// sanitizeLabel replaces double quotes with apostrophes so the label cannot
// terminate the enclosing JSON string. No other escaping is performed;
// labels containing backslashes or control characters yield a malformed
// document, which is an accepted limitation of the format emitted here.
func sanitizeLabel(name string) string {
	return strings.ReplaceAll(name, `"`, `'`)
}

// appendTo appends the event as a single JSON object literal. Serialization
// is framed by hand rather than encoding/json so that label sanitization is
// exactly the quote replacement documented on [sanitizeLabel].
func (e Event) appendTo(buf []byte) []byte {
	buf = append(buf, `{"cat":"`...)
	buf = append(buf, e.Cat...)
	buf = append(buf, `","dur":`...)
	buf = strconv.AppendInt(buf, e.Dur, 10)
	buf = append(buf, `,"name":"`...)
	buf = append(buf, sanitizeLabel(e.Name)...)
	buf = append(buf, `","ph":"`...)
	buf = append(buf, e.Ph...)
	buf = append(buf, `","pid":`...)
	buf = strconv.AppendInt(buf, int64(e.Pid), 10)
	buf = append(buf, `,"tid":`...)
	buf = strconv.AppendUint(buf, uint64(e.Tid), 10)
	buf = append(buf, `,"ts":`...)
	buf = strconv.AppendInt(buf, e.Ts, 10)

	return append(buf, '}')
}

// goroutineID returns a 32-bit identity for the calling goroutine, stable
// for the goroutine's lifetime. The runtime does not expose goroutine IDs,
// so the ID is parsed from the first stack trace line ("goroutine N [...]")
// and hashed to a fixed width. Collisions between distinct goroutines are
// tolerated; the value only groups events by origin in trace viewers.
func goroutineID() uint32 {
	var stack [64]byte

	n := runtime.Stack(stack[:], false)
	head := stack[:n]

	if i := bytes.IndexByte(head, '['); i > 0 {
		head = head[:i]
	}

	head = bytes.TrimSpace(bytes.TrimPrefix(head, []byte("goroutine")))

	h := fnv.New32a()
	_, _ = h.Write(head)

	return h.Sum32()
}
