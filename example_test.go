package chrono_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ardnew/chrono"
)

// Example records one timed region with the package-level default collector
// and verifies the finished trace file is a valid JSON document.
func Example() {
	path := filepath.Join(os.TempDir(), "chrono_example.json")
	defer os.Remove(path)

	chrono.BeginSession("example", path)

	func() {
		defer chrono.Scope("work")()

		time.Sleep(time.Millisecond)
	}()

	chrono.EndSession()

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(json.Valid(data))
	// Output: true
}

// ExampleCollector_StartTimer stops a timer explicitly, for regions that do
// not align with a function scope.
func ExampleCollector_StartTimer() {
	path := filepath.Join(os.TempDir(), "chrono_example_timer.json")
	defer os.Remove(path)

	c := chrono.NewCollector()

	if err := c.BeginSession("example", path); err != nil {
		fmt.Println(err)

		return
	}

	t := c.StartTimer("step")
	time.Sleep(time.Millisecond)
	t.Stop()

	if err := c.EndSession(); err != nil {
		fmt.Println(err)

		return
	}

	var doc chrono.Document

	data, _ := os.ReadFile(path)
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(len(doc.TraceEvents), doc.TraceEvents[0].Name)
	// Output: 1 step
}
