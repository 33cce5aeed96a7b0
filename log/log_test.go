package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level %v, got %v", DefaultLevel, logger.Level())
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("expected default format %v, got %v", DefaultFormat, logger.Format())
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()

	logger = Make(&buf, WithLevel(LevelError))
	logger.Info("info message")

	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger.Error("error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_JSONFormat_Fields(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelInfo))

	logger.Info("hello", slog.String("key", "value"))

	var entry map[string]any

	err := json.Unmarshal(buf.Bytes(), &entry)
	if err != nil {
		t.Fatalf("log output is not valid JSON: %v: %s", err, buf.String())
	}

	if entry["msg"] != "hello" {
		t.Errorf("msg = %v, want %q", entry["msg"], "hello")
	}

	if entry["key"] != "value" {
		t.Errorf("key = %v, want %q", entry["key"], "value")
	}
}

func TestLogger_With_IncludesAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelInfo)).
		With(slog.String("component", "collector"))

	logger.Info("attached")

	if !strings.Contains(buf.String(), "component=collector") {
		t.Errorf("expected component attr in output: %s", buf.String())
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("dropped")
	logger.Error("dropped")

	if logger.Level() != DefaultLevel {
		t.Errorf("zero value level = %v, want %v", logger.Level(), DefaultLevel)
	}
}

func TestLogger_Wrap_OverridesConfiguration(t *testing.T) {
	var first, second bytes.Buffer

	logger := Make(&first, WithLevel(LevelInfo))
	wrapped := logger.Wrap(WithOutput(&second))

	wrapped.Info("rerouted")

	if first.Len() > 0 {
		t.Errorf("original writer received wrapped output: %s", first.String())
	}

	if !strings.Contains(second.String(), "rerouted") {
		t.Errorf("wrapped writer missing output: %s", second.String())
	}
}

func TestLogger_WithTimeLayout_EmptyDisablesTimestamps(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelInfo), WithTimeLayout(""))

	logger.Info("no time")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("expected no timestamp in output: %s", buf.String())
	}
}

func TestLogger_NilWriter_UsesDiscard(t *testing.T) {
	logger := Make(nil, WithLevel(LevelDebug))

	// Must not panic.
	logger.Error("dropped")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"error", LevelError},
		{"ERROR+2", LevelError + 2},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{" JSON ", FormatJSON},
		{"text", FormatText},
		{"bogus", DefaultFormat},
		{"", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfig_ReplacesDefaultLogger(t *testing.T) {
	restore := defaultLog
	defer func() { defaultLog = restore }()

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithLevel(LevelInfo))

	Info("through default")

	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("default logger missing output: %s", buf.String())
	}

	if Default().Level() != LevelInfo {
		t.Errorf("default level = %v, want %v", Default().Level(), LevelInfo)
	}
}
