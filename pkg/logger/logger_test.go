package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_WritesJSONWithService(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", Service: "wms-console", Output: &buf})

	log.Debug().Msg("hidden")
	log.Info().Str("session_id", "s-1").Msg("session opened")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single JSON entry, got %q: %v", buf.String(), err)
	}
	if entry["service"] != "wms-console" || entry["session_id"] != "s-1" || entry["message"] != "session opened" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestInitGetReset(t *testing.T) {
	Reset()
	defer Reset()

	defer func() {
		if recover() == nil {
			t.Fatalf("Get before Init must panic")
		}
	}()

	var buf bytes.Buffer
	first := Init(Options{Output: &buf})
	second := Init(Options{Output: &bytes.Buffer{}, Level: "error"})
	if first.GetLevel() != second.GetLevel() {
		t.Fatalf("second Init must not rebuild the logger")
	}
	_ = Get()

	Reset()
	Get()
}
