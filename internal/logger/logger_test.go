package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("info written at warn level: %q", buf.String())
	}
	l.Warn().Msg("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Errorf("warn message missing: %q", buf.String())
	}
}

func TestTarget_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf, zerolog.DebugLevel).Target("base")
	l.Info().Msg("merged")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decoding log line: %v", err)
	}
	if entry["target"] != "base" {
		t.Errorf("target = %v, want base", entry["target"])
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error().Msg("discarded")
}
