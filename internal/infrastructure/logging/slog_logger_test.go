package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestSlogLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLoggerWithWriter(&buf, "info").With("component", "test")

	log.Info("franchise created", "franchise_id", "abc")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "franchise created" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["component"] != "test" || entry["franchise_id"] != "abc" {
		t.Errorf("missing attributes: %v", entry)
	}
}

func TestSlogLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLoggerWithWriter(&buf, "WARN")

	log.Debug("hidden")
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}

	log.Warn("shown")
	if buf.Len() == 0 {
		t.Fatal("expected warn line")
	}
}
