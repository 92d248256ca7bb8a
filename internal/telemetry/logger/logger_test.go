package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info("evaluation complete", "model", "schwarzschild", "points", 64)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "evaluation complete" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["model"] != "schwarzschild" {
		t.Errorf("model = %v", entry["model"])
	}
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("text output = %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "warn", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Debug("hidden")
	log.Info("hidden too")
	if buf.Len() != 0 {
		t.Errorf("below-level logs written: %q", buf.String())
	}

	log.Warn("visible")
	if buf.Len() == 0 {
		t.Error("warn log not written")
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	SetLevel("debug")
	defer SetLevel("info")

	if GetLevel() != "debug" {
		t.Errorf("GetLevel() = %q, want debug", GetLevel())
	}

	log.Debug("now visible")
	if buf.Len() == 0 {
		t.Error("debug log not written after SetLevel(debug)")
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	log, _ := New(Config{Level: "info", Format: "json", Output: &buf})

	log.With("component", "eval").Info("run stored")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["component"] != "eval" {
		t.Errorf("component = %v", entry["component"])
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-abc123")
	if got := RequestIDFromContext(ctx); got != "req-abc123" {
		t.Errorf("RequestIDFromContext() = %q, want req-abc123", got)
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Error("RequestIDFromContext should be empty without a value")
	}
}
