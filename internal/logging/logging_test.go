package logging

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type testStringer string

func (s testStringer) String() string { return string(s) }

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "chatfreq.log")

	if err := Init(logPath, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogPayload("summary", map[string]int{"inputs": 2})
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, `[SUMMARY] {"inputs":2}`) {
		t.Fatalf("expected LogPayload content, got: %s", content)
	}
}

func TestFormatRequestDefaults(t *testing.T) {
	msg := FormatRequest(" post ", "", 400, 1500*time.Microsecond, " ", "")
	if !strings.HasPrefix(msg, "[HTTP] POST /") {
		t.Fatalf("expected method and default path, got: %s", msg)
	}
	if !strings.Contains(msg, "status=400") {
		t.Fatalf("expected status, got: %s", msg)
	}
	if !strings.Contains(msg, "latency=1.5ms") {
		t.Fatalf("expected latency, got: %s", msg)
	}
	if !strings.Contains(msg, "client=unknown") {
		t.Fatalf("expected default client, got: %s", msg)
	}
	if strings.Contains(msg, "error=") {
		t.Fatalf("expected no error field, got: %s", msg)
	}

	msg = FormatRequest("GET", "/api/top", 409, 0, "10.0.0.1", "no analysis")
	if !strings.Contains(msg, `error="no analysis"`) {
		t.Fatalf("expected quoted error, got: %s", msg)
	}
}

func TestFormatPayloadVariants(t *testing.T) {
	if got := formatPayload(nil); got != "null" {
		t.Fatalf("nil payload: %s", got)
	}
	if got := formatPayload(" "); got != `""` {
		t.Fatalf("empty string payload: %s", got)
	}
	if got := formatPayload([]byte("hi")); got != "hi" {
		t.Fatalf("byte payload: %s", got)
	}
	if got := formatPayload(testStringer("ok")); got != "ok" {
		t.Fatalf("stringer payload: %s", got)
	}
}

func TestInitDiscard(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	if err := Init("", false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})
	LogEvent("discard")
	if buf.Len() != 0 {
		t.Fatalf("expected log output discarded, got: %s", buf.String())
	}
}
