package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONLineWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})

	Trace("ignored", nil)
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected no log file while tracing is disabled")
	}

	SetTraceEnabled(true)
	Trace("popup.open", map[string]interface{}{"items": 3})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatalf("expected one trace line")
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if entry.Event != "popup.open" {
		t.Fatalf("expected popup.open, got %q", entry.Event)
	}
	if entry.Payload["items"] != float64(3) {
		t.Fatalf("expected items payload 3, got %v", entry.Payload["items"])
	}
}

func TestErrorAppendsMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("boom"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Fatalf("expected error in log, got %q", string(data))
	}
	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}
}
