package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file while tracing is disabled, got %v", err)
	}

	SetTraceEnabled(true)
	if !TraceEnabled() || Path() != path {
		t.Fatalf("unexpected logging state enabled=%v path=%q", TraceEnabled(), Path())
	}
	Trace("session.open", map[string]any{"menu": "root"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	var entry struct {
		Event   string         `json:"event"`
		Payload map[string]any `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if entry.Event != "session.open" || entry.Payload["menu"] != "root" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("grab failed"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "grab failed") {
		t.Fatalf("expected error in log, got %q", data)
	}
}

func TestErrorLeavesStandardLoggerAlone(t *testing.T) {
	Configure(filepath.Join(t.TempDir(), "error.log"))
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(prev)
		Configure("")
	})

	Error(errors.New("boom"))
	log.Print("host message")
	if !strings.Contains(buf.String(), "host message") {
		t.Fatalf("expected standard logger output to stay with the host, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "boom") {
		t.Fatalf("expected error to go to the log file only")
	}
}

func TestConfigureFallsBackToDefault(t *testing.T) {
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
