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

func withLogFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "pageflow.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := withLogFile(t)
	SetTraceEnabled(false)
	Trace("page.switch", map[string]interface{}{"to": "home"})
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no log file, got err=%v", err)
	}
}

func TestTraceWritesJSONLines(t *testing.T) {
	path := withLogFile(t)
	SetTraceEnabled(true)
	Trace("page.switch", map[string]interface{}{"to": "home"})
	Trace("history.push", map[string]interface{}{"page": "home"})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry struct {
			Event string `json:"event"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decode line %q: %v", scanner.Text(), err)
		}
		names = append(names, entry.Event)
	}
	if strings.Join(names, ",") != "page.switch,history.push" {
		t.Fatalf("unexpected events %v", names)
	}
}

func TestErrorfAppendsMessage(t *testing.T) {
	path := withLogFile(t)
	Errorf("no factory for page %q", "missing")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `no factory for page "missing"`) {
		t.Fatalf("expected message in log, got %q", data)
	}
}
