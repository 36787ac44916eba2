package clipboard

import (
	"errors"
	"testing"

	"github.com/atomicstack/pageflow/internal/editor"
)

var (
	_ editor.Clipboard = System{}
	_ editor.Clipboard = (*Memory)(nil)
)

func TestMemoryRoundTrip(t *testing.T) {
	m := &Memory{}
	if err := m.SetText("hello"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	got, err := m.Text()
	if err != nil || got != "hello" {
		t.Fatalf("expected hello, got %q %v", got, err)
	}
}

func TestMemoryFailure(t *testing.T) {
	boom := errors.New("boom")
	m := &Memory{Err: boom}
	if err := m.SetText("x"); !errors.Is(err, boom) {
		t.Fatalf("expected boom from SetText, got %v", err)
	}
	if _, err := m.Text(); !errors.Is(err, boom) {
		t.Fatalf("expected boom from Text, got %v", err)
	}
}

func TestDetectReturnsCapability(t *testing.T) {
	c := Detect()
	if c == nil {
		t.Fatalf("expected a clipboard capability")
	}
	if _, ok := c.(*Memory); ok == Available() {
		t.Fatalf("expected memory fallback only without a system clipboard")
	}
}
