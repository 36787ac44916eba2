// Package clipboard provides the clipboard capabilities handed to the editor
// on every tick.
package clipboard

import (
	"errors"
	"sync"

	sysclip "github.com/atotto/clipboard"

	"github.com/atomicstack/pageflow/internal/editor"
)

// ErrUnavailable is returned when no system clipboard utility is present.
var ErrUnavailable = errors.New("clipboard unavailable")

// System talks to the platform clipboard through xclip, xsel, wl-clipboard,
// pbcopy or the Windows API.
type System struct{}

// Text reads the clipboard.
func (System) Text() (string, error) {
	if sysclip.Unsupported {
		return "", ErrUnavailable
	}
	return sysclip.ReadAll()
}

// SetText writes the clipboard.
func (System) SetText(text string) error {
	if sysclip.Unsupported {
		return ErrUnavailable
	}
	return sysclip.WriteAll(text)
}

// Available reports whether a system clipboard utility was found.
func Available() bool {
	return !sysclip.Unsupported
}

// Memory is a process-local clipboard, used when the system one is missing
// and in tests. Err, when set, makes every call fail.
type Memory struct {
	mu   sync.Mutex
	text string
	Err  error
}

// Text returns the stored text.
func (m *Memory) Text() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.text, nil
}

// SetText stores text.
func (m *Memory) SetText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

// Detect returns the system clipboard when one is available and a Memory
// clipboard otherwise.
func Detect() editor.Clipboard {
	if Available() {
		return System{}
	}
	return &Memory{}
}
