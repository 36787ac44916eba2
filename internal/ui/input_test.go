package ui

import (
	"testing"

	"github.com/atomicstack/pageflow/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want state.Event
	}{
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hé")}, state.TextInput{Text: "hé"}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, state.TextInput{Text: " "}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, state.KeyDown{Key: state.KeyBackspace}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, state.KeyDown{Key: state.KeyReturn}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, state.KeyDown{Key: state.KeyEscape}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, state.KeyDown{Key: state.KeyLeft}},
		{"shift+right", tea.KeyMsg{Type: tea.KeyShiftRight}, state.KeyDown{Key: state.KeyRight, Shift: true}},
		{"alt+left", tea.KeyMsg{Type: tea.KeyLeft, Alt: true}, state.PointerSide{Forward: false}},
		{"alt+right", tea.KeyMsg{Type: tea.KeyRight, Alt: true}, state.PointerSide{Forward: true}},
		{"ctrl+a", tea.KeyMsg{Type: tea.KeyCtrlA}, state.KeyDown{Key: state.KeyA, Ctrl: true}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, state.KeyDown{Key: state.KeyC, Ctrl: true}},
		{"ctrl+x", tea.KeyMsg{Type: tea.KeyCtrlX}, state.KeyDown{Key: state.KeyX, Ctrl: true}},
		{"ctrl+v", tea.KeyMsg{Type: tea.KeyCtrlV}, state.KeyDown{Key: state.KeyV, Ctrl: true}},
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, state.KeyDown{Key: state.KeyZ, Ctrl: true}},
		{"ctrl+u", tea.KeyMsg{Type: tea.KeyCtrlU}, state.KeyDown{Key: state.KeyBackspace, Ctrl: true}},
		{"ctrl+q", tea.KeyMsg{Type: tea.KeyCtrlQ}, state.WindowClose{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := translateKey(tc.msg)
			if !ok {
				t.Fatalf("expected %s to translate", tc.name)
			}
			if got != tc.want {
				t.Fatalf("expected %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestTranslateKeyIgnoresUnmapped(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyTab},
		{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true},
		{Type: tea.KeyRunes},
	} {
		if ev, ok := translateKey(msg); ok {
			t.Fatalf("expected %q to be ignored, got %#v", msg.String(), ev)
		}
	}
}
