package ui

import (
	"strings"
	"unicode"

	"github.com/atomicstack/pageflow/internal/hit"
	"github.com/atomicstack/pageflow/internal/logging/events"
	"github.com/atomicstack/pageflow/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

// chordKeys maps ctrl chords to the runtime's modifier shortcuts. Terminals
// cannot report ctrl+backspace reliably, so ctrl+u stands in for delete-all.
var chordKeys = map[tea.KeyType]state.Key{
	tea.KeyCtrlA: state.KeyA,
	tea.KeyCtrlC: state.KeyC,
	tea.KeyCtrlV: state.KeyV,
	tea.KeyCtrlX: state.KeyX,
	tea.KeyCtrlZ: state.KeyZ,
	tea.KeyCtrlU: state.KeyBackspace,
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	ev, ok := translateKey(msg.(tea.KeyMsg))
	if !ok {
		events.UI.Unmapped(msg.(tea.KeyMsg).String())
		return nil
	}
	m.enqueue(ev)
	return nil
}

// translateKey converts a Bubble Tea key press into a platform event.
func translateKey(msg tea.KeyMsg) (state.Event, bool) {
	if key, ok := chordKeys[msg.Type]; ok {
		return state.KeyDown{Key: key, Ctrl: true}, true
	}
	switch msg.Type {
	case tea.KeyCtrlQ:
		return state.WindowClose{}, true
	case tea.KeyBackspace:
		return state.KeyDown{Key: state.KeyBackspace}, true
	case tea.KeyEnter:
		return state.KeyDown{Key: state.KeyReturn}, true
	case tea.KeyEsc:
		return state.KeyDown{Key: state.KeyEscape}, true
	case tea.KeyLeft:
		if msg.Alt {
			return state.PointerSide{Forward: false}, true
		}
		return state.KeyDown{Key: state.KeyLeft}, true
	case tea.KeyRight:
		if msg.Alt {
			return state.PointerSide{Forward: true}, true
		}
		return state.KeyDown{Key: state.KeyRight}, true
	case tea.KeyShiftLeft:
		return state.KeyDown{Key: state.KeyLeft, Shift: true}, true
	case tea.KeyShiftRight:
		return state.KeyDown{Key: state.KeyRight, Shift: true}, true
	case tea.KeySpace:
		return state.TextInput{Text: " "}, true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil, false
		}
		text := strings.Map(func(r rune) rune {
			if unicode.IsControl(r) {
				return -1
			}
			return r
		}, string(msg.Runes))
		if text == "" {
			return nil, false
		}
		return state.TextInput{Text: text}, true
	}
	return nil, false
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseMsg)
	if mouse.Y >= m.canvasRows() {
		return nil
	}
	x, y := m.toLogical(mouse.X, mouse.Y)
	switch {
	case mouse.Action == tea.MouseActionMotion:
		m.enqueue(state.PointerMove{X: x, Y: y})
	case mouse.Action != tea.MouseActionPress:
		return nil
	case mouse.Button == tea.MouseButtonLeft:
		m.enqueue(state.PointerDown{X: x, Y: y})
	case mouse.Button == tea.MouseButtonBackward:
		m.enqueue(state.PointerSide{Forward: false})
	case mouse.Button == tea.MouseButtonForward:
		m.enqueue(state.PointerSide{Forward: true})
	}
	return nil
}

// toLogical maps the center of a terminal cell onto the logical canvas.
func (m *Model) toLogical(col, row int) (float64, float64) {
	window := hit.Size{W: float64(m.canvasCols()), H: float64(m.canvasRows())}
	return hit.ToLogical(float64(col)+0.5, float64(row)+0.5, window, m.logical)
}
