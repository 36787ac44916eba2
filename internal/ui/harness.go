package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests. The
// frame pump is replaced by explicit Tick calls on a synthetic clock.
type Harness struct {
	model *Model
	now   time.Time
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	if model != nil {
		model.manual = true
		model.caret.SetMode(cursor.CursorStatic)
	}
	return &Harness{model: model, now: time.Unix(0, 0)}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Tick advances the synthetic clock by dt and delivers a frame tick.
func (h *Harness) Tick(dt time.Duration) {
	h.now = h.now.Add(dt)
	h.Send(tickMsg{at: h.now})
}

// Settle ticks in steps of dt until no transition is running.
func (h *Harness) Settle(dt time.Duration) {
	h.Tick(0)
	for i := 0; i < 1000 && h.model.frame.Transition.Active; i++ {
		h.Tick(dt)
	}
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				h.processCmd(c)
			}
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
