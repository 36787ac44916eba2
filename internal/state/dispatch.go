package state

import (
	"time"

	"github.com/atomicstack/pageflow/internal/editor"
	"github.com/atomicstack/pageflow/internal/hit"
	"github.com/atomicstack/pageflow/internal/ledger"
	"github.com/atomicstack/pageflow/internal/logging/events"
	"github.com/atomicstack/pageflow/internal/page"
	"github.com/atomicstack/pageflow/internal/transition"
)

// Frame is everything a renderer needs for one tick.
type Frame struct {
	Quit bool
	Page page.Page
	// Overlays holds the page's overlays followed by the forced ones, bottom
	// first.
	Overlays []page.Page
	// Outgoing is the page being animated away, when a transition runs.
	Outgoing   *page.Page
	Transition transition.View
	Caret      editor.View
	Hovered    page.ButtonID
	Capturing  bool
	History    []page.ID
	HistoryAt  int
	Ledger     []ledger.Entry
	UndoDepth  int
}

// Tick consumes one frame's worth of events. A window close ends the tick
// before anything else runs. Otherwise the transition advances by dt, pointer
// events are handled, then keyboard and text events in arrival order, and the
// page snapshot is rebuilt.
func (s *State) Tick(evs []Event, clip editor.Clipboard, dt time.Duration) Frame {
	for _, ev := range evs {
		switch ev.(type) {
		case WindowClose, *WindowClose:
			if !s.quit {
				events.App.Quit("window-close")
			}
			s.quit = true
		}
	}
	if s.quit {
		return Frame{Quit: true}
	}

	s.clip = clip
	defer func() { s.clip = nil }()

	s.advance(dt)
	for _, ev := range evs {
		if isPointer(ev) {
			s.dispatch(ev)
		}
	}
	for _, ev := range evs {
		if !isPointer(ev) {
			s.dispatch(ev)
		}
	}
	s.rebuild()
	return s.Frame()
}

// Frame returns the current frame without consuming events.
func (s *State) Frame() Frame {
	if s.quit {
		return Frame{Quit: true}
	}
	overlays := make([]page.Page, 0, len(s.overlays)+len(s.pinned))
	overlays = append(overlays, s.overlays...)
	overlays = append(overlays, s.pinned...)
	f := Frame{
		Page:       s.current,
		Overlays:   overlays,
		Transition: s.nav.View(),
		Caret:      s.editor.View(),
		Hovered:    s.hovered,
		Capturing:  s.editor.Active(),
		History:    s.nav.History().Entries(),
		HistoryAt:  s.nav.History().Cursor(),
		Ledger:     s.ledger.Entries(),
		UndoDepth:  s.editor.UndoDepth(),
	}
	if s.outgoing != nil && s.nav.Animating() {
		out := *s.outgoing
		f.Outgoing = &out
	}
	return f
}

func (s *State) advance(dt time.Duration) {
	if !s.nav.Animating() {
		return
	}
	swapped, done := s.nav.Advance(dt)
	if swapped {
		s.rebuild()
	}
	if done {
		s.outgoing = nil
	}
}

func (s *State) dispatch(ev Event) {
	handler := s.handlerFor(ev)
	if handler == nil {
		return
	}
	handler(ev)
}

func isPointer(ev Event) bool {
	switch ev.(type) {
	case PointerDown, *PointerDown, PointerMove, *PointerMove, PointerSide, *PointerSide:
		return true
	}
	return false
}

func (s *State) resolve(x, y float64) (page.ButtonID, bool) {
	return hit.Resolve(x, y, &s.current, s.overlays, s.pinned)
}

func (s *State) handlePointerDown(ev Event) {
	var down PointerDown
	switch e := ev.(type) {
	case PointerDown:
		down = e
	case *PointerDown:
		down = *e
	}
	s.pointerX, s.pointerY, s.pointerSeen = down.X, down.Y, true

	id, ok := s.resolve(down.X, down.Y)
	if pg, active, capturing := s.editor.Target(); capturing {
		if ok && id == active && pg == s.nav.Current() {
			s.editor.Home()
			return
		}
		s.editor.End("click")
	}
	if !ok {
		events.Action.Miss(string(s.nav.Current()), down.X, down.Y)
		return
	}
	events.Action.Click(string(s.nav.Current()), string(id))
	if s.action != nil {
		s.action(s, id)
	}
}

func (s *State) handlePointerMove(ev Event) {
	switch e := ev.(type) {
	case PointerMove:
		s.pointerX, s.pointerY = e.X, e.Y
	case *PointerMove:
		s.pointerX, s.pointerY = e.X, e.Y
	}
	s.pointerSeen = true
}

func (s *State) handlePointerSide(ev Event) {
	var side PointerSide
	switch e := ev.(type) {
	case PointerSide:
		side = e
	case *PointerSide:
		side = *e
	}
	if !s.rollback {
		events.History.Refused("disabled")
		return
	}
	if s.nav.NavigateHistory(side.Forward, s.editor.Active()) {
		s.rebuild()
	}
}

func (s *State) handleTextInput(ev Event) {
	var text string
	switch e := ev.(type) {
	case TextInput:
		text = e.Text
	case *TextInput:
		text = e.Text
	}
	if text == "" {
		return
	}
	s.editor.Insert(text)
}

func (s *State) handleKeyDown(ev Event) {
	var key KeyDown
	switch e := ev.(type) {
	case KeyDown:
		key = e
	case *KeyDown:
		key = *e
	}
	if key.Ctrl && s.handleChord(key.Key) {
		return
	}
	switch key.Key {
	case KeyBackspace:
		s.editor.Backspace()
	case KeyReturn:
		s.editor.End("submit")
	case KeyEscape:
		s.editor.End("escape")
	case KeyLeft:
		s.editor.MoveCursor(editor.Left, key.Shift)
	case KeyRight:
		s.editor.MoveCursor(editor.Right, key.Shift)
	}
}

// handleChord runs ctrl shortcuts. It reports whether key was a chord.
func (s *State) handleChord(key Key) bool {
	switch key {
	case KeyA:
		s.editor.SelectAll()
	case KeyC:
		s.editor.Copy(s.clip, false)
	case KeyX:
		s.editor.Copy(s.clip, true)
	case KeyV:
		s.editor.Paste(s.clip)
	case KeyZ:
		s.editor.Undo()
	case KeyBackspace:
		s.editor.DeleteAll()
	default:
		return false
	}
	return true
}
