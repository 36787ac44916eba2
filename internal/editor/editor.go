// Package editor edits the ledger entry of the input field that is currently
// capturing keyboard input. Positions are rune indexes and are clamped to the
// live string on every call, so a cursor left over from another field never
// indexes out of range.
package editor

import (
	"github.com/atomicstack/pageflow/internal/ledger"
	"github.com/atomicstack/pageflow/internal/logging/events"
	"github.com/atomicstack/pageflow/internal/page"
)

// DefaultUndoDepth bounds the undo stack when no depth is configured.
const DefaultUndoDepth = 100

// Clipboard is the system clipboard capability. It is handed to each call
// that needs it and never stored.
type Clipboard interface {
	Text() (string, error)
	SetText(string) error
}

// Direction is a caret movement.
type Direction int

const (
	Left Direction = iota
	Right
)

type capture struct {
	page   page.ID
	button page.ButtonID
	active bool
}

type selection struct {
	anchor, live int
	set          bool
}

// normalized returns the selection clamped to n with start <= end.
func (s selection) normalized(n int) (int, int) {
	start, end := s.anchor, s.live
	if start > end {
		start, end = end, start
	}
	return clamp(start, n), clamp(end, n)
}

// Editor is the text-editing engine. It is not safe for concurrent use.
type Editor struct {
	ledger  *ledger.Ledger
	capture capture
	cursor  int
	sel     selection
	undo    []ledger.Snapshot
	depth   int
}

// New returns an editor over l. depth bounds the undo stack; zero or less
// selects DefaultUndoDepth.
func New(l *ledger.Ledger, depth int) *Editor {
	if depth <= 0 {
		depth = DefaultUndoDepth
	}
	return &Editor{ledger: l, depth: depth}
}

// Ledger returns the ledger being edited.
func (e *Editor) Ledger() *ledger.Ledger {
	return e.ledger
}

// Begin starts capturing input for button on pg. The cursor goes to the end
// of the field and any selection is dropped.
func (e *Editor) Begin(pg page.ID, button page.ButtonID) {
	e.capture = capture{page: pg, button: button, active: true}
	e.ledger.EnsureEntries([]page.InputSlot{{Page: pg, Button: button}})
	e.cursor = len(e.runes())
	e.sel = selection{}
	events.Input.Begin(string(pg), string(button), e.cursor)
}

// End stops capturing. It reports whether a capture was active.
func (e *Editor) End(reason string) bool {
	if !e.capture.active {
		return false
	}
	events.Input.End(string(e.capture.page), string(e.capture.button), reason)
	e.capture = capture{}
	e.sel = selection{}
	return true
}

// Active reports whether input is being captured.
func (e *Editor) Active() bool {
	return e.capture.active
}

// Target returns the captured (page, button), if any.
func (e *Editor) Target() (page.ID, page.ButtonID, bool) {
	return e.capture.page, e.capture.button, e.capture.active
}

// Home moves the cursor to the end of the captured field and clears the
// selection.
func (e *Editor) Home() {
	if !e.capture.active {
		return
	}
	e.cursor = len(e.runes())
	e.sel = selection{}
	e.traceCursor()
}

// Insert replaces the selection with text, or inserts text at the cursor when
// nothing is selected.
func (e *Editor) Insert(text string) bool {
	if !e.capture.active {
		return false
	}
	e.Checkpoint()
	e.insert(text)
	e.traceEdit("insert")
	return true
}

// Backspace deletes the selection, or the rune before the cursor.
func (e *Editor) Backspace() bool {
	if !e.capture.active {
		return false
	}
	e.Checkpoint()
	r := e.runes()
	e.cursor = clamp(e.cursor, len(r))
	if e.sel.set {
		start, end := e.sel.normalized(len(r))
		e.sel = selection{}
		if start != end {
			r = append(r[:start:start], r[end:]...)
			e.cursor = start
			e.store(r)
		}
	} else if e.cursor > 0 {
		r = append(r[:e.cursor-1:e.cursor-1], r[e.cursor:]...)
		e.cursor--
		e.store(r)
	}
	e.traceEdit("backspace")
	return true
}

// DeleteAll empties the captured field.
func (e *Editor) DeleteAll() bool {
	if !e.capture.active {
		return false
	}
	e.Checkpoint()
	e.store(nil)
	e.cursor = 0
	e.sel = selection{}
	e.traceEdit("delete_all")
	return true
}

// SelectAll selects the whole field and moves the cursor to its end.
func (e *Editor) SelectAll() {
	if !e.capture.active {
		return
	}
	n := len(e.runes())
	e.sel = selection{anchor: 0, live: n, set: true}
	e.cursor = n
	e.traceCursor()
}

// MoveCursor moves the caret one rune. With extend the selection is started at
// the cursor if needed and its live end follows the caret; without it the
// selection is dropped.
func (e *Editor) MoveCursor(dir Direction, extend bool) {
	if !e.capture.active {
		return
	}
	n := len(e.runes())
	e.cursor = clamp(e.cursor, n)
	next := e.cursor
	switch dir {
	case Left:
		next = clamp(e.cursor-1, n)
	case Right:
		next = clamp(e.cursor+1, n)
	}
	if extend {
		if !e.sel.set {
			e.sel = selection{anchor: e.cursor, live: e.cursor, set: true}
		}
		e.sel.live = next
	} else {
		e.sel = selection{}
	}
	e.cursor = next
	e.traceCursor()
}

// Copy places the selected text on clip. With cut the selection is removed,
// but only once the clipboard accepted the text.
func (e *Editor) Copy(clip Clipboard, cut bool) bool {
	op := "copy"
	if cut {
		op = "cut"
	}
	if !e.capture.active || !e.sel.set || clip == nil {
		return false
	}
	r := e.runes()
	start, end := e.sel.normalized(len(r))
	if start >= end {
		return false
	}
	if err := clip.SetText(string(r[start:end])); err != nil {
		events.Input.Clipboard(op, err)
		return false
	}
	events.Input.Clipboard(op, nil)
	if !cut {
		return true
	}
	e.Checkpoint()
	r = append(r[:start:start], r[end:]...)
	e.store(r)
	e.cursor = start
	e.sel = selection{}
	e.traceEdit("cut")
	return true
}

// Paste inserts the clipboard text as Insert would. A clipboard error leaves
// the ledger untouched.
func (e *Editor) Paste(clip Clipboard) bool {
	if !e.capture.active || clip == nil {
		return false
	}
	text, err := clip.Text()
	events.Input.Clipboard("paste", err)
	if err != nil {
		return false
	}
	e.Checkpoint()
	e.insert(text)
	e.traceEdit("paste")
	return true
}

// Checkpoint pushes a snapshot of the whole ledger onto the undo stack,
// dropping the oldest snapshot once the stack is full.
func (e *Editor) Checkpoint() {
	e.undo = append(e.undo, e.ledger.Snapshot())
	if over := len(e.undo) - e.depth; over > 0 {
		e.undo = append(e.undo[:0:0], e.undo[over:]...)
	}
}

// Undo restores the most recent snapshot. Undo spans every field, not only the
// captured one.
func (e *Editor) Undo() bool {
	if len(e.undo) == 0 {
		return false
	}
	last := len(e.undo) - 1
	e.ledger.Restore(e.undo[last])
	e.undo = e.undo[:last]
	if e.capture.active {
		// the snapshot may predate the captured field's entry
		e.ledger.EnsureEntries([]page.InputSlot{{Page: e.capture.page, Button: e.capture.button}})
	}
	e.cursor = clamp(e.cursor, len(e.runes()))
	e.sel = selection{}
	events.Input.Undo(len(e.undo))
	return true
}

// UndoDepth returns how many snapshots can be undone.
func (e *Editor) UndoDepth() int {
	return len(e.undo)
}

// View is the caret and selection state handed to the renderer.
type View struct {
	Active     bool
	Page       page.ID
	Button     page.ButtonID
	Text       string
	Cursor     int
	Selected   bool
	Start, End int
}

// View returns the clamped caret and normalized selection.
func (e *Editor) View() View {
	if !e.capture.active {
		return View{}
	}
	r := e.runes()
	v := View{
		Active: true,
		Page:   e.capture.page,
		Button: e.capture.button,
		Text:   string(r),
		Cursor: clamp(e.cursor, len(r)),
	}
	if e.sel.set {
		v.Start, v.End = e.sel.normalized(len(r))
		v.Selected = v.Start != v.End
	}
	return v
}

func (e *Editor) insert(text string) {
	r := e.runes()
	ins := []rune(text)
	e.cursor = clamp(e.cursor, len(r))
	start, end := e.cursor, e.cursor
	if e.sel.set {
		if s, t := e.sel.normalized(len(r)); s != t {
			start, end = s, t
		}
		e.sel = selection{}
	}
	out := make([]rune, 0, len(r)-(end-start)+len(ins))
	out = append(out, r[:start]...)
	out = append(out, ins...)
	out = append(out, r[end:]...)
	e.store(out)
	e.cursor = start + len(ins)
}

func (e *Editor) key() ledger.Key {
	return ledger.Key{Page: e.capture.page, Button: e.capture.button}
}

func (e *Editor) runes() []rune {
	text, _ := e.ledger.Text(e.key())
	return []rune(text)
}

func (e *Editor) store(r []rune) {
	e.ledger.SetText(e.key(), string(r))
}

func (e *Editor) traceEdit(op string) {
	text, _ := e.ledger.Text(e.key())
	events.Input.Edit(op, string(e.capture.page), string(e.capture.button), text, e.cursor)
}

func (e *Editor) traceCursor() {
	start, end := e.sel.normalized(len(e.runes()))
	events.Input.Cursor(e.cursor, start, end, e.sel.set)
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}
