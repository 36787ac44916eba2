package editor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/pageflow/internal/ledger"
	"github.com/atomicstack/pageflow/internal/page"
)

type fakeClipboard struct {
	text   string
	getErr error
	setErr error
}

func (c *fakeClipboard) Text() (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.text, nil
}

func (c *fakeClipboard) SetText(s string) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.text = s
	return nil
}

func newEditor(t *testing.T) (*Editor, *ledger.Ledger) {
	t.Helper()
	l := ledger.New()
	l.EnsureEntries([]page.InputSlot{{Page: "page1", Button: "a"}, {Page: "page1", Button: "b"}})
	e := New(l, 0)
	e.Begin("page1", "a")
	return e, l
}

func text(t *testing.T, l *ledger.Ledger, button page.ButtonID) string {
	t.Helper()
	s, ok := l.Text(ledger.Key{Page: "page1", Button: button})
	if !ok {
		t.Fatalf("missing ledger entry for %s", button)
	}
	return s
}

func TestInsertBackspaceSelectionScenario(t *testing.T) {
	l := ledger.New()
	l.EnsureEntries([]page.InputSlot{{Page: "page1", Button: "a"}})
	e := New(l, 0)
	e.Begin("page1", "a")

	e.Insert("hi")
	if got := text(t, l, "a"); got != "hi" {
		t.Fatalf("expected hi, got %q", got)
	}
	if v := e.View(); v.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", v.Cursor)
	}

	e.MoveCursor(Left, true)
	v := e.View()
	if !v.Selected || v.Start != 1 || v.End != 2 {
		t.Fatalf("expected selection (1,2), got %+v", v)
	}

	e.Backspace()
	v = e.View()
	if got := text(t, l, "a"); got != "h" {
		t.Fatalf("expected h, got %q", got)
	}
	if v.Cursor != 1 || v.Selected {
		t.Fatalf("expected cursor 1 without selection, got %+v", v)
	}
}

func TestSelectionNormalizedEitherDirection(t *testing.T) {
	for _, dir := range []Direction{Left, Right} {
		e, l := newEditor(t)
		e.Insert("abcdef")
		if dir == Right {
			e.MoveCursor(Left, false)
			e.MoveCursor(Left, false)
			e.MoveCursor(Left, false)
			e.MoveCursor(Right, true)
			e.MoveCursor(Right, true)
		} else {
			e.MoveCursor(Left, false)
			e.MoveCursor(Left, true)
			e.MoveCursor(Left, true)
		}
		v := e.View()
		if v.Start != 3 || v.End != 5 {
			t.Fatalf("dir %v: expected selection (3,5), got (%d,%d)", dir, v.Start, v.End)
		}
		e.Insert("X")
		if got := text(t, l, "a"); got != "abcXf" {
			t.Fatalf("dir %v: expected abcXf, got %q", dir, got)
		}
		if c := e.View().Cursor; c != 4 {
			t.Fatalf("dir %v: expected cursor 4, got %d", dir, c)
		}
	}
}

func TestShrinkSelection(t *testing.T) {
	e, _ := newEditor(t)
	e.Insert("abc")
	e.MoveCursor(Left, true)
	e.MoveCursor(Left, true)
	e.MoveCursor(Right, true)
	v := e.View()
	if v.Start != 2 || v.End != 3 || v.Cursor != 2 {
		t.Fatalf("expected selection (2,3) cursor 2, got %+v", v)
	}
	e.MoveCursor(Right, false)
	if v := e.View(); v.Selected || v.Cursor != 3 {
		t.Fatalf("expected plain move to drop selection, got %+v", v)
	}
}

func TestCursorClampedAtEdges(t *testing.T) {
	e, _ := newEditor(t)
	e.Insert("ab")
	e.MoveCursor(Right, false)
	if c := e.View().Cursor; c != 2 {
		t.Fatalf("expected cursor to stay at 2, got %d", c)
	}
	e.MoveCursor(Left, false)
	e.MoveCursor(Left, false)
	e.MoveCursor(Left, false)
	if c := e.View().Cursor; c != 0 {
		t.Fatalf("expected cursor 0, got %d", c)
	}
	e.Backspace()
	if got := e.View().Text; got != "ab" {
		t.Fatalf("expected backspace at 0 to be a no-op, got %q", got)
	}
}

func TestRuneUnits(t *testing.T) {
	e, l := newEditor(t)
	e.Insert("héllo")
	if c := e.View().Cursor; c != 5 {
		t.Fatalf("expected rune cursor 5, got %d", c)
	}
	e.MoveCursor(Left, false)
	e.MoveCursor(Left, false)
	e.MoveCursor(Left, false)
	e.Backspace()
	if got := text(t, l, "a"); got != "hllo" {
		t.Fatalf("expected hllo, got %q", got)
	}
}

func TestSelectAllAndDeleteAll(t *testing.T) {
	e, l := newEditor(t)
	e.Insert("hello")
	e.SelectAll()
	v := e.View()
	if !v.Selected || v.Start != 0 || v.End != 5 || v.Cursor != 5 {
		t.Fatalf("unexpected select-all view %+v", v)
	}
	e.DeleteAll()
	if got := text(t, l, "a"); got != "" {
		t.Fatalf("expected empty field, got %q", got)
	}
	if v := e.View(); v.Cursor != 0 || v.Selected {
		t.Fatalf("unexpected view after delete-all %+v", v)
	}
}

func TestEmptySelectionBackspaceOnlyClears(t *testing.T) {
	e, l := newEditor(t)
	e.Insert("abc")
	e.MoveCursor(Right, true)
	e.Backspace()
	if got := text(t, l, "a"); got != "abc" {
		t.Fatalf("expected empty selection to delete nothing, got %q", got)
	}
	if e.View().Selected {
		t.Fatalf("expected selection cleared")
	}
}

func TestUndoRoundTrip(t *testing.T) {
	ops := map[string]func(e *Editor, clip Clipboard){
		"insert":     func(e *Editor, _ Clipboard) { e.Insert("xyz") },
		"backspace":  func(e *Editor, _ Clipboard) { e.Backspace() },
		"delete_all": func(e *Editor, _ Clipboard) { e.DeleteAll() },
		"paste":      func(e *Editor, clip Clipboard) { e.Paste(clip) },
		"cut": func(e *Editor, clip Clipboard) {
			e.SelectAll()
			e.Copy(clip, true)
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			e, l := newEditor(t)
			l.SetText(ledger.Key{Page: "page1", Button: "b"}, "other")
			e.Insert("seed")
			before := l.Snapshot()
			op(e, &fakeClipboard{text: "clip"})
			if !e.Undo() {
				t.Fatalf("expected undo to restore a snapshot")
			}
			if diff := cmp.Diff(before.Entries(), l.Entries()); diff != "" {
				t.Fatalf("ledger mismatch after undo (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNonMutatingOpsDoNotCheckpoint(t *testing.T) {
	e, _ := newEditor(t)
	e.Insert("abc")
	depth := e.UndoDepth()
	clip := &fakeClipboard{}
	e.SelectAll()
	e.Copy(clip, false)
	e.MoveCursor(Left, false)
	e.MoveCursor(Left, true)
	if e.UndoDepth() != depth {
		t.Fatalf("expected undo depth %d, got %d", depth, e.UndoDepth())
	}
	if clip.text != "abc" {
		t.Fatalf("expected copy to place abc on clipboard, got %q", clip.text)
	}
}

func TestUndoIsGlobal(t *testing.T) {
	e, l := newEditor(t)
	e.Insert("first")
	e.End("test")
	e.Begin("page1", "b")
	e.Insert("second")
	e.End("test")

	e.Undo()
	e.Undo()
	if got := text(t, l, "a"); got != "" {
		t.Fatalf("expected field a restored to empty, got %q", got)
	}
	if got := text(t, l, "b"); got != "" {
		t.Fatalf("expected field b restored to empty, got %q", got)
	}
	if e.Undo() {
		t.Fatalf("expected empty undo stack")
	}
}

func TestUndoDepthBounded(t *testing.T) {
	l := ledger.New()
	e := New(l, 3)
	e.Begin("page1", "a")
	for i := 0; i < 5; i++ {
		e.Insert("x")
	}
	if e.UndoDepth() != 3 {
		t.Fatalf("expected depth 3, got %d", e.UndoDepth())
	}
	for e.Undo() {
	}
	if got := e.View().Text; got != "xx" {
		t.Fatalf("expected oldest snapshots dropped leaving xx, got %q", got)
	}
}

func TestClipboardFailures(t *testing.T) {
	t.Run("paste", func(t *testing.T) {
		e, l := newEditor(t)
		e.Insert("abc")
		depth := e.UndoDepth()
		if e.Paste(&fakeClipboard{getErr: errors.New("no clipboard")}) {
			t.Fatalf("expected failed paste to report no effect")
		}
		if got := text(t, l, "a"); got != "abc" {
			t.Fatalf("expected ledger untouched, got %q", got)
		}
		if e.UndoDepth() != depth {
			t.Fatalf("expected no snapshot for failed paste")
		}
	})
	t.Run("cut", func(t *testing.T) {
		e, l := newEditor(t)
		e.Insert("abc")
		e.SelectAll()
		if e.Copy(&fakeClipboard{setErr: errors.New("no clipboard")}, true) {
			t.Fatalf("expected failed cut to report no effect")
		}
		if got := text(t, l, "a"); got != "abc" {
			t.Fatalf("expected failed cut not to delete, got %q", got)
		}
	})
	t.Run("nil", func(t *testing.T) {
		e, _ := newEditor(t)
		e.Insert("abc")
		e.SelectAll()
		if e.Copy(nil, false) || e.Paste(nil) {
			t.Fatalf("expected nil clipboard to be a no-op")
		}
	})
}

func TestCutMovesCursorToStart(t *testing.T) {
	e, l := newEditor(t)
	e.Insert("hello")
	e.MoveCursor(Left, false)
	e.MoveCursor(Left, true)
	e.MoveCursor(Left, true)
	clip := &fakeClipboard{}
	if !e.Copy(clip, true) {
		t.Fatalf("expected cut to succeed")
	}
	if clip.text != "ll" || text(t, l, "a") != "heo" {
		t.Fatalf("expected ll cut from hello, clip=%q text=%q", clip.text, text(t, l, "a"))
	}
	if v := e.View(); v.Cursor != 2 || v.Selected {
		t.Fatalf("unexpected view after cut %+v", v)
	}
}

func TestStaleCursorClamped(t *testing.T) {
	e, l := newEditor(t)
	e.Insert("abcdef")
	l.SetText(ledger.Key{Page: "page1", Button: "a"}, "ab")
	if c := e.View().Cursor; c != 2 {
		t.Fatalf("expected view cursor clamped to 2, got %d", c)
	}
	e.Insert("!")
	if got := text(t, l, "a"); got != "ab!" {
		t.Fatalf("expected ab!, got %q", got)
	}
}

func TestInactiveEditorIgnoresInput(t *testing.T) {
	l := ledger.New()
	e := New(l, 0)
	if e.Insert("x") || e.Backspace() || e.DeleteAll() {
		t.Fatalf("expected inactive editor to ignore edits")
	}
	if e.UndoDepth() != 0 || l.Len() != 0 {
		t.Fatalf("expected no snapshots or entries")
	}
	if e.End("none") {
		t.Fatalf("expected End on inactive editor to report false")
	}
}

func TestBeginHomesCursorAndEnsuresEntry(t *testing.T) {
	l := ledger.New()
	l.EnsureEntries([]page.InputSlot{{Page: "page1", Button: "a"}})
	l.SetText(ledger.Key{Page: "page1", Button: "a"}, "abc")
	e := New(l, 0)
	e.Begin("page1", "a")
	if v := e.View(); v.Cursor != 3 || v.Text != "abc" {
		t.Fatalf("unexpected view after begin %+v", v)
	}
	e.Begin("page2", "z")
	if !l.Has(ledger.Key{Page: "page2", Button: "z"}) {
		t.Fatalf("expected Begin to create a missing entry")
	}
}

func TestUndoKeepsCapturedFieldWithoutSlot(t *testing.T) {
	e, l := newEditor(t)
	e.Insert("1")
	e.End("click")

	e.Begin("page1", "free")
	if !e.Undo() {
		t.Fatalf("expected undo to restore the earlier snapshot")
	}
	if got := text(t, l, "a"); got != "" {
		t.Fatalf("expected a restored to empty, got %q", got)
	}
	e.Insert("z")
	if got := text(t, l, "free"); got != "z" {
		t.Fatalf("expected typing to reach the captured field, got %q", got)
	}
}
