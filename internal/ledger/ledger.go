// Package ledger holds the in-progress text of every input field, keyed by
// (page, button). Entries are created lazily and never removed.
package ledger

import "github.com/atomicstack/pageflow/internal/page"

// Key addresses a ledger entry.
type Key struct {
	Page   page.ID
	Button page.ButtonID
}

// Entry is one input field's text.
type Entry struct {
	Page   page.ID
	Button page.ButtonID
	Text   string
}

// Key returns the entry's address.
func (e Entry) Key() Key {
	return Key{Page: e.Page, Button: e.Button}
}

// Snapshot is an immutable copy of the ledger.
type Snapshot struct {
	entries []Entry
}

// Entries returns a copy of the snapshot's entries.
func (s Snapshot) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Len returns the number of entries captured.
func (s Snapshot) Len() int {
	return len(s.entries)
}

// Ledger is the table of input strings. The zero value is empty and usable.
type Ledger struct {
	entries []Entry
	flat    []string
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// EnsureEntries appends an empty entry for every slot not yet present and
// returns how many were added. Existing entries are never reset.
func (l *Ledger) EnsureEntries(slots []page.InputSlot) int {
	added := 0
	for _, slot := range slots {
		key := Key{Page: slot.Page, Button: slot.Button}
		if l.index(key) >= 0 {
			continue
		}
		l.entries = append(l.entries, Entry{Page: slot.Page, Button: slot.Button})
		added++
	}
	if added > 0 {
		l.refresh()
	}
	return added
}

// Has reports whether key has an entry.
func (l *Ledger) Has(key Key) bool {
	return l.index(key) >= 0
}

// Text returns the string stored for key.
func (l *Ledger) Text(key Key) (string, bool) {
	idx := l.index(key)
	if idx < 0 {
		return "", false
	}
	return l.entries[idx].Text, true
}

// SetText replaces the string for an existing key. Unknown keys are ignored.
func (l *Ledger) SetText(key Key, text string) bool {
	idx := l.index(key)
	if idx < 0 {
		return false
	}
	if l.entries[idx].Text == text {
		return true
	}
	l.entries[idx].Text = text
	l.flat[idx] = text
	return true
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in ledger order.
func (l *Ledger) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Snapshot captures the whole ledger.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{entries: l.Entries()}
}

// Restore replaces the ledger wholesale with s.
func (l *Ledger) Restore(s Snapshot) {
	l.entries = s.Entries()
	l.refresh()
}

// Flatten returns the entry strings in ledger order. Page factories read these
// positionally, so the order only ever grows at the tail.
func (l *Ledger) Flatten() []string {
	return append([]string(nil), l.flat...)
}

func (l *Ledger) index(key Key) int {
	for i, e := range l.entries {
		if e.Page == key.Page && e.Button == key.Button {
			return i
		}
	}
	return -1
}

func (l *Ledger) refresh() {
	l.flat = make([]string, len(l.entries))
	for i, e := range l.entries {
		l.flat[i] = e.Text
	}
}
