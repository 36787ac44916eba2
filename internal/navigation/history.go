package navigation

import "github.com/atomicstack/pageflow/internal/page"

// HistoryCap is the maximum number of pages remembered.
const HistoryCap = 10

// History is a bounded list of visited pages with a cursor for back/forward
// movement. Once a page has been visited the cursor always indexes a valid
// entry.
type History struct {
	entries []page.ID
	cursor  int
	cap     int
}

// NewHistory returns an empty history holding at most limit pages.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = HistoryCap
	}
	return &History{cap: limit}
}

// Push appends id unless it repeats the last entry, moves the cursor to the
// tail and evicts from the front past the cap. It returns the number of
// evicted entries.
func (h *History) Push(id page.ID) int {
	if n := len(h.entries); n == 0 || h.entries[n-1] != id {
		h.entries = append(h.entries, id)
	}
	evicted := 0
	if over := len(h.entries) - h.limit(); over > 0 {
		h.entries = append(h.entries[:0:0], h.entries[over:]...)
		evicted = over
	}
	h.cursor = len(h.entries) - 1
	return evicted
}

// Step moves the cursor by one, clamped to the valid range, and returns the
// page under it.
func (h *History) Step(forward bool) (page.ID, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if forward {
		if h.cursor+1 < len(h.entries) {
			h.cursor++
		}
	} else if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Entries returns a copy of the visited pages, oldest first.
func (h *History) Entries() []page.ID {
	return append([]page.ID(nil), h.entries...)
}

// Cursor returns the current index, or -1 when empty.
func (h *History) Cursor() int {
	if len(h.entries) == 0 {
		return -1
	}
	return h.cursor
}

// Len returns the number of remembered pages.
func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) limit() int {
	if h.cap <= 0 {
		return HistoryCap
	}
	return h.cap
}
