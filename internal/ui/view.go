package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/pageflow/internal/format/table"
	"github.com/atomicstack/pageflow/internal/page"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// footerMaxEntries caps the ledger rows shown in the footer.
	footerMaxEntries = 6
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	c := newCanvas(m.canvasCols(), m.canvasRows(), m.logical.W, m.logical.H)
	c.drawFrame(&m.frame)
	lines := c.lines(m.caretCell)
	if m.showFooter {
		lines = append(lines, m.footerLines()...)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) caretCell(ch rune) string {
	m.caret.SetChar(string(ch))
	return m.caret.View()
}

func (m *Model) footerHeight() int {
	entries := len(m.frame.Ledger)
	if entries > footerMaxEntries {
		entries = footerMaxEntries
	}
	// status line plus table header
	return 2 + entries
}

func (m *Model) footerLines() []string {
	width := m.canvasCols()
	lines := make([]string, 0, m.footerHeight())
	lines = append(lines, render(styles.Info, truncate.StringWithTail(m.statusLine(), uint(width), "…")))

	rows := [][]string{{"page", "field", "text"}}
	activeRow := -1
	for i, e := range m.frame.Ledger {
		if i >= footerMaxEntries {
			break
		}
		if m.frame.Caret.Active && e.Page == m.frame.Caret.Page && e.Button == m.frame.Caret.Button {
			activeRow = len(rows)
		}
		rows = append(rows, []string{string(e.Page), string(e.Button), fmt.Sprintf("%q", e.Text)})
	}
	for i, row := range table.Format(rows, nil, width) {
		style := styles.Footer
		switch i {
		case 0:
			style = styles.FooterHeader
		case activeRow:
			style = styles.FooterActive
		}
		lines = append(lines, render(style, row))
	}
	return lines
}

func (m *Model) statusLine() string {
	f := m.frame
	parts := []string{"page " + string(f.Page.ID)}
	if len(f.History) > 0 {
		parts = append(parts, "history "+historyTrail(f.History, f.HistoryAt))
	}
	parts = append(parts, fmt.Sprintf("undo %d", f.UndoDepth))
	if f.Transition.Active {
		parts = append(parts, fmt.Sprintf("%s %s %.0f%%", f.Transition.Kind, f.Transition.Stage, f.Transition.Progress*100))
	}
	if f.Capturing {
		parts = append(parts, "editing "+string(f.Caret.Button))
	}
	return strings.Join(parts, " · ")
}

func historyTrail(ids []page.ID, at int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		if i == at {
			parts[i] = "[" + string(id) + "]"
			continue
		}
		parts[i] = string(id)
	}
	return strings.Join(parts, " › ")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
