package ui

import (
	"math"
	"strings"

	"github.com/atomicstack/pageflow/internal/page"
	"github.com/atomicstack/pageflow/internal/state"
	"github.com/atomicstack/pageflow/internal/transition"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// hoverDarken is subtracted from each channel of the hovered button.
const hoverDarken = 40

var (
	canvasBackground = page.RGB(0, 0, 0)
	canvasForeground = page.RGB(220, 220, 220)
	imageFill        = page.RGB(48, 48, 64)
	imageInk         = page.RGB(120, 120, 140)
)

type cell struct {
	ch       rune
	fg, bg   page.Color
	selected bool
	caret    bool
}

// canvas is a grid of terminal cells onto which logical geometry is
// rasterised.
type canvas struct {
	cols, rows int
	logicalW   float64
	logicalH   float64
	scaleX     float64
	scaleY     float64
	cells      [][]cell
}

func newCanvas(cols, rows int, logicalW, logicalH float64) *canvas {
	c := &canvas{
		cols:     cols,
		rows:     rows,
		logicalW: logicalW,
		logicalH: logicalH,
		scaleX:   float64(cols) / logicalW,
		scaleY:   float64(rows) / logicalH,
		cells:    make([][]cell, rows),
	}
	for r := range c.cells {
		row := make([]cell, cols)
		for i := range row {
			row[i] = cell{ch: ' ', fg: canvasForeground, bg: canvasBackground}
		}
		c.cells[r] = row
	}
	return c
}

// span converts a logical rectangle, shifted by (dx, dy) logical pixels, to
// a half-open cell range. Anything that covers part of a cell claims it.
func (c *canvas) span(r page.Rect, dx, dy int) (c0, r0, c1, r1 int) {
	x0 := float64(int(r.X)+dx) * c.scaleX
	y0 := float64(int(r.Y)+dy) * c.scaleY
	x1 := float64(int(r.X+r.W)+dx) * c.scaleX
	y1 := float64(int(r.Y+r.H)+dy) * c.scaleY
	c0, r0 = clampInt(int(math.Floor(x0)), 0, c.cols), clampInt(int(math.Floor(y0)), 0, c.rows)
	c1, r1 = clampInt(int(math.Ceil(x1)), 0, c.cols), clampInt(int(math.Ceil(y1)), 0, c.rows)
	return c0, r0, c1, r1
}

func (c *canvas) point(x, y int32, dx, dy int) (int, int) {
	return int(math.Floor(float64(int(x)+dx) * c.scaleX)), int(math.Floor(float64(int(y)+dy) * c.scaleY))
}

func (c *canvas) fill(r page.Rect, dx, dy int, color page.Color, ch rune, ink page.Color) {
	c0, r0, c1, r1 := c.span(r, dx, dy)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			c.cells[row][col] = cell{ch: ch, fg: ink, bg: color}
		}
	}
}

// write places text starting at a cell, clipped to the canvas edge. It
// returns the column of each written rune.
func (c *canvas) write(col, row int, text string, fg page.Color) []int {
	if row < 0 || row >= c.rows || col >= c.cols {
		return nil
	}
	text = truncate.String(text, uint(c.cols-max(col, 0)))
	cols := make([]int, 0, len(text))
	for i, r := range []rune(text) {
		at := col + i
		if at < 0 {
			cols = append(cols, -1)
			continue
		}
		if at >= c.cols {
			break
		}
		c.cells[row][at].ch = r
		c.cells[row][at].fg = fg
		cols = append(cols, at)
	}
	return cols
}

// layer draws one page. hovered buttons are darkened; caret places the
// editing state on the text anchored inside the active button.
func (c *canvas) layer(p *page.Page, dx, dy int, hovered page.ButtonID, caret *state.Frame) {
	if p.Background != nil {
		full := page.Rect{W: int32(c.logicalW), H: int32(c.logicalH)}
		c.fill(full, dx, dy, *p.Background, ' ', canvasForeground)
	}
	for _, s := range p.Rects {
		c.fill(s.Rect, dx, dy, s.Color, ' ', canvasForeground)
	}
	for _, b := range p.Buttons {
		color := b.Color
		if !b.Enabled {
			color = color.Scale(0.5)
		} else if b.ID == hovered {
			color = color.Darken(hoverDarken)
		}
		c.fill(b.Rect, dx, dy, color, ' ', canvasForeground)
	}
	for _, img := range p.Images {
		c.fill(img.Rect(), dx, dy, imageFill, '░', imageInk)
		c0, r0, c1, _ := c.span(img.Rect(), dx, dy)
		if c1 > c0 && r0 < c.rows {
			c.write(c0, r0, truncate.StringWithTail(img.Source, uint(c1-c0), "…"), imageInk)
		}
	}
	var active *page.Button
	if caret != nil && caret.Caret.Active && caret.Caret.Page == p.ID {
		if b, ok := p.Button(caret.Caret.Button); ok {
			active = &b
		}
	}
	caretPlaced := false
	for _, t := range p.Texts {
		col, row := c.point(t.X, t.Y, dx, dy)
		cols := c.write(col, row, t.Content, t.Color)
		if active == nil || caretPlaced || !active.Rect.Contains(float64(t.X), float64(t.Y)) {
			continue
		}
		caretPlaced = c.markCaret(row, col, cols, caret)
	}
	if active != nil && !caretPlaced {
		c0, r0, c1, r1 := c.span(active.Rect, dx, dy)
		if c1 > c0 && r1 > r0 {
			c.markCaret((r0+r1)/2, c0+1, nil, caret)
		}
	}
}

func (c *canvas) markCaret(row, col int, cols []int, f *state.Frame) bool {
	if row < 0 || row >= c.rows {
		return false
	}
	v := f.Caret
	if v.Selected {
		for i := v.Start; i < v.End && i < len(cols); i++ {
			if cols[i] >= 0 {
				c.cells[row][cols[i]].selected = true
			}
		}
	}
	at := col + v.Cursor
	if v.Cursor < len(cols) {
		at = cols[v.Cursor]
	}
	if at < 0 || at >= c.cols {
		return false
	}
	c.cells[row][at].caret = true
	return true
}

// dim scales every color on the canvas.
func (c *canvas) dim(f float64) {
	if f >= 1 {
		return
	}
	for r := range c.cells {
		for i := range c.cells[r] {
			c.cells[r][i].fg = c.cells[r][i].fg.Scale(f)
			c.cells[r][i].bg = c.cells[r][i].bg.Scale(f)
		}
	}
}

// drawFrame rasterises a runtime frame: the page, the outgoing page while a
// slide runs, then the overlays on top.
func (c *canvas) drawFrame(f *state.Frame) {
	c.layer(&f.Page, 0, 0, f.Hovered, f)
	if f.Outgoing != nil && f.Transition.Kind == transition.KindSlide {
		c.layer(f.Outgoing, f.Transition.OffsetX, f.Transition.OffsetY, "", nil)
	}
	for i := range f.Overlays {
		c.layer(&f.Overlays[i], 0, 0, f.Hovered, f)
	}
	if f.Transition.Active && f.Transition.Kind == transition.KindFade {
		c.dim(f.Transition.Opacity)
	}
}

// lines renders the canvas; caretView renders the caret cell.
func (c *canvas) lines(caretView func(ch rune) string) []string {
	out := make([]string, c.rows)
	for r, row := range c.cells {
		var b strings.Builder
		start := 0
		flush := func(end int) {
			if end <= start {
				return
			}
			run := make([]rune, 0, end-start)
			for _, cl := range row[start:end] {
				run = append(run, cl.ch)
			}
			b.WriteString(cellStyle(row[start]).Render(string(run)))
		}
		for i := 0; i < len(row); i++ {
			if row[i].caret {
				flush(i)
				b.WriteString(caretView(row[i].ch))
				start = i + 1
				continue
			}
			if i > start && !sameStyle(row[i], row[start]) {
				flush(i)
				start = i
			}
		}
		flush(len(row))
		out[r] = b.String()
	}
	return out
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.selected == b.selected && !a.caret && !b.caret
}

func cellStyle(cl cell) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(cl.fg.Hex())).
		Background(lipgloss.Color(cl.bg.Hex()))
	if cl.selected && styles.Selection != nil {
		style = styles.Selection.Copy().Inherit(style)
	}
	return style
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
