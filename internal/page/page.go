// Package page describes page snapshots and the catalog of factories that
// produce them. Pages are values: a factory builds a fresh one every time the
// current page or the input ledger changes.
package page

import (
	"fmt"

	"github.com/atomicstack/pageflow/internal/transition"
)

// ID identifies a page or an overlay. Pages and overlays share one space.
type ID string

// ButtonID identifies a button. IDs are unique among the buttons visible on a
// page and its overlays at one time.
type ButtonID string

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex renders the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scale multiplies each channel by f (clamped to [0,1]), keeping alpha.
func (c Color) Scale(f float64) Color {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// Darken subtracts d from each channel, saturating at zero.
func (c Color) Darken(d uint8) Color {
	sub := func(v uint8) uint8 {
		if v < d {
			return 0
		}
		return v - d
	}
	return Color{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
}

// Rect is an axis-aligned rectangle in logical canvas coordinates.
type Rect struct {
	X, Y int32
	W, H int32
}

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x <= float64(r.X+r.W) &&
		y >= float64(r.Y) && y <= float64(r.Y+r.H)
}

// Offset returns the rectangle moved by (dx, dy).
func (r Rect) Offset(dx, dy int32) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Shape is a decorative rectangle. It never receives clicks but blocks them.
type Shape struct {
	Color  Color
	Rect   Rect
	Radius int32
}

// Button is an interactive rectangle.
type Button struct {
	ID      ButtonID
	Enabled bool
	Color   Color
	Rect    Rect
	Radius  int32
	// Transition, when set, animates the page change this button requests.
	Transition *transition.Spec
}

// Text is a label drawn at an absolute position.
type Text struct {
	Size    float64
	X, Y    int32
	Content string
	Color   Color
}

// Image references an external picture; the core only uses its bounds.
type Image struct {
	X, Y   int32
	W, H   int32
	Source string
}

// Rect returns the image bounds.
func (i Image) Rect() Rect {
	return Rect{X: i.X, Y: i.Y, W: i.W, H: i.H}
}

// InputSlot names a (page, button) pair backed by a ledger entry.
type InputSlot struct {
	Page   ID
	Button ButtonID
}

// Page is a complete description of one screen.
type Page struct {
	ID         ID
	Background *Color
	Rects      []Shape
	Buttons    []Button
	Texts      []Text
	Images     []Image
	// Inputs lists the ledger slots this page needs.
	Inputs []InputSlot
	// Overlays lists overlay pages composited above this one, bottom first.
	Overlays []ID
}

// Button looks up a button by id.
func (p *Page) Button(id ButtonID) (Button, bool) {
	if p == nil {
		return Button{}, false
	}
	for _, b := range p.Buttons {
		if b.ID == id {
			return b, true
		}
	}
	return Button{}, false
}

// HasInput reports whether the page declares an input slot for button.
func (p *Page) HasInput(button ButtonID) bool {
	if p == nil {
		return false
	}
	for _, slot := range p.Inputs {
		if slot.Page == p.ID && slot.Button == button {
			return true
		}
	}
	return false
}

// InputAt returns inputs[i] or "" when the ledger has fewer strings.
func InputAt(inputs []string, i int) string {
	if i < 0 || i >= len(inputs) {
		return ""
	}
	return inputs[i]
}
