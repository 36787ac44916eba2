// Package hit resolves a pointer position to the topmost enabled button.
//
// Layers are tested front to back: forced overlays, then the current page's
// overlays (most recently declared first), then the page itself. Inside a
// layer buttons are tested before rectangles and images. Anything hit that is
// not an enabled button stops the search, so decorations and disabled buttons
// occlude whatever is drawn behind them.
package hit

import "github.com/atomicstack/pageflow/internal/page"

// Size is a width/height pair in pixels.
type Size struct {
	W, H float64
}

// outcome of testing one layer
type outcome int

const (
	miss outcome = iota
	found
	blocked
)

// Resolve returns the button under (x, y) in logical coordinates.
func Resolve(x, y float64, current *page.Page, overlays, forced []page.Page) (page.ButtonID, bool) {
	for i := len(forced) - 1; i >= 0; i-- {
		if id, res := testLayer(&forced[i], x, y); res != miss {
			return id, res == found
		}
	}
	for i := len(overlays) - 1; i >= 0; i-- {
		if id, res := testLayer(&overlays[i], x, y); res != miss {
			return id, res == found
		}
	}
	if current != nil {
		if id, res := testLayer(current, x, y); res != miss {
			return id, res == found
		}
	}
	return "", false
}

func testLayer(p *page.Page, x, y float64) (page.ButtonID, outcome) {
	for i := len(p.Buttons) - 1; i >= 0; i-- {
		b := p.Buttons[i]
		if !b.Rect.Contains(x, y) {
			continue
		}
		if !b.Enabled {
			return "", blocked
		}
		return b.ID, found
	}
	for i := len(p.Rects) - 1; i >= 0; i-- {
		if p.Rects[i].Rect.Contains(x, y) {
			return "", blocked
		}
	}
	for i := len(p.Images) - 1; i >= 0; i-- {
		if p.Images[i].Rect().Contains(x, y) {
			return "", blocked
		}
	}
	return "", miss
}

// ToLogical scales a physical pointer position into the logical canvas.
func ToLogical(px, py float64, window, logical Size) (float64, float64) {
	if window.W <= 0 || window.H <= 0 {
		return 0, 0
	}
	return px * (logical.W / window.W), py * (logical.H / window.H)
}
