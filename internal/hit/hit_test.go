package hit

import (
	"testing"

	"github.com/atomicstack/pageflow/internal/page"
)

func button(id string, enabled bool, r page.Rect) page.Button {
	return page.Button{ID: page.ButtonID(id), Enabled: enabled, Rect: r}
}

func TestResolve(t *testing.T) {
	full := page.Rect{X: 0, Y: 0, W: 200, H: 200}
	small := page.Rect{X: 50, Y: 50, W: 20, H: 20}

	plain := page.Page{ID: "p", Buttons: []page.Button{button("under", true, small)}}
	covered := page.Page{
		ID:      "p",
		Buttons: []page.Button{button("under", true, small)},
	}
	cover := page.Page{ID: "cover", Rects: []page.Shape{{Rect: full}}}
	disabledOverlay := page.Page{ID: "dis", Buttons: []page.Button{button("off", false, full)}}
	imageOverlay := page.Page{ID: "img", Images: []page.Image{{X: 0, Y: 0, W: 200, H: 200}}}
	navOverlay := page.Page{ID: "nav", Buttons: []page.Button{button("nav", true, full)}}
	navOverlay2 := page.Page{ID: "nav2", Buttons: []page.Button{button("nav2", true, full)}}
	selfCovered := page.Page{
		ID:      "self",
		Rects:   []page.Shape{{Rect: full}},
		Buttons: []page.Button{button("self", true, small)},
	}

	tests := []struct {
		name     string
		x, y     float64
		current  *page.Page
		overlays []page.Page
		forced   []page.Page
		want     page.ButtonID
		ok       bool
	}{
		{name: "page button", x: 55, y: 55, current: &plain, want: "under", ok: true},
		{name: "empty space", x: 150, y: 150, current: &plain},
		{name: "nil page", x: 55, y: 55},
		{name: "rectangle occludes", x: 55, y: 55, current: &covered, overlays: []page.Page{cover}},
		{name: "disabled occludes", x: 55, y: 55, current: &covered, overlays: []page.Page{disabledOverlay}},
		{name: "image occludes", x: 55, y: 55, current: &covered, overlays: []page.Page{imageOverlay}},
		{name: "overlay button wins", x: 55, y: 55, current: &covered, overlays: []page.Page{navOverlay}, want: "nav", ok: true},
		{name: "latest overlay first", x: 55, y: 55, current: &covered, overlays: []page.Page{navOverlay, navOverlay2}, want: "nav2", ok: true},
		{name: "forced before regular", x: 55, y: 55, current: &covered, overlays: []page.Page{navOverlay2}, forced: []page.Page{navOverlay}, want: "nav", ok: true},
		{name: "forced cover blocks all", x: 55, y: 55, current: &covered, overlays: []page.Page{navOverlay}, forced: []page.Page{cover}},
		{name: "buttons tested before rects in a layer", x: 55, y: 55, current: &selfCovered, want: "self", ok: true},
		{name: "page rect blocks nothing behind page", x: 150, y: 150, current: &selfCovered},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Resolve(tc.x, tc.y, tc.current, tc.overlays, tc.forced)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("expected (%q,%v), got (%q,%v)", tc.want, tc.ok, got, ok)
			}
		})
	}
}

func TestResolveTopmostButtonInLayer(t *testing.T) {
	r := page.Rect{X: 0, Y: 0, W: 10, H: 10}
	p := page.Page{Buttons: []page.Button{button("bottom", true, r), button("top", true, r)}}
	if got, ok := Resolve(5, 5, &p, nil, nil); !ok || got != "top" {
		t.Fatalf("expected top button, got %q %v", got, ok)
	}
	p.Buttons[1].Enabled = false
	if got, ok := Resolve(5, 5, &p, nil, nil); ok {
		t.Fatalf("expected disabled top button to block, got %q", got)
	}
}

func TestToLogical(t *testing.T) {
	x, y := ToLogical(400, 225, Size{W: 800, H: 450}, Size{W: 1920, H: 1080})
	if x != 960 || y != 540 {
		t.Fatalf("expected (960,540), got (%v,%v)", x, y)
	}
	if x, y := ToLogical(10, 10, Size{}, Size{W: 1920, H: 1080}); x != 0 || y != 0 {
		t.Fatalf("expected zero for empty window, got (%v,%v)", x, y)
	}
}
