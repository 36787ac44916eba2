// Package demo is a small three-page application used by the pageflow binary:
// two pages with text fields, a sub-page reached from the second, a top bar
// overlay with navigation buttons and a footer overlay.
package demo

import (
	"time"

	"github.com/atomicstack/pageflow/internal/page"
	"github.com/atomicstack/pageflow/internal/state"
	"github.com/atomicstack/pageflow/internal/transition"
)

// Canvas is the logical size the demo is laid out for.
const (
	CanvasWidth  = 1920
	CanvasHeight = 1080
)

const (
	PageOne     page.ID = "page1"
	PageTwo     page.ID = "page2"
	PageTwoSub  page.ID = "page2-sub"
	OverlayTop  page.ID = "persistent:top-bar"
	OverlayNote page.ID = "persistent:footer"
)

const (
	ButtonPage1     page.ButtonID = "nav:page1"
	ButtonPage2     page.ButtonID = "nav:page2"
	ButtonSubPage   page.ButtonID = "nav:subpage"
	ButtonBack      page.ButtonID = "nav:back"
	ButtonPurpleOne page.ButtonID = "input:purple-page1"
	ButtonRedOne    page.ButtonID = "input:red-page1"
	ButtonPurpleTwo page.ButtonID = "input:purple-page2"
)

// ledger positions, fixed by registration order
const (
	ledgerPurpleOne = iota
	ledgerRedOne
	ledgerPurpleTwo
)

var (
	colorBackground = page.RGB(30, 30, 46)
	colorText       = page.RGB(255, 255, 255)
	colorSubtext    = page.RGB(186, 194, 222)
	colorPurple     = page.RGB(203, 166, 247)
	colorPink       = page.RGB(243, 139, 168)
	colorOrange     = page.RGB(250, 179, 135)
	colorBlack      = page.RGB(17, 17, 27)
	colorRed        = page.RGB(255, 0, 0)
)

// Targets maps navigation buttons to the page they open. Every other button
// is a text field.
func Targets() map[page.ButtonID]page.ID {
	return map[page.ButtonID]page.ID{
		ButtonPage1:   PageOne,
		ButtonPage2:   PageTwo,
		ButtonSubPage: PageTwoSub,
		ButtonBack:    PageTwo,
	}
}

// Catalog registers the demo pages and overlays.
func Catalog() *page.Catalog {
	c := page.NewCatalog()
	c.Register(PageOne, pageOne)
	c.Register(PageTwo, pageTwo)
	c.RegisterStatic(PageTwoSub, subPage)
	c.RegisterOverlay(OverlayTop, topBar)
	c.RegisterOverlay(OverlayNote, footer)
	return c
}

// Action routes clicks: navigation buttons change page, anything else starts
// capturing text for the clicked field.
func Action(s *state.State, button page.ButtonID) {
	if target, ok := Targets()[button]; ok {
		s.ChangePage(target, button)
		return
	}
	s.BeginInput(button)
}

// center returns the top-left corner that centers a w×h box on the canvas.
func center(w, h int32) (int32, int32) {
	return CanvasWidth/2 - w/2, CanvasHeight/2 - h/2
}

func label(b page.Button, dx, dy int32, size float64, content string, color page.Color) page.Text {
	return page.Text{Size: size, X: b.Rect.X + dx, Y: b.Rect.Y + dy, Content: content, Color: color}
}

func topBar() page.Page {
	const padding = 200
	x, _ := center(200, 75)
	buttons := []page.Button{
		{
			ID: ButtonPage1, Enabled: true, Color: colorPink, Radius: 5,
			Rect:       page.Rect{X: x - padding, Y: 10, W: 200, H: 75},
			Transition: transition.Slide(450*time.Millisecond, transition.Right, CanvasWidth),
		},
		{
			ID: ButtonPage2, Enabled: true, Color: colorPink, Radius: 5,
			Rect:       page.Rect{X: x + padding, Y: 10, W: 200, H: 75},
			Transition: transition.Fade(400 * time.Millisecond),
		},
	}
	return page.Page{
		ID:      OverlayTop,
		Rects:   []page.Shape{{Color: colorBlack, Rect: page.Rect{W: CanvasWidth, H: 100}}},
		Buttons: buttons,
		Texts: []page.Text{
			label(buttons[0], 9, 24, 17, "Page 1", colorText),
			label(buttons[1], 9, 24, 17, "Page 2", colorText),
		},
		Images: []page.Image{{X: 10, Y: 10, W: 50, H: 50, Source: "example_1.jpg"}},
	}
}

func footer() page.Page {
	x, _ := center(800, 180)
	bar := page.Shape{Color: colorBlack, Rect: page.Rect{X: x, Y: 900, W: 800, H: 180}}
	return page.Page{
		ID:    OverlayNote,
		Rects: []page.Shape{bar},
		Texts: []page.Text{{
			Size: 17, X: 650, Y: bar.Rect.Y + 45, Color: colorText,
			Content: "This rectangle is a persistent element, just like the top bar",
		}},
	}
}

func pageOne(inputs []string) page.Page {
	const padding = 20
	redX, redY := center(200, 200)
	orangeX, orangeY := center(800, 200)
	purpleX, purpleY := center(600, 100)

	red := page.Shape{Color: colorRed, Radius: 100, Rect: page.Rect{X: redX, Y: redY + 200 + padding, W: 200, H: 200}}
	orange := page.Shape{Color: colorOrange, Rect: page.Rect{X: orangeX, Y: orangeY, W: 800, H: 200}}
	buttons := []page.Button{
		{
			ID: ButtonPurpleOne, Enabled: true, Color: colorPurple, Radius: 5,
			Rect: page.Rect{X: purpleX, Y: purpleY - (200 - padding), W: 600, H: 100},
		},
		{
			ID: ButtonRedOne, Enabled: true, Color: colorRed, Radius: 20,
			Rect: page.Rect{X: purpleX, Y: red.Rect.Y + red.Rect.H + padding, W: 600, H: 100},
		},
	}
	bg := colorBackground
	return page.Page{
		ID:         PageOne,
		Background: &bg,
		Rects:      []page.Shape{red, orange},
		Buttons:    buttons,
		Texts: []page.Text{
			{Size: 18, X: orange.Rect.X + 165, Y: orange.Rect.Y + 86, Content: "Random orange rectangle, because I can :)", Color: colorSubtext},
			label(buttons[0], 75, -25, 18, "Click the button to start typing", colorSubtext),
			label(buttons[0], 15, 35, 25, page.InputAt(inputs, ledgerPurpleOne), colorBlack),
			label(buttons[1], 15, 35, 25, page.InputAt(inputs, ledgerRedOne), colorBlack),
		},
		Inputs: []page.InputSlot{
			{Page: PageOne, Button: ButtonPurpleOne},
			{Page: PageOne, Button: ButtonRedOne},
		},
		Overlays: []page.ID{OverlayTop},
	}
}

func pageTwo(inputs []string) page.Page {
	inputX, inputY := center(500, 100)
	buttons := []page.Button{
		{
			ID: ButtonSubPage, Enabled: true, Color: colorPurple, Radius: 20,
			Rect:       page.Rect{X: 100, Y: 150, W: 235, H: 40},
			Transition: transition.Slide(400*time.Millisecond, transition.Up, CanvasHeight),
		},
		{
			ID: ButtonPurpleTwo, Enabled: true, Color: colorPurple, Radius: 20,
			Rect: page.Rect{X: inputX, Y: inputY, W: 500, H: 100},
		},
	}
	bg := colorBackground
	return page.Page{
		ID:         PageTwo,
		Background: &bg,
		Buttons:    buttons,
		Texts: []page.Text{
			label(buttons[0], 10, 7, 18, "Go to sub-page", colorText),
			label(buttons[1], 10, 7, 18, page.InputAt(inputs, ledgerPurpleTwo), colorText),
		},
		Inputs:   []page.InputSlot{{Page: PageTwo, Button: ButtonPurpleTwo}},
		Overlays: []page.ID{OverlayTop, OverlayNote},
	}
}

func subPage() page.Page {
	back := page.Button{
		ID: ButtonBack, Enabled: true, Color: colorPink,
		Rect:       page.Rect{X: 20, Y: 20, W: 50, H: 40},
		Transition: transition.Slide(400*time.Millisecond, transition.Down, CanvasHeight),
	}
	bg := colorBackground
	return page.Page{
		ID:         PageTwoSub,
		Background: &bg,
		Buttons:    []page.Button{back},
		Texts: []page.Text{
			{Size: 18, X: 950, Y: 400, Content: "Random text, because I can :)", Color: colorSubtext},
			label(back, 10, 7, 18, "<-", colorText),
		},
		Images:   []page.Image{{X: 500, Y: 500, W: 300, H: 300, Source: "example_2.jpg"}},
		Overlays: []page.ID{OverlayNote},
	}
}
