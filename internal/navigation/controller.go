// Package navigation tracks the current page, the back/forward history and
// page changes deferred behind a transition animation.
package navigation

import (
	"time"

	"github.com/atomicstack/pageflow/internal/logging/events"
	"github.com/atomicstack/pageflow/internal/page"
	"github.com/atomicstack/pageflow/internal/transition"
)

// Outcome describes what a page-change request did.
type Outcome int

const (
	// Unchanged means the requested page was already current.
	Unchanged Outcome = iota
	// Switched means the current page changed immediately.
	Switched
	// Deferred means a transition started and will commit the page later.
	Deferred
	// Rejected means a transition was already running.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Switched:
		return "switched"
	case Deferred:
		return "deferred"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Controller owns the current page and its history.
type Controller struct {
	current  page.ID
	outgoing page.ID
	pending  page.ID
	history  *History
	engine   transition.Engine
}

// NewController starts on start and records it as the first history entry.
func NewController(start page.ID) *Controller {
	c := &Controller{current: start, history: NewHistory(HistoryCap)}
	if start != "" {
		c.history.Push(start)
	}
	return c
}

// Current returns the page being shown.
func (c *Controller) Current() page.ID {
	return c.current
}

// History exposes the visited pages.
func (c *Controller) History() *History {
	return c.history
}

// Animating reports whether a transition is running.
func (c *Controller) Animating() bool {
	return c.engine.Active()
}

// Outgoing returns the page being animated away while a transition runs.
func (c *Controller) Outgoing() (page.ID, bool) {
	if !c.engine.Active() {
		return "", false
	}
	return c.outgoing, true
}

// View returns the transition state for rendering.
func (c *Controller) View() transition.View {
	return c.engine.View()
}

// RequestPageChange moves to next, animated when spec is non-nil. The page is
// recorded in history even when the switch is deferred.
func (c *Controller) RequestPageChange(next page.ID, spec *transition.Spec) Outcome {
	if next == c.current {
		return Unchanged
	}
	if c.engine.Active() {
		events.Transition.Rejected(string(next))
		return Rejected
	}
	outcome := Switched
	if spec != nil {
		c.engine.Start(*spec)
		c.outgoing = c.current
		c.pending = next
		events.Transition.Start(spec.Kind.String(), string(next), spec.Duration.Milliseconds())
		outcome = Deferred
	} else {
		c.switchTo(next)
	}
	evicted := c.history.Push(next)
	events.History.Push(string(next), c.history.Len(), evicted)
	return outcome
}

// NavigateHistory moves one step back or forward without recording a new
// entry. It is refused while input is captured, while animating and when the
// history is empty.
func (c *Controller) NavigateHistory(forward, capturing bool) bool {
	switch {
	case capturing:
		events.History.Refused("capturing")
		return false
	case c.engine.Active():
		events.History.Refused("animating")
		return false
	case c.history.Len() == 0:
		events.History.Refused("empty")
		return false
	}
	id, _ := c.history.Step(forward)
	events.History.Navigate(forward, c.history.Cursor(), string(id))
	if id != c.current {
		c.switchTo(id)
	}
	return true
}

// Advance drives the running transition. swapped is true on the tick the
// pending page became current.
func (c *Controller) Advance(dt time.Duration) (swapped, done bool) {
	if !c.engine.Active() {
		return false, false
	}
	kind := c.engine.Spec().Kind
	step := c.engine.Advance(dt)
	if step.Swap {
		events.Transition.Swap(string(c.pending))
		c.switchTo(c.pending)
		c.pending = ""
	}
	if step.Done {
		events.Transition.Finish(kind.String())
		c.outgoing = ""
	}
	return step.Swap, step.Done
}

// TransitionFor returns the transition declared by button, searching the
// pages in order.
func TransitionFor(button page.ButtonID, pages ...*page.Page) *transition.Spec {
	for _, p := range pages {
		if b, ok := p.Button(button); ok {
			return b.Transition
		}
	}
	return nil
}

func (c *Controller) switchTo(id page.ID) {
	events.Page.Switch(string(c.current), string(id))
	c.current = id
}
