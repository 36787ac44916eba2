// Package state owns the application state of a running page runtime and
// dispatches platform events to it once per tick.
package state

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/atomicstack/pageflow/internal/editor"
	"github.com/atomicstack/pageflow/internal/ledger"
	"github.com/atomicstack/pageflow/internal/logging"
	"github.com/atomicstack/pageflow/internal/logging/events"
	"github.com/atomicstack/pageflow/internal/navigation"
	"github.com/atomicstack/pageflow/internal/page"
)

// Action runs when an enabled button is clicked.
type Action func(s *State, button page.ButtonID)

// Options configures a State.
type Options struct {
	Start page.ID
	// Rollback enables side-button history navigation.
	Rollback bool
	// UndoDepth bounds the undo stack; zero selects the editor default.
	UndoDepth int
	// Forced overlays are drawn above every page and its own overlays.
	Forced []page.ID
	Action Action
}

type eventHandler func(Event)

// State is the single owner of the ledger, editor, navigation and the page
// snapshot rebuilt every tick.
type State struct {
	catalog *page.Catalog
	ledger  *ledger.Ledger
	editor  *editor.Editor
	nav     *navigation.Controller
	action  Action

	rollback bool
	forced   []page.ID
	quit     bool

	current  page.Page
	overlays []page.Page
	pinned   []page.Page
	outgoing *page.Page

	pointerX, pointerY float64
	pointerSeen        bool
	hovered            page.ButtonID

	// clip is only set while a tick is running.
	clip editor.Clipboard

	handlers map[reflect.Type]eventHandler
}

// New builds the state for catalog. Every page is instantiated once up front
// so the ledger holds a slot for each declared input before the first frame.
func New(catalog *page.Catalog, opts Options) (*State, error) {
	if catalog == nil {
		return nil, fmt.Errorf("state: nil catalog")
	}
	name := opts.Start
	if name == "" {
		if ids := catalog.IDs(); len(ids) > 0 {
			name = ids[0]
		}
	}
	start, err := catalog.Lookup(string(name))
	if err != nil {
		return nil, fmt.Errorf("start page: %w", err)
	}
	l := ledger.New()
	s := &State{
		catalog:  catalog,
		ledger:   l,
		editor:   editor.New(l, opts.UndoDepth),
		nav:      navigation.NewController(start),
		action:   opts.Action,
		rollback: opts.Rollback,
		forced:   append([]page.ID(nil), opts.Forced...),
	}
	s.registerHandlers()
	s.warmLedger()
	s.rebuild()
	return s, nil
}

func (s *State) registerHandlers() {
	s.handlers = map[reflect.Type]eventHandler{
		reflect.TypeOf(PointerDown{}): s.handlePointerDown,
		reflect.TypeOf(PointerMove{}): s.handlePointerMove,
		reflect.TypeOf(PointerSide{}): s.handlePointerSide,
		reflect.TypeOf(TextInput{}):   s.handleTextInput,
		reflect.TypeOf(KeyDown{}):     s.handleKeyDown,
	}
}

func (s *State) handlerFor(ev Event) eventHandler {
	if ev == nil || s.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(ev)
	if handler, ok := s.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := s.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (s *State) warmLedger() {
	added := s.ledger.EnsureEntries(s.catalog.RequiredInputs(s.ledger.Flatten()))
	events.Page.Ledger(added, s.ledger.Len())
}

// Current returns the current page id.
func (s *State) Current() page.ID {
	return s.nav.Current()
}

// Ledger exposes the input ledger.
func (s *State) Ledger() *ledger.Ledger {
	return s.ledger
}

// Editor exposes the text editor.
func (s *State) Editor() *editor.Editor {
	return s.editor
}

// Navigation exposes the navigation controller.
func (s *State) Navigation() *navigation.Controller {
	return s.nav
}

// Quit marks the state as finished. The next Tick returns a quitting frame.
func (s *State) Quit() {
	if !s.quit {
		events.App.Quit("requested")
	}
	s.quit = true
}

// Quitting reports whether Quit was called or the window was closed.
func (s *State) Quitting() bool {
	return s.quit
}

// SetForcedOverlays replaces the overlays drawn above every page.
func (s *State) SetForcedOverlays(ids ...page.ID) {
	s.forced = append([]page.ID(nil), ids...)
	s.rebuild()
}

// Input returns the ledger text for button on the current page.
func (s *State) Input(button page.ButtonID) string {
	text, _ := s.ledger.Text(ledger.Key{Page: s.nav.Current(), Button: button})
	return text
}

// ChangePage requests a switch to next on behalf of button, animated when the
// button declares a transition. Unknown pages are logged and ignored.
func (s *State) ChangePage(next page.ID, button page.ButtonID) navigation.Outcome {
	if !s.catalog.Has(next) {
		err := fmt.Errorf("button %q targets unknown page %q", button, next)
		logging.Error(err)
		events.Action.Error(err)
		events.Page.Missing(string(next))
		return navigation.Unchanged
	}
	spec := navigation.TransitionFor(button, s.layers()...)
	snapshot := s.current
	outcome := s.nav.RequestPageChange(next, spec)
	switch outcome {
	case navigation.Deferred:
		s.outgoing = &snapshot
	case navigation.Switched:
		s.rebuild()
	}
	return outcome
}

// BeginInput starts capturing keyboard input for button on the current page.
func (s *State) BeginInput(button page.ButtonID) {
	s.editor.Begin(s.nav.Current(), button)
}

// layers returns the current page followed by its overlays and the forced
// overlays, bottom first.
func (s *State) layers() []*page.Page {
	out := make([]*page.Page, 0, 1+len(s.overlays)+len(s.pinned))
	out = append(out, &s.current)
	for i := range s.overlays {
		out = append(out, &s.overlays[i])
	}
	for i := range s.pinned {
		out = append(out, &s.pinned[i])
	}
	return out
}

// rebuild instantiates the current page from the ledger and resolves the
// overlays it declares.
func (s *State) rebuild() {
	id := s.nav.Current()
	if pg, _, ok := s.editor.Target(); ok && pg != id {
		s.editor.End("page-switch")
	}
	p, ok := s.catalog.Instantiate(id, s.ledger.Flatten())
	if ok && len(p.Inputs) > 0 {
		if added := s.ledger.EnsureEntries(p.Inputs); added > 0 {
			events.Page.Ledger(added, s.ledger.Len())
			p, ok = s.catalog.Instantiate(id, s.ledger.Flatten())
		}
	}
	if !ok {
		p = page.Page{ID: id}
	}
	s.current = p
	s.overlays = s.catalog.Overlays(s.declaredOverlays(p.Overlays))
	s.pinned = s.catalog.Overlays(s.forced)
	s.refreshHover()
}

// declaredOverlays drops ids that are also forced; those are drawn once, on
// top.
func (s *State) declaredOverlays(ids []page.ID) []page.ID {
	if len(s.forced) == 0 {
		return ids
	}
	out := make([]page.ID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(s.forced, id) {
			out = append(out, id)
		}
	}
	return out
}

func (s *State) refreshHover() {
	if _, button, ok := s.editor.Target(); ok {
		s.hovered = button
		return
	}
	s.hovered = ""
	if !s.pointerSeen {
		return
	}
	if id, ok := s.resolve(s.pointerX, s.pointerY); ok {
		s.hovered = id
	}
}
