package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/pageflow/internal/editor"
	"github.com/atomicstack/pageflow/internal/hit"
	"github.com/atomicstack/pageflow/internal/logging/events"
	"github.com/atomicstack/pageflow/internal/state"
	"github.com/atomicstack/pageflow/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

const defaultFPS = 60

// Options configures the UI model.
type Options struct {
	Width, Height int
	// Logical is the canvas size pages are laid out on.
	Logical    hit.Size
	FPS        int
	ShowFooter bool
}

type msgHandler func(tea.Msg) tea.Cmd

// tickMsg drives one frame of the page runtime.
type tickMsg struct {
	at time.Time
}

// Model adapts the page runtime to Bubble Tea. Key and mouse messages are
// queued as platform events and handed to the runtime on the next frame tick.
type Model struct {
	state *state.State
	clip  editor.Clipboard

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	logical     hit.Size
	interval    time.Duration
	showFooter  bool

	pending  []state.Event
	frame    state.Frame
	lastTick time.Time
	quitting bool
	// manual disables the self-scheduling frame pump; ticks are sent
	// explicitly (see Harness).
	manual bool

	caret      cursor.Model
	caretDirty bool
	caretAt    int

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps s. clip is passed to the runtime on every tick.
func NewModel(s *state.State, clip editor.Clipboard, opts Options) *Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	logical := opts.Logical
	if logical.W <= 0 || logical.H <= 0 {
		logical = hit.Size{W: 1920, H: 1080}
	}
	m := &Model{
		state:      s,
		clip:       clip,
		logical:    logical,
		interval:   time.Second / time.Duration(fps),
		showFooter: opts.ShowFooter,
		frame:      s.Frame(),
		caretAt:    -1,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Canvas != nil {
		c.TextStyle = styles.Canvas.Copy()
	}
	m.caret = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if cmd := m.caret.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if !m.manual {
		cmds = append(cmds, m.scheduleTick())
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateCaretModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.caretDirty {
		m.caretDirty = false
		m.caret.Blink = false
		if !m.manual {
			if cmd := m.caret.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateCaretModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	if m.manual {
		return nil
	}
	return cmd
}

func (m *Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg{at: t}
	})
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

// handleTickMsg hands the queued events to the runtime and stores the frame.
func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	tick := msg.(tickMsg)
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = tick.at.Sub(m.lastTick)
	}
	m.lastTick = tick.at

	evs := m.pending
	m.pending = nil
	m.frame = m.state.Tick(evs, m.clip, dt)
	if m.frame.Quit {
		m.quitting = true
		return tea.Quit
	}
	if m.frame.Caret.Active && m.frame.Caret.Cursor != m.caretAt {
		m.caretDirty = true
	}
	m.caretAt = -1
	if m.frame.Caret.Active {
		m.caretAt = m.frame.Caret.Cursor
	}
	if m.manual {
		return nil
	}
	return m.scheduleTick()
}

func (m *Model) enqueue(ev state.Event) {
	m.pending = append(m.pending, ev)
}

// Frame returns the last frame produced by the runtime.
func (m *Model) Frame() state.Frame {
	return m.frame
}

// Pending returns the number of queued platform events.
func (m *Model) Pending() int {
	return len(m.pending)
}

// canvasRows is the number of rows the page canvas occupies.
func (m *Model) canvasRows() int {
	rows := m.height
	if rows <= 0 {
		rows = defaultHeight
	}
	if m.showFooter {
		rows -= m.footerHeight()
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) canvasCols() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}
