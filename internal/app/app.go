package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/pageflow/internal/clipboard"
	"github.com/atomicstack/pageflow/internal/demo"
	"github.com/atomicstack/pageflow/internal/editor"
	"github.com/atomicstack/pageflow/internal/hit"
	"github.com/atomicstack/pageflow/internal/page"
	"github.com/atomicstack/pageflow/internal/state"
	"github.com/atomicstack/pageflow/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width         int
	Height        int
	LogicalWidth  int
	LogicalHeight int
	FPS           int
	StartPage     string
	Rollback      bool
	UndoDepth     int
	ShowFooter    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := newModel(cfg, clipboard.Detect())
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func newModel(cfg Config, clip editor.Clipboard) (*ui.Model, error) {
	s, err := state.New(demo.Catalog(), state.Options{
		Start:     page.ID(cfg.StartPage),
		Rollback:  cfg.Rollback,
		UndoDepth: cfg.UndoDepth,
		Action:    demo.Action,
	})
	if err != nil {
		return nil, fmt.Errorf("build runtime: %w", err)
	}
	return ui.NewModel(s, clip, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Logical:    hit.Size{W: float64(cfg.LogicalWidth), H: float64(cfg.LogicalHeight)},
		FPS:        cfg.FPS,
		ShowFooter: cfg.ShowFooter,
	}), nil
}
