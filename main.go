package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/pageflow/internal/app"
	"github.com/atomicstack/pageflow/internal/clipboard"
	"github.com/atomicstack/pageflow/internal/config"
	"github.com/atomicstack/pageflow/internal/demo"
	"github.com/atomicstack/pageflow/internal/logging"
	"github.com/atomicstack/pageflow/internal/logging/events"
	"github.com/atomicstack/pageflow/internal/page"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg, demo.Catalog().IDs(), clipboard.Available()))
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records the settings the runtime starts with: the
// resolved start page, the logical canvas and how it maps onto the terminal.
func startupTracePayload(cfg config.Config, pages []page.ID, clipboardOK bool) map[string]interface{} {
	start := page.ID(cfg.App.StartPage)
	if start == "" && len(pages) > 0 {
		start = pages[0]
	}
	return map[string]interface{}{
		"argv":      cfg.Args,
		"flags":     cfg.Flags,
		"logFile":   cfg.Logging.FilePath,
		"startPage": start,
		"pages":     pages,
		"canvas":    canvasSize{Width: cfg.App.LogicalWidth, Height: cfg.App.LogicalHeight},
		"fps":       cfg.App.FPS,
		"rollback":  cfg.App.Rollback,
		"undoDepth": cfg.App.UndoDepth,
		"clipboard": clipboardOK,
		"viewport":  resolveViewport(cfg.App, os.Stdout.Fd()),
	}
}

type canvasSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// viewport describes the cell grid the canvas is drawn on. CellWidth and
// CellHeight are logical pixels per cell.
type viewport struct {
	Terminal   bool    `json:"terminal"`
	Fixed      bool    `json:"fixed"`
	Cols       int     `json:"cols"`
	Rows       int     `json:"rows"`
	CellWidth  float64 `json:"cell_width,omitempty"`
	CellHeight float64 `json:"cell_height,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// resolveViewport resolves the grid size: configured dimensions win, the
// terminal behind fd fills in the rest.
func resolveViewport(cfg app.Config, fd uintptr) viewport {
	v := viewport{Cols: cfg.Width, Rows: cfg.Height, Fixed: cfg.Width > 0 && cfg.Height > 0}
	if n := int(fd); n >= 0 && term.IsTerminal(n) {
		v.Terminal = true
		if width, height, err := term.GetSize(n); err == nil {
			if v.Cols <= 0 {
				v.Cols = width
			}
			if v.Rows <= 0 {
				v.Rows = height
			}
		} else {
			v.Error = err.Error()
		}
	}
	if v.Cols > 0 {
		v.CellWidth = float64(cfg.LogicalWidth) / float64(v.Cols)
	}
	if v.Rows > 0 {
		v.CellHeight = float64(cfg.LogicalHeight) / float64(v.Rows)
	}
	return v
}
