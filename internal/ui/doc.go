// Package ui contains the Bubble Tea program that hosts the page runtime in a
// terminal.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry.
//   - Key and mouse messages are translated into platform events
//     (internal/ui/input.go) and queued. Mouse positions are mapped from
//     terminal cells onto the logical canvas first.
//   - A frame pump delivers tickMsg at the configured rate. Each tick hands
//     the queued events, the clipboard capability and the elapsed time to
//     state.State.Tick and stores the returned frame.
//
// Rendering:
//   - View rasterises the last frame onto a grid of cells
//     (internal/ui/render.go): page, outgoing page during slides, overlays.
//     Fades dim the grid, hovered buttons are darkened and the caret is drawn
//     with a bubbles cursor.
//   - An optional footer lists the input ledger and page history.
//
// The model owns no page logic; every decision is made by internal/state.
package ui
