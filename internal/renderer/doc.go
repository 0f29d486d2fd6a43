// Package renderer places buffer content on a pane's cell surface.
//
// A Frame is built once per event from a pane's viewport. It captures the
// WrapLayout for that event, and every placement and hit test for the event
// goes through it, so the glyph drawn at a position and the position a click
// resolves to always agree.
//
// The Painter walks the rows a Frame reports and writes them into a
// backend.Backend. It repaints only the rows a dirty.Region names.
//
//	┌────────────────────────────────────┐
//	│  Frame (placement, hit testing)    │
//	├────────────────────────────────────┤
//	│  Painter (rows → cells)            │
//	├────────────────────────────────────┤
//	│  Backend (tcell Terminal, Memory)  │
//	└────────────────────────────────────┘
package renderer
