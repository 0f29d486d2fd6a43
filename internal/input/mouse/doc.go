// Package mouse turns raw pointer events into editor actions.
//
// The handler detects single, double and triple clicks from timing and
// distance thresholds, tracks left-button drags, and converts wheel ticks
// into row counts:
//
//   - Single click: place the caret (Shift extends the selection)
//   - Double click: select the word under the pointer
//   - Triple click: select the line under the pointer
//   - Drag: extend the selection to the pointer
//   - Wheel: scroll by Config.ScrollRows (Shift: ScrollRowsShift)
//
// Coordinates pass through untouched. Mapping them to buffer positions is
// the hit tester's job, done by the caller with the frame that was drawn.
//
//	h := mouse.NewHandler(mouse.DefaultConfig())
//	act := h.Handle(h.Classify(pos, mouse.ButtonLeft, mouse.ModNone, time.Now()))
//	switch act.Kind {
//	case mouse.ActionSetCursor:
//	    ...
//	}
//
// A Handler belongs to one event loop and is not safe for concurrent use.
package mouse
