package mouse

import "time"

// dragTracker follows a held button from press to release.
type dragTracker struct {
	active     bool
	selecting  bool
	button     Button
	startPos   Position
	currentPos Position
}

func newDragTracker() *dragTracker {
	return &dragTracker{}
}

func (t *dragTracker) start(pos Position, button Button) {
	t.active = true
	t.selecting = false
	t.button = button
	t.startPos = pos
	t.currentPos = pos
}

func (t *dragTracker) update(pos Position) {
	if t.active {
		t.currentPos = pos
	}
}

func (t *dragTracker) end() {
	*t = dragTracker{}
}

// DragState is a snapshot of drag tracking.
type DragState struct {
	Active     bool
	Selecting  bool
	Button     Button
	StartPos   Position
	CurrentPos Position
}

// DragState returns the current drag state.
func (h *Handler) DragState() DragState {
	return DragState{
		Active:     h.drag.active,
		Selecting:  h.drag.selecting,
		Button:     h.drag.button,
		StartPos:   h.drag.startPos,
		CurrentPos: h.drag.currentPos,
	}
}

// Classify builds an Event from a backend report of the buttons currently
// held. Backends such as terminals report state, not transitions, so the
// phase is derived from what was held on the previous report. Wheel ticks
// are always presses and never count as held.
func (h *Handler) Classify(pos Position, held Button, mods Modifier, when time.Time) Event {
	ev := Event{Position: pos, Button: held, Modifiers: mods, Timestamp: when}

	switch {
	case held.IsWheel():
		ev.Phase = PhasePress
		return ev
	case held != ButtonNone && h.held == ButtonNone:
		ev.Phase = PhasePress
	case held != ButtonNone:
		ev.Phase = PhaseDrag
	case h.held != ButtonNone:
		ev.Phase = PhaseRelease
		ev.Button = h.held
	default:
		ev.Phase = PhaseMove
	}
	h.held = held
	return ev
}
