// Package backend abstracts the cell surface the renderer paints into and
// the event source the application polls.
package backend

import (
	"time"

	"github.com/dshills/softwrap/internal/renderer/core"
)

// CursorStyle defines how the caret appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// EventType identifies the type of event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	EventFocus
	EventInterrupt
)

func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventPaste:
		return "paste"
	case EventFocus:
		return "focus"
	case EventInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}

// Event is a backend-neutral input event.
type Event struct {
	Type EventType
	When time.Time

	// Key events
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse events, in cells. Buttons is the set held at the time of the
	// event; a release reports MouseNone.
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize events
	Width, Height int

	// Paste and focus events. A paste arrives as a start event, the pasted
	// keys, then an end event.
	PasteStart bool
	Focused    bool
}

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlA
	KeyCtrlC
	KeyCtrlE
	KeyCtrlF
	KeyCtrlK
	KeyCtrlQ
	KeyCtrlU
	KeyCtrlW
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains mod.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton is the mouse button state reported with an event.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Backend is a cell surface plus an event source.
type Backend interface {
	// Init prepares the backend. It must be called before anything else.
	Init() error

	// Shutdown releases the backend and restores terminal state.
	Shutdown()

	// Size returns the surface size in cells.
	Size() (width, height int)

	// SetCell sets one cell. Positions outside the surface are ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at (x, y), or an empty cell outside.
	GetCell(x, y int) core.Cell

	// Fill fills rect with cell.
	Fill(rect core.Rect, cell core.Cell)

	Clear()

	// Show flushes pending changes to the display.
	Show()

	ShowCursor(x, y int)
	HideCursor()
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks for the next event.
	PollEvent() Event

	// PostEvent queues a synthetic event. It never blocks.
	PostEvent(event Event)

	Beep()
}
