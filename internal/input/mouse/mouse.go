package mouse

import (
	"math"
	"time"
)

// Button represents a mouse button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheel-up"
	case ButtonWheelDown:
		return "wheel-down"
	default:
		return "none"
	}
}

// IsWheel returns true for wheel buttons.
func (b Button) IsWheel() bool {
	return b == ButtonWheelUp || b == ButtonWheelDown
}

// Modifier is a set of keyboard modifiers held during a mouse event.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Phase is what happened to the button.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhasePress
	PhaseRelease
	PhaseMove
	PhaseDrag
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePress:
		return "press"
	case PhaseRelease:
		return "release"
	case PhaseMove:
		return "move"
	case PhaseDrag:
		return "drag"
	default:
		return "none"
	}
}

// Position is a content-relative pixel coordinate.
type Position struct {
	X, Y float64
}

// Distance returns the Manhattan distance between two positions.
func (p Position) Distance(other Position) float64 {
	return math.Abs(p.X-other.X) + math.Abs(p.Y-other.Y)
}

// Event is a classified mouse event.
type Event struct {
	Position  Position
	Button    Button
	Modifiers Modifier
	Phase     Phase
	Timestamp time.Time
}

// ActionKind identifies what the editor should do.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionSetCursor
	ActionSelectWord
	ActionSelectLine
	ActionExtendTo
	ActionScroll
)

// String returns a string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionSetCursor:
		return "set-cursor"
	case ActionSelectWord:
		return "select-word"
	case ActionSelectLine:
		return "select-line"
	case ActionExtendTo:
		return "extend-to"
	case ActionScroll:
		return "scroll"
	default:
		return "none"
	}
}

// Action is the editor operation produced by an event. X and Y are the
// event's content coordinates; Rows is the signed scroll amount, positive
// downward.
type Action struct {
	Kind ActionKind
	X, Y float64
	Rows int
}

// Config configures mouse handler behavior.
type Config struct {
	// DoubleClickTime is the maximum time between clicks of a sequence.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the maximum pointer travel, in pixels, between
	// clicks of a sequence.
	DoubleClickDistance float64

	// ScrollRows is the number of rows per wheel tick.
	ScrollRows int

	// ScrollRowsShift is the number of rows per tick with Shift held.
	ScrollRowsShift int

	EnableDragSelection bool
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		DoubleClickTime:     400 * time.Millisecond,
		DoubleClickDistance: 4,
		ScrollRows:          3,
		ScrollRowsShift:     1,
		EnableDragSelection: true,
	}
}

// Handler processes mouse events and generates editor actions.
type Handler struct {
	config Config
	click  *clickTracker
	drag   *dragTracker
	held   Button
}

// NewHandler creates a new mouse handler with the given configuration.
func NewHandler(config Config) *Handler {
	return &Handler{
		config: config,
		click:  newClickTracker(config.DoubleClickTime, config.DoubleClickDistance),
		drag:   newDragTracker(),
	}
}

// Config returns the handler configuration.
func (h *Handler) Config() Config {
	return h.config
}

// Handle processes a mouse event and returns the resulting action.
// Events that do nothing return an action of kind ActionNone.
func (h *Handler) Handle(event Event) Action {
	switch event.Phase {
	case PhasePress:
		return h.handlePress(event)
	case PhaseRelease:
		h.drag.end()
	case PhaseDrag:
		return h.handleDrag(event)
	}
	return Action{}
}

func (h *Handler) handlePress(event Event) Action {
	if event.Button.IsWheel() {
		return h.handleWheel(event)
	}
	if event.Button != ButtonLeft {
		return Action{}
	}

	count := h.click.recordClick(event.Position, event.Timestamp)
	h.drag.start(event.Position, event.Button)

	at := Action{X: event.Position.X, Y: event.Position.Y}
	switch count {
	case 2:
		at.Kind = ActionSelectWord
	case 3:
		at.Kind = ActionSelectLine
	default:
		at.Kind = ActionSetCursor
		if event.Modifiers.Has(ModShift) {
			at.Kind = ActionExtendTo
		}
	}
	return at
}

func (h *Handler) handleDrag(event Event) Action {
	if !h.config.EnableDragSelection || !h.drag.active || h.drag.button != ButtonLeft {
		return Action{}
	}
	h.drag.update(event.Position)
	h.drag.selecting = true
	return Action{Kind: ActionExtendTo, X: event.Position.X, Y: event.Position.Y}
}

// Reset clears all handler state.
func (h *Handler) Reset() {
	h.click.reset()
	h.drag.end()
	h.held = ButtonNone
}

// IsDragging returns true if a button is held since a press.
func (h *Handler) IsDragging() bool {
	return h.drag.active
}

// IsSelecting returns true once a held left button has moved.
func (h *Handler) IsSelecting() bool {
	return h.drag.selecting
}
