// Package statusline renders the one-row status bar at the bottom of a pane.
//
// Like the gutter, the status bar is chrome: its row is taken out of the
// pane before the viewport height is derived.
package statusline

import (
	"strconv"

	"github.com/dshills/softwrap/internal/renderer/backend"
	"github.com/dshills/softwrap/internal/renderer/core"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// Styles holds the status bar styles.
type Styles struct {
	Focused   core.Style
	Unfocused core.Style
	Warning   core.Style
	Error     core.Style
}

// DefaultStyles returns styles that rely only on terminal attributes.
func DefaultStyles() Styles {
	return Styles{
		Focused:   core.DefaultStyle().Reverse(),
		Unfocused: core.DefaultStyle().Reverse().Dim(),
		Warning:   core.DefaultStyle().Reverse().Bold(),
		Error:     core.DefaultStyle().Reverse().Bold().Underline(),
	}
}

// StatusLine is the status bar of one pane.
type StatusLine struct {
	filename string
	readOnly bool
	focused  bool

	line, col  int // 0-indexed caret, shown 1-indexed
	hasCaret   bool
	totalLines int

	scrollable bool
	percent    float64

	message     string
	messageType MessageType

	styles Styles
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{styles: DefaultStyles()}
}

// SetStyles replaces the styles.
func (s *StatusLine) SetStyles(styles Styles) {
	s.styles = styles
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetReadOnly marks views that accept no edits.
func (s *StatusLine) SetReadOnly(readOnly bool) {
	s.readOnly = readOnly
}

// SetFocused selects the focused or unfocused bar style.
func (s *StatusLine) SetFocused(focused bool) {
	s.focused = focused
}

// SetPosition updates the 0-indexed caret position.
func (s *StatusLine) SetPosition(line, col int) {
	s.line, s.col = line, col
	s.hasCaret = true
}

// ClearPosition hides the caret position, for views without a caret.
func (s *StatusLine) ClearPosition() {
	s.hasCaret = false
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetScroll updates the scroll indicator. percent is in [0, 1]; scrollable
// is false when the whole document fits.
func (s *StatusLine) SetScroll(percent float64, scrollable bool) {
	s.percent = percent
	s.scrollable = scrollable
}

// SetMessage displays a status message in place of the filename.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Left returns the left-aligned text: the message if one is set, else the
// filename.
func (s *StatusLine) Left() string {
	if s.message != "" {
		return " " + s.message
	}
	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	if s.readOnly {
		name += " [RO]"
	}
	return " " + name
}

// Right returns the right-aligned position and scroll text.
func (s *StatusLine) Right() string {
	out := ""
	if s.hasCaret {
		out = "Ln " + strconv.Itoa(s.line+1) + ", Col " + strconv.Itoa(s.col+1) + " | "
	} else if s.totalLines > 0 {
		out = strconv.Itoa(s.totalLines) + " lines | "
	}
	switch {
	case !s.scrollable:
		out += "All"
	case s.percent <= 0:
		out += "Top"
	case s.percent >= 1:
		out += "Bot"
	default:
		out += strconv.Itoa(int(s.percent*100)) + "%"
	}
	return out + " "
}

// Text lays out the bar for width cells. The right side wins when both do
// not fit.
func (s *StatusLine) Text(width int) []rune {
	line := make([]rune, max(0, width))
	for i := range line {
		line[i] = ' '
	}
	right := []rune(s.Right())
	start := max(0, width-len(right))
	for i, r := range []rune(s.Left()) {
		if i >= start-1 {
			break
		}
		line[i] = r
	}
	for i, r := range right {
		if start+i < width {
			line[start+i] = r
		}
	}
	return line
}

func (s *StatusLine) style() core.Style {
	if s.message != "" {
		switch s.messageType {
		case MessageWarning:
			return s.styles.Warning
		case MessageError:
			return s.styles.Error
		}
	}
	if s.focused {
		return s.styles.Focused
	}
	return s.styles.Unfocused
}

// Render draws the bar on the top row of rect.
func (s *StatusLine) Render(b backend.Backend, rect core.Rect) {
	if rect.IsEmpty() {
		return
	}
	style := s.style()
	for i, r := range s.Text(rect.Width()) {
		b.SetCell(rect.Left+i, rect.Top, core.NewCell(r, style))
	}
}
