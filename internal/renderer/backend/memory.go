package backend

import (
	"strings"
	"time"

	"github.com/dshills/softwrap/internal/renderer/core"
)

// Memory is an in-process Backend. It records cell writes so tests can
// assert how much of the surface a paint touched.
type Memory struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	events        chan Event
	writes        int
	shows         int
}

// NewMemory creates a memory backend of the given size in cells.
func NewMemory(width, height int) *Memory {
	m := &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 256),
	}
	m.allocate()
	return m
}

func (m *Memory) allocate() {
	m.cells = make([][]core.Cell, m.height)
	for y := range m.cells {
		m.cells[y] = make([]core.Cell, m.width)
		for x := range m.cells[y] {
			m.cells[y][x] = core.EmptyCell()
		}
	}
}

func (m *Memory) Init() error { return nil }
func (m *Memory) Shutdown()   {}

func (m *Memory) Size() (int, int) {
	return m.width, m.height
}

func (m *Memory) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < m.width && y >= 0 && y < m.height {
		m.cells[y][x] = cell
		m.writes++
	}
}

func (m *Memory) GetCell(x, y int) core.Cell {
	if x >= 0 && x < m.width && y >= 0 && y < m.height {
		return m.cells[y][x]
	}
	return core.EmptyCell()
}

func (m *Memory) Fill(rect core.Rect, cell core.Cell) {
	for y := max(0, rect.Top); y < rect.Bottom && y < m.height; y++ {
		for x := max(0, rect.Left); x < rect.Right && x < m.width; x++ {
			m.cells[y][x] = cell
			m.writes++
		}
	}
}

func (m *Memory) Clear() {
	m.Fill(core.RectFromSize(0, 0, m.height, m.width), core.EmptyCell())
}

func (m *Memory) Show() { m.shows++ }

func (m *Memory) ShowCursor(x, y int) {
	m.cursorX = x
	m.cursorY = y
	m.cursorVisible = true
}

func (m *Memory) HideCursor() {
	m.cursorVisible = false
}

func (m *Memory) SetCursorStyle(style CursorStyle) {
	m.cursorStyle = style
}

// PollEvent returns the next posted event. Once the queue is empty it
// returns an interrupt so a test loop never blocks.
func (m *Memory) PollEvent() Event {
	select {
	case ev := <-m.events:
		return ev
	default:
		return Event{Type: EventInterrupt, When: time.Now()}
	}
}

func (m *Memory) PostEvent(event Event) {
	select {
	case m.events <- event:
	default:
	}
}

func (m *Memory) Beep() {}

// Resize changes the surface size, clearing it, and queues a resize event.
func (m *Memory) Resize(width, height int) {
	m.width = width
	m.height = height
	m.allocate()
	m.PostEvent(Event{Type: EventResize, Width: width, Height: height, When: time.Now()})
}

// CursorPosition returns the caret state.
func (m *Memory) CursorPosition() (x, y int, visible bool) {
	return m.cursorX, m.cursorY, m.cursorVisible
}

// CursorStyle returns the last style set.
func (m *Memory) CursorStyle() CursorStyle {
	return m.cursorStyle
}

// Row returns the runes of row y as a string with trailing blanks removed.
func (m *Memory) Row(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range m.cells[y] {
		r := c.Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Writes returns the number of cell writes since the last ResetStats.
func (m *Memory) Writes() int { return m.writes }

// Shows returns the number of Show calls since the last ResetStats.
func (m *Memory) Shows() int { return m.shows }

// ResetStats zeroes the write and show counters.
func (m *Memory) ResetStats() {
	m.writes = 0
	m.shows = 0
}

var _ Backend = (*Memory)(nil)
