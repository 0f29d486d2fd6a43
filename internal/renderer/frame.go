package renderer

import (
	"github.com/dshills/softwrap/internal/engine/buffer"
	"github.com/dshills/softwrap/internal/renderer/hittest"
	"github.com/dshills/softwrap/internal/renderer/layout"
	"github.com/dshills/softwrap/internal/renderer/viewport"
)

// Frame is the placement context for one event on one pane.
type Frame struct {
	vp     *viewport.Viewport
	layout layout.WrapLayout
}

// NewFrame captures the viewport's current layout.
func NewFrame(vp *viewport.Viewport) Frame {
	return Frame{vp: vp, layout: vp.Layout()}
}

// Layout returns the captured layout.
func (f Frame) Layout() layout.WrapLayout {
	return f.layout
}

// Viewport returns the viewport the frame was built from.
func (f Frame) Viewport() *viewport.Viewport {
	return f.vp
}

// Row is one visible screen row.
type Row struct {
	AbsRow    int // absolute screen row in the document
	ViewRow   int // row relative to the first visible row
	Line      int
	RowOffset int // wrapped row index within Line
	StartCol  int // first buffer column shown
	EndCol    int // one past the last buffer column shown
}

// IsLastRowOfLine reports whether r shows the end of its line.
func (r Row) IsLastRowOfLine(lineLen int) bool {
	return r.EndCol == lineLen
}

// Rows returns the visible rows that hold document content, top to bottom.
func (f Frame) Rows(lines layout.Lines) []Row {
	n := lines.LineCount()
	if n == 0 {
		return nil
	}
	first := f.vp.FirstVisibleScreenRow()
	visible := f.vp.VisibleScreenRows()

	line, rowOffset, ok := viewport.BufferLineForScreenRow(first, lines, f.layout)
	if !ok {
		return nil
	}

	rows := make([]Row, 0, visible)
	lineLen := lines.LineLen(line)
	lineRows := f.layout.ScreenRowsForLine(lineLen)
	for vr := 0; vr < visible; vr++ {
		start, end := f.layout.RowSpan(rowOffset, lineLen)
		rows = append(rows, Row{
			AbsRow:    first + vr,
			ViewRow:   vr,
			Line:      line,
			RowOffset: rowOffset,
			StartCol:  start,
			EndCol:    end,
		})

		rowOffset++
		if rowOffset < lineRows {
			continue
		}
		line++
		if line >= n {
			break
		}
		rowOffset = 0
		lineLen = lines.LineLen(line)
		lineRows = f.layout.ScreenRowsForLine(lineLen)
	}
	return rows
}

// CellFor returns the screen column and view row where pos is drawn.
// ok is false if pos is outside the document or its row is not visible.
func (f Frame) CellFor(lines layout.Lines, pos buffer.Position) (col, viewRow int, ok bool) {
	if pos.Line < 0 || pos.Line >= lines.LineCount() {
		return 0, 0, false
	}
	c := max(0, min(pos.Col, lines.LineLen(pos.Line)))
	absRow := f.layout.ScreenRowOf(lines, pos.Line, c)
	_, sc := f.layout.BufferColToScreenPos(c)
	viewRow, ok = f.vp.RowToViewRow(absRow)
	return sc, viewRow, ok
}

// PositionFor returns the content-relative pixel origin of the glyph at
// pos. The top row may be partially scrolled off, so y can be negative.
// ok is false if pos is outside the document or its row is not visible.
func (f Frame) PositionFor(lines layout.Lines, pos buffer.Position) (x, y float64, ok bool) {
	if pos.Line < 0 || pos.Line >= lines.LineCount() {
		return 0, 0, false
	}
	c := max(0, min(pos.Col, lines.LineLen(pos.Line)))
	absRow := f.layout.ScreenRowOf(lines, pos.Line, c)
	_, sc := f.layout.BufferColToScreenPos(c)

	x = float64(sc) * f.layout.CharWidthPx()
	y = float64(absRow-f.vp.FirstVisibleScreenRow())*f.layout.LineHeightPx() - f.vp.ScrollFractionPx()
	return x, y, f.vp.IsRowVisible(absRow)
}

// HitTest returns the buffer position under content-relative (x, y).
func (f Frame) HitTest(lines layout.Lines, x, y float64) buffer.Position {
	return hittest.PixelToBufferPosition(x, y, f.vp, f.layout, lines)
}
