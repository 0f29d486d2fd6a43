// Package layout maps buffer columns onto soft-wrapped screen rows.
//
// A WrapLayout is a value derived from the content width and the fixed cell
// metrics of the font. It holds no per-line state: row counts are computed
// from line lengths on demand, so a layout is always consistent with the
// buffer it is applied to. Build a fresh one whenever the width may have
// changed and use that same value for both painting and hit testing.
package layout

import "math"

// Metrics are the fixed-cell font metrics in pixels.
type Metrics struct {
	CharWidthPx  float64
	LineHeightPx float64
}

// Valid returns true if both metrics are positive.
func (m Metrics) Valid() bool {
	return m.CharWidthPx > 0 && m.LineHeightPx > 0
}

// Lines is the minimal view of a buffer needed to lay it out.
type Lines interface {
	LineCount() int
	LineLen(line int) int
}

// LineLens adapts a slice of line lengths to Lines.
type LineLens []int

// LineCount implements Lines.
func (l LineLens) LineCount() int { return len(l) }

// LineLen implements Lines.
func (l LineLens) LineLen(line int) int {
	if line < 0 || line >= len(l) {
		return 0
	}
	return l[line]
}

// WrapLayout is the soft-wrap geometry for one content width.
type WrapLayout struct {
	colsPerRow int
	metrics    Metrics
}

// NewWrapLayout computes the layout for contentWidthPx. The number of
// columns per row is floor(width / char width) and never less than 1.
func NewWrapLayout(contentWidthPx float64, m Metrics) WrapLayout {
	cols := 1
	if m.CharWidthPx > 0 && contentWidthPx > 0 {
		// Guard against overflow on absurd widths.
		if c := math.Floor(contentWidthPx / m.CharWidthPx); c > 1 {
			cols = int(min(c, math.MaxInt32))
		}
	}
	return WrapLayout{colsPerRow: cols, metrics: m}
}

// ColsPerRow returns the number of cells on one screen row.
func (w WrapLayout) ColsPerRow() int { return w.colsPerRow }

// Metrics returns the cell metrics the layout was built with.
func (w WrapLayout) Metrics() Metrics { return w.metrics }

// CharWidthPx returns the cell width.
func (w WrapLayout) CharWidthPx() float64 { return w.metrics.CharWidthPx }

// LineHeightPx returns the row height.
func (w WrapLayout) LineHeightPx() float64 { return w.metrics.LineHeightPx }

// ScreenRowsForLine returns how many screen rows a line of lineLen runes
// occupies. A line whose length is an exact multiple of the row width gets
// an extra row so the caret after its last rune has somewhere to sit; an
// empty line takes one row.
func (w WrapLayout) ScreenRowsForLine(lineLen int) int {
	if lineLen < 0 {
		lineLen = 0
	}
	return lineLen/w.colsPerRow + 1
}

// BufferColToScreenPos returns the wrapped row within the line and the
// screen column of buffer column col.
func (w WrapLayout) BufferColToScreenPos(col int) (rowOffset, screenCol int) {
	if col < 0 {
		col = 0
	}
	return col / w.colsPerRow, col % w.colsPerRow
}

// ScreenPosToBufferCol is the inverse of BufferColToScreenPos, clamped to
// lineLen.
func (w WrapLayout) ScreenPosToBufferCol(rowOffset, screenCol, lineLen int) int {
	col := rowOffset*w.colsPerRow + screenCol
	if col > lineLen {
		return lineLen
	}
	if col < 0 {
		return 0
	}
	return col
}

// IsContinuationRow returns true for every wrapped row after the first.
func (w WrapLayout) IsContinuationRow(rowOffset int) bool {
	return rowOffset > 0
}

// RowSpan returns the buffer columns [start, end) shown on a wrapped row of
// a line. Rows past the line's content are empty spans at lineLen.
func (w WrapLayout) RowSpan(rowOffset, lineLen int) (start, end int) {
	start = min(rowOffset*w.colsPerRow, lineLen)
	end = min(start+w.colsPerRow, lineLen)
	return start, end
}

// TotalScreenRows sums the screen rows of every line.
func (w WrapLayout) TotalScreenRows(lines Lines) int {
	total := 0
	n := lines.LineCount()
	for i := 0; i < n; i++ {
		total += w.ScreenRowsForLine(lines.LineLen(i))
	}
	return total
}

// LineStartRow returns the absolute screen row of a line's first row.
// Lines past the end return the total row count.
func (w WrapLayout) LineStartRow(lines Lines, line int) int {
	row := 0
	n := min(line, lines.LineCount())
	for i := 0; i < n; i++ {
		row += w.ScreenRowsForLine(lines.LineLen(i))
	}
	return row
}

// ScreenRowOf returns the absolute screen row of a buffer position.
func (w WrapLayout) ScreenRowOf(lines Lines, line, col int) int {
	rowOffset, _ := w.BufferColToScreenPos(min(col, lines.LineLen(line)))
	return w.LineStartRow(lines, line) + rowOffset
}
