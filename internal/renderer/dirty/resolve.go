package dirty

import (
	"github.com/dshills/softwrap/internal/engine/buffer"
	"github.com/dshills/softwrap/internal/renderer/layout"
	"github.com/dshills/softwrap/internal/renderer/viewport"
)

// Resolve converts buffer-space dirty lines into the pane rows they cover.
//
// Single and Range values are mapped to absolute screen rows through the
// wrapped row counts of every line before them, intersected with the
// visible window and returned relative to the first visible row.
// FromLineToEnd repaints the whole pane whenever its first row is at or
// above the last visible row, since any later row may have moved.
// Lines past the end of the buffer resolve to NoRegion.
func Resolve(d buffer.DirtyLines, vp *viewport.Viewport, wl layout.WrapLayout, lines layout.Lines) Region {
	first := vp.FirstVisibleScreenRow()
	last := first + vp.VisibleScreenRows() - 1
	n := lines.LineCount()

	switch d.Kind {
	case buffer.DirtySingle, buffer.DirtyRange:
		from, to := d.From, d.To
		if d.Kind == buffer.DirtySingle {
			to = from + 1
		}
		if from < 0 {
			from = 0
		}
		to = min(to, n)
		if from >= to {
			return NoRegion()
		}

		rowStart := 0
		for i := 0; i < from; i++ {
			rowStart += wl.ScreenRowsForLine(lines.LineLen(i))
		}
		if rowStart > last {
			return NoRegion()
		}
		rowEnd := rowStart
		for i := from; i < to && rowEnd <= last; i++ {
			rowEnd += wl.ScreenRowsForLine(lines.LineLen(i))
		}

		lo, hi := max(rowStart, first), min(rowEnd, last+1)
		if lo >= hi {
			return NoRegion()
		}
		return LineRegion(lo-first, hi-first)

	case buffer.DirtyFromLineToEnd:
		if d.From >= n {
			return NoRegion()
		}
		if wl.LineStartRow(lines, d.From) <= last {
			return FullViewport()
		}
		return NoRegion()

	default:
		return NoRegion()
	}
}

// Reflow widens a Single or Range report to FromLineToEnd when the edit
// changed the document's total wrapped row count. A line that gained or
// lost a wrapped row pushes every later row, which a local repaint would
// miss. rowsBefore and rowsAfter must be computed with the same layout.
func Reflow(d buffer.DirtyLines, rowsBefore, rowsAfter int) buffer.DirtyLines {
	if rowsBefore == rowsAfter {
		return d
	}
	switch d.Kind {
	case buffer.DirtySingle, buffer.DirtyRange:
		return buffer.FromLineToEnd(d.From)
	default:
		return d
	}
}
