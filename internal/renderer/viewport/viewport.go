// Package viewport provides the per-pane scroll state of a soft-wrapped
// view.
//
// Scroll position is a pixel offset into the wrapped screen-row space. The
// first visible row and the sub-row remainder are both derived from it, so
// scrolling can be continuous while rows still map to whole buffer lines.
package viewport

import (
	"math"

	"github.com/dshills/softwrap/internal/renderer/layout"
)

// Viewport is the scroll state and content rectangle of one pane.
// A Viewport belongs to exactly one pane and is not safe for concurrent use.
type Viewport struct {
	scrollOffsetPx float64

	// Net content rectangle, already excluding any chrome.
	widthPx  float64
	heightPx float64

	metrics layout.Metrics
	margins MarginConfig
}

// NewViewport creates a viewport with the given cell metrics.
// The content rectangle starts empty; call Resize before use.
func NewViewport(m layout.Metrics) *Viewport {
	return &Viewport{
		metrics: m,
		margins: DefaultMargins(),
	}
}

// Resize sets the content rectangle. Negative sizes are treated as zero.
// The scroll offset is not re-clamped here because the row total depends on
// the new width; callers re-clamp with SetScrollOffsetPxWrapped.
func (v *Viewport) Resize(widthPx, heightPx float64) {
	v.widthPx = max(0, widthPx)
	v.heightPx = max(0, heightPx)
}

// WidthPx returns the content width.
func (v *Viewport) WidthPx() float64 { return v.widthPx }

// HeightPx returns the content height.
func (v *Viewport) HeightPx() float64 { return v.heightPx }

// Metrics returns the cell metrics.
func (v *Viewport) Metrics() layout.Metrics { return v.metrics }

// Layout returns the wrap layout for the current content width.
// Compute it once per event and share it between painting and hit testing.
func (v *Viewport) Layout() layout.WrapLayout {
	return layout.NewWrapLayout(v.widthPx, v.metrics)
}

// ScrollOffsetPx returns the raw scroll offset.
func (v *Viewport) ScrollOffsetPx() float64 { return v.scrollOffsetPx }

func (v *Viewport) lineHeight() float64 {
	return v.metrics.LineHeightPx
}

// FirstVisibleScreenRow returns floor(offset / line height).
func (v *Viewport) FirstVisibleScreenRow() int {
	lh := v.lineHeight()
	if lh <= 0 {
		return 0
	}
	return int(math.Floor(v.scrollOffsetPx / lh))
}

// ScrollFractionPx returns how far the first visible row is scrolled past
// its top edge, in [0, line height).
func (v *Viewport) ScrollFractionPx() float64 {
	return v.scrollOffsetPx - float64(v.FirstVisibleScreenRow())*v.lineHeight()
}

// VisibleScreenRows returns ceil(height / line height) + 1, the number of
// rows that may be at least partly on screen at any scroll fraction.
func (v *Viewport) VisibleScreenRows() int {
	lh := v.lineHeight()
	if lh <= 0 {
		return 1
	}
	return int(math.Ceil(v.heightPx/lh)) + 1
}

// FullyVisibleScreenRows returns the number of rows that fit entirely in the
// content height, never less than 1.
func (v *Viewport) FullyVisibleScreenRows() int {
	lh := v.lineHeight()
	if lh <= 0 {
		return 1
	}
	return max(1, int(math.Floor(v.heightPx/lh)))
}

// VisibleRowRange returns the absolute screen rows [start, end) that may be
// drawn, limited to totalRows.
func (v *Viewport) VisibleRowRange(totalRows int) (start, end int) {
	start = v.FirstVisibleScreenRow()
	end = min(start+v.VisibleScreenRows(), totalRows)
	return start, max(start, end)
}

// IsRowVisible returns true if row is inside the visible window.
func (v *Viewport) IsRowVisible(row int) bool {
	first := v.FirstVisibleScreenRow()
	return row >= first && row < first+v.VisibleScreenRows()
}

// RowToViewRow converts an absolute screen row to a viewport-relative one.
// ok is false if the row is outside the visible window.
func (v *Viewport) RowToViewRow(row int) (viewRow int, ok bool) {
	if !v.IsRowVisible(row) {
		return 0, false
	}
	return row - v.FirstVisibleScreenRow(), true
}

// BufferLineForScreenRow walks the buffer lines accumulating wrapped row
// counts and returns the line containing absolute screen row target along
// with the row offset inside that line. ok is false if target is negative
// or past the last row; line and rowOffset then name the last row.
//
// The walk is linear in the number of lines before target. It is never
// cached because any edit can shift every later row.
func BufferLineForScreenRow(target int, lines layout.Lines, wl layout.WrapLayout) (line, rowOffset int, ok bool) {
	n := lines.LineCount()
	if n == 0 {
		return 0, 0, false
	}
	if target < 0 {
		return 0, 0, false
	}
	acc := 0
	for i := 0; i < n; i++ {
		rows := wl.ScreenRowsForLine(lines.LineLen(i))
		if acc+rows > target {
			return i, target - acc, true
		}
		acc += rows
	}
	last := n - 1
	return last, wl.ScreenRowsForLine(lines.LineLen(last)) - 1, false
}

// BufferLineForScreenRow is the method form of the package function using
// the viewport's current layout.
func (v *Viewport) BufferLineForScreenRow(target int, lines layout.Lines) (line, rowOffset int, ok bool) {
	return BufferLineForScreenRow(target, lines, v.Layout())
}

// Clone returns a copy of the viewport.
func (v *Viewport) Clone() *Viewport {
	c := *v
	return &c
}
