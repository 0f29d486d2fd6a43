package viewport

import "math"

// ScrollState is the persistable scroll position of a viewport.
type ScrollState struct {
	OffsetPx float64
}

// GetScrollState returns the current scroll state.
func (v *Viewport) GetScrollState() ScrollState {
	return ScrollState{OffsetPx: v.scrollOffsetPx}
}

// SetScrollState restores a saved state, clamped against totalRows.
func (v *Viewport) SetScrollState(state ScrollState, totalRows int) {
	v.SetScrollOffsetPxWrapped(state.OffsetPx, totalRows)
}

// MaxScrollOffsetPx returns the largest offset allowed for a document of
// totalRows wrapped rows: max(0, (totalRows - VisibleScreenRows) * line height).
func (v *Viewport) MaxScrollOffsetPx(totalRows int) float64 {
	rows := max(0, totalRows-v.VisibleScreenRows())
	return float64(rows) * v.lineHeight()
}

// SetScrollOffsetPxWrapped sets the scroll offset clamped to
// [0, MaxScrollOffsetPx(totalRows)]. totalRows must be recomputed from the
// buffer by the caller for every gesture.
func (v *Viewport) SetScrollOffsetPxWrapped(px float64, totalRows int) {
	if math.IsNaN(px) {
		px = 0
	}
	v.scrollOffsetPx = math.Max(0, math.Min(px, v.MaxScrollOffsetPx(totalRows)))
}

// ScrollByPx scrolls by a pixel delta. Positive scrolls toward the end.
func (v *Viewport) ScrollByPx(deltaPx float64, totalRows int) {
	v.SetScrollOffsetPxWrapped(v.scrollOffsetPx+deltaPx, totalRows)
}

// ScrollByRows scrolls by whole rows.
func (v *Viewport) ScrollByRows(rows int, totalRows int) {
	v.ScrollByPx(float64(rows)*v.lineHeight(), totalRows)
}

// ScrollToRow puts row at the top edge, snapped to the row boundary.
func (v *Viewport) ScrollToRow(row int, totalRows int) {
	v.SetScrollOffsetPxWrapped(float64(row)*v.lineHeight(), totalRows)
}

// PageDown scrolls down by one page, keeping 2 rows of overlap.
func (v *Viewport) PageDown(totalRows int) {
	v.ScrollByRows(v.pageSize(), totalRows)
}

// PageUp scrolls up by one page, keeping 2 rows of overlap.
func (v *Viewport) PageUp(totalRows int) {
	v.ScrollByRows(-v.pageSize(), totalRows)
}

func (v *Viewport) pageSize() int {
	return max(1, v.FullyVisibleScreenRows()-2)
}

// ScrollToBottom scrolls as far down as the clamp allows.
func (v *Viewport) ScrollToBottom(totalRows int) {
	v.scrollOffsetPx = v.MaxScrollOffsetPx(totalRows)
}

// ScrollPercent returns how far through the document we've scrolled (0.0 to 1.0).
func (v *Viewport) ScrollPercent(totalRows int) float64 {
	maxPx := v.MaxScrollOffsetPx(totalRows)
	if maxPx <= 0 {
		return 0
	}
	return math.Min(1, v.scrollOffsetPx/maxPx)
}

// EnsureVisibleWrapped scrolls the least amount needed, in whole rows, so
// that absolute screen row stays at least margin rows away from the top and
// bottom edges. It returns true if the scroll offset changed.
//
// The bottom edge is the last fully visible row, so with margin 1 the row
// lands at most VisibleScreenRows()-3 rows from the top unless the end of
// the document clamps the scroll.
func (v *Viewport) EnsureVisibleWrapped(row, margin, totalRows int) bool {
	return v.ensureVisible(row, margin, margin, totalRows)
}

// EnsureCursorVisible is EnsureVisibleWrapped using the viewport's own
// configured margins.
func (v *Viewport) EnsureCursorVisible(row, totalRows int) bool {
	m := v.EffectiveMargins()
	return v.ensureVisible(row, m.Top, m.Bottom, totalRows)
}

func (v *Viewport) ensureVisible(row, top, bottom, totalRows int) bool {
	lh := v.lineHeight()
	if lh <= 0 {
		return false
	}
	old := v.scrollOffsetPx
	full := v.FullyVisibleScreenRows()
	top, bottom = clampRowMargins(top, bottom, full)

	first := v.FirstVisibleScreenRow()
	frac := v.ScrollFractionPx()

	switch {
	case row < first+top || (row == first+top && frac > 0):
		first = row - top
	case row > first+full-1-bottom:
		first = row - (full - 1 - bottom)
	default:
		return false
	}

	v.SetScrollOffsetPxWrapped(float64(first)*lh, totalRows)
	return v.scrollOffsetPx != old
}
