package dirty

// ChangeType represents why a pane needs repainting.
type ChangeType uint8

const (
	// ChangeContent indicates buffer text changed.
	ChangeContent ChangeType = iota

	// ChangeCursor indicates the caret moved.
	ChangeCursor

	// ChangeSelection indicates the selection changed.
	ChangeSelection

	// ChangeScroll indicates the viewport scrolled.
	ChangeScroll

	// ChangeResize indicates the pane was resized.
	ChangeResize

	// ChangeFocus indicates the pane gained or lost focus.
	ChangeFocus
)

// String returns the string representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeContent:
		return "content"
	case ChangeCursor:
		return "cursor"
	case ChangeSelection:
		return "selection"
	case ChangeScroll:
		return "scroll"
	case ChangeResize:
		return "resize"
	case ChangeFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// Tracker accumulates the dirty region of one pane between frames.
// It is owned by the pane and is not safe for concurrent use.
type Tracker struct {
	pending Region

	// visibleRows is the pane's row count, used for the coalesce threshold.
	visibleRows int

	// coalesceThreshold is the fraction of rows that triggers a full redraw.
	coalesceThreshold float64

	marks int
	takes int
}

// NewTracker creates a tracker for a pane showing visibleRows rows.
// A new tracker starts fully dirty so the first frame paints everything.
func NewTracker(visibleRows int) *Tracker {
	return &Tracker{
		pending:           FullViewport(),
		visibleRows:       max(0, visibleRows),
		coalesceThreshold: 0.5,
	}
}

// SetVisibleRows updates the pane height and marks a full redraw.
func (t *Tracker) SetVisibleRows(rows int) {
	t.visibleRows = max(0, rows)
	t.MarkFull()
}

// SetCoalesceThreshold sets the fraction of the pane that, once dirty,
// is promoted to a full redraw.
func (t *Tracker) SetCoalesceThreshold(threshold float64) {
	t.coalesceThreshold = min(1, max(0, threshold))
}

// Add merges r into the pending region.
func (t *Tracker) Add(r Region) {
	if !r.IsDirty() {
		return
	}
	t.marks++
	t.pending = t.pending.Merge(r)
	if t.pending.Kind == KindLines && t.visibleRows > 0 {
		if float64(t.pending.RowCount()) > t.coalesceThreshold*float64(t.visibleRows) {
			t.pending = FullViewport()
		}
	}
}

// MarkRow marks a single viewport row dirty.
func (t *Tracker) MarkRow(row int) {
	t.Add(SingleRow(row))
}

// MarkFull marks the whole pane dirty.
func (t *Tracker) MarkFull() {
	t.Add(FullViewport())
}

// MarkChange marks the pane based on the kind of change. Scrolls, resizes
// and focus changes repaint everything; other changes repaint r.
func (t *Tracker) MarkChange(ct ChangeType, r Region) {
	switch ct {
	case ChangeScroll, ChangeResize, ChangeFocus:
		t.MarkFull()
	default:
		t.Add(r)
	}
}

// IsDirty returns true if anything is pending.
func (t *Tracker) IsDirty() bool {
	return t.pending.IsDirty()
}

// Peek returns the pending region without clearing it.
func (t *Tracker) Peek() Region {
	return t.pending
}

// Take returns the pending region and clears it.
func (t *Tracker) Take() Region {
	r := t.pending
	t.pending = NoRegion()
	t.takes++
	return r
}

// Stats returns statistics about the tracker state.
func (t *Tracker) Stats() TrackerStats {
	return TrackerStats{
		Pending:       t.pending,
		Marks:         t.marks,
		Takes:         t.takes,
		VisibleRows:   t.visibleRows,
		CoalThreshold: t.coalesceThreshold,
	}
}

// TrackerStats contains statistics about the tracker state.
type TrackerStats struct {
	Pending       Region
	Marks         int
	Takes         int
	VisibleRows   int
	CoalThreshold float64
}
