// Package dirty translates buffer-space change reports into the screen rows
// of one pane that need repainting, and accumulates them between frames.
package dirty

import "fmt"

// Kind identifies the shape of a Region.
type Kind uint8

const (
	// KindNone means nothing needs repainting.
	KindNone Kind = iota
	// KindLines means viewport rows [FromRow, ToRow) need repainting.
	KindLines
	// KindFullViewport means the whole pane needs repainting.
	KindFullViewport
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindLines:
		return "lines"
	case KindFullViewport:
		return "full"
	default:
		return "unknown"
	}
}

// Region is a set of viewport-relative screen rows to repaint.
// Row 0 is the first visible screen row of the pane.
type Region struct {
	Kind    Kind
	FromRow int // inclusive
	ToRow   int // exclusive
}

// NoRegion returns the empty region.
func NoRegion() Region {
	return Region{}
}

// LineRegion returns rows [from, to). An empty range is NoRegion.
func LineRegion(from, to int) Region {
	if from < 0 {
		from = 0
	}
	if to <= from {
		return NoRegion()
	}
	return Region{Kind: KindLines, FromRow: from, ToRow: to}
}

// SingleRow returns a region for one row.
func SingleRow(row int) Region {
	return LineRegion(row, row+1)
}

// FullViewport returns the region covering the whole pane.
func FullViewport() Region {
	return Region{Kind: KindFullViewport}
}

// IsDirty returns true unless the region is empty.
func (r Region) IsDirty() bool {
	return r.Kind != KindNone
}

// IsFull returns true for the full-viewport region.
func (r Region) IsFull() bool {
	return r.Kind == KindFullViewport
}

// ContainsRow returns true if viewport row is inside the region.
func (r Region) ContainsRow(row int) bool {
	switch r.Kind {
	case KindLines:
		return row >= r.FromRow && row < r.ToRow
	case KindFullViewport:
		return true
	default:
		return false
	}
}

// RowCount returns the number of rows in a Lines region. It is 0 for
// NoRegion and -1 for FullViewport, whose size depends on the pane.
func (r Region) RowCount() int {
	switch r.Kind {
	case KindLines:
		return r.ToRow - r.FromRow
	case KindFullViewport:
		return -1
	default:
		return 0
	}
}

// Merge combines two regions into the smallest one covering both.
// FullViewport absorbs everything and NoRegion is the identity; two Lines
// regions merge to their envelope. Merge is commutative, associative and
// idempotent.
func (r Region) Merge(other Region) Region {
	switch {
	case r.Kind == KindNone:
		return other
	case other.Kind == KindNone:
		return r
	case r.Kind == KindFullViewport || other.Kind == KindFullViewport:
		return FullViewport()
	default:
		return LineRegion(min(r.FromRow, other.FromRow), max(r.ToRow, other.ToRow))
	}
}

// Clip limits a Lines region to [0, rows). FullViewport and NoRegion are
// returned unchanged.
func (r Region) Clip(rows int) Region {
	if r.Kind != KindLines {
		return r
	}
	return LineRegion(r.FromRow, min(r.ToRow, rows))
}

// String returns a human-readable representation of the region.
func (r Region) String() string {
	switch r.Kind {
	case KindLines:
		return fmt.Sprintf("Lines(%d..%d)", r.FromRow, r.ToRow)
	case KindFullViewport:
		return "FullViewport"
	default:
		return "None"
	}
}
