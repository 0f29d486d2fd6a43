package buffer

import "fmt"

// DirtyKind identifies the shape of a DirtyLines value.
type DirtyKind uint8

const (
	// DirtyNone means nothing changed.
	DirtyNone DirtyKind = iota
	// DirtySingle means exactly one line's content changed.
	DirtySingle
	// DirtyRange means lines in [From, To) changed.
	DirtyRange
	// DirtyFromLineToEnd means From and every line after it may have moved.
	DirtyFromLineToEnd
)

// String returns the string representation of the kind.
func (k DirtyKind) String() string {
	switch k {
	case DirtyNone:
		return "none"
	case DirtySingle:
		return "single"
	case DirtyRange:
		return "range"
	case DirtyFromLineToEnd:
		return "from-line-to-end"
	default:
		return "unknown"
	}
}

// DirtyLines describes which buffer lines a mutation changed.
//
// For DirtySingle only From is meaningful. For DirtyRange To is exclusive.
// For DirtyFromLineToEnd To is ignored.
type DirtyLines struct {
	Kind DirtyKind
	From int
	To   int
}

// NoDirty returns a DirtyLines that reports no change.
func NoDirty() DirtyLines {
	return DirtyLines{}
}

// SingleLine returns a DirtyLines for one line.
func SingleLine(line int) DirtyLines {
	return DirtyLines{Kind: DirtySingle, From: line, To: line + 1}
}

// LineRange returns a DirtyLines for lines in [from, to).
// An empty range is NoDirty and a one-line range is SingleLine.
func LineRange(from, to int) DirtyLines {
	switch {
	case to <= from:
		return NoDirty()
	case to == from+1:
		return SingleLine(from)
	default:
		return DirtyLines{Kind: DirtyRange, From: from, To: to}
	}
}

// FromLineToEnd returns a DirtyLines covering line and everything after it.
func FromLineToEnd(line int) DirtyLines {
	return DirtyLines{Kind: DirtyFromLineToEnd, From: line}
}

// end returns the exclusive end line of a bounded value.
func (d DirtyLines) end() int {
	if d.Kind == DirtySingle {
		return d.From + 1
	}
	return d.To
}

// Merge combines two dirty descriptions into the smallest value that covers
// both. Merge is commutative, associative and idempotent, and NoDirty is its
// identity.
func (d DirtyLines) Merge(other DirtyLines) DirtyLines {
	if d.Kind == DirtyNone {
		return other
	}
	if other.Kind == DirtyNone {
		return d
	}
	if d.Kind == DirtyFromLineToEnd || other.Kind == DirtyFromLineToEnd {
		return FromLineToEnd(min(d.From, other.From))
	}
	return LineRange(min(d.From, other.From), max(d.end(), other.end()))
}

// Contains returns true if line is covered by d.
func (d DirtyLines) Contains(line int) bool {
	switch d.Kind {
	case DirtySingle, DirtyRange:
		return line >= d.From && line < d.end()
	case DirtyFromLineToEnd:
		return line >= d.From
	default:
		return false
	}
}

// String returns a human-readable representation of the dirty lines.
func (d DirtyLines) String() string {
	switch d.Kind {
	case DirtySingle:
		return fmt.Sprintf("Single(%d)", d.From)
	case DirtyRange:
		return fmt.Sprintf("Range(%d..%d)", d.From, d.To)
	case DirtyFromLineToEnd:
		return fmt.Sprintf("FromLineToEnd(%d)", d.From)
	default:
		return "None"
	}
}
