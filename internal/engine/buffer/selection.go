package buffer

import "strings"

// SetSelectionAnchor sets the fixed end of the selection. The position is
// clamped to the buffer.
func (b *TextBuffer) SetSelectionAnchor(pos Position) {
	p := b.clamp(pos)
	b.anchor = &p
}

// SetSelectionAnchorAtCursor starts a selection at the cursor.
func (b *TextBuffer) SetSelectionAnchorAtCursor() {
	b.SetSelectionAnchor(b.cursor)
}

// ClearSelection removes the selection anchor.
func (b *TextBuffer) ClearSelection() {
	b.anchor = nil
}

// SelectionAnchor returns the anchor, if any.
func (b *TextBuffer) SelectionAnchor() (Position, bool) {
	if b.anchor == nil {
		return Position{}, false
	}
	return *b.anchor, true
}

// HasSelection returns true if an anchor is set and differs from the cursor.
func (b *TextBuffer) HasSelection() bool {
	return b.anchor != nil && *b.anchor != b.cursor
}

// SelectionRange returns the selection as an ordered (start, end) pair.
// ok is false when there is no non-empty selection.
func (b *TextBuffer) SelectionRange() (start, end Position, ok bool) {
	if !b.HasSelection() {
		return Position{}, Position{}, false
	}
	start, end = orderPositions(*b.anchor, b.cursor)
	return start, end, true
}

// SelectedText returns the selected text joined with LF.
func (b *TextBuffer) SelectedText() (string, bool) {
	start, end, ok := b.SelectionRange()
	if !ok {
		return "", false
	}
	return b.textBetween(start, end), true
}

func (b *TextBuffer) textBetween(start, end Position) string {
	if start.Line == end.Line {
		return string(b.lines[start.Line][start.Col:end.Col])
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Line][start.Col:]))
	for l := start.Line + 1; l < end.Line; l++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[l]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Line][:end.Col]))
	return sb.String()
}

// SelectAll anchors at the buffer start and moves the cursor to the end.
func (b *TextBuffer) SelectAll() {
	b.anchor = &Position{}
	b.cursor = b.EndPosition()
}

// SelectWordAt selects the same-class run containing col on the cursor's
// line. A col past the end selects the run of the last rune. The anchor goes
// to the run start and the cursor to its end. An empty line selects nothing.
func (b *TextBuffer) SelectWordAt(col int) DirtyLines {
	line := b.cursor.Line
	chars := b.lines[line]
	if len(chars) == 0 {
		return NoDirty()
	}
	col = max(0, min(col, len(chars)-1))
	start := WordBoundaryLeft(chars, col+1)
	end := WordBoundaryRight(chars, col)
	b.anchor = &Position{Line: line, Col: start}
	b.cursor = Position{Line: line, Col: end}
	return b.mark(SingleLine(line))
}

// SelectLine selects an entire line, including its line break when one
// follows. Returns NoDirty if line is out of range.
func (b *TextBuffer) SelectLine(line int) DirtyLines {
	if line < 0 || line >= len(b.lines) {
		return NoDirty()
	}
	b.anchor = &Position{Line: line}
	if line+1 < len(b.lines) {
		b.cursor = Position{Line: line + 1}
		return b.mark(LineRange(line, line+2))
	}
	b.cursor = Position{Line: line, Col: len(b.lines[line])}
	return b.mark(SingleLine(line))
}

// DeleteSelection removes the selected text and places the cursor at the
// start of the former selection. The anchor is always cleared, so an empty
// selection does not outlive the edit. Returns NoDirty without a selection.
func (b *TextBuffer) DeleteSelection() DirtyLines {
	start, end, ok := b.SelectionRange()
	b.anchor = nil
	if !ok {
		return NoDirty()
	}
	return b.mark(b.deleteRange(start, end))
}

// deleteRange removes text in [start, end) and leaves the cursor at start.
func (b *TextBuffer) deleteRange(start, end Position) DirtyLines {
	head := b.lines[start.Line][:start.Col]
	tail := b.lines[end.Line][end.Col:]
	joined := make([]rune, 0, len(head)+len(tail))
	joined = append(joined, head...)
	joined = append(joined, tail...)

	b.lines[start.Line] = joined
	if end.Line > start.Line {
		b.lines = append(b.lines[:start.Line+1], b.lines[end.Line+1:]...)
	}
	b.cursor = start
	if end.Line > start.Line {
		return FromLineToEnd(start.Line)
	}
	return SingleLine(start.Line)
}
