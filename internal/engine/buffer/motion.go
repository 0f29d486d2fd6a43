package buffer

// Cursor-only movement. None of these report dirty lines; the caller decides
// whether a cursor move needs a repaint.
//
// Every Move* clears the selection and every Select* extends it, anchoring at
// the cursor first if no anchor is set.

// MoveLeft moves one grapheme cluster left, wrapping to the end of the
// previous line. The start of the buffer is a no-op.
func (b *TextBuffer) MoveLeft() {
	b.ClearSelection()
	b.cursor = b.leftOf(b.cursor)
}

// MoveRight moves one grapheme cluster right, wrapping to the start of the
// next line. The end of the buffer is a no-op.
func (b *TextBuffer) MoveRight() {
	b.ClearSelection()
	b.cursor = b.rightOf(b.cursor)
}

// MoveUp moves to the previous line, clamping the column.
func (b *TextBuffer) MoveUp() {
	b.ClearSelection()
	b.cursor = b.above(b.cursor)
}

// MoveDown moves to the next line, clamping the column.
func (b *TextBuffer) MoveDown() {
	b.ClearSelection()
	b.cursor = b.below(b.cursor)
}

// MoveWordLeft moves to the start of the previous word.
func (b *TextBuffer) MoveWordLeft() {
	b.ClearSelection()
	b.cursor = b.wordLeftOf(b.cursor)
}

// MoveWordRight moves to the end of the next word.
func (b *TextBuffer) MoveWordRight() {
	b.ClearSelection()
	b.cursor = b.wordRightOf(b.cursor)
}

// MoveToLineStart moves to column 0.
func (b *TextBuffer) MoveToLineStart() {
	b.ClearSelection()
	b.cursor.Col = 0
}

// MoveToLineEnd moves past the last rune of the line.
func (b *TextBuffer) MoveToLineEnd() {
	b.ClearSelection()
	b.cursor.Col = len(b.lines[b.cursor.Line])
}

// MoveToBufferStart moves to (0, 0).
func (b *TextBuffer) MoveToBufferStart() {
	b.ClearSelection()
	b.cursor = Position{}
}

// MoveToBufferEnd moves past the last rune of the last line.
func (b *TextBuffer) MoveToBufferEnd() {
	b.ClearSelection()
	b.cursor = b.EndPosition()
}

// SetCursor moves the cursor to pos, clamped, and clears the selection.
func (b *TextBuffer) SetCursor(pos Position) {
	b.ClearSelection()
	b.cursor = b.clamp(pos)
}

// MoveCursorPreservingSelection moves the cursor to pos, clamped, keeping
// the anchor. Used while dragging a selection.
func (b *TextBuffer) MoveCursorPreservingSelection(pos Position) {
	b.cursor = b.clamp(pos)
}

// SelectLeft extends the selection one grapheme cluster left.
func (b *TextBuffer) SelectLeft() { b.extend(b.leftOf(b.cursor)) }

// SelectRight extends the selection one grapheme cluster right.
func (b *TextBuffer) SelectRight() { b.extend(b.rightOf(b.cursor)) }

// SelectUp extends the selection one line up.
func (b *TextBuffer) SelectUp() { b.extend(b.above(b.cursor)) }

// SelectDown extends the selection one line down.
func (b *TextBuffer) SelectDown() { b.extend(b.below(b.cursor)) }

// SelectWordLeft extends the selection to the start of the previous word.
func (b *TextBuffer) SelectWordLeft() { b.extend(b.wordLeftOf(b.cursor)) }

// SelectWordRight extends the selection to the end of the next word.
func (b *TextBuffer) SelectWordRight() { b.extend(b.wordRightOf(b.cursor)) }

// SelectToLineStart extends the selection to column 0.
func (b *TextBuffer) SelectToLineStart() {
	b.extend(Position{Line: b.cursor.Line})
}

// SelectToLineEnd extends the selection to the end of the line.
func (b *TextBuffer) SelectToLineEnd() {
	b.extend(Position{Line: b.cursor.Line, Col: len(b.lines[b.cursor.Line])})
}

// SelectToBufferStart extends the selection to (0, 0).
func (b *TextBuffer) SelectToBufferStart() { b.extend(Position{}) }

// SelectToBufferEnd extends the selection to the end of the buffer.
func (b *TextBuffer) SelectToBufferEnd() { b.extend(b.EndPosition()) }

func (b *TextBuffer) extend(to Position) {
	if b.anchor == nil {
		b.SetSelectionAnchorAtCursor()
	}
	b.cursor = to
}

func (b *TextBuffer) leftOf(p Position) Position {
	switch {
	case p.Col > 0:
		p.Col = graphemeBoundaryLeft(b.lines[p.Line], p.Col)
	case p.Line > 0:
		p.Line--
		p.Col = len(b.lines[p.Line])
	}
	return p
}

func (b *TextBuffer) rightOf(p Position) Position {
	switch {
	case p.Col < len(b.lines[p.Line]):
		p.Col = graphemeBoundaryRight(b.lines[p.Line], p.Col)
	case p.Line+1 < len(b.lines):
		p.Line++
		p.Col = 0
	}
	return p
}

func (b *TextBuffer) above(p Position) Position {
	if p.Line > 0 {
		p.Line--
		p.Col = min(p.Col, len(b.lines[p.Line]))
	}
	return p
}

func (b *TextBuffer) below(p Position) Position {
	if p.Line+1 < len(b.lines) {
		p.Line++
		p.Col = min(p.Col, len(b.lines[p.Line]))
	}
	return p
}

// wordLeftOf crosses to the end of the previous line at column 0.
func (b *TextBuffer) wordLeftOf(p Position) Position {
	if p.Col == 0 {
		if p.Line == 0 {
			return p
		}
		p.Line--
		p.Col = len(b.lines[p.Line])
		return p
	}
	p.Col = wordLeftTarget(b.lines[p.Line], p.Col)
	return p
}

// wordRightOf crosses to the start of the next line at line end.
func (b *TextBuffer) wordRightOf(p Position) Position {
	chars := b.lines[p.Line]
	if p.Col >= len(chars) {
		if p.Line+1 >= len(b.lines) {
			return p
		}
		p.Line++
		p.Col = 0
		return p
	}
	p.Col = wordRightTarget(chars, p.Col)
	return p
}
