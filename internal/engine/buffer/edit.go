package buffer

import "strings"

// Mutations. Each returns the DirtyLines it produced and also merges them
// into the accumulator drained by TakeDirty. Insertions replace an active
// selection; deletions delete the selection instead of their usual extent.

// InsertChar inserts r at the cursor and advances past it.
// A newline rune behaves like InsertNewline.
func (b *TextBuffer) InsertChar(r rune) DirtyLines {
	if r == '\n' || r == '\r' {
		return b.InsertNewline()
	}
	dirty := b.DeleteSelection()
	line := b.lines[b.cursor.Line]
	col := b.cursor.Col
	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = r
	b.lines[b.cursor.Line] = line
	b.cursor.Col++
	return b.mark(dirty.Merge(SingleLine(b.cursor.Line)))
}

// InsertNewline splits the current line at the cursor and moves to the
// start of the new line.
func (b *TextBuffer) InsertNewline() DirtyLines {
	dirty := b.DeleteSelection()
	at := b.cursor
	line := b.lines[at.Line]

	tail := make([]rune, len(line)-at.Col)
	copy(tail, line[at.Col:])
	b.lines[at.Line] = line[:at.Col:at.Col]

	b.lines = append(b.lines, nil)
	copy(b.lines[at.Line+2:], b.lines[at.Line+1:])
	b.lines[at.Line+1] = tail

	b.cursor = Position{Line: at.Line + 1}
	return b.mark(dirty.Merge(FromLineToEnd(at.Line)))
}

// InsertString inserts s at the cursor, leaving the cursor after it.
// Line endings in s are normalized. Inserting "" is a no-op.
func (b *TextBuffer) InsertString(s string) DirtyLines {
	if s == "" {
		return NoDirty()
	}
	dirty := b.DeleteSelection()
	parts := strings.Split(normalizeLineEndings(s), "\n")
	at := b.cursor
	line := b.lines[at.Line]

	head := append([]rune(nil), line[:at.Col]...)
	tail := append([]rune(nil), line[at.Col:]...)

	if len(parts) == 1 {
		ins := []rune(parts[0])
		b.lines[at.Line] = append(append(head, ins...), tail...)
		b.cursor.Col += len(ins)
		return b.mark(dirty.Merge(SingleLine(at.Line)))
	}

	added := make([][]rune, len(parts))
	added[0] = append(head, []rune(parts[0])...)
	for i := 1; i < len(parts)-1; i++ {
		added[i] = []rune(parts[i])
	}
	last := []rune(parts[len(parts)-1])
	added[len(parts)-1] = append(last, tail...)

	rest := append([][]rune(nil), b.lines[at.Line+1:]...)
	b.lines = append(append(b.lines[:at.Line], added...), rest...)
	b.cursor = Position{Line: at.Line + len(parts) - 1, Col: len(last)}
	return b.mark(dirty.Merge(FromLineToEnd(at.Line)))
}

// DeleteBackward removes the grapheme cluster before the cursor, joining
// with the previous line at column 0.
func (b *TextBuffer) DeleteBackward() DirtyLines {
	if b.HasSelection() {
		return b.DeleteSelection()
	}
	b.ClearSelection()
	to := b.cursor
	from := b.leftOf(to)
	if from == to {
		return NoDirty()
	}
	return b.mark(b.deleteRange(from, to))
}

// DeleteForward removes the grapheme cluster after the cursor, joining the
// next line at line end.
func (b *TextBuffer) DeleteForward() DirtyLines {
	if b.HasSelection() {
		return b.DeleteSelection()
	}
	b.ClearSelection()
	from := b.cursor
	to := b.rightOf(from)
	if from == to {
		return NoDirty()
	}
	return b.mark(b.deleteRange(from, to))
}

// DeleteWordBackward removes the same-class run ending at the cursor.
// At column 0 it joins with the previous line.
func (b *TextBuffer) DeleteWordBackward() DirtyLines {
	if b.HasSelection() {
		return b.DeleteSelection()
	}
	b.ClearSelection()
	to := b.cursor
	if to.Col == 0 {
		return b.DeleteBackward()
	}
	from := Position{Line: to.Line, Col: WordBoundaryLeft(b.lines[to.Line], to.Col)}
	return b.mark(b.deleteRange(from, to))
}

// DeleteWordForward removes the same-class run starting at the cursor.
// At line end it joins the next line.
func (b *TextBuffer) DeleteWordForward() DirtyLines {
	if b.HasSelection() {
		return b.DeleteSelection()
	}
	b.ClearSelection()
	from := b.cursor
	chars := b.lines[from.Line]
	if from.Col >= len(chars) {
		return b.DeleteForward()
	}
	to := Position{Line: from.Line, Col: WordBoundaryRight(chars, from.Col)}
	return b.mark(b.deleteRange(from, to))
}

// DeleteToLineEnd removes everything from the cursor to the end of the
// line. At line end it removes the line break instead. The cursor does not
// move. The selection is ignored and cleared.
func (b *TextBuffer) DeleteToLineEnd() DirtyLines {
	b.ClearSelection()
	from := b.cursor
	n := len(b.lines[from.Line])
	if from.Col >= n {
		if from.Line+1 >= len(b.lines) {
			return NoDirty()
		}
		return b.mark(b.deleteRange(from, Position{Line: from.Line + 1}))
	}
	return b.mark(b.deleteRange(from, Position{Line: from.Line, Col: n}))
}

// DeleteToLineStart removes everything before the cursor on its line. At
// column 0 it removes the preceding line break.
func (b *TextBuffer) DeleteToLineStart() DirtyLines {
	if b.HasSelection() {
		return b.DeleteSelection()
	}
	b.ClearSelection()
	to := b.cursor
	if to.Col == 0 {
		if to.Line == 0 {
			return NoDirty()
		}
		prev := to.Line - 1
		return b.mark(b.deleteRange(Position{Line: prev, Col: len(b.lines[prev])}, to))
	}
	return b.mark(b.deleteRange(Position{Line: to.Line}, to))
}
