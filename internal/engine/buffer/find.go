package buffer

import "strings"

// Find searches forward from `from` for the literal query, wrapping to the
// start of the buffer once. Queries spanning a line break never match.
// It returns the match as [start, end).
func (b *TextBuffer) Find(query string, from Position) (start, end Position, ok bool) {
	needle := []rune(query)
	if len(needle) == 0 || strings.ContainsAny(query, "\r\n") {
		return Position{}, Position{}, false
	}
	from = b.clamp(from)
	n := len(b.lines)
	for i := 0; i <= n; i++ {
		line := (from.Line + i) % n
		startCol := 0
		if i == 0 {
			startCol = from.Col
		}
		col := indexRunes(b.lines[line], needle, startCol)
		if i == n && col >= from.Col {
			// Back on the starting line; anything at or after from.Col was
			// already rejected on the first pass.
			col = -1
		}
		if col >= 0 {
			return Position{Line: line, Col: col}, Position{Line: line, Col: col + len(needle)}, true
		}
	}
	return Position{}, Position{}, false
}

// FindNext searches for query starting after the current selection or
// cursor and selects the match.
func (b *TextBuffer) FindNext(query string) bool {
	from := b.cursor
	if _, end, ok := b.SelectionRange(); ok {
		from = end
	}
	start, end, ok := b.Find(query, from)
	if !ok {
		return false
	}
	b.anchor = &start
	b.cursor = end
	b.mark(SingleLine(start.Line))
	return true
}

func indexRunes(hay, needle []rune, from int) int {
	for i := from; i+len(needle) <= len(hay); i++ {
		match := true
		for j, r := range needle {
			if hay[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
