package buffer

import "github.com/rivo/uniseg"

// graphemeStarts returns the rune offsets at which each grapheme cluster of
// chars begins, followed by len(chars).
func graphemeStarts(chars []rune) []int {
	starts := make([]int, 0, len(chars)+1)
	gr := uniseg.NewGraphemes(string(chars))
	idx := 0
	for gr.Next() {
		starts = append(starts, idx)
		idx += len(gr.Runes())
	}
	return append(starts, idx)
}

func isASCII(r rune) bool {
	return r < 0x80
}

// graphemeBoundaryLeft returns the start of the grapheme cluster before col.
// If col is inside a cluster, the start of that cluster is returned.
func graphemeBoundaryLeft(chars []rune, col int) int {
	if col <= 0 || len(chars) == 0 {
		return 0
	}
	col = min(col, len(chars))
	if isASCII(chars[col-1]) && (col == len(chars) || isASCII(chars[col])) {
		return col - 1
	}
	starts := graphemeStarts(chars)
	prev := 0
	for _, s := range starts {
		if s >= col {
			break
		}
		prev = s
	}
	return prev
}

// graphemeBoundaryRight returns the end of the grapheme cluster at col.
func graphemeBoundaryRight(chars []rune, col int) int {
	if col >= len(chars) {
		return len(chars)
	}
	if col < 0 {
		col = 0
	}
	if isASCII(chars[col]) && (col+1 == len(chars) || isASCII(chars[col+1])) {
		return col + 1
	}
	for _, s := range graphemeStarts(chars) {
		if s > col {
			return s
		}
	}
	return len(chars)
}
