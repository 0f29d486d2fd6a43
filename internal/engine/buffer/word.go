package buffer

import "unicode"

// CharClass is the word-model class of a rune.
type CharClass uint8

const (
	// ClassWhitespace covers spaces, tabs and other Unicode space.
	ClassWhitespace CharClass = iota
	// ClassLetter covers letters, digits and underscore.
	ClassLetter
	// ClassSymbol covers everything else.
	ClassSymbol
)

// String returns the string representation of the class.
func (c CharClass) String() string {
	switch c {
	case ClassWhitespace:
		return "whitespace"
	case ClassLetter:
		return "letter"
	case ClassSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// ClassOf returns the class of r.
func ClassOf(r rune) CharClass {
	switch {
	case unicode.IsSpace(r):
		return ClassWhitespace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return ClassLetter
	default:
		return ClassSymbol
	}
}

// WordBoundaryLeft returns the start of the run of same-class runes that ends
// at col. The run is classified by chars[col-1]. Returns 0 when col <= 0 and
// clamps col to len(chars).
func WordBoundaryLeft(chars []rune, col int) int {
	if col <= 0 || len(chars) == 0 {
		return 0
	}
	col = min(col, len(chars))
	class := ClassOf(chars[col-1])
	i := col
	for i > 0 && ClassOf(chars[i-1]) == class {
		i--
	}
	return i
}

// WordBoundaryRight returns the end of the run of same-class runes that
// starts at col. The run is classified by chars[col]. Returns len(chars) when
// col is at or past the end.
func WordBoundaryRight(chars []rune, col int) int {
	if col < 0 {
		col = 0
	}
	if col >= len(chars) {
		return len(chars)
	}
	class := ClassOf(chars[col])
	i := col
	for i < len(chars) && ClassOf(chars[i]) == class {
		i++
	}
	return i
}

// wordLeftTarget is the column a backward word motion from col lands on.
// Whitespace immediately left of col is skipped, then the run before it.
func wordLeftTarget(chars []rune, col int) int {
	col = min(col, len(chars))
	if col > 0 && ClassOf(chars[col-1]) == ClassWhitespace {
		col = WordBoundaryLeft(chars, col)
	}
	return WordBoundaryLeft(chars, col)
}

// wordRightTarget is the column a forward word motion from col lands on.
// Whitespace at col is skipped, then the run after it.
func wordRightTarget(chars []rune, col int) int {
	if col < len(chars) && ClassOf(chars[col]) == ClassWhitespace {
		col = WordBoundaryRight(chars, col)
	}
	return WordBoundaryRight(chars, col)
}
