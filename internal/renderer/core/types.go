// Package core holds the cell surface types shared by the renderer and its
// backends. It exists so that backend does not import renderer.
package core

import "fmt"

// Attribute is a set of text attribute flags.
type Attribute uint8

const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim
	AttrUnderline
	AttrReverse
)

// Has returns true if a contains attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	R, G, B uint8
	// Indexed colors keep the palette index in R.
	Indexed bool
	Set     bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{}

// RGB returns a true color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// PaletteColor returns an indexed palette color.
func PaletteColor(index uint8) Color {
	return Color{R: index, Indexed: true, Set: true}
}

// IsDefault returns true for the terminal default color.
func (c Color) IsDefault() bool {
	return !c.Set
}

func (c Color) String() string {
	switch {
	case !c.Set:
		return "default"
	case c.Indexed:
		return fmt.Sprintf("idx(%d)", c.R)
	default:
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
}

// Style is the visual style of a cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the terminal default style.
func DefaultStyle() Style {
	return Style{}
}

// WithForeground returns s with fg as its foreground.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// Bold returns s with the bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Dim returns s with the dim attribute added.
func (s Style) Dim() Style {
	s.Attributes |= AttrDim
	return s
}

// Underline returns s with the underline attribute added.
func (s Style) Underline() Style {
	s.Attributes |= AttrUnderline
	return s
}

// Reverse returns s with the reverse video attribute added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Cell is one character cell. Every buffer column occupies exactly one cell.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// NewCell returns a cell showing r in style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// Rect is a rectangle of cells. Bottom and Right are exclusive.
type Rect struct {
	Top, Left, Bottom, Right int
}

// RectFromSize returns the rectangle at (top, left) with the given size.
func RectFromSize(top, left, height, width int) Rect {
	return Rect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the width in cells.
func (r Rect) Width() int {
	return max(0, r.Right-r.Left)
}

// Height returns the height in cells.
func (r Rect) Height() int {
	return max(0, r.Bottom-r.Top)
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains returns true if cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// SplitColumns divides r into n side-by-side rectangles. Leftover columns
// go to the last one.
func (r Rect) SplitColumns(n int) []Rect {
	if n <= 0 {
		return nil
	}
	w := r.Width() / n
	out := make([]Rect, n)
	left := r.Left
	for i := range out {
		right := left + w
		if i == n-1 {
			right = r.Right
		}
		out[i] = Rect{Top: r.Top, Left: left, Bottom: r.Bottom, Right: right}
		left = right
	}
	return out
}
