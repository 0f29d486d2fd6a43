// Package gutter renders the line-number column to the left of a pane's
// text.
//
// The gutter is chrome: its width is taken out of the pane before the
// content width, and therefore the wrap layout, is derived. Because the
// width grows with the number of digits in the line count, an edit that
// crosses a power of ten changes the content width of every pane showing
// the buffer. SetLineCount reports that so the caller can lay the pane out
// again before resolving dirty rows.
package gutter

// Config holds gutter configuration.
type Config struct {
	// ShowLineNumbers enables the gutter. With it off the width is 0.
	ShowLineNumbers bool

	// MinLineNumberWidth is the minimum number of digit cells.
	MinLineNumberWidth int

	// Mode selects absolute, relative or hybrid numbering.
	Mode LineNumberMode

	// WrapMarker is drawn on continuation rows of a wrapped line.
	// Zero leaves them blank.
	WrapMarker rune
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		ShowLineNumbers:    true,
		MinLineNumberWidth: 3,
		Mode:               LineNumberAbsolute,
		WrapMarker:         '↪',
	}
}

// CellStyle describes how to style a gutter cell.
type CellStyle uint8

const (
	StyleNormal CellStyle = iota
	StyleCurrentLine
	StyleDim
)

// Cell represents a single gutter cell.
type Cell struct {
	Rune  rune
	Style CellStyle
}

// Gutter tracks the width and current line of one pane's gutter.
type Gutter struct {
	config Config

	width       int
	lineCount   int
	currentLine int
	numbers     *LineNumberFormatter
}

// New creates a new gutter with the given configuration.
func New(config Config) *Gutter {
	g := &Gutter{config: config, lineCount: 1}
	g.numbers = NewLineNumberFormatter(config.Mode, 0)
	g.recalc()
	return g
}

// Width returns the total gutter width in cells, including the separator.
func (g *Gutter) Width() int {
	return g.width
}

// Config returns the current configuration.
func (g *Gutter) Config() Config {
	return g.config
}

// SetConfig replaces the configuration. It reports whether the width
// changed.
func (g *Gutter) SetConfig(config Config) bool {
	g.config = config
	g.numbers.SetMode(config.Mode)
	return g.recalc()
}

// SetLineCount updates the line count the width is sized for. It reports
// whether the width changed.
func (g *Gutter) SetLineCount(count int) bool {
	g.lineCount = max(1, count)
	return g.recalc()
}

// SetCurrentLine sets the caret line, which is highlighted and is the
// origin of relative numbers.
func (g *Gutter) SetCurrentLine(line int) {
	g.currentLine = line
	g.numbers.SetCurrentLine(line)
}

// CurrentLine returns the caret line.
func (g *Gutter) CurrentLine() int {
	return g.currentLine
}

func (g *Gutter) recalc() bool {
	old := g.width
	g.width = calculateWidth(g.config, g.lineCount)
	g.numbers.SetWidth(max(0, g.width-1))
	return g.width != old
}

// RenderRow returns the cells for one screen row. rowOffset is the wrapped
// row within line; exists is false for rows below the end of the document.
func (g *Gutter) RenderRow(line, rowOffset int, exists bool) []Cell {
	if g.width == 0 {
		return nil
	}

	cells := make([]Cell, g.width)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Style: StyleNormal}
	}
	digits := g.width - 1

	switch {
	case !exists:
		// Rows past the end are left for the text area's filler.
	case rowOffset > 0:
		if g.config.WrapMarker != 0 {
			cells[digits-1] = Cell{Rune: g.config.WrapMarker, Style: StyleDim}
		}
	default:
		text, current := g.numbers.FormatWithHighlight(line)
		style := StyleDim
		if current {
			style = StyleCurrentLine
		}
		for i, r := range []rune(text) {
			if i >= digits {
				break
			}
			cells[i] = Cell{Rune: r, Style: style}
		}
	}
	return cells
}

// calculateWidth calculates the total gutter width.
func calculateWidth(config Config, lineCount int) int {
	if !config.ShowLineNumbers {
		return 0
	}
	// Separator
	return CalculateWidth(lineCount, config.MinLineNumberWidth) + 1
}

// countDigits returns the number of digits needed to display a number.
func countDigits(n int) int {
	if n <= 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}
