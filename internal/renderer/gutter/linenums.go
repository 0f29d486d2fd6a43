package gutter

import (
	"strconv"
	"strings"
)

// LineNumberMode defines how line numbers are displayed.
type LineNumberMode uint8

const (
	// LineNumberAbsolute shows absolute line numbers (1, 2, 3, ...).
	LineNumberAbsolute LineNumberMode = iota

	// LineNumberRelative shows relative line numbers from cursor.
	LineNumberRelative

	// LineNumberHybrid shows absolute for current line, relative for others.
	LineNumberHybrid
)

// String returns the configuration name of the mode.
func (m LineNumberMode) String() string {
	switch m {
	case LineNumberRelative:
		return "relative"
	case LineNumberHybrid:
		return "hybrid"
	default:
		return "absolute"
	}
}

// ParseLineNumberMode parses absolute, relative or hybrid.
func ParseLineNumberMode(s string) (LineNumberMode, bool) {
	switch strings.ToLower(s) {
	case "absolute", "":
		return LineNumberAbsolute, true
	case "relative":
		return LineNumberRelative, true
	case "hybrid":
		return LineNumberHybrid, true
	default:
		return LineNumberAbsolute, false
	}
}

// LineNumberFormatter formats line numbers according to configuration.
type LineNumberFormatter struct {
	mode        LineNumberMode
	width       int
	currentLine int
}

// NewLineNumberFormatter creates a new line number formatter.
func NewLineNumberFormatter(mode LineNumberMode, width int) *LineNumberFormatter {
	return &LineNumberFormatter{
		mode:  mode,
		width: width,
	}
}

// SetMode changes the line number mode.
func (f *LineNumberFormatter) SetMode(mode LineNumberMode) {
	f.mode = mode
}

// SetWidth sets the display width for line numbers.
func (f *LineNumberFormatter) SetWidth(width int) {
	f.width = width
}

// SetCurrentLine sets the current cursor line for relative calculations.
func (f *LineNumberFormatter) SetCurrentLine(line int) {
	f.currentLine = line
}

// FormatWithHighlight returns the formatted number and whether it should be highlighted.
func (f *LineNumberFormatter) FormatWithHighlight(line int) (string, bool) {
	return PadLeft(strconv.Itoa(f.calculateNumber(line)), f.width), line == f.currentLine
}

// calculateNumber returns the number to display for a line.
func (f *LineNumberFormatter) calculateNumber(line int) int {
	switch f.mode {
	case LineNumberRelative:
		return absDiff(line, f.currentLine)
	case LineNumberHybrid:
		if line == f.currentLine {
			return line + 1
		}
		return absDiff(line, f.currentLine)
	default:
		return line + 1 // 1-indexed display
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// PadLeft pads a string with spaces on the left to the specified width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// CalculateWidth calculates the minimum width needed to display line numbers
// for the given line count.
func CalculateWidth(lineCount int, minWidth int) int {
	return max(countDigits(lineCount), minWidth)
}
