package buffer

// Option is a functional option for configuring a TextBuffer.
type Option func(*TextBuffer)

// WithLineEnding sets the line ending used by ContentWithLineEnding.
func WithLineEnding(le LineEnding) Option {
	return func(b *TextBuffer) {
		b.lineEnding = le
	}
}

// WithCursor places the cursor after the initial content is loaded.
// The position is clamped to the buffer.
func WithCursor(pos Position) Option {
	return func(b *TextBuffer) {
		b.initialCursor = &pos
	}
}

// DetectLineEnding returns a LineEnding based on the most common line ending in the text.
// Returns LineEndingLF if no line endings are found.
func DetectLineEnding(text string) LineEnding {
	var lfCount, crlfCount, crCount int

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				crlfCount++
				i++
			} else {
				crCount++
			}
		case '\n':
			lfCount++
		}
	}

	if crlfCount > 0 && crlfCount >= lfCount && crlfCount >= crCount {
		return LineEndingCRLF
	}
	if crCount > 0 && crCount >= lfCount && crCount >= crlfCount {
		return LineEndingCR
	}
	return LineEndingLF
}
