package buffer

import (
	"io"
	"strings"
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// TextBuffer is an editable sequence of lines with a cursor and an optional
// selection anchor. It always holds at least one (possibly empty) line.
type TextBuffer struct {
	lines      [][]rune
	cursor     Position
	anchor     *Position
	dirty      DirtyLines
	lineEnding LineEnding

	initialCursor *Position
}

// NewTextBuffer creates a new buffer holding a single empty line.
func NewTextBuffer(opts ...Option) *TextBuffer {
	b := &TextBuffer{
		lines:      [][]rune{{}},
		lineEnding: LineEndingLF,
	}
	b.applyOptions(opts)
	return b
}

// NewTextBufferFromString creates a buffer from a string.
// CRLF and CR line endings are normalized to LF; the dominant one is kept
// for ContentWithLineEnding unless an option overrides it.
func NewTextBufferFromString(s string, opts ...Option) *TextBuffer {
	b := &TextBuffer{
		lines:      splitLines(normalizeLineEndings(s)),
		lineEnding: DetectLineEnding(s),
	}
	b.applyOptions(opts)
	return b
}

// NewTextBufferFromReader creates a buffer from an io.Reader.
func NewTextBufferFromReader(r io.Reader, opts ...Option) (*TextBuffer, error) {
	// Read everything first so a CRLF split across reads is still normalized.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewTextBufferFromString(string(data), opts...), nil
}

func (b *TextBuffer) applyOptions(opts []Option) {
	for _, opt := range opts {
		opt(b)
	}
	if b.initialCursor != nil {
		b.cursor = b.clamp(*b.initialCursor)
		b.initialCursor = nil
	}
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func splitLines(s string) [][]rune {
	parts := strings.Split(s, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

// Read Operations

// LineCount returns the number of lines. It is always at least 1.
func (b *TextBuffer) LineCount() int {
	return len(b.lines)
}

// LineContent returns the text of a line, or "" if out of range.
func (b *TextBuffer) LineContent(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return string(b.lines[line])
}

// LineRunes returns a copy of a line's runes, or nil if out of range.
func (b *TextBuffer) LineRunes(line int) []rune {
	if line < 0 || line >= len(b.lines) {
		return nil
	}
	out := make([]rune, len(b.lines[line]))
	copy(out, b.lines[line])
	return out
}

// LineLen returns the length of a line in runes, or 0 if out of range.
func (b *TextBuffer) LineLen(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

// Len returns the total number of runes, counting one per line break.
func (b *TextBuffer) Len() int {
	n := len(b.lines) - 1
	for _, l := range b.lines {
		n += len(l)
	}
	return n
}

// IsEmpty returns true if the buffer holds a single empty line.
func (b *TextBuffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Content returns the full buffer content joined with LF.
func (b *TextBuffer) Content() string {
	return b.join("\n")
}

// ContentWithLineEnding returns the content joined with the buffer's
// configured line ending.
func (b *TextBuffer) ContentWithLineEnding() string {
	return b.join(b.lineEnding.Sequence())
}

func (b *TextBuffer) join(sep string) string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(string(l))
	}
	return sb.String()
}

// LineEnding returns the buffer's configured line ending.
func (b *TextBuffer) LineEnding() LineEnding {
	return b.lineEnding
}

// CursorPosition returns the cursor position.
func (b *TextBuffer) CursorPosition() Position {
	return b.cursor
}

// EndPosition returns the position after the last rune of the buffer.
func (b *TextBuffer) EndPosition() Position {
	last := len(b.lines) - 1
	return Position{Line: last, Col: len(b.lines[last])}
}

// IsEditable reports that a TextBuffer accepts mutations.
func (b *TextBuffer) IsEditable() bool {
	return true
}

// TakeDirty returns the dirty lines accumulated since the last call and
// resets the accumulator.
func (b *TextBuffer) TakeDirty() DirtyLines {
	d := b.dirty
	b.dirty = NoDirty()
	return d
}

// mark records d in the accumulator and returns it.
func (b *TextBuffer) mark(d DirtyLines) DirtyLines {
	b.dirty = b.dirty.Merge(d)
	return d
}

// clamp returns pos constrained to a valid buffer position.
func (b *TextBuffer) clamp(pos Position) Position {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(b.lines) {
		pos.Line = len(b.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := len(b.lines[pos.Line]); pos.Col > n {
		pos.Col = n
	}
	return pos
}
