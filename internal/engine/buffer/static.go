package buffer

import "strings"

// StaticBuffer is a read-only grid of lines with no cursor, such as command
// output or a log tail. Lines can only be appended.
type StaticBuffer struct {
	lines    [][]rune
	maxLines int
	dirty    DirtyLines

	// appended is false while lines holds only the placeholder empty line.
	appended bool
}

// NewStaticBuffer creates an empty static buffer. When maxLines > 0 the
// oldest lines are dropped once the buffer grows past it.
func NewStaticBuffer(maxLines int) *StaticBuffer {
	return &StaticBuffer{
		lines:    [][]rune{{}},
		maxLines: maxLines,
	}
}

// AppendLine adds text as new lines at the end. Embedded line breaks split
// it into several lines.
func (s *StaticBuffer) AppendLine(text string) DirtyLines {
	parts := strings.Split(normalizeLineEndings(text), "\n")

	first := len(s.lines)
	if !s.appended {
		s.lines = s.lines[:0]
		first = 0
		s.appended = true
	}
	for _, p := range parts {
		s.lines = append(s.lines, []rune(p))
	}

	d := LineRange(first, len(s.lines))
	if s.maxLines > 0 && len(s.lines) > s.maxLines {
		s.lines = s.lines[len(s.lines)-s.maxLines:]
		// Everything shifted up.
		d = FromLineToEnd(0)
	}
	s.dirty = s.dirty.Merge(d)
	return d
}

// LineCount implements View.
func (s *StaticBuffer) LineCount() int { return len(s.lines) }

// LineContent implements View.
func (s *StaticBuffer) LineContent(line int) string {
	if line < 0 || line >= len(s.lines) {
		return ""
	}
	return string(s.lines[line])
}

// LineLen implements View.
func (s *StaticBuffer) LineLen(line int) int {
	if line < 0 || line >= len(s.lines) {
		return 0
	}
	return len(s.lines[line])
}

// Cursor implements View. A static buffer has no caret.
func (s *StaticBuffer) Cursor() (Position, bool) { return Position{}, false }

// SelectionRange implements View. A static buffer has no selection.
func (s *StaticBuffer) SelectionRange() (Position, Position, bool) {
	return Position{}, Position{}, false
}

// IsEditable implements View.
func (s *StaticBuffer) IsEditable() bool { return false }

// TakeDirty implements View.
func (s *StaticBuffer) TakeDirty() DirtyLines {
	d := s.dirty
	s.dirty = NoDirty()
	return d
}
