package buffer

// View is the read side of a buffer as seen by layout, rendering and hit
// testing. Buffers of different kinds (editable text, read-only grids)
// implement it so a pane can host any of them.
type View interface {
	LineCount() int
	LineContent(line int) string
	LineLen(line int) int

	// Cursor returns the caret position, or false if the view has none.
	Cursor() (Position, bool)

	// SelectionRange returns the ordered selection, if any.
	SelectionRange() (start, end Position, ok bool)

	IsEditable() bool

	// TakeDirty drains the lines changed since the previous call.
	TakeDirty() DirtyLines
}

// Cursor implements View.
func (b *TextBuffer) Cursor() (Position, bool) {
	return b.cursor, true
}

var (
	_ View = (*TextBuffer)(nil)
	_ View = (*StaticBuffer)(nil)
)
