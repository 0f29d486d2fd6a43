// Package buffer provides the line-oriented text buffer that the rest of the
// editor maps onto the screen. A buffer is a sequence of lines, each a slice
// of runes, with a cursor and an optional selection anchor.
//
// The buffer package provides:
//
//   - Cursor motion by character, grapheme cluster, word, line and buffer
//   - Selection by anchor, word, line and whole buffer
//   - Mutations that report which lines they touched as DirtyLines
//   - A single word-boundary model shared by motion, deletion and selection
//   - Line ending normalization on load
//
// Basic usage:
//
//	buf := buffer.NewTextBufferFromString("hello world")
//	buf.MoveToLineEnd()
//	dirty := buf.InsertChar('!') // SingleLine(0)
//
// Position Types:
//
// A Position is a (line, column) pair where both are 0-indexed and the column
// counts runes, not bytes. The cursor and anchor are always clamped so that
// 0 <= Col <= LineLen(Line).
//
// Dirty Tracking:
//
// Every mutation returns a DirtyLines value describing the buffer lines whose
// content or screen placement changed. The buffer also accumulates these so a
// caller that does not look at return values can drain them with TakeDirty.
//
// Thread Safety:
//
// A TextBuffer is owned by the single editor goroutine and is not safe for
// concurrent use.
package buffer
