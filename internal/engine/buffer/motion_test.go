package buffer

import "testing"

func TestMoveLeftRight(t *testing.T) {
	b := NewTextBufferFromString("ab\ncd", WithCursor(Pos(1, 0)))

	b.MoveLeft()
	if b.CursorPosition() != Pos(0, 2) {
		t.Errorf("MoveLeft at line start = %v, want (0:2)", b.CursorPosition())
	}
	b.MoveRight()
	if b.CursorPosition() != Pos(1, 0) {
		t.Errorf("MoveRight at line end = %v, want (1:0)", b.CursorPosition())
	}

	b.MoveToBufferStart()
	b.MoveLeft()
	if b.CursorPosition() != Pos(0, 0) {
		t.Errorf("MoveLeft at buffer start = %v", b.CursorPosition())
	}
	b.MoveToBufferEnd()
	b.MoveRight()
	if b.CursorPosition() != Pos(1, 2) {
		t.Errorf("MoveRight at buffer end = %v", b.CursorPosition())
	}
}

func TestMoveOverGraphemeClusters(t *testing.T) {
	// e + combining acute, then a two-rune flag
	b := NewTextBufferFromString("e\u0301\U0001F1FA\U0001F1F8x")

	b.MoveRight()
	if b.CursorPosition().Col != 2 {
		t.Errorf("after first MoveRight col = %d, want 2", b.CursorPosition().Col)
	}
	b.MoveRight()
	if b.CursorPosition().Col != 4 {
		t.Errorf("after second MoveRight col = %d, want 4", b.CursorPosition().Col)
	}
	b.MoveLeft()
	if b.CursorPosition().Col != 2 {
		t.Errorf("after MoveLeft col = %d, want 2", b.CursorPosition().Col)
	}
}

func TestMoveUpDownClampsColumn(t *testing.T) {
	b := NewTextBufferFromString("ab\nlonger", WithCursor(Pos(1, 5)))

	b.MoveUp()
	if b.CursorPosition() != Pos(0, 2) {
		t.Errorf("MoveUp = %v, want (0:2)", b.CursorPosition())
	}
	b.MoveUp()
	if b.CursorPosition() != Pos(0, 2) {
		t.Errorf("MoveUp on first line = %v, want no-op", b.CursorPosition())
	}
	b.MoveDown()
	b.MoveDown()
	if b.CursorPosition() != Pos(1, 2) {
		t.Errorf("MoveDown on last line = %v, want (1:2)", b.CursorPosition())
	}
}

func TestMoveWord(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start Position
		right bool
		want  []Position
	}{
		{
			name:  "right over words",
			text:  "hello world",
			start: Pos(0, 0),
			right: true,
			want:  []Position{Pos(0, 5), Pos(0, 11), Pos(0, 11)},
		},
		{
			name:  "left over words",
			text:  "hello world",
			start: Pos(0, 11),
			want:  []Position{Pos(0, 6), Pos(0, 0), Pos(0, 0)},
		},
		{
			name:  "symbols are their own run",
			text:  "foo.bar",
			start: Pos(0, 0),
			right: true,
			want:  []Position{Pos(0, 3), Pos(0, 4), Pos(0, 7)},
		},
		{
			name:  "right crosses line break",
			text:  "ab\n  cd",
			start: Pos(0, 0),
			right: true,
			want:  []Position{Pos(0, 2), Pos(1, 0), Pos(1, 4)},
		},
		{
			name:  "left crosses line break",
			text:  "ab\ncd",
			start: Pos(1, 2),
			want:  []Position{Pos(1, 0), Pos(0, 2), Pos(0, 0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewTextBufferFromString(tt.text, WithCursor(tt.start))
			for i, want := range tt.want {
				if tt.right {
					b.MoveWordRight()
				} else {
					b.MoveWordLeft()
				}
				if got := b.CursorPosition(); got != want {
					t.Errorf("step %d: cursor = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestMoveClearsSelection(t *testing.T) {
	b := NewTextBufferFromString("hello")
	b.SelectRight()
	if !b.HasSelection() {
		t.Fatal("SelectRight should create a selection")
	}
	b.MoveRight()
	if b.HasSelection() {
		t.Error("MoveRight should clear the selection")
	}
}

func TestSelectExtends(t *testing.T) {
	b := NewTextBufferFromString("hello world")

	for i := 0; i < 5; i++ {
		b.SelectRight()
	}
	text, ok := b.SelectedText()
	if !ok || text != "hello" {
		t.Errorf("SelectedText() = %q, %v, want %q", text, ok, "hello")
	}

	b.SelectWordRight()
	if text, _ := b.SelectedText(); text != "hello world" {
		t.Errorf("after SelectWordRight = %q", text)
	}

	b.SelectToLineStart()
	if b.HasSelection() {
		t.Error("selecting back to the anchor should leave an empty selection")
	}
}

func TestSelectToBufferEdges(t *testing.T) {
	b := NewTextBufferFromString("ab\ncd", WithCursor(Pos(0, 1)))

	b.SelectToBufferEnd()
	start, end, ok := b.SelectionRange()
	if !ok || start != Pos(0, 1) || end != Pos(1, 2) {
		t.Errorf("SelectionRange() = %v, %v, %v", start, end, ok)
	}

	b.SelectToBufferStart()
	start, end, _ = b.SelectionRange()
	if start != Pos(0, 0) || end != Pos(0, 1) {
		t.Errorf("SelectionRange() after SelectToBufferStart = %v, %v", start, end)
	}
}

func TestMoveCursorPreservingSelection(t *testing.T) {
	b := NewTextBufferFromString("one\ntwo")
	b.SetSelectionAnchor(Pos(0, 1))
	b.MoveCursorPreservingSelection(Pos(5, 5))

	start, end, ok := b.SelectionRange()
	if !ok || start != Pos(0, 1) || end != Pos(1, 3) {
		t.Errorf("SelectionRange() = %v, %v, %v", start, end, ok)
	}

	b.SetCursor(Pos(0, 0))
	if b.HasSelection() {
		t.Error("SetCursor should clear the selection")
	}
}
