package renderer

import (
	"testing"

	"github.com/dshills/softwrap/internal/engine/buffer"
	"github.com/dshills/softwrap/internal/renderer/backend"
	"github.com/dshills/softwrap/internal/renderer/core"
	"github.com/dshills/softwrap/internal/renderer/dirty"
	"github.com/dshills/softwrap/internal/renderer/gutter"
)

func paintAll(t *testing.T, text string) (*backend.Memory, *Painter, Frame, *buffer.TextBuffer) {
	t.Helper()
	mem := backend.NewMemory(10, 4)
	p := NewPainter(mem, DefaultTheme())
	buf := buffer.NewTextBufferFromString(text)
	f := NewFrame(newPane())
	p.Paint(core.RectFromSize(0, 0, 4, 10), f, buf, dirty.FullViewport())
	return mem, p, f, buf
}

func TestPaintWrappedRows(t *testing.T) {
	mem, _, _, _ := paintAll(t, "hello world wraps here\nab\n")

	want := []string{"hello worl", "d wraps he", "re", "ab"}
	for y, w := range want {
		if got := mem.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}
}

func TestPaintFiller(t *testing.T) {
	mem, _, _, _ := paintAll(t, "a")

	if got := mem.Row(0); got != "a" {
		t.Errorf("Row(0) = %q", got)
	}
	for y := 1; y < 4; y++ {
		if got := mem.Row(y); got != "~" {
			t.Errorf("Row(%d) = %q, want filler", y, got)
		}
	}
	if !mem.GetCell(0, 1).Style.Attributes.Has(core.AttrDim) {
		t.Error("filler should use the filler style")
	}
}

func TestPaintOnlyDirtyRows(t *testing.T) {
	mem := backend.NewMemory(10, 4)
	p := NewPainter(mem, DefaultTheme())
	buf := buffer.NewTextBufferFromString("one\ntwo\nthree")
	f := NewFrame(newPane())
	rect := core.RectFromSize(0, 0, 4, 10)

	if n := p.Paint(rect, f, buf, dirty.SingleRow(1)); n != 1 {
		t.Errorf("Paint() = %d rows, want 1", n)
	}
	if mem.Writes() != 10 {
		t.Errorf("Writes() = %d, want 10", mem.Writes())
	}
	if mem.Row(0) != "" || mem.Row(1) != "two" {
		t.Errorf("rows = %q, %q", mem.Row(0), mem.Row(1))
	}

	mem.ResetStats()
	if n := p.Paint(rect, f, buf, dirty.NoRegion()); n != 0 || mem.Writes() != 0 {
		t.Errorf("clean region painted %d rows, %d writes", n, mem.Writes())
	}
}

func TestPaintSelection(t *testing.T) {
	mem := backend.NewMemory(10, 4)
	theme := DefaultTheme()
	p := NewPainter(mem, theme)
	buf := buffer.NewTextBufferFromString("abc\ndef")
	buf.SetCursor(buffer.Pos(0, 1))
	buf.SelectDown()

	p.Paint(core.RectFromSize(0, 0, 4, 10), NewFrame(newPane()), buf, dirty.FullViewport())

	tests := []struct {
		x, y     int
		selected bool
	}{
		{0, 0, false},
		{1, 0, true},
		{2, 0, true},
		{3, 0, true}, // line break
		{4, 0, false},
		{0, 1, true},
		{1, 1, false},
	}
	for _, tt := range tests {
		got := mem.GetCell(tt.x, tt.y).Style == theme.Selection
		if got != tt.selected {
			t.Errorf("cell (%d, %d) selected = %v, want %v", tt.x, tt.y, got, tt.selected)
		}
	}
}

func TestPaintInsideRect(t *testing.T) {
	mem := backend.NewMemory(20, 6)
	p := NewPainter(mem, DefaultTheme())
	buf := buffer.NewTextBufferFromString("xy")

	p.Paint(core.RectFromSize(1, 5, 4, 10), NewFrame(newPane()), buf, dirty.FullViewport())
	if got := mem.Row(1); got != "     xy" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := mem.Row(0); got != "" {
		t.Errorf("Row(0) = %q, want untouched", got)
	}
}

func TestPlaceCaret(t *testing.T) {
	mem, p, f, buf := paintAll(t, "hello world wraps here")
	rect := core.RectFromSize(0, 0, 4, 10)

	buf.SetCursor(buffer.Pos(0, 12))
	if !p.PlaceCaret(rect, f, buf) {
		t.Fatal("caret should be visible")
	}
	if x, y, ok := mem.CursorPosition(); x != 2 || y != 1 || !ok {
		t.Errorf("CursorPosition() = %d, %d, %v, want 2, 1, true", x, y, ok)
	}
	if mem.CursorStyle() != DefaultTheme().Cursor {
		t.Error("painter should apply the theme cursor style")
	}

	if p.PlaceCaret(rect, f, buffer.NewStaticBuffer(10)) {
		t.Error("a view without a caret should hide the cursor")
	}
	if _, _, ok := mem.CursorPosition(); ok {
		t.Error("cursor should be hidden")
	}
}

func TestPlaceCaretBelowRect(t *testing.T) {
	mem := backend.NewMemory(10, 4)
	p := NewPainter(mem, DefaultTheme())
	buf := buffer.NewTextBufferFromString("a\nb\nc\nd\ne\nf")
	buf.SetCursor(buffer.Pos(4, 0)) // view row 4 exists but the rect has 4 rows

	if p.PlaceCaret(core.RectFromSize(0, 0, 4, 10), NewFrame(newPane()), buf) {
		t.Error("caret outside the rect should be hidden")
	}
}

func TestPaintGutter(t *testing.T) {
	mem := backend.NewMemory(14, 4)
	p := NewPainter(mem, DefaultTheme())
	buf := buffer.NewTextBufferFromString("hello world wraps here\nab")
	buf.SetCursor(buffer.Pos(1, 0))
	f := NewFrame(newPane())

	g := gutter.New(gutter.DefaultConfig())
	g.SetLineCount(buf.LineCount())
	if g.Width() != 4 {
		t.Fatalf("gutter width = %d, want 4", g.Width())
	}

	gutterRect := core.RectFromSize(0, 0, 4, 4)
	p.Paint(core.RectFromSize(0, 4, 4, 10), f, buf, dirty.FullViewport())
	if n := p.PaintGutter(gutterRect, f, buf, g, dirty.FullViewport()); n != 4 {
		t.Errorf("PaintGutter() = %d rows, want 4", n)
	}

	want := []string{"  1 hello worl", "  ↪ d wraps he", "  ↪ re", "  2 ab"}
	for y, w := range want {
		if got := mem.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}
	if got := mem.GetCell(2, 3).Style; got != DefaultTheme().GutterCurrent {
		t.Errorf("caret line number style = %+v", got)
	}
	if got := mem.GetCell(2, 0).Style; got != DefaultTheme().Gutter {
		t.Errorf("other line number style = %+v", got)
	}

	if n := p.PaintGutter(gutterRect, f, buf, gutter.New(gutter.Config{}), dirty.FullViewport()); n != 0 {
		t.Errorf("disabled gutter painted %d rows", n)
	}
}
