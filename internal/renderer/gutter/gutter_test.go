package gutter

import (
	"testing"
)

func cellsString(cells []Cell) string {
	rs := make([]rune, len(cells))
	for i, c := range cells {
		rs[i] = c.Rune
	}
	return string(rs)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.ShowLineNumbers {
		t.Error("ShowLineNumbers should be true by default")
	}
	if cfg.Mode != LineNumberAbsolute {
		t.Errorf("Mode = %v, want absolute", cfg.Mode)
	}
	if cfg.MinLineNumberWidth != 3 {
		t.Errorf("expected MinLineNumberWidth 3, got %d", cfg.MinLineNumberWidth)
	}
}

func TestNewGutter(t *testing.T) {
	g := New(DefaultConfig())

	// Default: 3 line number digits + 1 separator = 4
	if width := g.Width(); width != 4 {
		t.Errorf("expected initial width 4, got %d", width)
	}
}

func TestGutterDisabled(t *testing.T) {
	g := New(Config{})
	if g.Width() != 0 {
		t.Errorf("Width() = %d, want 0", g.Width())
	}
	if g.SetLineCount(100000) {
		t.Error("a disabled gutter should never change width")
	}
	if cells := g.RenderRow(0, 0, true); cells != nil {
		t.Errorf("RenderRow() = %v, want nil", cells)
	}
}

func TestGutterSetLineCount(t *testing.T) {
	g := New(DefaultConfig())

	tests := []struct {
		lines   int
		width   int
		changed bool
	}{
		{10, 4, false},
		{999, 4, false},
		{1000, 5, true},
		{1001, 5, false},
		{100000, 7, true},
		{5, 4, true},
		{0, 4, false},
	}
	for _, tt := range tests {
		changed := g.SetLineCount(tt.lines)
		if changed != tt.changed || g.Width() != tt.width {
			t.Errorf("SetLineCount(%d) = %v, width %d; want %v, %d",
				tt.lines, changed, g.Width(), tt.changed, tt.width)
		}
	}
}

func TestGutterRenderRow(t *testing.T) {
	g := New(DefaultConfig())
	g.SetLineCount(20)
	g.SetCurrentLine(4)
	if g.CurrentLine() != 4 {
		t.Fatalf("CurrentLine() = %d", g.CurrentLine())
	}

	tests := []struct {
		name      string
		line      int
		rowOffset int
		exists    bool
		want      string
		style     CellStyle
	}{
		{"first line", 0, 0, true, "  1 ", StyleDim},
		{"current line", 4, 0, true, "  5 ", StyleCurrentLine},
		{"two digits", 11, 0, true, " 12 ", StyleDim},
		{"continuation", 11, 1, true, "  ↪ ", StyleDim},
		{"past end", 20, 0, false, "    ", StyleNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := g.RenderRow(tt.line, tt.rowOffset, tt.exists)
			if got := cellsString(cells); got != tt.want {
				t.Errorf("RenderRow() = %q, want %q", got, tt.want)
			}
			if got := cells[2].Style; got != tt.style {
				t.Errorf("style = %v, want %v", got, tt.style)
			}
			if cells[len(cells)-1].Rune != ' ' {
				t.Error("last cell should be the separator")
			}
		})
	}
}

func TestGutterNoWrapMarker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WrapMarker = 0
	g := New(cfg)

	if got := cellsString(g.RenderRow(0, 2, true)); got != "    " {
		t.Errorf("continuation row = %q, want blank", got)
	}
}

func TestGutterRelative(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = LineNumberRelative
	g := New(cfg)
	g.SetLineCount(50)
	g.SetCurrentLine(10)

	if got := cellsString(g.RenderRow(7, 0, true)); got != "  3 " {
		t.Errorf("relative row = %q", got)
	}
	if got := cellsString(g.RenderRow(10, 0, true)); got != "  0 " {
		t.Errorf("current row = %q", got)
	}

	cfg.Mode = LineNumberHybrid
	if g.SetConfig(cfg) {
		t.Error("changing the mode should not change the width")
	}
	if got := cellsString(g.RenderRow(10, 0, true)); got != " 11 " {
		t.Errorf("hybrid current row = %q", got)
	}
	if got := cellsString(g.RenderRow(12, 0, true)); got != "  2 " {
		t.Errorf("hybrid other row = %q", got)
	}
}

func TestParseLineNumberMode(t *testing.T) {
	for _, m := range []LineNumberMode{LineNumberAbsolute, LineNumberRelative, LineNumberHybrid} {
		got, ok := ParseLineNumberMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseLineNumberMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseLineNumberMode("roman"); ok {
		t.Error("unknown mode should fail")
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := PadLeft("7", 3); got != "  7" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadLeft("1234", 3); got != "1234" {
		t.Errorf("PadLeft overflow = %q", got)
	}
	if got := CalculateWidth(0, 1); got != 1 {
		t.Errorf("CalculateWidth(0, 1) = %d", got)
	}
}
