package dirty

import (
	"testing"
	"testing/quick"

	"github.com/dshills/softwrap/internal/engine/buffer"
	"github.com/dshills/softwrap/internal/renderer/layout"
	"github.com/dshills/softwrap/internal/renderer/viewport"
)

var testMetrics = layout.Metrics{CharWidthPx: 8, LineHeightPx: 16}

// newPane returns a 10 column, 11 visible row viewport.
func newPane() *viewport.Viewport {
	vp := viewport.NewViewport(testMetrics)
	vp.Resize(80, 160)
	return vp
}

func uniformLines(n, length int) layout.LineLens {
	lines := make(layout.LineLens, n)
	for i := range lines {
		lines[i] = length
	}
	return lines
}

func TestResolveUnwrapped(t *testing.T) {
	lines := uniformLines(100, 5)

	tests := []struct {
		name  string
		top   int
		dirty buffer.DirtyLines
		want  Region
	}{
		{"none", 0, buffer.NoDirty(), NoRegion()},
		{"single visible", 0, buffer.SingleLine(3), LineRegion(3, 4)},
		{"single trailing partial row", 0, buffer.SingleLine(10), LineRegion(10, 11)},
		{"single below", 0, buffer.SingleLine(11), NoRegion()},
		{"single above", 20, buffer.SingleLine(5), NoRegion()},
		{"single scrolled", 20, buffer.SingleLine(25), LineRegion(5, 6)},
		{"range partial above", 20, buffer.LineRange(18, 23), LineRegion(0, 3)},
		{"range partial below", 0, buffer.LineRange(8, 40), LineRegion(8, 11)},
		{"range outside", 0, buffer.LineRange(50, 60), NoRegion()},
		{"from end inside", 0, buffer.FromLineToEnd(5), FullViewport()},
		{"from end on last row", 0, buffer.FromLineToEnd(10), FullViewport()},
		{"from end above", 20, buffer.FromLineToEnd(5), FullViewport()},
		{"from end below", 0, buffer.FromLineToEnd(50), NoRegion()},
		{"single past buffer", 0, buffer.SingleLine(200), NoRegion()},
		{"from end past buffer", 0, buffer.FromLineToEnd(200), NoRegion()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := newPane()
			wl := vp.Layout()
			vp.ScrollToRow(tt.top, wl.TotalScreenRows(lines))
			if got := Resolve(tt.dirty, vp, wl, lines); got != tt.want {
				t.Errorf("Resolve(%v) = %v, want %v", tt.dirty, got, tt.want)
			}
		})
	}
}

func TestResolveWrapped(t *testing.T) {
	vp := newPane()
	wl := vp.Layout()
	lines := layout.LineLens{25, 5, 5, 0, 30} // rows: 3, 1, 1, 1, 4

	if got := Resolve(buffer.SingleLine(0), vp, wl, lines); got != LineRegion(0, 3) {
		t.Errorf("wrapped line 0 = %v, want Lines(0..3)", got)
	}
	if got := Resolve(buffer.SingleLine(1), vp, wl, lines); got != LineRegion(3, 4) {
		t.Errorf("line after wrap = %v, want Lines(3..4)", got)
	}
	if got := Resolve(buffer.SingleLine(4), vp, wl, lines); got != LineRegion(6, 10) {
		t.Errorf("line 4 = %v, want Lines(6..10)", got)
	}

	// Scroll so the second wrapped row of line 0 is on top.
	vp.SetScrollOffsetPxWrapped(16, 100)
	if got := Resolve(buffer.SingleLine(0), vp, wl, lines); got != LineRegion(0, 2) {
		t.Errorf("scrolled line 0 = %v, want Lines(0..2)", got)
	}
	if got := Resolve(buffer.SingleLine(1), vp, wl, lines); got != LineRegion(2, 3) {
		t.Errorf("scrolled line 1 = %v, want Lines(2..3)", got)
	}
}

func TestResolveNoneProperty(t *testing.T) {
	f := func(offset uint16, height uint8, lens []uint8) bool {
		vp := viewport.NewViewport(testMetrics)
		vp.Resize(80, float64(height))
		lines := make(layout.LineLens, len(lens)+1)
		for i, l := range lens {
			lines[i] = int(l)
		}
		wl := vp.Layout()
		vp.SetScrollOffsetPxWrapped(float64(offset), wl.TotalScreenRows(lines))
		return Resolve(buffer.NoDirty(), vp, wl, lines) == NoRegion()
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestReflow(t *testing.T) {
	if got := Reflow(buffer.SingleLine(3), 10, 10); got != buffer.SingleLine(3) {
		t.Errorf("unchanged rows: %v", got)
	}
	if got := Reflow(buffer.SingleLine(3), 10, 11); got != buffer.FromLineToEnd(3) {
		t.Errorf("grown rows: %v, want FromLineToEnd(3)", got)
	}
	if got := Reflow(buffer.LineRange(2, 5), 10, 8); got != buffer.FromLineToEnd(2) {
		t.Errorf("shrunk rows: %v, want FromLineToEnd(2)", got)
	}
	if got := Reflow(buffer.NoDirty(), 10, 8); got != buffer.NoDirty() {
		t.Errorf("none: %v", got)
	}
}
