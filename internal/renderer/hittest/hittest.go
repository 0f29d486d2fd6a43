// Package hittest maps content-relative pixel coordinates back to buffer
// positions.
//
// Coordinates are relative to the top-left of the pane's content rectangle
// with y growing downward; chrome offsets and any platform flip must be
// removed by the caller. The WrapLayout passed in must be the same value
// the renderer used to place glyphs for the current frame.
package hittest

import (
	"math"

	"github.com/dshills/softwrap/internal/engine/buffer"
	"github.com/dshills/softwrap/internal/renderer/layout"
	"github.com/dshills/softwrap/internal/renderer/viewport"
)

// epsilon only covers the float error of renderer.Frame.PositionFor, so a
// glyph's own top-left corner floors back into that glyph's cell. A point
// within epsilon of a cell's far edge therefore lands in the next cell,
// which is far below a pixel at any real cell size.
const epsilon = 1e-7

// ScreenRowAt returns the absolute screen row under content y.
func ScreenRowAt(y float64, vp *viewport.Viewport, wl layout.WrapLayout) int {
	lh := wl.LineHeightPx()
	if lh <= 0 {
		return vp.FirstVisibleScreenRow()
	}
	rel := math.Max(0, y+vp.ScrollFractionPx())
	return int(math.Floor(rel/lh+epsilon)) + vp.FirstVisibleScreenRow()
}

// ScreenColAt returns the screen column under content x, clamped to
// [0, cols-1].
func ScreenColAt(x float64, wl layout.WrapLayout) int {
	cw := wl.CharWidthPx()
	if cw <= 0 || x <= 0 {
		return 0
	}
	col := int(math.Floor(x/cw + epsilon))
	return min(col, wl.ColsPerRow()-1)
}

// PixelToBufferPosition returns the buffer position under (x, y).
// A point below the last row resolves to the end of the buffer.
func PixelToBufferPosition(x, y float64, vp *viewport.Viewport, wl layout.WrapLayout, lines layout.Lines) buffer.Position {
	n := lines.LineCount()
	if n == 0 {
		return buffer.Position{}
	}

	target := ScreenRowAt(y, vp, wl)
	line, rowOffset, ok := viewport.BufferLineForScreenRow(target, lines, wl)
	if !ok {
		last := n - 1
		return buffer.Position{Line: last, Col: lines.LineLen(last)}
	}

	sc := ScreenColAt(x, wl)
	return buffer.Position{
		Line: line,
		Col:  wl.ScreenPosToBufferCol(rowOffset, sc, lines.LineLen(line)),
	}
}
