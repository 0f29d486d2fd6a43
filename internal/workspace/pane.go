package workspace

import (
	"github.com/dshills/softwrap/internal/renderer"
	"github.com/dshills/softwrap/internal/renderer/core"
	"github.com/dshills/softwrap/internal/renderer/dirty"
	"github.com/dshills/softwrap/internal/renderer/gutter"
	"github.com/dshills/softwrap/internal/renderer/statusline"
	"github.com/dshills/softwrap/internal/renderer/viewport"
)

// PaneID identifies a pane in a Workspace.
type PaneID int

// Pane is one view onto a buffer. It owns its viewport and dirty tracker
// and refers to the buffer only by id.
type Pane struct {
	ID       PaneID
	Buffer   BufferID
	Viewport *viewport.Viewport
	Tracker  *dirty.Tracker

	// Gutter is always set; a disabled gutter has width 0.
	Gutter *gutter.Gutter

	// Status is nil when the pane has no status bar.
	Status *statusline.StatusLine

	// Rect is the pane's cell rectangle on the surface.
	Rect core.Rect

	// Content is the text area: Rect without the gutter and status bar.
	// The viewport is sized from it and from nothing else.
	Content core.Rect

	// totalRows is the wrapped row count last seen by this pane, used to
	// detect edits that reflow later rows.
	totalRows int
}

// Frame returns the placement context for the current event.
func (p *Pane) Frame() renderer.Frame {
	return renderer.NewFrame(p.Viewport)
}

// GutterRect returns the cells left of the content area.
func (p *Pane) GutterRect() core.Rect {
	return core.Rect{Top: p.Content.Top, Left: p.Rect.Left, Bottom: p.Content.Bottom, Right: p.Content.Left}
}

// StatusRect returns the status bar row, empty when there is none.
func (p *Pane) StatusRect() core.Rect {
	if p.Status == nil || p.Content.Bottom >= p.Rect.Bottom {
		return core.Rect{}
	}
	return core.Rect{Top: p.Content.Bottom, Left: p.Rect.Left, Bottom: p.Rect.Bottom, Right: p.Rect.Right}
}

// ContentPoint converts a surface cell to content-relative pixels. ok is
// false if the cell is outside the content area; a cell in the gutter
// yields a negative x.
func (p *Pane) ContentPoint(cellX, cellY int) (x, y float64, ok bool) {
	m := p.Viewport.Metrics()
	x = float64(cellX-p.Content.Left) * m.CharWidthPx
	y = float64(cellY-p.Content.Top) * m.LineHeightPx
	return x, y, p.Content.Contains(cellX, cellY)
}

// TotalRows returns the wrapped row count as of the last edit or layout.
func (p *Pane) TotalRows() int {
	return p.totalRows
}

// syncStatus copies the pane's caret and scroll state into its status bar.
func (p *Pane) syncStatus(doc *Document, focused bool) {
	s := p.Status
	s.SetFilename(doc.Name)
	s.SetReadOnly(!doc.View.IsEditable())
	s.SetFocused(focused)
	s.SetTotalLines(doc.View.LineCount())
	if pos, ok := doc.View.Cursor(); ok {
		s.SetPosition(pos.Line, pos.Col)
	} else {
		s.ClearPosition()
	}
	s.SetScroll(p.Viewport.ScrollPercent(p.totalRows), p.Viewport.MaxScrollOffsetPx(p.totalRows) > 0)
}
