package renderer

import (
	"github.com/dshills/softwrap/internal/engine/buffer"
	"github.com/dshills/softwrap/internal/renderer/backend"
	"github.com/dshills/softwrap/internal/renderer/core"
	"github.com/dshills/softwrap/internal/renderer/dirty"
	"github.com/dshills/softwrap/internal/renderer/gutter"
)

// Painter draws frames into a backend. Each screen column is one cell and
// each view row is one cell row. Sub-row scroll fractions cannot be shown on
// a cell surface, so the first visible row is drawn at the top of rect.
type Painter struct {
	backend backend.Backend
	theme   Theme
}

// NewPainter creates a painter for b.
func NewPainter(b backend.Backend, theme Theme) *Painter {
	b.SetCursorStyle(theme.Cursor)
	return &Painter{backend: b, theme: theme}
}

// Theme returns the painter's theme.
func (p *Painter) Theme() Theme {
	return p.theme
}

// Paint repaints the rows of region that fall inside rect and returns how
// many rows it wrote.
func (p *Painter) Paint(rect core.Rect, f Frame, view buffer.View, region dirty.Region) int {
	if rect.IsEmpty() || !region.IsDirty() {
		return 0
	}

	rows := f.Rows(view)
	selStart, selEnd, hasSel := view.SelectionRange()

	var (
		lineIdx = -1
		content []rune
	)
	painted := 0
	for vr := 0; vr < rect.Height(); vr++ {
		if !region.ContainsRow(vr) {
			continue
		}
		painted++
		y := rect.Top + vr

		if vr >= len(rows) {
			p.paintFiller(rect, y)
			continue
		}
		row := rows[vr]
		if row.Line != lineIdx {
			lineIdx = row.Line
			content = []rune(view.LineContent(row.Line))
		}
		p.paintRow(rect, y, row, content, selStart, selEnd, hasSel)
	}
	return painted
}

func (p *Painter) paintRow(rect core.Rect, y int, row Row, content []rune, selStart, selEnd buffer.Position, hasSel bool) {
	selected := func(col int) bool {
		if !hasSel {
			return false
		}
		pos := buffer.Pos(row.Line, col)
		return !pos.Before(selStart) && pos.Before(selEnd)
	}

	for sc := 0; sc < rect.Width(); sc++ {
		col := row.StartCol + sc
		cell := core.NewCell(' ', p.theme.Text)
		switch {
		case col < row.EndCol:
			cell.Rune = content[col]
			if selected(col) {
				cell.Style = p.theme.Selection
			}
		case col == row.EndCol && row.IsLastRowOfLine(len(content)) && selected(col):
			// The line break itself is selected.
			cell.Style = p.theme.Selection
		}
		p.backend.SetCell(rect.Left+sc, y, cell)
	}
}

func (p *Painter) paintFiller(rect core.Rect, y int) {
	blank := core.NewCell(' ', p.theme.Text)
	for sc := 0; sc < rect.Width(); sc++ {
		p.backend.SetCell(rect.Left+sc, y, blank)
	}
	if p.theme.FillerRune != 0 {
		p.backend.SetCell(rect.Left, y, core.NewCell(p.theme.FillerRune, p.theme.Filler))
	}
}

// PaintGutter repaints the gutter cells of the rows of region that fall
// inside rect. rect must have the same rows as the content rectangle the
// frame was painted into.
func (p *Painter) PaintGutter(rect core.Rect, f Frame, view buffer.View, g *gutter.Gutter, region dirty.Region) int {
	if rect.IsEmpty() || !region.IsDirty() || g.Width() == 0 {
		return 0
	}
	if pos, ok := view.Cursor(); ok {
		g.SetCurrentLine(pos.Line)
	} else {
		g.SetCurrentLine(-1)
	}

	rows := f.Rows(view)
	painted := 0
	for vr := 0; vr < rect.Height(); vr++ {
		if !region.ContainsRow(vr) {
			continue
		}
		painted++
		var cells []gutter.Cell
		if vr < len(rows) {
			cells = g.RenderRow(rows[vr].Line, rows[vr].RowOffset, true)
		} else {
			cells = g.RenderRow(0, 0, false)
		}
		for i := 0; i < rect.Width(); i++ {
			cell := core.NewCell(' ', p.theme.Text)
			if i < len(cells) {
				cell = core.NewCell(cells[i].Rune, p.gutterStyle(cells[i].Style))
			}
			p.backend.SetCell(rect.Left+i, rect.Top+vr, cell)
		}
	}
	return painted
}

func (p *Painter) gutterStyle(s gutter.CellStyle) core.Style {
	switch s {
	case gutter.StyleDim:
		return p.theme.Gutter
	case gutter.StyleCurrentLine:
		return p.theme.GutterCurrent
	default:
		return p.theme.Text
	}
}

// PlaceCaret shows the backend cursor at the view's caret if it is inside
// rect, and hides it otherwise. It reports whether the caret is shown.
func (p *Painter) PlaceCaret(rect core.Rect, f Frame, view buffer.View) bool {
	pos, ok := view.Cursor()
	if !ok {
		p.backend.HideCursor()
		return false
	}
	col, viewRow, ok := f.CellFor(view, pos)
	if !ok || col >= rect.Width() || viewRow >= rect.Height() {
		p.backend.HideCursor()
		return false
	}
	p.backend.ShowCursor(rect.Left+col, rect.Top+viewRow)
	return true
}

// Flush pushes painted cells to the display.
func (p *Painter) Flush() {
	p.backend.Show()
}
