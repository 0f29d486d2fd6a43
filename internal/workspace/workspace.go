package workspace

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dshills/softwrap/internal/engine/buffer"
	"github.com/dshills/softwrap/internal/input/mouse"
	"github.com/dshills/softwrap/internal/renderer/core"
	"github.com/dshills/softwrap/internal/renderer/dirty"
	"github.com/dshills/softwrap/internal/renderer/gutter"
	"github.com/dshills/softwrap/internal/renderer/layout"
	"github.com/dshills/softwrap/internal/renderer/statusline"
	"github.com/dshills/softwrap/internal/renderer/viewport"
)

// Workspace arranges panes over the buffers of an Arena and routes every
// mutation and scroll through them.
type Workspace struct {
	arena    *Arena
	metrics  layout.Metrics
	margins  viewport.MarginConfig
	coalesce float64
	gutter   gutter.Config
	status   bool
	logger   *slog.Logger

	panes  []*Pane
	focus  int
	nextID PaneID
	rect   core.Rect
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(w *Workspace) {
		w.logger = l.With("component", "workspace")
	}
}

// WithMargins sets the scroll margins of new panes.
func WithMargins(m viewport.MarginConfig) Option {
	return func(w *Workspace) {
		w.margins = m
	}
}

// WithCoalesceThreshold sets the fraction of a pane's rows above which a
// partial repaint becomes a full one.
func WithCoalesceThreshold(t float64) Option {
	return func(w *Workspace) {
		w.coalesce = t
	}
}

// WithGutter sets the gutter configuration of new panes.
func WithGutter(cfg gutter.Config) Option {
	return func(w *Workspace) {
		w.gutter = cfg
	}
}

// WithStatusLine gives every new pane a status bar on its bottom row.
func WithStatusLine(enabled bool) Option {
	return func(w *Workspace) {
		w.status = enabled
	}
}

// New creates a workspace over arena. Every pane uses metrics.
func New(arena *Arena, metrics layout.Metrics, opts ...Option) *Workspace {
	w := &Workspace{
		arena:    arena,
		metrics:  metrics,
		margins:  viewport.DefaultMargins(),
		coalesce: 0.5,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		focus:    -1,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Arena returns the buffer arena.
func (w *Workspace) Arena() *Arena {
	return w.arena
}

// Metrics returns the cell metrics shared by all panes.
func (w *Workspace) Metrics() layout.Metrics {
	return w.metrics
}

// AddPane opens a pane on buffer id, focuses it and re-lays out.
func (w *Workspace) AddPane(id BufferID) (*Pane, error) {
	if _, err := w.arena.Get(id); err != nil {
		return nil, err
	}

	vp := viewport.NewViewport(w.metrics)
	vp.SetMargins(w.margins)
	tracker := dirty.NewTracker(0)
	tracker.SetCoalesceThreshold(w.coalesce)

	w.nextID++
	p := &Pane{
		ID:       w.nextID,
		Buffer:   id,
		Viewport: vp,
		Tracker:  tracker,
		Gutter:   gutter.New(w.gutter),
	}
	if w.status {
		p.Status = statusline.New()
	}
	w.panes = append(w.panes, p)
	w.focus = len(w.panes) - 1
	w.Layout(w.rect)

	w.logger.Debug("pane added", "pane", p.ID, "buffer", id)
	return p, nil
}

// ClosePane removes a pane. The buffer stays in the arena.
func (w *Workspace) ClosePane(id PaneID) error {
	i := w.index(id)
	if i < 0 {
		return &OpError{Op: "close pane", Target: fmt.Sprint(id), Err: ErrPaneNotFound}
	}
	w.panes = append(w.panes[:i], w.panes[i+1:]...)
	switch {
	case len(w.panes) == 0:
		w.focus = -1
	case w.focus >= len(w.panes):
		w.focus = len(w.panes) - 1
	}
	w.Layout(w.rect)

	w.logger.Debug("pane closed", "pane", id)
	return nil
}

// CloseBuffer removes a buffer that no pane shows.
func (w *Workspace) CloseBuffer(id BufferID) error {
	for _, p := range w.panes {
		if p.Buffer == id {
			return &OpError{Op: "close", Target: string(id), Err: ErrBufferInUse}
		}
	}
	return w.arena.Close(id)
}

func (w *Workspace) index(id PaneID) int {
	for i, p := range w.panes {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Pane returns the pane with id.
func (w *Workspace) Pane(id PaneID) (*Pane, error) {
	i := w.index(id)
	if i < 0 {
		return nil, &OpError{Op: "pane", Target: fmt.Sprint(id), Err: ErrPaneNotFound}
	}
	return w.panes[i], nil
}

// Panes returns the panes left to right.
func (w *Workspace) Panes() []*Pane {
	return append([]*Pane(nil), w.panes...)
}

// Focused returns the focused pane, or nil if there are none.
func (w *Workspace) Focused() *Pane {
	if w.focus < 0 || w.focus >= len(w.panes) {
		return nil
	}
	return w.panes[w.focus]
}

// Focus moves focus to pane id. Both panes repaint.
func (w *Workspace) Focus(id PaneID) error {
	i := w.index(id)
	if i < 0 {
		return &OpError{Op: "focus", Target: fmt.Sprint(id), Err: ErrPaneNotFound}
	}
	if i == w.focus {
		return nil
	}
	if old := w.Focused(); old != nil {
		old.Tracker.MarkChange(dirty.ChangeFocus, dirty.NoRegion())
	}
	w.focus = i
	w.panes[i].Tracker.MarkChange(dirty.ChangeFocus, dirty.NoRegion())
	return nil
}

// FocusNext moves focus to the next pane, wrapping around.
func (w *Workspace) FocusNext() {
	if len(w.panes) < 2 {
		return
	}
	_ = w.Focus(w.panes[(w.focus+1)%len(w.panes)].ID) // the id comes from w.panes
}

// PaneAt returns the pane containing surface cell (x, y).
func (w *Workspace) PaneAt(x, y int) (*Pane, bool) {
	for _, p := range w.panes {
		if p.Rect.Contains(x, y) {
			return p, true
		}
	}
	return nil, false
}

// View returns the buffer a pane shows.
func (w *Workspace) View(p *Pane) (buffer.View, error) {
	doc, err := w.arena.Get(p.Buffer)
	if err != nil {
		return nil, err
	}
	return doc.View, nil
}

// Layout splits rect into side-by-side columns, one per pane, and lays
// each pane out inside its column.
func (w *Workspace) Layout(rect core.Rect) {
	w.rect = rect
	if len(w.panes) == 0 {
		return
	}
	rects := rect.SplitColumns(len(w.panes))
	for i, p := range w.panes {
		p.Rect = rects[i]
		doc, err := w.arena.Get(p.Buffer)
		if err != nil {
			continue
		}
		w.layoutPane(p, doc.View)
	}
	if f := w.Focused(); f != nil {
		if doc, err := w.arena.Get(f.Buffer); err == nil {
			if tb, ok := doc.Text(); ok {
				w.ensureCaretVisible(f, tb)
			}
		}
	}
}

// layoutPane derives the content rectangle from the pane rectangle and
// resizes the viewport to it. This is the only place a content width is
// computed; painting and hit testing both read it back through the
// viewport's layout.
//
// A cell surface has no partial rows, so a content area of h cell rows gets
// a viewport (h-1) rows tall. Its trailing partially visible row is then the
// bottom cell row, and the last document row stays reachable under the
// scroll clamp.
func (w *Workspace) layoutPane(p *Pane, view buffer.View) {
	r := p.Rect
	if p.Status != nil && r.Height() > 0 {
		r.Bottom--
	}
	p.Gutter.SetLineCount(view.LineCount())
	r.Left += min(p.Gutter.Width(), r.Width())
	p.Content = r

	p.Viewport.Resize(
		float64(r.Width())*w.metrics.CharWidthPx,
		float64(max(0, r.Height()-1))*w.metrics.LineHeightPx,
	)
	p.Tracker.SetVisibleRows(r.Height())

	p.totalRows = p.Viewport.Layout().TotalScreenRows(view)
	p.Viewport.SetScrollOffsetPxWrapped(p.Viewport.ScrollOffsetPx(), p.totalRows)
}

func (w *Workspace) paneDoc(id PaneID) (*Pane, *Document, error) {
	p, err := w.Pane(id)
	if err != nil {
		return nil, nil, err
	}
	doc, err := w.arena.Get(p.Buffer)
	if err != nil {
		return nil, nil, err
	}
	return p, doc, nil
}

// Edit runs fn against the text buffer shown in pane id. The lines fn
// changes, plus the lines the caret and selection occupied before and
// after, are delivered to every pane viewing the buffer. Only the editing
// pane scrolls to keep its caret visible.
func (w *Workspace) Edit(id PaneID, fn func(*buffer.TextBuffer) buffer.DirtyLines) (buffer.DirtyLines, error) {
	p, doc, err := w.paneDoc(id)
	if err != nil {
		return buffer.NoDirty(), err
	}
	tb, ok := doc.Text()
	if !ok {
		return buffer.NoDirty(), &OpError{Op: "edit", Target: doc.Name, Err: ErrReadOnly}
	}

	before := caretLines(tb)
	beforeLine := tb.CursorPosition().Line
	d := fn(tb).Merge(tb.TakeDirty())
	d = d.Merge(before).Merge(caretLines(tb))

	w.deliver(doc, d, tb.CursorPosition().Line != beforeLine)
	w.ensureCaretVisible(p, tb)
	return d, nil
}

// Refresh drains a buffer's pending dirty lines and delivers them. Use it
// after changing a view outside Edit, such as appending to a static buffer.
func (w *Workspace) Refresh(id BufferID) error {
	doc, err := w.arena.Get(id)
	if err != nil {
		return err
	}
	w.deliver(doc, doc.View.TakeDirty(), false)
	return nil
}

// deliver resolves d independently for every pane viewing doc.
func (w *Workspace) deliver(doc *Document, d buffer.DirtyLines, caretMoved bool) {
	for _, p := range w.panes {
		if p.Buffer != doc.ID {
			continue
		}
		if p.Gutter.SetLineCount(doc.View.LineCount()) {
			// The gutter grew or shrank, so the wrap width changed.
			w.layoutPane(p, doc.View)
			w.logger.Debug("gutter resized", "pane", p.ID, "width", p.Gutter.Width())
			continue
		}
		if caretMoved && p.Gutter.Config().Mode != gutter.LineNumberAbsolute {
			// Every relative number changed.
			p.Tracker.MarkFull()
		}
		wl := p.Viewport.Layout()
		after := wl.TotalScreenRows(doc.View)
		pd := dirty.Reflow(d, p.totalRows, after)
		p.totalRows = after

		old := p.Viewport.ScrollOffsetPx()
		p.Viewport.SetScrollOffsetPxWrapped(old, after)
		if p.Viewport.ScrollOffsetPx() != old {
			p.Tracker.MarkChange(dirty.ChangeScroll, dirty.NoRegion())
			continue
		}
		p.Tracker.MarkChange(dirty.ChangeContent, dirty.Resolve(pd, p.Viewport, wl, doc.View))
	}
}

func (w *Workspace) ensureCaretVisible(p *Pane, tb *buffer.TextBuffer) {
	cur := tb.CursorPosition()
	row := p.Viewport.Layout().ScreenRowOf(tb, cur.Line, cur.Col)
	if p.Viewport.EnsureCursorVisible(row, p.totalRows) {
		p.Tracker.MarkChange(dirty.ChangeScroll, dirty.NoRegion())
	}
}

// caretLines returns the lines spanned by the caret and the selection.
func caretLines(tb *buffer.TextBuffer) buffer.DirtyLines {
	if start, end, ok := tb.SelectionRange(); ok {
		return buffer.LineRange(start.Line, end.Line+1)
	}
	return buffer.SingleLine(tb.CursorPosition().Line)
}

// SyncStatus refreshes the status bar of p from its buffer and viewport.
// It does nothing for panes without a status bar.
func (w *Workspace) SyncStatus(p *Pane) {
	if p.Status == nil {
		return
	}
	doc, err := w.arena.Get(p.Buffer)
	if err != nil {
		return
	}
	p.syncStatus(doc, p == w.Focused())
}

// Scroll scrolls pane id by rows. No other pane is touched.
func (w *Workspace) Scroll(id PaneID, rows int) error {
	return w.scroll(id, func(vp *viewport.Viewport, total int) {
		vp.ScrollByRows(rows, total)
	})
}

// ScrollPage scrolls pane id by whole pages, negative for up.
func (w *Workspace) ScrollPage(id PaneID, pages int) error {
	return w.scroll(id, func(vp *viewport.Viewport, total int) {
		for ; pages > 0; pages-- {
			vp.PageDown(total)
		}
		for ; pages < 0; pages++ {
			vp.PageUp(total)
		}
	})
}

func (w *Workspace) scroll(id PaneID, fn func(vp *viewport.Viewport, total int)) error {
	p, doc, err := w.paneDoc(id)
	if err != nil {
		return err
	}
	// Recomputed per gesture; an edit in another pane may have changed it.
	p.totalRows = p.Viewport.Layout().TotalScreenRows(doc.View)

	old := p.Viewport.ScrollOffsetPx()
	fn(p.Viewport, p.totalRows)
	if p.Viewport.ScrollOffsetPx() != old {
		p.Tracker.MarkChange(dirty.ChangeScroll, dirty.NoRegion())
	}
	return nil
}

// ApplyMouse performs a mouse action on pane id. Coordinates are resolved
// with the pane's current frame. Clicks on read-only views are ignored.
func (w *Workspace) ApplyMouse(id PaneID, act mouse.Action) error {
	if act.Kind == mouse.ActionScroll {
		return w.Scroll(id, act.Rows)
	}
	if act.Kind == mouse.ActionNone {
		return nil
	}

	p, doc, err := w.paneDoc(id)
	if err != nil {
		return err
	}
	if _, ok := doc.Text(); !ok {
		return nil
	}
	pos := p.Frame().HitTest(doc.View, act.X, act.Y)

	_, err = w.Edit(id, func(b *buffer.TextBuffer) buffer.DirtyLines {
		switch act.Kind {
		case mouse.ActionSetCursor:
			b.SetCursor(pos)
		case mouse.ActionSelectWord:
			b.SetCursor(pos)
			return b.SelectWordAt(pos.Col)
		case mouse.ActionSelectLine:
			return b.SelectLine(pos.Line)
		case mouse.ActionExtendTo:
			if _, ok := b.SelectionAnchor(); !ok {
				b.SetSelectionAnchorAtCursor()
			}
			b.MoveCursorPreservingSelection(pos)
		}
		return buffer.NoDirty()
	})
	return err
}
