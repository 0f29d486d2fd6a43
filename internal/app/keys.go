package app

import (
	"errors"
	"strings"

	"github.com/dshills/softwrap/internal/engine/buffer"
	"github.com/dshills/softwrap/internal/renderer/backend"
	"github.com/dshills/softwrap/internal/renderer/statusline"
	"github.com/dshills/softwrap/internal/workspace"
)

type editFunc = func(*buffer.TextBuffer) buffer.DirtyLines

func (app *Application) handleKey(ev backend.Event) error {
	if app.paste != nil {
		app.pasteKey(ev)
		return nil
	}

	switch ev.Key {
	case backend.KeyCtrlQ, backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyTab:
		app.ws.FocusNext()
		return nil
	case backend.KeyCtrlW:
		return app.split()
	}

	p := app.ws.Focused()
	if p == nil {
		return nil
	}
	if p.Status != nil {
		p.Status.ClearMessage()
	}

	switch ev.Key {
	case backend.KeyPageUp:
		return app.page(p, -1, ev.Mod.Has(backend.ModShift))
	case backend.KeyPageDown:
		return app.page(p, 1, ev.Mod.Has(backend.ModShift))
	case backend.KeyCtrlF:
		return app.findNext(p)
	}

	fn := editFor(ev)
	if fn == nil {
		return nil
	}
	_, err := app.ws.Edit(p.ID, fn)
	if errors.Is(err, workspace.ErrReadOnly) {
		return app.scrollKey(p, ev)
	}
	return err
}

func motion(shift bool, move, sel func(*buffer.TextBuffer)) editFunc {
	return func(b *buffer.TextBuffer) buffer.DirtyLines {
		if shift {
			sel(b)
		} else {
			move(b)
		}
		return buffer.NoDirty()
	}
}

// editFor maps a key to a buffer operation, or nil if the key is unbound.
func editFor(ev backend.Event) editFunc {
	shift := ev.Mod.Has(backend.ModShift)
	ctrl := ev.Mod.Has(backend.ModCtrl)
	alt := ev.Mod.Has(backend.ModAlt)

	type tb = buffer.TextBuffer
	switch ev.Key {
	case backend.KeyLeft:
		if ctrl || alt {
			return motion(shift, (*tb).MoveWordLeft, (*tb).SelectWordLeft)
		}
		return motion(shift, (*tb).MoveLeft, (*tb).SelectLeft)
	case backend.KeyRight:
		if ctrl || alt {
			return motion(shift, (*tb).MoveWordRight, (*tb).SelectWordRight)
		}
		return motion(shift, (*tb).MoveRight, (*tb).SelectRight)
	case backend.KeyUp:
		return motion(shift, (*tb).MoveUp, (*tb).SelectUp)
	case backend.KeyDown:
		return motion(shift, (*tb).MoveDown, (*tb).SelectDown)
	case backend.KeyHome:
		if ctrl {
			return motion(shift, (*tb).MoveToBufferStart, (*tb).SelectToBufferStart)
		}
		return motion(shift, (*tb).MoveToLineStart, (*tb).SelectToLineStart)
	case backend.KeyEnd, backend.KeyCtrlE:
		if ctrl && ev.Key == backend.KeyEnd {
			return motion(shift, (*tb).MoveToBufferEnd, (*tb).SelectToBufferEnd)
		}
		return motion(shift, (*tb).MoveToLineEnd, (*tb).SelectToLineEnd)
	case backend.KeyCtrlA:
		return motion(false, (*tb).SelectAll, nil)
	case backend.KeyEscape:
		return motion(false, (*tb).ClearSelection, nil)

	case backend.KeyEnter:
		return (*tb).InsertNewline
	case backend.KeyBackspace:
		if alt || ctrl {
			return (*tb).DeleteWordBackward
		}
		return (*tb).DeleteBackward
	case backend.KeyDelete:
		if alt || ctrl {
			return (*tb).DeleteWordForward
		}
		return (*tb).DeleteForward
	case backend.KeyCtrlK:
		return (*tb).DeleteToLineEnd
	case backend.KeyCtrlU:
		return (*tb).DeleteToLineStart

	case backend.KeyRune:
		switch {
		case alt && ev.Rune == 'd':
			return (*tb).DeleteWordForward
		case alt || ctrl:
			return nil
		}
		r := ev.Rune
		return func(b *buffer.TextBuffer) buffer.DirtyLines {
			return b.InsertChar(r)
		}
	}
	return nil
}

// scrollKey lets navigation keys scroll views that have no caret.
func (app *Application) scrollKey(p *workspace.Pane, ev backend.Event) error {
	switch ev.Key {
	case backend.KeyUp:
		return app.ws.Scroll(p.ID, -1)
	case backend.KeyDown:
		return app.ws.Scroll(p.ID, 1)
	case backend.KeyHome:
		return app.ws.Scroll(p.ID, -p.TotalRows())
	case backend.KeyEnd:
		return app.ws.Scroll(p.ID, p.TotalRows())
	}
	return nil
}

// page scrolls p by pages and keeps the caret on the same view row.
func (app *Application) page(p *workspace.Pane, pages int, extend bool) error {
	view, err := app.ws.View(p)
	if err != nil {
		return err
	}

	var x, y float64
	if pos, ok := view.Cursor(); ok {
		if px, py, visible := p.Frame().PositionFor(view, pos); visible {
			x, y = px, py
		}
	}
	if err := app.ws.ScrollPage(p.ID, pages); err != nil {
		return err
	}
	if !view.IsEditable() {
		return nil
	}

	target := p.Frame().HitTest(view, x, y)
	_, err = app.ws.Edit(p.ID, func(b *buffer.TextBuffer) buffer.DirtyLines {
		if !extend {
			b.SetCursor(target)
			return buffer.NoDirty()
		}
		if _, ok := b.SelectionAnchor(); !ok {
			b.SetSelectionAnchorAtCursor()
		}
		b.MoveCursorPreservingSelection(target)
		return buffer.NoDirty()
	})
	return err
}

// findNext searches for the selected text, or the previous query when the
// selection is empty or spans lines. It beeps when nothing matches.
func (app *Application) findNext(p *workspace.Pane) error {
	found := true
	_, err := app.ws.Edit(p.ID, func(b *buffer.TextBuffer) buffer.DirtyLines {
		if text, ok := b.SelectedText(); ok && text != "" && !strings.Contains(text, "\n") {
			app.lastQuery = text
		}
		if app.lastQuery == "" {
			found = false
			return buffer.NoDirty()
		}
		found = b.FindNext(app.lastQuery)
		return buffer.NoDirty()
	})
	if errors.Is(err, workspace.ErrReadOnly) {
		return nil
	}
	if err == nil && !found {
		app.backend.Beep()
		if p.Status != nil {
			p.Status.SetMessage("No match: "+app.lastQuery, statusline.MessageWarning)
		}
	}
	return err
}

// split opens a second pane on the focused buffer.
func (app *Application) split() error {
	p := app.ws.Focused()
	if p == nil {
		return nil
	}
	_, err := app.ws.AddPane(p.Buffer)
	return err
}
