package app

import (
	"errors"
	"strings"

	"github.com/dshills/softwrap/internal/engine/buffer"
	"github.com/dshills/softwrap/internal/input/mouse"
	"github.com/dshills/softwrap/internal/renderer/backend"
	"github.com/dshills/softwrap/internal/workspace"
)

func (app *Application) handlePaste(ev backend.Event) error {
	if ev.PasteStart {
		app.paste = new(strings.Builder)
		return nil
	}
	if app.paste == nil {
		return nil
	}
	text := app.paste.String()
	app.paste = nil

	p := app.ws.Focused()
	if p == nil || text == "" {
		return nil
	}
	app.logger.Debug("paste", "runes", len([]rune(text)))
	_, err := app.ws.Edit(p.ID, func(b *buffer.TextBuffer) buffer.DirtyLines {
		return b.InsertString(text)
	})
	if errors.Is(err, workspace.ErrReadOnly) {
		return nil
	}
	return err
}

// pasteKey records one key of a bracketed paste.
func (app *Application) pasteKey(ev backend.Event) {
	switch ev.Key {
	case backend.KeyRune:
		app.paste.WriteRune(ev.Rune)
	case backend.KeyEnter:
		app.paste.WriteByte('\n')
	case backend.KeyTab:
		app.paste.WriteByte('\t')
	}
}

// mouseTarget returns the pane a mouse report belongs to: the pane that
// owns the drag, else the pane under the pointer.
func (app *Application) mouseTarget(x, y int) *workspace.Pane {
	if app.capture != 0 {
		if p, err := app.ws.Pane(app.capture); err == nil {
			return p
		}
		app.capture = 0
	}
	p, _ := app.ws.PaneAt(x, y)
	return p
}

func (app *Application) handleMouse(ev backend.Event) error {
	target := app.mouseTarget(ev.MouseX, ev.MouseY)

	var pos mouse.Position
	if target != nil {
		x, y, _ := target.ContentPoint(ev.MouseX, ev.MouseY)
		pos = mouse.Position{X: x, Y: y}
	}

	mev := app.mouse.Classify(pos, convertButton(ev.MouseButton), convertMods(ev.Mod), ev.When)
	act := app.mouse.Handle(mev)

	switch {
	case mev.Phase == mouse.PhaseRelease:
		app.capture = 0
	case mev.Phase == mouse.PhasePress && !mev.Button.IsWheel() && target != nil:
		app.capture = target.ID
	}
	if target == nil {
		return nil
	}

	if mev.Phase == mouse.PhasePress && mev.Button == mouse.ButtonLeft {
		if err := app.ws.Focus(target.ID); err != nil {
			return err
		}
	}
	return app.ws.ApplyMouse(target.ID, act)
}

func convertButton(b backend.MouseButton) mouse.Button {
	switch b {
	case backend.MouseLeft:
		return mouse.ButtonLeft
	case backend.MouseMiddle:
		return mouse.ButtonMiddle
	case backend.MouseRight:
		return mouse.ButtonRight
	case backend.MouseWheelUp:
		return mouse.ButtonWheelUp
	case backend.MouseWheelDown:
		return mouse.ButtonWheelDown
	default:
		return mouse.ButtonNone
	}
}

func convertMods(m backend.ModMask) mouse.Modifier {
	var mods mouse.Modifier
	if m.Has(backend.ModShift) {
		mods |= mouse.ModShift
	}
	if m.Has(backend.ModCtrl) {
		mods |= mouse.ModCtrl
	}
	if m.Has(backend.ModAlt) {
		mods |= mouse.ModAlt
	}
	return mods
}
