// Package app runs softwrap's event loop.
//
// Each turn is single threaded: poll one event, apply it to the workspace
// (which resolves dirty regions for every pane), then paint whatever the
// panes' trackers report. Only Quit may be called from another goroutine.
package app

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dshills/softwrap/internal/config"
	"github.com/dshills/softwrap/internal/input/mouse"
	"github.com/dshills/softwrap/internal/renderer"
	"github.com/dshills/softwrap/internal/renderer/backend"
	"github.com/dshills/softwrap/internal/renderer/core"
	"github.com/dshills/softwrap/internal/workspace"
)

// Options configures the application.
type Options struct {
	// Config holds the settings. Nil means config.Default().
	Config *config.Config

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger

	// Files are opened on startup, one pane each. With no files a scratch
	// buffer is opened.
	Files []string
}

// Application owns the workspace and drives it from backend events.
type Application struct {
	cfg    *config.Config
	logger *slog.Logger

	ws      *workspace.Workspace
	backend backend.Backend
	painter *renderer.Painter
	mouse   *mouse.Handler

	// capture is the pane that owns the current mouse drag, 0 if none.
	capture workspace.PaneID

	// paste collects bracketed paste keys; nil outside a paste.
	paste *strings.Builder

	lastQuery string

	quit     atomic.Bool
	shutdown sync.Once
}

// New creates an Application and opens opts.Files.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	app := &Application{
		cfg:    cfg,
		logger: logger.With("component", "app"),
		mouse:  mouse.NewHandler(cfg.Mouse.Handler()),
	}
	app.ws = workspace.New(workspace.NewArena(), cfg.Font.Metrics(),
		workspace.WithLogger(logger),
		workspace.WithMargins(cfg.Scroll.Margins()),
		workspace.WithCoalesceThreshold(cfg.Scroll.CoalesceThreshold),
		workspace.WithGutter(cfg.View.Gutter()),
		workspace.WithStatusLine(cfg.View.StatusLine),
	)

	if err := app.openFiles(opts.Files); err != nil {
		return nil, &InitError{Component: "workspace", Err: err}
	}
	return app, nil
}

func (app *Application) openFiles(files []string) error {
	arena := app.ws.Arena()
	var docs []*workspace.Document
	for _, path := range files {
		doc, err := arena.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			// A new file starts empty.
			doc, err = arena.NewBuffer(filepath.Base(path)), nil
		}
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		docs = append(docs, arena.NewBuffer(""))
	}

	for _, doc := range docs {
		if _, err := app.ws.AddPane(doc.ID); err != nil {
			return err
		}
		app.logger.Info("opened buffer", "name", doc.Name, "lines", doc.View.LineCount())
	}
	return app.ws.Focus(app.ws.Panes()[0].ID)
}

// Workspace returns the application's workspace.
func (app *Application) Workspace() *workspace.Workspace {
	return app.ws
}

// SetBackend initializes b and lays the panes out over its surface.
func (app *Application) SetBackend(b backend.Backend) error {
	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	app.backend = b
	app.painter = renderer.NewPainter(b, renderer.DefaultTheme())

	w, h := b.Size()
	app.ws.Layout(core.RectFromSize(0, 0, h, w))
	return nil
}

// Run processes events until a quit is requested. It returns nil on a
// normal quit.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}

	app.logger.Info("event loop started")
	app.Render()
	for !app.quit.Load() {
		ev := app.backend.PollEvent()
		err := app.HandleEvent(ev)
		if errors.Is(err, ErrQuit) {
			break
		}
		if err != nil {
			app.logger.Warn("event failed", "event", ev.Type.String(), "error", err)
		}
		app.Render()
	}
	app.logger.Info("event loop stopped")
	return nil
}

// Quit asks Run to return. It is safe to call from any goroutine.
func (app *Application) Quit() {
	app.quit.Store(true)
	if app.backend != nil {
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// Shutdown releases the backend. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdown.Do(func() {
		if app.backend != nil {
			app.backend.Shutdown()
		}
	})
}

// HandleEvent applies one event. It returns ErrQuit when the event asks to
// exit.
func (app *Application) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventMouse:
		return app.handleMouse(ev)
	case backend.EventPaste:
		return app.handlePaste(ev)
	case backend.EventResize:
		app.ws.Layout(core.RectFromSize(0, 0, ev.Height, ev.Width))
		app.logger.Debug("resized", "width", ev.Width, "height", ev.Height)
	case backend.EventFocus:
		app.logger.Debug("terminal focus", "focused", ev.Focused)
	}
	return nil
}

// Render paints the dirty rows of every pane, refreshes status bars and
// places the caret of the focused pane.
func (app *Application) Render() {
	if app.painter == nil {
		return
	}
	for _, p := range app.ws.Panes() {
		view, err := app.ws.View(p)
		if err != nil {
			continue
		}
		if region := p.Tracker.Take(); region.IsDirty() {
			f := p.Frame()
			app.painter.Paint(p.Content, f, view, region)
			app.painter.PaintGutter(p.GutterRect(), f, view, p.Gutter, region)
		}
		if p.Status != nil {
			app.ws.SyncStatus(p)
			p.Status.Render(app.backend, p.StatusRect())
		}
	}

	if p := app.ws.Focused(); p != nil {
		if view, err := app.ws.View(p); err == nil {
			app.painter.PlaceCaret(p.Content, p.Frame(), view)
		}
	} else {
		app.backend.HideCursor()
	}
	app.painter.Flush()
}
