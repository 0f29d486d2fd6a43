package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/softwrap/internal/config"
	"github.com/dshills/softwrap/internal/engine/buffer"
	"github.com/dshills/softwrap/internal/renderer/backend"
)

func newTestApp(t *testing.T, width, height int, content string) (*Application, *backend.Memory) {
	t.Helper()
	var files []string
	if content != "" {
		path := filepath.Join(t.TempDir(), "doc.txt")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		files = append(files, path)
	}

	app, err := New(Options{Files: files})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	mem := backend.NewMemory(width, height)
	if err := app.SetBackend(mem); err != nil {
		t.Fatalf("SetBackend() error = %v", err)
	}
	t.Cleanup(app.Shutdown)
	return app, mem
}

func focusedText(t *testing.T, app *Application) *buffer.TextBuffer {
	t.Helper()
	view, err := app.Workspace().View(app.Workspace().Focused())
	if err != nil {
		t.Fatal(err)
	}
	tb, ok := view.(*buffer.TextBuffer)
	if !ok {
		t.Fatal("focused pane is not a text buffer")
	}
	return tb
}

func keyRune(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
}

func key(k backend.Key, mod backend.ModMask) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k, Mod: mod}
}

func send(t *testing.T, app *Application, events ...backend.Event) {
	t.Helper()
	for _, ev := range events {
		if err := app.HandleEvent(ev); err != nil {
			t.Fatalf("HandleEvent(%v) error = %v", ev.Type, err)
		}
	}
	app.Render()
}

func TestRunTypesAndQuits(t *testing.T) {
	app, mem := newTestApp(t, 40, 6, "")

	for _, ev := range []backend.Event{
		keyRune('h'), keyRune('i'), key(backend.KeyEnter, 0), keyRune('x'),
		key(backend.KeyCtrlQ, 0),
	} {
		mem.PostEvent(ev)
	}
	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"hi", "x", "~", "~", "~", "~"}
	for y, w := range want {
		if got := mem.Row(y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}
	if x, y, visible := mem.CursorPosition(); !visible || x != 1 || y != 1 {
		t.Errorf("cursor = (%d, %d, %v), want (1, 1, true)", x, y, visible)
	}
}

func TestRunWithoutBackend(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := app.Run(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Run() error = %v, want ErrNoBackend", err)
	}
}

func TestQuitStopsRun(t *testing.T) {
	app, _ := newTestApp(t, 10, 3, "")
	app.Quit()
	if err := app.Run(); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}

func TestWrappedRendering(t *testing.T) {
	app, mem := newTestApp(t, 10, 4, "abcdefghijklmno")
	app.Render()

	want := []string{"abcdefghij", "klmno", "~", "~"}
	for y, w := range want {
		if got := mem.Row(y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}

	send(t, app, key(backend.KeyEnd, 0))
	if x, y, _ := mem.CursorPosition(); x != 5 || y != 1 {
		t.Errorf("caret at line end = (%d, %d), want (5, 1)", x, y)
	}
}

func TestRenderRepaintsOnlyDirtyRows(t *testing.T) {
	app, mem := newTestApp(t, 10, 5, "one\ntwo\nthree")
	app.Render()
	mem.ResetStats()

	send(t, app, key(backend.KeyDown, 0), keyRune('X'))
	if got := mem.Row(1); got != "Xtwo" {
		t.Errorf("row 1 = %q", got)
	}
	// Lines 0 and 1: the caret left line 0, then line 1 changed.
	if got := mem.Writes(); got != 20 {
		t.Errorf("writes = %d, want 20", got)
	}
	if got := mem.Shows(); got != 1 {
		t.Errorf("shows = %d, want one flush per render", got)
	}
}

func TestEditingKeys(t *testing.T) {
	tests := []struct {
		name   string
		events []backend.Event
		want   string
	}{
		{"backspace", []backend.Event{key(backend.KeyEnd, 0), key(backend.KeyBackspace, 0)}, "hello worl"},
		{"delete", []backend.Event{key(backend.KeyDelete, 0)}, "ello world"},
		{"word backspace", []backend.Event{key(backend.KeyEnd, 0), key(backend.KeyBackspace, backend.ModAlt)}, "hello "},
		{"alt d", []backend.Event{{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'd', Mod: backend.ModAlt}}, " world"},
		{"kill line", []backend.Event{key(backend.KeyRight, backend.ModCtrl), key(backend.KeyCtrlK, 0)}, "hello"},
		{"kill to start", []backend.Event{key(backend.KeyEnd, 0), key(backend.KeyLeft, 0), key(backend.KeyCtrlU, 0)}, "d"},
		{"select all replace", []backend.Event{key(backend.KeyCtrlA, 0), keyRune('z')}, "z"},
		{"shift select", []backend.Event{key(backend.KeyRight, backend.ModShift), key(backend.KeyRight, backend.ModShift), keyRune('J')}, "Jllo world"},
		{"shift past end then backspace", []backend.Event{key(backend.KeyEnd, 0), key(backend.KeyRight, backend.ModShift), key(backend.KeyBackspace, 0), key(backend.KeyBackspace, 0)}, "hello wor"},
		{"escape clears selection", []backend.Event{key(backend.KeyCtrlA, 0), key(backend.KeyEscape, 0), keyRune('!')}, "hello world!"},
		{"ctrl rune ignored", []backend.Event{{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'x', Mod: backend.ModCtrl}}, "hello world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, 40, 5, "hello world")
			send(t, app, tt.events...)
			if got := focusedText(t, app).Content(); got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBracketedPaste(t *testing.T) {
	app, mem := newTestApp(t, 40, 5, "")

	send(t, app,
		backend.Event{Type: backend.EventPaste, PasteStart: true},
		keyRune('a'), keyRune('b'), key(backend.KeyEnter, 0), keyRune('c'),
		backend.Event{Type: backend.EventPaste},
	)
	if got := focusedText(t, app).Content(); got != "ab\nc" {
		t.Errorf("content = %q, want %q", got, "ab\nc")
	}
	if mem.Row(0) != "ab" || mem.Row(1) != "c" {
		t.Errorf("rows = %q, %q", mem.Row(0), mem.Row(1))
	}
}

func TestSplitAndFocus(t *testing.T) {
	app, mem := newTestApp(t, 40, 4, "")
	ws := app.Workspace()

	send(t, app, key(backend.KeyCtrlW, 0))
	panes := ws.Panes()
	if len(panes) != 2 || ws.Focused() != panes[1] {
		t.Fatalf("split should add a focused pane, got %d panes", len(panes))
	}
	send(t, app, key(backend.KeyTab, 0), keyRune('x'))
	if ws.Focused() != panes[0] {
		t.Error("Tab should move focus back to the first pane")
	}

	// Both panes show the shared buffer.
	if got, want := mem.Row(0), "x"+strings.Repeat(" ", 19)+"x"; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
	if x, y, _ := mem.CursorPosition(); x != 1 || y != 0 {
		t.Errorf("caret = (%d, %d), want the first pane's (1, 0)", x, y)
	}
}

func mouseAt(x, y int, b backend.MouseButton, when time.Time) backend.Event {
	return backend.Event{Type: backend.EventMouse, MouseX: x, MouseY: y, MouseButton: b, When: when}
}

func TestMouseClicks(t *testing.T) {
	app, _ := newTestApp(t, 40, 6, "hello world\nsecond")
	tb := focusedText(t, app)
	t0 := time.Now()

	send(t, app, mouseAt(7, 0, backend.MouseLeft, t0), mouseAt(7, 0, backend.MouseNone, t0))
	if got := tb.CursorPosition(); got != buffer.Pos(0, 7) {
		t.Errorf("click cursor = %v, want (0:7)", got)
	}

	t1 := t0.Add(50 * time.Millisecond)
	send(t, app, mouseAt(7, 0, backend.MouseLeft, t1), mouseAt(7, 0, backend.MouseNone, t1))
	if text, _ := tb.SelectedText(); text != "world" {
		t.Errorf("double click selected %q, want %q", text, "world")
	}

	t2 := t1.Add(50 * time.Millisecond)
	send(t, app, mouseAt(7, 0, backend.MouseLeft, t2), mouseAt(7, 0, backend.MouseNone, t2))
	if text, _ := tb.SelectedText(); text != "hello world\n" {
		t.Errorf("triple click selected %q", text)
	}

	// Below the document lands at the end of the buffer.
	t3 := t2.Add(time.Second)
	send(t, app, mouseAt(30, 4, backend.MouseLeft, t3), mouseAt(30, 4, backend.MouseNone, t3))
	if got := tb.CursorPosition(); got != buffer.Pos(1, 6) {
		t.Errorf("click below document = %v, want (1:6)", got)
	}
}

func TestMouseDragSelects(t *testing.T) {
	app, _ := newTestApp(t, 40, 6, "hello world\nsecond")
	tb := focusedText(t, app)
	t0 := time.Now()

	send(t, app,
		mouseAt(2, 0, backend.MouseLeft, t0),
		mouseAt(3, 1, backend.MouseLeft, t0.Add(10*time.Millisecond)),
		mouseAt(4, 1, backend.MouseLeft, t0.Add(20*time.Millisecond)),
		mouseAt(4, 1, backend.MouseNone, t0.Add(30*time.Millisecond)),
	)
	start, end, ok := tb.SelectionRange()
	if !ok || start != buffer.Pos(0, 2) || end != buffer.Pos(1, 4) {
		t.Errorf("selection = %v..%v (%v), want (0:2)..(1:4)", start, end, ok)
	}
	if app.capture != 0 {
		t.Error("release should end the drag capture")
	}
}

func TestMouseWheelScrollsHoveredPane(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line"
	}
	app, mem := newTestApp(t, 40, 6, strings.Join(lines, "\n"))
	send(t, app, key(backend.KeyCtrlW, 0))
	left, right := app.Workspace().Panes()[0], app.Workspace().Panes()[1]

	send(t, app, mouseAt(1, 1, backend.MouseWheelDown, time.Now()))
	lh := app.Workspace().Metrics().LineHeightPx
	if got := left.Viewport.ScrollOffsetPx(); got != 3*lh {
		t.Errorf("left offset = %v, want %v", got, 3*lh)
	}
	if got := right.Viewport.ScrollOffsetPx(); got != 0 {
		t.Errorf("right offset = %v, want 0", got)
	}
	if app.Workspace().Focused() != right {
		t.Error("wheel should not move focus")
	}
	if mem.Row(0) != "line"+strings.Repeat(" ", 16)+"line" {
		t.Errorf("row 0 = %q", mem.Row(0))
	}
}

func TestFindNext(t *testing.T) {
	app, mem := newTestApp(t, 40, 4, "foo bar foo")
	tb := focusedText(t, app)

	send(t, app, key(backend.KeyCtrlF, 0))
	if tb.HasSelection() {
		t.Error("find without a query should do nothing")
	}

	send(t, app,
		key(backend.KeyRight, backend.ModShift),
		key(backend.KeyRight, backend.ModShift),
		key(backend.KeyRight, backend.ModShift),
		key(backend.KeyCtrlF, 0),
	)
	start, end, _ := tb.SelectionRange()
	if start != buffer.Pos(0, 8) || end != buffer.Pos(0, 11) {
		t.Errorf("match = %v..%v, want (0:8)..(0:11)", start, end)
	}
	_ = mem
}

func TestPageDownKeepsCaretRow(t *testing.T) {
	lines := make([]string, 40)
	for i := range lines {
		lines[i] = "row"
	}
	app, _ := newTestApp(t, 20, 6, strings.Join(lines, "\n"))
	tb := focusedText(t, app)
	p := app.Workspace().Focused()

	send(t, app, key(backend.KeyDown, 0), key(backend.KeyDown, 0), key(backend.KeyPageDown, 0))
	first := p.Viewport.FirstVisibleScreenRow()
	if first == 0 {
		t.Fatal("page down should scroll")
	}
	if got := tb.CursorPosition().Line; got != first+2 {
		t.Errorf("caret line = %d, want %d", got, first+2)
	}
}

func TestResize(t *testing.T) {
	app, mem := newTestApp(t, 40, 6, "abcdefghijklmnopqrstuvwxy")
	mem.Resize(20, 4)

	send(t, app, mem.PollEvent())
	p := app.Workspace().Focused()
	if p.Rect.Width() != 20 || p.Rect.Height() != 4 {
		t.Errorf("pane rect = %+v", p.Rect)
	}
	if mem.Row(0) != "abcdefghijklmnopqrst" || mem.Row(1) != "uvwxy" {
		t.Errorf("rows = %q, %q", mem.Row(0), mem.Row(1))
	}
}

func TestNewOpensMissingFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	app, err := New(Options{Files: []string{path}})
	if err != nil {
		t.Fatal(err)
	}
	doc, err := app.Workspace().Arena().Get(app.Workspace().Focused().Buffer)
	if err != nil || doc.Name != "new.txt" || doc.View.LineCount() != 1 {
		t.Errorf("doc = %+v, %v", doc, err)
	}
}

func TestChromeNarrowsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("abcdefghijklmnopqrstuvwxyz0123"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.View.LineNumbers = true
	cfg.View.StatusLine = true

	app, err := New(Options{Config: cfg, Files: []string{path}})
	if err != nil {
		t.Fatal(err)
	}
	mem := backend.NewMemory(30, 5)
	if err := app.SetBackend(mem); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(app.Shutdown)
	app.Render()

	p := app.Workspace().Focused()
	if got := p.Viewport.Layout().ColsPerRow(); got != 26 {
		t.Fatalf("ColsPerRow() = %d, want 26 after a 4-cell gutter", got)
	}
	want := []string{"  1 abcdefghijklmnopqrstuvwxyz", "  ↪ 0123", "    ~", "    ~"}
	for y, w := range want {
		if got := mem.Row(y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}
	status := mem.Row(4)
	if !strings.HasPrefix(status, " doc.txt") || !strings.HasSuffix(status, "Ln 1, Col 1 | All") {
		t.Errorf("status row = %q", status)
	}
	if x, y, ok := mem.CursorPosition(); !ok || x != 4 || y != 0 {
		t.Errorf("cursor = (%d, %d, %v), want (4, 0, true)", x, y, ok)
	}

	// A click in the gutter lands on the start of that wrapped row.
	tb := focusedText(t, app)
	t0 := time.Now()
	send(t, app, mouseAt(1, 1, backend.MouseLeft, t0), mouseAt(1, 1, backend.MouseNone, t0))
	if got := tb.CursorPosition(); got != buffer.Pos(0, 26) {
		t.Errorf("gutter click = %v, want (0:26)", got)
	}
	if !strings.HasSuffix(mem.Row(4), "Ln 1, Col 27 | All") {
		t.Errorf("status row after click = %q", mem.Row(4))
	}
}

func TestFindMissReportsInStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("alpha beta"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.View.StatusLine = true
	app, err := New(Options{Config: cfg, Files: []string{path}})
	if err != nil {
		t.Fatal(err)
	}
	mem := backend.NewMemory(40, 4)
	if err := app.SetBackend(mem); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(app.Shutdown)

	// Nothing selected and no previous query.
	send(t, app, key(backend.KeyCtrlF, 0))
	app.lastQuery = "gamma"
	send(t, app, key(backend.KeyCtrlF, 0))
	if got := mem.Row(3); !strings.HasPrefix(got, " No match: gamma") {
		t.Errorf("status row = %q", got)
	}

	send(t, app, key(backend.KeyRight, 0))
	if got := mem.Row(3); !strings.HasPrefix(got, " doc.txt") {
		t.Errorf("status row after a key = %q", got)
	}
}
