package config

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/dshills/softwrap/internal/renderer/gutter"
)

const testPrefix = "SWCFG_"

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if m := cfg.Font.Metrics(); !m.Valid() {
		t.Errorf("default metrics %+v should be valid", m)
	}
	if cfg.Mouse.Handler().DoubleClickTime != 400*time.Millisecond {
		t.Errorf("mouse handler = %+v", cfg.Mouse.Handler())
	}
	if got := cfg.Scroll.Margins(); got.Top != 1 || got.Bottom != 1 {
		t.Errorf("Margins() = %+v", got)
	}
}

func TestLoadFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"a.toml": {Data: []byte(`
[font]
charWidth = 7
lineHeight = 14.5

[mouse]
doubleClickTime = "250ms"
dragSelection = false

[logging]
level = "debug"
file = "/tmp/softwrap.log"

[unknown]
ignored = 1
`)},
		"b.yaml": {Data: []byte(`
scroll:
  margin: 3
  coalesceThreshold: 0.75
mouse:
  doubleClickTime: 300
  wheelRows: 5
`)},
	}

	cfg, err := LoadWithFS(fsys, "a.toml", testPrefix)
	if err != nil {
		t.Fatalf("LoadWithFS(toml) error = %v", err)
	}
	if cfg.Font.CharWidth != 7 || cfg.Font.LineHeight != 14.5 {
		t.Errorf("font = %+v", cfg.Font)
	}
	if cfg.Mouse.DoubleClickTime != 250*time.Millisecond || cfg.Mouse.DragSelection {
		t.Errorf("mouse = %+v", cfg.Mouse)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/softwrap.log" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Scroll.Margin != 1 {
		t.Errorf("unset keys should keep defaults, margin = %d", cfg.Scroll.Margin)
	}

	cfg, err = LoadWithFS(fsys, "b.yaml", testPrefix)
	if err != nil {
		t.Fatalf("LoadWithFS(yaml) error = %v", err)
	}
	if cfg.Scroll.Margin != 3 || cfg.Scroll.CoalesceThreshold != 0.75 {
		t.Errorf("scroll = %+v", cfg.Scroll)
	}
	if cfg.Mouse.DoubleClickTime != 300*time.Millisecond || cfg.Mouse.WheelRows != 5 {
		t.Errorf("mouse = %+v", cfg.Mouse)
	}
}

func TestLoadView(t *testing.T) {
	fsys := fstest.MapFS{
		"v.toml": {Data: []byte("[view]\nlineNumbers = true\nlineNumberMode = \"hybrid\"\nstatusLine = true\n")},
	}
	cfg, err := LoadWithFS(fsys, "v.toml", testPrefix)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.View.StatusLine {
		t.Error("statusLine should be set")
	}
	g := cfg.View.Gutter()
	if !g.ShowLineNumbers || g.Mode != gutter.LineNumberHybrid {
		t.Errorf("Gutter() = %+v", g)
	}

	if Default().View.Gutter().ShowLineNumbers {
		t.Error("line numbers should be off by default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadWithFS(fstest.MapFS{}, "nope.toml", testPrefix)
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}

	if _, err := LoadWithFS(fstest.MapFS{}, "", testPrefix); err != nil {
		t.Errorf("empty path error = %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	fsys := fstest.MapFS{
		"a.toml": {Data: []byte("[logging]\nlevel = \"warn\"\n")},
	}
	t.Setenv(testPrefix+"LOG_LEVEL", "error")
	t.Setenv(testPrefix+"SCROLL_MARGIN", "0")
	t.Setenv(testPrefix+"FONT_CHAR_WIDTH", "9")

	cfg, err := LoadWithFS(fsys, "a.toml", testPrefix)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("env should override the file, level = %q", cfg.Logging.Level)
	}
	if cfg.Scroll.Margin != 0 || cfg.Font.CharWidth != 9 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.toml":   {Data: []byte("[font\n")},
		"type.toml":     {Data: []byte("[font]\ncharWidth = \"wide\"\n")},
		"range.toml":    {Data: []byte("[font]\nlineHeight = 0\n")},
		"level.yaml":    {Data: []byte("logging:\n  level: loud\n")},
		"fraction.yaml": {Data: []byte("scroll:\n  margin: 1.5\n")},
		"dur.toml":      {Data: []byte("[mouse]\ndoubleClickTime = \"soon\"\n")},
		"mode.toml":     {Data: []byte("[view]\nlineNumberMode = \"roman\"\n")},
	}

	t.Run("parse", func(t *testing.T) {
		_, err := LoadWithFS(fsys, "broken.toml", testPrefix)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("error = %v, want *ParseError", err)
		}
	})

	tests := []struct {
		path string
		key  string
	}{
		{"type.toml", "font.charWidth"},
		{"range.toml", "font.lineHeight"},
		{"level.yaml", "logging.level"},
		{"fraction.yaml", "scroll.margin"},
		{"dur.toml", "mouse.doubleClickTime"},
		{"mode.toml", "view.lineNumberMode"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := LoadWithFS(fsys, tt.path, testPrefix)
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("error = %v, want ErrInvalidValue", err)
			}
			var ve *ValueError
			if !errors.As(err, &ve) || ve.Key != tt.key {
				t.Errorf("error key = %v, want %s", err, tt.key)
			}
		})
	}
}
