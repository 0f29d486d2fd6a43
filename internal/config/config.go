package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/dshills/softwrap/internal/config/loader"
	"github.com/dshills/softwrap/internal/input/mouse"
	"github.com/dshills/softwrap/internal/renderer/gutter"
	"github.com/dshills/softwrap/internal/renderer/layout"
	"github.com/dshills/softwrap/internal/renderer/viewport"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "SOFTWRAP_"

// Config holds every softwrap setting.
type Config struct {
	Font    FontConfig
	View    ViewConfig
	Scroll  ScrollConfig
	Mouse   MouseConfig
	Logging LoggingConfig
}

// FontConfig holds the fixed cell metrics in pixels.
type FontConfig struct {
	CharWidth  float64
	LineHeight float64
}

// Metrics returns the cell metrics for layout.
func (f FontConfig) Metrics() layout.Metrics {
	return layout.Metrics{CharWidthPx: f.CharWidth, LineHeightPx: f.LineHeight}
}

// ViewConfig controls pane chrome.
type ViewConfig struct {
	LineNumbers bool

	// LineNumberMode is absolute, relative or hybrid.
	LineNumberMode string

	// StatusLine gives every pane a status bar on its bottom row.
	StatusLine bool
}

// Gutter returns the gutter configuration. An unknown mode falls back to
// absolute; Validate rejects it first.
func (v ViewConfig) Gutter() gutter.Config {
	cfg := gutter.DefaultConfig()
	cfg.ShowLineNumbers = v.LineNumbers
	cfg.Mode, _ = gutter.ParseLineNumberMode(v.LineNumberMode)
	return cfg
}

// ScrollConfig controls cursor following and repaint coalescing.
type ScrollConfig struct {
	// Margin is the number of rows kept between the caret and the pane
	// edges.
	Margin int

	// CoalesceThreshold is the fraction of a pane's rows above which a
	// partial repaint becomes a full one.
	CoalesceThreshold float64
}

// Margins returns the viewport margin configuration.
func (s ScrollConfig) Margins() viewport.MarginConfig {
	return viewport.MarginConfig{Top: s.Margin, Bottom: s.Margin}
}

// MouseConfig controls click grouping and wheel scrolling.
type MouseConfig struct {
	DoubleClickTime     time.Duration
	DoubleClickDistance float64
	WheelRows           int
	WheelRowsShift      int
	DragSelection       bool
}

// Handler returns the mouse handler configuration.
func (m MouseConfig) Handler() mouse.Config {
	return mouse.Config{
		DoubleClickTime:     m.DoubleClickTime,
		DoubleClickDistance: m.DoubleClickDistance,
		ScrollRows:          m.WheelRows,
		ScrollRowsShift:     m.WheelRowsShift,
		EnableDragSelection: m.DragSelection,
	}
}

// LoggingConfig selects the log level and destination. An empty File
// disables logging.
type LoggingConfig struct {
	Level string
	File  string
}

// Default returns the built-in settings.
func Default() *Config {
	m := mouse.DefaultConfig()
	margins := viewport.DefaultMargins()
	return &Config{
		Font: FontConfig{CharWidth: 8, LineHeight: 16},
		View: ViewConfig{LineNumberMode: "absolute"},
		Scroll: ScrollConfig{
			Margin:            margins.Top,
			CoalesceThreshold: 0.5,
		},
		Mouse: MouseConfig{
			DoubleClickTime:     m.DoubleClickTime,
			DoubleClickDistance: m.DoubleClickDistance,
			WheelRows:           m.ScrollRows,
			WheelRowsShift:      m.ScrollRowsShift,
			DragSelection:       m.EnableDragSelection,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path or a missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	return LoadWithFS(loader.DefaultFS(), path, EnvPrefix)
}

// LoadWithFS is Load reading from fsys with a custom environment prefix.
func LoadWithFS(fsys loader.FileSystem, path, envPrefix string) (*Config, error) {
	var file map[string]any
	if path != "" {
		var err error
		file, err = loader.ForPath(fsys, path).Load()
		if err != nil {
			return nil, err
		}
	}

	env, err := loader.NewEnvLoader(envPrefix).Load()
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	cfg := Default()
	if err := cfg.apply(loader.DeepMerge(file, env)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges.
func (c *Config) Validate() error {
	switch {
	case c.Font.CharWidth <= 0:
		return &ValueError{Key: "font.charWidth", Value: c.Font.CharWidth, Reason: "must be positive"}
	case c.Font.LineHeight <= 0:
		return &ValueError{Key: "font.lineHeight", Value: c.Font.LineHeight, Reason: "must be positive"}
	case c.Scroll.Margin < 0:
		return &ValueError{Key: "scroll.margin", Value: c.Scroll.Margin, Reason: "must not be negative"}
	case c.Scroll.CoalesceThreshold <= 0:
		return &ValueError{Key: "scroll.coalesceThreshold", Value: c.Scroll.CoalesceThreshold, Reason: "must be positive"}
	case c.Mouse.DoubleClickTime < 0:
		return &ValueError{Key: "mouse.doubleClickTime", Value: c.Mouse.DoubleClickTime, Reason: "must not be negative"}
	case c.Mouse.WheelRows < 1 || c.Mouse.WheelRowsShift < 1:
		return &ValueError{Key: "mouse.wheelRows", Value: c.Mouse.WheelRows, Reason: "must be at least 1"}
	}
	if _, ok := gutter.ParseLineNumberMode(c.View.LineNumberMode); !ok {
		return &ValueError{Key: "view.lineNumberMode", Value: c.View.LineNumberMode, Reason: "must be absolute, relative or hybrid"}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValueError{Key: "logging.level", Value: c.Logging.Level, Reason: "must be debug, info, warn or error"}
	}
	return nil
}
