package renderer

import (
	"github.com/dshills/softwrap/internal/renderer/backend"
	"github.com/dshills/softwrap/internal/renderer/core"
)

// Theme holds the styles the painter uses.
type Theme struct {
	Text      core.Style
	Selection core.Style

	// Filler marks rows below the end of the document.
	Filler     core.Style
	FillerRune rune

	// Gutter styles line numbers; GutterCurrent the caret's line.
	Gutter        core.Style
	GutterCurrent core.Style

	Cursor backend.CursorStyle
}

// DefaultTheme returns a theme that relies only on terminal defaults.
func DefaultTheme() Theme {
	return Theme{
		Text:          core.DefaultStyle(),
		Selection:     core.DefaultStyle().Reverse(),
		Filler:        core.DefaultStyle().Dim(),
		FillerRune:    '~',
		Gutter:        core.DefaultStyle().Dim(),
		GutterCurrent: core.DefaultStyle().Bold(),
		Cursor:        backend.CursorBar,
	}
}
