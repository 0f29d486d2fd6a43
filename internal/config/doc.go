// Package config loads softwrap settings.
//
// Settings come from three layers, later ones winning: built-in defaults,
// an optional TOML or YAML file, and SOFTWRAP_ environment variables.
//
//	[font]
//	charWidth = 8
//	lineHeight = 16
//
//	[view]
//	lineNumbers = false
//	lineNumberMode = "absolute"
//	statusLine = false
//
//	[scroll]
//	margin = 1
//	coalesceThreshold = 0.5
//
//	[mouse]
//	doubleClickTime = "400ms"
//	doubleClickDistance = 4
//	wheelRows = 3
//	wheelRowsShift = 1
//	dragSelection = true
//
//	[logging]
//	level = "info"
//	file = ""
//
// Unknown keys are ignored.
package config
