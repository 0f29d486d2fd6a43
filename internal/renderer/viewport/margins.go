package viewport

// MarginConfig holds scroll margin configuration in screen rows.
type MarginConfig struct {
	Top    int // Rows to keep above the cursor
	Bottom int // Rows to keep below the cursor
}

// DefaultMargins returns the margins used for ordinary cursor following.
func DefaultMargins() MarginConfig {
	return MarginConfig{Top: 1, Bottom: 1}
}

// SetMargins sets the cursor-following margins. Negative values become 0.
func (v *Viewport) SetMargins(config MarginConfig) {
	v.margins = MarginConfig{
		Top:    max(0, config.Top),
		Bottom: max(0, config.Bottom),
	}
}

// Margins returns the configured margins.
func (v *Viewport) Margins() MarginConfig {
	return v.margins
}

// maxMarginRatio limits margins to 1/3 of the viewport height to ensure
// there's always usable space in the center.
const maxMarginRatio = 3

// EffectiveMargins returns margins adjusted for the viewport height.
func (v *Viewport) EffectiveMargins() MarginConfig {
	top, bottom := clampRowMargins(v.margins.Top, v.margins.Bottom, v.FullyVisibleScreenRows())
	return MarginConfig{Top: top, Bottom: bottom}
}

// clampRowMargins bounds each margin by rows/maxMarginRatio, and by zero
// when negative.
func clampRowMargins(top, bottom, rows int) (int, int) {
	limit := rows / maxMarginRatio
	return max(0, min(top, limit)), max(0, min(bottom, limit))
}
