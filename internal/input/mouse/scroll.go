package mouse

// handleWheel converts a wheel tick into a signed row count.
func (h *Handler) handleWheel(event Event) Action {
	rows := h.config.ScrollRows
	if event.Modifiers.Has(ModShift) {
		rows = h.config.ScrollRowsShift
	}
	if rows <= 0 {
		return Action{}
	}

	at := Action{Kind: ActionScroll, X: event.Position.X, Y: event.Position.Y, Rows: rows}
	if event.Button == ButtonWheelUp {
		at.Rows = -rows
	}
	return at
}
