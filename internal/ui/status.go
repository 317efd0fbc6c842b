package ui

import (
	"fmt"

	"lifegrid/internal/core"
)

// StatusText formats the line shown in the corner of the window.
func StatusText(fps float64, generation uint64, evolving bool) string {
	state := "paused"
	if evolving {
		state = "running"
	}
	return fmt.Sprintf("FPS: %.1f - Generation: %d (%s)", fps, generation, state)
}

// CellAt maps a cursor position in window pixels onto grid coordinates.
func CellAt(cx, cy, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 || cx < 0 || cy < 0 {
		return 0, 0, false
	}
	x, y = cx/scale, cy/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}
