package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every IndexError.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// IndexError reports an access outside the grid.
type IndexError struct {
	X, Y int
	Size Size
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.X, e.Y, e.Size.W, e.Size.H)
}

func (e *IndexError) Unwrap() error { return ErrOutOfBounds }
