package life

import (
	"fmt"

	"lifegrid/internal/core"
)

// Boundary decides how neighbour positions outside the grid are treated.
type Boundary uint8

const (
	// Bounded treats every cell outside the grid as dead.
	Bounded Boundary = iota
	// Toroidal wraps coordinates around both edges.
	Toroidal
)

func (b Boundary) String() string {
	switch b {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("Boundary(%d)", uint8(b))
	}
}

// ParseBoundary maps a configuration string onto a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "bounded", "dead", "":
		return Bounded, nil
	case "toroidal", "wrap", "torus":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("unknown boundary %q", s)
}

// Rule is Conway's B3/S23 rule.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Engine advances a core.Store by one generation at a time.
type Engine struct {
	Boundary Boundary
}

// Step computes the next generation from the live buffer into the prior
// buffer and swaps them. The live buffer is never written while it is read.
func (e Engine) Step(s *core.Store) {
	cur, nxt := s.Live(), s.Prior()
	w, h := cur.W, cur.H
	src, dst := cur.Cells(), nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			n := e.neighbors(cur, x, y)
			dst[idx] = 0
			if Rule(src[idx] == 1, n) {
				dst[idx] = 1
			}
		}
	}
	s.Swap()
}

func (e Engine) neighbors(g *core.Grid, x, y int) int {
	cells := g.Cells()
	w := g.W
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				if e.Boundary != Toroidal {
					continue
				}
				nx, ny = g.Wrap(nx, ny)
			}
			n += int(cells[ny*w+nx])
		}
	}
	return n
}
