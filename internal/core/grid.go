package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in a grid of this size.
func (s Size) Cells() int { return s.W * s.H }

// Grid stores a 2D grid of alive flags (0 or 1) in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions. Non-positive
// dimensions are clamped to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Get reports whether the cell at (x, y) is alive.
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, &IndexError{X: x, Y: y, Size: g.Size()}
	}
	return g.data[g.Index(x, y)] != 0, nil
}

// Set stores the alive flag of the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return &IndexError{X: x, Y: y, Size: g.Size()}
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(x, y)] = v
	return nil
}

// CopyFrom overwrites the grid contents with src. Both grids must share
// dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.data, src.data)
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Alive counts the live cells in the grid.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}
