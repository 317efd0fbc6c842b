package core

// Store owns the live and prior generation buffers. Both buffers always share
// the same dimensions.
type Store struct {
	live  *Grid
	prior *Grid
}

// NewStore allocates two all-dead buffers of the given dimensions.
func NewStore(w, h int) *Store {
	live := NewGrid(w, h)
	return &Store{live: live, prior: NewGrid(live.W, live.H)}
}

// Size reports the dimensions shared by both buffers.
func (s *Store) Size() Size { return s.live.Size() }

// Live returns the current, authoritative buffer.
func (s *Store) Live() *Grid { return s.live }

// Prior returns the buffer holding the state as of the previous step.
func (s *Store) Prior() *Grid { return s.prior }

// Get reads a cell from the live buffer.
func (s *Store) Get(x, y int) (bool, error) { return s.live.Get(x, y) }

// Set writes a cell in the live buffer.
func (s *Store) Set(x, y int, alive bool) error { return s.live.Set(x, y, alive) }

// Swap exchanges the live and prior roles without copying cells.
func (s *Store) Swap() { s.live, s.prior = s.prior, s.live }

// Settle makes the prior buffer equal to the live one, so a freshly seeded or
// loaded state shows no births or deaths.
func (s *Store) Settle() { s.prior.CopyFrom(s.live) }
