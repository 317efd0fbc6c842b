package life

import "lifegrid/internal/core"

// DefaultDensity is the probability of a cell starting alive on random seeding.
const DefaultDensity = 0.3

// Seeder initializes or clears the contents of a store.
type Seeder struct {
	Density float64
	rng     *core.RNG
}

// NewSeeder returns a Seeder drawing from a deterministic RNG.
func NewSeeder(density float64, seed int64) *Seeder {
	return &Seeder{Density: density, rng: core.NewRNG(seed)}
}

// Seed fills the live buffer randomly or clears it, then settles the prior
// buffer onto the same state.
func (s *Seeder) Seed(store *core.Store, random bool) {
	live := store.Live()
	if random {
		s.rng.FillChance(live.Cells(), s.Density)
	} else {
		live.Clear()
	}
	store.Settle()
}
