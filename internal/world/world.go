// Package world is the command surface a presentation layer drives: it owns
// the generation buffers, the generation counter and the last dump identifier.
//
// A World is not safe for concurrent use. Every method is expected to be
// called from a single control loop; a multi-threaded caller must hold one
// mutex across each call.
package world

import (
	"errors"
	"fmt"
	"log"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/snapshot"
)

// ErrInvalidSize reports a configuration with a non-positive width or height.
var ErrInvalidSize = errors.New("world dimensions must be positive")

// World composes the store, engine, seeder and snapshot directory.
type World struct {
	cfg Config

	store  *core.Store
	engine life.Engine
	seeder *life.Seeder
	snaps  snapshot.Dir

	generation uint64
	lastDump   snapshot.ID

	logger *log.Logger
}

// New builds a World from cfg and seeds it randomly. A nil logger falls back
// to log.Default().
func New(cfg Config, logger *log.Logger) (*World, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if logger == nil {
		logger = log.Default()
	}
	store := core.NewStore(cfg.Width, cfg.Height)
	w := &World{
		cfg:    cfg,
		store:  store,
		engine: life.Engine{Boundary: cfg.Boundary},
		seeder: life.NewSeeder(cfg.Density, cfg.Seed),
		snaps:  snapshot.Dir{Path: cfg.SnapshotDir},
		logger: logger,
	}
	w.seeder.Seed(w.store, true)
	return w, nil
}

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.store.Size() }

// Generation returns the number of steps since the last reseed or load.
func (w *World) Generation() uint64 { return w.generation }

// LastDump returns the identifier of the most recent dump, if any.
func (w *World) LastDump() snapshot.ID { return w.lastDump }

// ReadView copies the live and prior buffers (row-major, 0 or 1 per cell)
// into caller-owned slices, which should hold Size().Cells() entries. Either
// slice may be nil to skip it.
func (w *World) ReadView(live, prior []uint8) {
	copy(live, w.store.Live().Cells())
	copy(prior, w.store.Prior().Cells())
}

// Step advances the world by one generation.
func (w *World) Step() {
	w.engine.Step(w.store)
	w.generation++
}

// Reseed fills the grid randomly or clears it and resets the counter.
func (w *World) Reseed(random bool) {
	w.seeder.Seed(w.store, random)
	w.generation = 0
	if random {
		w.logger.Printf("[world] reseeded %dx%d at density %.2f", w.cfg.Width, w.cfg.Height, w.seeder.Density)
		return
	}
	w.logger.Printf("[world] cleared %dx%d", w.cfg.Width, w.cfg.Height)
}

// ToggleCell flips one cell of the live buffer. The prior buffer and the
// generation counter are left alone.
func (w *World) ToggleCell(x, y int) error {
	live := w.store.Live()
	alive, err := live.Get(x, y)
	if err != nil {
		return err
	}
	return live.Set(x, y, !alive)
}

// CellView reports whether (x, y) is alive now and was alive one step ago.
func (w *World) CellView(x, y int) (now, before bool, err error) {
	now, err = w.store.Live().Get(x, y)
	if err != nil {
		return false, false, err
	}
	before, err = w.store.Prior().Get(x, y)
	return now, before, err
}

// DumpSnapshot persists the live grid and remembers the identifier as the
// default load target.
func (w *World) DumpSnapshot() (snapshot.ID, error) {
	id, err := w.snaps.Dump(w.store.Live(), w.generation)
	if err != nil {
		return "", err
	}
	w.lastDump = id
	w.logger.Printf("[snapshot] dumped generation %d to %s", w.generation, w.snaps.File(id))
	return id, nil
}

// LoadSnapshot restores the snapshot named id, or the last dump when id is
// empty. The world is untouched unless the load fully succeeds.
func (w *World) LoadSnapshot(id snapshot.ID) error {
	if id == "" {
		id = w.lastDump
	}
	if id == "" {
		return fmt.Errorf("no snapshot dumped yet: %w", snapshot.ErrNotFound)
	}
	g, gen, err := w.snaps.Load(id, w.Size())
	if err != nil {
		return err
	}
	w.restore(g, gen)
	w.logger.Printf("[snapshot] loaded %s at generation %d", id, gen)
	return nil
}

// LoadFile restores a snapshot from an arbitrary path.
func (w *World) LoadFile(path string) error {
	g, gen, err := snapshot.LoadFile(path, w.Size())
	if err != nil {
		return err
	}
	w.restore(g, gen)
	w.logger.Printf("[snapshot] loaded %s at generation %d", path, gen)
	return nil
}

func (w *World) restore(g *core.Grid, generation uint64) {
	w.store.Live().CopyFrom(g)
	w.store.Settle()
	w.generation = generation
}
