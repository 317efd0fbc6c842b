package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"lifegrid/internal/life"
	"lifegrid/internal/world"
)

// ErrUsage reports missing or malformed command-line arguments.
var ErrUsage = errors.New("usage")

// NoLimit marks a Config without a generation limit.
const NoLimit = -1

// Config represents the command-line parameters for the application.
type Config struct {
	World world.Config

	Scale int
	// TPS caps auto-evolution steps per second; 0 steps on every frame.
	TPS int

	SnapshotFile    string
	GenerationLimit int64

	boundary string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		World:           world.DefaultConfig(),
		Scale:           4,
		GenerationLimit: NoLimit,
		boundary:        life.Bounded.String(),
	}
}

// Bind attaches the optional flags to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.World.Seed, "seed", c.World.Seed, "seed for random reseeding")
	fs.Float64Var(&c.World.Density, "density", c.World.Density, "probability of a cell starting alive")
	fs.StringVar(&c.boundary, "boundary", c.boundary, "edge policy: bounded or toroidal")
	fs.StringVar(&c.World.SnapshotDir, "dir", c.World.SnapshotDir, "directory for dump_<generation>.gol snapshots")
	fs.IntVar(&c.TPS, "tps", c.TPS, "auto-evolution steps per second (0 = every frame)")
}

// Usage returns the one-line usage message for the named program.
func Usage(prog string) string {
	return fmt.Sprintf("usage: %s [flags] <width> <height> <scale> [<snapshot-file>] [<generation-limit>]", prog)
}

// Parse fills the positional arguments left over after flag parsing and
// validates the flags bound by Bind.
func (c *Config) Parse(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: expected at least 3 arguments, got %d", ErrUsage, len(args))
	}
	if len(args) > 5 {
		return fmt.Errorf("%w: expected at most 5 arguments, got %d", ErrUsage, len(args))
	}
	dims := []struct {
		name string
		dst  *int
	}{
		{"width", &c.World.Width},
		{"height", &c.World.Height},
		{"scale", &c.Scale},
	}
	for i, d := range dims {
		v, err := strconv.Atoi(args[i])
		if err != nil || v <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", ErrUsage, d.name, args[i])
		}
		*d.dst = v
	}
	if len(args) >= 4 {
		c.SnapshotFile = args[3]
	}
	if len(args) >= 5 {
		v, err := strconv.ParseInt(args[4], 10, 64)
		if err != nil || v < 0 {
			return fmt.Errorf("%w: generation limit must be a non-negative integer, got %q", ErrUsage, args[4])
		}
		c.GenerationLimit = v
	}

	b, err := life.ParseBoundary(c.boundary)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	c.World.Boundary = b
	if c.World.Density < 0 || c.World.Density > 1 {
		return fmt.Errorf("%w: density must be within [0,1], got %v", ErrUsage, c.World.Density)
	}
	if c.TPS < 0 {
		return fmt.Errorf("%w: tps must not be negative", ErrUsage)
	}
	return nil
}
