package world

import (
	"strconv"

	"lifegrid/internal/life"
)

// Config holds the tunables of a World. Dimensions are fixed for its lifetime.
type Config struct {
	Width  int
	Height int

	Seed     int64
	Density  float64
	Boundary life.Boundary

	// SnapshotDir is where DumpSnapshot writes and LoadSnapshot reads.
	SnapshotDir string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       128,
		Height:      128,
		Seed:        42,
		Density:     life.DefaultDensity,
		Boundary:    life.Bounded,
		SnapshotDir: ".",
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := life.ParseBoundary(v); err == nil {
			c.Boundary = parsed
		}
	}
	if v, ok := cfg["dir"]; ok && v != "" {
		c.SnapshotDir = v
	}
	return c
}
