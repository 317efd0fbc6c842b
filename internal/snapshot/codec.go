// Package snapshot reads and writes .gol grid snapshots.
//
// A snapshot is a fixed header followed by one byte per cell:
//
//	magic      [4]byte  "GOL1"
//	width      uint32   little-endian
//	height     uint32   little-endian
//	generation uint64   little-endian
//	cells      [width*height]byte, 0 = dead, 1 = alive
//
// Cells are ordered column by column: every y for x=0, then every y for x=1,
// and so on.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"lifegrid/internal/core"
)

// Magic opens every .gol file.
var Magic = [4]byte{'G', 'O', 'L', '1'}

// Ext is the file extension used for snapshots on disk.
const Ext = ".gol"

var (
	// ErrNotFound reports a snapshot identifier with no backing file.
	ErrNotFound = errors.New("snapshot not found")
	// ErrCorruptFormat reports a malformed or truncated snapshot.
	ErrCorruptFormat = errors.New("corrupt snapshot")
	// ErrDimensionMismatch is matched by every DimensionError.
	ErrDimensionMismatch = errors.New("snapshot dimension mismatch")
)

// DimensionError reports a snapshot whose grid size differs from the engine's.
type DimensionError struct {
	Want core.Size
	Got  core.Size
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("snapshot is %dx%d, world is %dx%d", e.Got.W, e.Got.H, e.Want.W, e.Want.H)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

type header struct {
	Magic      [4]byte
	Width      uint32
	Height     uint32
	Generation uint64
}

// Encode writes g and its generation counter in .gol format.
func Encode(w io.Writer, g *core.Grid, generation uint64) error {
	h := header{Magic: Magic, Width: uint32(g.W), Height: uint32(g.H), Generation: generation}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	cells := g.Cells()
	payload := make([]byte, 0, len(cells))
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			payload = append(payload, cells[y*g.W+x])
		}
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write cells: %w", err)
	}
	return nil
}

// Decode reads a .gol snapshot whose dimensions must equal want. The returned
// grid is freshly allocated; nothing is decoded into caller-owned memory, so a
// failed decode has no side effects.
func Decode(r io.Reader, want core.Size) (*core.Grid, uint64, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, 0, fmt.Errorf("%w: header: %v", ErrCorruptFormat, err)
	}
	if h.Magic != Magic {
		return nil, 0, fmt.Errorf("%w: bad magic %q", ErrCorruptFormat, h.Magic[:])
	}
	if h.Width == 0 || h.Height == 0 {
		return nil, 0, fmt.Errorf("%w: empty %dx%d grid", ErrCorruptFormat, h.Width, h.Height)
	}
	got := core.Size{W: int(h.Width), H: int(h.Height)}
	if got != want {
		return nil, 0, &DimensionError{Want: want, Got: got}
	}

	payload := make([]byte, got.Cells())
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, 0, fmt.Errorf("%w: cells: %v", ErrCorruptFormat, err)
	}
	var extra [1]byte
	if _, err := io.ReadFull(r, extra[:]); err == nil {
		return nil, 0, fmt.Errorf("%w: trailing data after %d cells", ErrCorruptFormat, len(payload))
	}

	g := core.NewGrid(got.W, got.H)
	cells := g.Cells()
	i := 0
	for x := 0; x < got.W; x++ {
		for y := 0; y < got.H; y++ {
			v := payload[i]
			if v > 1 {
				return nil, 0, fmt.Errorf("%w: cell (%d,%d) has state %d", ErrCorruptFormat, x, y, v)
			}
			cells[y*got.W+x] = v
			i++
		}
	}
	return g, h.Generation, nil
}
