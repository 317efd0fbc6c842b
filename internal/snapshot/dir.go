package snapshot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"

	"lifegrid/internal/core"
)

// ID names a persisted snapshot. It is derived from the generation number at
// dump time and maps onto a file name inside a Dir.
type ID string

const idPrefix = "dump_"

// IDFor returns the identifier used for a dump taken at generation.
func IDFor(generation uint64) ID {
	return ID(idPrefix + strconv.FormatUint(generation, 10))
}

// Generation recovers the generation an identifier was derived from.
func (id ID) Generation() (uint64, bool) {
	s, ok := strings.CutPrefix(string(id), idPrefix)
	if !ok {
		return 0, false
	}
	g, err := strconv.ParseUint(s, 10, 64)
	return g, err == nil
}

func (id ID) valid() bool {
	return id != "" && !strings.ContainsAny(string(id), `/\`) && id != "." && id != ".."
}

// Dir stores snapshots as <id>.gol files in a single directory.
type Dir struct {
	Path string
}

// File returns the path backing id.
func (d Dir) File(id ID) string {
	return filepath.Join(d.Path, string(id)+Ext)
}

// Dump writes g under the identifier derived from generation. The file is
// staged next to its destination and renamed into place only once fully
// written, so an earlier snapshot with the same name survives a failed dump.
func (d Dir) Dump(g *core.Grid, generation uint64) (ID, error) {
	id := IDFor(generation)
	err := d.commit(id, func(w io.Writer) error {
		return Encode(w, g, generation)
	})
	if err != nil {
		return "", fmt.Errorf("dump %s: %w", id, err)
	}
	return id, nil
}

// commit stages the bytes produced by write and replaces the file for id only
// if write and the flush both succeed.
func (d Dir) commit(id ID, write func(io.Writer) error) error {
	pf, err := renameio.NewPendingFile(d.File(id), renameio.WithPermissions(0o644))
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	bw := bufio.NewWriter(pf)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}

// Load decodes the snapshot named id, which must match the want dimensions.
func (d Dir) Load(id ID, want core.Size) (*core.Grid, uint64, error) {
	if !id.valid() {
		return nil, 0, fmt.Errorf("snapshot %q: %w", id, ErrNotFound)
	}
	return LoadFile(d.File(id), want)
}

// LoadFile decodes the snapshot stored at path.
func LoadFile(path string, want core.Size) (*core.Grid, uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("snapshot %s: %w", path, ErrNotFound)
		}
		return nil, 0, fmt.Errorf("snapshot %s: %w", path, err)
	}
	defer f.Close()

	g, gen, err := Decode(bufio.NewReader(f), want)
	if err != nil {
		return nil, 0, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return g, gen, nil
}
