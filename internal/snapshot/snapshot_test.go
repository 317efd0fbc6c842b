package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"lifegrid/internal/core"
)

func sampleGrid(t *testing.T) *core.Grid {
	t.Helper()
	g := core.NewGrid(3, 2)
	for _, p := range [][2]int{{0, 0}, {2, 0}, {1, 1}} {
		if err := g.Set(p[0], p[1], true); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestEncodeLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleGrid(t), 258); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if len(b) != 20+6 {
		t.Fatalf("encoded %d bytes, want 26", len(b))
	}
	if !bytes.Equal(b[:4], []byte("GOL1")) {
		t.Fatalf("magic %q", b[:4])
	}
	if w := binary.LittleEndian.Uint32(b[4:]); w != 3 {
		t.Fatalf("width %d", w)
	}
	if h := binary.LittleEndian.Uint32(b[8:]); h != 2 {
		t.Fatalf("height %d", h)
	}
	if g := binary.LittleEndian.Uint64(b[12:]); g != 258 {
		t.Fatalf("generation %d", g)
	}
	// x=0: y0 y1, x=1: y0 y1, x=2: y0 y1
	want := []byte{1, 0, 0, 1, 1, 0}
	if !bytes.Equal(b[20:], want) {
		t.Fatalf("cells %v, want %v", b[20:], want)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	src := sampleGrid(t)
	var buf bytes.Buffer
	if err := Encode(&buf, src, 9); err != nil {
		t.Fatal(err)
	}
	g, gen, err := Decode(&buf, src.Size())
	if err != nil {
		t.Fatal(err)
	}
	if gen != 9 {
		t.Fatalf("generation %d, want 9", gen)
	}
	if !slices.Equal(g.Cells(), src.Cells()) {
		t.Fatal("decoded cells differ from source")
	}
}

func TestDecodeRejectsCorruptInput(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleGrid(t), 1); err != nil {
		t.Fatal(err)
	}
	good := buf.Bytes()

	badMagic := slices.Clone(good)
	badMagic[0] = 'X'
	badCell := slices.Clone(good)
	badCell[21] = 7
	zeroWidth := slices.Clone(good)
	binary.LittleEndian.PutUint32(zeroWidth[4:], 0)

	cases := map[string][]byte{
		"empty":          nil,
		"short header":   good[:10],
		"bad magic":      badMagic,
		"short payload":  good[:len(good)-1],
		"trailing bytes": append(slices.Clone(good), 0),
		"bad cell state": badCell,
		"zero width":     zeroWidth,
	}
	for name, data := range cases {
		_, _, err := Decode(bytes.NewReader(data), core.Size{W: 3, H: 2})
		if !errors.Is(err, ErrCorruptFormat) {
			t.Fatalf("%s: err=%v, want ErrCorruptFormat", name, err)
		}
	}
}

func TestDecodeDimensionMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleGrid(t), 1); err != nil {
		t.Fatal(err)
	}
	_, _, err := Decode(&buf, core.Size{W: 2, H: 3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err=%v, want ErrDimensionMismatch", err)
	}
	var dim *DimensionError
	if !errors.As(err, &dim) || dim.Got != (core.Size{W: 3, H: 2}) {
		t.Fatalf("unexpected dimension error %#v", err)
	}
}

func TestIDMapping(t *testing.T) {
	id := IDFor(42)
	if id != "dump_42" {
		t.Fatalf("IDFor(42)=%q", id)
	}
	if g, ok := id.Generation(); !ok || g != 42 {
		t.Fatalf("Generation()=%d,%v", g, ok)
	}
	if _, ok := ID("other").Generation(); ok {
		t.Fatal("foreign identifier should not parse")
	}
	d := Dir{Path: "snaps"}
	if got := d.File(id); got != filepath.Join("snaps", "dump_42.gol") {
		t.Fatalf("File=%q", got)
	}
}

func TestDirDumpLoad(t *testing.T) {
	d := Dir{Path: t.TempDir()}
	src := sampleGrid(t)
	id, err := d.Dump(src, 17)
	if err != nil {
		t.Fatal(err)
	}
	if id != IDFor(17) {
		t.Fatalf("id=%q", id)
	}
	g, gen, err := d.Load(id, src.Size())
	if err != nil {
		t.Fatal(err)
	}
	if gen != 17 || !slices.Equal(g.Cells(), src.Cells()) {
		t.Fatal("loaded snapshot differs from dumped grid")
	}

	entries, err := os.ReadDir(d.Path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "dump_17.gol" {
		t.Fatalf("unexpected directory contents %v", entries)
	}
}

func TestDirDumpOverwrites(t *testing.T) {
	d := Dir{Path: t.TempDir()}
	src := sampleGrid(t)
	if _, err := d.Dump(src, 3); err != nil {
		t.Fatal(err)
	}
	src.Clear()
	if _, err := d.Dump(src, 3); err != nil {
		t.Fatal(err)
	}
	g, _, err := d.Load(IDFor(3), src.Size())
	if err != nil {
		t.Fatal(err)
	}
	if g.Alive() != 0 {
		t.Fatal("second dump should replace the first")
	}
}

func TestDirDumpFailureLeavesNoFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	d := Dir{Path: missing}
	if _, err := d.Dump(sampleGrid(t), 1); err == nil {
		t.Fatal("dump into a missing directory should fail")
	}
	if _, err := os.Stat(d.File(IDFor(1))); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("failed dump left a file behind: %v", err)
	}
}

func TestDirLoadNotFound(t *testing.T) {
	d := Dir{Path: t.TempDir()}
	for _, id := range []ID{IDFor(5), "", "../dump_5"} {
		if _, _, err := d.Load(id, core.Size{W: 3, H: 2}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Load(%q) err=%v, want ErrNotFound", id, err)
		}
	}
}

func TestLoadFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.gol")
	if err := os.WriteFile(path, []byte("GOL1\x03\x00"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadFile(path, core.Size{W: 3, H: 2}); !errors.Is(err, ErrCorruptFormat) {
		t.Fatalf("err=%v, want ErrCorruptFormat", err)
	}
}

func TestFailedDumpKeepsExistingSnapshot(t *testing.T) {
	d := Dir{Path: t.TempDir()}
	src := sampleGrid(t)
	id, err := d.Dump(src, 4)
	if err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(d.File(id))
	if err != nil {
		t.Fatal(err)
	}

	errDisk := errors.New("disk full")
	err = d.commit(id, func(w io.Writer) error {
		if _, err := w.Write([]byte("GOL1 partial")); err != nil {
			return err
		}
		return errDisk
	})
	if !errors.Is(err, errDisk) {
		t.Fatalf("err=%v, want the write error", err)
	}

	after, err := os.ReadFile(d.File(id))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Fatal("failed dump modified the existing snapshot")
	}
	g, gen, err := d.Load(id, src.Size())
	if err != nil {
		t.Fatal(err)
	}
	if gen != 4 || !slices.Equal(g.Cells(), src.Cells()) {
		t.Fatal("existing snapshot no longer loads to the dumped state")
	}

	entries, err := os.ReadDir(d.Path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("failed dump left staging files behind: %v", entries)
	}
}
