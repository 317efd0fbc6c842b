package render

import (
	"bytes"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		now, before uint8
		want        Shade
	}{
		{0, 0, ShadeDead},
		{1, 1, ShadeAlive},
		{1, 0, ShadeBorn},
		{0, 1, ShadeDied},
	}
	for _, c := range cases {
		if got := Classify(c.now, c.before); got != c.want {
			t.Fatalf("Classify(%d,%d)=%d want %d", c.now, c.before, got, c.want)
		}
	}
}

func TestFillViewRGBA(t *testing.T) {
	live := []uint8{0, 1, 1, 0}
	prior := []uint8{0, 1, 0, 1}
	buf := make([]byte, 4*len(live))
	fillViewRGBA(buf, live, prior, DefaultPalette)

	want := []byte{
		0, 0, 0, 0xff,
		0, 0xff, 0, 0xff,
		0xff, 0xff, 0xff, 0xff,
		0, 0, 0xff, 0xff,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("pixels %v, want %v", buf, want)
	}
}
