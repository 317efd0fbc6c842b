package render

import "image/color"

// Shade classifies a cell by comparing its current and previous state.
type Shade uint8

const (
	ShadeDead Shade = iota
	ShadeAlive
	ShadeBorn
	ShadeDied
)

// Classify returns the shade of a cell that is now/before alive (0 or 1).
func Classify(now, before uint8) Shade {
	switch {
	case now != 0 && before != 0:
		return ShadeAlive
	case now != 0:
		return ShadeBorn
	case before != 0:
		return ShadeDied
	default:
		return ShadeDead
	}
}

// Palette maps each Shade to a color.
type Palette [4]color.RGBA

// DefaultPalette paints stable cells green, births white and deaths blue on
// black.
var DefaultPalette = Palette{
	ShadeDead:  {A: 0xff},
	ShadeAlive: {G: 0xff, A: 0xff},
	ShadeBorn:  {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	ShadeDied:  {B: 0xff, A: 0xff},
}

// fillViewRGBA converts the live and prior buffers into RGBA pixels in buf.
func fillViewRGBA(buf []byte, live, prior []uint8, palette Palette) {
	for i, c := range live {
		col := palette[Classify(c, prior[i])]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
