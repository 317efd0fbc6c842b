//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Viewer copies the live and prior generations into caller-owned slices.
type Viewer interface {
	ReadView(live, prior []uint8)
}

// GridPainter updates a single RGBA image from copies of the live and prior
// generations.
type GridPainter struct {
	w, h        int
	img         *ebiten.Image
	buf         []byte
	live, prior []uint8
	palette     Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{
		w:       w,
		h:       h,
		buf:     make([]byte, 4*w*h),
		live:    make([]uint8, w*h),
		prior:   make([]uint8, w*h),
		palette: palette,
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit reads the current view into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, v Viewer, scale int) {
	v.ReadView(gp.live, gp.prior)
	fillViewRGBA(gp.buf, gp.live, gp.prior, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
