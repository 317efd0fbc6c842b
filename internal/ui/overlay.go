//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay outlines the cell under the cursor, which is the cell a click
// would toggle. G switches it on and off.
type Overlay struct {
	size  core.Size
	scale int
	show  bool
	pixel *ebiten.Image

	x, y  int
	hover bool
}

// NewOverlay constructs an overlay for a grid of the given size and scale.
func NewOverlay(size core.Size, scale int) *Overlay {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Overlay{size: size, scale: scale, show: true, pixel: pixel}
}

// Update handles the toggle key and tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
	cx, cy := ebiten.CursorPosition()
	o.x, o.y, o.hover = CellAt(cx, cy, o.scale, o.size)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || !o.hover || o.scale < 3 {
		return
	}
	s := float64(o.scale)
	x, y := float64(o.x)*s, float64(o.y)*s
	col := color.RGBA{R: 255, G: 200, B: 40, A: 255}
	o.drawRect(screen, x, y, s, 1, col)
	o.drawRect(screen, x, y+s-1, s, 1, col)
	o.drawRect(screen, x, y, 1, s, col)
	o.drawRect(screen, x+s-1, y, 1, s, col)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
