//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding  = 16
	hudBaseline = 13
	hudHeight   = 2*4 + hudBaseline + 3
)

// HUD draws the FPS and generation line on top of the grid.
type HUD struct {
	panel *ebiten.Image
	line  string
}

// NewHUD constructs an empty HUD.
func NewHUD() *HUD { return &HUD{} }

// Update refreshes the status line.
func (h *HUD) Update(generation uint64, evolving bool) {
	h.line = StatusText(ebiten.ActualFPS(), generation, evolving)
}

// Draw renders the status line onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.line == "" {
		return
	}
	face := basicfont.Face7x13
	width := text.BoundString(face, h.line).Dx() + 8
	if h.panel == nil || h.panel.Bounds().Dx() != width {
		h.panel = ebiten.NewImage(width, hudHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	text.Draw(h.panel, h.line, face, 4, 4+hudBaseline, color.White)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudPadding, hudPadding)
	screen.DrawImage(h.panel, op)
}
