//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the tick-rate indicator in the corner of the screen.
type HUD struct {
	backend string
	shadow  color.RGBA
	ink     color.RGBA
}

// NewHUD constructs a HUD labelled with the compute backend in use.
func NewHUD(backend string) *HUD {
	return &HUD{
		backend: backend,
		shadow:  color.RGBA{A: 255},
		ink:     color.RGBA{R: 240, G: 240, B: 240, A: 255},
	}
}

// Draw paints the current ticks-per-second target and backend name.
func (h *HUD) Draw(screen *ebiten.Image, tps int) {
	if h == nil {
		return
	}
	msg := fmt.Sprintf("%d tps | %s", tps, h.backend)
	face := basicfont.Face7x13
	text.Draw(screen, msg, face, 9, 17, h.shadow)
	text.Draw(screen, msg, face, 8, 16, h.ink)
}
