//go:build ebiten

package app

import (
	"image/color"
	"time"

	"gpulife/internal/core"
	"gpulife/internal/render"
	"gpulife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Grid palette: alive cells in the accent color, dead cells in the
// background color.
var (
	aliveColor = color.RGBA{R: 0x6A, G: 0x66, B: 0xA3, A: 0xFF}
	deadColor  = color.RGBA{R: 0xDD, G: 0xD8, B: 0xB8, A: 0xFF}
)

// Game adapts the simulation to the ebiten.Game interface. It owns the
// tick rate and drives one generation per update: poll input, compute the
// next grid, then Draw presents the freshly swapped-in generation.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	rate    *core.TickRate
	scale   int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, rate *core.TickRate, scale int, backend string) *Game {
	size := sim.Size()
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(backend),
		rate:    rate,
		scale:   scale,
	}
}

// Update polls the input state and advances the simulation by one
// generation. Controls are sampled as levels, not edges, so a held key
// re-applies every tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Reset takes priority over every other control this tick.
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.sim.Reset(time.Now().UnixNano())
	} else {
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			ebiten.SetTPS(g.rate.Increase())
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			ebiten.SetTPS(g.rate.Decrease())
		}
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			mx, my := ebiten.CursorPosition()
			if mx >= 0 && my >= 0 {
				// SetAlive ignores coordinates past the far edges.
				g.sim.SetAlive(mx/g.scale, my/g.scale)
			}
		}
	}

	return g.sim.Step()
}

// Draw renders the current simulation state and the rate indicator.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), aliveColor, deadColor, g.scale)
	g.hud.Draw(screen, g.rate.TPS())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
