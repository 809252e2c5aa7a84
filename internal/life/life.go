// Package life implements Conway's Game of Life on a toroidal grid,
// delegating the per-generation transition to a compute backend.
package life

import (
	"fmt"

	"gpulife/internal/compute"
	"gpulife/internal/core"
)

// SeedDensity is the default probability that a cell starts alive after
// Reset.
const SeedDensity = 0.2

// Life owns the double-buffered grid. The current buffer is the one on
// display and the one input edits land on; Step computes into the scratch
// buffer and swaps the roles.
type Life struct {
	grid    *core.Grid
	scratch *core.Grid
	stepper compute.Stepper
	density float64
}

// New returns a Life simulation of the given dimensions, advanced by the
// provided backend. Reset seeds cells alive with probability density;
// values outside (0, 1] fall back to SeedDensity. The grid starts empty;
// call Reset to seed it.
func New(w, h int, density float64, stepper compute.Stepper) *Life {
	if density <= 0 || density > 1 {
		density = SeedDensity
	}
	return &Life{
		grid:    core.NewGrid(w, h),
		scratch: core.NewGrid(w, h),
		stepper: stepper,
		density: density,
	}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.W, H: l.grid.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Reset reseeds every cell independently at the configured density using
// the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillDensity(rng, l.grid.Cells(), l.density)
}

// SetAlive forces one cell of the current buffer to alive. Out-of-bounds
// coordinates are ignored. Cells are never cleared this way.
func (l *Life) SetAlive(x, y int) {
	l.grid.SetAlive(x, y)
}

// Step advances the simulation by one generation: the backend computes
// the current buffer into the scratch buffer, then the buffers swap so
// the freshly computed generation becomes current.
func (l *Life) Step() error {
	if err := l.stepper.Step(l.grid.Cells(), l.scratch.Cells(), l.grid.W, l.grid.H); err != nil {
		return fmt.Errorf("advancing generation: %w", err)
	}
	l.grid, l.scratch = l.scratch, l.grid
	return nil
}

// Close releases the compute backend's resources.
func (l *Life) Close() error { return l.stepper.Close() }
