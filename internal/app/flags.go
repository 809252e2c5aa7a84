package app

import (
	"flag"
	"fmt"
	"strconv"

	"gpulife/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Density float64
	Backend string
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 800, Height: 600, Scale: 1, TPS: 60, Seed: 0, Density: life.SeedDensity, Backend: "cpu"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "initial ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid (0 = time-derived)")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a cell starts alive on reset")
	fs.StringVar(&c.Backend, "backend", c.Backend, "compute backend: cpu or opencl")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
}

// ApplyArgs consumes the optional positional arguments: a single integer
// sets the initial ticks per second, overriding -tps.
func (c *Config) ApplyArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("expected at most one positional argument, got %d", len(args))
	}
	tps, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid ticks-per-second argument %q: %w", args[0], err)
	}
	c.TPS = tps
	return nil
}
