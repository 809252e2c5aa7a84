//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"gpulife/internal/app"
	"gpulife/internal/compute"
	"gpulife/internal/core"
	"gpulife/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.ApplyArgs(flag.Args()); err != nil {
		log.Fatal(err)
	}

	if cfg.Verbose {
		compute.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	stepper, err := compute.New(cfg.Backend, cfg.Width, cfg.Height)
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim := life.New(cfg.Width, cfg.Height, cfg.Density, stepper)
	sim.Reset(seed)

	rate := core.NewTickRate(cfg.TPS)
	game := app.New(sim, rate, cfg.Scale, stepper.Name())

	size := sim.Size()
	ebiten.SetWindowTitle(fmt.Sprintf("gpulife %dx%d — Esc to exit, Space to reset", size.W, size.H))
	ebiten.SetTPS(rate.TPS())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	err = ebiten.RunGame(game)
	sim.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
