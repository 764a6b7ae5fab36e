//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"simblock/internal/app"
	"simblock/internal/core"
	"simblock/internal/sims/landvalue"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.Verbose)

	overrides, err := cfg.Overrides()
	if err != nil {
		logger.Error("invalid flags", "error", err)
		os.Exit(2)
	}
	sim, err := core.New(cfg.Sim, overrides)
	if err != nil {
		logger.Error("creating sim", "sim", cfg.Sim, "error", err, "available", core.Names())
		os.Exit(1)
	}
	world, ok := sim.(*landvalue.World)
	if !ok {
		logger.Error("sim has no grid view", "sim", cfg.Sim)
		os.Exit(1)
	}

	game := app.New(world, cfg.Seed, logger)
	screen := world.Layout().Screen

	ebiten.SetWindowTitle(fmt.Sprintf("simblock: %s", world.Name()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(screen.X, screen.Y)

	logger.Info("starting", "sim", world.Name(), "rows", world.Size().H, "cols", world.Size().W, "period", world.Config().Period)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", "error", err)
		os.Exit(1)
	}
}
