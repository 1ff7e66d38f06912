//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"life-bg/internal/app"
	"life-bg/internal/background"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	background.SetLogger(logger)

	game := app.New(*cfg)
	defer game.Close()

	ebiten.SetWindowTitle("life-bg")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
