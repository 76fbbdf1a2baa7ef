//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"mad-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "life: ", log.LstdFlags)
	loop, err := cfg.Build(logger)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(loop)
	w, h := app.WindowSize(loop)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
