package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"isowalk/internal/game"
)

func main() {
	cfg := game.DefaultConfig()
	ebiten.SetWindowTitle("Isowalk")
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		log.Fatal(err)
	}
}
