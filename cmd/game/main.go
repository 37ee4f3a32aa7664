package main

import (
	"log"

	"github.com/Garsondee/Robotina/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	grid, err := game.NewGrid(game.DefaultTileSize, game.DefaultTilesHorizontal, game.DefaultTilesVertical)
	if err != nil {
		log.Fatal(err)
	}
	g, err := game.New(grid)
	if err != nil {
		log.Fatal(err)
	}

	w, h := grid.WindowSize()
	ebiten.SetWindowTitle(game.WindowTitle)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(game.TPS)
	// Window close is routed through the session as a quit event.
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
