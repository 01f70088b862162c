package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ljurgs/game/internal/game"
	log "github.com/sirupsen/logrus"
)

func main() {
	s, err := game.LoadSettings()
	game.SetupLogging(s.LogLevel)
	if err != nil {
		log.WithError(err).Warn("using default settings")
	}

	g := game.New(s)
	ebiten.SetWindowTitle("spritewalk")
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
