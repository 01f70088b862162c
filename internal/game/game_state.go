package game

import (
	"github.com/ljurgs/game/internal/entities"
	log "github.com/sirupsen/logrus"
)

// resetPositions puts the player back in the middle facing down and drops the
// cat somewhere new. Entity IDs are kept.
func (g *Game) resetPositions() {
	g.player.Pos = g.playerStart()
	g.player.CancelPointer()
	g.player.Stabilizer = entities.Stabilizer{Display: entities.DirDown}
	g.player.Facing = entities.DirDown

	id := g.cat.ID
	s := g.settings
	g.cat = entities.NewCat(g.bounds, s.Cat.Speed, s.Cat.Sprite.sprite(), s.WanderConfig(), g.rng)
	g.cat.ID = id

	g.colliding = false
	g.indicator = indicator{}
	log.WithFields(log.Fields{"player": g.player.Pos, "cat": g.cat.Pos}).Info("positions reset")
}
