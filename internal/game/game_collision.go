package game

import (
	"github.com/ljurgs/game/internal/entities"
	log "github.com/sirupsen/logrus"
)

// resolveCollision pushes the player out of the cat. The cat never moves.
// A pushed player is kept in bounds and its queued path is rebuilt from where
// it ended up.
func (g *Game) resolveCollision() {
	pushed := entities.ResolveCollision(&g.player.Motion, &g.cat.Motion, g.player.Radius(), g.cat.Radius())
	if !pushed {
		g.colliding = false
		return
	}
	g.player.Clamp(g.bounds)
	g.player.Replan()
	if !g.colliding {
		g.audio.PlayBump()
		log.WithFields(log.Fields{"player": g.player.ID, "cat": g.cat.ID}).Debug("player bumped into cat")
	}
	g.colliding = true
}
