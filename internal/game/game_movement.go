package game

import (
	"github.com/ljurgs/game/internal/entities"
	log "github.com/sirupsen/logrus"
)

// updatePlayerMovement moves the player and reports a display direction change.
func (g *Game) updatePlayerMovement(dtMs float64, keys entities.Keys) bool {
	return g.player.Update(dtMs, keys, g.bounds)
}

func (g *Game) updateCat(dtMs float64) bool {
	changed, step := g.cat.Update(dtMs, g.bounds, g.rng)
	switch step {
	case entities.WanderPicked:
		dest, _ := g.cat.Path().Dest()
		log.WithFields(log.Fields{
			"id":   g.cat.ID,
			"from": g.cat.Pos,
			"to":   dest,
		}).Debug("cat picked a wander target")
	case entities.WanderRetry:
		log.WithFields(log.Fields{
			"id":    g.cat.ID,
			"retry": g.cat.IdleMs,
		}).Debug("cat found no wander target")
	}
	return changed
}
