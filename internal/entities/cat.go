package entities

import (
	"math"

	"github.com/ljurgs/game/internal/world"
	"github.com/segmentio/ksuid"
)

// Cat wanders on its own and only meets the player through collision.
type Cat struct {
	ID string
	Motion
	Sprite
	Wander
}

// NewCat places a cat at a random point inside r. It has no display
// direction until it first moves. The wander margin is raised to the sprite's
// half extents so picked targets are never clamped out of reach.
func NewCat(r *world.Rect, speed float64, sprite Sprite, cfg WanderConfig, rng Rand) *Cat {
	halfW, halfH := sprite.HalfExtents()
	cfg.Margin = math.Max(cfg.Margin, math.Max(halfW, halfH))
	c := &Cat{
		ID:     ksuid.New().String(),
		Motion: *NewMotion(Vec2{X: rng.Float64() * r.Width, Y: rng.Float64() * r.Height}, speed, halfW, halfH),
		Sprite: sprite,
		Wander: NewWander(cfg, rng),
	}
	c.Facing = DirDown
	c.Clamp(r)
	return c
}

// Update runs one tick and reports whether the display direction changed
// along with the wander outcome. Finishing a walk returns the cat to idle and
// releases its display direction.
func (c *Cat) Update(dtMs float64, r *world.Rect, rng Rand) (bool, WanderStep) {
	dir, step := c.Wander.Step(&c.Motion, dtMs, r, rng)
	changed := c.Settle(dir, dtMs, r)
	if c.Moving() && !c.HasPath() {
		c.Rest(rng)
		c.Release()
	}
	return changed, step
}
