package entities

import (
	"github.com/ljurgs/game/internal/world"
	"github.com/segmentio/ksuid"
)

// Sprite is the footprint of a character sheet frame once scaled.
type Sprite struct {
	FrameW float64
	FrameH float64
	Scale  float64
	Layout SheetLayout
}

func (s Sprite) HalfExtents() (float64, float64) {
	return s.FrameW * s.Scale / 2, s.FrameH * s.Scale / 2
}

// Radius is the collision radius, a quarter of the scaled frame width.
func (s Sprite) Radius() float64 {
	return 0.25 * s.FrameW * s.Scale
}

// ClickMode selects how a pointer click is turned into motion.
type ClickMode int

const (
	// ClickPath walks a two-leg path built once at click time.
	ClickPath ClickMode = iota
	// ClickDirect re-snaps toward the click point every tick.
	ClickDirect
)

type Player struct {
	ID string
	Motion
	Sprite
	ClickMode ClickMode
}

// NewPlayer places a player at pos facing down.
func NewPlayer(pos Vec2, speed float64, sprite Sprite, mode ClickMode) *Player {
	halfW, halfH := sprite.HalfExtents()
	p := &Player{
		ID:        ksuid.New().String(),
		Motion:    *NewMotion(pos, speed, halfW, halfH),
		Sprite:    sprite,
		ClickMode: mode,
	}
	p.Display = DirDown
	p.Facing = DirDown
	return p
}

// Click queues pointer motion toward target, clamped to where the player can stand.
func (p *Player) Click(target Vec2, r *world.Rect) {
	target.X, target.Y = r.Clamp(target.X, target.Y, p.HalfW, p.HalfH)
	if p.ClickMode == ClickDirect {
		p.SetTarget(target)
		return
	}
	p.SetPath(BuildPath(p.Pos, target))
}

// Update runs one tick. Held keys win over pointer motion. It reports
// whether the display direction changed.
func (p *Player) Update(dtMs float64, keys Keys, r *world.Rect) bool {
	dir := KeyboardDrive(&p.Motion, keys, dtMs)
	if dir == DirNone {
		dir = FollowPath(&p.Motion, dtMs)
	}
	if dir == DirNone {
		dir = SeekTarget(&p.Motion, dtMs)
	}
	return p.Settle(dir, dtMs, r)
}
