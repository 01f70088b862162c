package game

import (
	"github.com/ljurgs/game/internal/entities"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// indicator flashes the player's new display direction and fades it out.
type indicator struct {
	dir   entities.Direction
	tween *gween.Tween
	alpha float32
}

func (in *indicator) show(dir entities.Direction) {
	in.dir = dir
	in.alpha = 1
	in.tween = gween.New(1, 0, float32(entities.IndicatorDurationMs/1000), ease.InQuad)
}

func (in *indicator) update(dtMs float64) {
	if in.tween == nil {
		return
	}
	a, done := in.tween.Update(float32(dtMs / 1000))
	in.alpha = a
	if done {
		in.tween = nil
		in.alpha = 0
	}
}

func (in *indicator) visible() bool {
	return in.tween != nil && in.dir != entities.DirNone
}

// axes lists the arrows to draw: one for a straight direction, two for a diagonal.
func (in *indicator) axes() []entities.Direction {
	if !in.visible() {
		return nil
	}
	return entities.IndicatorAxes(in.dir)
}
