package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ljurgs/game/internal/entities"
)

// Input is what the player did since the previous tick.
type Input struct {
	Keys entities.Keys
	// Click is the world point of a left click, nil when there was none.
	Click *entities.Vec2
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// readInput samples the keyboard and mouse. Layout maps the window onto the
// world one to one, so cursor coordinates are already world coordinates.
func readInput() Input {
	in := Input{
		Keys: entities.Keys{
			Up:    anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
			Down:  anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
			Left:  anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
			Right: anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		},
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Click = &entities.Vec2{X: float64(x), Y: float64(y)}
	}
	return in
}
