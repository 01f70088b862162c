package entities

import (
	"fmt"
	"math"
)

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
)

// Compass lists the eight facing directions clockwise from up. Snap breaks
// ties in this order.
var Compass = [8]Direction{
	DirUp, DirUpRight, DirRight, DirDownRight,
	DirDown, DirDownLeft, DirLeft, DirUpLeft,
}

var directionNames = [...]string{
	"none", "up", "upRight", "right", "downRight",
	"down", "downLeft", "left", "upLeft",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// snapEpsilon is the smallest vector length that still has a direction.
const snapEpsilon = 0.001

// DirDelta returns the per-axis sign of a direction in screen space.
func DirDelta(d Direction) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirUpRight:
		return 1, -1
	case DirRight:
		return 1, 0
	case DirDownRight:
		return 1, 1
	case DirDown:
		return 0, 1
	case DirDownLeft:
		return -1, 1
	case DirLeft:
		return -1, 0
	case DirUpLeft:
		return -1, -1
	default:
		return 0, 0
	}
}

// DirFromSigns is the inverse of DirDelta. Only the sign of each argument matters.
func DirFromSigns(dx, dy int) Direction {
	sx, sy := sign(dx), sign(dy)
	for _, d := range Compass {
		if ddx, ddy := DirDelta(d); ddx == sx && ddy == sy {
			return d
		}
	}
	return DirNone
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Vector returns the unit vector of d, or the zero vector for DirNone.
func (d Direction) Vector() Vec2 {
	dx, dy := DirDelta(d)
	if dx != 0 && dy != 0 {
		return Vec2{X: float64(dx) * math.Sqrt2 / 2, Y: float64(dy) * math.Sqrt2 / 2}
	}
	return Vec2{X: float64(dx), Y: float64(dy)}
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool {
	dx, dy := DirDelta(d)
	return dx != 0 && dy != 0
}

// Snap maps a continuous vector to the compass direction with the largest
// dot product. Vectors shorter than snapEpsilon have no direction.
func Snap(dx, dy float64) Direction {
	mag := math.Hypot(dx, dy)
	if mag < snapEpsilon {
		return DirNone
	}
	n := Vec2{X: dx / mag, Y: dy / mag}
	best := DirNone
	bestDot := math.Inf(-1)
	for _, d := range Compass {
		if dot := d.Vector().Dot(n); dot > bestDot {
			best, bestDot = d, dot
		}
	}
	return best
}

// IndicatorAxes splits a direction into the axis arrows shown when it becomes
// the display direction: one for straight travel, vertical then horizontal
// for diagonals.
func IndicatorAxes(d Direction) []Direction {
	dx, dy := DirDelta(d)
	if dx == 0 && dy == 0 {
		return nil
	}
	if dx == 0 || dy == 0 {
		return []Direction{d}
	}
	return []Direction{DirFromSigns(0, dy), DirFromSigns(dx, 0)}
}
