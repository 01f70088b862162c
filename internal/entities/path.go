package entities

import "math"

// legEpsilon folds float residue into the previous leg instead of emitting
// a leg too short to see.
const legEpsilon = 1e-6

// Segment is one straight leg of a path.
type Segment struct {
	End Vec2
	Dir Direction
}

// Path is consumed front to back. Directions are fixed when the path is built.
type Path []Segment

// Dest returns the final endpoint, or false for an empty path.
func (p Path) Dest() (Vec2, bool) {
	if len(p) == 0 {
		return Vec2{}, false
	}
	return p[len(p)-1].End, true
}

// BuildPath splits the trip from start to target into at most two legs: a
// 45 degree diagonal covering the shorter axis, then a straight leg along the
// longer axis that ends exactly on target.
func BuildPath(start, target Vec2) Path {
	dx := target.X - start.X
	dy := target.Y - start.Y
	ax, ay := math.Abs(dx), math.Abs(dy)
	sx, sy := floatSign(dx), floatSign(dy)

	var path Path
	diag := math.Min(ax, ay)
	restX, restY := ax-diag, ay-diag
	if diag > legEpsilon {
		end := Vec2{X: start.X + diag*float64(sx), Y: start.Y + diag*float64(sy)}
		if restX <= legEpsilon && restY <= legEpsilon {
			end = target
		}
		path = append(path, Segment{End: end, Dir: DirFromSigns(sx, sy)})
	}
	switch {
	case restX > legEpsilon:
		path = append(path, Segment{End: target, Dir: DirFromSigns(sx, 0)})
	case restY > legEpsilon:
		path = append(path, Segment{End: target, Dir: DirFromSigns(0, sy)})
	}
	return path
}

func floatSign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
