package entities

import "math"

// ResolveCollision separates two overlapping circles by moving only mover
// directly away from obstacle until the circles touch. Coincident centers
// have no push direction and are left alone. It reports whether mover moved.
func ResolveCollision(mover, obstacle *Motion, moverRadius, obstacleRadius float64) bool {
	d := mover.Pos.Sub(obstacle.Pos)
	dist := d.Len()
	minDist := moverRadius + obstacleRadius
	if dist >= minDist || dist <= 0 {
		return false
	}
	push := minDist - dist
	angle := math.Atan2(d.Y, d.X)
	mover.Pos.X += math.Cos(angle) * push
	mover.Pos.Y += math.Sin(angle) * push
	return true
}
