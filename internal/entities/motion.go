package entities

import "github.com/ljurgs/game/internal/world"

// SeekArriveEpsilon is the distance at which a direct target counts as reached.
const SeekArriveEpsilon = 2.0

// Motion is the movement state shared by every entity. Strategies such as
// KeyboardDrive, FollowPath and SeekTarget move Pos; Settle then feeds the
// stabilizer and clamps.
type Motion struct {
	Pos   Vec2
	Speed float64 // pixels per second
	HalfW float64
	HalfH float64
	Stabilizer
	// Facing is the last display direction and survives Release.
	Facing Direction

	path      Path
	target    Vec2
	hasTarget bool
}

func NewMotion(pos Vec2, speed, halfW, halfH float64) *Motion {
	return &Motion{Pos: pos, Speed: speed, HalfW: halfW, HalfH: halfH}
}

func (m *Motion) stepLength(dtMs float64) float64 {
	return m.Speed * dtMs / 1000
}

// SetPath queues a path and drops any direct target.
func (m *Motion) SetPath(p Path) {
	m.path = p
	m.hasTarget = false
}

func (m *Motion) Path() Path { return m.path }

func (m *Motion) HasPath() bool { return len(m.path) > 0 }

// SetTarget queues a direct target and drops any path.
func (m *Motion) SetTarget(t Vec2) {
	m.target = t
	m.hasTarget = true
	m.path = nil
}

func (m *Motion) Target() (Vec2, bool) { return m.target, m.hasTarget }

// CancelPointer discards the queued path and target.
func (m *Motion) CancelPointer() {
	m.path = nil
	m.hasTarget = false
}

// Replan rebuilds a queued path from the current position toward the same
// destination. It is used after the entity was displaced by something other
// than its own movement.
func (m *Motion) Replan() {
	if dest, ok := m.path.Dest(); ok {
		m.path = BuildPath(m.Pos, dest)
	}
}

// Settle runs the end-of-tick bookkeeping: the direction moved this tick goes
// to the stabilizer and the position is clamped to r. It reports whether the
// display direction changed.
func (m *Motion) Settle(moved Direction, dtMs float64, r *world.Rect) bool {
	changed := m.Observe(moved, dtMs)
	if m.Display != DirNone {
		m.Facing = m.Display
	}
	m.Clamp(r)
	return changed
}

func (m *Motion) Clamp(r *world.Rect) {
	m.Pos.X, m.Pos.Y = r.Clamp(m.Pos.X, m.Pos.Y, m.HalfW, m.HalfH)
}

// Keys is the set of held movement keys.
type Keys struct {
	Up, Down, Left, Right bool
}

// Vector sums one unit per held key. Opposite keys cancel.
func (k Keys) Vector() Vec2 {
	var v Vec2
	if k.Up {
		v.Y--
	}
	if k.Down {
		v.Y++
	}
	if k.Left {
		v.X--
	}
	if k.Right {
		v.X++
	}
	return v
}

// KeyboardDrive moves m along the snapped key vector. Any key input takes
// over from a queued path or target.
func KeyboardDrive(m *Motion, k Keys, dtMs float64) Direction {
	raw := k.Vector()
	dir := Snap(raw.X, raw.Y)
	if dir == DirNone {
		return DirNone
	}
	m.CancelPointer()
	m.Pos = m.Pos.Add(dir.Vector().Scale(m.stepLength(dtMs)))
	return dir
}

// FollowPath advances along the first queued segment, landing exactly on its
// endpoint when this tick's step would reach it.
func FollowPath(m *Motion, dtMs float64) Direction {
	if len(m.path) == 0 {
		return DirNone
	}
	seg := m.path[0]
	step := m.stepLength(dtMs)
	if m.Pos.Dist(seg.End) <= step {
		m.Pos = seg.End
		m.path = m.path[1:]
		if len(m.path) == 0 {
			m.path = nil
		}
	} else {
		m.Pos = m.Pos.Add(seg.Dir.Vector().Scale(step))
	}
	return seg.Dir
}

// SeekTarget walks toward the direct target, re-snapping every tick.
func SeekTarget(m *Motion, dtMs float64) Direction {
	if !m.hasTarget {
		return DirNone
	}
	delta := m.target.Sub(m.Pos)
	dist := delta.Len()
	if dist < SeekArriveEpsilon {
		m.hasTarget = false
		return DirNone
	}
	dir := Snap(delta.X, delta.Y)
	step := m.stepLength(dtMs)
	if dist <= step {
		m.Pos = m.target
		m.hasTarget = false
	} else {
		m.Pos = m.Pos.Add(dir.Vector().Scale(step))
	}
	return dir
}
