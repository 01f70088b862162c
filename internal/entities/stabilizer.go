package entities

const (
	// HysteresisDot is the cosine similarity at or above which a newly snapped
	// direction counts as the current display direction.
	HysteresisDot = 0.97
	// PendingWaitMs is how long a different direction must persist before it
	// replaces the display direction.
	PendingWaitMs = 120.0
	// IndicatorDurationMs is how long the direction indicator stays up after a change.
	IndicatorDurationMs = 250.0
)

// Stabilizer debounces snapped movement directions into the direction used
// for drawing. Pending is only set while a change awaits confirmation.
type Stabilizer struct {
	Display        Direction
	Pending        Direction
	PendingTimerMs float64
}

// Observe feeds the direction moved this tick (DirNone when idle) and reports
// whether the display direction was just replaced by a confirmed candidate.
func (s *Stabilizer) Observe(d Direction, dtMs float64) bool {
	if d == DirNone {
		s.clearPending()
		return false
	}
	if s.Display == DirNone {
		s.Display = d
		s.clearPending()
		return false
	}
	if s.Display.Vector().Dot(d.Vector()) >= HysteresisDot {
		s.clearPending()
		return false
	}
	if s.Pending != d {
		s.Pending = d
		s.PendingTimerMs = PendingWaitMs
		return false
	}
	s.PendingTimerMs -= dtMs
	if s.PendingTimerMs > 0 {
		return false
	}
	s.Display = d
	s.clearPending()
	return true
}

// Release forgets the display direction so the next movement is adopted at once.
func (s *Stabilizer) Release() {
	s.Display = DirNone
	s.clearPending()
}

func (s *Stabilizer) clearPending() {
	s.Pending = DirNone
	s.PendingTimerMs = 0
}

// SheetLayout is the number of direction rows in a character sheet.
type SheetLayout int

const (
	FourRowSheet  SheetLayout = 4
	EightRowSheet SheetLayout = 8
)

// Row returns the sheet row drawn for a facing direction.
// Four-row sheets are ordered down, left, right, up and pick the dominant
// axis, horizontal on diagonals. Eight-row sheets follow Compass order.
// DirNone draws the down row.
func (l SheetLayout) Row(d Direction) int {
	if d == DirNone {
		d = DirDown
	}
	if l == EightRowSheet {
		for i, c := range Compass {
			if c == d {
				return i
			}
		}
		return 4
	}
	dx, dy := DirDelta(d)
	switch {
	case dx < 0:
		return 1
	case dx > 0:
		return 2
	case dy < 0:
		return 3
	default:
		return 0
	}
}
