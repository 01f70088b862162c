package entities

import "github.com/ljurgs/game/internal/world"

// Rand is the subset of *rand.Rand used for wandering.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type WanderConfig struct {
	IdleMinMs  float64
	IdleMaxMs  float64
	RetryMs    float64
	MinLegDist float64
	Margin     float64
	Attempts   int
}

func DefaultWanderConfig() WanderConfig {
	return WanderConfig{
		IdleMinMs:  1000,
		IdleMaxMs:  3000,
		RetryMs:    500,
		MinLegDist: 80,
		Margin:     50,
		Attempts:   8,
	}
}

// Wander is the idle/walk cycle of an autonomous entity.
type Wander struct {
	Config WanderConfig
	IdleMs float64
	moving bool
}

func NewWander(cfg WanderConfig, rng Rand) Wander {
	w := Wander{Config: cfg}
	w.Rest(rng)
	return w
}

func (w *Wander) Moving() bool { return w.moving }

// Rest enters the idle state with a fresh random timer.
func (w *Wander) Rest(rng Rand) {
	w.moving = false
	w.IdleMs = w.Config.IdleMinMs + rng.Float64()*(w.Config.IdleMaxMs-w.Config.IdleMinMs)
}

// WanderStep is what happened during one call to Step.
type WanderStep int

const (
	WanderIdle WanderStep = iota
	WanderPicked
	WanderRetry
	WanderWalking
)

// Step counts down the idle timer, queues a new path on m when it expires,
// and otherwise walks the queued path. It returns the direction moved.
func (w *Wander) Step(m *Motion, dtMs float64, r *world.Rect, rng Rand) (Direction, WanderStep) {
	if w.moving {
		return FollowPath(m, dtMs), WanderWalking
	}
	w.IdleMs -= dtMs
	if w.IdleMs > 0 {
		return DirNone, WanderIdle
	}
	target, ok := PickWanderTarget(m.Pos, r, w.Config, rng)
	if !ok {
		w.IdleMs = w.Config.RetryMs
		return DirNone, WanderRetry
	}
	m.SetPath(BuildPath(m.Pos, target))
	w.moving = true
	return DirNone, WanderPicked
}

// PickWanderTarget tries up to cfg.Attempts random compass directions and
// returns a point at least cfg.MinLegDist away that stays cfg.Margin inside r.
// It returns false when every attempt was blocked.
func PickWanderTarget(pos Vec2, r *world.Rect, cfg WanderConfig, rng Rand) (Vec2, bool) {
	for i := 0; i < cfg.Attempts; i++ {
		u := Compass[rng.Intn(len(Compass))].Vector()
		reach := r.Reach(pos.X, pos.Y, u.X, u.Y, cfg.Margin)
		if reach <= cfg.MinLegDist {
			continue
		}
		dist := cfg.MinLegDist + rng.Float64()*(reach-cfg.MinLegDist)
		return pos.Add(u.Scale(dist)), true
	}
	return Vec2{}, false
}
