package game

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ljurgs/game/internal/entities"
	"github.com/ljurgs/game/internal/world"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

const (
	updatesPerSecond = 60
	firstTickMs      = 1000.0 / updatesPerSecond
	// maxTickMs caps a single step after the window was dragged or the process stalled.
	maxTickMs = 250.0
	windowFit = 0.75
)

var (
	playerColor    = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	catColor       = color.RGBA{R: 255, G: 128, B: 0, A: 255}
	pathColor      = color.RGBA{R: 0, G: 191, B: 255, A: 255}
	indicatorColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Frame is what one entity looks like after a tick.
type Frame struct {
	ID      string
	Pos     entities.Vec2
	Display entities.Direction
	Facing  entities.Direction
	Row     int
	// Changed is set on the tick the display direction was promoted.
	Changed bool
}

type Game struct {
	settings *Settings
	bounds   *world.Rect
	player   *entities.Player
	cat      *entities.Cat
	rng      *rand.Rand
	audio    *AudioManager

	indicator indicator
	frames    []Frame
	now       func() time.Time
	lastTick  time.Time

	tickCounter int
	colliding   bool
	fullscreen  bool
	paused      bool
	quit        bool
}

func New(s *Settings) *Game {
	return newGame(s, rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

func newGame(s *Settings, rng *rand.Rand, now func() time.Time) *Game {
	if s == nil {
		s = DefaultSettings()
	}
	r := s.Rect()
	g := &Game{
		settings: s,
		bounds:   r,
		rng:      rng,
		now:      now,
		audio:    NewAudioManager(s.Audio),
	}
	g.player = entities.NewPlayer(g.playerStart(), s.Player.Speed, s.Player.Sprite.sprite(), s.ClickMode())
	g.cat = entities.NewCat(r, s.Cat.Speed, s.Cat.Sprite.sprite(), s.WanderConfig(), rng)
	log.WithFields(log.Fields{
		"player": g.player.ID,
		"cat":    g.cat.ID,
		"world":  fmt.Sprintf("%vx%v", r.Width, r.Height),
		"audio":  g.audio.Enabled(),
	}).Info("world ready")
	return g
}

func (g *Game) playerStart() entities.Vec2 {
	return entities.Vec2{X: g.bounds.Width / 2, Y: g.bounds.Height / 2}
}

// WindowSize fits the world into a share of the display, keeping its aspect.
func (g *Game) WindowSize() (int, int) {
	sw, sh := ebiten.ScreenSizeInFullscreen()
	scale := math.Min(float64(sw)*windowFit/g.bounds.Width, float64(sh)*windowFit/g.bounds.Height)
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1.0
	}
	return int(g.bounds.Width * scale), int(g.bounds.Height * scale)
}

func (g *Game) Update() error {
	g.tickCounter++
	in := g.handleInput()
	if g.quit {
		return ebiten.Termination
	}
	dtMs := g.elapsedMs()
	if g.paused {
		return nil
	}
	g.Tick(dtMs, in)
	return nil
}

// elapsedMs returns the wall-clock time since the previous tick.
func (g *Game) elapsedMs() float64 {
	t := g.now()
	defer func() { g.lastTick = t }()
	if g.lastTick.IsZero() {
		return firstTickMs
	}
	dt := float64(t.Sub(g.lastTick)) / float64(time.Millisecond)
	return math.Max(0, math.Min(maxTickMs, dt))
}

// Tick advances the world by dtMs: the player, then the cat, then the
// collision between them.
func (g *Game) Tick(dtMs float64, in Input) {
	// Clicks in the letterbox around a resized window fall outside the world.
	if in.Click != nil && g.bounds.Contains(in.Click.X, in.Click.Y) {
		g.player.Click(*in.Click, g.bounds)
	}
	playerChanged := g.updatePlayerMovement(dtMs, in.Keys)
	catChanged := g.updateCat(dtMs)
	g.resolveCollision()

	g.indicator.update(dtMs)
	if playerChanged {
		g.indicator.show(g.player.Display)
		g.audio.PlayTurn()
		log.WithFields(log.Fields{"id": g.player.ID, "dir": g.player.Display}).Debug("player turned")
	}
	if catChanged {
		log.WithFields(log.Fields{"id": g.cat.ID, "dir": g.cat.Display}).Debug("cat turned")
	}

	g.frames = append(g.frames[:0],
		frameOf(g.player.ID, &g.player.Motion, g.player.Layout, playerChanged),
		frameOf(g.cat.ID, &g.cat.Motion, g.cat.Layout, catChanged),
	)
}

func frameOf(id string, m *entities.Motion, layout entities.SheetLayout, changed bool) Frame {
	return Frame{
		ID:      id,
		Pos:     m.Pos,
		Display: m.Display,
		Facing:  m.Facing,
		Row:     layout.Row(m.Facing),
		Changed: changed,
	}
}

// Frames returns the player's and then the cat's frame from the last tick.
func (g *Game) Frames() []Frame {
	return g.frames
}

type body struct {
	m      *entities.Motion
	radius float64
	clr    color.RGBA
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.bounds.Draw(screen)
	g.drawPath(screen)

	// Lower entities are drawn last so they overlap the ones behind them.
	bodies := []body{
		{m: &g.player.Motion, radius: g.player.Radius(), clr: playerColor},
		{m: &g.cat.Motion, radius: g.cat.Radius(), clr: catColor},
	}
	sort.SliceStable(bodies, func(i, j int) bool { return bodies[i].m.Pos.Y < bodies[j].m.Pos.Y })
	for _, b := range bodies {
		x, y := float32(b.m.Pos.X), float32(b.m.Pos.Y)
		r := float32(math.Min(b.m.HalfW, b.m.HalfH))
		vector.DrawFilledCircle(screen, x, y, r, b.clr, true)
		vector.StrokeCircle(screen, x, y, float32(b.radius), 1, color.White, true)
		v := b.m.Facing.Vector()
		vector.StrokeLine(screen, x, y, x+float32(v.X)*r, y+float32(v.Y)*r, 2, color.Black, true)
	}
	g.drawIndicator(screen)

	hud := fmt.Sprintf("player (%.0f,%.0f) %v  cat (%.0f,%.0f) %v  FPS: %0.0f",
		g.player.Pos.X, g.player.Pos.Y, g.player.Display,
		g.cat.Pos.X, g.cat.Pos.Y, g.cat.Display, ebiten.ActualFPS())
	text.Draw(screen, hud, basicfont.Face7x13, 4, 12, color.White)

	if g.paused {
		msg := "Paused"
		w := len(msg) * 7 // basicfont.Face7x13 is 7 pixels per character
		text.Draw(screen, msg, basicfont.Face7x13, (int(g.bounds.Width)-w)/2, int(g.bounds.Height)/2, color.White)
	}
}

func (g *Game) drawPath(screen *ebiten.Image) {
	from := g.player.Pos
	for _, seg := range g.player.Path() {
		vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(seg.End.X), float32(seg.End.Y), 1, pathColor, true)
		vector.DrawFilledCircle(screen, float32(seg.End.X), float32(seg.End.Y), 3, pathColor, true)
		from = seg.End
	}
}

// drawIndicator shows one arrow per axis of the player's new direction above its head.
func (g *Game) drawIndicator(screen *ebiten.Image) {
	axes := g.indicator.axes()
	if len(axes) == 0 {
		return
	}
	clr := indicatorColor
	clr.A = uint8(255 * math.Max(0, math.Min(1, float64(g.indicator.alpha))))
	cx := float32(g.player.Pos.X)
	cy := float32(g.player.Pos.Y - g.player.HalfH - 12)
	const arm = 10
	for i, d := range axes {
		x := cx + float32(i*2-len(axes)+1)*12
		v := d.Vector()
		tipX, tipY := x+float32(v.X)*arm, cy+float32(v.Y)*arm
		vector.StrokeLine(screen, x-float32(v.X)*arm, cy-float32(v.Y)*arm, tipX, tipY, 2, clr, true)
		vector.DrawFilledCircle(screen, tipX, tipY, 3, clr, true)
	}
}

// Layout maps the window onto the world one to one; ebiten scales the result.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.bounds.Width), int(g.bounds.Height)
}

func (g *Game) handleInput() Input {
	// Fullscreen toggle with 'F'
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	// Pause toggle with Space
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		log.WithField("paused", g.paused).Info("pause toggled")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetPositions()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}
	if g.paused {
		return Input{}
	}
	return readInput()
}
