package world

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	DefaultWidth    = 1280
	DefaultHeight   = 720
	DefaultTileSize = 32
)

// Rect is the playable area. The origin is the top-left corner and +Y points down.
type Rect struct {
	Width    float64
	Height   float64
	TileSize int
}

func NewDefaultRect() *Rect {
	return &Rect{Width: DefaultWidth, Height: DefaultHeight, TileSize: DefaultTileSize}
}

// Clamp keeps a body with the given half extents fully inside the rect.
func (r *Rect) Clamp(x, y, halfW, halfH float64) (float64, float64) {
	x = math.Max(halfW, math.Min(r.Width-halfW, x))
	y = math.Max(halfH, math.Min(r.Height-halfH, y))
	return x, y
}

// Contains reports whether the point lies within the rect, edges included.
func (r *Rect) Contains(x, y float64) bool {
	return x >= 0 && x <= r.Width && y >= 0 && y <= r.Height
}

// Reach returns how far a point can travel along the unit vector (ux, uy)
// before it comes within margin of an edge. The result is negative when the
// point already sits inside the margin on that side, and +Inf for a zero vector.
func (r *Rect) Reach(x, y, ux, uy, margin float64) float64 {
	maxX := math.Inf(1)
	if ux > 0 {
		maxX = (r.Width - margin - x) / ux
	} else if ux < 0 {
		maxX = (margin - x) / ux
	}
	maxY := math.Inf(1)
	if uy > 0 {
		maxY = (r.Height - margin - y) / uy
	} else if uy < 0 {
		maxY = (margin - y) / uy
	}
	return math.Min(maxX, maxY)
}

// Draw paints a checkered floor over the whole rect.
func (r *Rect) Draw(dst *ebiten.Image) {
	base := color.RGBA{R: 0x24, G: 0x17, B: 0x25, A: 255}
	alt := color.RGBA{R: 0x2b, G: 0x1d, B: 0x2d, A: 255}
	dst.Fill(base)
	if r.TileSize <= 0 {
		return
	}
	cols := int(math.Ceil(r.Width / float64(r.TileSize)))
	rows := int(math.Ceil(r.Height / float64(r.TileSize)))
	ts := float32(r.TileSize)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if (x+y)%2 == 0 {
				continue
			}
			vector.DrawFilledRect(dst, float32(x)*ts, float32(y)*ts, ts, ts, alt, false)
		}
	}
}
