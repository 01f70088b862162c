package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPath(t *testing.T) {
	tests := []struct {
		name          string
		start, target Vec2
		want          Path
	}{
		{
			name:   "axis only",
			target: Vec2{X: 100, Y: 0},
			want:   Path{{End: Vec2{X: 100, Y: 0}, Dir: DirRight}},
		},
		{
			name:   "diagonal only",
			target: Vec2{X: 100, Y: 100},
			want:   Path{{End: Vec2{X: 100, Y: 100}, Dir: DirDownRight}},
		},
		{
			name:   "diagonal then horizontal",
			target: Vec2{X: 150, Y: 50},
			want: Path{
				{End: Vec2{X: 50, Y: 50}, Dir: DirDownRight},
				{End: Vec2{X: 150, Y: 50}, Dir: DirRight},
			},
		},
		{
			name:   "diagonal then vertical",
			start:  Vec2{X: 10, Y: 20},
			target: Vec2{X: -20, Y: -60},
			want: Path{
				{End: Vec2{X: -20, Y: -10}, Dir: DirUpLeft},
				{End: Vec2{X: -20, Y: -60}, Dir: DirUp},
			},
		},
		{
			name:   "straight up",
			start:  Vec2{X: 10, Y: 20},
			target: Vec2{X: 10, Y: -5},
			want:   Path{{End: Vec2{X: 10, Y: -5}, Dir: DirUp}},
		},
		{
			name:   "degenerate",
			start:  Vec2{X: 33, Y: 44},
			target: Vec2{X: 33, Y: 44},
			want:   nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildPath(tc.start, tc.target))
		})
	}
}

func TestBuildPathLegsAreSnappedAndEndOnTarget(t *testing.T) {
	starts := []Vec2{{X: 0, Y: 0}, {X: 640, Y: 360}, {X: 12.5, Y: 700.25}}
	targets := []Vec2{{X: 1000, Y: 3}, {X: 1, Y: 719}, {X: 640.5, Y: 100}, {X: 300.1, Y: 300.1}}
	for _, s := range starts {
		for _, target := range targets {
			path := BuildPath(s, target)
			if !assert.NotEmpty(t, path) || !assert.LessOrEqual(t, len(path), 2) {
				continue
			}
			dest, ok := path.Dest()
			assert.True(t, ok)
			assert.Equal(t, target, dest)
			from := s
			for _, seg := range path {
				d := seg.End.Sub(from)
				assert.Equal(t, Snap(d.X, d.Y), seg.Dir, "leg %v -> %v", from, seg.End)
				from = seg.End
			}
			if len(path) == 2 {
				assert.True(t, path[0].Dir.IsDiagonal())
				assert.False(t, path[1].Dir.IsDiagonal())
			}
		}
	}
}

func TestBuildPathFoldsResidue(t *testing.T) {
	start := Vec2{X: 0.1, Y: 0.2}
	target := Vec2{X: 0.1 + 50, Y: 0.2 + 50 + 1e-9}
	path := BuildPath(start, target)
	assert.Equal(t, Path{{End: target, Dir: DirDownRight}}, path)
}

func TestPathDestEmpty(t *testing.T) {
	_, ok := Path(nil).Dest()
	assert.False(t, ok)
}
