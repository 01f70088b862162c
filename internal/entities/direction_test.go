package entities

import (
	"math"
	"testing"
)

func TestDirDelta(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		wantDX int
		wantDY int
	}{
		{name: "none", dir: DirNone, wantDX: 0, wantDY: 0},
		{name: "up", dir: DirUp, wantDX: 0, wantDY: -1},
		{name: "upRight", dir: DirUpRight, wantDX: 1, wantDY: -1},
		{name: "right", dir: DirRight, wantDX: 1, wantDY: 0},
		{name: "downRight", dir: DirDownRight, wantDX: 1, wantDY: 1},
		{name: "down", dir: DirDown, wantDX: 0, wantDY: 1},
		{name: "downLeft", dir: DirDownLeft, wantDX: -1, wantDY: 1},
		{name: "left", dir: DirLeft, wantDX: -1, wantDY: 0},
		{name: "upLeft", dir: DirUpLeft, wantDX: -1, wantDY: -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := DirDelta(tc.dir)
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Fatalf("DirDelta(%v) = (%d,%d), want (%d,%d)", tc.dir, dx, dy, tc.wantDX, tc.wantDY)
			}
			if got := DirFromSigns(dx*7, dy*3); got != tc.dir {
				t.Fatalf("DirFromSigns(%d,%d) = %v, want %v", dx*7, dy*3, got, tc.dir)
			}
			if got := tc.dir.String(); got != tc.name {
				t.Fatalf("String() = %q, want %q", got, tc.name)
			}
		})
	}
}

func TestCompassUnitVectorsEvenlySpaced(t *testing.T) {
	cos45 := math.Sqrt2 / 2
	for i, d := range Compass {
		v := d.Vector()
		if math.Abs(v.Len()-1) > 1e-12 {
			t.Fatalf("%v has length %v, want 1", d, v.Len())
		}
		next := Compass[(i+1)%len(Compass)].Vector()
		if math.Abs(v.Dot(next)-cos45) > 1e-12 {
			t.Fatalf("%v and its clockwise neighbour are not 45 degrees apart", d)
		}
	}
	if v := DirNone.Vector(); v != (Vec2{}) {
		t.Fatalf("DirNone vector = %v, want zero", v)
	}
}

func TestSnapZeroHasNoDirection(t *testing.T) {
	if got := Snap(0, 0); got != DirNone {
		t.Fatalf("Snap(0,0) = %v, want none", got)
	}
	if got := Snap(0.0005, -0.0005); got != DirNone {
		t.Fatalf("Snap of a sub-epsilon vector = %v, want none", got)
	}
}

func TestSnapExamples(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   Direction
	}{
		{dx: 10, dy: -10, want: DirUpRight},
		{dx: 3, dy: 1, want: DirRight},
		{dx: 1, dy: 3, want: DirDown},
		{dx: -5, dy: -4, want: DirUpLeft},
		{dx: -200, dy: 0.5, want: DirLeft},
		{dx: 0, dy: -0.01, want: DirUp},
	}
	for _, tc := range tests {
		if got := Snap(tc.dx, tc.dy); got != tc.want {
			t.Errorf("Snap(%v,%v) = %v, want %v", tc.dx, tc.dy, got, tc.want)
		}
	}
	for _, d := range Compass {
		v := d.Vector()
		if got := Snap(v.X*5, v.Y*5); got != d {
			t.Errorf("Snap(%v) = %v, want itself", d, got)
		}
	}
}

func TestSnapMaximizesDotWithEarliestTieBreak(t *testing.T) {
	for step := 0; step < 7200; step++ {
		a := float64(step) * math.Pi / 3600
		x, y := math.Cos(a), math.Sin(a)
		mag := math.Hypot(x, y)
		v := Vec2{X: x / mag, Y: y / mag}
		got := Snap(x, y)
		gotDot := got.Vector().Dot(v)
		earlier := true
		for _, d := range Compass {
			if d == got {
				earlier = false
				continue
			}
			dot := d.Vector().Dot(v)
			if dot > gotDot {
				t.Fatalf("angle %v: %v beats snapped %v", a, d, got)
			}
			if earlier && dot == gotDot {
				t.Fatalf("angle %v: tie should go to earlier %v, got %v", a, d, got)
			}
		}
	}
}

func TestIndicatorAxes(t *testing.T) {
	if got := IndicatorAxes(DirNone); got != nil {
		t.Fatalf("IndicatorAxes(none) = %v, want nil", got)
	}
	if got := IndicatorAxes(DirLeft); len(got) != 1 || got[0] != DirLeft {
		t.Fatalf("IndicatorAxes(left) = %v, want [left]", got)
	}
	got := IndicatorAxes(DirDownRight)
	if len(got) != 2 || got[0] != DirDown || got[1] != DirRight {
		t.Fatalf("IndicatorAxes(downRight) = %v, want [down right]", got)
	}
	if !DirUpLeft.IsDiagonal() || DirUp.IsDiagonal() {
		t.Fatalf("IsDiagonal mismatch")
	}
}

func TestSheetLayoutRow(t *testing.T) {
	four := map[Direction]int{
		DirNone: 0, DirDown: 0, DirLeft: 1, DirRight: 2, DirUp: 3,
		DirUpRight: 2, DirDownRight: 2, DirUpLeft: 1, DirDownLeft: 1,
	}
	for d, want := range four {
		if got := FourRowSheet.Row(d); got != want {
			t.Errorf("FourRowSheet.Row(%v) = %d, want %d", d, got, want)
		}
	}
	for i, d := range Compass {
		if got := EightRowSheet.Row(d); got != i {
			t.Errorf("EightRowSheet.Row(%v) = %d, want %d", d, got, i)
		}
	}
	if got := EightRowSheet.Row(DirNone); got != 4 {
		t.Errorf("EightRowSheet.Row(none) = %d, want the down row 4", got)
	}
}
