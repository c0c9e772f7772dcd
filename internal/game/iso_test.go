package game

import (
	"math"
	"testing"
)

func TestProject_KnownPoints(t *testing.T) {
	cases := []struct {
		c    Coord
		want Point
	}{
		{Coord{0, 0}, Point{0, 0}},
		{Coord{1, 0}, Point{halfTileW, halfTileH}},
		{Coord{0, 1}, Point{-halfTileW, halfTileH}},
		{Coord{1, 1}, Point{0, tileHeight}},
		{Coord{-1, 0}, Point{-halfTileW, -halfTileH}},
		{Coord{2.5, 0.5}, Point{2 * halfTileW, 3 * halfTileH}},
	}
	for _, tc := range cases {
		got := Project(tc.c)
		if got != tc.want {
			t.Fatalf("Project(%v) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestUnproject_RoundTrip(t *testing.T) {
	const eps = 1e-9
	// Broad sweep including fractional and far-out coordinates.
	vals := []float64{-1000, -17.25, -3, -0.5, 0, 0.125, 1, 2.75, 64, 999.5}
	for _, i := range vals {
		for _, j := range vals {
			c := Coord{i, j}
			back := Unproject(Project(c))
			if math.Abs(back.I-c.I) > eps || math.Abs(back.J-c.J) > eps {
				t.Fatalf("round trip of %v gave %v", c, back)
			}
		}
	}
}

func TestUnproject_ScreenAxes(t *testing.T) {
	const eps = 1e-9
	// One tile-width to the right on screen is +1 in i and -1 in j.
	c := Unproject(Point{tileWidth, 0})
	if math.Abs(c.I-1) > eps || math.Abs(c.J+1) > eps {
		t.Fatalf("Unproject(%d,0) = %v, want (1,-1)", tileWidth, c)
	}
	// One tile-height down on screen is +1 in both axes.
	c = Unproject(Point{0, tileHeight})
	if math.Abs(c.I-1) > eps || math.Abs(c.J-1) > eps {
		t.Fatalf("Unproject(0,%d) = %v, want (1,1)", tileHeight, c)
	}
}

func TestLerp_Endpoints(t *testing.T) {
	a := Coord{1, 2}
	b := Coord{-3, 7}
	if got := lerp(a, b, 0); got != a {
		t.Fatalf("lerp t=0 = %v, want %v", got, a)
	}
	if got := lerp(a, b, 1); got != b {
		t.Fatalf("lerp t=1 = %v, want %v", got, b)
	}
	mid := lerp(a, b, 0.5)
	if mid.I != -1 || mid.J != 4.5 {
		t.Fatalf("lerp t=0.5 = %v, want (-1,4.5)", mid)
	}
}
