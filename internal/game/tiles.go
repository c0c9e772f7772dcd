package game

import (
	"image/color"
	"math"
)

// GroundType identifies the surface variant of a tile.
type GroundType uint8

const (
	GroundGrass GroundType = iota // default open ground
	GroundDirt                    // bare earth patches
	groundTypeCount
)

func (g GroundType) String() string {
	switch g {
	case GroundGrass:
		return "grass"
	case GroundDirt:
		return "dirt"
	default:
		return "unknown"
	}
}

// groundFill returns the base fill colour for a ground type, used for the
// procedural placeholder tiles.
func groundFill(g GroundType) color.RGBA {
	switch g {
	case GroundDirt:
		return color.RGBA{R: 112, G: 86, B: 54, A: 255}
	default:
		return color.RGBA{R: 58, G: 94, B: 50, A: 255}
	}
}

// groundEdge returns the diamond outline colour for a ground type.
func groundEdge(g GroundType) color.RGBA {
	switch g {
	case GroundDirt:
		return color.RGBA{R: 88, G: 66, B: 40, A: 255}
	default:
		return color.RGBA{R: 44, G: 72, B: 38, A: 255}
	}
}

// dirtChance is the probability a tile is dirt rather than grass.
const dirtChance = 0.22

// tileHash01 maps integer tile coordinates to [0,1) with a fixed-width
// integer mix (splitmix64 finalizer over golden-ratio scrambled inputs).
// Pure and platform-independent: no PRNG stream, no float trig, the same
// (i,j) always yields the same value.
func tileHash01(i, j int) float64 {
	h := uint64(int64(i))*0x9E3779B97F4A7C15 ^ uint64(int64(j))*0xC2B2AE3D27D4EB4F
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return float64(h>>11) / (1 << 53)
}

// TileGround selects the ground variant for a tile. A pure function of the
// coordinates; the infinite map stores no per-tile state.
func TileGround(i, j int) GroundType {
	if tileHash01(i, j) < dirtChance {
		return GroundDirt
	}
	return GroundGrass
}

// cullMargin is the extra world-space border, in pixels, added around the
// viewport before computing the tile range, so tiles never pop at the edge.
const cullMargin = 2 * tileWidth

// TileDraw is one visible tile handed to the render sink.
type TileDraw struct {
	I, J   int
	Ground GroundType
	Pos    Point // projected tile centre in world space
}

// TileRange returns the integer tile bounding box enclosing the viewport
// (plus margin) for the given camera offset. The box over-approximates the
// diamond-shaped viewport footprint; VisibleTiles filters it.
func TileRange(offset Point, vw, vh float64) (iMin, jMin, iMax, jMax int) {
	x0 := offset.X - vw/2 - cullMargin
	x1 := offset.X + vw/2 + cullMargin
	y0 := offset.Y - vh/2 - cullMargin
	y1 := offset.Y + vh/2 + cullMargin

	corners := [4]Coord{
		Unproject(Point{x0, y0}),
		Unproject(Point{x1, y0}),
		Unproject(Point{x0, y1}),
		Unproject(Point{x1, y1}),
	}
	minI, maxI := corners[0].I, corners[0].I
	minJ, maxJ := corners[0].J, corners[0].J
	for _, c := range corners[1:] {
		minI = math.Min(minI, c.I)
		maxI = math.Max(maxI, c.I)
		minJ = math.Min(minJ, c.J)
		maxJ = math.Max(maxJ, c.J)
	}
	return int(math.Floor(minI)) - 1, int(math.Floor(minJ)) - 1,
		int(math.Ceil(maxI)) + 1, int(math.Ceil(maxJ)) + 1
}

// VisibleTiles enumerates the tiles to draw for one frame, in a fixed
// deterministic order, rejecting tiles whose projected diamond bounding
// box falls outside the padded viewport. Recomputed fresh every frame;
// returns the number of tiles visited.
func VisibleTiles(offset Point, vw, vh float64, visit func(TileDraw)) int {
	iMin, jMin, iMax, jMax := TileRange(offset, vw, vh)
	limX := vw/2 + tileWidth
	limY := vh/2 + tileHeight
	n := 0
	for j := jMin; j <= jMax; j++ {
		for i := iMin; i <= iMax; i++ {
			p := Project(Coord{float64(i), float64(j)})
			sx := p.X - offset.X
			sy := p.Y - offset.Y
			if sx+halfTileW < -limX || sx-halfTileW > limX ||
				sy+halfTileH < -limY || sy-halfTileH > limY {
				continue
			}
			visit(TileDraw{I: i, J: j, Ground: TileGround(i, j), Pos: p})
			n++
		}
	}
	return n
}
