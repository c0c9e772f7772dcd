package game

// Tile diamond dimensions in pixels. Changing these rescales the whole
// world; Project/Unproject stay exact inverses for any positive values.
const (
	tileWidth  = 128
	tileHeight = 64

	halfTileW = float64(tileWidth) / 2
	halfTileH = float64(tileHeight) / 2
)

// Coord is a continuous position in tile space. Integer values are tile
// centres; the grid is unbounded.
type Coord struct {
	I, J float64
}

// Point is a position in drawing-surface pixels, relative to the projected
// location of tile (0,0).
type Point struct {
	X, Y float64
}

// Project converts a tile-space coordinate to its screen-space point.
func Project(c Coord) Point {
	return Point{
		X: (c.I - c.J) * halfTileW,
		Y: (c.I + c.J) * halfTileH,
	}
}

// Unproject is the exact algebraic inverse of Project.
func Unproject(p Point) Coord {
	return Coord{
		I: (p.Y/halfTileH + p.X/halfTileW) / 2,
		J: (p.Y/halfTileH - p.X/halfTileW) / 2,
	}
}

// lerp interpolates componentwise between a and b; t=0 gives a, t=1 gives b.
func lerp(a, b Coord, t float64) Coord {
	return Coord{
		I: a.I + (b.I-a.I)*t,
		J: a.J + (b.J-a.J)*t,
	}
}
