package levels

import "math"

// Point is a world position.
type Point struct {
	X, Y float64
}

const (
	// TilePitch is the spacing between floor tiles in world units.
	TilePitch = 0.32
	// FloorLines is how many rows the first level lays down.
	FloorLines = 2
)

// FloorTileCount is how many tiles fit in one row spanning [-halfW, halfW)
// when the first tile is centered half a pitch in from the left edge.
func FloorTileCount(halfW, pitch float64) int {
	if pitch <= 0 || halfW <= 0 {
		return 0
	}
	// tiles sit at -halfW + pitch/2 + k*pitch for every k with the center
	// strictly below halfW, i.e. k < 2*halfW/pitch - 1/2
	n := int(math.Ceil(2*halfW/pitch - 0.5 - countEpsilon))
	if n < 0 {
		return 0
	}
	return n
}

// countEpsilon keeps a tile centered on halfW out of the row when float
// division lands a hair above the exact count.
const countEpsilon = 1e-9

// FloorPositions lays out `lines` rows of tiles from the bottom of the view.
// Rows start at y = -halfH and climb by pitch; in each row x starts at
// -halfW + pitch/2 and advances while strictly below halfW.
func FloorPositions(halfW, halfH, pitch float64, lines int) []Point {
	perRow := FloorTileCount(halfW, pitch)
	if perRow == 0 || lines <= 0 {
		return nil
	}
	out := make([]Point, 0, perRow*lines)
	startX := -halfW + pitch/2
	for row := 0; row < lines; row++ {
		y := -halfH + float64(row)*pitch
		for col := 0; col < perRow; col++ {
			out = append(out, Point{X: startX + float64(col)*pitch, Y: y})
		}
	}
	return out
}
