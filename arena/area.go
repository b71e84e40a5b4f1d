// Package arena covers the play field: the tiling used to place food, the
// food itself and the out-of-bounds test.
package arena

import "github.com/andrinmeier/meigames-snake2d/geom"

// GameArea tiles the play field with square candidate boxes for food.
type GameArea struct {
	width  float64
	height float64
	stride float64
	margin float64
	tiles  []geom.BoundingBox
}

// NewGameArea tiles a width x height field with squares of side stride,
// keeping margin free along every edge.
func NewGameArea(width, height, stride, margin float64) *GameArea {
	a := &GameArea{width: width, height: height, stride: stride, margin: margin}
	a.createSquares()
	return a
}

// Resize rebuilds the tiling when the dimensions changed. It reports whether
// a rebuild happened.
func (a *GameArea) Resize(width, height float64) bool {
	if a.width == width && a.height == height {
		return false
	}
	a.width = width
	a.height = height
	a.createSquares()
	return true
}

// Size returns the current width and height.
func (a *GameArea) Size() (float64, float64) {
	return a.width, a.height
}

// Tiles returns a copy of the current tiling, row by row from the bottom.
func (a *GameArea) Tiles() []geom.BoundingBox {
	out := make([]geom.BoundingBox, len(a.tiles))
	copy(out, a.tiles)
	return out
}

// FreeSquares returns the tiles that overlap none of the occupied boxes, in
// tiling order.
func (a *GameArea) FreeSquares(occupied []geom.BoundingBox) []geom.BoundingBox {
	if len(occupied) == 0 || len(a.tiles) == 0 {
		return a.Tiles()
	}
	grid := newOccupancyGrid(a.stride)
	for _, box := range occupied {
		grid.insert(box)
	}
	free := make([]geom.BoundingBox, 0, len(a.tiles))
	for _, tile := range a.tiles {
		if !grid.overlapsAny(tile) {
			free = append(free, tile)
		}
	}
	return free
}

func (a *GameArea) createSquares() {
	a.tiles = a.tiles[:0]
	if a.stride <= 0 {
		return
	}
	for row := a.margin; row <= a.height-a.stride-a.margin; row += a.stride {
		for col := a.margin; col <= a.width-a.stride-a.margin; col += a.stride {
			a.tiles = append(a.tiles, geom.NewRect(col, row, a.stride, a.stride))
		}
	}
}
