package arena

import (
	"math"

	"github.com/andrinmeier/meigames-snake2d/geom"
)

// cellKey uniquely identifies a grid cell
type cellKey struct {
	cx, cy int
}

// occupancyGrid is a hash grid of occupied boxes keyed by their centers. It
// lets a tile look only at boxes close enough to contain it or be contained
// by it.
type occupancyGrid struct {
	cells    map[cellKey][]geom.BoundingBox
	cellSize float64
	// largest half extents inserted so far
	reachX, reachY float64
}

func newOccupancyGrid(cellSize float64) *occupancyGrid {
	return &occupancyGrid{
		cells:    make(map[cellKey][]geom.BoundingBox),
		cellSize: cellSize,
	}
}

func (g *occupancyGrid) keyFor(x, y float64) cellKey {
	return cellKey{
		cx: int(math.Floor(x / g.cellSize)),
		cy: int(math.Floor(y / g.cellSize)),
	}
}

// insert adds an occupied box to the cell holding its center
func (g *occupancyGrid) insert(box geom.BoundingBox) {
	c := box.Center()
	k := g.keyFor(c.X, c.Y)
	g.cells[k] = append(g.cells[k], box)
	hw, hh := box.HalfExtents()
	g.reachX = max(g.reachX, hw)
	g.reachY = max(g.reachY, hh)
}

// overlapsAny reports whether tile overlaps any inserted box.
//
// A box inside the tile has its center inside the tile; a box containing the
// tile has its center within its own half extents of the tile. Scanning the
// tile grown by the largest half extents, plus one cell of slack, covers both.
func (g *occupancyGrid) overlapsAny(tile geom.BoundingBox) bool {
	minCX := int(math.Floor((tile.LeftBottom.X-g.reachX)/g.cellSize)) - 1
	maxCX := int(math.Floor((tile.RightTop.X+g.reachX)/g.cellSize)) + 1
	minCY := int(math.Floor((tile.LeftBottom.Y-g.reachY)/g.cellSize)) - 1
	maxCY := int(math.Floor((tile.RightTop.Y+g.reachY)/g.cellSize)) + 1

	for cx := minCX; cx <= maxCX; cx++ {
		for cy := minCY; cy <= maxCY; cy++ {
			for _, box := range g.cells[cellKey{cx, cy}] {
				if tile.Overlaps(box) {
					return true
				}
			}
		}
	}
	return false
}
