package arena

import "github.com/andrinmeier/meigames-snake2d/geom"

// OutOfBounds tests points against the arena rectangle [0, width) x [0, height).
type OutOfBounds struct {
	width  float64
	height float64
}

// NewOutOfBounds returns the test for a width x height arena.
func NewOutOfBounds(width, height float64) *OutOfBounds {
	return &OutOfBounds{width: width, height: height}
}

// Resize updates the arena dimensions.
func (o *OutOfBounds) Resize(width, height float64) {
	o.width = width
	o.height = height
}

// Inside reports whether any of points lies outside the arena. Points on the
// far edges (x == width or y == height) are outside; points on the near edges
// are not.
func (o *OutOfBounds) Inside(points []geom.Point) bool {
	for _, p := range points {
		if p.X < 0 || p.X >= o.width || p.Y < 0 || p.Y >= o.height {
			return true
		}
	}
	return false
}
