package geom

// BoundingBox is an axis-aligned rectangle given by its four corners. Callers
// build it with NewBox or NewRect so that left <= right and bottom <= top.
type BoundingBox struct {
	LeftBottom  Point
	LeftTop     Point
	RightBottom Point
	RightTop    Point
}

// NewBox returns the square of half side halfExtent around center.
func NewBox(center Point, halfExtent float64) BoundingBox {
	return BoundingBox{
		LeftBottom:  Point{X: center.X - halfExtent, Y: center.Y - halfExtent},
		LeftTop:     Point{X: center.X - halfExtent, Y: center.Y + halfExtent},
		RightBottom: Point{X: center.X + halfExtent, Y: center.Y - halfExtent},
		RightTop:    Point{X: center.X + halfExtent, Y: center.Y + halfExtent},
	}
}

// NewRect returns the rectangle with bottom-left corner (x, y).
func NewRect(x, y, width, height float64) BoundingBox {
	return BoundingBox{
		LeftBottom:  Point{X: x, Y: y},
		LeftTop:     Point{X: x, Y: y + height},
		RightBottom: Point{X: x + width, Y: y},
		RightTop:    Point{X: x + width, Y: y + height},
	}
}

// Contains reports whether other lies entirely inside b, edges included.
func (b BoundingBox) Contains(other BoundingBox) bool {
	return other.LeftBottom.X >= b.LeftBottom.X && other.LeftBottom.Y >= b.LeftBottom.Y &&
		other.RightBottom.X <= b.RightBottom.X && other.RightBottom.Y >= b.RightBottom.Y &&
		other.LeftTop.X >= b.LeftTop.X && other.LeftTop.Y <= b.LeftTop.Y &&
		other.RightTop.X <= b.RightTop.X && other.RightTop.Y <= b.RightTop.Y
}

// Overlaps reports whether one of the boxes contains the other.
//
// Boxes that only partially overlap are NOT reported. Arena tiles and body hit
// boxes rely on this narrower test; food spacing depends on it.
func (b BoundingBox) Overlaps(other BoundingBox) bool {
	return b.Contains(other) || other.Contains(b)
}

// IsInside reports whether p lies in b, edges included.
func (b BoundingBox) IsInside(p Point) bool {
	return p.X >= b.LeftBottom.X && p.X <= b.RightBottom.X &&
		p.Y >= b.LeftBottom.Y && p.Y <= b.LeftTop.Y
}

// AnyInside reports whether at least one of points lies in b.
func (b BoundingBox) AnyInside(points []Point) bool {
	for _, p := range points {
		if b.IsInside(p) {
			return true
		}
	}
	return false
}

// Center returns the midpoint of the diagonal.
func (b BoundingBox) Center() Point {
	return Point{
		X: (b.LeftBottom.X + b.RightTop.X) / 2,
		Y: (b.LeftBottom.Y + b.RightTop.Y) / 2,
	}
}

// HalfExtents returns half the width and half the height of b.
func (b BoundingBox) HalfExtents() (float64, float64) {
	return (b.RightTop.X - b.LeftBottom.X) / 2, (b.RightTop.Y - b.LeftBottom.Y) / 2
}
