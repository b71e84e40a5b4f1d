package geom

import (
	"iter"
	"math"
)

// Lerp returns the point at fraction t on the way from a to b.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: (1-t)*a.X + t*b.X,
		Y: (1-t)*a.Y + t*b.Y,
	}
}

// Interpolate yields the points strictly between from and to, spaced step
// apart as a fraction of the span. The endpoints are not included.
func Interpolate(from, to Point, step float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if step <= 0 || step >= 1 {
			return
		}
		// integer counter keeps the count stable where t += step would drift
		n := int(math.Round(1 / step))
		for i := 1; i < n; i++ {
			if !yield(Lerp(from, to, float64(i)*step)) {
				return
			}
		}
	}
}
