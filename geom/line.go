package geom

import (
	"iter"
	"math"
)

// skinStep is the spacing of sampled points along a Line, as a fraction of
// its width.
const skinStep = 0.01

// Line is a cross-section of the snake body: a segment of length
// 2*HalfWidth centered on Center and perpendicular to Heading.
type Line struct {
	Center    Point
	Heading   Angle
	HalfWidth float64
}

// NewLine builds the cross-section at center for the given heading.
func NewLine(center Point, heading Angle, halfWidth float64) Line {
	return Line{Center: center, Heading: heading, HalfWidth: halfWidth}
}

// Start is the edge a quarter turn clockwise from the heading.
func (l Line) Start() Point {
	sin, cos := math.Sincos(l.Heading.Radians)
	return Point{
		X: l.Center.X + l.HalfWidth*sin,
		Y: l.Center.Y - l.HalfWidth*cos,
	}
}

// End is the edge a quarter turn counter-clockwise from the heading.
func (l Line) End() Point {
	sin, cos := math.Sincos(l.Heading.Radians)
	return Point{
		X: l.Center.X - l.HalfWidth*sin,
		Y: l.Center.Y + l.HalfWidth*cos,
	}
}

// Points yields Start, the interpolated points between Start and End, then
// End. Each call builds a fresh sequence.
func (l Line) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		start, end := l.Start(), l.End()
		if !yield(start) {
			return
		}
		for p := range Interpolate(start, end, skinStep) {
			if !yield(p) {
				return
			}
		}
		yield(end)
	}
}
