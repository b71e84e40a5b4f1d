// Package geom holds the value types the snake body and arena are built from:
// points, angles, velocities, oriented segments and axis-aligned boxes.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a position in arena coordinates (x to the right, y up).
type Point = r2.Point

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.Sub(b).Norm()
}

// Angle carries a heading in radians and in degrees. Degrees are always
// normalized into [0, 360).
type Angle struct {
	Radians float64
	Degrees float64
}

// FromRadians keeps rad as given and derives the normalized degrees.
func FromRadians(rad float64) Angle {
	return Angle{Radians: rad, Degrees: normalizeDegrees(rad * 180 / math.Pi)}
}

// FromDegrees normalizes deg into [0, 360) before converting to radians.
func FromDegrees(deg float64) Angle {
	d := normalizeDegrees(deg)
	return Angle{Radians: d * math.Pi / 180, Degrees: d}
}

func normalizeDegrees(deg float64) float64 {
	n := math.Mod(deg, 360)
	if n < 0 {
		n += 360
	}
	// -1e-20 + 360 rounds to 360
	if n >= 360 {
		n -= 360
	}
	return n
}

// Velocity is a heading plus the distance travelled per tick.
type Velocity struct {
	Angle     Angle
	Magnitude float64
}

// Project moves p one step along v.
func (v Velocity) Project(p Point) Point {
	sin, cos := math.Sincos(v.Angle.Radians)
	return p.Add(Point{X: cos, Y: sin}.Mul(v.Magnitude))
}
