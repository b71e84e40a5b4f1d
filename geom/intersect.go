package geom

import "math"

// parallelSlopeEpsilon is the slope difference under which two non-vertical
// segments are treated as parallel and never intersecting.
const parallelSlopeEpsilon = 0.001

const (
	collinear = iota
	clockwise
	counterClockwise
)

// orientation classifies the turn p -> q -> r.
func orientation(p, q, r Point) int {
	v := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case v == 0:
		return collinear
	case v > 0:
		return clockwise
	default:
		return counterClockwise
	}
}

// onSegment reports whether q lies within the bounding range of segment pr.
// Only meaningful when p, q and r are collinear.
func onSegment(p, q, r Point) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

func slope(a, b Point) float64 {
	return (b.Y - a.Y) / (b.X - a.X)
}

// SegmentsIntersect reports whether segment ab intersects segment cd.
//
// Nearly parallel non-vertical segments (slopes closer than 0.001) are never
// reported, even when they do touch. A smoothly curving body produces many
// such pairs and they must not count as hits.
func SegmentsIntersect(a, b, c, d Point) bool {
	if a.X != b.X && c.X != d.X {
		if math.Abs(slope(a, b)-slope(c, d)) < parallelSlopeEpsilon {
			return false
		}
	}

	o1 := orientation(a, b, c)
	o2 := orientation(a, b, d)
	o3 := orientation(c, d, a)
	o4 := orientation(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}

	switch {
	case o1 == collinear && onSegment(a, c, b):
		return true
	case o2 == collinear && onSegment(a, d, b):
		return true
	case o3 == collinear && onSegment(c, a, d):
		return true
	case o4 == collinear && onSegment(c, b, d):
		return true
	}
	return false
}
