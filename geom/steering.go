package geom

import "math"

// minSwipeLength is the shortest swipe vector that still has a direction.
const minSwipeLength = 1e-9

// ClosestRotation returns +1 when turning counter-clockwise (increasing
// degrees) is the shorter way from current to wanted, -1 for clockwise, and 0
// when the two headings are within tolerance degrees of each other.
func ClosestRotation(wanted, current, tolerance float64) int {
	diff := math.Mod(wanted-current, 360)
	switch {
	case diff > 180:
		diff -= 360
	case diff <= -180:
		diff += 360
	}
	switch {
	case math.Abs(diff) <= tolerance:
		return 0
	case diff > 0:
		return 1
	default:
		return -1
	}
}

// SwipeAngle converts a swipe from first to last, given in screen
// coordinates (y down), into an arena heading. It returns false when the two
// points coincide and the swipe has no direction.
func SwipeAngle(first, last Point) (Angle, bool) {
	dir := Point{X: last.X - first.X, Y: first.Y - last.Y}
	if dir.Norm() < minSwipeLength {
		return Angle{}, false
	}
	unit := dir.Normalize()
	return FromDegrees(math.Atan2(unit.Y, unit.X) * 180 / math.Pi), true
}
