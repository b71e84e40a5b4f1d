// Package body keeps the snake as a sliding window of cross-section lines and
// the flat vertex buffer drawn from them.
package body

import (
	"math"

	"github.com/andrinmeier/meigames-snake2d/geom"
)

const (
	// verticesPerLine is two edge points of two coordinates each.
	verticesPerLine = 4

	minHeadWindow   = 10
	headWindowRatio = 0.05

	// segmentStride is the distance, in lines, between the two ends of a
	// chord used by HitItself.
	segmentStride = 10
	// bufferZone is the number of lines behind the head chord that HitItself
	// never tests against.
	bufferZone = 5 * segmentStride

	// skin sampling keeps the inner part of each head line
	skinFrom = 0.20
	skinTo   = 0.80
)

// Body is an ordered window of the most recent lines. Index 0 is the tail,
// the last index is the head.
type Body struct {
	halfWidth      float64
	maxLength      int
	headWindowSize int
	lines          []geom.Line
	vertices       []float64
}

// New returns an empty body whose lines are 2*halfWidth wide and which keeps
// at most maxLength of them.
func New(halfWidth float64, maxLength int) *Body {
	b := &Body{halfWidth: halfWidth}
	b.SetCapacity(maxLength)
	return b
}

// SetCapacity replaces the maximum number of lines. Lines beyond the new cap
// are dropped from the tail right away.
func (b *Body) SetCapacity(maxLength int) {
	b.maxLength = max(maxLength, 0)
	b.headWindowSize = max(minHeadWindow, int(math.Floor(float64(b.maxLength)*headWindowRatio)))
	b.trim()
}

// GrowCapacity raises the maximum number of lines by delta.
func (b *Body) GrowCapacity(delta int) {
	b.SetCapacity(b.maxLength + delta)
}

// Capacity returns the maximum number of lines kept.
func (b *Body) Capacity() int { return b.maxLength }

// HeadWindowSize returns how many lines count as the head.
func (b *Body) HeadWindowSize() int { return b.headWindowSize }

// HalfWidth returns half the body width.
func (b *Body) HalfWidth() float64 { return b.halfWidth }

// Len returns the number of lines currently kept.
func (b *Body) Len() int { return len(b.lines) }

// Append adds the cross-section at point to the head and evicts tail lines
// beyond the capacity.
func (b *Body) Append(point geom.Point, heading geom.Angle) {
	line := geom.NewLine(point, heading, b.halfWidth)
	end, start := line.End(), line.Start()
	b.vertices = append(b.vertices, end.X, end.Y, start.X, start.Y)
	b.lines = append(b.lines, line)
	b.trim()
}

// trim drops lines and vertices from the front. Reslicing keeps Append
// amortized O(1): the backing array is only copied when append outgrows it.
func (b *Body) trim() {
	if over := len(b.lines) - b.maxLength; over > 0 {
		b.lines = b.lines[over:]
	}
	if over := len(b.vertices) - b.maxLength*verticesPerLine; over > 0 {
		b.vertices = b.vertices[over:]
	}
}

// Head returns the center of the most recent line. It returns false on an
// empty body.
func (b *Body) Head() (geom.Point, bool) {
	l, ok := b.HeadLine()
	return l.Center, ok
}

// Tail returns the center of the oldest line kept.
func (b *Body) Tail() (geom.Point, bool) {
	l, ok := b.TailLine()
	return l.Center, ok
}

// HeadLine returns the most recent line.
func (b *Body) HeadLine() (geom.Line, bool) {
	if len(b.lines) == 0 {
		return geom.Line{}, false
	}
	return b.lines[len(b.lines)-1], true
}

// TailLine returns the oldest line kept.
func (b *Body) TailLine() (geom.Line, bool) {
	if len(b.lines) == 0 {
		return geom.Line{}, false
	}
	return b.lines[0], true
}

// Lines returns a copy of all lines, tail first.
func (b *Body) Lines() []geom.Line {
	out := make([]geom.Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Vertices returns a copy of the vertex buffer: for every line its end then
// its start point, tail first, ready to be drawn as a triangle strip.
func (b *Body) Vertices() []float64 {
	out := make([]float64, len(b.vertices))
	copy(out, b.vertices)
	return out
}

// HeadWindow returns the most recent HeadWindowSize lines, or all of them
// when the body is shorter.
func (b *Body) HeadWindow() []geom.Line {
	from := max(len(b.lines)-b.headWindowSize, 0)
	out := make([]geom.Line, len(b.lines)-from)
	copy(out, b.lines[from:])
	return out
}

// HeadPoints samples the skin of the head window: the inner part of every
// head line, leaving out the outer fifth on each side.
func (b *Body) HeadPoints() []geom.Point {
	var points []geom.Point
	var line []geom.Point
	for _, l := range b.HeadWindow() {
		line = line[:0]
		for p := range l.Points() {
			line = append(line, p)
		}
		lo := int(math.Floor(float64(len(line)) * skinFrom))
		hi := int(math.Floor(float64(len(line)) * skinTo))
		points = append(points, line[lo:hi]...)
	}
	return points
}

// HitBox returns the square hit box of the body around p.
func (b *Body) HitBox(p geom.Point) geom.BoundingBox {
	return geom.NewBox(p, b.halfWidth)
}

// AllBoundingBoxes returns one hit box per line, tail first.
func (b *Body) AllBoundingBoxes() []geom.BoundingBox {
	boxes := make([]geom.BoundingBox, len(b.lines))
	for i, l := range b.lines {
		boxes[i] = b.HitBox(l.Center)
	}
	return boxes
}

// AnyPointInside reports whether any of points lies in any hit box.
func (b *Body) AnyPointInside(points []geom.Point) bool {
	for _, l := range b.lines {
		if b.HitBox(l.Center).AnyInside(points) {
			return true
		}
	}
	return false
}

// HitItself reports whether the head has run into the body.
//
// The head is represented by the chord between the centers segmentStride lines
// apart at the front; the rest of the body by chords of the same stride. The
// bufferZone lines right behind the head chord are skipped so the head's own
// curvature never counts.
func (b *Body) HitItself() bool {
	n := len(b.lines)
	if n < 2*segmentStride+bufferZone {
		return false
	}
	headFrom := b.lines[n-segmentStride].Center
	headTo := b.lines[n-1].Center
	for i := 0; i < n-segmentStride-bufferZone; i += segmentStride {
		from := b.lines[i].Center
		to := b.lines[i+segmentStride].Center
		if geom.SegmentsIntersect(from, to, headFrom, headTo) {
			return true
		}
	}
	return false
}
