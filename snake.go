package main

import (
	"github.com/andrinmeier/meigames-snake2d/body"
	"github.com/andrinmeier/meigames-snake2d/geom"
)

// Snake moves a body along its velocity, one line per tick.
type Snake struct {
	velocity geom.Velocity
	speed    float64
	body     *body.Body
	stopped  bool
}

// NewSnake creates a snake heading along +x with an empty body that will keep
// at most length lines.
func NewSnake(halfWidth, speed float64, length int) *Snake {
	return &Snake{
		velocity: geom.Velocity{Angle: geom.FromDegrees(0), Magnitude: speed},
		speed:    speed,
		body:     body.New(halfWidth, length),
	}
}

// Heading returns the current heading.
func (s *Snake) Heading() geom.Angle {
	return s.velocity.Angle
}

// HalfWidth returns half the body width.
func (s *Snake) HalfWidth() float64 {
	return s.body.HalfWidth()
}

// Speed returns the distance travelled per tick.
func (s *Snake) Speed() float64 {
	return s.speed
}

// SpeedUp raises the speed by delta, capped at MaxSnakeSpeed.
func (s *Snake) SpeedUp(delta float64) {
	s.speed = min(s.speed+delta, MaxSnakeSpeed)
	s.velocity = geom.Velocity{Angle: s.velocity.Angle, Magnitude: s.speed}
}

// ChangeDirection turns the heading by deltaDegrees (counter-clockwise for
// positive values).
func (s *Snake) ChangeDirection(deltaDegrees float64) {
	angle := geom.FromDegrees(s.velocity.Angle.Degrees + deltaDegrees)
	s.velocity = geom.Velocity{Angle: angle, Magnitude: s.speed}
}

// ApproximateDirection turns one TurnStepDegrees step toward wanted along the
// shorter way round. It does nothing once the heading is within one step.
func (s *Snake) ApproximateDirection(wanted geom.Angle) {
	rotation := geom.ClosestRotation(wanted.Degrees, s.velocity.Angle.Degrees, TurnStepDegrees)
	if rotation == 0 {
		return
	}
	s.ChangeDirection(float64(rotation) * TurnStepDegrees)
}

// RestrictBodyLength sets the number of lines the body keeps.
func (s *Snake) RestrictBodyLength(length int) {
	s.body.SetCapacity(length)
}

// IncreaseBodyLength lets the body keep added more lines than before.
func (s *Snake) IncreaseBodyLength(added int) {
	s.body.GrowCapacity(added)
}

// Grow appends count lines, one velocity step apart, in front of the head.
// An empty body starts from (SnakeStartX, SnakeStartY).
func (s *Snake) Grow(count int) {
	previous, ok := s.body.Head()
	if !ok {
		previous = geom.Point{X: SnakeStartX, Y: SnakeStartY}
	}
	for ; count > 0; count-- {
		next := s.velocity.Project(previous)
		s.body.Append(next, s.velocity.Angle)
		previous = next
	}
}

// Update advances the snake one tick unless it was stopped.
func (s *Snake) Update() {
	if s.stopped {
		return
	}
	s.Grow(1)
}

// Stop freezes the snake; the body stays as it is.
func (s *Snake) Stop() {
	s.stopped = true
}

// Stopped reports whether Stop was called.
func (s *Snake) Stopped() bool {
	return s.stopped
}

// Head returns the center of the leading line.
func (s *Snake) Head() (geom.Point, bool) {
	return s.body.Head()
}

// HeadPoints returns the skin points used for wall and food tests.
func (s *Snake) HeadPoints() []geom.Point {
	return s.body.HeadPoints()
}

// HitBoxes returns one box per body line.
func (s *Snake) HitBoxes() []geom.BoundingBox {
	return s.body.AllBoundingBoxes()
}

// AnyPointsInside reports whether any of points touches the body.
func (s *Snake) AnyPointsInside(points []geom.Point) bool {
	return s.body.AnyPointInside(points)
}

// HitItself reports whether the head ran into the body.
func (s *Snake) HitItself() bool {
	return s.body.HitItself()
}

// Vertices returns the triangle strip of the body.
func (s *Snake) Vertices() []float64 {
	return s.body.Vertices()
}

// Len returns the number of body lines.
func (s *Snake) Len() int {
	return s.body.Len()
}
