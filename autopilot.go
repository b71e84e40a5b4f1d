package main

import (
	"math"

	"github.com/andrinmeier/meigames-snake2d/geom"
)

// autopilotLookahead is how far ahead of the head the autopilot probes for
// its own body, in body half widths.
const autopilotLookahead = 3

// Autopilot steers a session without a human player, for demo rounds.
type Autopilot struct {
	wallReach float64
}

// NewAutopilot creates an autopilot that heads back to the center when it
// gets closer than wallReach to a wall.
func NewAutopilot(wallReach float64) *Autopilot {
	return &Autopilot{wallReach: wallReach}
}

// Decide applies priority-based rules and returns the steering for the next
// update: walls first, then the body ahead, then the food.
func (a *Autopilot) Decide(g *Game) PlayerInput {
	s := g.Snake()
	head, ok := s.Head()
	if !ok {
		return PlayerInput{}
	}
	heading := s.Heading()

	// --- Priority 1: Boundary avoidance ---
	w, h := g.Size()
	if head.X < a.wallReach || head.X > w-a.wallReach || head.Y < a.wallReach || head.Y > h-a.wallReach {
		return steerTo(headingTo(head, geom.Point{X: w / 2, Y: h / 2}))
	}

	// --- Priority 2: Own body straight ahead, turn a quarter away ---
	probe := geom.Velocity{Angle: heading, Magnitude: autopilotLookahead * s.HalfWidth()}.Project(head)
	if s.AnyPointsInside([]geom.Point{probe}) {
		return steerTo(geom.FromDegrees(heading.Degrees + 90))
	}

	// --- Priority 3: Food ---
	return steerTo(headingTo(head, g.Food().Center))
}

func steerTo(angle geom.Angle) PlayerInput {
	return PlayerInput{Wanted: angle, Swiping: true}
}

// headingTo returns the heading pointing from one point to another.
func headingTo(from, to geom.Point) geom.Angle {
	d := to.Sub(from)
	return geom.FromRadians(math.Atan2(d.Y, d.X))
}
