package main

import (
	"github.com/andrinmeier/meigames-snake2d/arena"
	"github.com/andrinmeier/meigames-snake2d/geom"
)

// Reasons a game ends, as sent to the client.
const (
	DoneWall      = "wall"
	DoneSelf      = "self"
	DoneArenaFull = "full"
)

// PlayerInput is the steering collected between two updates.
type PlayerInput struct {
	TurnDegrees float64    // sum of keyboard turns
	Wanted      geom.Angle // swipe heading, only used while Swiping
	Swiping     bool
}

// Game is a single-player round: one snake, one food, one arena.
//
// The game signals score changes and the end of the round through the
// handlers registered with OnScoreChanged and OnGameDone; it never talks to
// the client itself.
type Game struct {
	snake  *Snake
	food   *arena.Food
	area   *arena.GameArea
	bounds *arena.OutOfBounds
	rng    arena.Rand

	score  int
	done   bool
	reason string

	onScoreChanged func(score int)
	onGameDone     func()
}

// NewGame starts a round in a width x height arena and places the first food.
// When not even the first food fits, the game starts out done.
func NewGame(width, height float64, rng arena.Rand) *Game {
	g := &Game{
		snake:  NewSnake(SnakeHalfWidth, SnakeStartSpeed, SnakeStartLength),
		food:   arena.NewFood(FoodRadius),
		area:   arena.NewGameArea(width, height, ArenaStride, ArenaMargin),
		bounds: arena.NewOutOfBounds(width, height),
		rng:    rng,
	}
	g.snake.Grow(1)
	if !arena.PlaceFood(g.area, g.food, g.snake.HitBoxes(), g.rng) {
		g.done = true
		g.reason = DoneArenaFull
		g.snake.Stop()
	}
	return g
}

// OnScoreChanged registers the score handler.
func (g *Game) OnScoreChanged(fn func(score int)) {
	g.onScoreChanged = fn
}

// OnGameDone registers the game-over handler.
func (g *Game) OnGameDone(fn func()) {
	g.onGameDone = fn
}

// Resize forwards the arena dimensions; the tiling is only rebuilt when they
// changed.
func (g *Game) Resize(width, height float64) {
	g.area.Resize(width, height)
	g.bounds.Resize(width, height)
}

// Update applies input and advances the round by one tick.
func (g *Game) Update(input PlayerInput) {
	if g.done {
		return
	}
	g.steer(input)
	g.snake.Update()

	points := g.snake.HeadPoints()
	if g.bounds.Inside(points) {
		g.finish(DoneWall)
		return
	}
	if g.snake.HitItself() {
		g.finish(DoneSelf)
		return
	}
	if g.food.AnyPointsInside(points) {
		g.eat()
	}
}

func (g *Game) steer(input PlayerInput) {
	if input.TurnDegrees != 0 {
		g.snake.ChangeDirection(input.TurnDegrees)
	}
	if input.Swiping {
		g.snake.ApproximateDirection(input.Wanted)
	}
}

func (g *Game) eat() {
	g.score++
	if g.onScoreChanged != nil {
		g.onScoreChanged(g.score)
	}
	g.snake.IncreaseBodyLength(FoodBonusLength)
	g.snake.SpeedUp(FoodSpeedBonus)
	if !arena.PlaceFood(g.area, g.food, g.snake.HitBoxes(), g.rng) {
		g.finish(DoneArenaFull)
	}
}

func (g *Game) finish(reason string) {
	g.done = true
	g.reason = reason
	g.snake.Stop()
	if g.onGameDone != nil {
		g.onGameDone()
	}
}

// Score returns the number of food eaten.
func (g *Game) Score() int { return g.score }

// Done reports whether the round is over and why.
func (g *Game) Done() (bool, string) { return g.done, g.reason }

// Snake returns the snake of this round.
func (g *Game) Snake() *Snake { return g.snake }

// Food returns the food of this round.
func (g *Game) Food() *arena.Food { return g.food }

// Size returns the arena dimensions.
func (g *Game) Size() (float64, float64) { return g.area.Size() }
