package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrinmeier/meigames-snake2d/geom"
)

func TestSnakeGrowStartsAtStartPoint(t *testing.T) {
	s := NewSnake(5, 5, 10)
	_, ok := s.Head()
	require.False(t, ok)

	s.Grow(3)
	head, ok := s.Head()
	require.True(t, ok)
	assert.InDelta(t, SnakeStartX+15, head.X, 1e-9)
	assert.InDelta(t, SnakeStartY, head.Y, 1e-9)
	assert.Equal(t, 3, s.Len())
	assert.Len(t, s.Vertices(), 12)
}

func TestSnakeChangeDirection(t *testing.T) {
	s := NewSnake(5, 1, 10)
	s.ChangeDirection(-90)
	assert.InDelta(t, 270, s.Heading().Degrees, 1e-9)

	s.Grow(1)
	head, _ := s.Head()
	assert.InDelta(t, SnakeStartX, head.X, 1e-9)
	assert.InDelta(t, SnakeStartY-1, head.Y, 1e-9)
}

func TestSnakeApproximateDirection(t *testing.T) {
	s := NewSnake(5, 1, 10)

	s.ApproximateDirection(geom.FromDegrees(90))
	assert.InDelta(t, TurnStepDegrees, s.Heading().Degrees, 1e-9)

	// 195 degrees counter-clockwise is longer than 165 clockwise
	s.ApproximateDirection(geom.FromDegrees(200))
	assert.InDelta(t, 0, s.Heading().Degrees, 1e-9)

	// within one step of the wanted heading nothing changes
	s = NewSnake(5, 1, 10)
	s.ApproximateDirection(geom.FromDegrees(3))
	assert.Equal(t, 0.0, s.Heading().Degrees)
}

func TestSnakeSpeedUpIsCapped(t *testing.T) {
	s := NewSnake(5, 1, 10)
	s.SpeedUp(0.5)
	assert.InDelta(t, 1.5, s.Speed(), 1e-9)

	s.SpeedUp(5)
	assert.Equal(t, MaxSnakeSpeed, s.Speed())

	s.Grow(1)
	head, _ := s.Head()
	assert.InDelta(t, SnakeStartX+MaxSnakeSpeed, head.X, 1e-9)
}

func TestSnakeStop(t *testing.T) {
	s := NewSnake(5, 1, 10)
	s.Update()
	s.Stop()
	s.Update()
	s.Update()
	assert.True(t, s.Stopped())
	assert.Equal(t, 1, s.Len())
}

func TestSnakeBodyLength(t *testing.T) {
	s := NewSnake(5, 1, 10)
	s.Grow(20)
	assert.Equal(t, 10, s.Len())

	s.IncreaseBodyLength(5)
	s.Grow(20)
	assert.Equal(t, 15, s.Len())

	s.RestrictBodyLength(4)
	assert.Equal(t, 4, s.Len())
}
