package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingScene struct {
	updates   int
	lags      []float64
	stopAfter int
	loop      *Loop
}

func (s *countingScene) Update() {
	s.updates++
	if s.stopAfter > 0 && s.updates == s.stopAfter {
		s.loop.Stop()
	}
}

func (s *countingScene) Draw(lag float64) {
	s.lags = append(s.lags, lag)
}

func TestLoopCatchesUp(t *testing.T) {
	scene := &countingScene{}
	loop := NewLoop(scene, 10*time.Millisecond)

	assert.Equal(t, 2, loop.Advance(25*time.Millisecond))
	assert.Equal(t, 2, scene.updates)
	assert.Equal(t, []float64{0.5}, scene.lags)

	// the leftover carries into the next frame
	assert.Equal(t, 1, loop.Advance(5*time.Millisecond))
	assert.Equal(t, 3, scene.updates)
	assert.Equal(t, []float64{0.5, 0}, scene.lags)

	assert.Equal(t, 0, loop.Advance(3*time.Millisecond))
	assert.InDelta(t, 0.3, scene.lags[2], 1e-9)
}

func TestLoopStop(t *testing.T) {
	scene := &countingScene{}
	loop := NewLoop(scene, 10*time.Millisecond)
	loop.Stop()

	assert.Equal(t, 0, loop.Advance(time.Second))
	assert.Equal(t, 0, scene.updates)
	assert.Empty(t, scene.lags)
	assert.True(t, loop.Stopped())

	loop.Start()
	assert.Equal(t, 1, loop.Advance(10*time.Millisecond))
}

func TestLoopStoppedFromUpdate(t *testing.T) {
	scene := &countingScene{stopAfter: 2}
	loop := NewLoop(scene, 10*time.Millisecond)
	scene.loop = loop

	assert.Equal(t, 2, loop.Advance(100*time.Millisecond))
	assert.Empty(t, scene.lags)
	assert.Equal(t, 0, loop.Advance(100*time.Millisecond))
}
