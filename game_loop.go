package main

import "time"

// Scene is anything the loop drives: Update runs once per fixed step, Draw
// once per frame with the fraction of a step not yet simulated.
type Scene interface {
	Update()
	Draw(lag float64)
}

// Loop runs a Scene on a fixed timestep, decoupled from the frame rate.
type Loop struct {
	step    time.Duration
	scene   Scene
	lag     time.Duration
	stopped bool
}

// NewLoop creates a loop that updates scene every step.
func NewLoop(scene Scene, step time.Duration) *Loop {
	return &Loop{step: step, scene: scene}
}

// Advance feeds elapsed real time into the loop. It runs as many updates as
// fit, then draws once with the leftover as a fraction of a step. It returns
// the number of updates run.
func (l *Loop) Advance(elapsed time.Duration) int {
	if l.stopped {
		return 0
	}
	l.lag += elapsed
	updates := 0
	for l.lag >= l.step {
		l.scene.Update()
		l.lag -= l.step
		updates++
		// the scene may stop the loop from inside Update
		if l.stopped {
			return updates
		}
	}
	l.scene.Draw(float64(l.lag) / float64(l.step))
	return updates
}

// Stop halts the loop; later calls to Advance do nothing.
func (l *Loop) Stop() {
	l.stopped = true
}

// Start resumes a stopped loop with no pending lag.
func (l *Loop) Start() {
	l.stopped = false
	l.lag = 0
}

// Stopped reports whether the loop is halted.
func (l *Loop) Stopped() bool {
	return l.stopped
}
