package main

import (
	"context"
	"log"
	"math/rand"
	"time"
)

// inputSource is where a session reads steering and canvas size from.
type inputSource interface {
	TakeInput() PlayerInput
	Size() (float64, float64)
}

// sender delivers messages to the client.
type sender interface {
	Send(msg interface{}) error
}

// Session runs one player's rounds. It is the Scene of its own Loop: the loop
// calls Update on every fixed step and Draw once per frame.
type Session struct {
	id       string
	in       inputSource
	out      sender
	rng      *rand.Rand
	pilot    *Autopilot
	game     *Game
	loop     *Loop
	recorder *TickRecorder
}

// NewSession creates a session and starts its first round. With a non-nil
// pilot the round is steered by the autopilot instead of the player.
func NewSession(id string, in inputSource, out sender, pilot *Autopilot, rng *rand.Rand) *Session {
	s := &Session{
		id:       id,
		in:       in,
		out:      out,
		rng:      rng,
		pilot:    pilot,
		recorder: NewTickRecorder(TickSamples, LowTickRateFPS),
	}
	s.loop = NewLoop(s, UpdateStep)
	s.recorder.OnLowRate(func(fps float64) {
		log.Printf("session %s: frame rate dropped to %.1f/s", s.id, fps)
	})
	s.newRound()
	return s
}

// newRound replaces the game and wires its handlers.
func (s *Session) newRound() {
	w, h := s.in.Size()
	g := NewGame(w, h, s.rng)
	g.OnScoreChanged(func(score int) {
		if err := s.out.Send(ScoreMsg{Type: MsgScore, Score: score}); err != nil {
			log.Printf("send error to %s: %v", s.id, err)
		}
	})
	g.OnGameDone(s.gameDone)
	s.game = g
	s.loop.Start()

	if done, _ := g.Done(); done {
		s.gameDone()
	}
}

func (s *Session) gameDone() {
	s.loop.Stop()
	_, reason := s.game.Done()
	log.Printf("session %s: game over (%s), score %d", s.id, reason, s.game.Score())
	if err := s.out.Send(DoneMsg{Type: MsgDone, Score: s.game.Score(), Reason: reason}); err != nil {
		log.Printf("send error to %s: %v", s.id, err)
	}
}

// Restart begins a new round.
func (s *Session) Restart() {
	s.newRound()
}

// Game returns the current round.
func (s *Session) Game() *Game {
	return s.game
}

// Update advances the round by one step.
func (s *Session) Update() {
	s.game.Resize(s.in.Size())
	input := s.in.TakeInput()
	if s.pilot != nil {
		input = s.pilot.Decide(s.game)
	}
	s.game.Update(input)
}

// Draw sends the current state to the client.
func (s *Session) Draw(lag float64) {
	if err := s.out.Send(newStateMsg(s.game, lag)); err != nil {
		log.Printf("send error to %s: %v", s.id, err)
	}
}

// Tick feeds one frame of elapsed time into the loop.
func (s *Session) Tick(elapsed time.Duration) {
	s.recorder.Record(elapsed)
	s.loop.Advance(elapsed)
}

// Run drives the session at the given frame interval until ctx is done.
// Restart requests arriving on restart begin a new round.
func (s *Session) Run(ctx context.Context, frame time.Duration, restart <-chan struct{}) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	log.Printf("session %s started", s.id)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Printf("session %s stopped", s.id)
			return
		case <-restart:
			s.Restart()
			last = time.Now()
		case now := <-ticker.C:
			s.Tick(now.Sub(last))
			last = now
		}
	}
}
