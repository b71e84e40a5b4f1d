package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/andrinmeier/meigames-snake2d/geom"
)

// Protocol uses single-character JSON keys to minimize wire size.
// All coordinates are rounded to 1 decimal place.
//
// Message type constants (value of "t" field):
//   Client → Server:
//     "j" = join      {"t":"j","n":"name","w":800,"h":600,"a":0}  (a=autopilot 0/1)
//     "i" = turn      {"t":"i","d":-15}                           (d=degrees, ccw positive)
//     "g" = swipe     {"t":"g","sx":10,"sy":10,"ex":40,"ey":5}    (screen coordinates)
//     "u" = swipe end {"t":"u"}
//     "z" = resize    {"t":"z","w":1024,"h":768}                  (logical canvas size)
//     "r" = restart   {"t":"r"}
//   Server → Client:
//     "w" = welcome   {"t":"w","i":"id"}
//     "s" = state     {"t":"s","v":[x,y,...],"h":[x,y],"f":[x,y,r],"p":3,"l":0.4}
//     "p" = score     {"t":"p","p":4}
//     "d" = done      {"t":"d","p":4,"r":"wall"}
//     "e" = error     {"t":"e","m":"Server full."}

// Message type identifiers, single-char for a compact protocol
const (
	MsgJoin     = "j"
	MsgTurn     = "i"
	MsgSwipe    = "g"
	MsgSwipeEnd = "u"
	MsgResize   = "z"
	MsgRestart  = "r"
	MsgWelcome  = "w"
	MsgState    = "s"
	MsgScore    = "p"
	MsgDone     = "d"
	MsgError    = "e"
)

var errUnknownMessage = errors.New("unknown message type")

// ClientMessage is the base incoming message from the browser.
type ClientMessage struct {
	Type      string  `json:"t"`
	Name      string  `json:"n,omitempty"`
	Width     float64 `json:"w,omitempty"`
	Height    float64 `json:"h,omitempty"`
	Autopilot int     `json:"a,omitempty"` // 0 or 1
	Delta     float64 `json:"d,omitempty"`
	StartX    float64 `json:"sx,omitempty"`
	StartY    float64 `json:"sy,omitempty"`
	EndX      float64 `json:"ex,omitempty"`
	EndY      float64 `json:"ey,omitempty"`
}

// SwipeStart returns where the swipe began, in screen coordinates.
func (m ClientMessage) SwipeStart() geom.Point {
	return geom.Point{X: m.StartX, Y: m.StartY}
}

// SwipeEnd returns where the swipe currently is, in screen coordinates.
func (m ClientMessage) SwipeEnd() geom.Point {
	return geom.Point{X: m.EndX, Y: m.EndY}
}

// decodeClientMessage parses one text frame from the client.
func decodeClientMessage(raw []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return ClientMessage{}, fmt.Errorf("decode client message: %w", err)
	}
	switch msg.Type {
	case MsgJoin, MsgTurn, MsgSwipe, MsgSwipeEnd, MsgResize, MsgRestart:
		return msg, nil
	}
	return ClientMessage{}, fmt.Errorf("%w %q", errUnknownMessage, msg.Type)
}

// WelcomeMsg is sent to a player immediately on WebSocket connect.
// {"t":"w","i":"uuid"}
type WelcomeMsg struct {
	Type string `json:"t"`
	ID   string `json:"i"`
}

// StateMsg is the per-frame state of a session.
// v = body vertex buffer (end, start point per line, tail first) for a
// triangle strip, h = head center, f = food center and radius, l = fraction
// of an update step not yet simulated, for interpolation.
type StateMsg struct {
	Type     string     `json:"t"`
	Vertices []float64  `json:"v"`
	Head     [2]float64 `json:"h"`
	Food     [3]float64 `json:"f"`
	Score    int        `json:"p"`
	Lag      float64    `json:"l"`
}

// ScoreMsg is sent whenever the score changes.
type ScoreMsg struct {
	Type  string `json:"t"`
	Score int    `json:"p"`
}

// DoneMsg is sent when the round ends.
// r = reason: "wall", "self" or "full"
type DoneMsg struct {
	Type   string `json:"t"`
	Score  int    `json:"p"`
	Reason string `json:"r"`
}

// ErrorMsg is sent before the server closes a connection it refuses.
type ErrorMsg struct {
	Type    string `json:"t"`
	Message string `json:"m"`
}

// newStateMsg snapshots g for the client.
func newStateMsg(g *Game, lag float64) StateMsg {
	vertices := g.Snake().Vertices()
	for i, v := range vertices {
		vertices[i] = roundTo1(v)
	}
	msg := StateMsg{
		Type:     MsgState,
		Vertices: vertices,
		Score:    g.Score(),
		Lag:      math.Round(lag*100) / 100,
	}
	if head, ok := g.Snake().Head(); ok {
		msg.Head = [2]float64{roundTo1(head.X), roundTo1(head.Y)}
	}
	food := g.Food()
	msg.Food = [3]float64{roundTo1(food.Center.X), roundTo1(food.Center.Y), food.Radius}
	return msg
}

// roundTo1 rounds a float64 to 1 decimal place to save protocol bytes.
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
