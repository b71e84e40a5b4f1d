package main

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/andrinmeier/meigames-snake2d/geom"
)

// Conn manages a single WebSocket player session
type Conn struct {
	ID        string
	Name      string
	Autopilot bool
	ws        *websocket.Conn
	mu        sync.Mutex // protects input and size
	writeMu   sync.Mutex // serializes ws writes
	input     PlayerInput
	width     float64
	height    float64
	closed    bool
	restart   chan struct{}
}

// NewConn creates a new connection wrapper
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ID:      uuid.New().String(),
		ws:      ws,
		width:   DefaultArenaW,
		height:  DefaultArenaH,
		restart: make(chan struct{}, 1),
	}
}

// Send serializes msg to JSON and writes it to the WebSocket
func (c *Conn) Send(msg interface{}) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %T: %w", msg, err)
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return nil
	}
	if err := c.ws.SetWriteDeadline(time.Now().Add(WriteTimeout)); err != nil {
		return fmt.Errorf("set write deadline for %s: %w", c.ID, err)
	}
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write to %s: %w", c.ID, err)
	}
	return nil
}

// TakeInput returns the steering collected since the last call. Keyboard
// turns are consumed; an ongoing swipe stays until it ends.
func (c *Conn) TakeInput() PlayerInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	in := c.input
	c.input.TurnDegrees = 0
	return in
}

// Size returns the last logical canvas size reported by the client.
func (c *Conn) Size() (float64, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

// Restarts delivers restart requests to the session.
func (c *Conn) Restarts() <-chan struct{} {
	return c.restart
}

// addTurn accumulates a keyboard turn under lock
func (c *Conn) addTurn(degrees float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input.TurnDegrees = clamp(c.input.TurnDegrees+degrees, -MaxTurnDeltaDegrees, MaxTurnDeltaDegrees)
}

// setSwipe records the heading of an ongoing swipe. A swipe without length
// keeps the previous heading.
func (c *Conn) setSwipe(first, last geom.Point) {
	angle, ok := geom.SwipeAngle(first, last)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input.Wanted = angle
	c.input.Swiping = true
}

func (c *Conn) endSwipe() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input.Swiping = false
}

// setSize stores the canvas size, clamped to what the server accepts
func (c *Conn) setSize(width, height float64) {
	if width == 0 || height == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width = clamp(width, MinArenaSize, MaxArenaSize)
	c.height = clamp(height, MinArenaSize, MaxArenaSize)
}

// requestRestart queues a restart unless one is already pending
func (c *Conn) requestRestart() {
	select {
	case c.restart <- struct{}{}:
	default:
	}
}

// Close marks connection closed
func (c *Conn) Close() {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.closed = true
	c.ws.Close()
}

// ConnManager manages all active connections
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewConnManager creates an empty connection manager
func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

// Add registers a connection
func (m *ConnManager) Add(c *Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c.ID] = c
}

// Remove unregisters a connection
func (m *ConnManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
}

// Count returns the number of active connections
func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// ReadLoop handles incoming messages for a connection until it disconnects.
// onJoin is called for the first join message only; later joins are ignored.
// onDisconnect is called when the connection closes.
func (c *Conn) ReadLoop(
	onJoin func(conn *Conn),
	onDisconnect func(conn *Conn),
) {
	defer func() {
		onDisconnect(c)
		c.Close()
	}()

	joined := false
	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error for %s: %v", c.ID, err)
			}
			return
		}

		msg, err := decodeClientMessage(raw)
		if err != nil {
			log.Printf("bad message from %s: %v", c.ID, err)
			continue
		}

		switch msg.Type {
		case MsgJoin:
			if joined {
				continue
			}
			joined = true
			name := msg.Name
			if name == "" {
				name = "Player"
			}
			c.Name = name
			c.Autopilot = msg.Autopilot == 1
			c.setSize(msg.Width, msg.Height)
			onJoin(c)

		case MsgTurn:
			c.addTurn(msg.Delta)

		case MsgSwipe:
			c.setSwipe(msg.SwipeStart(), msg.SwipeEnd())

		case MsgSwipeEnd:
			c.endSwipe()

		case MsgResize:
			c.setSize(msg.Width, msg.Height)

		case MsgRestart:
			c.requestRestart()
		}
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
