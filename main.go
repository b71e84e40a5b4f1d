package main

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// ipRateLimiter tracks last connection time per IP to prevent abuse
type ipRateLimiter struct {
	mu    sync.Mutex
	times map[string]time.Time
}

func newIPRateLimiter() *ipRateLimiter {
	return &ipRateLimiter{times: make(map[string]time.Time)}
}

// cleanup drops stale entries every minute until ctx is done
func (rl *ipRateLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := time.Now().Add(-time.Duration(IPCooldownSec) * time.Second)
			for ip, t := range rl.times {
				if t.Before(cutoff) {
					delete(rl.times, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// allow returns true if this IP can connect, and records the attempt
func (rl *ipRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if last, ok := rl.times[ip]; ok {
		if time.Since(last) < time.Duration(IPCooldownSec)*time.Second {
			return false
		}
	}
	rl.times[ip] = time.Now()
	return true
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development; tighten in production
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Enable per-message deflate compression (RFC 7692)
	EnableCompression: true,
}

// sendErrorAndClose sends an error message via WebSocket then closes the connection
func sendErrorAndClose(ws *websocket.Conn, msg string) {
	data, _ := json.Marshal(ErrorMsg{Type: MsgError, Message: msg})
	_ = ws.WriteMessage(websocket.TextMessage, data)
	ws.Close()
}

// Server wires connections to sessions.
type Server struct {
	cfg         Config
	conns       *ConnManager
	rateLimiter *ipRateLimiter
}

// NewServer creates a server for cfg.
func NewServer(cfg Config) *Server {
	return &Server{
		cfg:         cfg,
		conns:       NewConnManager(),
		rateLimiter: newIPRateLimiter(),
	}
}

// Router returns the HTTP routes: the WebSocket endpoint, a health check and
// the static client.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc(WebSocketPath, s.handleWebSocket).Methods(http.MethodGet)
	r.HandleFunc(HealthPath, s.handleHealth).Methods(http.MethodGet)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.cfg.StaticDir)))
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{"players": s.conns.Count()})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Extract client IP (handle X-Forwarded-For for reverse proxies)
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip, _, _ = net.SplitHostPort(r.RemoteAddr)
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	// Check limits after upgrade so client can receive error messages
	if s.conns.Count() >= s.cfg.MaxPlayers {
		sendErrorAndClose(ws, "Server full. Please try again later.")
		return
	}
	if !s.rateLimiter.allow(ip) {
		sendErrorAndClose(ws, "Too many connections. Please wait a moment.")
		return
	}

	// Enable per-message write compression at best-speed level
	ws.EnableWriteCompression(true)

	conn := NewConn(ws)
	s.conns.Add(conn)
	log.Printf("player connected: %s", conn.ID)

	// Send welcome immediately so client knows its ID
	if err := conn.Send(WelcomeMsg{Type: MsgWelcome, ID: conn.ID}); err != nil {
		log.Printf("send error to %s: %v", conn.ID, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var sessionDone sync.WaitGroup

	onJoin := func(c *Conn) {
		var pilot *Autopilot
		if c.Autopilot {
			pilot = NewAutopilot(ArenaWallReach)
		}
		session := NewSession(c.ID, c, c, pilot, rand.New(rand.NewSource(time.Now().UnixNano())))
		sessionDone.Add(1)
		go func() {
			defer sessionDone.Done()
			session.Run(ctx, s.cfg.FrameInterval(), c.Restarts())
		}()
		log.Printf("player joined: %s (%s)", c.Name, c.ID)
	}

	onDisconnect := func(c *Conn) {
		cancel()
		sessionDone.Wait()
		s.conns.Remove(c.ID)
		log.Printf("player disconnected: %s", c.ID)
	}

	// Blocking read loop, runs until the client disconnects
	conn.ReadLoop(onJoin, onDisconnect)
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	srv := NewServer(cfg)
	go srv.rateLimiter.cleanup(context.Background())

	log.Printf("server listening on %s (static dir %s, %d frames/sec)", cfg.Addr, cfg.StaticDir, cfg.FrameRate)
	if err := http.ListenAndServe(cfg.Addr, srv.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
