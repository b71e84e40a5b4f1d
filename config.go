package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Game configuration constants
const (
	// Server
	DefaultAddr      = ":8080"
	DefaultStaticDir = "./client"
	WebSocketPath    = "/ws"
	HealthPath       = "/healthz"

	DefaultMaxPlayers = 200
	WriteTimeout      = 5 * time.Second // a client that stops reading is dropped after this
	IPCooldownSec     = 2

	// Game loop
	// UpdateStep is one simulation tick (~60 updates per second).
	UpdateStep = 16600 * time.Microsecond
	// DefaultFrameRate is how often a session draws (sends state) per second.
	DefaultFrameRate = 60

	// Tick rate recorder
	TickSamples    = 50   // frames kept for the median
	LowTickRateFPS = 50.0 // median frame rate below this is reported once

	// Snake
	SnakeHalfWidth      = 5.0
	SnakeStartSpeed     = 1.0 // px per tick
	MaxSnakeSpeed       = 2.0
	SnakeStartLength    = 100 // lines kept at game start
	SnakeStartX         = 50.0
	SnakeStartY         = 50.0
	TurnStepDegrees     = 5.0 // per tick when steering toward a swipe heading
	MaxTurnDeltaDegrees = 90.0

	// Food
	FoodRadius      = 5.0
	FoodBonusLength = 20   // lines added to the cap per food eaten
	FoodSpeedBonus  = 0.05 // px per tick added per food eaten

	// Arena
	ArenaStride    = 8 * FoodRadius
	ArenaMargin    = 25.0
	DefaultArenaW  = 800.0
	DefaultArenaH  = 600.0
	MinArenaSize   = 100.0
	MaxArenaSize   = 4096.0
	ArenaWallReach = 60.0 // autopilot steers to the center this close to a wall
)

// Config holds the server settings that can be overridden from the environment.
type Config struct {
	Addr       string
	StaticDir  string
	MaxPlayers int
	FrameRate  int
}

// Environment variables read by LoadConfig.
const (
	envAddr       = "SNAKE2D_ADDR"
	envStaticDir  = "SNAKE2D_STATIC_DIR"
	envMaxPlayers = "SNAKE2D_MAX_PLAYERS"
	envFrameRate  = "SNAKE2D_FRAME_RATE"
)

// LoadConfig reads the given .env files (".env" when none are given) if they
// exist, then builds a Config from defaults and environment overrides.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		Addr:       DefaultAddr,
		StaticDir:  DefaultStaticDir,
		MaxPlayers: DefaultMaxPlayers,
		FrameRate:  DefaultFrameRate,
	}
	if v := os.Getenv(envAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(envStaticDir); v != "" {
		cfg.StaticDir = v
	}

	var err error
	if cfg.MaxPlayers, err = envInt(envMaxPlayers, cfg.MaxPlayers); err != nil {
		return Config{}, err
	}
	if cfg.FrameRate, err = envInt(envFrameRate, cfg.FrameRate); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FrameInterval is the ticker period of a session.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

func envInt(name string, fallback int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("parse %s: must be positive, got %d", name, n)
	}
	return n, nil
}
