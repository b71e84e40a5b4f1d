package main

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultStaticDir, cfg.StaticDir)
	assert.Equal(t, DefaultMaxPlayers, cfg.MaxPlayers)
	assert.Equal(t, DefaultFrameRate, cfg.FrameRate)
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv(envAddr, ":9000")
	t.Setenv(envStaticDir, "/srv/snake")
	t.Setenv(envMaxPlayers, "12")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/srv/snake", cfg.StaticDir)
	assert.Equal(t, 12, cfg.MaxPlayers)
}

func TestLoadConfigEnvFile(t *testing.T) {
	// registers the restore, then leaves the variable unset for godotenv
	t.Setenv(envFrameRate, "")
	require.NoError(t, os.Unsetenv(envFrameRate))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(envFrameRate+"=30\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, time.Second/30, cfg.FrameInterval())
}

func TestLoadConfigInvalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Setenv(envMaxPlayers, "lots")
	_, err := LoadConfig(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), envMaxPlayers)
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)

	t.Setenv(envMaxPlayers, "")
	t.Setenv(envFrameRate, "0")
	_, err = LoadConfig(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), envFrameRate)
}
