package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabufuda/solver/internal/game"
	"github.com/kabufuda/solver/internal/parse"
	"github.com/kabufuda/solver/internal/solver"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kabufuda.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(write(t, "difficulty: Easy\nlog_level: debug\ncolor: never\nreplay: true\n"))
	require.NoError(t, err)

	d, err := c.GameDifficulty()
	require.NoError(t, err)
	assert.Equal(t, game.Easy, d)

	level, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
	assert.Equal(t, ColorNever, c.Color)
	assert.True(t, c.Replay)
	assert.Equal(t, uint64(solver.DefaultProgressInterval), c.Progress())
	assert.Equal(t, uint64(solver.DefaultPartitions), c.Partitions)
}

func TestLoadProgressOff(t *testing.T) {
	c, err := Load(write(t, "progress_interval: 0\npartitions: 8\n"))
	require.NoError(t, err)
	require.NotNil(t, c.ProgressInterval)
	assert.Equal(t, uint64(0), c.Progress())
	assert.Equal(t, uint64(8), c.Partitions)

	c, err = Load(write(t, "progress_interval: 4096\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), c.Progress())
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate())
	d, err := c.GameDifficulty()
	require.NoError(t, err)
	assert.Equal(t, game.Expert, d)
	assert.Equal(t, ColorAuto, c.Color)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(write(t, "difficulty: [\n"))
	assert.Error(t, err)

	_, err = Load(write(t, "difficulty: nightmare\n"))
	assert.ErrorIs(t, err, parse.ErrUnknownDifficulty)

	_, err = Load(write(t, "color: sometimes\n"))
	assert.ErrorContains(t, err, "unknown color mode")
}
