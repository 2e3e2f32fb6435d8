// Package config loads the solver configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kabufuda/solver/internal/game"
	"github.com/kabufuda/solver/internal/parse"
	"github.com/kabufuda/solver/internal/solver"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	Difficulty       string  `yaml:"difficulty"`
	LogLevel         string  `yaml:"log_level"`
	ProgressInterval *uint64 `yaml:"progress_interval"` // 0 disables progress logs
	Partitions       uint64  `yaml:"partitions"`
	Color            string  `yaml:"color"`
	Replay           bool    `yaml:"replay"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func (c *Config) ApplyDefaults() {
	if c.Difficulty == "" {
		c.Difficulty = game.Expert.String()
	}
	if c.LogLevel == "" {
		c.LogLevel = logrus.InfoLevel.String()
	}
	if c.ProgressInterval == nil {
		n := uint64(solver.DefaultProgressInterval)
		c.ProgressInterval = &n
	}
	if c.Partitions == 0 {
		c.Partitions = solver.DefaultPartitions
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
}

// Validate checks that all named values are known.
func (c *Config) Validate() error {
	if _, err := parse.Difficulty(c.Difficulty); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}

// Progress returns the number of pruned revisits between progress logs.
func (c *Config) Progress() uint64 {
	if c.ProgressInterval == nil {
		return solver.DefaultProgressInterval
	}
	return *c.ProgressInterval
}

// GameDifficulty returns the configured difficulty tier.
func (c *Config) GameDifficulty() (game.Difficulty, error) { return parse.Difficulty(c.Difficulty) }

// Level returns the configured log level.
func (c *Config) Level() (logrus.Level, error) { return logrus.ParseLevel(c.LogLevel) }

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	r.ApplyDefaults()
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &r, nil
}
