// Package config loads roboshep settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"roboshep/game"
	"roboshep/game/types"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no --config flag is given.
const DefaultPath = "roboshep.yaml"

// Config holds all roboshep configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Content ContentConfig `yaml:"content"`
	Scores  ScoresConfig  `yaml:"scores"`
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// GameConfig configures the snake engine and its tick driver.
type GameConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	CellSize  int    `yaml:"cell_size"` // pixels, windowed host only
	Tick      string `yaml:"tick"`
	Seed      uint64 `yaml:"seed"` // 0 = seed from clock
	Autopilot bool   `yaml:"autopilot"`
}

// ContentConfig points at the portfolio content file.
type ContentConfig struct {
	Path  string `yaml:"path"` // empty = built-in content
	Watch bool   `yaml:"watch"`
}

// ScoresConfig configures finished-game persistence.
type ScoresConfig struct {
	DatabasePath string `yaml:"database_path"` // empty = keep scores in memory
	Top          int    `yaml:"top"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// UIConfig configures the terminal host.
type UIConfig struct {
	LoadingDelay string `yaml:"loading_delay"`
}

func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			Width:    types.GridWidth,
			Height:   types.GridHeight,
			CellSize: types.CellSize,
			Tick:     types.TickInterval.String(),
		},
		Scores: ScoresConfig{
			Top: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "roboshep.log",
		},
		UI: UIConfig{
			LoadingDelay: "600ms",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ROBOSHEP_TICK"); v != "" {
		c.Game.Tick = v
	}
	if v := os.Getenv("ROBOSHEP_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ROBOSHEP_DB"); v != "" {
		c.Scores.DatabasePath = v
	}
	if v := os.Getenv("ROBOSHEP_CONTENT"); v != "" {
		c.Content.Path = v
	}
}

// TickInterval returns the game tick period, falling back to 120ms.
func (c *Config) TickInterval() time.Duration {
	d, err := time.ParseDuration(c.Game.Tick)
	if err != nil || d <= 0 {
		return types.TickInterval
	}
	return d
}

func (c *Config) LoadingDelay() time.Duration {
	d, err := time.ParseDuration(c.UI.LoadingDelay)
	if err != nil || d < 0 {
		return 600 * time.Millisecond
	}
	return d
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	grid := types.Grid{Width: c.Game.Width, Height: c.Game.Height}
	layout := game.DefaultLayout()
	for _, p := range append(layout.Snake, layout.Food) {
		if !grid.Contains(p) {
			return fmt.Errorf("grid %dx%d does not fit the starting cell %v", grid.Width, grid.Height, p)
		}
	}

	d, err := time.ParseDuration(c.Game.Tick)
	if err != nil {
		return fmt.Errorf("invalid game tick %q: %w", c.Game.Tick, err)
	}
	if d <= 0 {
		return fmt.Errorf("game tick must be positive, got %s", d)
	}

	if c.Game.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.Game.CellSize)
	}
	if c.Scores.Top < 0 {
		return fmt.Errorf("scores top must not be negative, got %d", c.Scores.Top)
	}
	return nil
}
