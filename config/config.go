// Package config loads the game configuration from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"snek/game"
	"snek/game/types"
	"snek/gameloop"
)

const DefaultPath = "snek.yaml"

// Frontends
const (
	FrontendRaylib   = "raylib"
	FrontendTerm     = "term"
	FrontendHeadless = "headless"
)

// Config holds the structure of the configuration file
type Config struct {
	Board     types.Grid   `yaml:"board"`
	Snake     SnakeConfig  `yaml:"snake"`
	Loop      LoopConfig   `yaml:"loop"`
	Window    WindowConfig `yaml:"window"`
	Frontend  string       `yaml:"frontend"`
	Autopilot bool         `yaml:"autopilot"`
	// Seed for the food placement RNG; 0 picks one from the clock.
	Seed uint64    `yaml:"seed"`
	Log  LogConfig `yaml:"log"`
}

type SnakeConfig struct {
	InitialLength  int    `yaml:"initial_length"`
	InitialHeading string `yaml:"initial_heading"`
}

type LoopConfig struct {
	TicksPerSecond float64 `yaml:"ticks_per_second"`
	MaxFrameTime   float64 `yaml:"max_frame_time"`
	InputQueueSize int     `yaml:"input_queue_size"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

type LogConfig struct {
	// File is rotated by lumberjack; empty logs to stderr.
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	settings := game.DefaultSettings()
	return &Config{
		Board: settings.Grid,
		Snake: SnakeConfig{
			InitialLength:  settings.InitialLength,
			InitialHeading: settings.InitialHeading.String(),
		},
		Loop: LoopConfig{
			TicksPerSecond: gameloop.DefaultTicksPerSecond,
			MaxFrameTime:   gameloop.DefaultMaxFrameTime,
			InputQueueSize: settings.InputQueueSize,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			FPS:    60,
		},
		Frontend: FrontendRaylib,
		Log: LogConfig{
			File:  "snek.log",
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "writing config %s", path)
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var err error
	if _, e := c.GameSettings(); e != nil {
		err = multierr.Append(err, e)
	}
	if c.Loop.TicksPerSecond <= 0 {
		err = multierr.Append(err, fmt.Errorf("loop.ticks_per_second must be positive, got %v", c.Loop.TicksPerSecond))
	}
	if c.Loop.MaxFrameTime <= 0 {
		err = multierr.Append(err, fmt.Errorf("loop.max_frame_time must be positive, got %v", c.Loop.MaxFrameTime))
	}
	switch c.Frontend {
	case FrontendRaylib:
		if c.Window.Width <= 0 || c.Window.Height <= 0 {
			err = multierr.Append(err, fmt.Errorf("window must be positive, got %dx%d", c.Window.Width, c.Window.Height))
		}
	case FrontendTerm, FrontendHeadless:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown frontend %q", c.Frontend))
	}
	return err
}

// GameSettings converts the file layout into simulation settings.
func (c *Config) GameSettings() (game.Settings, error) {
	heading, err := types.ParseDirection(c.Snake.InitialHeading)
	if err != nil {
		return game.Settings{}, errors.Wrap(err, "snake.initial_heading")
	}
	settings := game.Settings{
		Grid:           c.Board,
		InitialLength:  c.Snake.InitialLength,
		InitialHeading: heading,
		InputQueueSize: c.Loop.InputQueueSize,
	}
	return settings, settings.Validate()
}

func (c *Config) LoopOptions() gameloop.Options {
	return gameloop.Options{
		TicksPerSecond: c.Loop.TicksPerSecond,
		MaxFrameTime:   c.Loop.MaxFrameTime,
	}
}
