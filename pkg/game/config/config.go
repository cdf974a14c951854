// Package config loads the game's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"darkdelve/pkg/engine/logger"
	"darkdelve/pkg/game/generator"
)

// Board is the size of the playing field.
type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Generation tunes the level generator.
type Generation struct {
	Seed           int64 `yaml:"seed"`
	MinRoomSize    int   `yaml:"min_room_size"`
	MaxRooms       int   `yaml:"max_rooms"`
	MaxActors      int   `yaml:"max_actors"`
	HiddenDoorOdds int   `yaml:"hidden_door_odds"`
}

// Locale selects the gettext catalog used for player-facing text.
type Locale struct {
	Dir      string `yaml:"dir"`
	Language string `yaml:"language"`
}

// Config is the whole configuration file.
type Config struct {
	Board      Board         `yaml:"board"`
	Generation Generation    `yaml:"generation"`
	Logging    logger.Config `yaml:"logging"`
	Locale     Locale        `yaml:"locale"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	p := generator.DefaultParams()
	return Config{
		Board: Board{Width: p.Width, Height: p.Height},
		Generation: Generation{
			MinRoomSize:    p.MinRoomSize,
			MaxRooms:       p.MaxRooms,
			MaxActors:      p.MaxActors,
			HiddenDoorOdds: p.HiddenDoorOdds,
		},
		Logging: logger.DefaultConfig(),
		Locale:  Locale{Dir: "locales", Language: "en_US"},
	}
}

// LoadConfig reads path on top of the defaults and applies environment
// overrides. A missing file is not an error; an unparsable one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if seed := os.Getenv("DARKDELVE_SEED"); seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("DARKDELVE_SEED: %w", err)
		}
		c.Generation.Seed = n
	}
	c.Logging.ApplyEnv()
	return nil
}

// Validate rejects boards the generator cannot partition. Rooms need at
// least one interior cell inside their walls to hold actors and the exit.
func (c Config) Validate() error {
	if c.Generation.MinRoomSize < 3 {
		return fmt.Errorf("generation.min_room_size must be at least 3, got %d", c.Generation.MinRoomSize)
	}
	if c.Board.Width/2 < 2*c.Generation.MinRoomSize || c.Board.Height < 2*c.Generation.MinRoomSize {
		return fmt.Errorf("board %dx%d too small for min_room_size %d", c.Board.Width, c.Board.Height, c.Generation.MinRoomSize)
	}
	if c.Generation.MaxRooms < 2 {
		return fmt.Errorf("generation.max_rooms must be at least 2, got %d", c.Generation.MaxRooms)
	}
	if c.Generation.MaxActors < 1 {
		return fmt.Errorf("generation.max_actors must be at least 1, got %d", c.Generation.MaxActors)
	}
	if c.Generation.HiddenDoorOdds < 0 {
		return fmt.Errorf("generation.hidden_door_odds must not be negative, got %d", c.Generation.HiddenDoorOdds)
	}
	return nil
}

// GeneratorParams converts the board and generation sections.
func (c Config) GeneratorParams() generator.Params {
	return generator.Params{
		Width:          c.Board.Width,
		Height:         c.Board.Height,
		MinRoomSize:    c.Generation.MinRoomSize,
		MaxRooms:       c.Generation.MaxRooms,
		MaxActors:      c.Generation.MaxActors,
		HiddenDoorOdds: c.Generation.HiddenDoorOdds,
	}
}
