// Package config provides YAML-based configuration loading for the slide
// puzzle: board dimensions, tile metrics, and timing.
package config

import "fmt"

// Config contains all startup configuration for the puzzle.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Tiles  TileConfig   `yaml:"tiles"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the board dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TileConfig defines tile rendering metrics. Size is the tile width in
// terminal cells; Spacing is the gap between adjacent tiles.
type TileConfig struct {
	Size    int `yaml:"size"`
	Spacing int `yaml:"spacing"`
}

// TimingConfig defines the simulation timing.
type TimingConfig struct {
	// TickRate is the number of animation ticks per second.
	TickRate int `yaml:"tick_rate"`
}

// Validate checks the configuration for values the puzzle core or renderer
// cannot work with.
func (c Config) Validate() error {
	if c.Board.Width < 1 || c.Board.Height < 1 {
		return fmt.Errorf("config: board dimensions must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Board.Width*c.Board.Height < 2 {
		return fmt.Errorf("config: board %dx%d has no room for both a tile and the empty cell", c.Board.Width, c.Board.Height)
	}
	if c.Tiles.Size < 3 {
		return fmt.Errorf("config: tile size must be at least 3, got %d", c.Tiles.Size)
	}
	if c.Tiles.Spacing < 0 {
		return fmt.Errorf("config: tile spacing must not be negative, got %d", c.Tiles.Spacing)
	}
	if c.Timing.TickRate < 1 {
		return fmt.Errorf("config: tick rate must be positive, got %d", c.Timing.TickRate)
	}
	return nil
}
