package config

import (
	_ "embed"
)

//go:embed defaults/slide.yaml
var defaultSlideYAML []byte

// Default returns the default puzzle configuration: the classic 4x3 board
// with 7-cell tiles, 1-cell spacing, and 200 animation ticks per second.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  4,
			Height: 3,
		},
		Tiles: TileConfig{
			Size:    7,
			Spacing: 1,
		},
		Timing: TimingConfig{
			TickRate: 200,
		},
	}
}

// DefaultYAML returns the embedded default configuration file, useful for
// writing a starter config for the user to edit.
func DefaultYAML() []byte {
	return defaultSlideYAML
}
