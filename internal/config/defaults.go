package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			InitialFallInterval: 500 * time.Millisecond,
			MinFallInterval:     100 * time.Millisecond,
			FallStep:            50 * time.Millisecond,
			LevelInterval:       10,
			Leveling:            true,
		},
		Colors: ColorConfig{
			Min: 100,
			Max: 255,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
