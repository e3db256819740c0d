// Package config provides YAML-based game configuration loading,
// validation and speed progression for the tetris engine.
package config

import "time"

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Colors ColorConfig  `yaml:"colors"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines gravity speed and level progression.
type TimingConfig struct {
	InitialFallInterval time.Duration `yaml:"initial_fall_interval"` // Interval at level 1
	MinFallInterval     time.Duration `yaml:"min_fall_interval"`     // Floor for every level
	FallStep            time.Duration `yaml:"fall_step"`             // Reduction per level
	LevelInterval       int           `yaml:"level_interval"`        // Lines per level
	Leveling            bool          `yaml:"leveling"`              // false keeps level 1 forever
}

// ColorConfig bounds each RGB channel of randomly colored pieces.
type ColorConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialIntervalForPreset returns the level-1 fall interval for a preset.
// Zero means the preset keeps the configured interval.
func InitialIntervalForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 500 * time.Millisecond
	case DifficultyNormal:
		return 400 * time.Millisecond
	case DifficultyHard:
		return 250 * time.Millisecond
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ValidPreset reports whether s names a known preset. Empty is valid.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
