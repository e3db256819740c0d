package config

import (
	"errors"
	"fmt"
)

// Validate checks the invariants the engine relies on.
// Every violation is reported; callers treat any error as fatal.
func Validate(cfg TetrisConfig) error {
	var errs []error

	if cfg.Board.Width <= 0 || cfg.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %dx%d", cfg.Board.Width, cfg.Board.Height))
	}

	t := cfg.Timing
	if t.MinFallInterval <= 0 {
		errs = append(errs, fmt.Errorf("min_fall_interval must be positive, got %s", t.MinFallInterval))
	}
	if t.InitialFallInterval < t.MinFallInterval {
		errs = append(errs, fmt.Errorf("initial_fall_interval %s is below min_fall_interval %s",
			t.InitialFallInterval, t.MinFallInterval))
	}
	if t.FallStep < 0 {
		errs = append(errs, fmt.Errorf("fall_step must not be negative, got %s", t.FallStep))
	}
	if t.LevelInterval <= 0 {
		errs = append(errs, fmt.Errorf("level_interval must be positive, got %d", t.LevelInterval))
	}

	c := cfg.Colors
	if c.Min < 0 || c.Max > 255 || c.Min > c.Max {
		errs = append(errs, fmt.Errorf("colors must satisfy 0 <= min <= max <= 255, got [%d, %d]", c.Min, c.Max))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
