package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// logger reports config files that were found but skipped.
var logger = log.Default()

// SetLogger sets the logger used for config warnings. Nil is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it changes.
// The result is validated; an invalid configuration is returned with an error.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := loadTetris(customPath)
	if err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("tetris.yaml"), filepath.Join("configs", "tetris.yaml")} {
		if candidate, ok := readOptional(path); ok {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readOptional layers the file at path over the defaults. A missing file is
// skipped silently; an unreadable or malformed one is skipped with a warning.
func readOptional(path string) (TetrisConfig, bool) {
	cfg := DefaultTetrisConfig()
	if path == "" {
		return cfg, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("ignoring config file", "path", path, "error", err)
		}
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Warn("ignoring config file", "path", path, "error", err)
		return DefaultTetrisConfig(), false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// The minimum interval is lowered when a preset starts below it.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Timing.Leveling = false
		return
	}

	interval := InitialIntervalForPreset(preset)
	if interval <= 0 {
		return
	}
	cfg.Timing.Leveling = true
	cfg.Timing.InitialFallInterval = interval
	if cfg.Timing.MinFallInterval > interval {
		cfg.Timing.MinFallInterval = interval
	}
}
