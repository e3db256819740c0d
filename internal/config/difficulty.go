package config

import "time"

// Progression computes level thresholds and the fall interval per level.
type Progression struct {
	timing TimingConfig
}

// NewProgression creates a progression from validated timing settings.
func NewProgression(timing TimingConfig) *Progression {
	return &Progression{timing: timing}
}

// IsEnabled returns whether levels advance with cleared lines.
func (p *Progression) IsEnabled() bool {
	return p.timing.Leveling
}

// FallInterval returns max(min, initial - (level-1)*step).
func (p *Progression) FallInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := p.timing.InitialFallInterval - time.Duration(level-1)*p.timing.FallStep
	return max(interval, p.timing.MinFallInterval)
}

// Threshold returns the total line count at which the given level ends.
func (p *Progression) Threshold(level int) int {
	return p.timing.LevelInterval * level
}

// LevelFor advances level while lines has reached its threshold.
// It returns the resulting level and how many levels were gained.
func (p *Progression) LevelFor(level, lines int) (newLevel, gained int) {
	if !p.IsEnabled() {
		return level, 0
	}
	for lines >= p.Threshold(level) {
		level++
		gained++
	}
	return level, gained
}
