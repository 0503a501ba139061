package config

import "math"

// DifficultyManager derives speed scaling from the current level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// Level returns the difficulty (0.0 to 1.0) for a game level, where level 1 is the first board.
// Disabled managers report 0 so speeds stay at their configured ranges.
func (d *DifficultyManager) Level(gameLevel int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(gameLevel-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedFactor returns the multiplier applied to sampled entity speeds.
func (d *DifficultyManager) SpeedFactor(gameLevel int) float64 {
	return 1.0 + d.Level(gameLevel)*d.cfg.Scaling.SpeedMultiplier
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
