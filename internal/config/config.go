// Package config provides YAML-based game configuration loading and
// difficulty management for the frogger platform.
package config

// FroggerConfig contains all configuration for the crossing game.
// Geometry is measured in canvas pixels; the renderer scales it to cells.
type FroggerConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Actor      ActorConfig      `yaml:"actor"`
	Lanes      LanesConfig      `yaml:"lanes"`
	Platforms  EntityConfig     `yaml:"platforms"`
	Obstacles  EntityConfig     `yaml:"obstacles"`
	Render     RenderConfig     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig is the size of the playing field.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ActorConfig defines the player sprite.
type ActorConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"` // Distance moved per key press on either axis
}

// LanesConfig lists the candidate lane rows.
type LanesConfig struct {
	Height float64   `yaml:"height"`
	Water  int       `yaml:"water"` // How many rows become water lanes per layout
	Rows   []float64 `yaml:"rows"`  // Top y of each candidate row
}

// EntityConfig defines size and speed range for platforms or obstacles.
// Speeds are magnitudes in pixels per tick, sampled from [MinSpeed, MaxSpeed).
type EntityConfig struct {
	Width    float64 `yaml:"width"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// RenderConfig controls how pixels map to terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // Pixels per terminal column
	CellHeight float64 `yaml:"cell_height"` // Pixels per terminal row
	AlertTicks int     `yaml:"alert_ticks"` // Ticks the board freezes after a fatal outcome
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Levels cleared at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string means "keep the config as loaded".
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
