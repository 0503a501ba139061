package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the built-in configuration.
// It mirrors defaults/frogger.yaml and is used when the embedded file cannot be parsed.
func DefaultFroggerConfig() FroggerConfig {
	rows := make([]float64, 0, 12)
	for y := 40.0; y <= 480; y += 40 {
		rows = append(rows, y)
	}

	return FroggerConfig{
		Canvas: CanvasConfig{
			Width:  460,
			Height: 600,
		},
		Actor: ActorConfig{
			Width:  40,
			Height: 40,
			Step:   40,
		},
		Lanes: LanesConfig{
			Height: 40,
			Water:  4,
			Rows:   rows,
		},
		Platforms: EntityConfig{
			Width:    80,
			MinSpeed: 2,
			MaxSpeed: 4,
		},
		Obstacles: EntityConfig{
			Width:    72,
			MinSpeed: 3,
			MaxSpeed: 5,
		},
		Render: RenderConfig{
			CellWidth:  10,
			CellHeight: 40,
			AlertTicks: 90,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFroggerYAML
}
