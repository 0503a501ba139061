package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ValidationError reports a config field that cannot produce a playable board.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

// LoadFrogger loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/frogger.yaml -> ./configs/frogger.yaml -> embedded default
//
// Only an explicit customPath reports errors; unreadable or invalid files on the
// search path are skipped.
func LoadFrogger(customPath string) (FroggerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FroggerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FroggerConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("frogger.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/frogger.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultFroggerYAML)
	if err != nil {
		return DefaultFroggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (FroggerConfig, error) {
	cfg := DefaultFroggerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FroggerConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FroggerConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable board.
func (c FroggerConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return &ValidationError{"canvas", "width and height must be positive"}
	case c.Actor.Width <= 0 || c.Actor.Height <= 0 || c.Actor.Step <= 0:
		return &ValidationError{"actor", "width, height and step must be positive"}
	case c.Actor.Width > c.Canvas.Width || c.Actor.Height > c.Canvas.Height:
		return &ValidationError{"actor", "does not fit on the canvas"}
	case c.Lanes.Height <= 0:
		return &ValidationError{"lanes.height", "must be positive"}
	case c.Lanes.Water < 1:
		return &ValidationError{"lanes.water", "need at least one water lane"}
	case len(c.Lanes.Rows) < c.Lanes.Water:
		return &ValidationError{"lanes.rows", fmt.Sprintf("need at least %d rows, have %d", c.Lanes.Water, len(c.Lanes.Rows))}
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return &ValidationError{"render", "cell_width and cell_height must be positive"}
	case c.Render.AlertTicks < 0:
		return &ValidationError{"render.alert_ticks", "must not be negative"}
	}

	if err := validateEntity("platforms", c.Platforms, c.Canvas.Width); err != nil {
		return err
	}
	if err := validateEntity("obstacles", c.Obstacles, c.Canvas.Width); err != nil {
		return err
	}

	// The actor starts on the bottom row, which must stay clear of lanes.
	startY := c.Canvas.Height - c.Actor.Height
	rows := append([]float64(nil), c.Lanes.Rows...)
	sort.Float64s(rows)
	for i, y := range rows {
		if y < 0 || y+c.Lanes.Height > c.Canvas.Height {
			return &ValidationError{"lanes.rows", fmt.Sprintf("row %v is outside the canvas", y)}
		}
		if y+c.Lanes.Height > startY {
			return &ValidationError{"lanes.rows", fmt.Sprintf("row %v overlaps the start row at %v", y, startY)}
		}
		if i > 0 && rows[i-1] == y {
			return &ValidationError{"lanes.rows", fmt.Sprintf("row %v is listed twice", y)}
		}
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "level":
	default:
		return &ValidationError{"difficulty.progression.type", fmt.Sprintf("unknown type %q", c.Difficulty.Progression.Type)}
	}

	return nil
}

func validateEntity(field string, e EntityConfig, canvasW float64) error {
	switch {
	case e.Width <= 0 || e.Width >= canvasW:
		return &ValidationError{field + ".width", "must be positive and narrower than the canvas"}
	case e.MinSpeed < 0 || e.MinSpeed >= e.MaxSpeed:
		return &ValidationError{field, "need 0 <= min_speed < max_speed"}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyFroggerPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyFroggerPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
