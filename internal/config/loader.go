package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a configuration cannot drive a playable game.
var ErrInvalid = errors.New("config: invalid")

// Load loads the Slappy Bird configuration.
// Search order: customPath -> ~/.slappy/configs/slappy.yaml -> ./configs/slappy.yaml -> embedded default.
// Files only need to mention the keys they change; everything else keeps its default.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("slappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "slappy.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// Sequences replace rather than merge, so start them empty.
	cfg.Obstacles.Initial = nil
	cfg.Targets.Symbols = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	def := Default()
	if len(cfg.Obstacles.Initial) == 0 {
		cfg.Obstacles.Initial = def.Obstacles.Initial
	}
	if len(cfg.Targets.Symbols) == 0 {
		cfg.Targets.Symbols = def.Targets.Symbols
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slappy", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Interval = IntervalForPreset(preset)
	default:
		return fmt.Errorf("%w: unknown difficulty preset %q", ErrInvalid, preset)
	}
	return nil
}

// Validate checks that the tuning describes a playable field.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive")
	check(c.Avatar.Size > 0, "avatar size must be positive")
	check(c.Obstacles.Width > 0, "obstacle width must be positive")
	check(c.Obstacles.Spacing > 0, "obstacle spacing must be positive")
	check(len(c.Obstacles.Initial) > 0, "at least one initial obstacle is required")
	for i := 1; i < len(c.Obstacles.Initial); i++ {
		check(c.Obstacles.Initial[i].X > c.Obstacles.Initial[i-1].X,
			"initial obstacles must be ordered by x (index %d)", i)
	}

	d := c.Difficulty
	check(d.MinGap > 0 && d.MinGap <= d.InitialGap, "gap range [%v, %v] is empty", d.MinGap, d.InitialGap)
	check(d.InitialSpeed > 0 && d.InitialSpeed <= d.MaxSpeed, "speed range [%v, %v] is empty", d.InitialSpeed, d.MaxSpeed)
	check(d.SpeedStep >= 0 && d.GapStep >= 0, "difficulty steps must not be negative")
	check(!d.Enabled || d.Interval > 0, "difficulty interval must be positive")
	check(d.InitialGap+2*c.Obstacles.GapMargin <= c.World.Height,
		"gap %v with margin %v does not fit in height %v", d.InitialGap, c.Obstacles.GapMargin, c.World.Height)

	if c.Targets.Enabled {
		t := c.Targets
		check(t.Size > 0, "target size must be positive")
		check(t.SpawnChance >= 0 && t.SpawnChance <= 1, "target spawn chance %v is not a probability", t.SpawnChance)
		check(len(t.Symbols) > 0, "targets need at least one symbol")
		check(t.TopMargin+t.Size+t.BottomMargin <= c.World.Height, "targets do not fit in height %v", c.World.Height)
	}

	return errors.Join(errs...)
}
