package config

import (
	_ "embed"
)

//go:embed defaults/slappy.yaml
var defaultYAML []byte

// Default returns the default Slappy Bird configuration.
// It mirrors defaults/slappy.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		World: World{
			Width:  1000,
			Height: 500,
		},
		Physics: Physics{
			Gravity:   0.8,
			JumpForce: -10,
		},
		Avatar: Avatar{
			X:      50,
			Size:   30,
			StartY: 250,
		},
		Obstacles: Obstacles{
			Width:     60,
			Spacing:   300,
			GapMargin: 50,
			Initial: []ObstacleSeed{
				{X: 400, GapStart: 200},
				{X: 700, GapStart: 250},
				{X: 1000, GapStart: 150},
			},
		},
		Targets: Targets{
			Enabled:      true,
			Size:         40,
			SpawnX:       1000,
			SpawnChance:  0.01,
			TopMargin:    50,
			BottomMargin: 100,
			Symbols:      []string{"😮", "😯", "😲", "😱", "😨", "🤯", "😵"},
			FlashTicks:   30,
		},
		Reach: Reach{
			Behind:  10,
			Ahead:   20,
			Padding: 5,
		},
		Difficulty: Difficulty{
			Enabled:      true,
			Interval:     5,
			InitialSpeed: 5,
			SpeedStep:    0.5,
			MaxSpeed:     8,
			InitialGap:   150,
			GapStep:      5,
			MinGap:       100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
