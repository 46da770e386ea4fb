// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// Config contains all tuning for the Slappy Bird simulation.
// All distances are in world units: the play field is World.Width wide and
// World.Height tall, with Y growing downward.
type Config struct {
	World      World      `yaml:"world"`
	Physics    Physics    `yaml:"physics"`
	Avatar     Avatar     `yaml:"avatar"`
	Obstacles  Obstacles  `yaml:"obstacles"`
	Targets    Targets    `yaml:"targets"`
	Reach      Reach      `yaml:"reach"`
	Difficulty Difficulty `yaml:"difficulty"`
}

// World defines the play field dimensions.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the avatar's vertical motion.
type Physics struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"` // Negative = up
}

// Avatar defines the player's hitbox and starting position.
type Avatar struct {
	X      float64 `yaml:"x"`
	Size   float64 `yaml:"size"`
	StartY float64 `yaml:"start_y"`
}

// Obstacles defines pipe pair parameters.
type Obstacles struct {
	Width     float64        `yaml:"width"`
	Spacing   float64        `yaml:"spacing"`
	GapMargin float64        `yaml:"gap_margin"` // Minimum distance between a gap and the field edge
	Initial   []ObstacleSeed `yaml:"initial"`
}

// ObstacleSeed is a fixed obstacle used for the opening layout.
type ObstacleSeed struct {
	X        float64 `yaml:"x"`
	GapStart float64 `yaml:"gap_start"`
}

// Targets defines the tappable face parameters.
type Targets struct {
	Enabled      bool     `yaml:"enabled"`
	Size         float64  `yaml:"size"`
	SpawnX       float64  `yaml:"spawn_x"`
	SpawnChance  float64  `yaml:"spawn_chance"` // Per-tick probability
	TopMargin    float64  `yaml:"top_margin"`
	BottomMargin float64  `yaml:"bottom_margin"`
	Symbols      []string `yaml:"symbols"`
	FlashTicks   int      `yaml:"flash_ticks"` // Ticks the hit pose stays visible
}

// Reach defines the hit rectangle relative to the avatar's right edge.
// The offsets were tuned by feel; keep them unless redesigning slapping.
type Reach struct {
	Behind  float64 `yaml:"behind"`  // How far the reach starts inside the avatar
	Ahead   float64 `yaml:"ahead"`   // How far it extends past the avatar
	Padding float64 `yaml:"padding"` // Extra height above and below
}

// Difficulty defines the stepped progression from score.
type Difficulty struct {
	Enabled      bool    `yaml:"enabled"`
	Interval     int     `yaml:"interval"` // Points per difficulty level
	InitialSpeed float64 `yaml:"initial_speed"`
	SpeedStep    float64 `yaml:"speed_step"`
	MaxSpeed     float64 `yaml:"max_speed"`
	InitialGap   float64 `yaml:"initial_gap"`
	GapStep      float64 `yaml:"gap_step"`
	MinGap       float64 `yaml:"min_gap"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IntervalForPreset returns the points-per-level for a difficulty preset.
// Returns 0 for presets that do not change the interval.
func IntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 8
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
