package slappy

// Avatar is the player's bird. Its horizontal position is fixed by config.
type Avatar struct {
	Y        float64 // Top of the hitbox
	Velocity float64 // Positive = falling
}

// Obstacle is a pipe pair. The gap size is shared by all obstacles and lives
// on State, so only where the gap starts is stored here.
type Obstacle struct {
	X        float64 // Left edge
	GapStart float64 // Bottom of the upper pipe
}

// Target is a face that can be slapped for a point.
type Target struct {
	X, Y   float64 // Top-left corner
	Symbol int     // Index into the configured symbol palette
	Hit    bool    // Already scored; stays visible until it scrolls away
}

// Phase is the session's position in the play/game-over state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// State is a complete snapshot of one session. Engine methods take a State by
// value and return a new one; slices are never shared between the two.
type State struct {
	Avatar    Avatar
	Obstacles []Obstacle // Ordered by ascending X, constant length
	Targets   []Target   // Ordered by spawn time

	Score     int
	HighScore int
	Terminal  bool

	Speed   float64 // Current scroll speed, world units per tick
	GapSize float64 // Current gap between upper and lower pipe

	JustHit      bool // A target was slapped on the tick that produced this state
	HitFlash     int  // Ticks left to show the slap pose
	NewHighScore bool // HighScore was raised on the tick that produced this state

	Tick int // Steps since the session started
}

// Phase reports whether the session is still running.
func (s State) Phase() Phase {
	if s.Terminal {
		return PhaseGameOver
	}
	return PhasePlaying
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	s.Targets = append([]Target(nil), s.Targets...)
	return s
}
