// Package slappy implements Slappy Bird: a Flappy Bird-style runner where the
// bird also scores by slapping faces that drift across the screen.
//
// The simulation is a deterministic step function over immutable State values.
// The Game type adapts it to the arcade platform (input frames, rendering).
package slappy

import (
	"math/rand"

	"github.com/vovakirdan/slappy-bird/internal/config"
	"github.com/vovakirdan/slappy-bird/internal/core"
)

// Rand is the random source used for obstacle gaps and targets.
// *rand.Rand satisfies it; tests inject seeded generators.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Command is an input applied between ticks.
type Command int

const (
	CommandJump Command = iota
	CommandRestart
)

// Engine advances Slappy Bird sessions. It holds tuning and the random
// source; all session data lives in State.
type Engine struct {
	cfg config.Config
	rng Rand
}

// NewEngine creates an engine with the given tuning and random source.
func NewEngine(cfg config.Config, rng Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Engine{cfg: cfg, rng: rng}
}

// NewSeededEngine creates an engine with a math/rand source for the seed.
func NewSeededEngine(cfg config.Config, seed int64) *Engine {
	return NewEngine(cfg, rand.New(rand.NewSource(seed)))
}

// Config returns the engine's tuning.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Difficulty returns the scroll speed and gap size for a score.
func (e *Engine) Difficulty(score int) (speed, gapSize float64) {
	return e.cfg.Difficulty.At(score)
}

// Reset returns a fresh session that keeps the given high score.
func (e *Engine) Reset(highScore int) State {
	speed, gap := e.Difficulty(0)

	obstacles := make([]Obstacle, len(e.cfg.Obstacles.Initial))
	for i, seed := range e.cfg.Obstacles.Initial {
		obstacles[i] = Obstacle{X: seed.X, GapStart: seed.GapStart}
	}

	var targets []Target
	if e.cfg.Targets.Enabled {
		targets = []Target{e.spawnTarget()}
	}

	return State{
		Avatar:    Avatar{Y: e.cfg.Avatar.StartY},
		Obstacles: obstacles,
		Targets:   targets,
		HighScore: highScore,
		Speed:     speed,
		GapSize:   gap,
	}
}

// ApplyJump flaps while playing and starts a new session after game over.
func (e *Engine) ApplyJump(s State) State {
	if s.Terminal {
		return e.Reset(s.HighScore)
	}
	next := s.Clone()
	next.Avatar.Velocity = e.cfg.Physics.JumpForce
	return next
}

// Restart starts a new session after game over. It does nothing mid-game.
func (e *Engine) Restart(s State) State {
	if s.Terminal {
		return e.Reset(s.HighScore)
	}
	return s
}

// Apply dispatches a command.
func (e *Engine) Apply(s State, cmd Command) State {
	switch cmd {
	case CommandJump:
		return e.ApplyJump(s)
	case CommandRestart:
		return e.Restart(s)
	default:
		return s
	}
}

// Step advances the session by one tick. A terminal state is returned as is.
func (e *Engine) Step(prev State) State {
	if prev.Terminal {
		return prev
	}

	next := prev.Clone()
	next.Tick++
	next.JustHit = false
	next.NewHighScore = false
	if next.HitFlash > 0 {
		next.HitFlash--
	}

	next.Avatar.Velocity += e.cfg.Physics.Gravity
	next.Avatar.Y += next.Avatar.Velocity

	speed, gap := e.Difficulty(prev.Score)
	next.Speed, next.GapSize = speed, gap

	next.Obstacles = e.advanceObstacles(next.Obstacles, speed, gap)
	if e.cfg.Targets.Enabled {
		next.Targets = e.advanceTargets(next.Targets, speed)
	}

	body := e.avatarBox(next.Avatar)
	crashed := e.hitsObstacle(body, next.Obstacles, gap)

	if hits := e.slapTargets(body, next.Targets); hits > 0 {
		next.Score += hits
		next.JustHit = true
		next.HitFlash = e.cfg.Targets.FlashTicks
	}

	if crashed || e.outOfBounds(next.Avatar) {
		next.Terminal = true
		if next.Score > next.HighScore {
			next.HighScore = next.Score
			next.NewHighScore = true
		}
		return next
	}

	next.Score += e.passedObstacles(next.Obstacles, speed)
	return next
}

// avatarBox returns the avatar's hitbox.
func (e *Engine) avatarBox(a Avatar) core.Box {
	return core.NewBox(e.cfg.Avatar.X, a.Y, e.cfg.Avatar.Size, e.cfg.Avatar.Size)
}

// outOfBounds reports whether the avatar left the field through the top or bottom.
func (e *Engine) outOfBounds(a Avatar) bool {
	return a.Y < 0 || a.Y > e.cfg.World.Height-e.cfg.Avatar.Size
}
