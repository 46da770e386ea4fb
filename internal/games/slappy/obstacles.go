package slappy

import (
	"math"

	"github.com/vovakirdan/slappy-bird/internal/core"
)

// UpperBox returns the collision box for the top pipe.
func (o Obstacle) UpperBox(width float64) core.Box {
	return core.Box{Left: o.X, Top: 0, Right: o.X + width, Bottom: o.GapStart}
}

// LowerBox returns the collision box for the bottom pipe.
func (o Obstacle) LowerBox(width, gapSize, worldHeight float64) core.Box {
	return core.Box{Left: o.X, Top: o.GapStart + gapSize, Right: o.X + width, Bottom: worldHeight}
}

// RandomGapStart picks where a gap of the given size begins, keeping margin
// units of pipe above and below it. The result is a whole unit in
// [margin, worldHeight-gapSize-margin].
func RandomGapStart(rng Rand, gapSize, worldHeight, margin float64) float64 {
	lo := margin
	hi := worldHeight - gapSize - margin
	if hi <= lo {
		return lo
	}
	return math.Floor(rng.Float64()*(hi-lo) + lo)
}

// advanceObstacles scrolls every obstacle left and recycles the head once it
// has fully left the field. The queue length never changes.
func (e *Engine) advanceObstacles(obstacles []Obstacle, speed, gapSize float64) []Obstacle {
	moved := make([]Obstacle, len(obstacles), len(obstacles)+1)
	for i, o := range obstacles {
		o.X -= speed
		moved[i] = o
	}

	if len(moved) == 0 || moved[0].X >= -e.cfg.Obstacles.Width {
		return moved
	}

	tail := moved[len(moved)-1]
	moved = append(moved[1:], Obstacle{
		X:        tail.X + e.cfg.Obstacles.Spacing,
		GapStart: RandomGapStart(e.rng, gapSize, e.cfg.World.Height, e.cfg.Obstacles.GapMargin),
	})
	return moved
}

// hitsObstacle reports whether the avatar touches any pipe: it overlaps the
// pipe horizontally and is not entirely inside the gap.
func (e *Engine) hitsObstacle(body core.Box, obstacles []Obstacle, gapSize float64) bool {
	width := e.cfg.Obstacles.Width
	for _, o := range obstacles {
		upper := o.UpperBox(width)
		lower := o.LowerBox(width, gapSize, e.cfg.World.Height)
		if body.OverlapsX(upper) && (body.Top < upper.Bottom || body.Bottom > lower.Top) {
			return true
		}
	}
	return false
}

// passedObstacles counts obstacles whose left edge crossed the avatar's
// column during this tick.
func (e *Engine) passedObstacles(obstacles []Obstacle, speed float64) int {
	line := e.cfg.Avatar.X
	passed := 0
	for _, o := range obstacles {
		if o.X+speed > line && o.X <= line {
			passed++
		}
	}
	return passed
}
