package slappy

import "github.com/vovakirdan/slappy-bird/internal/core"

// Box returns the target's bounding box.
func (t Target) Box(size float64) core.Box {
	return core.NewBox(t.X, t.Y, size, size)
}

// spawnTarget creates a target at the right edge with a random height and symbol.
func (e *Engine) spawnTarget() Target {
	tc := e.cfg.Targets
	span := e.cfg.World.Height - tc.Size - tc.BottomMargin - tc.TopMargin
	return Target{
		X:      tc.SpawnX,
		Y:      tc.TopMargin + e.rng.Float64()*max(span, 0),
		Symbol: e.rng.Intn(len(tc.Symbols)),
	}
}

// advanceTargets scrolls targets left, drops the ones that left the field and
// occasionally spawns a new one. An empty field always gets a new target.
func (e *Engine) advanceTargets(targets []Target, speed float64) []Target {
	size := e.cfg.Targets.Size
	kept := make([]Target, 0, len(targets)+1)
	for _, t := range targets {
		t.X -= speed
		if t.X < -size {
			continue
		}
		kept = append(kept, t)
	}

	if e.rng.Float64() < e.cfg.Targets.SpawnChance || len(kept) == 0 {
		kept = append(kept, e.spawnTarget())
	}
	return kept
}

// reachBox returns the area in front of the avatar that slaps targets.
func (e *Engine) reachBox(body core.Box) core.Box {
	r := e.cfg.Reach
	// The reach starts Behind units inside the body's right edge.
	return body.Expand(r.Behind-body.Width(), r.Padding, r.Ahead, r.Padding)
}

// slapTargets marks every unhit target inside the reach as hit and returns
// how many were hit. Targets are modified in place.
func (e *Engine) slapTargets(body core.Box, targets []Target) int {
	reach := e.reachBox(body)
	hits := 0
	for i := range targets {
		if targets[i].Hit {
			continue
		}
		if reach.Intersects(targets[i].Box(e.cfg.Targets.Size)) {
			targets[i].Hit = true
			hits++
		}
	}
	return hits
}
