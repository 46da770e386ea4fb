package config

import "math"

// Level returns the difficulty level reached at the given score.
// Progression is stepped: one level per Interval points.
func (d Difficulty) Level(score int) int {
	if !d.Enabled || d.Interval <= 0 || score <= 0 {
		return 0
	}
	return score / d.Interval
}

// At returns the scroll speed and gap size for the given score.
// Speed grows by SpeedStep per level up to MaxSpeed; the gap shrinks by
// GapStep per level down to MinGap.
func (d Difficulty) At(score int) (speed, gapSize float64) {
	level := float64(d.Level(score))
	speed = math.Min(d.InitialSpeed+level*d.SpeedStep, d.MaxSpeed)
	gapSize = math.Max(d.InitialGap-level*d.GapStep, d.MinGap)
	return speed, gapSize
}
