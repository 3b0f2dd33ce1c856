package loop

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCurve is returned when a difficulty curve is not monotonic.
var ErrInvalidCurve = errors.New("invalid difficulty curve")

// Tier scales a base value once the score reaches From.
type Tier struct {
	From       int
	Multiplier float64
}

// Curve maps cumulative score to spawn delay and drift speed.
// Both are step functions; a score equal to a tier's From belongs to that tier.
type Curve struct {
	BaseDelay  time.Duration
	BaseSpeed  float64
	DelayTiers []Tier // Ascending From, non-increasing multipliers in (0, 1]
	SpeedTiers []Tier // Ascending From, non-decreasing multipliers >= 1
}

// DefaultCurve returns the standard curve: a word every 2s drifting 2px per tick,
// both tightening as the score grows.
func DefaultCurve() Curve {
	return Curve{
		BaseDelay: 2000 * time.Millisecond,
		BaseSpeed: 2,
		DelayTiers: []Tier{
			{From: 1, Multiplier: 0.90},
			{From: 25, Multiplier: 0.85},
			{From: 50, Multiplier: 0.65},
			{From: 100, Multiplier: 0.50},
		},
		SpeedTiers: []Tier{
			{From: 5, Multiplier: 1.15},
			{From: 25, Multiplier: 1.25},
			{From: 50, Multiplier: 1.35},
		},
	}
}

// SpawnDelay returns the minimum time between spawns at the given score.
func (c Curve) SpawnDelay(score int) time.Duration {
	return time.Duration(float64(c.BaseDelay) * multiplierAt(c.DelayTiers, score))
}

// DriftSpeed returns the per-tick horizontal drift at the given score.
func (c Curve) DriftSpeed(score int) float64 {
	return c.BaseSpeed * multiplierAt(c.SpeedTiers, score)
}

// multiplierAt returns the multiplier of the last tier reached, or 1.
func multiplierAt(tiers []Tier, score int) float64 {
	m := 1.0
	for _, t := range tiers {
		if score < t.From {
			break
		}
		m = t.Multiplier
	}
	return m
}

// Validate checks that spawn delay never grows and drift speed never shrinks
// as the score increases.
func (c Curve) Validate() error {
	if c.BaseDelay <= 0 {
		return fmt.Errorf("%w: base delay %v must be positive", ErrInvalidCurve, c.BaseDelay)
	}
	if c.BaseSpeed <= 0 {
		return fmt.Errorf("%w: base speed %v must be positive", ErrInvalidCurve, c.BaseSpeed)
	}
	if err := validateTiers("delay", c.DelayTiers, func(prev, m float64) bool {
		return m > 0 && m <= prev
	}); err != nil {
		return err
	}
	return validateTiers("speed", c.SpeedTiers, func(prev, m float64) bool {
		return m >= prev
	})
}

func validateTiers(name string, tiers []Tier, ok func(prev, m float64) bool) error {
	prevFrom := 0
	prevMult := 1.0
	for i, t := range tiers {
		if t.From <= prevFrom {
			return fmt.Errorf("%w: %s tier %d starts at %d, must be above %d", ErrInvalidCurve, name, i, t.From, prevFrom)
		}
		if !ok(prevMult, t.Multiplier) {
			return fmt.Errorf("%w: %s tier %d multiplier %v breaks monotonicity after %v", ErrInvalidCurve, name, i, t.Multiplier, prevMult)
		}
		prevFrom = t.From
		prevMult = t.Multiplier
	}
	return nil
}
