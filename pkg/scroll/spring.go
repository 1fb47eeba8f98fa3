package scroll

import (
	"math"
	"time"
)

// maxSubstep bounds the integration step so large frame gaps stay stable.
const maxSubstep = time.Second / 120

// Spring smooths a target value with a damped spring. The progress bar uses
// it so the displayed fill trails the raw scroll fraction.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	// RestDelta and RestSpeed decide when the spring snaps to its target
	// and stops animating.
	RestDelta float64
	RestSpeed float64

	value    float64
	velocity float64
	target   float64
}

// NewProgressSpring returns the spring used by the progress indicator:
// stiffness 100, damping 30, rest delta 0.001. These constants are
// overdamped, so the value approaches its target without overshoot.
func NewProgressSpring() *Spring {
	return &Spring{
		Stiffness: 100,
		Damping:   30,
		Mass:      1,
		RestDelta: 0.001,
		RestSpeed: 0.01,
	}
}

// SetTarget moves the point the spring is pulled toward.
func (s *Spring) SetTarget(target float64) {
	s.target = target
}

// Target returns the current target.
func (s *Spring) Target() float64 {
	return s.target
}

// Value returns the current displayed value.
func (s *Spring) Value() float64 {
	return s.value
}

// AtRest reports whether the spring has settled on its target.
func (s *Spring) AtRest() bool {
	return s.value == s.target && s.velocity == 0
}

// Step advances the spring by dt and returns the new value and whether it
// has come to rest.
func (s *Spring) Step(dt time.Duration) (float64, bool) {
	if s.AtRest() {
		return s.value, true
	}

	mass := s.Mass
	if mass <= 0 {
		mass = 1
	}

	for remaining := dt; remaining > 0; remaining -= maxSubstep {
		h := min(remaining, maxSubstep).Seconds()
		accel := (-s.Stiffness*(s.value-s.target) - s.Damping*s.velocity) / mass
		s.velocity += accel * h
		s.value += s.velocity * h
	}

	if math.Abs(s.target-s.value) < s.RestDelta && math.Abs(s.velocity) < s.RestSpeed {
		s.value = s.target
		s.velocity = 0
		return s.value, true
	}
	return s.value, false
}
