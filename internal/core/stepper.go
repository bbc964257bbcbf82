package core

import "time"

// Stepper converts a continuous wall-clock feed into discrete fixed-duration
// simulation ticks. The presentation layer calls Advance once per frame; the
// stepper decides whether that frame runs a simulation step. At most one step
// is emitted per frame no matter how much real time passed, so a stalled
// frame never triggers a catch-up burst.
type Stepper struct {
	step   time.Duration
	last   time.Time
	primed bool
}

// NewStepper creates a stepper with the given fixed step duration.
func NewStepper(step time.Duration) *Stepper {
	return &Stepper{step: step}
}

// Advance reports whether a simulation tick should run for the frame at now.
// The very first call only seeds the reference clock and never emits a tick;
// computing a delta against the zero time would produce one spurious huge
// step. After emitting a tick the reference resets to now, discarding any
// backlog beyond the one step.
func (s *Stepper) Advance(now time.Time) bool {
	if !s.primed {
		s.last = now
		s.primed = true
		return false
	}
	if now.Sub(s.last) < s.step {
		return false
	}
	s.last = now
	return true
}

// Step returns the configured step duration.
func (s *Stepper) Step() time.Duration {
	return s.step
}
