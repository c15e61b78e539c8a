package clock

import "time"

// DefaultStep is the fixed simulation step.
const DefaultStep = time.Second / 60

// Stepper converts variable frame durations into a whole number of fixed
// simulation steps, carrying the remainder to the next frame.
type Stepper struct {
	step  time.Duration
	accum time.Duration
}

// NewStepper creates an accumulator for the given step. A non-positive step
// uses DefaultStep.
func NewStepper(step time.Duration) *Stepper {
	if step <= 0 {
		step = DefaultStep
	}
	return &Stepper{step: step}
}

// Step returns the fixed step size.
func (s *Stepper) Step() time.Duration {
	return s.step
}

// TicksPerSecond returns how many steps make one second.
func (s *Stepper) TicksPerSecond() int {
	return int(time.Second / s.step)
}

// Advance adds elapsed to the accumulator and calls fn once per full step.
// Slow frames produce several calls; simulated time is never skipped.
// It returns the number of steps run.
func (s *Stepper) Advance(elapsed time.Duration, fn func()) int {
	if elapsed > 0 {
		s.accum += elapsed
	}
	n := 0
	for s.accum >= s.step {
		fn()
		s.accum -= s.step
		n++
	}
	return n
}

// Pending returns the accumulated time not yet consumed.
func (s *Stepper) Pending() time.Duration {
	return s.accum
}

// Reset drops any accumulated time.
func (s *Stepper) Reset() {
	s.accum = 0
}
