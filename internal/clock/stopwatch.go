// Package clock holds the wall-clock pieces of a run: the completion
// stopwatch and the fixed-step accumulator that feeds the simulation.
package clock

import (
	"fmt"
	"time"
)

// Stopwatch measures the wall-clock duration of a run.
type Stopwatch struct {
	now     func() time.Time
	started time.Time
	elapsed time.Duration
	running bool
}

// NewStopwatch returns a stopped stopwatch. A nil now uses time.Now.
func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

// Start begins measuring from zero. Starting a running stopwatch restarts it.
func (s *Stopwatch) Start() {
	s.started = s.now()
	s.elapsed = 0
	s.running = true
}

// Stop freezes the stopwatch and returns the measured duration.
func (s *Stopwatch) Stop() time.Duration {
	if s.running {
		s.elapsed = s.now().Sub(s.started)
		s.running = false
	}
	return s.elapsed
}

// Reset stops the stopwatch and zeroes it.
func (s *Stopwatch) Reset() {
	s.running = false
	s.elapsed = 0
}

// Elapsed returns the running or frozen duration.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.now().Sub(s.started)
	}
	return s.elapsed
}

// Running reports whether the stopwatch is measuring.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Format renders d as MM:SS.cc (minutes, seconds, hundredths).
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := int64(d / (10 * time.Millisecond))
	minutes := cs / 6000
	seconds := (cs / 100) % 60
	hundredths := cs % 100
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, hundredths)
}

// FormatBest renders a stored best time, or a placeholder when unset.
func FormatBest(d time.Duration, ok bool) string {
	if !ok {
		return "--:--.--"
	}
	return Format(d)
}
