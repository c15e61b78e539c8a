package clock

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestStopwatch(t *testing.T) {
	fc := &fakeClock{t: time.Unix(1000, 0)}
	sw := NewStopwatch(fc.now)

	if sw.Running() || sw.Elapsed() != 0 {
		t.Fatal("new stopwatch should be stopped at zero")
	}

	sw.Start()
	fc.advance(1500 * time.Millisecond)
	if got := sw.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 1.5s", got)
	}

	fc.advance(500 * time.Millisecond)
	if got := sw.Stop(); got != 2*time.Second {
		t.Errorf("Stop = %v, expected 2s", got)
	}

	fc.advance(time.Hour)
	if got := sw.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed after stop = %v, expected frozen 2s", got)
	}
	if got := sw.Stop(); got != 2*time.Second {
		t.Errorf("second Stop = %v, expected 2s", got)
	}

	sw.Reset()
	if sw.Elapsed() != 0 || sw.Running() {
		t.Error("Reset should zero and stop")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "00:00.00"},
		{1234 * time.Millisecond, "00:01.23"},
		{61*time.Second + 50*time.Millisecond, "01:01.05"},
		{10*time.Minute + 59*time.Second + 999*time.Millisecond, "10:59.99"},
		{-time.Second, "00:00.00"},
	}

	for _, tc := range tests {
		if got := Format(tc.d); got != tc.expected {
			t.Errorf("Format(%v) = %q, expected %q", tc.d, got, tc.expected)
		}
	}

	if got := FormatBest(0, false); got != "--:--.--" {
		t.Errorf("FormatBest unset = %q", got)
	}
	if got := FormatBest(time.Second, true); got != "00:01.00" {
		t.Errorf("FormatBest set = %q", got)
	}
}

func TestStepperRunsWholeSteps(t *testing.T) {
	s := NewStepper(10 * time.Millisecond)
	steps := 0
	inc := func() { steps++ }

	if n := s.Advance(25*time.Millisecond, inc); n != 2 {
		t.Errorf("Advance(25ms) = %d steps, expected 2", n)
	}
	if s.Pending() != 5*time.Millisecond {
		t.Errorf("Pending = %v, expected 5ms", s.Pending())
	}

	if n := s.Advance(5*time.Millisecond, inc); n != 1 {
		t.Errorf("carry-over should complete a step, got %d", n)
	}

	// A slow frame catches up instead of skipping simulated time
	if n := s.Advance(100*time.Millisecond, inc); n != 10 {
		t.Errorf("slow frame = %d steps, expected 10", n)
	}
	if steps != 13 {
		t.Errorf("total steps = %d, expected 13", steps)
	}

	s.Advance(-time.Second, inc)
	if steps != 13 {
		t.Error("negative elapsed must not run steps")
	}

	s.Advance(7*time.Millisecond, inc)
	s.Reset()
	if s.Pending() != 0 {
		t.Error("Reset should drop pending time")
	}
}

func TestDefaultStep(t *testing.T) {
	s := NewStepper(0)
	if s.Step() != DefaultStep {
		t.Errorf("Step = %v, expected %v", s.Step(), DefaultStep)
	}
	if s.TicksPerSecond() != 60 {
		t.Errorf("TicksPerSecond = %d, expected 60", s.TicksPerSecond())
	}
}
