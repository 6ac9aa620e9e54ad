package core

import "time"

// FixedStep is a fixed-timestep accumulator. Hosts feed it elapsed wall time
// and it runs the simulation step once per whole interval, carrying the
// remainder into the next call.
type FixedStep struct {
	interval time.Duration
	acc      time.Duration
}

// NewFixedStep creates an accumulator that steps every interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	return &FixedStep{interval: interval}
}

// Interval returns the current step interval.
func (f *FixedStep) Interval() time.Duration {
	return f.interval
}

// SetInterval changes the step interval. Time already accumulated is kept
// and is measured against the new interval on the next Advance.
func (f *FixedStep) SetInterval(d time.Duration) {
	f.interval = d
}

// Pending returns the accumulated time not yet consumed by a step.
func (f *FixedStep) Pending() time.Duration {
	return f.acc
}

// Reset drops any accumulated time.
func (f *FixedStep) Reset() {
	f.acc = 0
}

// Advance adds elapsed time and calls step floor(acc/interval) times.
// Returns the number of steps run. A non-positive interval never steps.
func (f *FixedStep) Advance(elapsed time.Duration, step func()) int {
	if f.interval <= 0 {
		return 0
	}
	if elapsed > 0 {
		f.acc += elapsed
	}

	steps := 0
	for f.acc >= f.interval {
		step()
		f.acc -= f.interval
		steps++
	}
	return steps
}

// Stopwatch measures wall time between successive laps. The first lap only
// starts it, so time spent before the host loop runs is never counted.
type Stopwatch struct {
	last    time.Time
	started bool
}

// Lap returns the time since the previous lap, or zero on the first one.
func (s *Stopwatch) Lap(now time.Time) time.Duration {
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}
	d := now.Sub(s.last)
	s.last = now
	return d
}
