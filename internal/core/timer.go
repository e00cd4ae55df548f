// Package core provides pacing and timing helpers for the drivers that
// animate a simulation.
package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// TickTimer aggregates per-tick durations for console reporting.
type TickTimer struct {
	count int
	total time.Duration
	min   time.Duration
	max   time.Duration
}

// Observe records the duration of one tick.
func (t *TickTimer) Observe(d time.Duration) {
	if t.count == 0 || d < t.min {
		t.min = d
	}
	if d > t.max {
		t.max = d
	}
	t.count++
	t.total += d
}

// Count returns the number of observed ticks.
func (t *TickTimer) Count() int { return t.count }

// Min returns the shortest observed tick duration.
func (t *TickTimer) Min() time.Duration { return t.min }

// Max returns the longest observed tick duration.
func (t *TickTimer) Max() time.Duration { return t.max }

// Avg returns the mean tick duration, or zero before any observation.
func (t *TickTimer) Avg() time.Duration {
	if t.count == 0 {
		return 0
	}
	return t.total / time.Duration(t.count)
}
