// Package timer supplies the per-tick elapsed time for the main loop.
package timer

import "time"

const (
	// MinDelta keeps every tick strictly positive.
	MinDelta = time.Microsecond
	// MaxDelta caps a tick after a stall such as a window drag.
	MaxDelta = 250 * time.Millisecond
)

// Timer measures the time between ticks and tracks frames per second.
type Timer struct {
	now func() time.Time

	last       time.Time
	elapsed    float32
	total      time.Duration
	frames     int
	fps        int
	fpsStarted time.Time
}

// New creates a timer using the wall clock.
func New() *Timer {
	return NewWithClock(time.Now)
}

// NewWithClock creates a timer reading time from now.
func NewWithClock(now func() time.Time) *Timer {
	start := now()
	return &Timer{
		now:        now,
		last:       start,
		fpsStarted: start,
	}
}

// Tick returns the seconds since the previous Tick, clamped to [MinDelta, MaxDelta].
func (t *Timer) Tick() float32 {
	now := t.now()
	d := now.Sub(t.last)
	t.last = now

	if d < MinDelta {
		d = MinDelta
	}
	if d > MaxDelta {
		d = MaxDelta
	}
	t.elapsed = float32(d.Seconds())
	t.total += d

	t.frames++
	if window := now.Sub(t.fpsStarted); window >= time.Second {
		t.fps = int(float64(t.frames) / window.Seconds())
		t.frames = 0
		t.fpsStarted = now
	}

	return t.elapsed
}

// Elapsed returns the delta returned by the last Tick.
func (t *Timer) Elapsed() float32 {
	return t.elapsed
}

// Total returns the sum of all clamped deltas.
func (t *Timer) Total() time.Duration {
	return t.total
}

// FPS returns the frame rate measured over the last full second.
func (t *Timer) FPS() int {
	return t.fps
}
