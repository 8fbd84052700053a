package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTick(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	tm := NewWithClock(clock.now)

	clock.advance(16 * time.Millisecond)
	assert.InDelta(t, 0.016, tm.Tick(), 1e-6)
	assert.InDelta(t, 0.016, tm.Elapsed(), 1e-6)

	clock.advance(33 * time.Millisecond)
	assert.InDelta(t, 0.033, tm.Tick(), 1e-6)
	assert.Equal(t, 49*time.Millisecond, tm.Total())
}

func TestTickIsAlwaysPositive(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	tm := NewWithClock(clock.now)

	assert.Equal(t, float32(MinDelta.Seconds()), tm.Tick(), "no time passed")

	clock.advance(-time.Second)
	assert.Equal(t, float32(MinDelta.Seconds()), tm.Tick(), "clock went backwards")
}

func TestTickClampsStalls(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	tm := NewWithClock(clock.now)

	clock.advance(5 * time.Second)
	assert.Equal(t, float32(MaxDelta.Seconds()), tm.Tick())
}

func TestFPS(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	tm := NewWithClock(clock.now)

	for i := 0; i < 61; i++ {
		clock.advance(time.Second / 60)
		tm.Tick()
	}
	assert.InDelta(t, 60, tm.FPS(), 1)
}
