package sky

import "time"

// Clock hands out per-tick deltas in milliseconds, clamped so a long gap
// (backgrounded window, debugger pause) advances the simulation by at most
// MaxDeltaMillis.
type Clock struct {
	now     func() time.Time
	last    time.Time
	started bool
}

// NewClock returns a clock reading now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// ClampDelta bounds a raw delta to [0, MaxDeltaMillis].
func ClampDelta(raw float64) float64 {
	if raw < 0 {
		return 0
	}
	if raw > MaxDeltaMillis {
		return MaxDeltaMillis
	}
	return raw
}

// Tick returns the clamped elapsed time since the previous tick. The first
// tick returns 0.
func (c *Clock) Tick() float64 {
	t := c.now()
	if !c.started {
		c.last = t
		c.started = true
		return 0
	}
	raw := float64(t.Sub(c.last)) / float64(time.Millisecond)
	c.last = t
	return ClampDelta(raw)
}

// Reset re-bases the clock so the next tick measures from now. Hosts call it
// when the window regains focus.
func (c *Clock) Reset() {
	c.last = c.now()
	c.started = true
}
