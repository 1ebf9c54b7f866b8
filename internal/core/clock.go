package core

import "time"

// Clock is the frame time source. Tick blocks until the next frame boundary
// (if the implementation paces at all) and returns the milliseconds elapsed
// since the previous tick.
type Clock interface {
	Tick() float64
}

// FixedClock reports the nominal frame duration on every tick without
// blocking. Headless runs and tests use it for frame-exact results.
type FixedClock struct {
	frameMs float64
}

// NewFixedClock creates a clock for the given tick rate.
func NewFixedClock(tickRate int) *FixedClock {
	return &FixedClock{frameMs: 1000.0 / float64(tickRate)}
}

// Tick returns the nominal frame duration.
func (c *FixedClock) Tick() float64 {
	return c.frameMs
}

// WallClock paces to a target rate and measures real elapsed time.
// A slow frame is reported as a longer delta; no catch-up ticks are issued.
type WallClock struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewWallClock creates a clock targeting tickRate frames per second.
func NewWallClock(tickRate int) *WallClock {
	return &WallClock{
		interval: time.Second / time.Duration(tickRate),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Interval returns the target frame duration.
func (c *WallClock) Interval() time.Duration {
	return c.interval
}

// Tick sleeps until the next frame boundary and returns the elapsed
// milliseconds since the previous tick.
func (c *WallClock) Tick() float64 {
	if !c.last.IsZero() {
		if wait := c.interval - c.now().Sub(c.last); wait > 0 {
			c.sleep(wait)
		}
	}
	return c.Observe(c.now())
}

// Observe records a frame boundary that was paced elsewhere (for example by
// a UI timer) and returns the milliseconds since the previous boundary.
// The first observation reports the nominal interval.
func (c *WallClock) Observe(t time.Time) float64 {
	var dt time.Duration
	if c.last.IsZero() {
		dt = c.interval
	} else {
		dt = t.Sub(c.last)
	}
	if dt < 0 {
		dt = 0
	}
	c.last = t
	return float64(dt) / float64(time.Millisecond)
}

// Reset forgets the previous boundary so the next tick reports the
// nominal interval again (used after a pause or restart).
func (c *WallClock) Reset() {
	c.last = time.Time{}
}
