package loop

import "time"

// Clock reports how much simulated time to advance per iteration.
type Clock interface {
	// Tick blocks until the next frame is due at the target rate and
	// returns the elapsed time in seconds.
	Tick(fps int) float64
}

// FixedClock returns exactly 1/fps without waiting. Used for headless,
// deterministic runs.
type FixedClock struct{}

// Tick implements Clock.
func (FixedClock) Tick(fps int) float64 {
	return frameDuration(fps).Seconds()
}

// FrameClock measures real elapsed time and sleeps out the remainder of
// each frame so the loop never runs faster than fps.
type FrameClock struct {
	now   func() time.Time
	sleep func(time.Duration)
	last  time.Time
}

// NewFrameClock returns a clock backed by the wall clock.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now, sleep: time.Sleep}
}

// Tick implements Clock. The first call returns one nominal frame.
func (c *FrameClock) Tick(fps int) float64 {
	frame := frameDuration(fps)
	if c.last.IsZero() {
		c.last = c.now()
		return frame.Seconds()
	}

	if elapsed := c.now().Sub(c.last); elapsed < frame {
		c.sleep(frame - elapsed)
	}
	now := c.now()
	dt := now.Sub(c.last)
	c.last = now
	return dt.Seconds()
}

func frameDuration(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
