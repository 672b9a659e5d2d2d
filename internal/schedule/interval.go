package schedule

import "time"

// Interval is the handle of a periodic callback registered with Loop.Every.
type Interval struct {
	loop *Loop
	fn   func()

	period time.Duration
	due    time.Time
	seq    uint64

	index   int
	stopped bool
}

// Stop cancels the interval. It reports whether this call stopped it.
func (iv *Interval) Stop() bool {
	return iv.loop.stop(iv)
}
