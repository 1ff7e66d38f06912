package core

import "time"

// Throttle paces simulation steps against timestamps delivered by a host
// frame loop. It never catches up: a late tick advances at most once.
type Throttle struct {
	interval time.Duration
	last     time.Duration
}

// NewThrottle constructs a Throttle that allows one step per interval.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Throttle{interval: interval}
}

// Interval returns the minimum spacing between steps.
func (t *Throttle) Interval() time.Duration { return t.interval }

// Last returns the timestamp of the most recent accepted step.
func (t *Throttle) Last() time.Duration { return t.last }

// Ready reports whether a step is due at now and, if so, records now as the
// last step time.
func (t *Throttle) Ready(now time.Duration) bool {
	if now-t.last < t.interval {
		return false
	}
	t.last = now
	return true
}

// Reset rewinds the clock to zero.
func (t *Throttle) Reset() { t.last = 0 }
