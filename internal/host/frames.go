// Package host provides in-process implementations of the ports a background
// Simulator consumes: a pumped frame scheduler and a window that broadcasts
// resize and visibility changes.
package host

import (
	"slices"
	"time"

	"life-bg/internal/background"
)

// Frames is a manual per-frame scheduler. A host loop calls Pump once per
// frame; callbacks scheduled while pumping run on the following Pump, the way
// animation-frame callbacks do.
type Frames struct {
	nextID  background.FrameID
	pending map[background.FrameID]func(time.Duration)
	pumped  uint64
}

// NewFrames returns an empty scheduler.
func NewFrames() *Frames {
	return &Frames{pending: map[background.FrameID]func(time.Duration){}}
}

// Schedule implements background.Scheduler.
func (f *Frames) Schedule(fn func(ts time.Duration)) background.FrameID {
	f.nextID++
	f.pending[f.nextID] = fn
	return f.nextID
}

// Cancel implements background.Scheduler. Unknown ids are ignored.
func (f *Frames) Cancel(id background.FrameID) {
	delete(f.pending, id)
}

// Pending reports how many callbacks await the next Pump.
func (f *Frames) Pending() int { return len(f.pending) }

// Pumps reports how many frames have been delivered.
func (f *Frames) Pumps() uint64 { return f.pumped }

// Pump runs every callback that was pending when Pump was called, in
// scheduling order, with timestamp ts. It returns the number of callbacks run.
func (f *Frames) Pump(ts time.Duration) int {
	f.pumped++
	if len(f.pending) == 0 {
		return 0
	}
	ids := make([]background.FrameID, 0, len(f.pending))
	for id := range f.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	ran := 0
	for _, id := range ids {
		fn, ok := f.pending[id]
		if !ok {
			// Cancelled by an earlier callback in this frame.
			continue
		}
		delete(f.pending, id)
		fn(ts)
		ran++
	}
	return ran
}
