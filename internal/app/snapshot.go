package app

import (
	"fmt"
	"time"

	"life-bg/internal/background"
	"life-bg/internal/host"
	"life-bg/internal/render"
	"life-bg/internal/ui"
)

// Snapshot is the result of a headless run.
type Snapshot struct {
	Surface    *render.GG
	Generation uint64
	Population int
	Parameters []string
}

// RenderSnapshot mounts a simulator on a gogpu/gg surface, pumps frames
// simulated frames spaced by cfg.FrameInterval, and returns the final image.
// The caller owns the returned surface and must Close it.
func RenderSnapshot(cfg Config, frames int) (*Snapshot, error) {
	if frames < 0 {
		return nil, fmt.Errorf("frames must be non-negative, got %d", frames)
	}
	vp := cfg.Viewport(1)
	surface := render.NewGG(vp)
	window := host.NewWindow(vp)
	sched := host.NewFrames()
	sim := background.New(cfg.Background, background.Ports{
		Surface:   func() (background.Surface, error) { return surface, nil },
		Scheduler: sched,
		Host:      window,
		Theme:     cfg.ThemeFunc(),
	})
	sim.Mount()
	if !sim.Mounted() {
		surface.Close()
		return nil, fmt.Errorf("simulator did not mount")
	}

	interval := cfg.FrameInterval
	if interval <= 0 {
		interval = time.Second / 60
	}
	for i := 1; i <= frames; i++ {
		sched.Pump(time.Duration(i) * interval)
	}
	snap := &Snapshot{
		Surface:    surface,
		Generation: sim.Generation(),
		Population: sim.Population(),
		Parameters: ui.Lines(sim.Parameters()),
	}
	sim.Unmount()
	if err := surface.Err(); err != nil {
		surface.Close()
		return nil, fmt.Errorf("render snapshot: %w", err)
	}
	return snap, nil
}
