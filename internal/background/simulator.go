// Package background implements a decorative Game of Life layer that renders
// onto a host-provided drawing surface.
//
// A Simulator is driven entirely by its host: it receives per-frame ticks from
// a Scheduler, resize and visibility notifications from a Host, and paints
// through a Surface. None of its methods are safe for concurrent use; hosts
// call them from their single render goroutine.
package background

import (
	"fmt"
	"image/color"
	"time"

	"life-bg/pkg/core"
	"life-bg/pkg/sims/life"
)

// State is the lifecycle state of the stepping loop.
type State int

const (
	// Idle means no frame is pending.
	Idle State = iota
	// Scheduled means a frame callback is pending.
	Scheduled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scheduled:
		return "scheduled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Simulator is the toroidal Game of Life background.
type Simulator struct {
	cfg     Config
	ports   Ports
	stepper life.Stepper
	rng     *core.RNG

	surface  Surface
	grid     core.Grid
	throttle *core.Throttle
	visible  bool

	frame   FrameID
	state   State
	mounted bool

	removeResize     func()
	removeVisibility func()

	generation uint64
}

// New constructs a Simulator. The configuration is normalized and fixed for
// the lifetime of the value.
func New(cfg Config, ports Ports) *Simulator {
	cfg = cfg.Normalize()
	stepper, err := life.StepperFor(cfg.Engine)
	if err != nil {
		Logger().Warn("falling back to direct stepper", "engine", cfg.Engine, "err", err)
		cfg.Engine = life.EngineDirect
		stepper = life.Direct{}
	}
	return &Simulator{
		cfg:      cfg,
		ports:    ports,
		stepper:  stepper,
		rng:      core.NewRNG(cfg.Seed),
		throttle: core.NewThrottle(cfg.StepInterval),
		visible:  true,
	}
}

// Config returns the normalized configuration.
func (s *Simulator) Config() Config { return s.cfg }

// State reports whether a frame is pending.
func (s *Simulator) State() State { return s.state }

// Mounted reports whether Mount succeeded and Unmount has not run since.
func (s *Simulator) Mounted() bool { return s.mounted }

// Grid returns the current generation. Callers must not modify it.
func (s *Simulator) Grid() core.Grid { return s.grid }

// Generation counts generations stepped since the last resize.
func (s *Simulator) Generation() uint64 { return s.generation }

// Population counts live cells in the current generation.
func (s *Simulator) Population() int { return s.grid.Population() }

// Visible reports the last visibility signal received from the host.
func (s *Simulator) Visible() bool { return s.visible }

// Parameters returns the configuration and live statistics for display.
func (s *Simulator) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		s.cfg.Parameters(),
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("cols", "Columns", s.grid.Cols),
				core.IntParam("rows", "Rows", s.grid.Rows),
				core.IntParam("population", "Population", s.Population()),
				core.Int64Param("generation", "Generation", int64(s.generation)),
			},
		},
	}}
}

// Mount acquires the surface, seeds the grid for the current viewport,
// subscribes to host events and schedules the first frame. If the surface is
// unavailable Mount does nothing. A panic partway through releases whatever
// was already acquired before propagating.
func (s *Simulator) Mount() {
	if s.mounted {
		return
	}
	if s.ports.Scheduler == nil || s.ports.Host == nil {
		Logger().Debug("mount skipped: missing scheduler or host")
		return
	}
	surface, err := s.acquireSurface()
	if err != nil || surface == nil {
		Logger().Debug("mount skipped: surface unavailable", "err", err)
		return
	}

	s.surface = surface
	s.mounted = true
	ok := false
	defer func() {
		if !ok {
			s.Unmount()
		}
	}()

	s.visible = s.ports.Host.Visible()
	s.Resize(s.ports.Host.Viewport())
	s.removeResize = s.ports.Host.OnResize(s.Resize)
	s.removeVisibility = s.ports.Host.OnVisibilityChange(s.setVisible)
	s.schedule()
	ok = true

	Logger().Debug("mounted", "cols", s.grid.Cols, "rows", s.grid.Rows)
}

func (s *Simulator) acquireSurface() (surface Surface, err error) {
	if s.ports.Surface == nil {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			surface, err = nil, fmt.Errorf("acquire surface: %v", r)
		}
	}()
	return s.ports.Surface()
}

// Unmount cancels the pending frame and removes the host listeners. It is
// safe to call at any time, any number of times.
func (s *Simulator) Unmount() {
	if s.state == Scheduled {
		s.state = Idle
		if s.ports.Scheduler != nil {
			s.ports.Scheduler.Cancel(s.frame)
		}
		s.frame = 0
	}
	if s.removeResize != nil {
		s.removeResize()
		s.removeResize = nil
	}
	if s.removeVisibility != nil {
		s.removeVisibility()
		s.removeVisibility = nil
	}
	if s.mounted {
		Logger().Debug("unmounted", "generation", s.generation)
	}
	s.mounted = false
	s.surface = nil
	s.grid = core.Grid{}
}

// Resize discards the current grid and seeds a fresh random one sized for vp,
// then draws it. It is a no-op when the simulator is not mounted.
func (s *Simulator) Resize(vp Viewport) {
	if !s.mounted {
		return
	}
	if r, ok := s.surface.(Resizer); ok {
		r.SetSize(vp)
	}
	cols, rows := core.Dimensions(vp.Width, vp.Height, s.cfg.CellSize)
	s.grid = core.NewGrid(cols, rows)
	s.rng.FillDensity(s.grid, s.cfg.InitialDensity)
	s.generation = 0
	Logger().Debug("resized", "width", vp.Width, "height", vp.Height, "cols", cols, "rows", rows)
	s.Draw()
}

func (s *Simulator) setVisible(v bool) {
	s.visible = v
}

func (s *Simulator) schedule() {
	s.frame = s.ports.Scheduler.Schedule(s.tick)
	s.state = Scheduled
}

func (s *Simulator) tick(ts time.Duration) {
	s.state = Idle
	s.frame = 0
	if s.visible && s.throttle.Ready(ts) {
		s.Step()
	}
	// Unmount may have run from inside Step via a surface callback.
	if s.mounted {
		s.schedule()
	}
}

// Step advances one generation and redraws, ignoring the throttle and the
// visibility flag.
func (s *Simulator) Step() {
	if !s.mounted || s.grid.Empty() {
		return
	}
	s.grid = s.stepper.Next(s.grid)
	s.generation++
	s.Draw()
}

// Draw paints the current generation.
func (s *Simulator) Draw() {
	if !s.mounted || s.surface == nil {
		return
	}
	fg := ForegroundColor(s.ports.Theme)
	Paint(s.surface, s.grid, s.cfg.CellSize, withOpacity(fg, s.cfg.FillOpacity))
}

// Paint clears the area covered by g and fills a square for every live cell.
// Squares are inset by one pixel on each side so gaps show between cells;
// cells of two pixels or less are painted without inset.
func Paint(dst Surface, g core.Grid, cellSize float64, fill color.Color) {
	dst.ClearRect(0, 0, float64(g.Cols)*cellSize, float64(g.Rows)*cellSize)
	if g.Empty() {
		return
	}
	dst.SetFillColor(fill)
	inset, side := 1.0, cellSize-2
	if side <= 0 {
		inset, side = 0, cellSize
	}
	cells := g.Cells()
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if cells[y*g.Cols+x] {
				dst.FillRect(float64(x)*cellSize+inset, float64(y)*cellSize+inset, side, side)
			}
		}
	}
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(float64(c.A)*clamp01(opacity) + 0.5)
	return c
}
