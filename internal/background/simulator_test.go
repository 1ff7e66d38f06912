package background_test

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"life-bg/internal/background"
	"life-bg/internal/host"
	"life-bg/pkg/sims/life"
)

type rect struct{ x, y, w, h float64 }

type recorder struct {
	clears  []rect
	fills   []rect
	color   color.Color
	sizes   []background.Viewport
	onClear func()
}

func (r *recorder) ClearRect(x, y, w, h float64) {
	r.clears = append(r.clears, rect{x, y, w, h})
	r.fills = r.fills[:0]
	if r.onClear != nil {
		r.onClear()
	}
}

func (r *recorder) SetFillColor(c color.Color) { r.color = c }

func (r *recorder) FillRect(x, y, w, h float64) {
	r.fills = append(r.fills, rect{x, y, w, h})
}

func (r *recorder) SetSize(vp background.Viewport) { r.sizes = append(r.sizes, vp) }

type fixture struct {
	sim    *background.Simulator
	frames *host.Frames
	window *host.Window
	rec    *recorder
}

func newFixture(cfg background.Config, vp background.Viewport) *fixture {
	f := &fixture{
		frames: host.NewFrames(),
		window: host.NewWindow(vp),
		rec:    &recorder{},
	}
	f.sim = background.New(cfg, background.Ports{
		Surface:   func() (background.Surface, error) { return f.rec, nil },
		Scheduler: f.frames,
		Host:      f.window,
	})
	return f
}

func testConfig() background.Config {
	cfg := background.DefaultConfig()
	cfg.Seed = 11
	return cfg
}

func TestMountSizesGridAndDraws(t *testing.T) {
	cfg := testConfig()
	cfg.InitialDensity = 1
	f := newFixture(cfg, background.Viewport{Width: 120, Height: 61, Scale: 2})
	f.sim.Mount()

	g := f.sim.Grid()
	if g.Cols != 10 || g.Rows != 6 {
		t.Fatalf("grid = %dx%d, want 10x6", g.Cols, g.Rows)
	}
	if f.sim.State() != background.Scheduled || f.frames.Pending() != 1 {
		t.Fatalf("state = %v pending = %d", f.sim.State(), f.frames.Pending())
	}
	if r, v := f.window.Listeners(); r != 1 || v != 1 {
		t.Fatalf("listeners = %d/%d, want 1/1", r, v)
	}
	if len(f.rec.sizes) != 1 || f.rec.sizes[0].Scale != 2 {
		t.Fatalf("surface sizes = %v", f.rec.sizes)
	}
	if len(f.rec.clears) != 1 || f.rec.clears[0] != (rect{0, 0, 120, 72}) {
		t.Fatalf("clears = %v", f.rec.clears)
	}
	if len(f.rec.fills) != 60 {
		t.Fatalf("fills = %d, want 60", len(f.rec.fills))
	}
	if f.rec.fills[0] != (rect{1, 1, 10, 10}) {
		t.Fatalf("first fill = %v", f.rec.fills[0])
	}
}

func TestMountWithoutSurfaceIsSilent(t *testing.T) {
	for name, acquire := range map[string]background.SurfaceFunc{
		"nil func":    nil,
		"nil surface": func() (background.Surface, error) { return nil, nil },
		"error":       func() (background.Surface, error) { return nil, errors.New("no 2d context") },
		"panic":       func() (background.Surface, error) { panic("boom") },
	} {
		t.Run(name, func(t *testing.T) {
			frames := host.NewFrames()
			window := host.NewWindow(background.Viewport{Width: 100, Height: 100})
			sim := background.New(testConfig(), background.Ports{Surface: acquire, Scheduler: frames, Host: window})
			sim.Mount()
			if sim.Mounted() || sim.State() != background.Idle {
				t.Fatal("simulator should stay idle")
			}
			if frames.Pending() != 0 {
				t.Fatal("nothing should be scheduled")
			}
			if r, v := window.Listeners(); r != 0 || v != 0 {
				t.Fatal("no listeners should be registered")
			}
			sim.Unmount()
		})
	}
}

func TestThrottleLimitsGenerations(t *testing.T) {
	f := newFixture(testConfig(), background.Viewport{Width: 240, Height: 240})
	f.sim.Mount()

	// 60 ticks at 16ms cover 944ms; one generation per 120ms window.
	for i := 0; i < 60; i++ {
		f.frames.Pump(time.Duration(i) * 16 * time.Millisecond)
	}
	if got := f.sim.Generation(); got != 7 {
		t.Fatalf("generations = %d, want 7", got)
	}
	if f.frames.Pending() != 1 {
		t.Fatalf("pending = %d, loop must keep exactly one frame scheduled", f.frames.Pending())
	}
}

func TestSlowTicksAdvanceOncePerTick(t *testing.T) {
	f := newFixture(testConfig(), background.Viewport{Width: 240, Height: 240})
	f.sim.Mount()
	for i := 1; i <= 5; i++ {
		f.frames.Pump(time.Duration(i) * 500 * time.Millisecond)
		if got := f.sim.Generation(); got != uint64(i) {
			t.Fatalf("after tick %d generations = %d", i, got)
		}
	}
}

func TestTickAppliesLifeRule(t *testing.T) {
	f := newFixture(testConfig(), background.Viewport{Width: 120, Height: 96})
	f.sim.Mount()
	before := f.sim.Grid().Clone()
	f.frames.Pump(time.Second)
	if !f.sim.Grid().Equal(life.Next(before)) {
		t.Fatal("tick must replace the grid with its next generation")
	}
}

func TestHiddenPageDoesNotStep(t *testing.T) {
	f := newFixture(testConfig(), background.Viewport{Width: 120, Height: 120})
	f.sim.Mount()
	f.window.SetVisible(false)
	before := f.sim.Grid().Clone()
	draws := len(f.rec.clears)
	for i := 1; i <= 10; i++ {
		f.frames.Pump(time.Duration(i) * time.Second)
	}
	if f.sim.Generation() != 0 || !f.sim.Grid().Equal(before) {
		t.Fatal("hidden simulator advanced")
	}
	if len(f.rec.clears) != draws {
		t.Fatal("hidden simulator drew")
	}
	if f.sim.State() != background.Scheduled {
		t.Fatal("loop must stay scheduled while hidden")
	}
	f.window.SetVisible(true)
	f.frames.Pump(20 * time.Second)
	if f.sim.Generation() != 1 {
		t.Fatalf("generations after becoming visible = %d", f.sim.Generation())
	}
}

func TestResizeResetsGrid(t *testing.T) {
	f := newFixture(testConfig(), background.Viewport{Width: 120, Height: 120})
	f.sim.Mount()
	f.frames.Pump(time.Second)
	if f.sim.Generation() != 1 {
		t.Fatal("expected one generation before resize")
	}

	f.window.SetViewport(background.Viewport{Width: 300, Height: 25})
	g := f.sim.Grid()
	if g.Cols != 25 || g.Rows != 3 {
		t.Fatalf("grid after resize = %dx%d, want 25x3", g.Cols, g.Rows)
	}
	if f.sim.Generation() != 0 {
		t.Fatal("resize must start a fresh sequence")
	}
	if last := f.rec.clears[len(f.rec.clears)-1]; last != (rect{0, 0, 300, 36}) {
		t.Fatalf("resize should redraw immediately, last clear = %v", last)
	}
}

func TestZeroAreaViewport(t *testing.T) {
	f := newFixture(testConfig(), background.Viewport{Width: 0, Height: 0})
	f.sim.Mount()
	if !f.sim.Grid().Empty() {
		t.Fatal("zero viewport should give an empty grid")
	}
	f.frames.Pump(time.Second)
	if f.sim.Generation() != 0 || len(f.rec.fills) != 0 {
		t.Fatal("empty grid must not step or paint")
	}
	if f.sim.State() != background.Scheduled {
		t.Fatal("loop keeps running on an empty grid")
	}
	f.window.SetViewport(background.Viewport{Width: 60, Height: 60})
	if g := f.sim.Grid(); g.Cols != 5 || g.Rows != 5 {
		t.Fatalf("grid = %dx%d after non-zero resize", g.Cols, g.Rows)
	}
}

func TestUnmountReleasesEverything(t *testing.T) {
	f := newFixture(testConfig(), background.Viewport{Width: 120, Height: 120})
	f.sim.Unmount()

	f.sim.Mount()
	f.sim.Unmount()
	if f.sim.State() != background.Idle || f.frames.Pending() != 0 {
		t.Fatal("unmount must cancel the pending frame")
	}
	if r, v := f.window.Listeners(); r != 0 || v != 0 {
		t.Fatalf("listeners after unmount = %d/%d", r, v)
	}
	f.sim.Unmount()

	draws := len(f.rec.clears)
	f.window.SetViewport(background.Viewport{Width: 500, Height: 500})
	f.frames.Pump(time.Minute)
	if len(f.rec.clears) != draws {
		t.Fatal("unmounted simulator drew")
	}
}

func TestUnmountDuringTickStopsLoop(t *testing.T) {
	f := newFixture(testConfig(), background.Viewport{Width: 120, Height: 120})
	f.sim.Mount()
	f.rec.onClear = func() { f.sim.Unmount() }
	f.frames.Pump(time.Second)
	if f.frames.Pending() != 0 || f.sim.State() != background.Idle {
		t.Fatal("loop rescheduled after teardown")
	}
}

type panickyHost struct{ *host.Window }

func (panickyHost) OnVisibilityChange(func(bool)) func() { panic("listener registration failed") }

func TestMountPanicReleasesPartialState(t *testing.T) {
	frames := host.NewFrames()
	window := host.NewWindow(background.Viewport{Width: 120, Height: 120})
	rec := &recorder{}
	sim := background.New(testConfig(), background.Ports{
		Surface:   func() (background.Surface, error) { return rec, nil },
		Scheduler: frames,
		Host:      panickyHost{window},
	})
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected mount to panic")
			}
		}()
		sim.Mount()
	}()
	if r, _ := window.Listeners(); r != 0 {
		t.Fatal("resize listener leaked after failed mount")
	}
	if frames.Pending() != 0 || sim.Mounted() {
		t.Fatal("failed mount left work scheduled")
	}
}

func TestFillColorFromTheme(t *testing.T) {
	cases := map[string]color.NRGBA{
		"#ff0000":     {R: 255, A: 26},
		"":            {R: 0x88, G: 0x88, B: 0x88, A: 26},
		"not a color": {R: 0x88, G: 0x88, B: 0x88, A: 26},
	}
	for raw, want := range cases {
		frames := host.NewFrames()
		rec := &recorder{}
		cfg := testConfig()
		cfg.InitialDensity = 1
		sim := background.New(cfg, background.Ports{
			Surface:   func() (background.Surface, error) { return rec, nil },
			Scheduler: frames,
			Host:      host.NewWindow(background.Viewport{Width: 24, Height: 24}),
			Theme:     func() string { return raw },
		})
		sim.Mount()
		if got := color.NRGBAModel.Convert(rec.color).(color.NRGBA); got != want {
			t.Fatalf("theme %q: fill = %+v, want %+v", raw, got, want)
		}
	}
}

func TestPanickingThemeLookupFallsBack(t *testing.T) {
	frames := host.NewFrames()
	rec := &recorder{}
	cfg := testConfig()
	cfg.InitialDensity = 1
	sim := background.New(cfg, background.Ports{
		Surface:   func() (background.Surface, error) { return rec, nil },
		Scheduler: frames,
		Host:      host.NewWindow(background.Viewport{Width: 24, Height: 24}),
		Theme:     func() string { panic("computed style unavailable") },
	})
	sim.Mount()
	if !sim.Mounted() || frames.Pending() != 1 {
		t.Fatalf("mounted = %v pending = %d, want mounted with one frame", sim.Mounted(), frames.Pending())
	}
	want := color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 26}
	if got := color.NRGBAModel.Convert(rec.color).(color.NRGBA); got != want {
		t.Fatalf("fill = %+v, want %+v", got, want)
	}
	frames.Pump(time.Second)
	if sim.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", sim.Generation())
	}
	sim.Unmount()
}

func TestConfigNormalize(t *testing.T) {
	cfg := background.Config{CellSize: -1, StepInterval: 0, FillOpacity: 3, InitialDensity: -0.5}.Normalize()
	def := background.DefaultConfig()
	if cfg.CellSize != def.CellSize || cfg.StepInterval != def.StepInterval {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.FillOpacity != 1 || cfg.InitialDensity != 0 {
		t.Fatalf("fractions not clamped: %+v", cfg)
	}
	if cfg.Engine != life.EngineDirect {
		t.Fatalf("engine = %q", cfg.Engine)
	}
}

func TestUnknownEngineFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.Engine = "quantum"
	sim := background.New(cfg, background.Ports{})
	if sim.Config().Engine != life.EngineDirect {
		t.Fatalf("engine = %q", sim.Config().Engine)
	}
}

func TestParametersSnapshot(t *testing.T) {
	f := newFixture(testConfig(), background.Viewport{Width: 120, Height: 60})
	f.sim.Mount()
	snap := f.sim.Parameters()
	if p, ok := snap.Lookup("cols"); !ok || p.Value != "10" {
		t.Fatalf("cols param = %+v", p)
	}
	if p, ok := snap.Lookup("step_interval"); !ok || p.Value != "120ms" {
		t.Fatalf("step_interval param = %+v", p)
	}
}
