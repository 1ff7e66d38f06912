//go:build ebiten

package app

import (
	"math"
	"time"

	"life-bg/internal/background"
	"life-bg/internal/host"
	"life-bg/internal/render"
	"life-bg/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game hosts a background simulator in an ebiten window. ebiten's update loop
// supplies frame ticks, window focus stands in for page visibility and the
// window size drives resizes.
type Game struct {
	sim    *background.Simulator
	frames *host.Frames
	window *host.Window
	canvas *render.Canvas
	blit   *render.Blitter
	hud    *ui.HUD

	start time.Time
}

// New constructs a Game and mounts its simulator.
func New(cfg Config) *Game {
	vp := cfg.Viewport(ebiten.DeviceScaleFactor())
	g := &Game{
		frames: host.NewFrames(),
		window: host.NewWindow(vp),
		canvas: render.NewCanvas(vp),
		blit:   render.NewBlitter(),
		start:  time.Now(),
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(220)
	}
	g.sim = background.New(cfg.Background, background.Ports{
		Surface:   func() (background.Surface, error) { return g.canvas, nil },
		Scheduler: g.frames,
		Host:      g.window,
		Theme:     cfg.ThemeFunc(),
	})
	g.sim.Mount()
	return g
}

// Close tears the simulator down.
func (g *Game) Close() {
	g.sim.Unmount()
}

// Update handles per-frame logic and delivers the frame tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.window.SetVisible(ebiten.IsFocused())
	g.frames.Pump(time.Since(g.start))
	if g.hud != nil {
		g.hud.Update(g.sim.Parameters())
	}
	return nil
}

// Draw renders the current canvas and the optional HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.blit.Blit(screen, g.canvas)
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

// Layout reports the screen size in device pixels and forwards size or scale
// changes to the simulator as resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.DeviceScaleFactor()
	g.window.SetViewport(background.Viewport{
		Width:  float64(outsideWidth),
		Height: float64(outsideHeight),
		Scale:  scale,
	})
	return int(math.Ceil(float64(outsideWidth) * scale)), int(math.Ceil(float64(outsideHeight) * scale))
}
