package app

import (
	"context"
	"fmt"
	"time"

	"life-bg/internal/background"
	"life-bg/internal/host"
	"life-bg/internal/render"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal hosts a background simulator on a tcell screen until the user
// presses q, Esc or Ctrl-C, or ctx is done. Terminal focus stands in for page
// visibility. The screen is initialised and finalised here.
func RunTerminal(ctx context.Context, cfg Config, screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	term := render.NewTerm(screen, cfg.Background.CellSize)
	window := host.NewWindow(terminalViewport(screen, term))
	frames := host.NewFrames()
	sim := background.New(cfg.Background, background.Ports{
		Surface:   func() (background.Surface, error) { return term, nil },
		Scheduler: frames,
		Host:      window,
		Theme:     cfg.ThemeFunc(),
	})
	sim.Mount()
	defer sim.Unmount()
	term.Show()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	interval := cfg.FrameInterval
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				window.SetViewport(terminalViewport(screen, term))
				term.Show()
			case *tcell.EventFocus:
				window.SetVisible(ev.Focused)
			}
		case <-ticker.C:
			frames.Pump(time.Since(start))
			term.Show()
		}
	}
}

func terminalViewport(screen tcell.Screen, term *render.Term) background.Viewport {
	cols, rows := screen.Size()
	return background.Viewport{
		Width:  float64(cols) * term.PixelsPerColumn(),
		Height: float64(rows) * term.PixelsPerRow(),
		Scale:  1,
	}
}
