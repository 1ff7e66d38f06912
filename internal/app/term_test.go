package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func runTerminalAsync(ctx context.Context, screen tcell.Screen) <-chan error {
	cfg := NewConfig()
	cfg.FrameInterval = 5 * time.Millisecond
	cfg.Background.Seed = 1
	done := make(chan error, 1)
	go func() { done <- RunTerminal(ctx, *cfg, screen) }()
	return done
}

func TestRunTerminalQuitsOnKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	done := runTerminalAsync(context.Background(), screen)

	deadline := time.After(5 * time.Second)
	for {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("RunTerminal = %v, want nil", err)
			}
			return
		case <-deadline:
			t.Fatal("terminal host did not quit")
		case <-time.After(10 * time.Millisecond):
			screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
		}
	}
}

func TestRunTerminalStopsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	ctx, cancel := context.WithCancel(context.Background())
	done := runTerminalAsync(ctx, screen)
	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("RunTerminal = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("terminal host ignored cancellation")
	}
}
