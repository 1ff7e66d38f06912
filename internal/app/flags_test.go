package app

import (
	"bytes"
	"flag"
	"strings"
	"testing"
	"time"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{
		"-cell-size", "8",
		"-interval", "250ms",
		"-opacity", "0.5",
		"-density", "0.6",
		"-seed", "9",
		"-engine", "fft",
		"-width", "320",
		"-height", "200",
		"-theme", "#ff00ff",
		"-hud",
		"-log-level", "debug",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	bg := cfg.Background
	if bg.CellSize != 8 || bg.StepInterval != 250*time.Millisecond || bg.FillOpacity != 0.5 || bg.InitialDensity != 0.6 || bg.Seed != 9 || bg.Engine != "fft" {
		t.Fatalf("background config = %+v", bg)
	}
	if cfg.Width != 320 || cfg.Height != 200 || !cfg.HUD || cfg.ThemeFunc()() != "#ff00ff" {
		t.Fatalf("host config = %+v", cfg)
	}
	if vp := cfg.Viewport(2); vp.Width != 320 || vp.Height != 200 || vp.Scale != 2 {
		t.Fatalf("viewport = %+v", vp)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	bg := cfg.Background
	if bg.CellSize != 12 || bg.StepInterval != 120*time.Millisecond || bg.FillOpacity != 0.1 || bg.InitialDensity != 0.30 {
		t.Fatalf("defaults = %+v", bg)
	}
}

func TestNewLogger(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "warn"
	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("log output = %q", buf.String())
	}

	cfg.LogLevel = "chatty"
	if _, err := cfg.NewLogger(&buf); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
