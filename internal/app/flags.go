package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"life-bg/internal/background"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Background background.Config

	Width  int
	Height int

	// FrameInterval paces hosts that drive their own frame loop.
	FrameInterval time.Duration
	// Theme is the foreground colour handed to the simulator (hex or OKLCH).
	Theme    string
	HUD      bool
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Background:    background.DefaultConfig(),
		Width:         960,
		Height:        600,
		FrameInterval: time.Second / 60,
		LogLevel:      "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.Background.CellSize, "cell-size", c.Background.CellSize, "cell edge length in pixels")
	fs.DurationVar(&c.Background.StepInterval, "interval", c.Background.StepInterval, "minimum time between generations")
	fs.Float64Var(&c.Background.FillOpacity, "opacity", c.Background.FillOpacity, "alpha applied to live cells")
	fs.Float64Var(&c.Background.InitialDensity, "density", c.Background.InitialDensity, "probability a cell starts alive")
	fs.Int64Var(&c.Background.Seed, "seed", c.Background.Seed, "seed for grid initialisation (0 = random)")
	fs.StringVar(&c.Background.Engine, "engine", c.Background.Engine, "neighbour counting engine: direct or fft")
	fs.IntVar(&c.Width, "width", c.Width, "initial viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial viewport height in pixels")
	fs.DurationVar(&c.FrameInterval, "frame", c.FrameInterval, "host frame interval")
	fs.StringVar(&c.Theme, "theme", c.Theme, "foreground colour (#rrggbb or OKLCH \"L C H\")")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter overlay")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Viewport returns the initial viewport at the given device scale.
func (c *Config) Viewport(scale float64) background.Viewport {
	return background.Viewport{Width: float64(c.Width), Height: float64(c.Height), Scale: scale}
}

// ThemeFunc returns the configured theme lookup.
func (c *Config) ThemeFunc() background.ThemeFunc {
	theme := c.Theme
	return func() string { return theme }
}

// NewLogger builds a text logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
