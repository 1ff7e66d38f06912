package background

import (
	"math"
	"time"

	"life-bg/pkg/core"
	"life-bg/pkg/sims/life"
)

// Config holds the construction parameters of a Simulator. It is copied at
// construction and never changes afterwards.
type Config struct {
	// CellSize is the edge length of one cell in CSS pixels.
	CellSize float64
	// StepInterval is the minimum spacing between generations.
	StepInterval time.Duration
	// FillOpacity scales the alpha of painted cells.
	FillOpacity float64
	// InitialDensity is the probability a cell starts alive after a resize.
	InitialDensity float64
	// Seed feeds the RNG. Zero seeds from the clock.
	Seed int64
	// Engine selects the neighbour-counting stepper ("direct" or "fft").
	Engine string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CellSize:       12,
		StepInterval:   120 * time.Millisecond,
		FillOpacity:    0.1,
		InitialDensity: 0.30,
		Engine:         life.EngineDirect,
	}
}

// Normalize replaces unusable values with defaults and clamps fractions into
// [0, 1].
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if !(c.CellSize > 0) || math.IsInf(c.CellSize, 0) {
		c.CellSize = def.CellSize
	}
	if c.StepInterval <= 0 {
		c.StepInterval = def.StepInterval
	}
	c.FillOpacity = clamp01(c.FillOpacity)
	c.InitialDensity = clamp01(c.InitialDensity)
	if c.Engine == "" {
		c.Engine = def.Engine
	}
	return c
}

// Parameters exposes the configuration for display.
func (c Config) Parameters() core.ParameterGroup {
	return core.ParameterGroup{
		Name: "Background",
		Params: []core.Parameter{
			core.FloatParam("cell_size", "Cell size", c.CellSize),
			core.DurationParam("step_interval", "Step interval", c.StepInterval),
			core.FloatParam("fill_opacity", "Fill opacity", c.FillOpacity),
			core.FloatParam("initial_density", "Initial density", c.InitialDensity),
			core.Int64Param("seed", "Seed", c.Seed),
			core.StringParam("engine", "Engine", c.Engine),
		},
	}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
