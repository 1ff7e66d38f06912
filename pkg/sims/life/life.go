package life

import (
	"errors"
	"fmt"

	"life-bg/pkg/core"
)

// ErrUnknownEngine is returned by StepperFor for unrecognised engine names.
var ErrUnknownEngine = errors.New("life: unknown engine")

// Engine names accepted by StepperFor.
const (
	EngineDirect = "direct"
	EngineFFT    = "fft"
)

// Stepper computes the next generation of a grid without modifying it.
type Stepper interface {
	Next(g core.Grid) core.Grid
}

// StepperFor returns the stepper registered under engine. An empty name
// selects the direct stepper.
func StepperFor(engine string) (Stepper, error) {
	switch engine {
	case "", EngineDirect:
		return Direct{}, nil
	case EngineFFT:
		return NewFFT(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownEngine, engine)
	}
}

// Direct counts Moore neighbours cell by cell.
type Direct struct{}

// Next implements Stepper.
func (Direct) Next(g core.Grid) core.Grid { return Next(g) }

// Neighbors counts live cells in the Moore neighbourhood of (x, y) on a torus.
// An empty grid has no neighbours.
func Neighbors(g core.Grid, x, y int) int {
	if g.Empty() {
		return 0
	}
	w, h := g.Cols, g.Rows
	cells := g.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			if cells[ny*w+nx] {
				n++
			}
		}
	}
	return n
}

// Rule applies B3/S23 to a cell with n live neighbours.
func Rule(alive bool, n int) bool {
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}

// Next returns the following generation. Every cell is computed from g alone;
// g is never written.
func Next(g core.Grid) core.Grid {
	next := core.NewGrid(g.Cols, g.Rows)
	if g.Empty() {
		return next
	}
	cur, out := g.Cells(), next.Cells()
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			idx := y*g.Cols + x
			out[idx] = Rule(cur[idx], Neighbors(g, x, y))
		}
	}
	return next
}
