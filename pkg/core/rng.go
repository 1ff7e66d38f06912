package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for optional seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG using the provided seed. A zero seed draws one from
// the wall clock so successive runs differ.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p. Values outside [0, 1] saturate.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// FillDensity sets every cell alive independently with probability p.
func (r *RNG) FillDensity(g Grid, p float64) {
	cells := g.Cells()
	for i := range cells {
		cells[i] = r.Chance(p)
	}
}
