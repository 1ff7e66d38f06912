// Package sweep measures how initial density shapes long-run population on
// the toroidal grid, running independent scenarios across worker goroutines.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"life-bg/pkg/core"
	"life-bg/pkg/sims/life"
)

// Options configures a sweep.
type Options struct {
	Cols, Rows int
	Steps      int
	Densities  []float64
	Seeds      []int64
	Engine     string
	Workers    int
}

// DefaultOptions mirrors a 1280×720 viewport at the default cell size.
func DefaultOptions() Options {
	return Options{
		Cols:      107,
		Rows:      60,
		Steps:     240,
		Densities: []float64{0.05, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.8},
		Seeds:     []int64{1, 2, 3, 4},
		Engine:    life.EngineDirect,
		Workers:   runtime.NumCPU(),
	}
}

type scenario struct {
	density float64
	seed    int64
}

type outcome struct {
	scenario
	initial, final int
	extinctAt      int
}

// Result aggregates every seed run at one density.
type Result struct {
	Density     float64
	Runs        int
	MeanInitial float64
	MeanFinal   float64
	FinalRatio  float64
	Extinct     int
	MeanExtinct float64
	MinFinal    int
	MaxFinal    int
}

func (r Result) String() string {
	return fmt.Sprintf("density=%.2f runs=%d initial=%.1f final=%.1f ratio=%.3f extinct=%d",
		r.Density, r.Runs, r.MeanInitial, r.MeanFinal, r.FinalRatio, r.Extinct)
}

// Run executes every density/seed pair and returns one Result per density,
// sorted by density. It stops early with ctx.Err() when ctx is cancelled.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		return nil, fmt.Errorf("grid must be non-empty, got %dx%d", opts.Cols, opts.Rows)
	}
	if _, err := life.StepperFor(opts.Engine); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan scenario)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Steppers may hold per-size buffers, so each worker owns one.
			stepper, _ := life.StepperFor(opts.Engine)
			for sc := range jobs {
				res := runScenario(stepper, opts, sc)
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, d := range opts.Densities {
			for _, s := range opts.Seeds {
				select {
				case jobs <- scenario{density: d, seed: s}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	byDensity := map[float64][]outcome{}
	for res := range results {
		byDensity[res.density] = append(byDensity[res.density], res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return aggregate(byDensity, opts.Cols*opts.Rows), nil
}

func runScenario(stepper life.Stepper, opts Options, sc scenario) outcome {
	g := core.NewGrid(opts.Cols, opts.Rows)
	core.NewRNG(sc.seed).FillDensity(g, sc.density)
	out := outcome{scenario: sc, initial: g.Population(), extinctAt: -1}
	for step := 1; step <= opts.Steps; step++ {
		g = stepper.Next(g)
		if g.Population() == 0 {
			out.extinctAt = step
			break
		}
	}
	out.final = g.Population()
	return out
}

func aggregate(byDensity map[float64][]outcome, cells int) []Result {
	results := make([]Result, 0, len(byDensity))
	for density, runs := range byDensity {
		r := Result{Density: density, Runs: len(runs), MinFinal: -1}
		var initial, final, extinctSteps int
		for _, o := range runs {
			initial += o.initial
			final += o.final
			if o.extinctAt >= 0 {
				r.Extinct++
				extinctSteps += o.extinctAt
			}
			if r.MinFinal < 0 || o.final < r.MinFinal {
				r.MinFinal = o.final
			}
			if o.final > r.MaxFinal {
				r.MaxFinal = o.final
			}
		}
		n := float64(len(runs))
		r.MeanInitial = float64(initial) / n
		r.MeanFinal = float64(final) / n
		r.FinalRatio = r.MeanFinal / float64(cells)
		if r.Extinct > 0 {
			r.MeanExtinct = float64(extinctSteps) / float64(r.Extinct)
		}
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Density < results[j].Density })
	return results
}
