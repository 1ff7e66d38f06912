// Command life-sweep reports how initial density affects the population a
// toroidal Life grid settles to.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"life-bg/internal/sweep"
)

func main() {
	opts := sweep.DefaultOptions()
	flag.IntVar(&opts.Cols, "cols", opts.Cols, "grid columns")
	flag.IntVar(&opts.Rows, "rows", opts.Rows, "grid rows")
	flag.IntVar(&opts.Steps, "steps", opts.Steps, "generations to simulate per scenario")
	flag.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	flag.StringVar(&opts.Engine, "engine", opts.Engine, "neighbour counting engine (direct|fft)")
	densities := flag.String("densities", joinFloats(opts.Densities), "comma separated initial densities")
	seeds := flag.Int("seeds", len(opts.Seeds), "seeds per density")
	flag.Parse()

	var err error
	if opts.Densities, err = parseFloats(*densities); err != nil {
		log.Fatalf("densities: %v", err)
	}
	opts.Seeds = opts.Seeds[:0]
	for i := 1; i <= *seeds; i++ {
		opts.Seeds = append(opts.Seeds, int64(i))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("swept %d densities x %d seeds on %dx%d for %d steps in %s\n",
		len(opts.Densities), len(opts.Seeds), opts.Cols, opts.Rows, opts.Steps, time.Since(start).Round(time.Millisecond))
	for _, r := range results {
		fmt.Println(r)
	}
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
