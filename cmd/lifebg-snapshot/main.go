// Command lifebg-snapshot renders the background headlessly for a number of
// simulated frames and writes the final surface as a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"life-bg/internal/app"
	"life-bg/internal/background"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 120, "frames to simulate before capturing")
	out := flag.String("out", "lifebg.png", "output PNG path")
	flag.Parse()

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	background.SetLogger(logger)

	snap, err := app.RenderSnapshot(*cfg, *frames)
	if err != nil {
		log.Fatal(err)
	}
	defer snap.Surface.Close()

	if err := snap.Surface.SavePNG(*out); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	for _, line := range snap.Parameters {
		logger.Debug(line)
	}
	logger.Info("snapshot written",
		slog.String("path", *out),
		slog.Uint64("generation", snap.Generation),
		slog.Int("population", snap.Population))
}
