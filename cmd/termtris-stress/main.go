package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/termtris/tetris"
)

func main() {
	defaults := tetris.DefaultConfig()

	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "The number of sessions played concurrently.")
	maxTicks := flag.Int64("ticks", 0, "Stop each worker after this many ticks (0 runs until the duration ends).")
	width := flag.Int("width", defaults.Width, "Board width in cells.")
	height := flag.Int("height", defaults.Height, "Board height in cells.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Base seed; worker i uses seed+i.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := defaults
	cfg.Width = *width
	cfg.Height = *height
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *workers < 1 {
		log.Fatalf("Invalid configuration: -workers must be at least 1, got %d", *workers)
	}

	log.Println("Starting termtris stress test...")

	report := &Report{
		Duration:       *duration,
		Workers:        *workers,
		MaxTicks:       *maxTicks,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d workers for %s...\n", *workers, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make([]*workerResult, 0, *workers)
		errs    []error
	)

	startTime := time.Now()
	for i := 0; i < *workers; i++ {
		workerCfg := cfg
		workerCfg.Seed = *seed + uint64(i)

		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := runWorker(ctx, workerCfg, *maxTicks)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			results = append(results, res)
		}()
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	for _, res := range results {
		report.Merge(res)
	}
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	for _, err := range errs {
		log.Printf("Worker failed: %v", err)
	}
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if len(errs) > 0 {
		os.Exit(1)
	}
	log.Println("Stress test complete.")
}
