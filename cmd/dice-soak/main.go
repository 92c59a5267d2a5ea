// Command dice-soak plays many sessions with random input against a manual
// clock and reports tick timings and gameplay totals.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/diceescape/game"
	"github.com/plus3/diceescape/level"
	"github.com/plus3/diceescape/logger"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessions := flag.Int("sessions", runtime.NumCPU(), "The number of sessions to run side by side.")
	levelFile := flag.String("levels", "", "YAML level pack to play instead of the built-in levels.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for input and coin rolls.")
	verbose := flag.Bool("verbose", false, "Log every session event.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log := logger.New(os.Stderr, "info", "text")
	sessionLog := logger.New(io.Discard, "info", "text")
	if *verbose {
		sessionLog = logger.New(os.Stderr, "debug", "text")
	}

	source, err := level.Open(*levelFile)
	if err != nil {
		log.WithError(err).Fatal("Failed to open levels")
	}

	log.WithField("sessions", *sessions).Info("Starting soak test")
	soaks := make([]*soak, *sessions)
	for i := range soaks {
		soaks[i] = newSoak(source, game.DefaultRules(), *seed+uint64(i), sessionLog)
		if err := soaks[i].start(); err != nil {
			log.WithError(err).Fatal("Failed to start session")
		}
	}

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessions,
		Levels:         source.Count(),
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.WithField("duration", *duration).Info("Running sessions")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	samples := make([][]time.Duration, len(soaks))
	var wg sync.WaitGroup
	for i, s := range soaks {
		wg.Go(func() {
			for ctx.Err() == nil {
				d, err := s.step()
				if err != nil {
					log.WithError(err).WithField("session", i).Error("Session failed")
					return
				}
				samples[i] = append(samples[i], d)
			}
		})
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	for i, s := range soaks {
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, samples[i]...)
		report.Totals.merge(s.totals)
		report.GameTime += time.Duration(len(samples[i])) * time.Second / 60
	}
	report.TotalUpdates = int64(len(report.UpdateTime.Samples))
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("Soak test finished")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.WithError(err).Fatal("Failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}
