package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"diff-life/internal/core"
	"diff-life/internal/life"

	"golang.org/x/sync/errgroup"
)

func main() {
	side := flag.Int("side", 256, "cells per grid side")
	tps := flag.Int("tps", 30, "target ticks per second")
	gens := flag.Int("gens", 600, "generations to run (0 = until interrupted)")
	seed := flag.Int64("seed", 42, "seed for the initial randomize")
	report := flag.Int("report", 30, "print telemetry every N generations")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess := life.NewSession(*side, *seed)
	sess.Randomize()
	sess.SetRunning(true)

	fixed := core.NewFixedStep(*tps)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ticker := time.NewTicker(fixed.Interval())
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				stats := sess.Tick()
				if *report > 0 && stats.Generation > 0 && stats.Generation%uint64(*report) == 0 {
					fmt.Printf("gen %d | %.1f tps | changed %d/%d (%.1f%%) | pop %d\n",
						stats.Generation, stats.TPS, stats.Changed, stats.Total, stats.Ratio, stats.Population)
				}
				if *gens > 0 && stats.Generation >= uint64(*gens) {
					return nil
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	fmt.Printf("ran %d generations in %.1fs\n", sess.Generation(), time.Since(start).Seconds())
}
