// Command mcode clusters a protein interaction edge list into complexes.
//
//	mcode -config mcode.yaml
//	mcode -input cleaned.csv -min-score 700 -density 0.5 -output complexes.tsv
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/mcode/config"
	"github.com/katalvlaran/mcode/pipeline"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "mcode:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML configuration file")
	input := flag.String("input", "", "edge list (source,target,score)")
	density := flag.Float64("density", 0, "weight gate in (0,1)")
	minScore := flag.Int("min-score", -1, "drop interactions scoring below this")
	scope := flag.String("scope", "", "scoring scope: neighborhood or component")
	workers := flag.Int("workers", 0, "parallel scoring workers")
	cache := flag.String("cache", "", "weight cache file (.sz for snappy)")
	output := flag.String("output", "", "output file (default stdout)")
	format := flag.String("format", "", "output format: tsv, csv or dot")
	flag.Parse()

	// flags override file and environment only when set
	cfg, err := config.Load(*configPath, func(c *config.Config) {
		if *input != "" {
			c.Input.Path = *input
		}
		if *density != 0 {
			c.Assign.Density = *density
		}
		if *minScore >= 0 {
			c.Input.MinScore = *minScore
		}
		if *scope != "" {
			c.Score.Scope = *scope
		}
		if *workers > 0 {
			c.Score.Workers = *workers
		}
		if *cache != "" {
			c.Cache.Path = *cache
		}
		if *output != "" {
			c.Output.Path = *output
		}
		if *format != "" {
			c.Output.Format = *format
		}
	})
	if err != nil {
		return err
	}

	logger, err := pipeline.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := pipeline.New(cfg, pipeline.WithLogger(logger)).Run(ctx)
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}
	logger.Debug("summary", zap.Any("summary", sum))
	return nil
}
