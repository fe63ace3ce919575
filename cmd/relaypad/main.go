/*
relaypad scores door codes typed on a numeric keypad through a chain of
directional relay keypads.

It reads one code per line (for example "029A") from the file named by
-input, or from standard input, and prints the complexity sum
Σ value(code) × presses(code) for a shallow and a deep chain:

	relaypad -input codes.txt
	part1: 126384
	part2: ...

Flags:

	-input   path to the codes file (default: stdin)
	-shallow depth of the first chain (default 2)
	-deep    depth of the second chain (default 25)
	-workers codes solved concurrently (default 1)
	-costs   also print the per-code press counts
	-v       debug logging on stderr
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/relaypad/chaincost"
	"github.com/katalvlaran/relaypad/score"
)

type config struct {
	input   string
	shallow int
	deep    int
	workers int
	costs   bool
	verbose bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.input, "input", "", "path to the codes file (default: stdin)")
	flag.IntVar(&cfg.shallow, "shallow", 2, "depth of the first relay chain")
	flag.IntVar(&cfg.deep, "deep", chaincost.DefaultMaxDepth, "depth of the second relay chain")
	flag.IntVar(&cfg.workers, "workers", 1, "number of codes solved concurrently")
	flag.BoolVar(&cfg.costs, "costs", false, "print per-code press counts")
	flag.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), cfg, os.Stdout, logger); err != nil {
		logger.Error("relaypad failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, out io.Writer, logger *slog.Logger) error {
	if cfg.workers < 1 {
		return fmt.Errorf("-workers must be at least 1, got %d", cfg.workers)
	}
	r := io.Reader(os.Stdin)
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	codes, err := score.ParseCodes(r)
	if err != nil {
		return err
	}
	logger.Debug("read codes", "count", len(codes), "input", cfg.input)

	maxDepth := max(cfg.shallow, cfg.deep, chaincost.DefaultMaxDepth)
	if maxDepth > chaincost.MaxSupportedDepth {
		return fmt.Errorf("depth %d exceeds the supported maximum %d", maxDepth, chaincost.MaxSupportedDepth)
	}
	sc := score.New(
		score.WithWorkers(cfg.workers),
		score.WithLogger(logger),
		score.WithSolverOptions(chaincost.WithMaxDepth(maxDepth)),
	)
	for part, depth := range []int{cfg.shallow, cfg.deep} {
		rep, err := sc.Score(ctx, codes, depth)
		if err != nil {
			return fmt.Errorf("part %d: %w", part+1, err)
		}
		if cfg.costs {
			for _, res := range rep.Results {
				fmt.Fprintf(out, "  %s depth=%d presses=%d complexity=%d\n", res.Code.Raw, depth, res.Cost, res.Complexity)
			}
		}
		fmt.Fprintf(out, "part%d: %d\n", part+1, rep.Total)
	}

	return nil
}
