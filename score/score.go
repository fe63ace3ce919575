package score

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relaypad/chaincost"
)

// Scorer solves batches of codes with one shared solver.
type Scorer struct {
	options Options
	solver  *chaincost.Solver
}

// New returns a Scorer configured by opts.
func New(opts ...Option) *Scorer {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	solverOpts := append([]chaincost.Option{chaincost.WithLogger(cfg.Logger)}, cfg.Solver...)

	return &Scorer{options: cfg, solver: chaincost.NewSolver(solverOpts...)}
}

// Solver returns the shared solver.
func (s *Scorer) Solver() *chaincost.Solver { return s.solver }

// Score solves every code at depth and sums value × cost.
//
// Codes are solved Workers at a time. The first error cancels the rest and
// is returned, as is ctx's error once ctx is done.
func (s *Scorer) Score(ctx context.Context, codes []Code, depth int) (Report, error) {
	start := time.Now()
	results := make([]Result, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.options.Workers)
	for i, c := range codes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cost, err := s.solver.Solve(c.Raw, depth)
			if err != nil {
				return fmt.Errorf("score: code %q: %w", c.Raw, err)
			}
			complexity, ok := mulInt64(int64(c.Value), cost)
			if !ok {
				return fmt.Errorf("%w: %d × %d for code %q", ErrOverflow, c.Value, cost, c.Raw)
			}
			results[i] = Result{Code: c, Cost: cost, Complexity: complexity}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	rep := Report{Depth: depth, Results: results}
	for _, r := range results {
		total, ok := addInt64(rep.Total, r.Complexity)
		if !ok {
			return Report{}, fmt.Errorf("%w: total at depth %d", ErrOverflow, depth)
		}
		rep.Total = total
	}
	s.options.Logger.Debug("scored batch",
		"depth", depth,
		"codes", len(codes),
		"total", rep.Total,
		"workers", s.options.Workers,
		"elapsed", time.Since(start),
	)
	return rep, nil
}

// Sum is a convenience wrapper scoring codes sequentially on a fresh Scorer
// and returning only the aggregate.
func Sum(codes []Code, depth int) (int64, error) {
	rep, err := New().Score(context.Background(), codes, depth)
	if err != nil {
		return 0, err
	}
	return rep.Total, nil
}

// mulInt64 returns a×b for non-negative operands, or false if it overflows.
func mulInt64(a, b int64) (int64, bool) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, false
	}
	return a * b, true
}

// addInt64 returns a+b for non-negative operands, or false if it overflows.
func addInt64(a, b int64) (int64, bool) {
	if b > math.MaxInt64-a {
		return 0, false
	}
	return a + b, true
}
