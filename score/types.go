package score

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/relaypad/chaincost"
)

// Sentinel errors for code parsing and scoring.
var (
	// ErrNoDigits indicates a code without a leading numeric value.
	ErrNoDigits = errors.New("score: code has no leading numeric value")

	// ErrOverflow indicates a complexity or total that does not fit in an int64.
	ErrOverflow = errors.New("score: complexity overflows int64")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("score: workers must be at least 1")
)

// Code is one validated target code.
type Code struct {
	// Raw is the code as typed, ending in 'A'.
	Raw string
	// Value is the numeric value of the leading digits ("029A" → 29).
	Value int
}

// Result is the scored outcome for one code.
type Result struct {
	Code       Code
	Cost       int64 // minimal human presses
	Complexity int64 // Code.Value × Cost
}

// Report is a scored batch at one chain depth.
type Report struct {
	Depth   int
	Results []Result // in input order
	Total   int64    // Σ Complexity
}

// Options configures a Scorer.
//
// Workers – number of codes solved concurrently. Default 1 (sequential).
// Logger  – receives Debug records per batch; also handed to the solver.
// Solver  – chaincost options forwarded to the shared solver.
type Options struct {
	Workers int
	Logger  *slog.Logger
	Solver  []chaincost.Option
}

// Option represents a functional option for configuring a Scorer.
type Option func(*Options)

// WithWorkers solves up to n codes at once. Panics with ErrBadWorkers if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithLogger routes debug output to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithSolverOptions forwards opts to the underlying chaincost.Solver.
func WithSolverOptions(opts ...chaincost.Option) Option {
	return func(o *Options) {
		o.Solver = append(o.Solver, opts...)
	}
}

// DefaultOptions returns sequential scoring with a discard logger.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
