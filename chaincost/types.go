package chaincost

import (
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors returned (or, for ErrUnreachable, panicked) by chaincost.
var (
	// ErrEmptyCode indicates an empty target code.
	ErrEmptyCode = errors.New("chaincost: code is empty")

	// ErrInvalidCode indicates a code character that is not on the numeric pad.
	ErrInvalidCode = errors.New("chaincost: code contains a character not on the numeric pad")

	// ErrMissingTerminator indicates a code that does not end in 'A'.
	ErrMissingTerminator = errors.New("chaincost: code must end in 'A'")

	// ErrBadDepth indicates a chain depth outside [0, MaxDepth].
	ErrBadDepth = errors.New("chaincost: chain depth out of range")

	// ErrBadMaxDepth indicates a MaxDepth outside [0, MaxSupportedDepth].
	ErrBadMaxDepth = errors.New("chaincost: MaxDepth out of range")

	// ErrNegativeLevel indicates Engine.Cost was asked for a negative level.
	ErrNegativeLevel = errors.New("chaincost: level must be non-negative")

	// ErrUnreachable indicates a search exhausted its frontier.
	ErrUnreachable = errors.New("chaincost: search exhausted without reaching the goal")
)

const (
	// DefaultMaxDepth is the deepest chain accepted unless overridden.
	DefaultMaxDepth = 25

	// MaxSupportedDepth is the deepest chain whose per-code costs fit in an
	// int64. Products with code values may not; score checks them.
	MaxSupportedDepth = 40

	// Terminator is the character every code ends with.
	Terminator = 'A'
)

// Options configures an Engine or Solver.
//
// Logger   – receives Debug records for finished solves. Default discards.
// Cache    – memo table to use; share one to keep results warm across solvers.
//
//	Default is a fresh Cache per constructor call.
//
// MaxDepth – largest depth Solve accepts. Default DefaultMaxDepth.
type Options struct {
	Logger   *slog.Logger
	Cache    *Cache
	MaxDepth int
}

// Option represents a functional option for configuring chaincost.
type Option func(*Options)

// WithLogger routes debug output to logger. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithCache makes the Engine memoize into c instead of a private cache.
func WithCache(c *Cache) Option {
	return func(o *Options) {
		if c != nil {
			o.Cache = c
		}
	}
}

// WithMaxDepth sets the largest chain depth Solve accepts.
// Panics with ErrBadMaxDepth outside [0, MaxSupportedDepth].
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth < 0 || depth > MaxSupportedDepth {
			panic(ErrBadMaxDepth.Error())
		}
		o.MaxDepth = depth
	}
}

// DefaultOptions returns the defaults: discard logger, no cache (one is
// allocated by the constructor), MaxDepth = DefaultMaxDepth.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxDepth: DefaultMaxDepth,
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Cache == nil {
		cfg.Cache = NewCache()
	}
	return cfg
}
