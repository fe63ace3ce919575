// Package score turns a batch of door codes into chain costs and the
// aggregate complexity sum Σ value(code) × cost(code).
//
// Codes are parsed and validated here, before they reach chaincost. A
// Scorer keeps one chaincost.Solver, so scoring the same batch at a shallow
// and a deep chain depth shares every memoized relay cost.
//
// With Workers > 1 the codes of a batch are solved concurrently through
// golang.org/x/sync/errgroup; the shared cache serializes its own writes.
package score
