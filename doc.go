// Package relaypad computes how many keypresses a human needs to type door
// codes on a numeric keypad when every press has to pass through a chain of
// identical directional relay keypads.
//
// What is in here:
//
//	keypad/        the two fixed pad shapes, Position, Command, and the
//	               single-step move simulator
//	chaincost/     memoized relay costs (Engine), the per-code search
//	               (Solver) and the shared Cache
//	score/         code parsing and the Σ value × presses aggregate, with
//	               optional parallel scoring
//	cmd/relaypad/  command-line driver for a shallow and a deep chain
//
// Quick ASCII picture of a depth-2 chain:
//
//	human ─▶ [^A<v>] ─▶ [^A<v>] ─▶ [^A<v>] ─▶ [789456123 0A]
//	          level 0    level 1    level 2      numeric
//
// The cost of a press on any pad depends on where the cursor of the pad
// above was left, so every level is solved with the previous command in its
// state. See chaincost for the algorithm.
//
//	go get github.com/katalvlaran/relaypad
package relaypad
