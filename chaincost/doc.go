// Package chaincost computes the minimal number of human keypresses needed to
// type a code on a numeric keypad through a chain of directional relay pads.
//
// Overview:
//
//   - A human presses keys on a directional pad. Each press drives the cursor
//     of the next directional pad down the chain, and so on, until the last
//     relay drives the numeric pad.
//   - Engine.Cost(goal, prev, level) is the cheapest way, counted in human
//     presses, to move a relay cursor that sits `level` pads above the human
//     from key prev to key goal and press it.
//   - Solver.Solve(code, depth) is the cheapest way to type a whole code on the
//     numeric pad through `depth` relays.
//
// Why the previous key matters:
//
//	A relay cursor stays where its last press left it. Moving from '<' to
//	'A' costs more than moving from '>' to 'A', so the cost of every command
//	depends on the command issued before it at the same level. The cache key
//	therefore carries (goal, prev, level) and every search state carries the
//	last command issued one level up.
//
// Algorithm:
//
//   - Both searches are uniform-cost (Dijkstra) over compound states with a
//     min-heap and a visited set, using container/heap and lazy decrease-key.
//   - Edge weights are Engine.Cost one level up, memoized in a Cache shared by
//     every level, so a 25-level chain costs at most 5·5·25 searches over a
//     six-key pad.
//   - Ties between equal-cost entries are broken by insertion order, which
//     keeps Solver.Path deterministic.
//
// Errors:
//
//   - ErrEmptyCode, ErrInvalidCode, ErrMissingTerminator: the code cannot be
//     typed on the numeric pad. Callers are expected to validate codes first.
//   - ErrBadDepth: depth is negative or above Options.MaxDepth.
//   - ErrUnreachable: a search ran out of states. Both pads are connected, so
//     this signals a defect and is raised with panic, never returned.
//
// Concurrency:
//
//	Engine and Solver are safe for concurrent use. The Cache serializes its
//	own reads and inserts; two goroutines may race to compute the same entry,
//	which only costs a repeated search since the result is identical.
package chaincost
