package chaincost

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/relaypad/keypad"
)

// Solver computes the cheapest way to type whole codes on the numeric pad.
// It is safe for concurrent use.
type Solver struct {
	options Options
	engine  *Engine
}

// NewSolver returns a Solver whose Engine memoizes into Options.Cache.
func NewSolver(opts ...Option) *Solver {
	cfg := buildOptions(opts)
	return &Solver{
		options: cfg,
		engine:  &Engine{options: cfg, cache: cfg.Cache},
	}
}

// Engine returns the per-level cost oracle used by s.
func (s *Solver) Engine() *Engine { return s.engine }

// Cache returns the memo table shared by s and its Engine.
func (s *Solver) Cache() *Cache { return s.engine.cache }

// numericState is the numeric cursor, the last command issued to it by the
// first relay, and how many code characters have been typed so far.
type numericState struct {
	pos     keypad.Position
	last    keypad.Command
	matched int
}

// pathNode links a settled state to the one it was reached from.
type pathNode struct {
	cmd    keypad.Command
	parent *pathNode
}

type solveEntry struct {
	state numericState
	path  *pathNode
}

// Solve returns the minimal number of human presses needed to type code on
// the numeric pad through depth directional relays.
//
// Returns ErrEmptyCode, ErrInvalidCode or ErrMissingTerminator when code
// cannot be typed, and ErrBadDepth when depth is outside [0, MaxDepth].
// Complexity: O(|code| · 11 · 5 · log) heap work plus at most 25·depth
// Engine searches on a cold cache.
func (s *Solver) Solve(code string, depth int) (int64, error) {
	cost, _, err := s.solve(code, depth, false)
	return cost, err
}

// Path is Solve that also returns one cheapest command sequence issued to
// the numeric pad. Replaying it with keypad.Layout.Type from 'A' yields code.
func (s *Solver) Path(code string, depth int) ([]keypad.Command, int64, error) {
	cost, node, err := s.solve(code, depth, true)
	if err != nil {
		return nil, 0, err
	}
	var cmds []keypad.Command
	for n := node; n != nil; n = n.parent {
		cmds = append(cmds, n.cmd)
	}
	for i, j := 0, len(cmds)-1; i < j; i, j = i+1, j-1 {
		cmds[i], cmds[j] = cmds[j], cmds[i]
	}

	return cmds, cost, nil
}

func (s *Solver) solve(code string, depth int, trackPath bool) (int64, *pathNode, error) {
	if err := ValidateCode(code); err != nil {
		return 0, nil, err
	}
	if depth < 0 || depth > s.options.MaxDepth {
		return 0, nil, fmt.Errorf("%w: %d not in [0, %d]", ErrBadDepth, depth, s.options.MaxDepth)
	}
	before := s.engine.Expansions()
	cost, path := s.search(code, depth, trackPath)

	s.options.Logger.Debug("solved code",
		"code", code,
		"depth", depth,
		"cost", cost,
		"expansions", s.engine.Expansions()-before,
		"cache_entries", s.engine.cache.Len(),
	)
	return cost, path, nil
}

func (s *Solver) search(code string, depth int, trackPath bool) (int64, *pathNode) {
	// 1) Every code starts with the numeric cursor on 'A' and the first
	//    relay resting on its own 'A'.
	pad := keypad.NumericLayout()
	pq := make(searchPQ[solveEntry], 0, 64)
	heap.Push(&pq, &searchItem[solveEntry]{
		state: solveEntry{state: numericState{pos: pad.MustPosOf(Terminator), last: keypad.Activate}},
	})
	visited := make(map[numericState]bool, 64)
	var seq uint64

	for pq.Len() > 0 {
		// 2) Pop the cheapest entry; the first fully typed code is optimal.
		item := heap.Pop(&pq).(*searchItem[solveEntry])
		u := item.state.state
		if u.matched == len(code) {
			return item.cost, item.state.path
		}
		// 3) Skip stale duplicates left by lazy decrease-key.
		if visited[u] {
			continue
		}
		visited[u] = true

		// 4) Expand all five commands on the numeric pad.
		for _, cmd := range keypad.Commands {
			next, emitted, err := pad.Apply(u.pos, cmd)
			if err != nil {
				continue
			}
			v := numericState{pos: next, last: cmd, matched: u.matched}
			if cmd == keypad.Activate {
				// A wrong digit can never be undone, so only the next
				// expected character may be pressed.
				if emitted != code[u.matched] {
					continue
				}
				v.matched++
			}
			if visited[v] {
				continue
			}
			// 5) Record the step for Path, then price it as one press of the
			//    first relay, which depends on the command it issued before.
			var path *pathNode
			if trackPath {
				path = &pathNode{cmd: cmd, parent: item.state.path}
			}
			seq++
			heap.Push(&pq, &searchItem[solveEntry]{
				cost:  item.cost + s.engine.Cost(cmd, u.last, depth),
				seq:   seq,
				state: solveEntry{state: v, path: path},
			})
		}
	}

	panic(fmt.Errorf("%w: code %q at depth %d", ErrUnreachable, code, depth))
}

// ValidateCode reports whether code can be typed on the numeric pad: it must
// be non-empty, use only numeric-pad characters and end in 'A'.
func ValidateCode(code string) error {
	if code == "" {
		return ErrEmptyCode
	}
	pad := keypad.NumericLayout()
	for i := 0; i < len(code); i++ {
		if !pad.Contains(code[i]) {
			return fmt.Errorf("%w: %q at offset %d in %q", ErrInvalidCode, code[i], i, code)
		}
	}
	if code[len(code)-1] != Terminator {
		return fmt.Errorf("%w: %q", ErrMissingTerminator, code)
	}
	return nil
}
