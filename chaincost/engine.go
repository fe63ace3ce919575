package chaincost

import (
	"container/heap"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/relaypad/keypad"
)

// Engine computes memoized per-level relay costs.
type Engine struct {
	options    Options
	cache      *Cache
	expansions atomic.Int64
}

// NewEngine returns an Engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	cfg := buildOptions(opts)
	return &Engine{options: cfg, cache: cfg.Cache}
}

// Cache returns the memo table the engine writes into.
func (e *Engine) Cache() *Cache { return e.cache }

// Expansions returns how many searches the engine has run, i.e. how many
// cache entries it had to compute rather than look up.
func (e *Engine) Expansions() int64 { return e.expansions.Load() }

// relayState is a cursor on the directional pad plus the last command issued
// to it from one level up. done marks the goal having been pressed.
type relayState struct {
	pos  keypad.Position
	last keypad.Command
	done bool
}

// Cost returns the minimal number of human presses that move a directional
// relay cursor, level pads above the human, from key prev to key goal and
// press goal.
//
// Level 0 is the human's own pad: one press, always. Above that, Cost runs a
// uniform-cost search over (position, last command) on the directional pad,
// pricing each command c issued after l as Cost(c, l, level-1), and memoizes
// the result.
//
// Panics with ErrNegativeLevel for level < 0 and with ErrUnreachable if the
// search exhausts its frontier.
func (e *Engine) Cost(goal, prev keypad.Command, level int) int64 {
	if level < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeLevel, level))
	}
	if level == 0 {
		return 1
	}
	key := Key{Goal: goal, Prev: prev, Level: level}
	if cost, ok := e.cache.Get(key); ok {
		return cost
	}
	e.expansions.Add(1)

	return e.cache.Put(key, e.search(goal, prev, level))
}

func (e *Engine) search(goal, prev keypad.Command, level int) int64 {
	// 1) Locate the start and goal keys on the directional pad.
	pad := keypad.DirectionalLayout()
	target := pad.MustPosOf(goal.Byte())

	// 2) Seed the heap with the cursor on prev. The relay one level up rests
	//    on 'A' after its last press, so the last command starts as Activate.
	pq := make(searchPQ[relayState], 0, 16)
	heap.Push(&pq, &searchItem[relayState]{
		state: relayState{pos: pad.MustPosOf(prev.Byte()), last: keypad.Activate},
	})
	visited := make(map[relayState]bool, 16)
	var seq uint64

	for pq.Len() > 0 {
		// 3) Pop the cheapest entry. A done state means goal was pressed, and
		//    no cheaper way to press it remains in the heap.
		item := heap.Pop(&pq).(*searchItem[relayState])
		u := item.state
		if u.done {
			return item.cost
		}

		// 4) Skip stale duplicates left by lazy decrease-key.
		if visited[u] {
			continue
		}
		visited[u] = true

		// 5) Try every command. Moves off the pad or into the gap fail in
		//    Apply and are dropped.
		for _, cmd := range keypad.Commands {
			next, _, err := pad.Apply(u.pos, cmd)
			if err != nil {
				continue
			}
			v := relayState{pos: next, last: cmd}
			if cmd == keypad.Activate {
				// Pressing anything but goal would emit a wrong key below.
				if next != target {
					continue
				}
				v.done = true
			}
			if visited[v] {
				continue
			}

			// 6) Price the command one level up, given the command issued
			//    before it there, and push the successor.
			seq++
			heap.Push(&pq, &searchItem[relayState]{
				cost:  item.cost + e.Cost(cmd, u.last, level-1),
				seq:   seq,
				state: v,
			})
		}
	}

	panic(fmt.Errorf("%w: %s→%s at level %d", ErrUnreachable, prev, goal, level))
}
