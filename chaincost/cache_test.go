package chaincost_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relaypad/chaincost"
	"github.com/katalvlaran/relaypad/keypad"
)

// TestCache_PutFirstWins checks insert-if-absent semantics and counters.
func TestCache_PutFirstWins(t *testing.T) {
	c := chaincost.NewCache()
	k := chaincost.Key{Goal: keypad.Left, Prev: keypad.Activate, Level: 2}

	_, ok := c.Get(k)
	require.False(t, ok)
	require.Equal(t, int64(10), c.Put(k, 10))
	require.Equal(t, int64(10), c.Put(k, 99), "existing entry must be kept")

	v, ok := c.Get(k)
	require.True(t, ok)
	require.Equal(t, int64(10), v)
	require.Equal(t, 1, c.Len())
	require.Equal(t, chaincost.CacheStats{Hits: 1, Misses: 1}, c.Stats())
	require.Equal(t, "A→<@2", k.String())
}

// TestConcurrentSolves shares one cache between goroutines solving different
// codes and checks every result matches a sequential solve.
func TestConcurrentSolves(t *testing.T) {
	codes := []string{"029A", "980A", "179A", "456A", "379A"}
	want := make(map[string]int64, len(codes))
	seq := chaincost.NewSolver()
	for _, code := range codes {
		cost, err := seq.Solve(code, 25)
		require.NoError(t, err)
		want[code] = cost
	}

	type outcome struct {
		code string
		cost int64
		err  error
	}
	shared := chaincost.NewSolver()
	const rounds = 8
	outcomes := make([]outcome, rounds*len(codes))
	var wg sync.WaitGroup
	wg.Add(len(outcomes))
	for i := range outcomes {
		code := codes[i%len(codes)]
		go func() {
			defer wg.Done()
			cost, err := shared.Solve(code, 25)
			outcomes[i] = outcome{code: code, cost: cost, err: err}
		}()
	}
	wg.Wait()

	// Assertions run on the test goroutine once every solve has returned.
	for _, o := range outcomes {
		require.NoError(t, o.err, o.code)
		require.Equal(t, want[o.code], o.cost, o.code)
	}

	// Racing goroutines may repeat a search but never store a second entry.
	require.Equal(t, seq.Cache().Len(), shared.Cache().Len())
}
