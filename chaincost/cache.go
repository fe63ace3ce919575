package chaincost

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/relaypad/keypad"
)

// Key identifies one memoized cost: press Goal on a relay whose cursor rests
// on Prev, Level pads above the human.
type Key struct {
	Goal  keypad.Command
	Prev  keypad.Command
	Level int
}

// String renders the key as "prev→goal@level".
func (k Key) String() string {
	return fmt.Sprintf("%s→%s@%d", k.Prev, k.Goal, k.Level)
}

// CacheStats counts lookups served from memory and lookups that missed.
type CacheStats struct {
	Hits   int64
	Misses int64
}

// Cache memoizes Engine costs. Entries are never evicted; the table is bounded
// by 5·5·MaxDepth. The zero value is not usable; call NewCache.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]int64
	stats   CacheStats
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]int64)}
}

// Get returns the cost stored under k.
func (c *Cache) Get(k Key) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[k]
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return v, ok
}

// Put stores cost under k unless an entry already exists, and returns the
// value held by the cache afterwards.
func (c *Cache) Put(k Key, cost int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[k]; ok {
		return v
	}
	c.entries[k] = cost
	return cost
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns a snapshot of the hit/miss counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}
