package solver

import (
	"github.com/dgraph-io/ristretto/v2"

	"github.com/tomas-reyes/ricochet/internal/board"
)

// oracleCacheCost is the admission cost charged per cached oracle: a rough
// stand-in for an N*N grid of ints, since ristretto sizes its eviction
// policy in cost units rather than item counts.
const oracleCacheCost = 1

// OracleCache memoizes LeastMovesBoard computation across repeated solves
// against the same (board, target) pair, the access pattern a bulk
// solution-generator produces when it iterates every target over a fixed
// board. A single OracleCache is safe to share across concurrently running
// solvers; ristretto's Cache is itself safe for concurrent use.
type OracleCache struct {
	cache *ristretto.Cache[uint64, *LeastMovesBoard]
}

// NewOracleCache creates a cache admitting up to maxEntries oracles.
func NewOracleCache(maxEntries int64) (*OracleCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, *LeastMovesBoard]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &OracleCache{cache: cache}, nil
}

// oracleCacheKey combines a board's wall fingerprint with its target cell,
// since the oracle depends on both: two rounds with identical walls but
// different target cells need distinct entries.
func oracleCacheKey(b *board.Board, targetCell board.Position) uint64 {
	return b.Fingerprint() ^ uint64(targetCell)<<1
}

// GetOrCompute returns the cached oracle for (b, targetCell), computing and
// storing it on a miss.
func (c *OracleCache) GetOrCompute(b *board.Board, targetCell board.Position) *LeastMovesBoard {
	key := oracleCacheKey(b, targetCell)
	if lb, ok := c.cache.Get(key); ok {
		return lb
	}

	lb := NewLeastMovesBoard(b, targetCell)
	c.cache.Set(key, lb, oracleCacheCost)
	return lb
}

// Close releases the cache's background resources.
func (c *OracleCache) Close() {
	c.cache.Close()
}
