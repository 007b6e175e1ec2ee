package solver

import (
	"testing"

	"github.com/tomas-reyes/ricochet/internal/board"
)

func TestOracleCacheReturnsEquivalentOracle(t *testing.T) {
	cache, err := NewOracleCache(64)
	if err != nil {
		t.Fatalf("NewOracleCache failed: %v", err)
	}
	defer cache.Close()

	b := board.NewBoard(4).WallEnclosure()
	target := board.NewPosition(0, 0)

	first := cache.GetOrCompute(b, target)
	second := cache.GetOrCompute(b, target)

	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			pos := board.NewPosition(c, r)
			if first.At(pos) != second.At(pos) {
				t.Fatalf("cached oracle disagrees with a fresh computation at %s", pos)
			}
		}
	}
}

func TestIDDFSWithCacheMatchesIDDFSWithout(t *testing.T) {
	round := smallRound(t, board.ColoredTarget(board.Red, board.Circle), board.NewPosition(7, 0))
	start := board.NewRobotPositions([2]int{0, 0}, [2]int{7, 7}, [2]int{3, 3}, [2]int{0, 7})

	cache, err := NewOracleCache(64)
	if err != nil {
		t.Fatalf("NewOracleCache failed: %v", err)
	}
	defer cache.Close()

	plain, ok1 := NewIDDFSSolver().Solve(round, start)
	cached, ok2 := NewIDDFSSolverWithCache(cache).Solve(round, start)

	if !ok1 || !ok2 {
		t.Fatalf("expected both solves to succeed, got %v and %v", ok1, ok2)
	}
	if plain.Moves() != cached.Moves() {
		t.Fatalf("cached solver found %d moves, uncached found %d", cached.Moves(), plain.Moves())
	}
}
