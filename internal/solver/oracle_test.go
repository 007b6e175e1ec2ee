package solver

import (
	"testing"

	"github.com/tomas-reyes/ricochet/internal/board"
)

func gridOf(lb *LeastMovesBoard, n int) [][]int {
	out := make([][]int, n)
	for c := 0; c < n; c++ {
		out[c] = make([]int, n)
		for r := 0; r < n; r++ {
			out[c][r] = lb.At(board.NewPosition(c, r))
		}
	}
	return out
}

func assertGrid(t *testing.T, got, want [][]int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("grid has %d columns, want %d", len(got), len(want))
	}
	for c := range want {
		if len(got[c]) != len(want[c]) {
			t.Fatalf("column %d has %d rows, want %d", c, len(got[c]), len(want[c]))
		}
		for r := range want[c] {
			if got[c][r] != want[c][r] {
				t.Errorf("grid[%d][%d] = %d, want %d", c, r, got[c][r], want[c][r])
			}
		}
	}
}

func TestLeastMovesBoardEmptyEnclosed(t *testing.T) {
	b := board.NewBoard(2).WallEnclosure()
	lb := NewLeastMovesBoard(b, board.NewPosition(0, 0))

	assertGrid(t, gridOf(lb, 2), [][]int{{0, 1}, {1, 2}})
}

func TestLeastMovesBoardWalled(t *testing.T) {
	b := board.NewBoard(3).WallEnclosure()
	b.SetHorizontalLine(0, 0, 1)
	b.SetHorizontalLine(1, 1, 1)
	b.SetVerticalLine(1, 1, 1)

	lb := NewLeastMovesBoard(b, board.NewPosition(0, 0))

	assertGrid(t, gridOf(lb, 3), [][]int{{0, 3, 3}, {1, 2, 3}, {1, 2, 2}})
}

func TestMinMovesColoredTarget(t *testing.T) {
	b := board.NewBoard(4).WallEnclosure()
	lb := NewLeastMovesBoard(b, board.NewPosition(0, 0))

	positions := board.NewRobotPositions([2]int{3, 3}, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2})
	if got := lb.MinMoves(positions, board.ColoredTarget(board.Blue, board.Circle)); got != 0 {
		t.Errorf("Blue already on target: MinMoves = %d, want 0", got)
	}
	if got := lb.MinMoves(positions, board.ColoredTarget(board.Red, board.Circle)); got != 2 {
		t.Errorf("Red in the opposite corner, two slides from target: MinMoves = %d, want 2", got)
	}
}

func TestMinMovesSpiralTakesBestRobot(t *testing.T) {
	b := board.NewBoard(4).WallEnclosure()
	lb := NewLeastMovesBoard(b, board.NewPosition(0, 0))

	positions := board.NewRobotPositions([2]int{3, 3}, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2})
	if got := lb.MinMoves(positions, board.SpiralTarget); got != 0 {
		t.Errorf("spiral target with Blue already there: MinMoves = %d, want 0", got)
	}
}

func TestIsUnsolvableWhenTargetWalledOff(t *testing.T) {
	b := board.NewBoard(4).WallEnclosure()
	// Seal the target cell (0,0) off from the rest of the board entirely.
	b.SetHorizontalLine(0, 0, 1)
	b.SetVerticalLine(0, 0, 1)
	lb := NewLeastMovesBoard(b, board.NewPosition(0, 0))

	positions := board.NewRobotPositions([2]int{3, 3}, [2]int{3, 0}, [2]int{0, 3}, [2]int{2, 2})
	if !lb.IsUnsolvable(positions, board.ColoredTarget(board.Red, board.Circle)) {
		t.Error("expected the sealed-off target to be reported unsolvable")
	}
}
