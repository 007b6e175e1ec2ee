package solver

import "github.com/tomas-reyes/ricochet/internal/board"

// LeastMovesBoard holds, for every cell, a lower bound on the number of
// moves a single robot starting there would need to reach a fixed target,
// ignoring every other robot. It is computed once per (board, target) pair
// by a multi-source reverse BFS seeded at the target cell.
//
// The relaxation at each expansion round walks every cell a slide from the
// current frontier could pass through, not just the cell a slide would stop
// at: a cell a robot only passes over gets credited the same move count as
// a cell it could stop at, because a second robot parked there would stop
// the slide there instead. This makes the bound deliberately looser than
// the true "stops only" reachability graph, but it remains admissible: it
// never overestimates the true cost of any move sequence, which is all
// IDDFS pruning requires.
type LeastMovesBoard struct {
	grid   [][]int
	target board.Position
	n      int
}

// NewLeastMovesBoard computes the oracle for b and targetCell.
func NewLeastMovesBoard(b *board.Board, targetCell board.Position) *LeastMovesBoard {
	n := b.Size()
	// One past the largest distance any reachable cell could need, so that
	// IsUnsolvable's "min_moves > N*N" bound reliably flags a cell the
	// relaxation loop never touched.
	unreachable := n*n + 1
	grid := make([][]int, n)
	for c := range grid {
		grid[c] = make([]int, n)
		for r := range grid[c] {
			grid[c][r] = unreachable
		}
	}

	grid[targetCell.Column()][targetCell.Row()] = 0

	current := make([]board.Position, 0, 256)
	current = append(current, targetCell)
	next := make([]board.Position, 0, 256)

	for moveN := 1; ; moveN++ {
		for _, pos := range current {
			for _, dir := range board.Directions {
				check := pos
				for {
					if b.IsAdjacentToWall(check, dir) {
						break
					}
					check = check.Step(dir, n)
					if moveN < grid[check.Column()][check.Row()] {
						grid[check.Column()][check.Row()] = moveN
						next = append(next, check)
					}
				}
			}
		}

		if len(next) == 0 {
			break
		}
		current, next = next, current[:0]
	}

	return &LeastMovesBoard{grid: grid, target: targetCell, n: n}
}

// At returns the lower bound on moves needed to reach the target from pos,
// considering only that one robot and no others.
func (lb *LeastMovesBoard) At(pos board.Position) int {
	return lb.grid[pos.Column()][pos.Row()]
}

// MinMoves returns the lower bound on moves needed to satisfy target given
// the current robot positions: the single robot's bound for a colored
// target, or the minimum bound across all four robots for the spiral target.
func (lb *LeastMovesBoard) MinMoves(positions board.RobotPositions, target board.Target) int {
	if target.Spiral {
		best := lb.At(positions.At(board.Red))
		for _, c := range board.Colors[1:] {
			if m := lb.At(positions.At(c)); m < best {
				best = m
			}
		}
		return best
	}
	return lb.At(positions.At(target.Color))
}

// IsUnsolvable reports whether target is provably unreachable from
// positions: its lower bound exceeds every cell count on the board, which
// only happens when no slide sequence, however long, can reach the target
// cell at all (it is walled off from every other cell).
func (lb *LeastMovesBoard) IsUnsolvable(positions board.RobotPositions, target board.Target) bool {
	return lb.MinMoves(positions, target) > lb.n*lb.n
}
