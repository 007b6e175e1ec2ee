package solver

import "github.com/tomas-reyes/ricochet/internal/board"

// IDDFSSolver finds a shortest move sequence by repeated depth-limited
// search with a growing depth budget, pruning branches the distance oracle
// proves cannot reach the target within the remaining budget. It uses far
// less memory than BFSSolver at the cost of revisiting shallow
// configurations once per depth iteration.
type IDDFSSolver struct {
	visited *VisitedNodes
	oracles *OracleCache
}

// NewIDDFSSolver creates a solver with its own visited-nodes table and no
// oracle cache: every Solve call recomputes its LeastMovesBoard from
// scratch.
func NewIDDFSSolver() *IDDFSSolver {
	return &IDDFSSolver{visited: NewVisitedNodes(1 << 14)}
}

// NewIDDFSSolverWithCache creates a solver that looks up its oracle in
// cache before computing one, useful when a caller solves many rounds
// sharing a board (a bulk generator iterating targets on one layout).
func NewIDDFSSolverWithCache(cache *OracleCache) *IDDFSSolver {
	return &IDDFSSolver{visited: NewVisitedNodes(1 << 14), oracles: cache}
}

// NodesExplored returns the number of configurations visited during the
// depth iteration the most recent Solve call finished on. Earlier,
// exhausted depth iterations are cleared and not counted, since each is
// fully superseded by the next once it fails to find the target.
func (s *IDDFSSolver) NodesExplored() int {
	return s.visited.Count()
}

// Solve returns an optimal Solution for round starting from start, or a
// zero-length Solution equal to start if start already satisfies the
// target, or a zero-length Solution equal to start with ok false if the
// oracle proves the target unreachable.
func (s *IDDFSSolver) Solve(round *board.Round, start board.RobotPositions) (Solution, bool) {
	s.visited.Clear()

	if round.TargetReached(start) {
		return Solution{Start: start, End: start}, true
	}

	target := round.Target()
	oracle := s.oracle(round)
	if oracle.IsUnsolvable(start, target) {
		return Solution{Start: start, End: start}, false
	}

	b := round.Board()

	for depth := oracle.MinMoves(start, target); ; depth++ {
		s.visited.Clear()
		if terminal, ok := s.depthLimited(b, round, oracle, start, 0, depth); ok {
			startPos, path := s.visited.PathTo(terminal)
			return Solution{Start: startPos, End: terminal, Path: path}, true
		}
	}
}

// depthLimited searches from pos with remainingDepth slides left, returning
// the configuration that satisfies the target and true, or the zero value
// and false if no such configuration is reachable within budget.
func (s *IDDFSSolver) depthLimited(
	b *board.Board,
	round *board.Round,
	oracle *LeastMovesBoard,
	pos board.RobotPositions,
	movesUsed, remainingDepth int,
) (board.RobotPositions, bool) {
	if remainingDepth == 0 {
		if round.TargetReached(pos) {
			return pos, true
		}
		return board.RobotPositions{}, false
	}

	for next, edge := range pos.Successors(b) {
		if remainingDepth-1 < oracle.MinMoves(next, round.Target()) {
			continue
		}
		if !s.visited.AddNode(next, pos, movesUsed+1, edge) {
			continue
		}
		if terminal, ok := s.depthLimited(b, round, oracle, next, movesUsed+1, remainingDepth-1); ok {
			return terminal, true
		}
	}

	return board.RobotPositions{}, false
}

func (s *IDDFSSolver) oracle(round *board.Round) *LeastMovesBoard {
	if s.oracles == nil {
		return NewLeastMovesBoard(round.Board(), round.TargetCell())
	}
	return s.oracles.GetOrCompute(round.Board(), round.TargetCell())
}
