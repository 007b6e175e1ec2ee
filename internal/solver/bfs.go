package solver

import "github.com/tomas-reyes/ricochet/internal/board"

// BFSSolver finds a shortest move sequence by expanding the configuration
// space level by level, so the first configuration found to satisfy the
// round's target is guaranteed optimal.
type BFSSolver struct {
	visited *VisitedNodes
}

// NewBFSSolver creates a solver with its own visited-nodes table. A solver
// value is reusable across independent Solve calls; each call clears the
// table before searching.
func NewBFSSolver() *BFSSolver {
	return &BFSSolver{visited: NewVisitedNodes(1 << 16)}
}

// NodesExplored returns the number of configurations the most recent Solve
// call recorded in its visited-nodes table.
func (s *BFSSolver) NodesExplored() int {
	return s.visited.Count()
}

// Solve returns an optimal Solution for round starting from start. If start
// already satisfies the target, the returned Solution has an empty Path.
func (s *BFSSolver) Solve(round *board.Round, start board.RobotPositions) Solution {
	s.visited.Clear()

	if round.TargetReached(start) {
		return Solution{Start: start, End: start}
	}

	current := make([]board.RobotPositions, 0, 4096)
	current = append(current, start)
	next := make([]board.RobotPositions, 0, 4096)

	b := round.Board()

	for moveN := 0; ; moveN++ {
		reached, found := board.RobotPositions{}, false

		for _, pos := range current {
			for candidate, edge := range pos.Successors(b) {
				if !s.visited.AddNode(candidate, pos, moveN+1, edge) {
					continue
				}
				if round.TargetReached(candidate) {
					reached, found = candidate, true
					break
				}
				next = append(next, candidate)
			}
			if found {
				break
			}
		}

		if found {
			startPos, path := s.visited.PathTo(reached)
			return Solution{Start: startPos, End: reached, Path: path}
		}

		if len(next) == 0 {
			// The configuration space is finite and Round.TargetReached is
			// satisfiable somewhere in it whenever the oracle reports the
			// target solvable; an exhausted frontier here means the target
			// cannot be reached from start at all.
			return Solution{Start: start, End: start}
		}

		current = current[:0]
		current, next = next, current
	}
}
