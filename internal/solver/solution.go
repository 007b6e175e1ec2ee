package solver

import "github.com/tomas-reyes/ricochet/internal/board"

// Solution is the result of a solve: the configuration the search started
// from, the configuration it ended on (which satisfies the round's target),
// and the sequence of edges connecting them. An empty Path means the start
// configuration already satisfied the target.
type Solution struct {
	Start board.RobotPositions
	End   board.RobotPositions
	Path  []board.Edge
}

// Moves returns the number of slides in the solution.
func (s Solution) Moves() int {
	return len(s.Path)
}
