package board

import "fmt"

// Round pairs a board with a target and the cell that target lives on. A
// Round is constructed once per puzzle and is immutable during solving; it
// owns its Board (cloned on construction) so solvers never observe a board
// mutated out from under them.
type Round struct {
	board      *Board
	target     Target
	targetCell Position
}

// NewRound builds a Round, cloning board. It rejects a target cell outside
// the board, matching the "Target absent from board" fatal error kind --
// resolving a Target symbol to a cell is the caller's job (board loading is
// out of the solver's scope); NewRound only validates the cell it is given.
func NewRound(b *Board, target Target, targetCell Position) (*Round, error) {
	n := b.Size()
	if targetCell.Column() < 0 || targetCell.Column() >= n || targetCell.Row() < 0 || targetCell.Row() >= n {
		return nil, fmt.Errorf("board: target cell %s is outside the %dx%d board", targetCell, n, n)
	}
	return &Round{board: b.Clone(), target: target, targetCell: targetCell}, nil
}

// Board returns the round's board.
func (r *Round) Board() *Board {
	return r.board
}

// Target returns the round's target.
func (r *Round) Target() Target {
	return r.target
}

// TargetCell returns the cell the round's target lives on.
func (r *Round) TargetCell() Position {
	return r.targetCell
}

// TargetReached reports whether positions satisfies the round's target: for
// a colored target, the matching robot must be on the target cell; for the
// Spiral target, any robot on the target cell satisfies it.
func (r *Round) TargetReached(positions RobotPositions) bool {
	if r.target.Spiral {
		return positions.ContainsAny(r.targetCell)
	}
	return positions.ContainsColor(r.target.Color, r.targetCell)
}
