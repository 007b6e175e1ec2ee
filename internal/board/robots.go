package board

import (
	"fmt"
	"iter"
)

// RobotPositions holds the four robots' cells. Two RobotPositions are equal
// iff all four per-color cells are equal; robots are not interchangeable,
// so this is a plain struct comparison rather than a set comparison.
type RobotPositions struct {
	Red, Blue, Green, Yellow Position
}

// NewRobotPositions builds a RobotPositions from four (column, row) pairs
// in the fixed order Red, Blue, Green, Yellow.
func NewRobotPositions(red, blue, green, yellow [2]int) RobotPositions {
	return RobotPositions{
		Red:    NewPosition(red[0], red[1]),
		Blue:   NewPosition(blue[0], blue[1]),
		Green:  NewPosition(green[0], green[1]),
		Yellow: NewPosition(yellow[0], yellow[1]),
	}
}

// At returns the cell the robot of color c occupies.
func (p RobotPositions) At(c Color) Position {
	switch c {
	case Red:
		return p.Red
	case Blue:
		return p.Blue
	case Green:
		return p.Green
	case Yellow:
		return p.Yellow
	default:
		panic(fmt.Sprintf("board: invalid color %d", uint8(c)))
	}
}

// withRobot returns a copy of p with the robot of color c moved to pos.
func (p RobotPositions) withRobot(c Color, pos Position) RobotPositions {
	switch c {
	case Red:
		p.Red = pos
	case Blue:
		p.Blue = pos
	case Green:
		p.Green = pos
	case Yellow:
		p.Yellow = pos
	default:
		panic(fmt.Sprintf("board: invalid color %d", uint8(c)))
	}
	return p
}

// ContainsAny reports whether any robot occupies pos.
func (p RobotPositions) ContainsAny(pos Position) bool {
	return pos == p.Red || pos == p.Blue || pos == p.Green || pos == p.Yellow
}

// ContainsColor reports whether the robot of color c occupies pos.
func (p RobotPositions) ContainsColor(c Color, pos Position) bool {
	return p.At(c) == pos
}

// Pack encodes the four cells into a single uint64 (16 bits per cell, in
// Red/Blue/Green/Yellow order), giving a cheap, collision-free key for the
// visited-nodes table and the solved-position book.
func (p RobotPositions) Pack() uint64 {
	return uint64(p.Red)<<48 | uint64(p.Blue)<<32 | uint64(p.Green)<<16 | uint64(p.Yellow)
}

func (p RobotPositions) String() string {
	return fmt.Sprintf("Red: %s\nBlue: %s\nGreen: %s\nYellow: %s",
		displayPos(p.Red), displayPos(p.Blue), displayPos(p.Green), displayPos(p.Yellow))
}

// displayPos renders a 1-indexed cell for humans, matching the user-facing
// display convention: coordinates are zero-indexed internally, displays add 1.
func displayPos(pos Position) string {
	return fmt.Sprintf("%d,%d", pos.Column()+1, pos.Row()+1)
}

// reachableOneStep reports whether a robot at pos can advance one cell in
// direction d: there is no wall in the way and no other robot occupies the
// destination cell.
func (p RobotPositions) reachableOneStep(b *Board, pos Position, d Direction) bool {
	return !b.IsAdjacentToWall(pos, d) && !p.ContainsAny(pos.Step(d, b.Size()))
}

// MoveInDirection slides robot as far as possible in direction d, stopping
// when it would hit a wall or another robot. A slide that cannot advance at
// all is a no-op: the returned value equals p.
func (p RobotPositions) MoveInDirection(b *Board, robot Color, d Direction) RobotPositions {
	temp := p.At(robot)
	for p.reachableOneStep(b, temp, d) {
		temp = temp.Step(d, b.Size())
	}
	return p.withRobot(robot, temp)
}

// Edge labels the move that produced a successor configuration: which
// robot moved, and in which direction.
type Edge struct {
	Robot     Color
	Direction Direction
}

// Successors yields every configuration reachable from p by sliding exactly
// one robot in one direction, paired with the edge that produced it,
// excluding no-op slides. Enumeration order is Colors x Directions, fixed
// so that repeated solves over identical inputs are reproducible.
func (p RobotPositions) Successors(b *Board) iter.Seq2[RobotPositions, Edge] {
	return func(yield func(RobotPositions, Edge) bool) {
		for _, robot := range Colors {
			for _, dir := range Directions {
				next := p.MoveInDirection(b, robot, dir)
				if next == p {
					continue
				}
				if !yield(next, Edge{Robot: robot, Direction: dir}) {
					return
				}
			}
		}
	}
}
