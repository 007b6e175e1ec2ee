package board

import "testing"

func enclosedBoard(n int) *Board {
	return NewBoard(n).WallEnclosure()
}

func TestMoveInDirectionStopsAtBorderWall(t *testing.T) {
	b := enclosedBoard(8)
	pos := NewRobotPositions([2]int{0, 0}, [2]int{7, 7}, [2]int{3, 3}, [2]int{0, 7})

	moved := pos.MoveInDirection(b, Red, Right)
	if got := moved.At(Red); got.Column() != 7 || got.Row() != 0 {
		t.Fatalf("Red slid Right to %s, want (7,0)", got)
	}
}

func TestMoveInDirectionStopsOnOtherRobot(t *testing.T) {
	b := enclosedBoard(8)
	// Green sits at (5,3); Red at (0,3) sliding Right must stop just left of Green.
	pos := NewRobotPositions([2]int{0, 3}, [2]int{7, 7}, [2]int{5, 3}, [2]int{0, 7})

	moved := pos.MoveInDirection(b, Red, Right)
	if got := moved.At(Red); got.Column() != 4 || got.Row() != 3 {
		t.Fatalf("Red slid Right to %s, want (4,3) (blocked by Green at (5,3))", got)
	}
}

func TestMoveInDirectionNoOpWhenAlreadyBlocked(t *testing.T) {
	b := enclosedBoard(8)
	pos := NewRobotPositions([2]int{0, 0}, [2]int{7, 7}, [2]int{3, 3}, [2]int{0, 7})

	moved := pos.MoveInDirection(b, Red, Up)
	if moved != pos {
		t.Fatalf("Red already against the top wall should not move, got %s", moved.At(Red))
	}
	if moved != pos.MoveInDirection(b, Red, Left) {
		t.Fatalf("Red already against the left wall should not move either")
	}
}

func TestMoveInDirectionInteriorWall(t *testing.T) {
	b := enclosedBoard(8)
	b.SetHorizontalLine(3, 3, 1) // wall below (3,3)
	pos := NewRobotPositions([2]int{3, 0}, [2]int{7, 7}, [2]int{0, 0}, [2]int{0, 7})

	moved := pos.MoveInDirection(b, Red, Down)
	if got := moved.At(Red); got.Column() != 3 || got.Row() != 3 {
		t.Fatalf("Red slid Down to %s, want (3,3) (stopped by interior wall)", got)
	}
}

func TestSuccessorsExcludeNoOps(t *testing.T) {
	b := enclosedBoard(8)
	// All four robots jammed into corners: every robot is blocked in at
	// least one direction by either the border or another robot, but none
	// is blocked in all four.
	pos := NewRobotPositions([2]int{0, 0}, [2]int{7, 0}, [2]int{0, 7}, [2]int{7, 7})

	seen := map[Edge]RobotPositions{}
	for next, edge := range pos.Successors(b) {
		if next == pos {
			t.Fatalf("Successors must exclude no-op slides, got edge %+v producing no change", edge)
		}
		seen[edge] = next
	}
	if len(seen) == 0 {
		t.Fatal("expected at least one successor")
	}
}

func TestSuccessorsDeterministicOrder(t *testing.T) {
	b := enclosedBoard(8)
	pos := NewRobotPositions([2]int{1, 1}, [2]int{6, 1}, [2]int{1, 6}, [2]int{6, 6})

	var first, second []Edge
	for _, edge := range pos.Successors(b) {
		first = append(first, edge)
	}
	for _, edge := range pos.Successors(b) {
		second = append(second, edge)
	}
	if len(first) != len(second) {
		t.Fatalf("successor count differs across runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("successor order differs at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPackRoundTripsViaEquality(t *testing.T) {
	a := NewRobotPositions([2]int{1, 2}, [2]int{3, 4}, [2]int{5, 6}, [2]int{7, 8})
	b := NewRobotPositions([2]int{1, 2}, [2]int{3, 4}, [2]int{5, 6}, [2]int{7, 8})
	c := NewRobotPositions([2]int{0, 2}, [2]int{3, 4}, [2]int{5, 6}, [2]int{7, 8})

	if a.Pack() != b.Pack() {
		t.Error("equal RobotPositions must pack identically")
	}
	if a.Pack() == c.Pack() {
		t.Error("different RobotPositions must pack differently")
	}
}
