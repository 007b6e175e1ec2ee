package cli

import (
	"fmt"
	"strings"

	"github.com/tomas-reyes/ricochet/internal/board"
)

func buildRound(req Request) (*board.Round, board.RobotPositions, error) {
	fields := make([][]board.Field, len(req.Walls))
	for i, row := range req.Walls {
		fields[i] = make([]board.Field, len(row))
		for j, f := range row {
			fields[i][j] = board.Field{WallRight: f.WallRight, WallDown: f.WallDown}
		}
	}

	b, err := board.NewBoardFromGrid(fields)
	if err != nil {
		return nil, board.RobotPositions{}, fmt.Errorf("cli: %w", err)
	}

	target, err := parseTarget(req.Target)
	if err != nil {
		return nil, board.RobotPositions{}, fmt.Errorf("cli: %w", err)
	}

	targetCell := board.NewPosition(req.TargetCell.Column, req.TargetCell.Row)
	round, err := board.NewRound(b, target, targetCell)
	if err != nil {
		return nil, board.RobotPositions{}, fmt.Errorf("cli: %w", err)
	}

	start := board.NewRobotPositions(
		[2]int{req.Red.Column, req.Red.Row},
		[2]int{req.Blue.Column, req.Blue.Row},
		[2]int{req.Green.Column, req.Green.Row},
		[2]int{req.Yellow.Column, req.Yellow.Row},
	)

	return round, start, nil
}

func parseTarget(t TargetSpec) (board.Target, error) {
	if t.Spiral {
		return board.SpiralTarget, nil
	}
	color, err := parseColor(t.Color)
	if err != nil {
		return board.Target{}, err
	}
	symbol, err := parseSymbol(t.Symbol)
	if err != nil {
		return board.Target{}, err
	}
	return board.ColoredTarget(color, symbol), nil
}

func parseColor(s string) (board.Color, error) {
	switch strings.ToLower(s) {
	case "red":
		return board.Red, nil
	case "blue":
		return board.Blue, nil
	case "green":
		return board.Green, nil
	case "yellow":
		return board.Yellow, nil
	default:
		return 0, fmt.Errorf("unknown color %q", s)
	}
}

func parseSymbol(s string) (board.Symbol, error) {
	switch strings.ToLower(s) {
	case "circle":
		return board.Circle, nil
	case "triangle":
		return board.Triangle, nil
	case "square":
		return board.Square, nil
	case "hexagon":
		return board.Hexagon, nil
	default:
		return 0, fmt.Errorf("unknown symbol %q", s)
	}
}
