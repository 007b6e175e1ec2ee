// Package cli implements a line-oriented JSON request/response protocol for
// the solver: read one request per line from a reader, write one response
// per line to a writer. It is the thin seam the out-of-scope collaborators
// (board loaders, renderers, the reinforcement-learning wrapper, the bulk
// solution-generator) are expected to sit behind; it does no interactive
// prompting and no board-file parsing of its own.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/tomas-reyes/ricochet/internal/board"
	"github.com/tomas-reyes/ricochet/internal/book"
	"github.com/tomas-reyes/ricochet/internal/solver"
	"github.com/tomas-reyes/ricochet/internal/store"
)

// Cell is a wire-friendly (column, row) pair.
type Cell struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// WallField mirrors board.Field for JSON transport.
type WallField struct {
	WallRight bool `json:"wall_right"`
	WallDown  bool `json:"wall_down"`
}

// TargetSpec describes a Target over the wire: either Spiral, or a
// (Color, Symbol) pair named by string.
type TargetSpec struct {
	Spiral bool   `json:"spiral"`
	Color  string `json:"color,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// Request is one solve request: the board's wall grid, the target and the
// cell it lives on, the four robots' starting cells, and which search
// strategy to use ("bfs" or "iddfs", defaulting to "bfs").
type Request struct {
	Walls      [][]WallField `json:"walls"`
	Target     TargetSpec    `json:"target"`
	TargetCell Cell          `json:"target_cell"`
	Red        Cell          `json:"red"`
	Blue       Cell          `json:"blue"`
	Green      Cell          `json:"green"`
	Yellow     Cell          `json:"yellow"`
	Strategy   string        `json:"strategy,omitempty"`
}

// EdgeSpec is one move in a wire-encoded path.
type EdgeSpec struct {
	Robot     string `json:"robot"`
	Direction string `json:"direction"`
}

// Response is the JSON reply to a Request.
type Response struct {
	Solvable bool       `json:"solvable"`
	Moves    int        `json:"moves"`
	Path     []EdgeSpec `json:"path"`
	End      Cell       `json:"end_of_target_robot,omitempty"`
	FromBook bool       `json:"from_book"`
	Error    string     `json:"error,omitempty"`
}

// Handler runs requests against the solver, consulting and updating a book
// and recording run history as it goes. Both Book and Store are optional:
// a nil Book disables the solved-position cache, a nil Store disables
// history recording.
type Handler struct {
	Book    *book.Book
	Store   *store.Store
	Oracles *solver.OracleCache
}

// Run reads newline-delimited JSON requests from r and writes a
// newline-delimited JSON response to w for each, until r is exhausted or
// reading or writing fails. A line that fails to decode gets a response
// carrying the error, and the loop goes on with the next line.
func (h *Handler) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("[cli] malformed request: %v", err)
			if err := enc.Encode(Response{Error: err.Error()}); err != nil {
				return err
			}
			continue
		}

		resp := h.handle(req)
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (h *Handler) handle(req Request) Response {
	round, start, err := buildRound(req)
	if err != nil {
		return Response{Error: err.Error()}
	}

	key := book.Key(round.Board(), round.Target(), start)
	if sol, ok := h.Book.Probe(key); ok {
		log.Printf("[cli] book hit for key %x", key)
		// Entries read by book.Load carry only the path; replay it from start
		// to recover the configuration it ends on.
		end := start
		for _, edge := range sol.Path {
			end = end.MoveInDirection(round.Board(), edge.Robot, edge.Direction)
		}
		sol.Start, sol.End = start, end
		return solutionToResponse(sol, req.Target, round.TargetCell(), true)
	}

	startedAt := time.Now()
	var sol solver.Solution
	var solvable = true
	var nodesExplored int

	switch req.Strategy {
	case "iddfs":
		if h.Oracles != nil {
			iddfs := solver.NewIDDFSSolverWithCache(h.Oracles)
			sol, solvable = iddfs.Solve(round, start)
			nodesExplored = iddfs.NodesExplored()
		} else {
			iddfs := solver.NewIDDFSSolver()
			sol, solvable = iddfs.Solve(round, start)
			nodesExplored = iddfs.NodesExplored()
		}
	default:
		bfs := solver.NewBFSSolver()
		sol = bfs.Solve(round, start)
		solvable = round.TargetReached(sol.End)
		nodesExplored = bfs.NodesExplored()
	}
	elapsed := time.Since(startedAt)

	if !solvable {
		return Response{Solvable: false}
	}

	if h.Book != nil {
		h.Book.Put(key, sol)
	}
	if h.Store != nil {
		run := store.NewRun(round.Board().Fingerprint(), targetLabel(req.Target), strategyLabel(req.Strategy), sol.Moves(), nodesExplored, elapsed)
		if err := h.Store.RecordRun(run); err != nil {
			log.Printf("[cli] failed to record run history: %v", err)
		}
	}

	return solutionToResponse(sol, req.Target, round.TargetCell(), false)
}

func strategyLabel(s string) string {
	if s == "iddfs" {
		return "iddfs"
	}
	return "bfs"
}

func targetLabel(t TargetSpec) string {
	if t.Spiral {
		return "spiral"
	}
	return fmt.Sprintf("%s %s", t.Color, t.Symbol)
}

func solutionToResponse(sol solver.Solution, target TargetSpec, targetCell board.Position, fromBook bool) Response {
	path := make([]EdgeSpec, len(sol.Path))
	for i, edge := range sol.Path {
		path[i] = EdgeSpec{Robot: edge.Robot.String(), Direction: edge.Direction.String()}
	}

	var endCell board.Position
	if target.Spiral {
		// Any robot satisfies the spiral target: report the one on its cell.
		endCell = sol.End.Red
		for _, c := range board.Colors {
			if sol.End.ContainsColor(c, targetCell) {
				endCell = sol.End.At(c)
				break
			}
		}
	} else {
		color, _ := parseColor(target.Color)
		endCell = sol.End.At(color)
	}

	return Response{
		Solvable: true,
		Moves:    sol.Moves(),
		Path:     path,
		End:      Cell{Column: endCell.Column(), Row: endCell.Row()},
		FromBook: fromBook,
	}
}
