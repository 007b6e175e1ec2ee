package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const runKeyPrefix = "run:"

// Run records one completed solve: which strategy ran, over what board and
// target, how long the path was, how many configurations it explored, and
// how long it took. Kept distinct from solver.Solution: a Run is history
// about a solve, not the solution itself.
type Run struct {
	ID               string        `json:"id"`
	BoardFingerprint uint64        `json:"board_fingerprint"`
	Target           string        `json:"target"`
	Solver           string        `json:"solver"`
	PathLength       int           `json:"path_length"`
	NodesExplored    int           `json:"nodes_explored"`
	Elapsed          time.Duration `json:"elapsed"`
	SolvedAt         time.Time     `json:"solved_at"`
}

// NewRun builds a Run with a freshly generated ID and the current time.
func NewRun(boardFingerprint uint64, target, solverName string, pathLength, nodesExplored int, elapsed time.Duration) Run {
	return Run{
		ID:               uuid.NewString(),
		BoardFingerprint: boardFingerprint,
		Target:           target,
		Solver:           solverName,
		PathLength:       pathLength,
		NodesExplored:    nodesExplored,
		Elapsed:          elapsed,
		SolvedAt:         time.Now(),
	}
}

// Store wraps a Badger database holding run history.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the Badger database under dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun persists run under its own key.
func (s *Store) RecordRun(run Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("store: marshaling run: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(runKeyPrefix+run.ID), data)
	})
}

// History returns every recorded run, in no particular order.
func (s *Store) History() ([]Run, error) {
	var runs []Run
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(runKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var run Run
				if err := json.Unmarshal(val, &run); err != nil {
					return err
				}
				runs = append(runs, run)
				return nil
			})
			if err != nil {
				return fmt.Errorf("store: decoding run %s: %w", item.Key(), err)
			}
		}
		return nil
	})
	return runs, err
}
