// Package book implements a solved-position cache: a map from (board,
// target, starting configuration) to a previously found Solution, so a
// caller that re-solves the same round repeatedly (a bulk generator
// iterating board/target combinations, or a reinforcement-learning wrapper
// replaying the same puzzle) can skip the search entirely on a cache hit.
package book

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/tomas-reyes/ricochet/internal/board"
	"github.com/tomas-reyes/ricochet/internal/solver"
)

// Book holds known solutions keyed by a hash of the round and starting
// configuration. Unlike a weighted opening book, a Book entry is always
// the best solution seen for its key: Put only replaces an entry with a
// strictly shorter one.
type Book struct {
	entries map[uint64]solver.Solution
}

// New creates an empty Book.
func New() *Book {
	return &Book{entries: make(map[uint64]solver.Solution)}
}

// Key combines a board's wall layout, its target, and a starting
// configuration into the 64-bit lookup key used by Probe and Put.
func Key(b *board.Board, target board.Target, start board.RobotPositions) uint64 {
	var buf [18]byte
	binary.LittleEndian.PutUint64(buf[0:8], b.Fingerprint())
	buf[8] = targetByte(target)
	binary.LittleEndian.PutUint64(buf[9:17], start.Pack())
	buf[17] = 0
	return xxhash.Sum64(buf[:17])
}

func targetByte(t board.Target) byte {
	if t.Spiral {
		return 0xFF
	}
	return byte(t.Color)<<2 | byte(t.Symbol)
}

// Probe returns the cached solution for key, if any.
func (b *Book) Probe(key uint64) (solver.Solution, bool) {
	if b == nil {
		return solver.Solution{}, false
	}
	sol, ok := b.entries[key]
	return sol, ok
}

// Put records sol under key, keeping whichever of the new and any existing
// entry has the shorter path. It reports whether the book's entry for key
// changed.
func (b *Book) Put(key uint64, sol solver.Solution) bool {
	existing, ok := b.entries[key]
	if ok && existing.Moves() <= sol.Moves() {
		return false
	}
	b.entries[key] = sol
	return true
}

// Size returns the number of cached entries.
func (b *Book) Size() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Save writes the book to w as a sequence of variable-length records: an
// 8-byte key, a 2-byte path length, then that many 2-byte (robot,
// direction) edges. This mirrors the fixed-width-record shape of a
// Polyglot-style opening book file while accommodating the Ricochet
// Robots path lengths, which are not bounded to a single move the way a
// chess book entry is.
func (b *Book) Save(w io.Writer) error {
	for key, sol := range b.entries {
		var header [10]byte
		binary.BigEndian.PutUint64(header[0:8], key)
		binary.BigEndian.PutUint16(header[8:10], uint16(sol.Moves()))
		if _, err := w.Write(header[:]); err != nil {
			return fmt.Errorf("book: writing record header: %w", err)
		}
		for _, edge := range sol.Path {
			rec := [2]byte{byte(edge.Robot), byte(edge.Direction)}
			if _, err := w.Write(rec[:]); err != nil {
				return fmt.Errorf("book: writing edge: %w", err)
			}
		}
	}
	return nil
}

// Load reads a book previously written by Save. Solutions loaded this way
// carry no Start/End positions (only the key and path survive the
// round-trip); callers that need those can re-derive End by replaying the
// path from the configuration they probed with.
func Load(r io.Reader) (*Book, error) {
	b := New()
	var header [10]byte
	for {
		_, err := io.ReadFull(r, header[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("book: reading record header: %w", err)
		}
		key := binary.BigEndian.Uint64(header[0:8])
		length := binary.BigEndian.Uint16(header[8:10])

		path := make([]board.Edge, length)
		var rec [2]byte
		for i := range path {
			if _, err := io.ReadFull(r, rec[:]); err != nil {
				return nil, fmt.Errorf("book: reading edge %d: %w", i, err)
			}
			path[i] = board.Edge{Robot: board.Color(rec[0]), Direction: board.Direction(rec[1])}
		}
		b.entries[key] = solver.Solution{Path: path}
	}
	return b, nil
}
