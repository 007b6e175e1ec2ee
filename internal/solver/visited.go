// Package solver implements the admissible distance oracle and the two
// shortest-path search strategies (breadth-first search and oracle-pruned
// iterative-deepening DFS) that produce a minimum-length move sequence for
// a Round.
package solver

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/tomas-reyes/ricochet/internal/board"
)

// VisitedNode records the minimum move count at which a configuration has
// been reached, the predecessor configuration, and the edge that reached
// it. It is written once per best path found and never mutated once a
// strictly better path has been recorded over it.
type VisitedNode struct {
	MovesToReach int
	Previous     board.RobotPositions
	Edge         board.Edge
}

// VisitedNodes is an open-addressing hash table mapping a packed
// RobotPositions key to its VisitedNode, using the same
// open-addressing-with-linear-probe shape as a chess engine's transposition
// table, keyed here by xxhash over a packed board state instead of a
// Zobrist hash.
//
// Unlike a transposition table, VisitedNodes never silently drops an entry
// on collision: a colliding key is probed on to the next free slot, and the
// table grows and rehashes once it is half full, because path
// reconstruction requires every visited node's predecessor to still be
// resolvable.
type VisitedNodes struct {
	slots []slot
	count int
}

type slot struct {
	occupied bool
	key      uint64
	node     VisitedNode
}

// NewVisitedNodes creates an empty table sized for at least capacity
// entries before it needs to grow.
func NewVisitedNodes(capacity int) *VisitedNodes {
	size := nextPowerOfTwo(capacity)
	if size < 16 {
		size = 16
	}
	return &VisitedNodes{slots: make([]slot, size)}
}

func nextPowerOfTwo(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func hashKey(key uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return xxhash.Sum64(buf[:])
}

// Clear empties the table without shrinking its backing array, so that
// IDDFS can reuse the allocation between depth iterations.
func (v *VisitedNodes) Clear() {
	for i := range v.slots {
		v.slots[i] = slot{}
	}
	v.count = 0
}

// Count returns the number of configurations currently recorded, usable as
// a nodes-explored figure for run history.
func (v *VisitedNodes) Count() int {
	return v.count
}

// Get returns the node stored for positions, if any.
func (v *VisitedNodes) Get(positions board.RobotPositions) (VisitedNode, bool) {
	key := positions.Pack()
	idx := v.find(key)
	if !v.slots[idx].occupied {
		return VisitedNode{}, false
	}
	return v.slots[idx].node, true
}

// find returns the slot index for key: either the slot already holding it,
// or the first empty slot a linear probe from its hash would reach.
func (v *VisitedNodes) find(key uint64) int {
	mask := uint64(len(v.slots) - 1)
	idx := hashKey(key) & mask
	for {
		s := &v.slots[idx]
		if !s.occupied || s.key == key {
			return int(idx)
		}
		idx = (idx + 1) & mask
	}
}

// AddNode records that positions was reached in moves moves, from from, via
// edge. It returns true if this is the first time positions has been seen,
// or if moves strictly improves on the previously recorded path; it returns
// false (and leaves the table unchanged) if an equal-or-better path to
// positions is already known.
func (v *VisitedNodes) AddNode(positions, from board.RobotPositions, moves int, edge board.Edge) bool {
	if v.count*2 >= len(v.slots) {
		v.grow()
	}

	key := positions.Pack()
	idx := v.find(key)
	s := &v.slots[idx]

	if s.occupied && s.node.MovesToReach <= moves {
		return false
	}

	if !s.occupied {
		v.count++
	}
	s.occupied = true
	s.key = key
	s.node = VisitedNode{MovesToReach: moves, Previous: from, Edge: edge}
	return true
}

func (v *VisitedNodes) grow() {
	old := v.slots
	v.slots = make([]slot, len(old)*2)
	v.count = 0
	for _, s := range old {
		if !s.occupied {
			continue
		}
		idx := v.find(s.key)
		v.slots[idx] = s
		v.count++
	}
}

// PathTo walks the predecessor chain from positions back to the entry
// whose MovesToReach is 1, whose predecessor is the start of the path, and
// returns the assembled (start, path) pair. It panics if positions (or any
// of its ancestors) has not been visited, which indicates a solver bug --
// path reconstruction is only ever called on a configuration the solver
// itself just inserted.
func (v *VisitedNodes) PathTo(positions board.RobotPositions) (board.RobotPositions, []board.Edge) {
	path := make([]board.Edge, 0, 32)
	current := positions

	for {
		node, ok := v.Get(current)
		if !ok {
			panic(fmt.Sprintf("solver: no visited entry for %s", current))
		}
		path = append(path, node.Edge)
		if node.MovesToReach == 1 {
			current = node.Previous
			break
		}
		current = node.Previous
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return current, path
}
