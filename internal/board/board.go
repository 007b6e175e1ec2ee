package board

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Field stores the two wall flags a cell owns: a wall between the cell and
// its right neighbor, and a wall between the cell and the neighbor below.
// Left and top walls are derived from the neighboring cell's Right/Down
// flags, which keeps walls symmetric by construction and halves storage.
type Field struct {
	WallRight bool
	WallDown  bool
}

// Board is an n x n grid of Fields plus the set of colored targets placed
// on it. Board values are owned by a Round, which clones them on
// construction; RobotPositions values referencing a Board never mutate it.
type Board struct {
	n      int
	fields [][]Field
	// targets maps a Target to the cell it occupies. A Board need not know
	// about every Target in play (Round only needs the single target cell
	// relevant to the round being solved), but keeping the full set here
	// lets callers resolve an arbitrary Target to a cell once, up front.
	targets map[Target]Position
}

// NewBoard creates an n x n board with no walls set and no targets.
func NewBoard(n int) *Board {
	if n <= 0 || n > MaxSide {
		panic(fmt.Sprintf("board: invalid side length %d", n))
	}
	fields := make([][]Field, n)
	for c := range fields {
		fields[c] = make([]Field, n)
	}
	return &Board{n: n, fields: fields, targets: make(map[Target]Position)}
}

// NewBoardFromGrid builds a board from a pre-populated wall grid. It
// rejects a non-square grid, matching the "Non-square board at
// construction" fatal error kind.
func NewBoardFromGrid(fields [][]Field) (*Board, error) {
	n := len(fields)
	for i, column := range fields {
		if len(column) != n {
			return nil, fmt.Errorf("board: non-square wall grid (column %d has %d rows, want %d)", i, len(column), n)
		}
	}
	cloned := make([][]Field, n)
	for i, row := range fields {
		cloned[i] = append([]Field(nil), row...)
	}
	return &Board{n: n, fields: cloned, targets: make(map[Target]Position)}, nil
}

// Clone returns a deep copy of the board, including its target set.
func (b *Board) Clone() *Board {
	fields := make([][]Field, b.n)
	for c := range fields {
		fields[c] = append([]Field(nil), b.fields[c]...)
	}
	targets := make(map[Target]Position, len(b.targets))
	for t, p := range b.targets {
		targets[t] = p
	}
	return &Board{n: b.n, fields: fields, targets: targets}
}

// Size returns the board's side length.
func (b *Board) Size() int {
	return b.n
}

// SetTarget records that t lives at cell p.
func (b *Board) SetTarget(t Target, p Position) {
	b.targets[t] = p
}

// TargetCell returns the cell a target lives at, if known.
func (b *Board) TargetCell(t Target) (Position, bool) {
	p, ok := b.targets[t]
	return p, ok
}

// WallRight reports whether there is a wall between (col,row) and its right
// neighbor.
func (b *Board) WallRight(col, row int) bool {
	return b.fields[col][row].WallRight
}

// WallDown reports whether there is a wall between (col,row) and the
// neighbor below it.
func (b *Board) WallDown(col, row int) bool {
	return b.fields[col][row].WallDown
}

// WallLeft reports whether there is a wall between (col,row) and its left
// neighbor, derived from that neighbor's WallRight flag with wrap-around at
// the left edge.
func (b *Board) WallLeft(col, row int) bool {
	if col == 0 {
		return b.WallRight(b.n-1, row)
	}
	return b.WallRight(col-1, row)
}

// WallTop reports whether there is a wall between (col,row) and the
// neighbor above it, derived from that neighbor's WallDown flag with
// wrap-around at the top edge.
func (b *Board) WallTop(col, row int) bool {
	if row == 0 {
		return b.WallDown(col, b.n-1)
	}
	return b.WallDown(col, row-1)
}

// IsAdjacentToWall reports whether there is a wall between p and its
// neighbor in direction d.
func (b *Board) IsAdjacentToWall(p Position, d Direction) bool {
	col, row := p.Column(), p.Row()
	switch d {
	case Right:
		return b.WallRight(col, row)
	case Down:
		return b.WallDown(col, row)
	case Left:
		return b.WallLeft(col, row)
	case Up:
		return b.WallTop(col, row)
	default:
		panic(fmt.Sprintf("board: invalid direction %d", uint8(d)))
	}
}

// SetVerticalLine starts from (col,row) and sets len fields below it to
// have a wall on the right side.
func (b *Board) SetVerticalLine(col, row, length int) *Board {
	for r := row; r < row+length; r++ {
		b.fields[col][r%b.n].WallRight = true
	}
	return b
}

// SetHorizontalLine starts from (col,row) and sets width fields to the
// right of it to have a wall on the bottom side.
func (b *Board) SetHorizontalLine(col, row, width int) *Board {
	for c := col; c < col+width; c++ {
		b.fields[c%b.n][row].WallDown = true
	}
	return b
}

// EncloseLengths walls in the rectangle whose upper-left corner is
// (col,row) and whose size is width x length; (col,row) itself lies inside
// the enclosure. Wraps around at the edge of the board. Only meaningful for
// even side lengths when used to carve the standard board's central
// forbidden block; for odd sizes the caller must judge whether the result
// is useful.
func (b *Board) EncloseLengths(col, row, length, width int) *Board {
	topRow := row - 1
	if row == 0 {
		topRow = b.n - 1
	}
	bottomRow := row + length - 1
	if row+length > b.n {
		bottomRow = b.n - 1
	}

	leftCol := col - 1
	if col == 0 {
		leftCol = b.n - 1
	}
	rightCol := col + width - 1
	if col+width > b.n {
		rightCol = b.n - 1
	}

	b.SetHorizontalLine(col, topRow, width)
	b.SetHorizontalLine(col, bottomRow, width)
	b.SetVerticalLine(leftCol, row, length)
	b.SetVerticalLine(rightCol, row, length)
	return b
}

// WallEnclosure walls in the board's own border.
func (b *Board) WallEnclosure() *Board {
	return b.EncloseLengths(0, 0, b.n, b.n)
}

// SetCenterWalls encloses the central 2x2 block. Only meaningful when n is
// even; callers on odd-sized boards get whatever EncloseLengths computes
// for a rectangle of side 2 centered near the middle, which is not a
// carefully-defined contract.
func (b *Board) SetCenterWalls() *Board {
	mid := b.n / 2
	return b.EncloseLengths(mid-1, mid-1, 2, 2)
}

// Fingerprint returns a stable hash of the board's wall layout and side
// length, suitable as a cache key for the oracle cache and the
// solved-position book. The target set is not part of the hash. It does not
// need to be cryptographically strong, only fast and
// well-distributed, and xxhash (the same hash family Badger uses
// internally for its own indexing) fits that.
func (b *Board) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [2]byte
	for c := 0; c < b.n; c++ {
		for r := 0; r < b.n; r++ {
			buf[0], buf[1] = 0, 0
			if b.fields[c][r].WallRight {
				buf[0] = 1
			}
			if b.fields[c][r].WallDown {
				buf[1] = 1
			}
			_, _ = h.Write(buf[:])
		}
	}
	var sizeBuf [8]byte
	binary.LittleEndian.PutUint64(sizeBuf[:], uint64(b.n))
	_, _ = h.Write(sizeBuf[:])
	return h.Sum64()
}
