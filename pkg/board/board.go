// Package board implements the tiling board: an immutable grid mask with
// covered/uncovered cells, the rectangle / L / T board geometries, and the
// placement generator that enumerates the ways a tile collection extends a
// board state.
//
// Boards are value snapshots: applying a placement returns a new board and
// never mutates the source. Two boards represent the same search state iff
// their masks are equal, which [Board.Key] exposes as a comparable string.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tilerdev/tiler/pkg/tile"
)

var (
	// ErrInvalidSize is returned by the board constructors when a
	// dimension, size, or scale is not positive.
	ErrInvalidSize = errors.New("board dimensions must be positive")

	// ErrInvalidPlacement is returned by [Board.Apply] when a placement
	// references a cell that is out of bounds or already covered. It
	// indicates an internal invariant violation, not a user error.
	ErrInvalidPlacement = errors.New("placement covers an invalid or covered cell")
)

// Position is a cell coordinate. Row 0 is the top row.
type Position struct {
	Row, Col int
}

// Step returns the position one step away in the given direction.
func (p Position) Step(d tile.Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Board is a snapshot of a tiling state: a width x height grid where each
// cell is covered or uncovered. Cells outside the board's footprint
// (L and T boards) are pre-covered at construction and can never be
// touched by a placement, since placements require uncovered cells.
//
// Alongside the mask the board tracks a per-cell neighbour count used as
// a most-constrained-cell heuristic by the placement generator. The count
// is seeded with 1 on the outer border and incremented on each orthogonal
// neighbour when a cell is covered by a placement.
type Board struct {
	width, height int
	cells         []bool // covered, row-major
	counts        []int  // covered-neighbour heuristic, row-major
}

// NewRectangle creates an empty rectangular board.
func NewRectangle(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
		counts: make([]int, width*height),
	}
	for row := 0; row < height; row++ {
		b.counts[row*width] = 1
		b.counts[row*width+width-1] = 1
	}
	for col := 0; col < width; col++ {
		b.counts[col] = 1
		b.counts[(height-1)*width+col] = 1
	}
	return b, nil
}

// NewLBoard creates a board shaped like an L-tetromino outline with long
// side n, scaled so every outline cell becomes a scale x scale block.
// The grid is (n*scale) x (2*scale) with the top-right block pre-covered.
func NewLBoard(n, scale int) (*Board, error) {
	if n <= 0 || scale <= 0 {
		return nil, fmt.Errorf("%w: size %d scale %d", ErrInvalidSize, n, scale)
	}
	b, err := NewRectangle(n*scale, 2*scale)
	if err != nil {
		return nil, err
	}
	for row := 0; row < scale; row++ {
		for col := scale; col < n*scale; col++ {
			b.cells[row*b.width+col] = true
		}
	}
	return b, nil
}

// NewTBoard creates a board shaped like a T-tetromino outline with arms of
// length n, scaled so every outline cell becomes a scale x scale block.
// The grid is ((2n+1)*scale) x (2*scale) with both top arms pre-covered.
func NewTBoard(n, scale int) (*Board, error) {
	if n <= 0 || scale <= 0 {
		return nil, fmt.Errorf("%w: size %d scale %d", ErrInvalidSize, n, scale)
	}
	b, err := NewRectangle((2*n+1)*scale, 2*scale)
	if err != nil {
		return nil, err
	}
	for row := 0; row < scale; row++ {
		for col := 0; col < n*scale; col++ {
			b.cells[row*b.width+col] = true
		}
		for col := (n + 1) * scale; col < (2*n+1)*scale; col++ {
			b.cells[row*b.width+col] = true
		}
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Valid reports whether p is inside the grid.
func (b *Board) Valid(p Position) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

// Covered reports whether the cell at p is covered. p must be valid.
func (b *Board) Covered(p Position) bool { return b.cells[p.Row*b.width+p.Col] }

// Complete reports whether every cell is covered.
func (b *Board) Complete() bool {
	for _, c := range b.cells {
		if !c {
			return false
		}
	}
	return true
}

// Uncovered returns the number of uncovered cells.
func (b *Board) Uncovered() int {
	n := 0
	for _, c := range b.cells {
		if !c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		width:  b.width,
		height: b.height,
		cells:  make([]bool, len(b.cells)),
		counts: make([]int, len(b.counts)),
	}
	copy(c.cells, b.cells)
	copy(c.counts, b.counts)
	return c
}

// Key returns a compact content key: boards are the same search state iff
// their keys are equal. The key encodes dimensions and the packed mask.
func (b *Board) Key() string {
	buf := make([]byte, 0, 4+(len(b.cells)+7)/8)
	buf = append(buf, byte(b.width>>8), byte(b.width), byte(b.height>>8), byte(b.height))
	var acc byte
	for i, c := range b.cells {
		if c {
			acc |= 1 << (i % 8)
		}
		if i%8 == 7 {
			buf = append(buf, acc)
			acc = 0
		}
	}
	if len(b.cells)%8 != 0 {
		buf = append(buf, acc)
	}
	return string(buf)
}

// Equal reports whether both boards have identical masks.
func (b *Board) Equal(o *Board) bool { return b.Key() == o.Key() }

// Cells returns the mask as rows of booleans, true = covered. The result
// is a fresh copy, ordered row 0 first.
func (b *Board) Cells() [][]bool {
	rows := make([][]bool, b.height)
	for row := 0; row < b.height; row++ {
		rows[row] = make([]bool, b.width)
		copy(rows[row], b.cells[row*b.width:(row+1)*b.width])
	}
	return rows
}

// String renders the mask with x for covered and * for uncovered cells.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.cells[row*b.width+col] {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('*')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// mark covers the cell at p and bumps the neighbour counts of its four
// orthogonal neighbours.
func (b *Board) mark(p Position) {
	for _, q := range [4]Position{
		{p.Row - 1, p.Col},
		{p.Row + 1, p.Col},
		{p.Row, p.Col - 1},
		{p.Row, p.Col + 1},
	} {
		if b.Valid(q) {
			b.counts[q.Row*b.width+q.Col]++
		}
	}
	b.cells[p.Row*b.width+p.Col] = true
}

// Apply returns a new board with the placement's cells covered. The
// receiver is unchanged. Returns ErrInvalidPlacement if any covered cell
// is out of bounds or already covered, which callers must treat as fatal.
func (b *Board) Apply(p Placement) (*Board, error) {
	child := b.Clone()
	for _, pos := range p.Covered {
		if !child.Valid(pos) || child.Covered(pos) {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidPlacement, pos)
		}
		child.mark(pos)
	}
	return child, nil
}
