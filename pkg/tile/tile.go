// Package tile defines polyomino tile shapes as direction walks and
// generates their symmetry orbits.
//
// A tile is described by the sequence of unit steps needed to walk its
// cells, starting from an anchor cell. The L and T families are
// parameterized by a size argument controlling the number of cells.
// The full set of placeable orientations of a tile is its orbit under
// 90-degree rotation and both axis reflections, see [Orbit].
package tile

import (
	"slices"
	"strings"
)

// Direction is a unit step between grid cells. Row 0 is the top row, so
// Up decreases the row index and Down increases it.
type Direction int

// The eight unit steps. The diagonal steps only occur in the T family,
// which doubles back on itself.
const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownRight
	DownLeft
)

var directionNames = map[Direction]string{
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	UpLeft:    "up-left",
	UpRight:   "up-right",
	DownRight: "down-right",
	DownLeft:  "down-left",
}

// String returns a human-readable name for the direction.
func (d Direction) String() string { return directionNames[d] }

// Delta returns the row and column offsets of one step in this direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case UpLeft:
		return -1, -1
	case UpRight:
		return -1, 1
	case DownRight:
		return 1, 1
	case DownLeft:
		return 1, -1
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case UpLeft:
		return DownRight
	case DownRight:
		return UpLeft
	case UpRight:
		return DownLeft
	case DownLeft:
		return UpRight
	}
	return d
}

// Rotate returns the direction rotated 90 degrees clockwise.
func (d Direction) Rotate() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	case UpLeft:
		return UpRight
	case UpRight:
		return DownRight
	case DownRight:
		return DownLeft
	case DownLeft:
		return UpLeft
	}
	return d
}

// Axis selects a reflection axis for [Direction.Reflect] and [Tile.Reflect].
type Axis int

const (
	// Vertical reflects left/right.
	Vertical Axis = iota
	// Horizontal reflects up/down.
	Horizontal
)

// Reflect returns the direction mirrored about the given axis.
func (d Direction) Reflect(a Axis) Direction {
	switch a {
	case Horizontal:
		switch d {
		case Up:
			return Down
		case Down:
			return Up
		case UpLeft:
			return DownLeft
		case UpRight:
			return DownRight
		case DownLeft:
			return UpLeft
		case DownRight:
			return UpRight
		}
	case Vertical:
		switch d {
		case Left:
			return Right
		case Right:
			return Left
		case UpLeft:
			return UpRight
		case UpRight:
			return UpLeft
		case DownLeft:
			return DownRight
		case DownRight:
			return DownLeft
		}
	}
	return d
}

// Tile is a fixed polyomino shape described as a walk of unit steps from
// an anchor cell. A tile with an empty walk covers a single cell.
type Tile struct {
	Walk []Direction
}

// New creates a tile from a walk. The walk is not copied.
func New(walk []Direction) Tile { return Tile{Walk: walk} }

// L returns an L-shaped tile of size+1 cells: one step left followed by
// size-1 steps up. L(1) is a domino, L(2) the corner tromino, L(3) the
// L-tetromino.
func L(size int) Tile {
	walk := make([]Direction, 0, size)
	walk = append(walk, Left)
	for i := 0; i < size-1; i++ {
		walk = append(walk, Up)
	}
	return New(walk)
}

// T returns a T-shaped tile of 2*size+2 cells: size steps right, one up,
// one diagonally back down-right, then size-1 steps right. T(1) is the
// T-tetromino.
func T(size int) Tile {
	walk := make([]Direction, 0, 2*size+1)
	for i := 0; i < size; i++ {
		walk = append(walk, Right)
	}
	walk = append(walk, Up, DownRight)
	for i := 0; i < size-1; i++ {
		walk = append(walk, Right)
	}
	return New(walk)
}

// Box returns the single-cell tile. It exists to visualize board
// outlines and trivially tiles any board in exactly one way.
func Box() Tile { return New(nil) }

// Cells returns the number of cells the tile covers.
func (t Tile) Cells() int { return len(t.Walk) + 1 }

// Rotate returns a copy of the tile rotated 90 degrees clockwise.
func (t Tile) Rotate() Tile {
	walk := make([]Direction, len(t.Walk))
	for i, d := range t.Walk {
		walk[i] = d.Rotate()
	}
	return New(walk)
}

// Reflect returns a copy of the tile mirrored about the given axis.
func (t Tile) Reflect(a Axis) Tile {
	walk := make([]Direction, len(t.Walk))
	for i, d := range t.Walk {
		walk[i] = d.Reflect(a)
	}
	return New(walk)
}

// Equal reports whether two tiles have identical walks.
func (t Tile) Equal(o Tile) bool { return slices.Equal(t.Walk, o.Walk) }

// encode returns a canonical string for ordering and deduplication.
func (t Tile) encode() string {
	var sb strings.Builder
	sb.Grow(len(t.Walk))
	for _, d := range t.Walk {
		sb.WriteByte(byte('a' + d))
	}
	return sb.String()
}

// Collection is an ordered set of tile orientation variants. The order
// is deterministic so that placement enumeration, and therefore sampling
// under a fixed random seed, is reproducible.
type Collection struct {
	variants  []Tile
	hasSingle bool
}

// NewCollection builds a collection from explicit variants, sorting them
// into canonical order and dropping duplicates.
func NewCollection(tiles []Tile) Collection {
	seen := make(map[string]Tile, len(tiles))
	for _, t := range tiles {
		seen[t.encode()] = t
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	variants := make([]Tile, len(keys))
	hasSingle := false
	for i, k := range keys {
		variants[i] = seen[k]
		if len(seen[k].Walk) == 0 {
			hasSingle = true
		}
	}
	return Collection{variants: variants, hasSingle: hasSingle}
}

// Orbit returns the closure of t under rotation and both reflections:
// every orientation in which the tile can be placed, without symmetric
// duplicates.
func Orbit(t Tile) Collection {
	orbit := map[string]Tile{t.encode(): t}
	for {
		grew := false
		var batch []Tile
		for _, v := range orbit {
			batch = append(batch, v.Rotate(), v.Reflect(Horizontal), v.Reflect(Vertical))
		}
		for _, v := range batch {
			k := v.encode()
			if _, ok := orbit[k]; !ok {
				orbit[k] = v
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	all := make([]Tile, 0, len(orbit))
	for _, v := range orbit {
		all = append(all, v)
	}
	return NewCollection(all)
}

// Variants returns the orientation variants in canonical order.
// The returned slice must not be modified.
func (c Collection) Variants() []Tile { return c.variants }

// Len returns the number of orientation variants.
func (c Collection) Len() int { return len(c.variants) }

// ContainsSingle reports whether the collection includes the single-cell
// tile. The dead-end prune in placement generation is disabled in that
// case, since a lone uncovered cell is still tileable.
func (c Collection) ContainsSingle() bool { return c.hasSingle }
