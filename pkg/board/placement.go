package board

import (
	"slices"
	"strings"

	"github.com/tilerdev/tiler/pkg/tile"
)

// Placement is one way of laying a tile orientation on a board: the walk
// of variant Variant is anchored so that its Start-th cell sits on Anchor.
// Covered lists the cells the placement occupies, sorted row-major.
type Placement struct {
	Anchor  Position
	Variant int // index into the collection's variants
	Start   int // walk index anchored at Anchor
	Covered []Position
}

// Placements enumerates the valid placements that extend b by one tile.
//
// The generator does not anchor tiles at every uncovered cell: it picks a
// single target cell deterministically and emits every placement covering
// that cell. Any complete tiling must cover the target, so each tiling
// corresponds to exactly one placement sequence, which is what lets path
// counts over the state graph equal tiling counts. The target is the
// uncovered cell with the highest covered-neighbour count, scanned
// column-major from the top-left; ties keep the first cell in scan order.
//
// If the collection has no single-cell tile and some uncovered cell has
// neighbour count 4 (fully enclosed), the state is a provable dead end and
// no placements are returned.
//
// Placements are deduplicated by covered-cell set and returned in a fixed
// deterministic order: collection variant order, then walk start index.
func Placements(b *Board, tiles tile.Collection) []Placement {
	target, ok := targetCell(b, tiles)
	if !ok {
		return nil
	}

	var (
		placements []Placement
		seen       = make(map[string]struct{})
	)
	for vi, v := range tiles.Variants() {
		for start := 0; start <= len(v.Walk); start++ {
			covered, ok := fitAt(b, v, target, start)
			if !ok {
				continue
			}
			key := coveredKey(covered)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			placements = append(placements, Placement{
				Anchor:  target,
				Variant: vi,
				Start:   start,
				Covered: covered,
			})
		}
	}
	return placements
}

// targetCell scans for the most constrained uncovered cell. The second
// return is false when the board is complete or a dead end was detected.
func targetCell(b *Board, tiles tile.Collection) (Position, bool) {
	best := Position{}
	bestCount := -1
	for col := 0; col < b.width; col++ {
		for row := 0; row < b.height; row++ {
			if b.cells[row*b.width+col] {
				continue
			}
			count := b.counts[row*b.width+col]
			if !tiles.ContainsSingle() && count == 4 {
				return Position{}, false
			}
			if count > bestCount {
				bestCount = count
				best = Position{Row: row, Col: col}
			}
		}
	}
	return best, bestCount >= 0
}

// fitAt walks the variant so its start-th cell lands on anchor and checks
// that every visited cell is in bounds and uncovered. Returns the covered
// cells sorted row-major.
func fitAt(b *Board, v tile.Tile, anchor Position, start int) ([]Position, bool) {
	free := func(p Position) bool { return b.Valid(p) && !b.Covered(p) }

	if !free(anchor) {
		return nil, false
	}
	covered := make([]Position, 0, len(v.Walk)+1)
	covered = append(covered, anchor)

	// Walk backwards from the anchor to the start of the walk.
	pos := anchor
	for i := start - 1; i >= 0; i-- {
		pos = pos.Step(v.Walk[i].Opposite())
		if !free(pos) {
			return nil, false
		}
		covered = append(covered, pos)
	}

	// Walk forwards from the anchor to the end of the walk.
	pos = anchor
	for i := start; i < len(v.Walk); i++ {
		pos = pos.Step(v.Walk[i])
		if !free(pos) {
			return nil, false
		}
		covered = append(covered, pos)
	}

	slices.SortFunc(covered, func(a, b Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	// A walk that doubles back over itself visits a cell twice.
	covered = slices.Compact(covered)
	return covered, true
}

func coveredKey(covered []Position) string {
	var sb strings.Builder
	sb.Grow(len(covered) * 8)
	for _, p := range covered {
		sb.WriteByte(byte(p.Row >> 8))
		sb.WriteByte(byte(p.Row))
		sb.WriteByte(byte(p.Col >> 8))
		sb.WriteByte(byte(p.Col))
	}
	return sb.String()
}
