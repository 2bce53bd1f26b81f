package board

import (
	"testing"

	"github.com/tilerdev/tiler/pkg/tile"
)

func TestPlacementsDominoCorner(t *testing.T) {
	b := mustRect(t, 2, 2)
	got := Placements(b, tile.Orbit(tile.L(1)))

	// The target is the top-left corner; a domino can cover it rightward
	// or downward.
	if len(got) != 2 {
		t.Fatalf("placements = %d, want 2", len(got))
	}
	for _, p := range got {
		if p.Anchor != (Position{0, 0}) {
			t.Errorf("anchor = %+v, want (0,0)", p.Anchor)
		}
		if len(p.Covered) != 2 {
			t.Errorf("covered = %v, want 2 cells", p.Covered)
		}
		if p.Covered[0] != (Position{0, 0}) {
			t.Errorf("covered = %v, does not include the target", p.Covered)
		}
	}
}

func TestPlacementsTTetrominoCorner(t *testing.T) {
	b := mustRect(t, 4, 4)
	got := Placements(b, tile.Orbit(tile.T(1)))

	// Only two T orientations can cover a corner cell: bar along the top
	// row or bar down the left column.
	if len(got) != 2 {
		t.Fatalf("placements = %d, want 2", len(got))
	}
	for _, p := range got {
		if len(p.Covered) != 4 {
			t.Errorf("covered = %v, want 4 cells", p.Covered)
		}
	}
}

func TestPlacementsComplete(t *testing.T) {
	b := mustRect(t, 1, 2)
	child, err := b.Apply(Placement{Covered: []Position{{0, 0}, {1, 0}}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := Placements(child, tile.Orbit(tile.L(1))); got != nil {
		t.Errorf("placements on complete board = %v, want none", got)
	}
}

func TestPlacementsDeadEnd(t *testing.T) {
	// Enclose the center of a 3x3 board: its neighbour count reaches 4,
	// so no multi-cell tile can ever cover it.
	b := mustRect(t, 3, 3)
	for _, p := range []Position{{0, 1}, {1, 0}, {1, 2}, {2, 1}} {
		b.mark(p)
	}

	if got := Placements(b, tile.Orbit(tile.L(1))); got != nil {
		t.Errorf("placements = %v, want none for a dead end", got)
	}

	// The prune is disabled when the collection has a single-cell tile.
	if got := Placements(b, tile.Orbit(tile.Box())); len(got) == 0 {
		t.Error("no placements with a single-cell tile available")
	}
}

func TestPlacementsPreferConstrainedCell(t *testing.T) {
	// Covering (0,0) raises the counts of (0,1) and (1,0) above the rest
	// of the border; the column-major scan then targets (1,0).
	b := mustRect(t, 3, 3)
	child, err := b.Apply(Placement{Covered: []Position{{0, 0}}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	got := Placements(child, tile.Orbit(tile.L(1)))
	if len(got) == 0 {
		t.Fatal("no placements")
	}
	for _, p := range got {
		if p.Anchor != (Position{1, 0}) {
			t.Errorf("anchor = %+v, want the most constrained cell (1,0)", p.Anchor)
		}
	}
}

func TestPlacementsDeduplicated(t *testing.T) {
	// The domino orbit holds four walks but only two distinct covered
	// sets exist at a corner; duplicates must collapse.
	b := mustRect(t, 2, 2)
	got := Placements(b, tile.Orbit(tile.L(1)))

	seen := make(map[string]bool)
	for _, p := range got {
		key := coveredKey(p.Covered)
		if seen[key] {
			t.Errorf("duplicate covered set %v", p.Covered)
		}
		seen[key] = true
	}
}

func TestPlacementsDeterministic(t *testing.T) {
	b := mustRect(t, 4, 4)
	tiles := tile.Orbit(tile.T(1))

	a := Placements(b, tiles)
	c := Placements(b, tiles)
	if len(a) != len(c) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(c))
	}
	for i := range a {
		if coveredKey(a[i].Covered) != coveredKey(c[i].Covered) {
			t.Errorf("placement %d differs between runs", i)
		}
	}
}
