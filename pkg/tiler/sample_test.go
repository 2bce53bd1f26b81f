package tiler

import (
	"math/rand"
	"testing"

	"github.com/tilerdev/tiler/pkg/board"
	"github.com/tilerdev/tiler/pkg/tile"
)

func TestCapturePaths(t *testing.T) {
	eng := New(tile.Orbit(tile.L(1)), mustRect(t, 2, 2))

	paths, err := eng.CapturePaths(0)
	if err != nil {
		t.Fatalf("CapturePaths: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %d, want 2", len(paths))
	}
	for _, path := range paths {
		if len(path) != 3 {
			t.Errorf("path length = %d, want 3 boards", len(path))
		}
		if path[0].Uncovered() != 4 {
			t.Error("path does not start at the initial board")
		}
		if !path[len(path)-1].Complete() {
			t.Error("path does not end at a complete board")
		}
	}
}

func TestCapturePathsLimit(t *testing.T) {
	eng := New(tile.Orbit(tile.L(1)), mustRect(t, 4, 2))

	paths, err := eng.CapturePaths(1)
	if err != nil {
		t.Fatalf("CapturePaths: %v", err)
	}
	if len(paths) != 1 {
		t.Errorf("paths = %d, want exactly the limit", len(paths))
	}

	// A limit above the true count captures everything.
	paths, err = eng.CapturePaths(100)
	if err != nil {
		t.Fatalf("CapturePaths: %v", err)
	}
	if len(paths) != 5 {
		t.Errorf("paths = %d, want 5", len(paths))
	}
}

func TestSampleDeterministic(t *testing.T) {
	eng := New(tile.Orbit(tile.T(1)), mustRect(t, 4, 4))

	a, err := eng.Sample(DefaultSampleCap, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	b, err := eng.Sample(DefaultSampleCap, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}

	if a == nil || b == nil {
		t.Fatal("no tiling sampled")
	}
	if len(a) != len(b) {
		t.Fatalf("path lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Errorf("board %d differs between seeded runs", i)
		}
	}
}

func TestSampleNone(t *testing.T) {
	// Odd cell count, no domino tiling exists.
	eng := New(tile.Orbit(tile.L(1)), mustRect(t, 3, 3))

	path, err := eng.Sample(DefaultSampleCap, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if path != nil {
		t.Errorf("path = %v, want nil when no tiling exists", path)
	}
}

func TestEnumerateAll(t *testing.T) {
	eng := New(tile.Orbit(tile.L(1)), mustRect(t, 2, 2))
	g, err := eng.BuildGraph()
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	tilings := EnumerateAll(g, 0)
	if len(tilings) != 2 {
		t.Fatalf("tilings = %d, want 2", len(tilings))
	}
	for _, path := range tilings {
		if !path[0].Equal(g.Node(0)) {
			t.Error("path does not start at node 0")
		}
		if !path[len(path)-1].Complete() {
			t.Error("path does not end at a complete board")
		}
	}

	if got := EnumerateAll(g, 1); len(got) != 1 {
		t.Errorf("limited tilings = %d, want 1", len(got))
	}
}

func TestEnumerateAllMatchesCount(t *testing.T) {
	eng := New(tile.Orbit(tile.T(1)), mustRect(t, 4, 4))
	g, err := eng.BuildGraph()
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	tilings := EnumerateAll(g, 0)
	count := eng.CountGraph(g)
	if int64(len(tilings)) != count.Int64() {
		t.Errorf("enumerated %d tilings, count says %s", len(tilings), count)
	}
}

func TestEnumerateAllEmpty(t *testing.T) {
	b, err := board.NewTBoard(1, 2)
	if err != nil {
		t.Fatalf("NewTBoard: %v", err)
	}
	eng := New(tile.Orbit(tile.T(1)), b)
	g, err := eng.BuildGraph()
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if got := EnumerateAll(g, 0); len(got) != 0 {
		t.Errorf("tilings = %d, want 0", len(got))
	}
}
