package tile

import (
	"slices"
	"testing"
)

func TestFamilies(t *testing.T) {
	tests := []struct {
		name      string
		tile      Tile
		wantWalk  []Direction
		wantCells int
	}{
		{"Box", Box(), nil, 1},
		{"Domino", L(1), []Direction{Left}, 2},
		{"Tromino", L(2), []Direction{Left, Up}, 3},
		{"LTetromino", L(3), []Direction{Left, Up, Up}, 4},
		{"TTetromino", T(1), []Direction{Right, Up, DownRight}, 4},
		{"THexomino", T(2), []Direction{Right, Right, Up, DownRight, Right}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.tile.Walk, tt.wantWalk) {
				t.Errorf("walk = %v, want %v", tt.tile.Walk, tt.wantWalk)
			}
			if got := tt.tile.Cells(); got != tt.wantCells {
				t.Errorf("cells = %d, want %d", got, tt.wantCells)
			}
		})
	}
}

func TestDirectionSymmetries(t *testing.T) {
	all := []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownRight, DownLeft}

	for _, d := range all {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v: double opposite = %v", d, got)
		}
		if got := d.Rotate().Rotate().Rotate().Rotate(); got != d {
			t.Errorf("%v: four rotations = %v", d, got)
		}
		if got := d.Reflect(Vertical).Reflect(Vertical); got != d {
			t.Errorf("%v: double vertical reflection = %v", d, got)
		}
		if got := d.Reflect(Horizontal).Reflect(Horizontal); got != d {
			t.Errorf("%v: double horizontal reflection = %v", d, got)
		}

		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		if dr != -or || dc != -oc {
			t.Errorf("%v: opposite delta (%d,%d) does not negate (%d,%d)", d, or, oc, dr, dc)
		}
	}
}

func TestOrbit(t *testing.T) {
	tests := []struct {
		name string
		tile Tile
		want int
	}{
		{"Box", Box(), 1},
		{"Domino", L(1), 4},
		{"Tromino", L(2), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Orbit(tt.tile)
			if c.Len() != tt.want {
				t.Errorf("orbit size = %d, want %d", c.Len(), tt.want)
			}
			for _, v := range c.Variants() {
				if v.Cells() != tt.tile.Cells() {
					t.Errorf("variant %v has %d cells, want %d", v.Walk, v.Cells(), tt.tile.Cells())
				}
			}
		})
	}
}

func TestOrbitDeterministic(t *testing.T) {
	a := Orbit(T(1))
	b := Orbit(T(1))
	if a.Len() != b.Len() {
		t.Fatalf("orbit sizes differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Variants() {
		if !a.Variants()[i].Equal(b.Variants()[i]) {
			t.Errorf("variant %d differs: %v vs %v", i, a.Variants()[i].Walk, b.Variants()[i].Walk)
		}
	}
}

func TestOrbitClosed(t *testing.T) {
	// Rotating or reflecting any variant must stay inside the orbit.
	c := Orbit(T(1))
	member := func(x Tile) bool {
		for _, v := range c.Variants() {
			if v.Equal(x) {
				return true
			}
		}
		return false
	}
	for _, v := range c.Variants() {
		for _, x := range []Tile{v.Rotate(), v.Reflect(Vertical), v.Reflect(Horizontal)} {
			if !member(x) {
				t.Errorf("orbit not closed: %v missing", x.Walk)
			}
		}
	}
}

func TestNewCollection(t *testing.T) {
	c := NewCollection([]Tile{L(1), L(1), Box()})
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2 after dedup", c.Len())
	}
	if !c.ContainsSingle() {
		t.Error("ContainsSingle = false, want true")
	}

	if Orbit(L(2)).ContainsSingle() {
		t.Error("tromino orbit reports a single-cell tile")
	}
}
