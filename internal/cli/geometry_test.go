package cli

import (
	"testing"

	tilererrors "github.com/tilerdev/tiler/pkg/errors"
)

func TestParseGeometryArgs(t *testing.T) {
	g := Geometry{BoardType: "LBoard", TileType: "LTile", Scale: 3}
	if err := parseGeometryArgs(&g, []string{"2", "2"}); err != nil {
		t.Fatalf("parseGeometryArgs: %v", err)
	}

	if g.BoardSize != 2 || g.TileSize != 2 {
		t.Errorf("sizes = (%d, %d), want (2, 2)", g.BoardSize, g.TileSize)
	}
	// Family names are case-insensitive.
	if g.BoardType != BoardL || g.TileType != TileL {
		t.Errorf("types = (%q, %q), want (lboard, ltile)", g.BoardType, g.TileType)
	}
}

func TestParseGeometryArgsBoxTileIgnoresSize(t *testing.T) {
	// The box tile has no size, so 0 is accepted for it.
	g := Geometry{BoardType: BoardRectangle, TileType: TileBox, Scale: 1}
	if err := parseGeometryArgs(&g, []string{"3", "0"}); err != nil {
		t.Fatalf("parseGeometryArgs: %v", err)
	}
	tiles := g.Tiles()
	if got := len(tiles.Variants()); got != 1 {
		t.Errorf("orbit size = %d, want 1", got)
	}
}

func TestParseGeometryArgsInvalid(t *testing.T) {
	tests := []struct {
		name string
		geo  Geometry
		args []string
		code tilererrors.Code
	}{
		{
			name: "BoardSizeNotNumber",
			geo:  Geometry{BoardType: BoardRectangle, TileType: TileL, Scale: 1},
			args: []string{"four", "1"},
			code: tilererrors.ErrCodeInvalidInput,
		},
		{
			name: "TileSizeNotNumber",
			geo:  Geometry{BoardType: BoardRectangle, TileType: TileL, Scale: 1},
			args: []string{"4", "one"},
			code: tilererrors.ErrCodeInvalidInput,
		},
		{
			name: "NegativeBoardSize",
			geo:  Geometry{BoardType: BoardRectangle, TileType: TileL, Scale: 1},
			args: []string{"-2", "1"},
			code: tilererrors.ErrCodeInvalidBoard,
		},
		{
			name: "ZeroTileSize",
			geo:  Geometry{BoardType: BoardRectangle, TileType: TileL, Scale: 1},
			args: []string{"4", "0"},
			code: tilererrors.ErrCodeInvalidTile,
		},
		{
			name: "NegativeTileSizeBox",
			geo:  Geometry{BoardType: BoardRectangle, TileType: TileBox, Scale: 1},
			args: []string{"4", "-1"},
			code: tilererrors.ErrCodeInvalidTile,
		},
		{
			name: "UnknownBoard",
			geo:  Geometry{BoardType: "hexagon", TileType: TileL, Scale: 1},
			args: []string{"4", "1"},
			code: tilererrors.ErrCodeInvalidBoard,
		},
		{
			name: "UnknownTile",
			geo:  Geometry{BoardType: BoardRectangle, TileType: "ztile", Scale: 1},
			args: []string{"4", "1"},
			code: tilererrors.ErrCodeInvalidTile,
		},
		{
			name: "ZeroScaleOnLBoard",
			geo:  Geometry{BoardType: BoardL, TileType: TileL, Scale: 0},
			args: []string{"2", "2"},
			code: tilererrors.ErrCodeInvalidBoard,
		},
		{
			name: "WidthOnLBoard",
			geo:  Geometry{BoardType: BoardL, TileType: TileL, Scale: 1, Width: 4},
			args: []string{"2", "2"},
			code: tilererrors.ErrCodeInvalidBoard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseGeometryArgs(&tt.geo, tt.args)
			if err == nil {
				t.Fatal("invalid geometry accepted")
			}
			if !tilererrors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestGeometryBoard(t *testing.T) {
	tests := []struct {
		name   string
		geo    Geometry
		wantW  int
		wantH  int
		wantUn int
	}{
		{
			name:   "Square",
			geo:    Geometry{BoardType: BoardRectangle, TileType: TileT, BoardSize: 4, TileSize: 1},
			wantW:  4,
			wantH:  4,
			wantUn: 16,
		},
		{
			name:   "WideRectangle",
			geo:    Geometry{BoardType: BoardRectangle, TileType: TileL, BoardSize: 2, TileSize: 1, Width: 5},
			wantW:  5,
			wantH:  2,
			wantUn: 10,
		},
		{
			name:   "LBoardScaled",
			geo:    Geometry{BoardType: BoardL, TileType: TileL, BoardSize: 2, TileSize: 2, Scale: 3},
			wantW:  6,
			wantH:  6,
			wantUn: 27,
		},
		{
			name:   "TBoard",
			geo:    Geometry{BoardType: BoardT, TileType: TileT, BoardSize: 1, TileSize: 1, Scale: 1},
			wantW:  3,
			wantH:  2,
			wantUn: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.geo.Board()
			if err != nil {
				t.Fatalf("Board: %v", err)
			}
			if b.Width() != tt.wantW || b.Height() != tt.wantH {
				t.Errorf("dims = %dx%d, want %dx%d", b.Width(), b.Height(), tt.wantW, tt.wantH)
			}
			if b.Uncovered() != tt.wantUn {
				t.Errorf("uncovered = %d, want %d", b.Uncovered(), tt.wantUn)
			}
		})
	}
}

func TestGeometryBoardAtScale(t *testing.T) {
	geo := Geometry{BoardType: BoardL, TileType: TileL, BoardSize: 2, TileSize: 2}
	b, err := geo.BoardAtScale(2)
	if err != nil {
		t.Fatalf("BoardAtScale: %v", err)
	}
	if b.Width() != 4 || b.Height() != 4 {
		t.Errorf("dims = %dx%d, want 4x4", b.Width(), b.Height())
	}

	// Scale never applies to rectangles.
	geo = Geometry{BoardType: BoardRectangle, TileType: TileL, BoardSize: 2, TileSize: 1}
	b, err = geo.BoardAtScale(3)
	if err != nil {
		t.Fatalf("BoardAtScale: %v", err)
	}
	if b.Width() != 2 || b.Height() != 2 {
		t.Errorf("dims = %dx%d, want 2x2", b.Width(), b.Height())
	}
}

func TestGeometryRectangleIgnoresScale(t *testing.T) {
	a := Geometry{BoardType: BoardRectangle, TileType: TileL, BoardSize: 3, TileSize: 1, Scale: 1}
	b := Geometry{BoardType: BoardRectangle, TileType: TileL, BoardSize: 3, TileSize: 1, Scale: 5}

	ba, err := a.Board()
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	bb, err := b.Board()
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if !ba.Equal(bb) {
		t.Error("rectangle board changed with scale")
	}
}

func TestGeometryTiles(t *testing.T) {
	tests := []struct {
		name  string
		geo   Geometry
		cells int
	}{
		{"Domino", Geometry{TileType: TileL, TileSize: 1}, 2},
		{"TTetromino", Geometry{TileType: TileT, TileSize: 1}, 4},
		{"Box", Geometry{TileType: TileBox, TileSize: 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.geo.Tiles()
			if c.Len() == 0 {
				t.Fatal("empty orbit")
			}
			for _, v := range c.Variants() {
				if v.Cells() != tt.cells {
					t.Errorf("variant has %d cells, want %d", v.Cells(), tt.cells)
				}
			}
		})
	}
}

func TestGeometryCacheKey(t *testing.T) {
	a := Geometry{BoardType: BoardL, TileType: TileL, BoardSize: 2, TileSize: 2, Scale: 3}
	b := Geometry{BoardType: BoardL, TileType: TileL, BoardSize: 2, TileSize: 2, Scale: 4}
	if a.CacheKey() == b.CacheKey() {
		t.Error("different scales share a cache key")
	}

	c := a
	if a.CacheKey() != c.CacheKey() {
		t.Error("identical geometries have different cache keys")
	}
}

func TestGeometryDescribe(t *testing.T) {
	tests := []struct {
		geo  Geometry
		want string
	}{
		{Geometry{BoardType: BoardRectangle, TileType: TileT, BoardSize: 4, TileSize: 1}, "rectangle(4) / ttile(1)"},
		{Geometry{BoardType: BoardRectangle, TileType: TileL, BoardSize: 2, TileSize: 1, Width: 5}, "rectangle(5x2) / ltile(1)"},
		{Geometry{BoardType: BoardL, TileType: TileL, BoardSize: 2, TileSize: 2, Scale: 3}, "lboard(2, scale 3) / ltile(2)"},
	}

	for _, tt := range tests {
		if got := tt.geo.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}
