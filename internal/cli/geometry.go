package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tilerdev/tiler/pkg/board"
	tilererrors "github.com/tilerdev/tiler/pkg/errors"
	"github.com/tilerdev/tiler/pkg/tile"
)

// Board and tile family names accepted on the command line.
const (
	BoardRectangle = "rectangle"
	BoardL         = "lboard"
	BoardT         = "tboard"

	TileL   = "ltile"
	TileT   = "ttile"
	TileBox = "boxtile"
)

// Geometry describes the board and tile family a command operates on.
// It is parsed from positional args and flags, validated once, and then
// used to build fresh board/tile values per run.
type Geometry struct {
	BoardType string
	TileType  string
	BoardSize int
	TileSize  int
	Scale     int
	Width     int
}

// addGeometryFlags registers the shared geometry flags on cmd.
func addGeometryFlags(cmd *cobra.Command, g *Geometry) {
	cmd.Flags().StringVar(&g.BoardType, "board-type", BoardRectangle, "board family: rectangle, lboard or tboard")
	cmd.Flags().StringVar(&g.TileType, "tile-type", TileL, "tile family: ltile, ttile or boxtile")
	cmd.Flags().IntVar(&g.Scale, "scale", 1, "board scale factor (lboard and tboard)")
	cmd.Flags().IntVar(&g.Width, "width", 0, "rectangle width (defaults to board size)")
}

// parseGeometryArgs fills in BoardSize and TileSize from the two
// positional arguments every search command takes.
func parseGeometryArgs(g *Geometry, args []string) error {
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return tilererrors.New(tilererrors.ErrCodeInvalidInput, "board size %q is not a number", args[0])
	}
	tileSize, err := strconv.Atoi(args[1])
	if err != nil {
		return tilererrors.New(tilererrors.ErrCodeInvalidInput, "tile size %q is not a number", args[1])
	}
	g.BoardSize = size
	g.TileSize = tileSize
	g.BoardType = strings.ToLower(g.BoardType)
	g.TileType = strings.ToLower(g.TileType)
	return g.validate()
}

func (g *Geometry) validate() error {
	if g.BoardSize < 1 {
		return tilererrors.New(tilererrors.ErrCodeInvalidBoard, "board size must be positive, got %d", g.BoardSize)
	}
	if g.TileSize < 0 {
		return tilererrors.New(tilererrors.ErrCodeInvalidTile, "tile size must be non-negative, got %d", g.TileSize)
	}
	// The box tile has no size; every other family needs at least 1.
	if g.TileSize < 1 && g.TileType != TileBox {
		return tilererrors.New(tilererrors.ErrCodeInvalidTile, "tile size must be positive, got %d", g.TileSize)
	}
	switch g.BoardType {
	case BoardRectangle:
	case BoardL, BoardT:
		if g.Scale < 1 {
			return tilererrors.New(tilererrors.ErrCodeInvalidBoard, "scale must be positive, got %d", g.Scale)
		}
	default:
		return tilererrors.New(tilererrors.ErrCodeInvalidBoard, "unknown board type %q (want rectangle, lboard or tboard)", g.BoardType)
	}
	switch g.TileType {
	case TileL, TileT, TileBox:
	default:
		return tilererrors.New(tilererrors.ErrCodeInvalidTile, "unknown tile type %q (want ltile, ttile or boxtile)", g.TileType)
	}
	if g.Width != 0 && g.BoardType != BoardRectangle {
		return tilererrors.New(tilererrors.ErrCodeInvalidBoard, "width only applies to rectangle boards")
	}
	if g.Width < 0 {
		return tilererrors.New(tilererrors.ErrCodeInvalidBoard, "width must be positive, got %d", g.Width)
	}
	return nil
}

// Board constructs the initial board state for this geometry.
func (g *Geometry) Board() (*board.Board, error) {
	switch g.BoardType {
	case BoardL:
		return board.NewLBoard(g.BoardSize, g.Scale)
	case BoardT:
		return board.NewTBoard(g.BoardSize, g.Scale)
	default:
		width := g.Width
		if width == 0 {
			width = g.BoardSize
		}
		return board.NewRectangle(width, g.BoardSize)
	}
}

// BoardAtScale constructs the board with the scale overridden, leaving
// the geometry itself untouched. Used by the scaling command. Scale
// does not apply to rectangle boards, which come out identical at every
// scale.
func (g *Geometry) BoardAtScale(scale int) (*board.Board, error) {
	switch g.BoardType {
	case BoardL:
		return board.NewLBoard(g.BoardSize, scale)
	case BoardT:
		return board.NewTBoard(g.BoardSize, scale)
	default:
		return g.Board()
	}
}

// Tiles constructs the symmetry orbit of this geometry's base tile.
func (g *Geometry) Tiles() tile.Collection {
	var base tile.Tile
	switch g.TileType {
	case TileT:
		base = tile.T(g.TileSize)
	case TileBox:
		base = tile.Box()
	default:
		base = tile.L(g.TileSize)
	}
	return tile.Orbit(base)
}

// CacheKey identifies this geometry for count caching. Every field that
// affects the result participates.
func (g *Geometry) CacheKey() string {
	return fmt.Sprintf("%s:%d:%d:%s:%d:%d", g.BoardType, g.BoardSize, g.Width, g.TileType, g.TileSize, g.Scale)
}

// Describe returns a short human-readable form like "lboard(2, scale 3) / ltile(2)".
func (g *Geometry) Describe() string {
	b := fmt.Sprintf("%s(%d)", g.BoardType, g.BoardSize)
	switch g.BoardType {
	case BoardL, BoardT:
		b = fmt.Sprintf("%s(%d, scale %d)", g.BoardType, g.BoardSize, g.Scale)
	case BoardRectangle:
		if g.Width != 0 {
			b = fmt.Sprintf("%s(%dx%d)", g.BoardType, g.Width, g.BoardSize)
		}
	}
	return fmt.Sprintf("%s / %s(%d)", b, g.TileType, g.TileSize)
}
