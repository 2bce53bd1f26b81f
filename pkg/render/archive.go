package render

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/tilerdev/tiler/pkg/board"
)

// WriteArchive renders every tiling to SVG and writes them into a ZIP
// archive on w, one numbered entry per tiling (0.svg, 1.svg, ...).
func WriteArchive(w io.Writer, tilings [][]*board.Board, opts ...Option) error {
	zw := zip.NewWriter(w)
	for i, boards := range tilings {
		f, err := zw.Create(fmt.Sprintf("%d.svg", i))
		if err != nil {
			return fmt.Errorf("archive entry %d: %w", i, err)
		}
		if _, err := f.Write(Tiling(boards, opts...)); err != nil {
			return fmt.Errorf("archive entry %d: %w", i, err)
		}
	}
	return zw.Close()
}
