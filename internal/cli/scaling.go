package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilerdev/tiler/pkg/tiler"
)

// scalingCommand counts tilings across increasing board scales.
//
// With no --max-scale the loop runs until interrupted; counts explode
// quickly so each scale usually takes far longer than the last.
func (c *CLI) scalingCommand() *cobra.Command {
	var (
		geo      Geometry
		maxScale int
	)

	cmd := &cobra.Command{
		Use:   "scaling <board-size> <tile-size>",
		Short: "Count tilings across increasing board scales",
		Long: `Count complete tilings for the same board family at scale 1, 2, 3, ...
printing one line per scale. Without --max-scale the sweep runs until
interrupted with Ctrl-C.

Examples:
  tiler scaling 2 2 --board-type lboard --max-scale 5
  tiler scaling 1 1 --board-type tboard --tile-type ttile`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			geo.Scale = 1
			if err := parseGeometryArgs(&geo, args); err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			for scale := 1; maxScale == 0 || scale <= maxScale; scale++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				initial, err := geo.BoardAtScale(scale)
				if err != nil {
					return err
				}
				t := tiler.New(geo.Tiles(), initial)

				prog := newProgress(logger)
				count, err := t.QuickCount()
				if err != nil {
					return err
				}
				prog.done(fmt.Sprintf("scale(%d) done", scale))
				fmt.Printf("scale(%d), %s tilings\n", scale, count.String())
			}
			return nil
		},
	}

	// The sweep controls the scale itself, so the shared --scale flag
	// is omitted here.
	cmd.Flags().StringVar(&geo.BoardType, "board-type", BoardRectangle, "board family: rectangle, lboard or tboard")
	cmd.Flags().StringVar(&geo.TileType, "tile-type", TileL, "tile family: ltile, ttile or boxtile")
	cmd.Flags().IntVar(&geo.Width, "width", 0, "rectangle width (defaults to board size)")
	cmd.Flags().IntVar(&maxScale, "max-scale", 0, "largest scale to count (0 runs until interrupted)")
	return cmd
}
