package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tilerdev/tiler/pkg/observability"
	"github.com/tilerdev/tiler/pkg/render"
	"github.com/tilerdev/tiler/pkg/tiler"
)

// allCommand renders every complete tiling into a ZIP archive of SVGs.
func (c *CLI) allCommand() *cobra.Command {
	var (
		geo    Geometry
		limit  int
		seed   int64
		output string
	)

	cmd := &cobra.Command{
		Use:   "all <board-size> <tile-size>",
		Short: "Render all complete tilings into a ZIP archive",
		Long: `Enumerate complete tilings and render each one as an SVG entry in a
ZIP archive. Tiling counts grow very quickly with board size; use --limit
to bound the enumeration on large boards.

Examples:
  tiler all 4 1 --tile-type ttile -o tilings.zip
  tiler all 2 2 --board-type lboard --scale 3 --limit 100`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parseGeometryArgs(&geo, args); err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			initial, err := geo.Board()
			if err != nil {
				return err
			}
			t := tiler.New(geo.Tiles(), initial)

			observability.Engine().OnSearchStart(ctx, geo.Describe())
			spin := newSpinner(ctx, fmt.Sprintf("Searching tilings of %s...", geo.Describe()))
			spin.Start()
			start := time.Now()
			g, err := t.BuildGraph()
			spin.Stop()
			if err != nil {
				observability.Engine().OnSearchComplete(ctx, geo.Describe(), 0, 0, time.Since(start), err)
				return err
			}
			observability.Engine().OnSearchComplete(ctx, geo.Describe(), g.NodeCount(), g.EdgeCount(), time.Since(start), nil)
			logger.Debug("graph built", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "complete", len(g.Complete()))

			tilings := tiler.EnumerateAll(g, limit)
			if len(tilings) == 0 {
				printWarning("No complete tilings exist for %s", geo.Describe())
				return nil
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			opts := []render.Option{render.WithRand(rng)}
			if pal := c.Config.PaletteColors(); pal != nil {
				opts = append(opts, render.WithPalette(pal))
			}

			observability.Engine().OnRenderStart(ctx, len(tilings))
			prog := newProgress(logger)
			start = time.Now()
			err = render.WriteArchive(f, tilings, opts...)
			observability.Engine().OnRenderComplete(ctx, len(tilings), time.Since(start), err)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %d tilings", len(tilings)))

			if limit > 0 && len(tilings) == limit {
				printInfo("Enumeration stopped at the --limit of %d tilings", limit)
			}
			printSuccess("Archived %d tilings", len(tilings))
			printFile(output)
			return nil
		},
	}

	addGeometryFlags(cmd, &geo)
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum tilings to render (0 for all)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for tile colors (0 uses the current time)")
	cmd.Flags().StringVarP(&output, "output", "o", "tilings.zip", "output ZIP archive")
	return cmd
}
