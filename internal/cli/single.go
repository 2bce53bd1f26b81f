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

// singleCommand samples one complete tiling and renders it as SVG.
func (c *CLI) singleCommand() *cobra.Command {
	var (
		geo    Geometry
		seed   int64
		output string
	)

	cmd := &cobra.Command{
		Use:   "single <board-size> <tile-size>",
		Short: "Render one randomly sampled tiling as SVG",
		Long: `Sample one complete tiling uniformly from the captured set and render it.

The sampler captures up to sample_cap tilings (config file, default 1000)
and picks one at random. Pass --seed for a reproducible choice.

Examples:
  tiler single 4 1 --tile-type ttile -o tiling.svg
  tiler single 2 2 --board-type lboard --scale 4 --seed 7`,
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

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))
			logger.Debug("sampling", "geometry", geo.Describe(), "seed", seed, "cap", c.Config.SampleCap)

			spin := newSpinner(ctx, fmt.Sprintf("Sampling a tiling of %s...", geo.Describe()))
			spin.Start()
			path, err := t.Sample(c.Config.SampleCap, rng)
			spin.Stop()
			if err != nil {
				return err
			}
			if path == nil {
				printWarning("No complete tilings exist for %s", geo.Describe())
				return nil
			}

			opts := []render.Option{render.WithRand(rng)}
			if pal := c.Config.PaletteColors(); pal != nil {
				opts = append(opts, render.WithPalette(pal))
			}

			observability.Engine().OnRenderStart(ctx, 1)
			start := time.Now()
			svg := render.Tiling(path, opts...)
			err = os.WriteFile(output, svg, 0o644)
			observability.Engine().OnRenderComplete(ctx, 1, time.Since(start), err)
			if err != nil {
				return err
			}

			printSuccess("Rendered tiling with %d tiles", len(path)-1)
			printFile(output)
			return nil
		},
	}

	addGeometryFlags(cmd, &geo)
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the current time)")
	cmd.Flags().StringVarP(&output, "output", "o", "tiling.svg", "output SVG file")
	return cmd
}
