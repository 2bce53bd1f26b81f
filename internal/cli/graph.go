package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tilerdev/tiler/pkg/graph"
	"github.com/tilerdev/tiler/pkg/observability"
	"github.com/tilerdev/tiler/pkg/tiler"
)

// graphCommand materializes the board-state graph and emits it.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		geo     Geometry
		output  string
		dot     bool
		svgPath string
	)

	cmd := &cobra.Command{
		Use:   "graph <board-size> <tile-size>",
		Short: "Emit the board-state graph as JSON",
		Long: `Build the full board-state graph and write it as JSON to stdout or a file.

Each node is a canonical board state; edges are single tile placements.
Pass --dot for Graphviz DOT output instead, or --svg to additionally
render the graph with Graphviz.

Examples:
  tiler graph 4 1 --tile-type ttile > graph.json
  tiler graph 2 2 --board-type lboard --scale 2 --svg graph.svg`,
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
			prog := newProgress(logger)
			start := time.Now()
			g, err := t.BuildGraph()
			observability.Engine().OnSearchComplete(ctx, geo.Describe(), nodeCount(g), edgeCount(g), time.Since(start), err)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Built graph with %d states and %d placements", g.NodeCount(), g.EdgeCount()))

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if dot {
				if _, err := fmt.Fprint(out, graph.ToDOT(g)); err != nil {
					return err
				}
			} else if err := graph.WriteGraph(g, out); err != nil {
				return err
			}
			if output != "" {
				printFile(output)
			}

			if svgPath != "" {
				svg, err := graph.RenderSVG(ctx, graph.ToDOT(g))
				if err != nil {
					return err
				}
				if err := os.WriteFile(svgPath, svg, 0o644); err != nil {
					return err
				}
				printFile(svgPath)
			}
			return nil
		},
	}

	addGeometryFlags(cmd, &geo)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&dot, "dot", false, "emit Graphviz DOT instead of JSON")
	cmd.Flags().StringVar(&svgPath, "svg", "", "also render the graph as SVG to this file")
	return cmd
}

func nodeCount(g *graph.Graph) int {
	if g == nil {
		return 0
	}
	return g.NodeCount()
}

func edgeCount(g *graph.Graph) int {
	if g == nil {
		return 0
	}
	return g.EdgeCount()
}
