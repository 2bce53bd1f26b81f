package cli

import (
	"fmt"
	"math/big"
	"time"

	"github.com/spf13/cobra"

	"github.com/tilerdev/tiler/pkg/cache"
	"github.com/tilerdev/tiler/pkg/observability"
	"github.com/tilerdev/tiler/pkg/tiler"
)

// countCommand computes the exact number of complete tilings.
//
// Counts are memoized in the configured cache keyed by the geometry;
// --no-cache bypasses it for a single run.
func (c *CLI) countCommand() *cobra.Command {
	var (
		geo     Geometry
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "count <board-size> <tile-size>",
		Short: "Compute the exact number of complete tilings",
		Long: `Compute the exact number of complete tilings of a board by a tile family.

The count is exact at arbitrary precision; large boards can produce counts
far beyond 64 bits.

Examples:
  tiler count 4 1 --tile-type ttile             # 4x4 rectangle, T tetrominoes
  tiler count 2 2 --board-type lboard --scale 4 # scaled L board, L tiles`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parseGeometryArgs(&geo, args); err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			store := c.newCache(ctx, noCache)
			defer store.Close()

			key := cache.Key("count", geo.CacheKey())
			if data, ok, err := store.Get(ctx, key); err == nil && ok {
				count, parsed := new(big.Int).SetString(string(data), 10)
				if parsed {
					observability.Cache().OnCacheHit(ctx, "count")
					printSuccess("%s tilings found", count.String())
					printDetail("%s (cached)", geo.Describe())
					return nil
				}
			}
			observability.Cache().OnCacheMiss(ctx, "count")

			initial, err := geo.Board()
			if err != nil {
				return err
			}
			t := tiler.New(geo.Tiles(), initial)

			observability.Engine().OnCountStart(ctx, geo.Describe())
			spin := newSpinner(ctx, fmt.Sprintf("Counting tilings of %s...", geo.Describe()))
			spin.Start()
			prog := newProgress(logger)
			start := time.Now()
			count, err := t.QuickCount()
			spin.Stop()
			observability.Engine().OnCountComplete(ctx, geo.Describe(), digits(count), time.Since(start), err)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Counted %s tilings", count.String()))

			payload := []byte(count.String())
			if err := store.Set(ctx, key, payload, 0); err != nil {
				logger.Debug("cache write failed", "key", key, "err", err)
			} else {
				observability.Cache().OnCacheSet(ctx, "count", len(payload))
			}

			printSuccess("%s tilings found", count.String())
			printDetail("%s", geo.Describe())
			return nil
		},
	}

	addGeometryFlags(cmd, &geo)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the count cache")
	return cmd
}

// digits reports the decimal digit count of n, 0 for nil.
func digits(n *big.Int) int {
	if n == nil {
		return 0
	}
	return len(n.Text(10))
}
