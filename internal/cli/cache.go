package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// cacheCommand creates the cache management command.
//
// Only the file backend is managed here; a redis cache is shared
// infrastructure and is administered on the redis side.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the count cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheInfoCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached tiling counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Config.CacheBackend == CacheBackendRedis {
				printInfo("Counts are cached in redis at %s; clear them there", c.Config.RedisAddr)
				return nil
			}

			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			count, err := countCacheEntries(dir)
			if err != nil {
				return err
			}
			if err := os.RemoveAll(dir); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess("Cleared %d cached counts", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// countCacheEntries reports how many entry files live under dir.
func countCacheEntries(dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	return count, err
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache backend configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			printKeyValue("backend", c.Config.CacheBackend)
			switch c.Config.CacheBackend {
			case CacheBackendRedis:
				printKeyValue("address", c.Config.RedisAddr)
			case CacheBackendFile:
				dir, err := cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				entries, err := countCacheEntries(dir)
				if err != nil {
					return err
				}
				printKeyValue("directory", dir)
				printKeyValue("entries", fmt.Sprintf("%d", entries))
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
