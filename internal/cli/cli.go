// Package cli implements the tiler command-line interface.
//
// This package provides commands for counting exact tilings, sampling and
// bulk-rendering complete tilings, emitting the state graph, and managing
// the count cache. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - count: Compute the exact number of complete tilings
//   - single: Render one randomly sampled tiling as SVG
//   - all: Render captured tilings into a ZIP archive
//   - graph: Emit the board-state graph as JSON (optionally DOT/SVG)
//   - scaling: Count tilings across increasing board scales
//   - cache: Manage the count cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context and tagged with a short run id.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tilerdev/tiler/pkg/buildinfo"
	"github.com/tilerdev/tiler/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "tiler"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "Tiler counts and renders exact polyomino tilings",
		Long:         `Tiler enumerates exact tilings of rectangular and scaled L/T polyomino boards by L- and T-shaped tile families, counting them with arbitrary precision and rendering them as SVG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			// A short run id distinguishes interleaved runs in shared logs.
			c.Logger = c.Logger.With("run", uuid.NewString()[:8])
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/tiler/config.toml)")

	root.AddCommand(c.countCommand())
	root.AddCommand(c.singleCommand())
	root.AddCommand(c.allCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.scalingCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// newCache creates the count cache configured by the config file.
// Failures to set up a backend degrade to a null cache rather than
// failing the run: caching is an optimization, never a requirement.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache || c.Config.CacheBackend == CacheBackendNone {
		return cache.NewNullCache()
	}
	if c.Config.CacheBackend == CacheBackendRedis {
		rc, err := cache.NewRedisCache(ctx, c.Config.RedisAddr)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, continuing without cache", "addr", c.Config.RedisAddr, "err", err)
			return cache.NewNullCache()
		}
		return rc
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/tiler/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/tiler/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
