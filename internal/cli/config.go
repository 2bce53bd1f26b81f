package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/tilerdev/tiler/pkg/render"
	"github.com/tilerdev/tiler/pkg/tiler"
)

// Cache backend identifiers accepted in the config file.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Config holds user-tunable settings loaded from a TOML file.
type Config struct {
	// SampleCap bounds how many tilings the sampler captures before
	// picking one at random.
	SampleCap int `toml:"sample_cap"`

	// CacheBackend selects the count cache: "file", "redis" or "none".
	CacheBackend string `toml:"cache_backend"`

	// RedisAddr is the redis server address, used when cache_backend = "redis".
	RedisAddr string `toml:"redis_addr"`

	// Palette overrides the rotating tile colors used by single and all,
	// as "#rrggbb" hex strings. Empty keeps the built-in palette.
	Palette []string `toml:"palette"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		SampleCap:    tiler.DefaultSampleCap,
		CacheBackend: CacheBackendFile,
		RedisAddr:    "localhost:6379",
	}
}

// LoadConfig reads the TOML config at path, or the default location
// (~/.config/tiler/config.toml) when path is empty. A missing file is
// not an error; defaults apply. A malformed file is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SampleCap < 1 {
		return fmt.Errorf("sample_cap must be positive, got %d", c.SampleCap)
	}
	switch c.CacheBackend {
	case CacheBackendFile, CacheBackendRedis, CacheBackendNone:
	default:
		return fmt.Errorf("unknown cache_backend %q (want file, redis or none)", c.CacheBackend)
	}
	if c.CacheBackend == CacheBackendRedis && c.RedisAddr == "" {
		return fmt.Errorf("redis_addr required when cache_backend = %q", CacheBackendRedis)
	}
	for _, s := range c.Palette {
		if _, err := parseHexColor(s); err != nil {
			return err
		}
	}
	return nil
}

// PaletteColors parses the configured palette. Entries were validated
// at load time; a nil result means the default palette applies.
func (c Config) PaletteColors() []render.Color {
	if len(c.Palette) == 0 {
		return nil
	}
	colors := make([]render.Color, 0, len(c.Palette))
	for _, s := range c.Palette {
		col, err := parseHexColor(s)
		if err != nil {
			continue
		}
		colors = append(colors, col)
	}
	return colors
}

// parseHexColor parses a "#rrggbb" hex string.
func parseHexColor(s string) (render.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return render.Color{}, fmt.Errorf("palette color %q must be #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return render.Color{}, fmt.Errorf("palette color %q must be #rrggbb", s)
	}
	return render.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
