package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultDebounce    = 150 * time.Millisecond
	DefaultSectionCap  = 5
	DefaultRecentLimit = 5
)

type Config struct {
	DataDir     string `toml:"data_dir"`
	DebounceMS  int    `toml:"debounce_ms"`
	SectionCap  int    `toml:"section_cap"`
	RecentLimit int    `toml:"recent_limit"`
}

// Default returns a config with data stored under ~/.fieldops.
func Default() Config {
	dir := ".fieldops"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".fieldops")
	}
	return Config{
		DataDir:     dir,
		DebounceMS:  int(DefaultDebounce / time.Millisecond),
		SectionCap:  DefaultSectionCap,
		RecentLimit: DefaultRecentLimit,
	}
}

// Load reads a TOML config file over the defaults. A missing file is not an
// error; unset fields keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DebounceMS <= 0 {
		cfg.DebounceMS = int(DefaultDebounce / time.Millisecond)
	}
	if cfg.SectionCap <= 0 {
		cfg.SectionCap = DefaultSectionCap
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = DefaultRecentLimit
	}
	return cfg, nil
}

func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	return nil
}
