package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	AppName string       `toml:"app_name"`
	Window  WindowConfig `toml:"window"`
	Scan    ScanConfig   `toml:"scan"`
	Icons   IconsConfig  `toml:"icons"`
	Search  SearchConfig `toml:"search"`
	Hotkey  HotkeyConfig `toml:"hotkey"`
}

type WindowConfig struct {
	Width        int `toml:"width"`
	Height       int `toml:"height"`
	CenterOffset int `toml:"center_offset"` // pixels above true vertical center
}

type ScanConfig struct {
	MaxDepth   int      `toml:"max_depth"`
	NoiseWords []string `toml:"noise_words"`
}

type IconsConfig struct {
	CacheSize int `toml:"cache_size"`
}

type SearchConfig struct {
	MaxResults int `toml:"max_results"`
	MinScore   int `toml:"min_score"`
}

type HotkeyConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig is used when no config file exists or parsing fails.
var DefaultConfig = Config{
	AppName: "QuickLaunch",
	Window: WindowConfig{
		Width:        600,
		Height:       420,
		CenterOffset: 80,
	},
	Scan: ScanConfig{
		MaxDepth:   5,
		NoiseWords: []string{"uninstall", "readme", "help", "manual"},
	},
	Icons: IconsConfig{
		CacheSize: 200,
	},
	Search: SearchConfig{
		MaxResults: 50,
		MinScore:   25,
	},
	Hotkey: HotkeyConfig{
		Enabled: true,
	},
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := user.Current()
		if err == nil {
			return filepath.Join(home.HomeDir, path[1:])
		}
	}
	return path
}

// LoadConfig loads configuration from a TOML file. Values not present in the
// file keep their defaults. A missing or unparsable file is an error so the
// caller can decide to continue with DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	path = expandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

// normalize clamps invalid values back to defaults.
func (c *Config) normalize() {
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultConfig.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultConfig.Window.Height
	}
	if c.Scan.MaxDepth <= 0 {
		c.Scan.MaxDepth = DefaultConfig.Scan.MaxDepth
	}
	if len(c.Scan.NoiseWords) == 0 {
		c.Scan.NoiseWords = DefaultConfig.Scan.NoiseWords
	}
	if c.Icons.CacheSize <= 0 {
		c.Icons.CacheSize = DefaultConfig.Icons.CacheSize
	}
	if c.Search.MaxResults <= 0 {
		c.Search.MaxResults = DefaultConfig.Search.MaxResults
	}
}
