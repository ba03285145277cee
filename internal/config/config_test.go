package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Scan.MaxDepth != 5 {
		t.Errorf("Expected default max depth 5, got %d", cfg.Scan.MaxDepth)
	}
	if cfg.Window.CenterOffset != 80 {
		t.Errorf("Expected default center offset 80, got %d", cfg.Window.CenterOffset)
	}
	if len(cfg.Scan.NoiseWords) != 4 {
		t.Errorf("Expected 4 default noise words, got %d", len(cfg.Scan.NoiseWords))
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	content := `
app_name = "QuickLaunch"

[window]
width = 800
height = 500

[search]
max_results = 20
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Window.Width != 800 {
		t.Errorf("Expected width 800, got %d", cfg.Window.Width)
	}
	if cfg.Search.MaxResults != 20 {
		t.Errorf("Expected max results 20, got %d", cfg.Search.MaxResults)
	}
	// Untouched sections keep defaults
	if cfg.Icons.CacheSize != 200 {
		t.Errorf("Expected default icon cache size 200, got %d", cfg.Icons.CacheSize)
	}
}

func TestNormalize_ClampsInvalid(t *testing.T) {
	cfg := Config{}
	cfg.normalize()

	if cfg.Window.Width != DefaultConfig.Window.Width {
		t.Errorf("Expected width clamped to default, got %d", cfg.Window.Width)
	}
	if cfg.Scan.MaxDepth != DefaultConfig.Scan.MaxDepth {
		t.Errorf("Expected max depth clamped to default, got %d", cfg.Scan.MaxDepth)
	}
}
