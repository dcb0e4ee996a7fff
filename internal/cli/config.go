package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI defaults loaded from a relgraph.toml file.
// Flags always win over config values; config values win over the built-in
// defaults.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
}

// RenderConfig configures the render command's defaults.
type RenderConfig struct {
	// Format is the default output format: dot, svg, or png.
	Format string `toml:"format"`
	// Rankdir is the Graphviz layout direction (TB, LR, BT, RL).
	Rankdir string `toml:"rankdir"`
	// Detailed adds a kind/order/size label to rendered output.
	Detailed bool `toml:"detailed"`
}

// CacheConfig configures the render cache.
type CacheConfig struct {
	// Dir overrides the XDG cache directory.
	Dir string `toml:"dir"`
	// TTLHours is the entry lifetime; zero means no expiry.
	TTLHours int `toml:"ttl_hours"`
	// Disabled turns the cache off entirely.
	Disabled bool `toml:"disabled"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Render: RenderConfig{Format: "svg", Rankdir: "TB"},
	}
}

// LoadConfig reads configuration from path, or when path is empty, from the
// first of ./relgraph.toml and $XDG_CONFIG_HOME/relgraph/config.toml that
// exists. A missing or unreadable file yields the defaults; config is a
// convenience, never a hard requirement.
func LoadConfig(path string) Config {
	cfg := defaultConfig()

	candidates := []string{path}
	if path == "" {
		candidates = []string{"relgraph.toml"}
		if configHome := configDir(); configHome != "" {
			candidates = append(candidates, filepath.Join(configHome, appName, "config.toml"))
		}
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(candidate, &cfg); err == nil {
			break
		}
	}

	if cfg.Render.Format == "" {
		cfg.Render.Format = "svg"
	}
	if cfg.Render.Rankdir == "" {
		cfg.Render.Rankdir = "TB"
	}
	return cfg
}

// configDir returns the XDG config home, or ~/.config as the fallback.
func configDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return configHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}
