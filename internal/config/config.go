package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "pokeview"

// IDPlaceholder is replaced by the numeric selection in sprite templates.
const IDPlaceholder = "{id}"

// Config contains every tunable of the viewer.
// Use Default() to get the stock values, then override as needed.
type Config struct {
	API     API     `koanf:"api"`
	Sprites Sprites `koanf:"sprites"`
	Viewer  Viewer  `koanf:"viewer"`
	Log     Log     `koanf:"log"`
}

// API configures the creature-data collaborator.
type API struct {
	BaseURL   string        `koanf:"base_url"`   // e.g. "https://pokeapi.co/api/v2"
	UserAgent string        `koanf:"user_agent"` // sent on every request
	Timeout   time.Duration `koanf:"timeout"`    // 0 keeps the transport default
}

// Sprites configures the image collaborator.
type Sprites struct {
	Enabled bool   `koanf:"enabled"` // download and draw sprites in the card
	Normal  string `koanf:"normal"`  // template containing {id}
	Shiny   string `koanf:"shiny"`   // template containing {id}
}

// Viewer configures the controller.
type Viewer struct {
	Start     int `koanf:"start"`      // initial selection (default: 1)
	RandomMax int `koanf:"random_max"` // upper bound for random picks (default: 898)
}

// Log configures the file logger. The terminal belongs to the UI, so logs never go to stdout.
type Log struct {
	File  string `koanf:"file"`  // empty means $XDG_STATE_HOME/pokeview/pokeview.log
	Level string `koanf:"level"` // debug, info, warn, error
}

// Default returns a Config with the stock PokéAPI endpoints.
func Default() Config {
	return Config{
		API: API{
			BaseURL:   "https://pokeapi.co/api/v2",
			UserAgent: "pokeview/1.0",
			Timeout:   0,
		},
		Sprites: Sprites{
			Enabled: true,
			Normal:  "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/{id}.png",
			Shiny:   "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/shiny/{id}.png",
		},
		Viewer: Viewer{
			Start:     1,
			RandomMax: 898,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads config files in order of priority (last wins) on top of Default().
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles is Load with explicit file paths. Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	cfg.API.BaseURL = strings.TrimSuffix(cfg.API.BaseURL, "/")
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/pokeview/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./pokeview.toml (pwd, highest priority)
	paths = append(paths, appName+".toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LogFile returns the configured log path, or the XDG state location.
func (c Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// WithBaseURL returns a copy of the config with a different API base URL.
func (c Config) WithBaseURL(url string) Config {
	c.API.BaseURL = strings.TrimSuffix(url, "/")
	return c
}

// WithTimeout returns a copy of the config with a client timeout.
func (c Config) WithTimeout(d time.Duration) Config {
	c.API.Timeout = d
	return c
}

// WithRandomMax returns a copy of the config with a different random upper bound.
func (c Config) WithRandomMax(n int) Config {
	c.Viewer.RandomMax = n
	return c
}

// WithSprites returns a copy of the config with sprite drawing enabled/disabled.
func (c Config) WithSprites(enabled bool) Config {
	c.Sprites.Enabled = enabled
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return &ConfigError{Field: "api.base_url", Message: "must not be empty"}
	}
	if c.API.Timeout < 0 {
		return &ConfigError{Field: "api.timeout", Message: "must not be negative"}
	}
	if c.Viewer.Start < 1 {
		return &ConfigError{Field: "viewer.start", Message: "must be at least 1"}
	}
	if c.Viewer.RandomMax < 1 {
		return &ConfigError{Field: "viewer.random_max", Message: "must be at least 1"}
	}
	if !strings.Contains(c.Sprites.Normal, IDPlaceholder) {
		return &ConfigError{Field: "sprites.normal", Message: "must contain " + IDPlaceholder}
	}
	if !strings.Contains(c.Sprites.Shiny, IDPlaceholder) {
		return &ConfigError{Field: "sprites.shiny", Message: "must contain " + IDPlaceholder}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
