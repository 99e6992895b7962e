// Package config loads the TOML configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// APIKeyEnv is the environment variable holding the Flickr API key.
const APIKeyEnv = "FLICKR_API_KEY"

// Defaults.
const (
	DefaultBaseURL        = "https://www.flickr.com"
	DefaultTimeoutSeconds = 30
	DefaultPageSize       = 10
	DefaultDwellSeconds   = 30
	DefaultImages         = "auto"

	// MaxPageSize is the largest page the Flickr search API returns.
	MaxPageSize = 500
)

type Config struct {
	LogLevel string `koanf:"log_level"` // debug, info, warn or error
	LogFile  string `koanf:"log_file"`  // empty means the XDG state directory

	Flickr        FlickrConfig        `koanf:"flickr"`
	Slideshow     SlideshowConfig     `koanf:"slideshow"`
	Display       DisplayConfig       `koanf:"display"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

// FlickrConfig holds the Flickr API settings.
type FlickrConfig struct {
	APIKey         string `koanf:"api_key"`
	BaseURL        string `koanf:"base_url"`
	TimeoutSeconds int    `koanf:"timeout_seconds"`
}

// SlideshowConfig holds the initial search form values.
type SlideshowConfig struct {
	PageSize     int `koanf:"page_size"`
	DwellSeconds int `koanf:"dwell_seconds"`
}

// DisplayConfig holds terminal rendering settings.
type DisplayConfig struct {
	Images string `koanf:"images"` // "auto", "kitty", "sixel" or "none"
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// Load reads ~/.config/gesture/config.toml, then ./config.toml, then
// explicit if set (last wins). A missing explicit file is an error; the
// others are optional. FLICKR_API_KEY overrides the configured key.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}
	if explicit != "" {
		explicit = expandPath(explicit)
		if err := k.Load(file.Provider(explicit), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", explicit, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		cfg.Flickr.APIKey = key
	}
	cfg.Flickr.APIKey = strings.TrimSpace(cfg.Flickr.APIKey)
	cfg.Flickr.BaseURL = strings.TrimSuffix(cfg.Flickr.BaseURL, "/")
	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "gesture", "config.toml"))
	}

	// ./config.toml has the highest priority
	paths = append(paths, "config.toml")

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

// HasAPIKey reports whether a Flickr API key is configured.
func (c *Config) HasAPIKey() bool {
	return c.Flickr.APIKey != ""
}

// GetFlickrConfig returns the Flickr settings with defaults applied.
func (c *Config) GetFlickrConfig() FlickrConfig {
	cfg := c.Flickr
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return cfg
}

// GetSlideshowConfig returns the form defaults with invalid values replaced.
func (c *Config) GetSlideshowConfig() SlideshowConfig {
	cfg := c.Slideshow
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.PageSize > MaxPageSize {
		cfg.PageSize = MaxPageSize
	}
	if cfg.DwellSeconds <= 0 {
		cfg.DwellSeconds = DefaultDwellSeconds
	}
	return cfg
}

// GetDisplayConfig returns the display settings; unknown image modes fall
// back to auto.
func (c *Config) GetDisplayConfig() DisplayConfig {
	cfg := c.Display
	switch cfg.Images {
	case "auto", "kitty", "sixel", "none":
	default:
		cfg.Images = DefaultImages
	}
	return cfg
}

// NotificationsEnabled reports whether desktop notifications are on.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// Level returns the configured log level, info when unset or unknown.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
