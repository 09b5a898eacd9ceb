// Package config loads the optional TOML configuration file. Command-line
// flags override every value read here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config mirrors ~/.axsearch/config.toml.
type Config struct {
	Format            string       `toml:"format"`              // yaml or json
	LogLevel          string       `toml:"log_level"`           // debug, info, warn, error
	LinkAncestors     bool         `toml:"link_ancestors"`      // text inside a link matches Link searches
	Strict            bool         `toml:"strict"`              // panic on range search misuse
	IgnoreEmptyGroups bool         `toml:"ignore_empty_groups"` // hide anonymous groups outside web content too
	Dictionary        []string     `toml:"dictionary"`          // extra word lists for the spell checker
	Viewport          string       `toml:"viewport"`            // default "x,y,w,h" viewport
	Server            ServerConfig `toml:"server"`
}

// ServerConfig holds the [server] table.
type ServerConfig struct {
	Transport  string `toml:"transport"` // stdio or streamable-http
	Port       int    `toml:"port"`
	CacheTTLMs int    `toml:"cache_ttl_ms"`
	Watch      bool   `toml:"watch"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Format:   "yaml",
		LogLevel: "warn",
		Server: ServerConfig{
			Transport:  "stdio",
			Port:       8080,
			CacheTTLMs: 2000,
			Watch:      true,
		},
	}
}

// DefaultPath returns ~/.axsearch/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".axsearch", "config.toml"), nil
}

// Load reads the config file at path, starting from Default. An empty path
// means DefaultPath, and then a missing file is not an error. Unknown keys
// are rejected so typos surface.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("%s: %s", path, strict.String())
		}
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("unknown format %q (expected yaml or json)", c.Format)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Server.Transport {
	case "stdio", "streamable-http":
	default:
		return fmt.Errorf("unknown server transport %q (expected stdio or streamable-http)", c.Server.Transport)
	}
	if c.Server.CacheTTLMs < 0 {
		return fmt.Errorf("server cache_ttl_ms must not be negative")
	}
	return nil
}

// ParseLevel converts a log level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", s)
	}
	return level, nil
}

// Save writes cfg to path, creating the directory when needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
