package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const DefaultPagesPath = "~/Documents/pagecraft"

// Storage backends
const (
	StoreYAML   = "yaml"
	StoreSQLite = "sqlite"
)

// Config holds the settings shared by all pagecraft binaries
type Config struct {
	PagesPath string `toml:"pages" env:"PAGECRAFT_PAGES"`
	Store     string `toml:"store" env:"PAGECRAFT_STORE"`
	DBPath    string `toml:"db" env:"PAGECRAFT_DB"`
	LogLevel  string `toml:"log_level" env:"PAGECRAFT_LOG_LEVEL"`
	Editor    string `toml:"editor" env:"PAGECRAFT_EDITOR"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		PagesPath: DefaultPagesPath,
		Store:     StoreYAML,
		LogLevel:  "info",
	}
}

// Load returns the defaults, overridden by the config file and then by
// environment variables. The file is $PAGECRAFT_CONFIG, falling back to
// pagecraft/config.toml in the user config directory; a missing file is
// not an error.
func Load() (Config, error) {
	cfg := Default()

	if path := FilePath(); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, cfg.Validate()
}

// FilePath returns the config file location
func FilePath() string {
	if path := os.Getenv("PAGECRAFT_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pagecraft", "config.toml")
}

// Validate checks the storage backend and log level
func (c Config) Validate() error {
	switch c.Store {
	case StoreYAML, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q (expected %s or %s)", c.Store, StoreYAML, StoreSQLite)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Logger returns a text logger writing to w at the configured level
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
