// Package config holds runtime settings for the heroedit CLI.
package config

import (
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"heroedit/internal/errors"
)

// Config is populated from the environment. Flags on individual commands
// override these defaults.
type Config struct {
	// GameVersion selects the position layout and catalog scope: roe, ab or sod.
	GameVersion string `env:"HEROEDIT_GAME_VERSION" envDefault:"sod"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"HEROEDIT_LOG_LEVEL" envDefault:"info"`
	// Backups controls whether Save keeps a .bak copy of the original file.
	Backups bool `env:"HEROEDIT_BACKUPS" envDefault:"true"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parsing environment")
	}
	return &cfg, nil
}

// Logger builds a slog logger at the configured level.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelInfo
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
