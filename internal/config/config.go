// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mcoot/wordgrid/internal/factory"
	"github.com/mcoot/wordgrid/internal/services/board"
	"github.com/mcoot/wordgrid/internal/services/session"
	redisstorage "github.com/mcoot/wordgrid/internal/storage/redis"
)

// Config holds every setting the server reads at startup
type Config struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"8080"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`

	// DictionaryPath is the word list file; empty uses the embedded list
	DictionaryPath string `env:"DICTIONARY_PATH"`

	GridSize      int    `env:"GRID_SIZE" envDefault:"5"`
	GridAdjacency string `env:"GRID_ADJACENCY"`
	CheckOrder    string `env:"CHECK_ORDER"`

	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	RoundSeconds int           `env:"ROUND_SECONDS" envDefault:"60"`

	// StaticDir serves assets from disk instead of the embedded copy
	StaticDir string `env:"STATIC_DIR"`
}

// Load reads optional dotenv files, then parses the environment.
// Missing dotenv files are ignored; variables already set win.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that parse but make no sense
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.GridSize <= 0 {
		return fmt.Errorf("invalid GRID_SIZE %d: must be positive", c.GridSize)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("invalid SESSION_TTL %s: must be positive", c.SessionTTL)
	}
	if c.RoundSeconds <= 0 {
		return fmt.Errorf("invalid ROUND_SECONDS %d: must be positive", c.RoundSeconds)
	}
	switch c.StorageType {
	case factory.StorageTypeMemory:
	case factory.StorageTypeRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q", c.StorageType)
	}
	if _, err := c.Rules(); err != nil {
		return err
	}
	return nil
}

// Rules returns the word validation rules named by the config
func (c Config) Rules() (board.Rules, error) {
	return board.ParseRules(c.GridAdjacency, c.CheckOrder)
}

// Factory builds the application factory config
func (c Config) Factory(logger *slog.Logger) (factory.Config, error) {
	rules, err := c.Rules()
	if err != nil {
		return factory.Config{}, err
	}

	cfg := factory.Config{
		DictionaryPath: c.DictionaryPath,
		GridSize:       c.GridSize,
		Rules:          rules,
		SessionConfig:  session.Config{SessionDuration: c.SessionTTL},
		Logger:         logger,
		StorageType:    c.StorageType,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.SessionTTL = c.SessionTTL
		cfg.RedisConfig = &redisCfg
	}
	return cfg, nil
}
