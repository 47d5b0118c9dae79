package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordgrid/internal/factory"
	"github.com/mcoot/wordgrid/internal/services/board"
)

var configVars = []string{
	"HOST", "PORT", "LOG_LEVEL", "STORAGE_TYPE", "REDIS_URL", "DICTIONARY_PATH",
	"GRID_SIZE", "GRID_ADJACENCY", "CHECK_ORDER", "SESSION_TTL", "ROUND_SECONDS", "STATIC_DIR",
}

// clearEnv unsets every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func noDotenv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(noDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, factory.StorageTypeMemory, cfg.StorageType)
	assert.Empty(t, cfg.DictionaryPath)
	assert.Equal(t, 5, cfg.GridSize)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 60, cfg.RoundSeconds)

	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, board.DefaultRules(), rules)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GRID_SIZE", "4")
	t.Setenv("GRID_ADJACENCY", "orthogonal")
	t.Setenv("CHECK_ORDER", "dictionary-first")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load(noDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 4, cfg.GridSize)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)

	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, board.Rules{Adjacency: board.AdjacencyOrthogonal, Order: board.DictionaryFirst}, rules)
}

func TestLoad_Dotenv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("PORT=6000\nGRID_SIZE=6\n"), 0600))

	cfg, err := Load(file)
	require.NoError(t, err)

	// Variables already in the environment win over the file
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, 6, cfg.GridSize)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non-numeric port", map[string]string{"PORT": "eighty"}},
		{"port out of range", map[string]string{"PORT": "70000"}},
		{"zero grid size", map[string]string{"GRID_SIZE": "0"}},
		{"bad duration", map[string]string{"SESSION_TTL": "soon"}},
		{"negative ttl", map[string]string{"SESSION_TTL": "-1h"}},
		{"zero round", map[string]string{"ROUND_SECONDS": "0"}},
		{"unknown storage", map[string]string{"STORAGE_TYPE": "postgres"}},
		{"redis without url", map[string]string{"STORAGE_TYPE": "redis"}},
		{"bad adjacency", map[string]string{"GRID_ADJACENCY": "hex"}},
		{"bad check order", map[string]string{"CHECK_ORDER": "random"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(noDotenv(t))
			assert.Error(t, err)
		})
	}
}

func TestFactory_Memory(t *testing.T) {
	cfg := Config{
		StorageType: factory.StorageTypeMemory,
		GridSize:    4,
		SessionTTL:  time.Hour,
		CheckOrder:  "dictionary-first",
	}

	fc, err := cfg.Factory(nil)
	require.NoError(t, err)

	assert.Equal(t, 4, fc.GridSize)
	assert.Equal(t, time.Hour, fc.SessionConfig.SessionDuration)
	assert.Equal(t, board.DictionaryFirst, fc.Rules.Order)
	assert.Nil(t, fc.RedisConfig)
}

func TestFactory_Redis(t *testing.T) {
	cfg := Config{
		StorageType: factory.StorageTypeRedis,
		RedisURL:    "redis://cache:6379/1",
		GridSize:    5,
		SessionTTL:  2 * time.Hour,
	}

	fc, err := cfg.Factory(nil)
	require.NoError(t, err)

	require.NotNil(t, fc.RedisConfig)
	assert.Equal(t, "redis://cache:6379/1", fc.RedisConfig.URL)
	assert.Equal(t, 2*time.Hour, fc.RedisConfig.SessionTTL)
}
