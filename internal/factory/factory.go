package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/wordgrid/internal/dependencies/clock"
	"github.com/mcoot/wordgrid/internal/dependencies/random"
	"github.com/mcoot/wordgrid/internal/metrics"
	"github.com/mcoot/wordgrid/internal/services/board"
	"github.com/mcoot/wordgrid/internal/services/dictionary"
	"github.com/mcoot/wordgrid/internal/services/game"
	"github.com/mcoot/wordgrid/internal/services/scoring"
	"github.com/mcoot/wordgrid/internal/services/session"
	"github.com/mcoot/wordgrid/internal/storage"
	"github.com/mcoot/wordgrid/internal/storage/memory"
	redisstorage "github.com/mcoot/wordgrid/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock   clock.Clock
	Random  random.Random
	Metrics *metrics.Metrics
	Logger  *slog.Logger

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	SessionService    *session.Service
	GameController    *game.Controller

	dictionaryPath string
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the word list file read by LoadDictionary.
	// If empty, the embedded word list is used.
	DictionaryPath string
	// GridSize is the board size for new games (optional)
	GridSize int
	// Rules controls word validation (optional, zero value means defaults)
	Rules board.Rules
	// SessionConfig holds configuration for the session service (optional)
	SessionConfig session.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired.
// The dictionary is not loaded; call LoadDictionary before serving.
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), cfg, logger)
	app.dictionaryPath = cfg.DictionaryPath
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *App {
	rules := cfg.Rules
	if rules == (board.Rules{}) {
		rules = board.DefaultRules()
	}

	m := metrics.New()
	dictService := dictionary.New(store, logger)
	boardService := board.New(dictService, rnd, logger, board.WithRules(rules), board.WithGridSize(cfg.GridSize))
	scoringService := scoring.New()
	sessionService := session.New(store, clk, rnd, logger, cfg.SessionConfig)
	gameController := game.NewController(sessionService, boardService, scoringService, m, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Metrics:           m,
		Logger:            logger,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		SessionService:    sessionService,
		GameController:    gameController,
	}
}

// LoadDictionary loads the configured word list, or the embedded one
func (a *App) LoadDictionary(ctx context.Context) error {
	if a.dictionaryPath == "" {
		return a.DictionaryService.LoadEmbedded(ctx)
	}
	return a.DictionaryService.LoadFromFile(ctx, a.dictionaryPath)
}

// Close releases storage connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
