package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordgrid/internal/api/handler"
	"github.com/mcoot/wordgrid/internal/api/middleware"
	"github.com/mcoot/wordgrid/internal/metrics"
	sharedmw "github.com/mcoot/wordgrid/internal/middleware"
	"github.com/mcoot/wordgrid/internal/services/dictionary"
	"github.com/mcoot/wordgrid/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	GameController    *game.Controller
	DictionaryService *dictionary.Service
	Metrics           *metrics.Metrics // optional
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	healthHandler := handler.NewHealthHandler(cfg.DictionaryService)
	sessionHandler := handler.NewSessionHandler(cfg.GameController)
	gameHandler := handler.NewGameHandler(cfg.GameController)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.GameController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(sharedmw.Logging(cfg.Logger))
	if cfg.Metrics != nil {
		api.Use(sharedmw.Metrics(cfg.Metrics))
	}

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	// Session creation needs no token
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)

	// Protected routes hang off api directly so a method mismatch still yields 405
	protected := func(h http.HandlerFunc) http.Handler { return authMiddleware(h) }
	api.Handle("/sessions/me", protected(sessionHandler.GetMe)).Methods(http.MethodGet)

	// Game routes (all require a session)
	api.Handle("/game", protected(gameHandler.Start)).Methods(http.MethodPost)
	api.Handle("/game", protected(gameHandler.Get)).Methods(http.MethodGet)
	api.Handle("/game/check-word", protected(gameHandler.CheckWord)).Methods(http.MethodPost)
	api.Handle("/game/score", protected(gameHandler.Score)).Methods(http.MethodPost)
	api.Handle("/game/post-score", protected(gameHandler.PostScore)).Methods(http.MethodPost)

	return r
}
