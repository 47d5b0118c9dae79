package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordgrid/internal/metrics"
	sharedmw "github.com/mcoot/wordgrid/internal/middleware"
	"github.com/mcoot/wordgrid/internal/services/game"
	"github.com/mcoot/wordgrid/internal/web/handler"
	"github.com/mcoot/wordgrid/internal/web/middleware"
	"github.com/mcoot/wordgrid/internal/web/static"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	Metrics        *metrics.Metrics // optional
	StaticDir      string           // Serve static files from disk instead of the embedded copy
	RoundSeconds   int              // Round length shown by the timer (optional)
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(sharedmw.Logging(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(sharedmw.Metrics(cfg.Metrics))
	}

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.RoundSeconds, cfg.Logger)

	// Static files
	var staticFS http.FileSystem = http.FS(static.FS)
	if cfg.StaticDir != "" {
		staticFS = http.Dir(cfg.StaticDir)
	}
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(staticFS)))

	// Every page and game call runs inside the visitor's session
	play := r.NewRoute().Subrouter()
	play.Use(middleware.Flash())
	play.Use(middleware.EnsureSession(cfg.GameController, cfg.Logger))

	play.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	play.HandleFunc("/new-game", gameHandler.NewGame).Methods(http.MethodGet)
	play.HandleFunc("/check-word", gameHandler.CheckWord).Methods(http.MethodPost)
	play.HandleFunc("/score", gameHandler.Score).Methods(http.MethodPost)
	play.HandleFunc("/post-score", gameHandler.PostScore).Methods(http.MethodPost)

	return r
}
