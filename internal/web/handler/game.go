package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/wordgrid/internal/api/apierr"
	"github.com/mcoot/wordgrid/internal/api/request"
	"github.com/mcoot/wordgrid/internal/api/response"
	"github.com/mcoot/wordgrid/internal/services/game"
	"github.com/mcoot/wordgrid/internal/web/middleware"
	"github.com/mcoot/wordgrid/internal/web/templates/layout"
	"github.com/mcoot/wordgrid/internal/web/templates/pages"
)

// DefaultRoundSeconds is the length of a round in the browser
const DefaultRoundSeconds = 60

// GameHandler serves the game page and the JSON calls its script makes
type GameHandler struct {
	gameController *game.Controller
	roundSeconds   int
	logger         *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameController *game.Controller, roundSeconds int, logger *slog.Logger) *GameHandler {
	if roundSeconds <= 0 {
		roundSeconds = DefaultRoundSeconds
	}
	return &GameHandler{
		gameController: gameController,
		roundSeconds:   roundSeconds,
		logger:         logger,
	}
}

// NewGame handles GET /new-game: a fresh board goes into the session and
// the game page is rendered around it
func (h *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())

	grid, err := h.gameController.NewGame(r.Context(), session.ID)
	if err != nil {
		h.logger.Error("failed to start game",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		middleware.SetFlash(w, layout.FlashMessage{
			Type:    layout.FlashError,
			Message: "Could not start a new game. Please try again.",
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	stats := session.Stats()
	data := pages.GameData{
		PageData: layout.PageData{
			Title: "Game",
			Stats: &stats,
			Flash: middleware.GetFlash(r.Context()),
		},
		Board:           grid,
		DurationSeconds: h.roundSeconds,
	}

	render(w, r, pages.Game(data))
}

// CheckWord handles POST /check-word
func (h *GameHandler) CheckWord(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())

	var req request.CheckWordRequest
	if err := request.Decode(w, r, &req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.gameController.CheckWord(r.Context(), session.ID, req.Word)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w, response.CheckWordResponse{Result: string(result)})
}

// Score handles POST /score
func (h *GameHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req request.ScoreRequest
	if err := request.Decode(w, r, &req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	response.OK(w, response.ScoreResponse{Score: h.gameController.Score(req.Words)})
}

// PostScore handles POST /post-score
func (h *GameHandler) PostScore(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())

	var req request.PostScoreRequest
	if err := request.Decode(w, r, &req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Score == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("score is required"))
		return
	}

	stats, err := h.gameController.PostScore(r.Context(), session.ID, *req.Score)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w, response.StatsFromModel(stats))
}

// render writes component as an HTML page
func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
