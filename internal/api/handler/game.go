package handler

import (
	"net/http"

	"github.com/mcoot/wordgrid/internal/api/apierr"
	"github.com/mcoot/wordgrid/internal/api/middleware"
	"github.com/mcoot/wordgrid/internal/api/request"
	"github.com/mcoot/wordgrid/internal/api/response"
	"github.com/mcoot/wordgrid/internal/services/game"
)

// GameHandler handles game endpoints for the authenticated session
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Start handles POST /api/v1/game
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.MustGetSessionID(r.Context())

	grid, err := h.gameController.NewGame(r.Context(), sessionID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Created(w, response.BoardResponse{Board: response.BoardFromModel(grid)})
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.MustGetSessionID(r.Context())

	grid, err := h.gameController.CurrentBoard(r.Context(), sessionID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w, response.BoardResponse{Board: response.BoardFromModel(grid)})
}

// CheckWord handles POST /api/v1/game/check-word
func (h *GameHandler) CheckWord(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.MustGetSessionID(r.Context())

	var req request.CheckWordRequest
	if err := request.Decode(w, r, &req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.gameController.CheckWord(r.Context(), sessionID, req.Word)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w, response.CheckWordResponse{Result: string(result)})
}

// Score handles POST /api/v1/game/score
func (h *GameHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req request.ScoreRequest
	if err := request.Decode(w, r, &req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	response.OK(w, response.ScoreResponse{Score: h.gameController.Score(req.Words)})
}

// PostScore handles POST /api/v1/game/post-score
func (h *GameHandler) PostScore(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.MustGetSessionID(r.Context())

	var req request.PostScoreRequest
	if err := request.Decode(w, r, &req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Score == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("score is required"))
		return
	}

	stats, err := h.gameController.PostScore(r.Context(), sessionID, *req.Score)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w, response.StatsFromModel(stats))
}
