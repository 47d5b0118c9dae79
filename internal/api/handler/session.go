package handler

import (
	"net/http"

	"github.com/mcoot/wordgrid/internal/api/apierr"
	"github.com/mcoot/wordgrid/internal/api/middleware"
	"github.com/mcoot/wordgrid/internal/api/response"
	"github.com/mcoot/wordgrid/internal/services/game"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	gameController *game.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(gameController *game.Controller) *SessionHandler {
	return &SessionHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.gameController.StartSession(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Created(w, response.SessionResponseFromModel(session, true))
}

// GetMe handles GET /api/v1/sessions/me
func (h *SessionHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("no session"))
		return
	}

	response.OK(w, response.SessionResponseFromModel(session, false))
}
