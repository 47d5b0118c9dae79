package handler

import (
	"net/http"

	"github.com/mcoot/wordgrid/internal/api/response"
	"github.com/mcoot/wordgrid/internal/services/dictionary"
)

// HealthHandler reports whether the server can validate words
type HealthHandler struct {
	dictionary *dictionary.Service
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(dictionary *dictionary.Service) *HealthHandler {
	return &HealthHandler{dictionary: dictionary}
}

// Health handles GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if !h.dictionary.IsLoaded() {
		response.JSON(w, http.StatusServiceUnavailable, response.HealthResponse{Status: "dictionary not loaded"})
		return
	}
	response.OK(w, response.HealthResponse{
		Status:          "ok",
		DictionaryWords: h.dictionary.WordCount(),
	})
}
