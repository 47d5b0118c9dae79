package handler

import (
	"net/http"

	"github.com/mcoot/wordgrid/internal/web/middleware"
	"github.com/mcoot/wordgrid/internal/web/templates/layout"
	"github.com/mcoot/wordgrid/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Home",
			Flash: middleware.GetFlash(r.Context()),
		},
	}
	if session := middleware.GetSession(r.Context()); session != nil {
		stats := session.Stats()
		data.Stats = &stats
	}

	render(w, r, pages.Home(data))
}
