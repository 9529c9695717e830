package http

import (
	"net/http"

	"github.com/mind-engage/swiftfood/internal/catalog"
)

type levelsResponse struct {
	Levels []catalog.Level `json:"levels"`
}

type healthResponse struct {
	Status string `json:"status"`
	Server string `json:"server"`
}

// GET /api/levels
func (a *api) listLevelsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.rs.ok(w, levelsResponse{Levels: a.catalog.List()})
	}
}

// GET /api/health
func (a *api) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.rs.ok(w, healthResponse{Status: "healthy", Server: a.serverName})
	}
}
