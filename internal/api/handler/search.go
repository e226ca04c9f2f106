package handler

import (
	"net/http"

	"github.com/mcoot/pickleball-finder/internal/api/response"
	"github.com/mcoot/pickleball-finder/internal/services/finder"
	"github.com/mcoot/pickleball-finder/internal/services/profile"
)

// SearchHandler handles player search
type SearchHandler struct {
	finderService *finder.Service
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(finderService *finder.Service) *SearchHandler {
	return &SearchHandler{finderService: finderService}
}

// Search handles GET /api/v1/players/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, filters, err := finder.ParseQuery(r.URL.Query())
	if err != nil {
		WriteError(w, err)
		return
	}

	players, err := h.finderService.Search(r.Context(), query, filters)
	if err != nil {
		// A newer request from the same client replaced this one
		if r.Context().Err() != nil {
			return
		}
		WriteError(w, err)
		return
	}

	// Results are always shown to others, including the searcher's own entry
	results := response.PlayersFromModel(profile.RedactAll(players))
	response.JSON(w, http.StatusOK, response.SearchResponse{
		Players: results,
		Count:   len(results),
	})
}
