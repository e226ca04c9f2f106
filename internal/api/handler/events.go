package handler

import (
	"net/http"

	"github.com/mcoot/pickleball-finder/internal/api/middleware"
	"github.com/mcoot/pickleball-finder/internal/web/sse"
)

// EventsHandler streams a player's live events
type EventsHandler struct {
	hubManager *sse.HubManager
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hubManager *sse.HubManager) *EventsHandler {
	return &EventsHandler{hubManager: hubManager}
}

// Stream handles GET /api/v1/players/me/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	sse.ServeSSE(w, r, h.hubManager, middleware.GetPlayerID(r.Context()))
}
