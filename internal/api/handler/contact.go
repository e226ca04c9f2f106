package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleball-finder/internal/api/middleware"
	"github.com/mcoot/pickleball-finder/internal/api/request"
	"github.com/mcoot/pickleball-finder/internal/api/response"
	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/services/contact"
	"github.com/mcoot/pickleball-finder/internal/services/profile"
)

// ContactHandler handles contact requests and the inbox
type ContactHandler struct {
	contactService *contact.Service
	profileService *profile.Service
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *contact.Service, profileService *profile.Service) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		profileService: profileService,
	}
}

// Contact handles POST /api/v1/players/{id}/contact
func (h *ContactHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	me := middleware.GetPlayerID(r.Context())
	sender, err := h.profileService.Get(r.Context(), me, me)
	if err != nil {
		WriteError(w, err)
		return
	}

	n, err := h.contactService.Contact(r.Context(), *sender, model.PlayerID(mux.Vars(r)["id"]), req.Message)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.NotificationFromModel(*n))
}

// ListNotifications handles GET /api/v1/players/me/notifications
func (h *ContactHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	offset, err := intParam(r, "offset")
	if err != nil {
		WriteError(w, err)
		return
	}
	limit, err := intParam(r, "limit")
	if err != nil {
		WriteError(w, err)
		return
	}

	page, err := h.contactService.List(r.Context(), middleware.GetPlayerID(r.Context()), offset, limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NotificationPageFromModel(page, offset))
}

// MarkRead handles POST /api/v1/players/me/notifications/{notification_id}/read
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := model.NotificationID(mux.Vars(r)["notification_id"])
	if err := h.contactService.MarkRead(r.Context(), middleware.GetPlayerID(r.Context()), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, NewInvalidRequestError(name + " must be a non-negative integer")
	}
	return v, nil
}
