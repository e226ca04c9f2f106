package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleball-finder/internal/api/middleware"
	"github.com/mcoot/pickleball-finder/internal/api/request"
	"github.com/mcoot/pickleball-finder/internal/api/response"
	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/services/auth"
	"github.com/mcoot/pickleball-finder/internal/services/profile"
)

// PlayerHandler handles account and profile endpoints
type PlayerHandler struct {
	authService    *auth.Service
	profileService *profile.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(authService *auth.Service, profileService *profile.Service) *PlayerHandler {
	return &PlayerHandler{
		authService:    authService,
		profileService: profileService,
	}
}

// Register handles POST /api/v1/players/register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.authService.Register(r.Context(), req.Username, req.Password, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, "/api/v1/players/"+string(session.PlayerID), response.AuthResponseFromSession(session))
}

// Login handles POST /api/v1/players/login
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/players/logout
func (h *PlayerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	h.authService.InvalidateSession(session.Token)
	response.NoContent(w)
}

// GetMe handles GET /api/v1/players/me
func (h *PlayerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	me := middleware.GetPlayerID(r.Context())
	player, err := h.profileService.Get(r.Context(), me, me)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player, true))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.GetPlayerID(r.Context())
	id := model.PlayerID(mux.Vars(r)["id"])

	player, err := h.profileService.Get(r.Context(), viewer, id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player, viewer == id))
}

// Update handles PUT /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateProfileRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	actor := middleware.GetPlayerID(r.Context())
	player, err := h.profileService.UpdateProfile(r.Context(), actor, model.PlayerID(mux.Vars(r)["id"]), profile.Update{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		Bio:          req.Bio,
		SkillLevel:   req.SkillLevel,
		Availability: req.Availability,
		PhotoURL:     req.PhotoURL,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player, true))
}

// UpdatePrivacy handles PUT /api/v1/players/{id}/privacy
func (h *PlayerHandler) UpdatePrivacy(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePrivacyRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	actor := middleware.GetPlayerID(r.Context())
	player, err := h.profileService.UpdatePrivacy(r.Context(), actor, model.PlayerID(mux.Vars(r)["id"]), model.PrivacySettings{
		IsVisible:    *req.IsVisible,
		ShowEmail:    *req.ShowEmail,
		ShowPhone:    *req.ShowPhone,
		ShowLocation: *req.ShowLocation,
		AllowContact: *req.AllowContact,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PrivacyFromModel(player.Privacy))
}
