package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/mcoot/pickleball-finder/internal/api/request"
	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/services/contact"
	"github.com/mcoot/pickleball-finder/internal/services/profile"
	"github.com/mcoot/pickleball-finder/internal/web/middleware"
	"github.com/mcoot/pickleball-finder/internal/web/templates/pages"
)

// ProfileHandler handles the signed-in player's profile and privacy forms
type ProfileHandler struct {
	profileService *profile.Service
	contactService *contact.Service
	logger         *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *profile.Service, contactService *contact.Service, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		contactService: contactService,
		logger:         logger,
	}
}

// Show renders the profile page with the stored profile
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	me := middleware.GetSession(r.Context()).PlayerID
	player, err := h.profileService.Get(r.Context(), me, me)
	if err != nil {
		h.logger.Error("load profile", slog.String("player", string(me)), slog.Any("error", err))
		middleware.ErrorPage(w, r, http.StatusInternalServerError)
		return
	}

	data := pages.ProfileData{
		PageData: pageData(r.Context(), "Mi perfil", h.contactService, nil),
		Profile:  *player,
	}
	data.Player = player
	render(w, r, http.StatusOK, pages.Profile(data))
}

// Update replaces the editable profile fields
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Formulario inválido")
		redirect(w, r, "/profile")
		return
	}

	req := request.UpdateProfileRequest{
		Name:         strings.TrimSpace(r.PostFormValue("name")),
		Email:        strings.TrimSpace(r.PostFormValue("email")),
		Phone:        strings.TrimSpace(r.PostFormValue("phone")),
		Location:     strings.TrimSpace(r.PostFormValue("location")),
		Bio:          strings.TrimSpace(r.PostFormValue("bio")),
		SkillLevel:   strings.TrimSpace(r.PostFormValue("skill_level")),
		Availability: splitTags(r.PostForm["availability"]),
		PhotoURL:     strings.TrimSpace(r.PostFormValue("photo_url")),
	}
	if err := request.Validate.Struct(req); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Revisa los datos: nombre obligatorio, correo y foto con formato válido")
		redirect(w, r, "/profile")
		return
	}

	me := middleware.GetSession(r.Context()).PlayerID
	_, err := h.profileService.UpdateProfile(r.Context(), me, me, profile.Update{
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
		middleware.SetFlash(w, middleware.FlashError, errorMessage(err))
		redirect(w, r, "/profile")
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, "Perfil actualizado")
	redirect(w, r, "/profile")
}

// UpdatePrivacy replaces every privacy flag. An unchecked box turns its flag off.
func (h *ProfileHandler) UpdatePrivacy(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Formulario inválido")
		redirect(w, r, "/profile")
		return
	}

	checked := func(name string) bool {
		on, _ := strconv.ParseBool(r.PostFormValue(name))
		return on
	}
	settings := model.PrivacySettings{
		IsVisible:    checked("is_visible"),
		ShowEmail:    checked("show_email"),
		ShowPhone:    checked("show_phone"),
		ShowLocation: checked("show_location"),
		AllowContact: checked("allow_contact"),
	}

	me := middleware.GetSession(r.Context()).PlayerID
	if _, err := h.profileService.UpdatePrivacy(r.Context(), me, me, settings); err != nil {
		middleware.SetFlash(w, middleware.FlashError, errorMessage(err))
		redirect(w, r, "/profile")
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, "Privacidad actualizada")
	redirect(w, r, "/profile")
}

// splitTags reads availability from one comma separated field or repeated fields
func splitTags(values []string) []string {
	var tags []string
	for _, raw := range values {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
