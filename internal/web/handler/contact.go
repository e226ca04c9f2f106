package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleball-finder/internal/api/apierr"
	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/services/contact"
	"github.com/mcoot/pickleball-finder/internal/services/profile"
	"github.com/mcoot/pickleball-finder/internal/web/middleware"
	"github.com/mcoot/pickleball-finder/internal/web/sse"
	"github.com/mcoot/pickleball-finder/internal/web/templates/pages"
)

// ContactHandler handles contact forms, the inbox and the live event stream
type ContactHandler struct {
	contactService *contact.Service
	profileService *profile.Service
	hubManager     *sse.HubManager
	logger         *slog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *contact.Service, profileService *profile.Service, hubManager *sse.HubManager, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		profileService: profileService,
		hubManager:     hubManager,
		logger:         logger,
	}
}

// Contact handles the contact form on a player card
func (h *ContactHandler) Contact(w http.ResponseWriter, r *http.Request) {
	back := r.Referer()
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Formulario inválido")
		redirect(w, r, localPath(back))
		return
	}

	me := middleware.GetSession(r.Context()).PlayerID
	sender, err := h.profileService.Get(r.Context(), me, me)
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, errorMessage(err))
		redirect(w, r, localPath(back))
		return
	}

	target := model.PlayerID(mux.Vars(r)["id"])
	if _, err := h.contactService.Contact(r.Context(), *sender, target, r.FormValue("message")); err != nil {
		middleware.SetFlash(w, middleware.FlashError, errorMessage(err))
		redirect(w, r, localPath(back))
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, "Mensaje enviado")
	redirect(w, r, localPath(back))
}

// Inbox renders the player's notifications
func (h *ContactHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	me := middleware.GetSession(r.Context()).PlayerID
	page, err := h.contactService.List(r.Context(), me, 0, 0)
	if err != nil {
		h.logger.Error("list notifications", slog.String("player", string(me)), slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.InboxData{
		PageData: pageData(r.Context(), "Mensajes", nil, h.profileService),
		Page:     page,
	}
	data.Unread = page.Unread
	render(w, r, http.StatusOK, pages.Inbox(data))
}

// MarkRead flags a notification as read and returns to the inbox
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	me := middleware.GetSession(r.Context()).PlayerID
	id := model.NotificationID(mux.Vars(r)["id"])
	if err := h.contactService.MarkRead(r.Context(), me, id); err != nil {
		middleware.SetFlash(w, middleware.FlashError, errorMessage(err))
	}
	redirect(w, r, "/inbox")
}

// Events streams the player's notifications over SSE
func (h *ContactHandler) Events(w http.ResponseWriter, r *http.Request) {
	sse.ServeSSE(w, r, h.hubManager, middleware.GetSession(r.Context()).PlayerID)
}

// errorMessage turns a service error into a message for the flash banner
func errorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrEmptyMessage):
		return "El mensaje no puede estar vacío"
	case errors.Is(err, model.ErrMessageTooLong):
		return "El mensaje es demasiado largo"
	case errors.Is(err, model.ErrContactNotAllowed):
		return "Este jugador no acepta mensajes"
	case errors.Is(err, model.ErrPlayerNotFound):
		return "Jugador no encontrado"
	case errors.Is(err, model.ErrNotificationNotFound):
		return "Mensaje no encontrado"
	case errors.Is(err, model.ErrInvalidProfile):
		return "Revisa tu perfil: nombre obligatorio, nivel entre 1.0 y 8.0 (por ejemplo 3.5) y biografía de hasta 500 caracteres"
	default:
		return apierr.Message(err)
	}
}

// localPath keeps only the path and query of a referer so redirects stay on this site
func localPath(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
