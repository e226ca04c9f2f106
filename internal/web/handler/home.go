package handler

import (
	"net/http"

	"github.com/mcoot/pickleball-finder/internal/api/apierr"
	"github.com/mcoot/pickleball-finder/internal/services/contact"
	"github.com/mcoot/pickleball-finder/internal/services/finder"
	"github.com/mcoot/pickleball-finder/internal/services/profile"
	"github.com/mcoot/pickleball-finder/internal/web/templates/pages"
)

// HomeHandler handles the finder page
type HomeHandler struct {
	finderService  *finder.Service
	contactService *contact.Service
	profileService *profile.Service
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(finderService *finder.Service, contactService *contact.Service, profileService *profile.Service) *HomeHandler {
	return &HomeHandler{
		finderService:  finderService,
		contactService: contactService,
		profileService: profileService,
	}
}

// Home renders the search form and the matching players
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: pageData(r.Context(), "Buscar jugadores", h.contactService, h.profileService),
	}

	query, filters, err := finder.ParseQuery(r.URL.Query())
	data.Query = query
	data.Filters = filters
	if err != nil {
		data.Error = apierr.Message(err)
		render(w, r, http.StatusBadRequest, pages.Home(data))
		return
	}

	players, err := h.finderService.Search(r.Context(), query, filters)
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		data.Error = "No pudimos completar la búsqueda. Inténtalo de nuevo."
		render(w, r, http.StatusInternalServerError, pages.Home(data))
		return
	}

	data.Results = profile.RedactAll(players)
	render(w, r, http.StatusOK, pages.Home(data))
}
