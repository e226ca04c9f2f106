package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/pickleball-finder/internal/middleware"
	"github.com/mcoot/pickleball-finder/internal/web/templates/pages"
)

// Recovery turns handler panics into the HTML error page
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, r *http.Request, _ any) {
		ErrorPage(w, r, http.StatusInternalServerError)
	})
}

// ErrorPage writes the HTML error page with status
func ErrorPage(w http.ResponseWriter, r *http.Request, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = pages.Error(status).Render(r.Context(), w)
}
