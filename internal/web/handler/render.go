package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/pickleball-finder/internal/services/contact"
	"github.com/mcoot/pickleball-finder/internal/services/profile"
	"github.com/mcoot/pickleball-finder/internal/web/middleware"
	"github.com/mcoot/pickleball-finder/internal/web/templates/layout"
)

// render writes a page with the given status
func render(w http.ResponseWriter, r *http.Request, status int, page templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(r.Context(), w); err != nil {
		slog.Default().Error("render page", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
}

// pageData builds the common page data for the request. The signed-in player
// is read from storage so the nav reflects profile edits made since login;
// the session snapshot is only used if that read fails.
func pageData(ctx context.Context, title string, contacts *contact.Service, profiles *profile.Service) layout.PageData {
	data := layout.PageData{
		Title:  title,
		Player: middleware.GetPlayer(ctx),
		Flash:  middleware.GetFlash(ctx),
	}
	if data.Player == nil {
		return data
	}
	if profiles != nil {
		if p, err := profiles.Get(ctx, data.Player.ID, data.Player.ID); err == nil {
			data.Player = p
		}
	}
	if contacts != nil {
		if page, err := contacts.List(ctx, data.Player.ID, 0, 1); err == nil {
			data.Unread = page.Unread
		}
	}
	return data
}

// redirect sends the browser back to a local path, defaulting to the finder page
func redirect(w http.ResponseWriter, r *http.Request, next string) {
	http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
}

// safeNext returns next if it is a path on this site, or "/" otherwise.
// Browsers read a leading "//" or "/\" as another host.
func safeNext(next string) string {
	if len(next) == 0 || next[0] != '/' {
		return "/"
	}
	if len(next) > 1 && (next[1] == '/' || next[1] == '\\') {
		return "/"
	}
	if strings.ContainsAny(next, "\\\r\n\t") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}
