package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/mcoot/pickleball-finder/internal/web/templates/layout"
)

// Flash kinds, also used as the CSS modifier on the banner
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

const (
	flashCookie     = "flash"
	flashTTLSeconds = 60
	flashContextKey = contextKey("flash")
)

func GetFlash(ctx context.Context) *layout.FlashMessage {
	flash, _ := ctx.Value(flashContextKey).(*layout.FlashMessage)
	return flash
}

// SetFlash queues message for the next page the browser loads
func SetFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, flashCookieWith(url.QueryEscape(kind+":"+message), flashTTLSeconds))
}

// Flash moves a queued message from its cookie into the request context.
// The cookie is cleared so the message shows once.
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(flashCookie)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			http.SetCookie(w, flashCookieWith("", -1))
			ctx := context.WithValue(r.Context(), flashContextKey, decodeFlash(c.Value))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func flashCookieWith(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// decodeFlash reads "kind:message". Unknown kinds and bare messages show as info.
func decodeFlash(raw string) *layout.FlashMessage {
	if v, err := url.QueryUnescape(raw); err == nil {
		raw = v
	}
	kind, message, ok := strings.Cut(raw, ":")
	if !ok {
		return &layout.FlashMessage{Type: FlashInfo, Message: raw}
	}
	switch kind {
	case FlashSuccess, FlashError, FlashInfo:
	default:
		kind = FlashInfo
	}
	return &layout.FlashMessage{Type: kind, Message: message}
}
