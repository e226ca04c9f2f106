package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mcoot/pickleball-finder/internal/api/request"
	"github.com/mcoot/pickleball-finder/internal/services/auth"
	"github.com/mcoot/pickleball-finder/internal/web/middleware"
)

// AuthHandler handles authentication actions
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Formulario inválido")
		redirect(w, r, "/")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	if username == "" || password == "" {
		middleware.SetFlash(w, middleware.FlashError, "Usuario y contraseña son obligatorios")
		redirect(w, r, next)
		return
	}

	session, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Usuario o contraseña incorrectos")
		redirect(w, r, next)
		return
	}

	h.setSessionCookie(w, session)
	middleware.SetFlash(w, middleware.FlashSuccess, "¡Bienvenido de nuevo, "+session.Player.Name+"!")
	redirect(w, r, next)
}

// Register handles registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Formulario inválido")
		redirect(w, r, "/")
		return
	}

	req := request.RegisterRequest{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
		Name:     strings.TrimSpace(r.FormValue("name")),
	}
	if err := request.Validate.Struct(req); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Revisa los datos: usuario de 3 a 32 letras o números, contraseña de al menos 8 caracteres y nombre")
		redirect(w, r, "/")
		return
	}

	session, err := h.authService.Register(r.Context(), req.Username, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameExists) {
			middleware.SetFlash(w, middleware.FlashError, "Ese usuario ya existe")
		} else {
			middleware.SetFlash(w, middleware.FlashError, "No pudimos crear la cuenta")
		}
		redirect(w, r, "/")
		return
	}

	h.setSessionCookie(w, session)
	middleware.SetFlash(w, middleware.FlashSuccess, "¡Cuenta creada! Bienvenido, "+session.Player.Name+"!")
	redirect(w, r, "/")
}

// Logout ends the session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session := middleware.GetSession(r.Context()); session != nil {
		h.authService.InvalidateSession(session.Token)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, middleware.FlashInfo, "Sesión cerrada")
	redirect(w, r, "/")
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *auth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
