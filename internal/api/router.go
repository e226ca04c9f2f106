package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleball-finder/internal/api/apierr"
	"github.com/mcoot/pickleball-finder/internal/api/handler"
	"github.com/mcoot/pickleball-finder/internal/api/middleware"
	"github.com/mcoot/pickleball-finder/internal/api/response"
	"github.com/mcoot/pickleball-finder/internal/services/auth"
	"github.com/mcoot/pickleball-finder/internal/services/contact"
	"github.com/mcoot/pickleball-finder/internal/services/finder"
	"github.com/mcoot/pickleball-finder/internal/services/profile"
	"github.com/mcoot/pickleball-finder/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	StorageType    string
	AuthService    *auth.Service
	FinderService  *finder.Service
	ContactService *contact.Service
	ProfileService *profile.Service
	HubManager     *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	RegisterRoutes(r, cfg)
	return r
}

// RegisterRoutes mounts the API under /api/v1 on an existing router
func RegisterRoutes(r *mux.Router, cfg RouterConfig) {
	playerHandler := handler.NewPlayerHandler(cfg.AuthService, cfg.ProfileService)
	searchHandler := handler.NewSearchHandler(cfg.FinderService)
	contactHandler := handler.NewContactHandler(cfg.ContactService, cfg.ProfileService)
	eventsHandler := handler.NewEventsHandler(cfg.HubManager)

	authMiddleware := middleware.Auth(cfg.AuthService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler(cfg.StorageType)).Methods(http.MethodGet)

	// Player routes (no auth required for registering/logging in)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected player routes. Fixed paths come before /{id}.
	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("/logout", playerHandler.Logout).Methods(http.MethodPost)
	players.HandleFunc("/search", searchHandler.Search).Methods(http.MethodGet)
	players.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	players.HandleFunc("/me/notifications", contactHandler.ListNotifications).Methods(http.MethodGet)
	players.HandleFunc("/me/notifications/{notification_id}/read", contactHandler.MarkRead).Methods(http.MethodPost)
	players.HandleFunc("/me/events", eventsHandler.Stream).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Get).Methods(http.MethodGet)
	players.HandleFunc("/{id}", playerHandler.Update).Methods(http.MethodPut)
	players.HandleFunc("/{id}/privacy", playerHandler.UpdatePrivacy).Methods(http.MethodPut)
	players.HandleFunc("/{id}/contact", contactHandler.Contact).Methods(http.MethodPost)
}

func healthHandler(storageType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, response.HealthResponse{
			Status:  "ok",
			Storage: storageType,
		})
	}
}
