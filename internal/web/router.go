package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleball-finder/internal/services/auth"
	"github.com/mcoot/pickleball-finder/internal/services/contact"
	"github.com/mcoot/pickleball-finder/internal/services/finder"
	"github.com/mcoot/pickleball-finder/internal/services/profile"
	"github.com/mcoot/pickleball-finder/internal/web/handler"
	"github.com/mcoot/pickleball-finder/internal/web/middleware"
	"github.com/mcoot/pickleball-finder/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	FinderService  *finder.Service
	ContactService *contact.Service
	ProfileService *profile.Service
	HubManager     *sse.HubManager
	StaticDir      string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	RegisterRoutes(r, cfg)
	r.NotFoundHandler = middleware.Logging(cfg.Logger)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		middleware.ErrorPage(w, req, http.StatusNotFound)
	}))
	return r
}

// RegisterRoutes adds the web UI routes to an existing router
func RegisterRoutes(r *mux.Router, cfg RouterConfig) {
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}

	homeHandler := handler.NewHomeHandler(cfg.FinderService, cfg.ContactService, cfg.ProfileService)
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	contactHandler := handler.NewContactHandler(cfg.ContactService, cfg.ProfileService, hubManager, cfg.Logger)
	profileHandler := handler.NewProfileHandler(cfg.ProfileService, cfg.ContactService, cfg.Logger)

	site := r.NewRoute().Subrouter()
	site.Use(middleware.Recovery(cfg.Logger))
	site.Use(middleware.Logging(cfg.Logger))

	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		site.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth for showing player info in nav)
	public := site.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	public.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected routes (require auth)
	protected := site.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("/players/{id}/contact", contactHandler.Contact).Methods(http.MethodPost)
	protected.HandleFunc("/inbox", contactHandler.Inbox).Methods(http.MethodGet)
	protected.HandleFunc("/inbox/{id}/read", contactHandler.MarkRead).Methods(http.MethodPost)
	protected.HandleFunc("/events", contactHandler.Events).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profileHandler.Show).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profileHandler.Update).Methods(http.MethodPost)
	protected.HandleFunc("/profile/privacy", profileHandler.UpdatePrivacy).Methods(http.MethodPost)
}
