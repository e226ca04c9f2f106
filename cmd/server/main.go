package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mcoot/pickleball-finder/internal/api"
	"github.com/mcoot/pickleball-finder/internal/factory"
	"github.com/mcoot/pickleball-finder/internal/web"
)

func main() {
	// Optional local overrides; real environment variables win
	_ = godotenv.Load(".env")

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(cfg *config, logger *slog.Logger) error {
	app, err := factory.New(cfg.factoryConfig(logger))
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("close application", slog.String("error", err.Error()))
		}
	}()

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		StorageType:    app.StorageType,
		AuthService:    app.AuthService,
		FinderService:  app.FinderService,
		ContactService: app.ContactService,
		ProfileService: app.ProfileService,
		HubManager:     app.HubManager,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		FinderService:  app.FinderService,
		ContactService: app.ContactService,
		ProfileService: app.ProfileService,
		HubManager:     app.HubManager,
		StaticDir:      findStaticDir(),
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.Port
	server := api.NewServer(mux, serverConfig, logger)
	// Closing the hubs ends open event streams so shutdown does not wait on them
	server.OnShutdown(app.HubManager.Close)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go runCleanup(ctx, app, cfg.CleanupInterval)

	logger.Info("server starting",
		slog.String("addr", server.Addr()),
		slog.String("environment", cfg.Environment),
		slog.String("storage", app.StorageType))

	return server.Run(ctx)
}

func setupLogger(cfg *config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.isDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// runCleanup periodically drops expired sessions and idle event hubs
func runCleanup(ctx context.Context, app *factory.App, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessions := app.AuthService.CleanExpiredSessions()
			hubs := app.HubManager.CleanupEmptyHubs()
			if sessions > 0 || hubs > 0 {
				app.Logger.Info("cleanup",
					slog.Int("expired_sessions", sessions),
					slog.Int("idle_hubs", hubs))
			}
		}
	}
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	// No static assets; the pages render without them
	return ""
}
