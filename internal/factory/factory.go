package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/pickleball-finder/internal/dependencies/clock"
	"github.com/mcoot/pickleball-finder/internal/dependencies/random"
	"github.com/mcoot/pickleball-finder/internal/services/auth"
	"github.com/mcoot/pickleball-finder/internal/services/contact"
	"github.com/mcoot/pickleball-finder/internal/services/finder"
	"github.com/mcoot/pickleball-finder/internal/services/profile"
	"github.com/mcoot/pickleball-finder/internal/storage"
	"github.com/mcoot/pickleball-finder/internal/storage/memory"
	redisstorage "github.com/mcoot/pickleball-finder/internal/storage/redis"
	"github.com/mcoot/pickleball-finder/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage     storage.Storage
	StorageType string

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService    *auth.Service
	FinderService  *finder.Service
	ContactService *contact.Service
	ProfileService *profile.Service

	// Live event delivery
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// ContactConfig holds configuration for the contact service (optional)
	// If zero value, defaults to contact.DefaultConfig()
	ContactConfig contact.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		store = redisStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory' or 'redis'", storageType)
	}

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}
	contactCfg := cfg.ContactConfig
	if contactCfg.NotificationLimit == 0 {
		contactCfg = contact.DefaultConfig()
	}

	app := newWithDependencies(store, clock.New(), random.New(), authCfg, contactCfg, logger)
	app.StorageType = storageType
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, contactCfg contact.Config, logger *slog.Logger) *App {
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)

	return &App{
		Storage:        store,
		StorageType:    StorageTypeMemory,
		Clock:          clk,
		Random:         rnd,
		AuthService:    auth.New(store, clk, rnd, authCfg, logger),
		FinderService:  finder.New(store, clk, logger),
		ContactService: contact.New(store, clk, rnd, broadcaster, contactCfg, logger),
		ProfileService: profile.New(store, clk, broadcaster, logger),
		HubManager:     hubManager,
		Broadcaster:    broadcaster,
		Logger:         logger,
	}
}

// Close releases live streams and the storage connection
func (a *App) Close() error {
	a.HubManager.Close()
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
