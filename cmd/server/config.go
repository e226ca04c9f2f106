package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/pickleball-finder/internal/factory"
	"github.com/mcoot/pickleball-finder/internal/services/auth"
	"github.com/mcoot/pickleball-finder/internal/services/contact"
	redisstorage "github.com/mcoot/pickleball-finder/internal/storage/redis"
)

// config is the server configuration read from the environment
type config struct {
	Port              int
	Environment       string
	LogLevel          slog.Level
	StorageType       string
	RedisURL          string
	NotificationLimit int
	SessionDuration   time.Duration
	CleanupInterval   time.Duration
}

func loadConfig() (*config, error) {
	cfg := &config{
		Environment:       getEnvWithDefault("ENVIRONMENT", "production"),
		StorageType:       getEnvWithDefault("STORAGE_TYPE", factory.StorageTypeMemory),
		RedisURL:          os.Getenv("REDIS_URL"),
		NotificationLimit: contact.DefaultConfig().NotificationLimit,
		SessionDuration:   auth.DefaultConfig().SessionDuration,
		CleanupInterval:   5 * time.Minute,
	}

	var err error
	if cfg.Port, err = strconv.Atoi(getEnvWithDefault("PORT", "8080")); err != nil {
		return nil, fmt.Errorf("PORT must be a number: %w", err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getEnvWithDefault("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if v := os.Getenv("NOTIFICATION_LIMIT"); v != "" {
		if cfg.NotificationLimit, err = strconv.Atoi(v); err != nil || cfg.NotificationLimit <= 0 {
			return nil, fmt.Errorf("NOTIFICATION_LIMIT must be a positive number")
		}
	}
	if v := os.Getenv("SESSION_DURATION"); v != "" {
		if cfg.SessionDuration, err = time.ParseDuration(v); err != nil || cfg.SessionDuration <= 0 {
			return nil, fmt.Errorf("SESSION_DURATION must be a positive duration such as 24h")
		}
	}

	switch cfg.StorageType {
	case factory.StorageTypeMemory:
	case factory.StorageTypeRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_TYPE %q", cfg.StorageType)
	}

	return cfg, nil
}

func (c *config) isDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// factoryConfig maps the server configuration onto the application factory
func (c *config) factoryConfig(logger *slog.Logger) factory.Config {
	cfg := factory.Config{
		AuthConfig:    auth.Config{SessionDuration: c.SessionDuration},
		ContactConfig: contact.Config{NotificationLimit: c.NotificationLimit},
		Logger:        logger,
		StorageType:   c.StorageType,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
