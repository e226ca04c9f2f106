package finder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/pickleball-finder/internal/dependencies/clock"
	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/storage"
)

// Service runs player searches against stored profiles
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new finder Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger.With(slog.String("component", "finder")),
	}
}

// Search returns every visible player matching the query and filters,
// in registration order
func (s *Service) Search(ctx context.Context, query string, filters model.SearchFilters) ([]model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	// Skip filtering for a request the client has already abandoned
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := Filter(players, query, filters, s.clock.Now())

	s.logger.Debug("player search",
		slog.Bool("has_query", query != ""),
		slog.Bool("has_filters", !filters.IsZero()),
		slog.Int("candidates", len(players)),
		slog.Int("matches", len(result)))

	return result, nil
}
