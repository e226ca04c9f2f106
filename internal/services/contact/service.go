// Package contact delivers messages from one player to another's inbox.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/pickleball-finder/internal/dependencies/clock"
	"github.com/mcoot/pickleball-finder/internal/dependencies/random"
	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/storage"
)

// MaxMessageLength is the longest accepted message, in characters
const MaxMessageLength = 1000

// Notifier pushes events to live subscribers. Delivery is best effort.
type Notifier interface {
	Publish(event model.Event)
}

// Config holds configuration for the contact service
type Config struct {
	// NotificationLimit bounds each inbox; the oldest entries are evicted
	NotificationLimit int
}

// DefaultConfig returns default contact configuration
func DefaultConfig() Config {
	return Config{
		NotificationLimit: 100,
	}
}

// Service handles contact requests and inbox reads
type Service struct {
	storage  storage.Storage
	clock    clock.Clock
	random   random.Random
	notifier Notifier
	logger   *slog.Logger
	limit    int
}

// New creates a new contact Service. notifier may be nil.
func New(storage storage.Storage, clock clock.Clock, random random.Random, notifier Notifier, cfg Config, logger *slog.Logger) *Service {
	if cfg.NotificationLimit <= 0 {
		cfg.NotificationLimit = DefaultConfig().NotificationLimit
	}
	return &Service{
		storage:  storage,
		clock:    clock,
		random:   random,
		notifier: notifier,
		logger:   logger.With(slog.String("component", "contact")),
		limit:    cfg.NotificationLimit,
	}
}

// Contact appends a notification from the sender to the target's inbox
func (s *Service) Contact(ctx context.Context, from model.Player, targetID model.PlayerID, message string) (*model.Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, model.ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, model.ErrMessageTooLong
	}

	target, err := s.storage.GetPlayer(ctx, targetID)
	if err != nil {
		return nil, err
	}
	// Hidden players are indistinguishable from missing ones
	if !target.IsVisible() {
		return nil, model.ErrPlayerNotFound
	}
	if !target.Privacy.AllowContact {
		return nil, model.ErrContactNotAllowed
	}

	now := s.clock.Now()
	n := model.Notification{
		ID: model.NotificationID(s.random.UUID()),
		From: model.Sender{
			PlayerID: from.ID,
			Name:     from.Name,
		},
		Message:   message,
		Timestamp: now,
		Read:      false,
	}

	if err := s.storage.AppendNotification(ctx, target.ID, n, s.limit); err != nil {
		return nil, fmt.Errorf("append notification: %w", err)
	}

	s.touchSender(ctx, from.ID)

	s.logger.Info("player contacted",
		slog.String("from", string(from.ID)),
		slog.String("to", string(target.ID)),
		slog.String("notification", string(n.ID)))

	if s.notifier != nil {
		s.notifier.Publish(model.Event{
			Type:      model.EventNotification,
			Timestamp: now,
			PlayerID:  target.ID,
			Payload:   model.NotificationPayload{Notification: n},
		})
	}

	return &n, nil
}

// touchSender refreshes the sender's LastActive. The message is already
// delivered, so failures are only logged.
func (s *Service) touchSender(ctx context.Context, id model.PlayerID) {
	sender, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		s.logger.Warn("sender not found for activity update",
			slog.String("player", string(id)),
			slog.Any("error", err))
		return
	}
	sender.LastActive = s.clock.Now()
	if err := s.storage.SavePlayer(ctx, sender); err != nil {
		s.logger.Warn("failed to refresh sender activity",
			slog.String("player", string(id)),
			slog.Any("error", err))
	}
}

// List returns a page of the owner's inbox, oldest first
func (s *Service) List(ctx context.Context, owner model.PlayerID, offset, limit int) (*model.NotificationPage, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > s.limit {
		limit = s.limit
	}

	notifications, total, err := s.storage.ListNotifications(ctx, owner, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	unread, err := s.storage.CountUnreadNotifications(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("count unread: %w", err)
	}

	return &model.NotificationPage{
		Notifications: notifications,
		Total:         total,
		Unread:        unread,
	}, nil
}

// MarkRead flags one of the owner's notifications as read
func (s *Service) MarkRead(ctx context.Context, owner model.PlayerID, id model.NotificationID) error {
	return s.storage.MarkNotificationRead(ctx, owner, id)
}
