// Package profile reads and updates player profiles and privacy settings.
package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/pickleball-finder/internal/dependencies/clock"
	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/services/finder"
	"github.com/mcoot/pickleball-finder/internal/storage"
)

// Field limits for profile updates
const (
	MaxNameLength = 100
	MaxBioLength  = 500
)

// Notifier pushes events to live subscribers. Delivery is best effort.
type Notifier interface {
	Publish(event model.Event)
}

// Update is a full replacement of a player's editable profile fields
type Update struct {
	Name         string
	Email        string
	Phone        string
	Location     string
	Bio          string
	SkillLevel   string
	Availability []string
	PhotoURL     string
}

// Service manages player profiles
type Service struct {
	storage  storage.Storage
	clock    clock.Clock
	notifier Notifier
	logger   *slog.Logger
}

// New creates a new profile Service. notifier may be nil.
func New(storage storage.Storage, clock clock.Clock, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		clock:    clock,
		notifier: notifier,
		logger:   logger.With(slog.String("component", "profile")),
	}
}

// Redact returns the view of a player shown to other players: email, phone
// and location are blanked unless the matching show flag is set
func Redact(p model.Player) model.Player {
	view := *p.Clone()
	if !p.Privacy.ShowEmail {
		view.Email = ""
	}
	if !p.Privacy.ShowPhone {
		view.Phone = ""
	}
	if !p.Privacy.ShowLocation {
		view.Location = ""
	}
	return view
}

// RedactAll applies Redact to every player
func RedactAll(players []model.Player) []model.Player {
	result := make([]model.Player, len(players))
	for i, p := range players {
		result[i] = Redact(p)
	}
	return result
}

// Get returns the profile of id as seen by viewer. Owners see everything;
// other players see a redacted view, and hidden profiles do not exist for them.
func (s *Service) Get(ctx context.Context, viewer, id model.PlayerID) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}
	if viewer == id {
		return player, nil
	}
	if !player.IsVisible() {
		return nil, model.ErrPlayerNotFound
	}
	view := Redact(*player)
	return &view, nil
}

// UpdatePrivacy replaces all privacy flags of subject. Only the subject may do this.
func (s *Service) UpdatePrivacy(ctx context.Context, actor, subject model.PlayerID, settings model.PrivacySettings) (*model.Player, error) {
	if actor != subject {
		return nil, model.ErrForbidden
	}

	player, err := s.storage.GetPlayer(ctx, subject)
	if err != nil {
		return nil, err
	}

	player.Privacy = settings
	player.UpdatedAt = s.clock.Now()
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("save player: %w", err)
	}

	s.logger.Info("privacy updated",
		slog.String("player", string(subject)),
		slog.Bool("visible", settings.IsVisible),
		slog.Bool("allow_contact", settings.AllowContact))

	s.publish(model.Event{
		Type:      model.EventPrivacyChanged,
		Timestamp: player.UpdatedAt,
		PlayerID:  subject,
		Payload:   model.PrivacyChangedPayload{Privacy: settings},
	})

	return player, nil
}

// UpdateProfile replaces the editable fields of subject. Only the subject may do this.
func (s *Service) UpdateProfile(ctx context.Context, actor, subject model.PlayerID, update Update) (*model.Player, error) {
	if actor != subject {
		return nil, model.ErrForbidden
	}

	update, err := normalize(update)
	if err != nil {
		return nil, err
	}

	player, err := s.storage.GetPlayer(ctx, subject)
	if err != nil {
		return nil, err
	}

	player.Name = update.Name
	player.Email = update.Email
	player.Phone = update.Phone
	player.Location = update.Location
	player.Bio = update.Bio
	player.SkillLevel = update.SkillLevel
	player.Availability = update.Availability
	player.PhotoURL = update.PhotoURL
	player.UpdatedAt = s.clock.Now()
	player.LastActive = player.UpdatedAt

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("save player: %w", err)
	}

	s.logger.Info("profile updated", slog.String("player", string(subject)))

	s.publish(model.Event{
		Type:      model.EventProfileUpdated,
		Timestamp: player.UpdatedAt,
		PlayerID:  subject,
		Payload:   model.ProfileUpdatedPayload{Player: *player.Clone()},
	})

	return player, nil
}

func (s *Service) publish(event model.Event) {
	if s.notifier != nil {
		s.notifier.Publish(event)
	}
}

func normalize(u Update) (Update, error) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)
	u.Phone = strings.TrimSpace(u.Phone)
	u.Location = strings.TrimSpace(u.Location)
	u.Bio = strings.TrimSpace(u.Bio)
	u.SkillLevel = strings.TrimSpace(u.SkillLevel)
	u.PhotoURL = strings.TrimSpace(u.PhotoURL)

	if u.Name == "" {
		return u, fmt.Errorf("%w: name is required", model.ErrInvalidProfile)
	}
	if len([]rune(u.Name)) > MaxNameLength {
		return u, fmt.Errorf("%w: name exceeds %d characters", model.ErrInvalidProfile, MaxNameLength)
	}
	if len([]rune(u.Bio)) > MaxBioLength {
		return u, fmt.Errorf("%w: bio exceeds %d characters", model.ErrInvalidProfile, MaxBioLength)
	}
	if u.SkillLevel != "" && !finder.ValidSkillLevel(u.SkillLevel) {
		return u, fmt.Errorf("%w: skill level must be a rating between %.1f and %.1f",
			model.ErrInvalidProfile, finder.MinSkillLevel, finder.MaxSkillLevel)
	}

	tags := make([]string, 0, len(u.Availability))
	for _, tag := range u.Availability {
		tag = strings.TrimSpace(tag)
		if tag == "" || containsFold(tags, tag) {
			continue
		}
		tags = append(tags, tag)
	}
	u.Availability = tags

	return u, nil
}

func containsFold(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
