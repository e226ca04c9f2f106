package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/pickleball-finder/internal/dependencies/clock"
	"github.com/mcoot/pickleball-finder/internal/dependencies/random"
	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUsernameExists     = errors.New("username already exists")
)

// Session represents an authenticated session
type Session struct {
	Token     string
	PlayerID  model.PlayerID
	Player    model.Player
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service handles registration, login and session management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	sessions *sessionStore
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:  storage,
		clock:    clock,
		random:   random,
		logger:   logger.With(slog.String("component", "auth")),
		sessions: newSessionStore(cfg.SessionDuration),
	}
}

// Register creates an account and a discoverable player profile with default
// privacy settings, then opens a session for it
func (s *Service) Register(ctx context.Context, username, password, name string) (*Session, error) {
	_, err := s.storage.GetAccountByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	playerID := model.PlayerID(s.random.Token("p_"))
	now := s.clock.Now()

	player := &model.Player{
		ID:         playerID,
		Name:       name,
		Privacy:    model.DefaultPrivacySettings(),
		LastActive: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	account := &model.Account{
		PlayerID:     playerID,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("player registered", slog.String("player_id", string(playerID)))

	return s.createSession(player), nil
}

// Login authenticates a player, refreshes their last activity and creates a session
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	account, err := s.storage.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login failed", slog.String("player_id", string(account.PlayerID)))
		return nil, ErrInvalidCredentials
	}

	player, err := s.storage.GetPlayer(ctx, account.PlayerID)
	if err != nil {
		return nil, err
	}

	player.LastActive = s.clock.Now()
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return s.createSession(player), nil
}

// ValidateSession returns the live session for token or ErrInvalidSession
func (s *Service) ValidateSession(token string) (*Session, error) {
	session, ok := s.sessions.lookup(token, s.clock.Now())
	if !ok {
		return nil, ErrInvalidSession
	}
	return session, nil
}

func (s *Service) InvalidateSession(token string) {
	s.sessions.remove(token)
}

// GetPlayer returns the player for a session token, as of session creation
func (s *Service) GetPlayer(token string) (*model.Player, error) {
	session, err := s.ValidateSession(token)
	if err != nil {
		return nil, err
	}
	return &session.Player, nil
}

// ActiveSessions counts sessions not yet swept, expired or not
func (s *Service) ActiveSessions() int {
	return s.sessions.count()
}

func (s *Service) createSession(player *model.Player) *Session {
	now := s.clock.Now()
	session := &Session{
		Token:     s.random.Token("sess_"),
		PlayerID:  player.ID,
		Player:    *player.Clone(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessions.maxAge),
	}
	s.sessions.put(session)
	return session
}

// CleanExpiredSessions removes expired sessions and returns how many were removed
func (s *Service) CleanExpiredSessions() int {
	return s.sessions.sweep(s.clock.Now())
}
