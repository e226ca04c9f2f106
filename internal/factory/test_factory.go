package factory

import (
	"context"
	"time"

	"github.com/mcoot/pickleball-finder/internal/dependencies/mocks"
	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/services/auth"
	"github.com/mcoot/pickleball-finder/internal/services/contact"
	"github.com/mcoot/pickleball-finder/internal/storage/memory"
	"github.com/mcoot/pickleball-finder/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), contact.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Memory:     store,
	}
}

// RegisterPlayer registers an account and applies profile fields and privacy
// settings to it, returning the session
func (t *TestApp) RegisterPlayer(ctx context.Context, username string, p model.Player) (*auth.Session, error) {
	session, err := t.AuthService.Register(ctx, username, "password123", p.Name)
	if err != nil {
		return nil, err
	}

	player, err := t.Storage.GetPlayer(ctx, session.PlayerID)
	if err != nil {
		return nil, err
	}
	player.Email = p.Email
	player.Phone = p.Phone
	player.Location = p.Location
	player.Bio = p.Bio
	player.SkillLevel = p.SkillLevel
	player.Availability = p.Availability
	player.PhotoURL = p.PhotoURL
	if p.Privacy != (model.PrivacySettings{}) {
		player.Privacy = p.Privacy
	}
	if !p.LastActive.IsZero() {
		player.LastActive = p.LastActive
	}
	if err := t.Storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return session, nil
}
