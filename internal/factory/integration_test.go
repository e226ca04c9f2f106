package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/web/sse"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.NoError(s.app.Close())
}

// Test: register, search, contact and read the inbox
func (s *IntegrationSuite) TestFindAndContactFlow() {
	sarah, err := s.app.RegisterPlayer(s.ctx, "sarah", model.Player{
		Name:         "Sarah Johnson",
		Location:     "Guadalajara, Jalisco",
		SkillLevel:   "4.0",
		Availability: []string{"Weekends"},
	})
	s.Require().NoError(err)
	lisa, err := s.app.RegisterPlayer(s.ctx, "lisa", model.Player{
		Name:         "Lisa Park",
		Location:     "Monterrey, NL",
		SkillLevel:   "3.5",
		Availability: []string{"Weekdays"},
	})
	s.Require().NoError(err)

	// Step 1: Lisa searches for weekend players
	results, err := s.app.FinderService.Search(s.ctx, "", model.SearchFilters{Availability: []string{"Weekends"}})
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal(sarah.PlayerID, results[0].ID)

	// Step 2: Lisa contacts Sarah
	me, err := s.app.ProfileService.Get(s.ctx, lisa.PlayerID, lisa.PlayerID)
	s.Require().NoError(err)
	_, err = s.app.ContactService.Contact(s.ctx, *me, sarah.PlayerID, "¿Jugamos el sábado?")
	s.Require().NoError(err)

	// Step 3: Sarah reads her inbox
	page, err := s.app.ContactService.List(s.ctx, sarah.PlayerID, 0, 10)
	s.Require().NoError(err)
	s.Equal(1, page.Total)
	s.Equal(1, page.Unread)
	s.Equal("Lisa Park", page.Notifications[0].From.Name)

	s.Require().NoError(s.app.ContactService.MarkRead(s.ctx, sarah.PlayerID, page.Notifications[0].ID))
	page, err = s.app.ContactService.List(s.ctx, sarah.PlayerID, 0, 10)
	s.Require().NoError(err)
	s.Equal(0, page.Unread)
}

// Test: hiding a profile removes it from search and blocks contact
func (s *IntegrationSuite) TestHiddenPlayerDisappears() {
	sarah, err := s.app.RegisterPlayer(s.ctx, "sarah", model.Player{Name: "Sarah Johnson"})
	s.Require().NoError(err)
	lisa, err := s.app.RegisterPlayer(s.ctx, "lisa", model.Player{Name: "Lisa Park"})
	s.Require().NoError(err)

	settings := model.DefaultPrivacySettings()
	settings.IsVisible = false
	_, err = s.app.ProfileService.UpdatePrivacy(s.ctx, sarah.PlayerID, sarah.PlayerID, settings)
	s.Require().NoError(err)

	results, err := s.app.FinderService.Search(s.ctx, "sarah", model.SearchFilters{})
	s.Require().NoError(err)
	s.Empty(results)

	_, err = s.app.ContactService.Contact(s.ctx, lisa.Player, sarah.PlayerID, "hola")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Test: activity filter follows login
func (s *IntegrationSuite) TestLoginRefreshesActivity() {
	_, err := s.app.RegisterPlayer(s.ctx, "sarah", model.Player{Name: "Sarah Johnson"})
	s.Require().NoError(err)

	s.app.MockClock.Advance(8 * 24 * time.Hour)
	results, err := s.app.FinderService.Search(s.ctx, "", model.SearchFilters{IsActive: true})
	s.Require().NoError(err)
	s.Empty(results)

	_, err = s.app.AuthService.Login(s.ctx, "sarah", "password123")
	s.Require().NoError(err)
	results, err = s.app.FinderService.Search(s.ctx, "", model.SearchFilters{IsActive: true})
	s.Require().NoError(err)
	s.Len(results, 1)
}

// Test: a contact is pushed to the target's open stream
func (s *IntegrationSuite) TestContactIsPushedLive() {
	sarah, err := s.app.RegisterPlayer(s.ctx, "sarah", model.Player{Name: "Sarah Johnson"})
	s.Require().NoError(err)
	lisa, err := s.app.RegisterPlayer(s.ctx, "lisa", model.Player{Name: "Lisa Park"})
	s.Require().NoError(err)

	hub := s.app.HubManager.GetOrCreateHub(sarah.PlayerID)
	client := sse.NewClient(hub, sarah.PlayerID)
	s.Require().True(hub.Register(client))
	time.Sleep(10 * time.Millisecond)

	_, err = s.app.ContactService.Contact(s.ctx, lisa.Player, sarah.PlayerID, "hola")
	s.Require().NoError(err)

	select {
	case msg := <-client.Messages():
		s.Contains(string(msg), "event: notification\n")
		s.Contains(string(msg), "hola")
	case <-time.After(time.Second):
		s.Fail("no event delivered")
	}
}
