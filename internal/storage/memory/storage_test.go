package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:           "player-1",
		Name:         "Sarah M.",
		Location:     "Guadalajara, Jalisco",
		SkillLevel:   "4.0",
		Availability: []string{"Weekdays"},
		Privacy:      model.DefaultPrivacySettings(),
		CreatedAt:    time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.Name, retrieved.Name)
	s.Equal(player.Availability, retrieved.Availability)
	s.True(retrieved.IsVisible())
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerReturnsCopy() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", Availability: []string{"Weekdays"}})

	retrieved, _ := s.storage.GetPlayer(s.ctx, "player-1")
	retrieved.Name = "Changed"
	retrieved.Availability[0] = "Mornings"

	again, _ := s.storage.GetPlayer(s.ctx, "player-1")
	s.Empty(again.Name)
	s.Equal([]string{"Weekdays"}, again.Availability)
}

func (s *StorageSuite) TestDeletePlayer() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", Name: "Alice"})

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestListPlayersPreservesRegistrationOrder() {
	for _, id := range []model.PlayerID{"c", "a", "b"} {
		_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: id})
	}
	// Re-saving must not move a player to the end
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "c", Name: "Updated"})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.PlayerID("c"), players[0].ID)
	s.Equal("Updated", players[0].Name)
	s.Equal(model.PlayerID("a"), players[1].ID)
	s.Equal(model.PlayerID("b"), players[2].ID)
}

func (s *StorageSuite) TestListPlayersIsSnapshot() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "a", Availability: []string{"Weekends"}})

	players, _ := s.storage.ListPlayers(s.ctx)
	players[0].Availability[0] = "Never"

	again, _ := s.storage.GetPlayer(s.ctx, "a")
	s.Equal([]string{"Weekends"}, again.Availability)
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &model.Account{
		PlayerID:     "player-1",
		Username:     "alice",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccount(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(account.Username, retrieved.Username)
}

func (s *StorageSuite) TestGetAccountByUsername() {
	_ = s.storage.SaveAccount(s.ctx, &model.Account{PlayerID: "player-1", Username: "alice"})

	retrieved, err := s.storage.GetAccountByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("player-1", string(retrieved.PlayerID))
}

func (s *StorageSuite) TestGetAccountByUsernameNotFound() {
	_, err := s.storage.GetAccountByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Notification tests

func notification(id string) model.Notification {
	return model.Notification{
		ID:        model.NotificationID(id),
		From:      model.Sender{PlayerID: "sender", Name: "Sender"},
		Message:   "Hello, want to play?",
		Timestamp: time.Now(),
	}
}

func (s *StorageSuite) TestAppendAndListNotifications() {
	_ = s.storage.AppendNotification(s.ctx, "player-1", notification("n1"), 0)
	_ = s.storage.AppendNotification(s.ctx, "player-1", notification("n2"), 0)

	list, total, err := s.storage.ListNotifications(s.ctx, "player-1", 0, 10)
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Require().Len(list, 2)
	s.Equal(model.NotificationID("n1"), list[0].ID)
	s.Equal(model.NotificationID("n2"), list[1].ID)
}

func (s *StorageSuite) TestAppendNotificationEvictsOldest() {
	for i := 1; i <= 5; i++ {
		_ = s.storage.AppendNotification(s.ctx, "player-1", notification(fmt.Sprintf("n%d", i)), 3)
	}

	list, total, err := s.storage.ListNotifications(s.ctx, "player-1", 0, 10)
	s.Require().NoError(err)
	s.Equal(3, total)
	s.Equal(model.NotificationID("n3"), list[0].ID)
	s.Equal(model.NotificationID("n5"), list[2].ID)
}

func (s *StorageSuite) TestListNotificationsPaginates() {
	for i := 1; i <= 5; i++ {
		_ = s.storage.AppendNotification(s.ctx, "player-1", notification(fmt.Sprintf("n%d", i)), 0)
	}

	list, total, err := s.storage.ListNotifications(s.ctx, "player-1", 3, 10)
	s.Require().NoError(err)
	s.Equal(5, total)
	s.Require().Len(list, 2)
	s.Equal(model.NotificationID("n4"), list[0].ID)

	list, _, err = s.storage.ListNotifications(s.ctx, "player-1", 10, 10)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *StorageSuite) TestMarkNotificationRead() {
	_ = s.storage.AppendNotification(s.ctx, "player-1", notification("n1"), 0)
	_ = s.storage.AppendNotification(s.ctx, "player-1", notification("n2"), 0)

	unread, _ := s.storage.CountUnreadNotifications(s.ctx, "player-1")
	s.Equal(2, unread)

	err := s.storage.MarkNotificationRead(s.ctx, "player-1", "n1")
	s.Require().NoError(err)

	unread, _ = s.storage.CountUnreadNotifications(s.ctx, "player-1")
	s.Equal(1, unread)

	list, _, _ := s.storage.ListNotifications(s.ctx, "player-1", 0, 10)
	s.True(list[0].Read)
	s.False(list[1].Read)
}

func (s *StorageSuite) TestMarkNotificationReadNotFound() {
	err := s.storage.MarkNotificationRead(s.ctx, "player-1", "missing")
	s.ErrorIs(err, model.ErrNotificationNotFound)
}
