package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pickleball-finder/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.InboxTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	lastActive := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	player := &model.Player{
		ID:           "player-1",
		Name:         "Sarah M.",
		Location:     "Guadalajara, Jalisco",
		SkillLevel:   "4.0",
		Availability: []string{"Weekdays", "Evenings"},
		Privacy:      model.DefaultPrivacySettings(),
		LastActive:   lastActive,
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.Name, retrieved.Name)
	s.Equal(player.Availability, retrieved.Availability)
	s.Equal(player.Privacy, retrieved.Privacy)
	s.True(lastActive.Equal(retrieved.LastActive))
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestPlayerHasNoTTL() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1"})

	s.Equal(time.Duration(0), s.mini.TTL(playerKey("player-1")))
}

func (s *StorageSuite) TestDeletePlayer() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", Name: "Alice"})
	_ = s.storage.AppendNotification(s.ctx, "player-1", notification("n1"), 0)

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
	s.False(s.mini.Exists(inboxKey("player-1")))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestListPlayersPreservesRegistrationOrder() {
	for _, id := range []model.PlayerID{"c", "a", "b"} {
		_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: id})
	}
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "c", Name: "Updated"})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.PlayerID("c"), players[0].ID)
	s.Equal("Updated", players[0].Name)
	s.Equal(model.PlayerID("a"), players[1].ID)
	s.Equal(model.PlayerID("b"), players[2].ID)
}

func (s *StorageSuite) TestListPlayersEmpty() {
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.NotNil(players)
	s.Empty(players)
}

func (s *StorageSuite) TestListPlayersSkipsDanglingIndexEntries() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "a"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "b"})
	s.mini.Del(playerKey("a"))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(model.PlayerID("b"), players[0].ID)
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
	s.Equal(account.PasswordHash, retrieved.PasswordHash)
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
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
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
	s.Equal("Sender", list[0].From.Name)
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

func (s *StorageSuite) TestInboxTTL() {
	_ = s.storage.AppendNotification(s.ctx, "player-1", notification("n1"), 0)

	ttl := s.mini.TTL(inboxKey("player-1"))
	s.True(ttl > 0, "Inbox should have TTL")
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

	list, _, err = s.storage.ListNotifications(s.ctx, "player-1", 1, 2)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(model.NotificationID("n2"), list[0].ID)
	s.Equal(model.NotificationID("n3"), list[1].ID)
}

func (s *StorageSuite) TestListNotificationsEmptyInbox() {
	list, total, err := s.storage.ListNotifications(s.ctx, "player-1", 0, 10)
	s.Require().NoError(err)
	s.Equal(0, total)
	s.Empty(list)
}

func (s *StorageSuite) TestMarkNotificationRead() {
	_ = s.storage.AppendNotification(s.ctx, "player-1", notification("n1"), 0)
	_ = s.storage.AppendNotification(s.ctx, "player-1", notification("n2"), 0)

	err := s.storage.MarkNotificationRead(s.ctx, "player-1", "n2")
	s.Require().NoError(err)

	unread, err := s.storage.CountUnreadNotifications(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(1, unread)

	list, _, _ := s.storage.ListNotifications(s.ctx, "player-1", 0, 10)
	s.False(list[0].Read)
	s.True(list[1].Read)
}

// afterCommand runs fn once, right after the first command with the given name
type afterCommand struct {
	name  string
	fn    func(ctx context.Context)
	fired bool
}

func (h *afterCommand) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *afterCommand) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if !h.fired && cmd.Name() == h.name {
			h.fired = true
			h.fn(ctx)
		}
		return err
	}
}

func (h *afterCommand) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (s *StorageSuite) TestMarkNotificationReadSurvivesConcurrentAppend() {
	const limit = 5
	for i := 1; i <= limit; i++ {
		s.Require().NoError(s.storage.AppendNotification(s.ctx, "player-1", notification(fmt.Sprintf("n%d", i)), limit))
	}

	// A second connection appends between the read and the write, trimming
	// n1 and shifting every index down by one
	other := NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), s.storage.cfg)
	defer func() { _ = other.Close() }()

	hook := &afterCommand{name: "lrange", fn: func(ctx context.Context) {
		s.Require().NoError(other.AppendNotification(ctx, "player-1", notification("n6"), limit))
	}}
	s.storage.client.AddHook(hook)

	err := s.storage.MarkNotificationRead(s.ctx, "player-1", "n3")
	s.Require().NoError(err)
	s.True(hook.fired)

	list, total, err := s.storage.ListNotifications(s.ctx, "player-1", 0, 10)
	s.Require().NoError(err)
	s.Equal(limit, total)

	ids := make([]model.NotificationID, 0, len(list))
	for _, n := range list {
		ids = append(ids, n.ID)
		s.Equal(n.ID == "n3", n.Read, "read flag of %s", n.ID)
	}
	s.Equal([]model.NotificationID{"n2", "n3", "n4", "n5", "n6"}, ids)
}

func (s *StorageSuite) TestMarkNotificationReadNotFound() {
	_ = s.storage.AppendNotification(s.ctx, "player-1", notification("n1"), 0)

	err := s.storage.MarkNotificationRead(s.ctx, "player-1", "missing")
	s.ErrorIs(err, model.ErrNotificationNotFound)
}
