package memory

import (
	"context"
	"sync"

	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players       map[model.PlayerID]*model.Player
	playerOrder   []model.PlayerID
	accounts      map[model.PlayerID]*model.Account
	usernameIndex map[string]model.PlayerID
	inboxes       map[model.PlayerID][]model.Notification
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:       make(map[model.PlayerID]*model.Player),
		accounts:      make(map[model.PlayerID]*model.Account),
		usernameIndex: make(map[string]model.PlayerID),
		inboxes:       make(map[model.PlayerID][]model.Notification),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[player.ID]; !ok {
		s.playerOrder = append(s.playerOrder, player.ID)
	}
	s.players[player.ID] = player.Clone()
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player.Clone(), nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return nil
	}
	delete(s.players, id)
	delete(s.inboxes, id)
	for i, pid := range s.playerOrder {
		if pid == id {
			s.playerOrder = append(s.playerOrder[:i], s.playerOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]model.Player, 0, len(s.playerOrder))
	for _, id := range s.playerOrder {
		players = append(players, *s.players[id].Clone())
	}
	return players, nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := *account
	s.accounts[account.PlayerID] = &a
	s.usernameIndex[account.Username] = account.PlayerID
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, playerID model.PlayerID) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	a := *account
	return &a, nil
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	s.mu.RLock()
	playerID, ok := s.usernameIndex[username]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return s.GetAccount(ctx, playerID)
}

// Notification operations

func (s *Storage) AppendNotification(ctx context.Context, playerID model.PlayerID, n model.Notification, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	inbox := append(s.inboxes[playerID], n)
	if limit > 0 && len(inbox) > limit {
		trimmed := make([]model.Notification, limit)
		copy(trimmed, inbox[len(inbox)-limit:])
		inbox = trimmed
	}
	s.inboxes[playerID] = inbox
	return nil
}

func (s *Storage) ListNotifications(ctx context.Context, playerID model.PlayerID, offset, count int) ([]model.Notification, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inbox := s.inboxes[playerID]
	total := len(inbox)
	if offset < 0 {
		offset = 0
	}
	if offset >= total || count <= 0 {
		return []model.Notification{}, total, nil
	}
	end := min(offset+count, total)
	result := make([]model.Notification, end-offset)
	copy(result, inbox[offset:end])
	return result, total, nil
}

func (s *Storage) CountUnreadNotifications(ctx context.Context, playerID model.PlayerID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unread := 0
	for _, n := range s.inboxes[playerID] {
		if !n.Read {
			unread++
		}
	}
	return unread, nil
}

func (s *Storage) MarkNotificationRead(ctx context.Context, playerID model.PlayerID, id model.NotificationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	inbox := s.inboxes[playerID]
	for i := range inbox {
		if inbox[i].ID == id {
			inbox[i].Read = true
			return nil
		}
	}
	return model.ErrNotificationNotFound
}
