package storage

import (
	"context"

	"github.com/mcoot/pickleball-finder/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
	// ListPlayers returns a snapshot of every player in registration order.
	// The returned players are copies and may be modified freely.
	ListPlayers(ctx context.Context) ([]model.Player, error)

	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, playerID model.PlayerID) (*model.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)

	// Notification operations
	// AppendNotification adds to the end of the inbox, evicting the oldest
	// entries so that at most limit remain. limit <= 0 means unbounded.
	AppendNotification(ctx context.Context, playerID model.PlayerID, n model.Notification, limit int) error
	// ListNotifications returns up to count notifications starting at offset,
	// oldest first, along with the total inbox size.
	ListNotifications(ctx context.Context, playerID model.PlayerID, offset, count int) ([]model.Notification, int, error)
	CountUnreadNotifications(ctx context.Context, playerID model.PlayerID) (int, error)
	MarkNotificationRead(ctx context.Context, playerID model.PlayerID, id model.NotificationID) error
}
