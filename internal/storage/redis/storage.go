package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// maxTxRetries bounds optimistic transactions that lose a WATCH race
const maxTxRetries = 5

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	seq, err := s.client.Incr(ctx, playerSeqKey()).Result()
	if err != nil {
		return err
	}

	// NX keeps the original registration position when a player is re-saved
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.ZAddNX(ctx, playersIndexKey(), redis.Z{Score: float64(seq), Member: string(player.ID)})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, playerKey(id), inboxKey(id))
	pipe.ZRem(ctx, playersIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListPlayers(ctx context.Context) ([]model.Player, error) {
	ids, err := s.client.ZRange(ctx, playersIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []model.Player{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = playerKey(model.PlayerID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]model.Player, 0, len(values))
	for _, val := range values {
		str, ok := val.(string)
		if !ok {
			continue // Player deleted between ZRANGE and MGET
		}
		var player model.Player
		if err := json.Unmarshal([]byte(str), &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, player)
	}

	return players, nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, accountKey(account.PlayerID), data, 0)
	pipe.Set(ctx, usernameIndexKey(account.Username), string(account.PlayerID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAccount(ctx context.Context, playerID model.PlayerID) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	playerIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetAccount(ctx, model.PlayerID(playerIDStr))
}

// Notification operations

func (s *Storage) AppendNotification(ctx context.Context, playerID model.PlayerID, n model.Notification, limit int) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}

	key := inboxKey(playerID)

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if limit > 0 {
		pipe.LTrim(ctx, key, int64(-limit), -1)
	}
	if s.cfg.InboxTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.InboxTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListNotifications(ctx context.Context, playerID model.PlayerID, offset, count int) ([]model.Notification, int, error) {
	key := inboxKey(playerID)

	total, err := s.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, 0, err
	}

	if offset < 0 {
		offset = 0
	}
	if int64(offset) >= total || count <= 0 {
		return []model.Notification{}, int(total), nil
	}

	values, err := s.client.LRange(ctx, key, int64(offset), int64(offset+count-1)).Result()
	if err != nil {
		return nil, 0, err
	}

	notifications, err := decodeNotifications(values)
	if err != nil {
		return nil, 0, err
	}
	return notifications, int(total), nil
}

func (s *Storage) CountUnreadNotifications(ctx context.Context, playerID model.PlayerID) (int, error) {
	values, err := s.client.LRange(ctx, inboxKey(playerID), 0, -1).Result()
	if err != nil {
		return 0, err
	}

	notifications, err := decodeNotifications(values)
	if err != nil {
		return 0, err
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	return unread, nil
}

func (s *Storage) MarkNotificationRead(ctx context.Context, playerID model.PlayerID, id model.NotificationID) error {
	key := inboxKey(playerID)

	// The inbox can be appended to and trimmed between LRANGE and LSET, so
	// the index is only trusted if the key is unchanged when EXEC runs.
	txf := func(tx *redis.Tx) error {
		values, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return err
		}

		for i, val := range values {
			var n model.Notification
			if err := json.Unmarshal([]byte(val), &n); err != nil {
				return err
			}
			if n.ID != id {
				continue
			}
			if n.Read {
				return nil
			}
			n.Read = true
			data, err := json.Marshal(n)
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.LSet(ctx, key, int64(i), data)
				return nil
			})
			return err
		}

		return model.ErrNotificationNotFound
	}

	for range maxTxRetries {
		err := s.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("mark notification %s read: %w", id, redis.TxFailedErr)
}

func decodeNotifications(values []string) ([]model.Notification, error) {
	notifications := make([]model.Notification, 0, len(values))
	for _, val := range values {
		var n model.Notification
		if err := json.Unmarshal([]byte(val), &n); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}
