package redis

import (
	"fmt"

	"github.com/mcoot/pickleball-finder/internal/model"
)

// Key prefix for all player finder data
const keyPrefix = "pbfinder"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the ZSET of player IDs scored by registration sequence
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// playerSeqKey returns the Redis key for the registration sequence counter
func playerSeqKey() string {
	return fmt.Sprintf("%s:seq:players", keyPrefix)
}

// accountKey returns the Redis key for an Account
func accountKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// inboxKey returns the Redis key for the LIST of a player's notifications
func inboxKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:inbox:%s", keyPrefix, playerID)
}
