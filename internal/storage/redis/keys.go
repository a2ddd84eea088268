package redis

import (
	"fmt"
	"strings"

	"github.com/weixigu/boardgame-go/internal/model"
)

// Key prefix for all board game data
const keyPrefix = "bgame"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player row
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// playerSeqKey returns the Redis key of the player ID sequence
func playerSeqKey() string {
	return fmt.Sprintf("%s:seq:player", keyPrefix)
}

// moveKey returns the Redis key for a Move row
func moveKey(id model.MoveID) string {
	return fmt.Sprintf("%s:move:%d", keyPrefix, id)
}

// moveSeqKey returns the Redis key of the move ID sequence
func moveSeqKey() string {
	return fmt.Sprintf("%s:seq:move", keyPrefix)
}

// activeNameIndexKey returns the Redis key of the SET of active player IDs
// sharing a case-folded name
func activeNameIndexKey(firstName, lastName string) string {
	return fmt.Sprintf("%s:idx:active_name:%s:%s",
		keyPrefix, strings.ToLower(lastName), strings.ToLower(firstName))
}

// activePlayersIndexKey returns the Redis key of the SET of all active player IDs
func activePlayersIndexKey() string {
	return fmt.Sprintf("%s:idx:active_players", keyPrefix)
}

// currentMovesIndexKey returns the Redis key of the ZSET of current move IDs,
// scored by ID so range reads come back in move order
func currentMovesIndexKey() string {
	return fmt.Sprintf("%s:idx:current_moves", keyPrefix)
}
