package redis

import (
	"fmt"

	"github.com/mcoot/wordgrid/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wordgrid"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// boardKey returns the Redis key for the Board of a game
func boardKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:board:%s", keyPrefix, gameID)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}

// dictionaryLoadedKey marks that a word list was saved. Redis drops empty
// sets, so an empty list is only visible through this key.
func dictionaryLoadedKey() string {
	return fmt.Sprintf("%s:dictionary:loaded", keyPrefix)
}
