package redis

import (
	"fmt"

	"github.com/mcoot/smartscrabble/internal/model"
)

// Key prefix for all stored data
const keyPrefix = "smartscrabble"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// tournamentKey returns the Redis key for a Tournament
func tournamentKey(id model.TournamentID) string {
	return fmt.Sprintf("%s:tournament:%s", keyPrefix, id)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
