package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents a game participant.
// Every player in this system is a bot driven by a named strategy.
type Player struct {
	ID          PlayerID
	DisplayName string
	BotStrategy string
	CreatedAt   time.Time
}
