package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress" // Players taking turns
	GameStateComplete   GameState = "complete"    // Game over, final scores applied
)

// Seat is one player's position in a game
type Seat struct {
	PlayerID PlayerID
	Strategy string
	Rack     Rack
	Score    int
}

// TurnRecord is one applied action in a game's history
type TurnRecord struct {
	Seat       int
	Action     Action
	Score      int
	RackBefore string
}

// Game represents a single two-player game
type Game struct {
	ID    GameID
	State GameState

	Board *Board
	Seats []Seat
	Bag   []rune // Undrawn tiles; draws pop from the end

	// Turn management
	CurrentSeat    int // Index into Seats of the player to move
	ScorelessTurns int // Consecutive turns that scored nothing
	Turns          []TurnRecord

	// Timing
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt time.Time
}

// IsComplete returns true once the game is over
func (g *Game) IsComplete() bool {
	return g.State == GameStateComplete
}

// CurrentPlayer returns the PlayerID of the player to move
func (g *Game) CurrentPlayer() PlayerID {
	if len(g.Seats) == 0 {
		return ""
	}
	return g.Seats[g.CurrentSeat].PlayerID
}

// SeatOf returns the seat index of a player, or -1
func (g *Game) SeatOf(playerID PlayerID) int {
	for i, s := range g.Seats {
		if s.PlayerID == playerID {
			return i
		}
	}
	return -1
}

// Scores returns the current score of each player
func (g *Game) Scores() map[PlayerID]int {
	scores := make(map[PlayerID]int, len(g.Seats))
	for _, s := range g.Seats {
		scores[s.PlayerID] = s.Score
	}
	return scores
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID
	FinalScores map[PlayerID]int
	Winner      PlayerID // Empty if tie
	Turns       int
	CompletedAt time.Time
}
