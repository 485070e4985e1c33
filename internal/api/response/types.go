package response

import (
	"time"

	"github.com/mcoot/smartscrabble/internal/model"
)

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}

// Dictionary describes the loaded lexicon
type Dictionary struct {
	Loaded         bool `json:"loaded"`
	Words          int  `json:"words"`
	CandidateWords int  `json:"candidate_words"`
	MaxWordLength  int  `json:"max_word_length"`
}

// Action represents a chosen move
type Action struct {
	Type        string `json:"type"`
	Word        string `json:"word,omitempty"`
	Tile        string `json:"tile,omitempty"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Orientation string `json:"orientation,omitempty"`
}

// ActionFromModel converts a model.Action
func ActionFromModel(a model.Action) Action {
	resp := Action{Type: string(a.Type)}
	if !a.IsPlacement() {
		return resp
	}
	resp.Word = a.Word
	resp.Row = a.Origin.Row
	resp.Col = a.Origin.Col
	resp.Orientation = a.Orientation.String()
	if a.Tile != 0 {
		resp.Tile = string(a.Tile)
	}
	return resp
}

// Move is the response to a move request
type Move struct {
	Strategy string `json:"strategy"`
	Action   Action `json:"action"`
	Score    int    `json:"score"`
}

// Seat represents one player's position in a game
type Seat struct {
	PlayerID string `json:"player_id"`
	Strategy string `json:"strategy"`
	Rack     string `json:"rack"`
	Score    int    `json:"score"`
}

// Turn represents one played turn
type Turn struct {
	Seat       int    `json:"seat"`
	Action     Action `json:"action"`
	Score      int    `json:"score"`
	RackBefore string `json:"rack_before"`
}

// TurnFromModel converts a model.TurnRecord
func TurnFromModel(t model.TurnRecord) Turn {
	return Turn{
		Seat:       t.Seat,
		Action:     ActionFromModel(t.Action),
		Score:      t.Score,
		RackBefore: t.RackBefore,
	}
}

// Game represents a game's full state
type Game struct {
	ID             string    `json:"id"`
	State          string    `json:"state"`
	Board          []string  `json:"board"`
	Seats          []Seat    `json:"seats"`
	CurrentSeat    int       `json:"current_seat"`
	BagCount       int       `json:"bag_count"`
	ScorelessTurns int       `json:"scoreless_turns"`
	Turns          []Turn    `json:"turns"`
	Winner         *string   `json:"winner,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// GameFromModel converts a model.Game. The winner is set once the game is complete.
func GameFromModel(g *model.Game, summary *model.GameSummary) Game {
	resp := Game{
		ID:             string(g.ID),
		State:          string(g.State),
		Board:          g.Board.Rows(),
		CurrentSeat:    g.CurrentSeat,
		BagCount:       len(g.Bag),
		ScorelessTurns: g.ScorelessTurns,
		Seats:          make([]Seat, len(g.Seats)),
		Turns:          make([]Turn, len(g.Turns)),
		CreatedAt:      g.CreatedAt,
	}
	for i, s := range g.Seats {
		resp.Seats[i] = Seat{
			PlayerID: string(s.PlayerID),
			Strategy: s.Strategy,
			Rack:     s.Rack.String(),
			Score:    s.Score,
		}
	}
	for i, t := range g.Turns {
		resp.Turns[i] = TurnFromModel(t)
	}
	if summary != nil && summary.Winner != "" {
		w := string(summary.Winner)
		resp.Winner = &w
	}
	return resp
}

// TurnResult is the response to advancing a game by one turn
type TurnResult struct {
	Turn Turn `json:"turn"`
	Game Game `json:"game"`
}

// GameResult represents one game of a tournament
type GameResult struct {
	GameID       string  `json:"game_id"`
	First        string  `json:"first"`
	Second       string  `json:"second"`
	FirstScore   int     `json:"first_score"`
	SecondScore  int     `json:"second_score"`
	FirstPoints  float64 `json:"first_points"`
	SecondPoints float64 `json:"second_points"`
}

// Standing represents an entrant's tournament points
type Standing struct {
	Strategy string  `json:"strategy"`
	Points   float64 `json:"points"`
	Games    int     `json:"games"`
}

// Tournament represents a completed tournament
type Tournament struct {
	ID        string       `json:"id"`
	Entrants  []string     `json:"entrants"`
	Rounds    int          `json:"rounds"`
	Results   []GameResult `json:"results"`
	Standings []Standing   `json:"standings"`
	WinRate   float64      `json:"win_rate"`
	CreatedAt time.Time    `json:"created_at"`
}

// TournamentFromModel converts a model.Tournament
func TournamentFromModel(t *model.Tournament) Tournament {
	resp := Tournament{
		ID:        string(t.ID),
		Entrants:  t.Config.Entrants,
		Rounds:    t.Config.Rounds,
		Results:   make([]GameResult, len(t.Results)),
		Standings: make([]Standing, len(t.Standings)),
		WinRate:   t.WinRate(),
		CreatedAt: t.CreatedAt,
	}
	for i, r := range t.Results {
		resp.Results[i] = GameResult{
			GameID:       string(r.GameID),
			First:        r.First,
			Second:       r.Second,
			FirstScore:   r.FirstScore,
			SecondScore:  r.SecondScore,
			FirstPoints:  r.FirstPoints,
			SecondPoints: r.SecondPoints,
		}
	}
	for i, s := range t.Standings {
		resp.Standings[i] = Standing{Strategy: s.Strategy, Points: s.Points, Games: s.Games}
	}
	return resp
}
