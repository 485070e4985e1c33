package model

import "time"

// TournamentID uniquely identifies a tournament run
type TournamentID string

// TournamentConfig describes a round-robin tournament
type TournamentConfig struct {
	Entrants    []string // Bot strategy names
	Rounds      int      // Each round plays every ordered pair once
	Parallelism int      // Games played concurrently; 0 means 1
}

// GameResult records one game of a tournament
type GameResult struct {
	GameID       GameID
	First        string // Strategy moving first
	Second       string
	FirstScore   int
	SecondScore  int
	FirstPoints  float64 // 1 win, 0.5 tie, 0 loss
	SecondPoints float64
}

// Standing is an entrant's accumulated tournament points
type Standing struct {
	Strategy string
	Points   float64
	Games    int
}

// Tournament is a completed tournament run
type Tournament struct {
	ID        TournamentID
	Config    TournamentConfig
	Results   []GameResult
	Standings []Standing // Same order as Config.Entrants
	CreatedAt time.Time
}

// WinRate returns the share of points the first entrant took against the second.
// It is 0 when neither scored and 1 when only the first did.
func (t *Tournament) WinRate() float64 {
	if len(t.Standings) < 2 {
		return 0
	}
	a, b := t.Standings[0].Points, t.Standings[1].Points
	if a == 0 {
		return 0
	}
	if b == 0 {
		return 1
	}
	return a / (a + b)
}
