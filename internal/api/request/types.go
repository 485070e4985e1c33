package request

// MoveRequest asks an agent to choose a move for an arbitrary position
type MoveRequest struct {
	Strategy string   `json:"strategy"`
	Board    []string `json:"board,omitempty"` // Row strings, '.' empty, lower case for blanks; empty means a fresh board
	Rack     string   `json:"rack"`
}

// CreateGameRequest is the request body for starting a bot game
type CreateGameRequest struct {
	First  string `json:"first"`
	Second string `json:"second"`
	// PlayToEnd plays the whole game before responding.
	// When false the game is created and advanced with /turn.
	PlayToEnd *bool `json:"play_to_end,omitempty"`
}

// RunTournamentRequest is the request body for running a tournament
type RunTournamentRequest struct {
	Entrants    []string `json:"entrants"`
	Rounds      int      `json:"rounds"`
	Parallelism int      `json:"parallelism,omitempty"`
}
