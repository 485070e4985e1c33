package bot

import "github.com/mcoot/smartscrabble/internal/model"

// Oracle is an agent's view of the game it is playing.
// It answers questions about the board without letting the agent change it.
type Oracle interface {
	// Hand returns a snapshot of the agent's rack
	Hand() model.Rack
	// VerifyLegality judges a placement against the current board
	VerifyLegality(p model.Placement) model.Verdict
	// Score returns the points a placement earns, 0 if it is illegal
	Score(p model.Placement) int
}

// Agent chooses one action per turn
type Agent interface {
	// SetCollaborator binds the oracle consulted by later ChooseMove calls
	SetCollaborator(oracle Oracle)
	// ChooseMove picks the action for the current turn
	ChooseMove() (model.Action, error)
}
