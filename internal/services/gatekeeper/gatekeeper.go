package gatekeeper

import (
	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/board"
	"github.com/mcoot/smartscrabble/internal/services/scoring"
)

// GateKeeper is one seat's window onto a game.
// It answers legality and score questions without changing the game.
type GateKeeper struct {
	game    *model.Game
	seat    int
	board   *board.Service
	scoring *scoring.Service
}

// New creates a GateKeeper for the player in the given seat
func New(game *model.Game, seat int, boardService *board.Service, scoringService *scoring.Service) *GateKeeper {
	return &GateKeeper{
		game:    game,
		seat:    seat,
		board:   boardService,
		scoring: scoringService,
	}
}

// Hand returns a copy of the seat's rack
func (g *GateKeeper) Hand() model.Rack {
	return g.game.Seats[g.seat].Rack.Clone()
}

// VerifyLegality resolves a placement against the board and the seat's rack
func (g *GateKeeper) VerifyLegality(p model.Placement) model.Verdict {
	layout, err := g.board.Resolve(g.game.Board, g.game.Seats[g.seat].Rack, p)
	if err != nil {
		return model.Illegal(err)
	}
	return model.Legal(g.scoring.Score(layout).Total)
}

// Score returns the points a placement earns, or 0 if it is illegal
func (g *GateKeeper) Score(p model.Placement) int {
	return g.VerifyLegality(p).Score
}
