package bot

import (
	"github.com/mcoot/smartscrabble/internal/dependencies/random"
	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/dictionary"
)

// DefaultRandomAttempts bounds how many random placements RandomAgent tries
const DefaultRandomAttempts = 500

// RandomAgent plays a random feasible word at a random cell.
// When none of its attempts is legal it exchanges its rack.
type RandomAgent struct {
	rules    *model.Rules
	words    *dictionary.WordList
	random   random.Random
	attempts int
	oracle   Oracle
}

// NewRandomAgent creates a new RandomAgent
func NewRandomAgent(rules *model.Rules, words *dictionary.WordList, rnd random.Random, attempts int) *RandomAgent {
	if attempts <= 0 {
		attempts = DefaultRandomAttempts
	}
	return &RandomAgent{
		rules:    rules,
		words:    words,
		random:   rnd,
		attempts: attempts,
	}
}

// SetCollaborator binds the oracle for subsequent ChooseMove calls
func (a *RandomAgent) SetCollaborator(oracle Oracle) {
	a.oracle = oracle
}

// ChooseMove tries random placements until one is legal
func (a *RandomAgent) ChooseMove() (model.Action, error) {
	if a.oracle == nil {
		return model.Action{}, model.ErrNoCollaborator
	}

	feasible := FeasibleWords(a.oracle.Hand(), a.words.Words())
	if len(feasible) == 0 {
		return model.ExchangeAll(), nil
	}

	size := a.rules.BoardSize
	for range a.attempts {
		p := model.Placement{
			Word: feasible[a.random.Intn(len(feasible))],
			Origin: model.Position{
				Row: a.random.Intn(size),
				Col: a.random.Intn(size),
			},
			Orientation: model.Orientations[a.random.Intn(len(model.Orientations))],
		}
		if a.oracle.VerifyLegality(p).IsLegal() {
			return model.PlaceWord(p.Word, p.Origin, p.Orientation), nil
		}
	}

	return model.ExchangeAll(), nil
}

var _ Agent = (*RandomAgent)(nil)
