package gatekeeper

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/board"
	"github.com/mcoot/smartscrabble/internal/services/bot"
	"github.com/mcoot/smartscrabble/internal/services/dictionary"
	"github.com/mcoot/smartscrabble/internal/services/scoring"
	"github.com/mcoot/smartscrabble/internal/storage/memory"
	"github.com/mcoot/smartscrabble/internal/testutil"
)

type GateKeeperSuite struct {
	suite.Suite
	rules   *model.Rules
	words   []string
	board   *board.Service
	scoring *scoring.Service
	game    *model.Game
}

func TestGateKeeperSuite(t *testing.T) {
	suite.Run(t, new(GateKeeperSuite))
}

func (s *GateKeeperSuite) SetupTest() {
	s.rules = model.DefaultRules()
	s.words = []string{"cat", "cats", "at", "as", "ta", "quiz"}

	dict := dictionary.New(memory.New(), testutil.NopLogger())
	s.Require().NoError(dict.LoadWords(s.words))

	s.board = board.New(s.rules, dict)
	s.scoring = scoring.New(s.rules)
	s.game = &model.Game{
		Board: s.board.NewBoard(),
		Seats: []model.Seat{{Rack: model.Rack("CAT____")}, {Rack: model.Rack("QXZWVKJ")}},
	}
}

func (s *GateKeeperSuite) placeCat() {
	for i, ch := range "CAT" {
		s.game.Board.Set(model.Position{Row: 7, Col: 6 + i}, ch)
	}
}

func (s *GateKeeperSuite) selector(strategy string) bot.Agent {
	svc := bot.NewService(memory.New(), s.rules, dictionary.NewWordList(s.words, s.rules.RackSize),
		bot.DefaultOptions(), nil, nil, testutil.NopLogger())
	agent, err := svc.NewAgent(strategy)
	s.Require().NoError(err)
	return agent
}

func (s *GateKeeperSuite) TestHandIsACopy() {
	gk := New(s.game, 0, s.board, s.scoring)

	hand := gk.Hand()
	hand[0] = 'Z'

	s.Equal("CAT____", s.game.Seats[0].Rack.String())
}

func (s *GateKeeperSuite) TestVerifyLegality() {
	gk := New(s.game, 0, s.board, s.scoring)

	verdict := gk.VerifyLegality(model.Placement{Word: "CAT", Origin: model.Position{Row: 7, Col: 5}, Orientation: model.Horizontal})
	s.True(verdict.IsLegal())
	s.Equal(10, verdict.Score)

	verdict = gk.VerifyLegality(model.Placement{Word: "CAT", Origin: model.Position{Row: 0, Col: 0}, Orientation: model.Horizontal})
	s.False(verdict.IsLegal())
	s.ErrorIs(verdict.Reason, model.ErrMissesCenter)
}

func (s *GateKeeperSuite) TestVerifyLegalityUsesSeatRack() {
	gk := New(s.game, 1, s.board, s.scoring)

	verdict := gk.VerifyLegality(model.Placement{Word: "CAT", Origin: model.Position{Row: 7, Col: 5}, Orientation: model.Horizontal})
	s.ErrorIs(verdict.Reason, model.ErrTilesNotInRack)
}

func (s *GateKeeperSuite) TestScore() {
	gk := New(s.game, 0, s.board, s.scoring)

	s.Equal(10, gk.Score(model.Placement{Word: "CAT", Origin: model.Position{Row: 7, Col: 5}, Orientation: model.Horizontal}))
	s.Zero(gk.Score(model.Placement{Word: "TAC", Origin: model.Position{Row: 7, Col: 5}, Orientation: model.Horizontal}))
}

func (s *GateKeeperSuite) TestSelectorPlaysLongestWordOnEmptyBoard() {
	for _, strategy := range []string{model.BotStrategySmart, model.BotStrategyLongest} {
		agent := s.selector(strategy)
		gk := New(s.game, 0, s.board, s.scoring)
		agent.SetCollaborator(gk)

		action, err := agent.ChooseMove()
		s.Require().NoError(err)

		s.Equal(model.ActionPlaceWord, action.Type, strategy)
		s.Equal(4, len(action.Word), strategy)
		s.True(gk.VerifyLegality(action.Placement()).IsLegal(), strategy)
	}
}

func (s *GateKeeperSuite) TestSelectorFallsBackToSingleTile() {
	s.placeCat()
	s.game.Seats[0].Rack = model.Rack("SQQQQQQ")

	agent := s.selector(model.BotStrategySmart)
	agent.SetCollaborator(New(s.game, 0, s.board, s.scoring))

	action, err := agent.ChooseMove()
	s.Require().NoError(err)

	// CATS is the only word a lone S can make
	s.Equal(model.PlaceSingleTile('S', " S", model.Position{Row: 7, Col: 8}, model.Horizontal), action)
}

func (s *GateKeeperSuite) TestSelectorExchangesWhenStuck() {
	s.placeCat()
	s.game.Seats[1].Rack = model.Rack("QXZWVKJ")

	agent := s.selector(model.BotStrategySmart)
	agent.SetCollaborator(New(s.game, 1, s.board, s.scoring))

	action, err := agent.ChooseMove()
	s.Require().NoError(err)

	s.Equal(model.ExchangeAll(), action)
}
