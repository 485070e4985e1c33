package bot

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/dictionary"
	"github.com/mcoot/smartscrabble/internal/testutil"
)

type SelectorSuite struct {
	suite.Suite
	rules *model.Rules
}

func TestSelectorSuite(t *testing.T) {
	suite.Run(t, new(SelectorSuite))
}

func (s *SelectorSuite) SetupTest() {
	s.rules = model.DefaultRules()
}

func (s *SelectorSuite) newSelector(words []string, ordering WordOrdering, placement PlacementPolicy) *Selector {
	sel, err := NewSelector(Config{
		Rules:     s.rules,
		Words:     dictionary.NewWordList(words, s.rules.RackSize),
		Ordering:  ordering,
		Placement: placement,
		Logger:    testutil.NopLogger(),
	})
	s.Require().NoError(err)
	return sel
}

// centreOnly accepts any word laid across from the centre square
func centreOnly(scores map[string]int) func(p model.Placement) (int, bool) {
	return func(p model.Placement) (int, bool) {
		if p.Origin != (model.Position{Row: 7, Col: 7}) || p.Orientation != model.Horizontal {
			return 0, false
		}
		score, ok := scores[p.Word]
		return score, ok
	}
}

func (s *SelectorSuite) TestNewSelectorRequiresWords() {
	_, err := NewSelector(Config{Rules: s.rules})
	s.Error(err)

	_, err = NewSelector(Config{Words: dictionary.NewWordList(nil, 7)})
	s.Error(err)
}

func (s *SelectorSuite) TestChooseMoveWithoutCollaborator() {
	sel := s.newSelector([]string{"cat"}, LongestFirst, FirstLegal)

	_, err := sel.ChooseMove()
	s.ErrorIs(err, model.ErrNoCollaborator)
}

func (s *SelectorSuite) TestPrefersLongerWord() {
	for _, preset := range []struct {
		ordering  WordOrdering
		placement PlacementPolicy
	}{
		{LongestFirst, FirstLegal},
		{ScoreWithinLongestTier, BestScoring},
	} {
		sel := s.newSelector([]string{"cat", "at"}, preset.ordering, preset.placement)
		oracle := newFakeOracle("CAT____")
		oracle.judge = centreOnly(map[string]int{"CAT": 5, "AT": 2})
		sel.SetCollaborator(oracle)

		action, err := sel.ChooseMove()
		s.Require().NoError(err)

		s.Equal(model.PlaceWord("CAT", model.Position{Row: 7, Col: 7}, model.Horizontal), action, preset.ordering.String())
	}
}

func (s *SelectorSuite) TestOrderingWithinTier() {
	words := []string{"apt", "zap"}
	scores := map[string]int{"APT": 10, "ZAP": 28}

	sel := s.newSelector(words, LongestFirst, FirstLegal)
	oracle := newFakeOracle("ZAPTEXQ")
	oracle.judge = centreOnly(scores)
	sel.SetCollaborator(oracle)
	action, err := sel.ChooseMove()
	s.Require().NoError(err)
	s.Equal("APT", action.Word)

	sel = s.newSelector(words, ScoreWithinLongestTier, BestScoring)
	sel.SetCollaborator(oracle)
	action, err = sel.ChooseMove()
	s.Require().NoError(err)
	s.Equal("ZAP", action.Word)
}

func (s *SelectorSuite) TestRetriesNextWordInTier() {
	sel := s.newSelector([]string{"apt", "zap", "at"}, ScoreWithinLongestTier, BestScoring)
	oracle := newFakeOracle("ZAPTEXQ")
	oracle.judge = centreOnly(map[string]int{"APT": 10, "AT": 4})
	sel.SetCollaborator(oracle)

	action, err := sel.ChooseMove()
	s.Require().NoError(err)

	s.Equal("APT", action.Word)
	s.Equal([]string{"ZAP", "APT"}, oracle.queriedWords())
}

func (s *SelectorSuite) TestFallsToShorterTier() {
	sel := s.newSelector([]string{"apt", "zap", "at"}, ScoreWithinLongestTier, BestScoring)
	oracle := newFakeOracle("ZAPTEXQ")
	oracle.judge = centreOnly(map[string]int{"AT": 4})
	sel.SetCollaborator(oracle)

	action, err := sel.ChooseMove()
	s.Require().NoError(err)

	s.Equal(model.ActionPlaceWord, action.Type)
	s.Equal("AT", action.Word)
}

func (s *SelectorSuite) TestBestScoringPlacementChosen() {
	sel := s.newSelector([]string{"cat"}, ScoreWithinLongestTier, BestScoring)
	oracle := newFakeOracle("CAT").
		allow("CAT", 7, 5, model.Horizontal, 10).
		allow("CAT", 5, 7, model.Vertical, 12).
		allow("CAT", 7, 7, model.Horizontal, 10)
	sel.SetCollaborator(oracle)

	action, err := sel.ChooseMove()
	s.Require().NoError(err)

	s.Equal(model.PlaceWord("CAT", model.Position{Row: 5, Col: 7}, model.Vertical), action)
}

func (s *SelectorSuite) TestSingleTileWhenNoWordFits() {
	sel := s.newSelector([]string{"cat", "at"}, ScoreWithinLongestTier, BestScoring)
	oracle := newFakeOracle("CATQQQQ").allow(" T", 3, 11, model.Vertical, 2)
	sel.SetCollaborator(oracle)

	action, err := sel.ChooseMove()
	s.Require().NoError(err)

	s.Equal(model.PlaceSingleTile('T', " T", model.Position{Row: 3, Col: 11}, model.Vertical), action)
}

func (s *SelectorSuite) TestSingleTileNotTriedWhenWordFits() {
	sel := s.newSelector([]string{"at"}, LongestFirst, FirstLegal)
	oracle := newFakeOracle("AT").
		allow("AT", 14, 13, model.Horizontal, 2).
		allow(" A", 0, 0, model.Horizontal, 20)
	sel.SetCollaborator(oracle)

	action, err := sel.ChooseMove()
	s.Require().NoError(err)

	s.Equal(model.ActionPlaceWord, action.Type)
	s.Equal([]string{"AT"}, oracle.queriedWords())
}

func (s *SelectorSuite) TestExchangeWhenNothingPlaceable() {
	sel := s.newSelector([]string{"quiz", "wax"}, ScoreWithinLongestTier, BestScoring)
	oracle := newFakeOracle("QXZW___")
	sel.SetCollaborator(oracle)

	action, err := sel.ChooseMove()
	s.Require().NoError(err)

	s.Equal(model.ExchangeAll(), action)
	// Single tiles were tried before giving up
	s.Contains(oracle.queriedWords(), "Q ")
	s.Contains(oracle.queriedWords(), " E")
}

func (s *SelectorSuite) TestExchangeWithNoFeasibleWords() {
	sel := s.newSelector([]string{"dog"}, LongestFirst, FirstLegal)
	oracle := newFakeOracle("QXZWVKJ")
	sel.SetCollaborator(oracle)

	action, err := sel.ChooseMove()
	s.Require().NoError(err)

	s.Equal(model.ActionExchangeAll, action.Type)
	s.NotContains(oracle.queriedWords(), "DOG")
}

func (s *SelectorSuite) TestDeterministic() {
	sel := s.newSelector([]string{"cat", "act", "at", "ta"}, ScoreWithinLongestTier, BestScoring)
	oracle := newFakeOracle("CATS___")
	oracle.judge = func(p model.Placement) (int, bool) {
		return p.Origin.Row + p.Origin.Col, p.Origin.Row == p.Origin.Col
	}
	sel.SetCollaborator(oracle)

	first, err := sel.ChooseMove()
	s.Require().NoError(err)
	second, err := sel.ChooseMove()
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(model.PlaceWord("ACT", model.Position{Row: 14, Col: 14}, model.Horizontal), first)
}

func (s *SelectorSuite) TestRackIsNotMutated() {
	sel := s.newSelector([]string{"cat"}, LongestFirst, FirstLegal)
	oracle := newFakeOracle("CAT")
	oracle.judge = centreOnly(map[string]int{"CAT": 5})
	sel.SetCollaborator(oracle)

	_, err := sel.ChooseMove()
	s.Require().NoError(err)

	s.Equal("CAT", oracle.hand.String())
}

func (s *SelectorSuite) TestLogsEachStage() {
	logger, buf := testutil.BufferLogger()
	sel, err := NewSelector(Config{
		Rules:  s.rules,
		Words:  dictionary.NewWordList([]string{"cat"}, s.rules.RackSize),
		Logger: logger,
	})
	s.Require().NoError(err)
	sel.SetCollaborator(newFakeOracle("QXZWVKJ"))

	_, err = sel.ChooseMove()
	s.Require().NoError(err)

	var transitions []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		s.Require().NoError(json.Unmarshal([]byte(line), &entry))
		s.Equal("move-selector", entry["component"])
		if entry["msg"] == "stage finished" {
			transitions = append(transitions, fmt.Sprintf("%s>%s", entry["stage"], entry["next"]))
		}
	}
	s.Equal([]string{
		"try_words>try_single_tile",
		"try_single_tile>exchange",
		"exchange>done",
	}, transitions)
}
