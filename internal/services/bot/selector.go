package bot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/dictionary"
)

// DefaultBlankLetter is the letter a lone blank is played as
const DefaultBlankLetter = 'E'

// Stage is a step of the per-turn fallback cascade
type Stage int

const (
	StageTryWords Stage = iota
	StageTrySingleTile
	StageExchange
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageTryWords:
		return "try_words"
	case StageTrySingleTile:
		return "try_single_tile"
	case StageExchange:
		return "exchange"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Config holds everything a Selector needs; nothing is read from globals
type Config struct {
	Rules       *model.Rules
	Words       *dictionary.WordList
	Placement   PlacementPolicy
	Ordering    WordOrdering
	Blank       BlankResolution
	BlankLetter rune // Letter for BlankFixed, DefaultBlankLetter if zero
	Logger      *slog.Logger
}

// Selector is the heuristic move-selection agent.
// Each turn it tries whole words, then a single tile, then gives up its rack.
type Selector struct {
	cfg    Config
	oracle Oracle
	logger *slog.Logger
}

// NewSelector creates a Selector from its configuration
func NewSelector(cfg Config) (*Selector, error) {
	if cfg.Rules == nil {
		return nil, errors.New("selector: rules are required")
	}
	if cfg.Words == nil {
		return nil, errors.New("selector: word list is required")
	}
	if cfg.BlankLetter == 0 {
		cfg.BlankLetter = DefaultBlankLetter
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Selector{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "move-selector")),
	}, nil
}

// SetCollaborator binds the oracle for subsequent ChooseMove calls
func (s *Selector) SetCollaborator(oracle Oracle) {
	s.oracle = oracle
}

// ChooseMove runs the fallback cascade and returns the first action found.
// It never fails once an oracle is bound: exchanging the rack always succeeds.
func (s *Selector) ChooseMove() (model.Action, error) {
	if s.oracle == nil {
		return model.Action{}, model.ErrNoCollaborator
	}

	rack := s.oracle.Hand()
	var action model.Action

	for stage := StageTryWords; stage != StageDone; {
		next := StageDone
		switch stage {
		case StageTryWords:
			if a, ok := s.tryWords(rack); ok {
				action = a
			} else {
				next = StageTrySingleTile
			}
		case StageTrySingleTile:
			if a, ok := FindSingleTile(s.oracle, s.cfg.Rules.BoardSize, rack, s.cfg.Blank, s.cfg.BlankLetter); ok {
				action = a
			} else {
				next = StageExchange
			}
		case StageExchange:
			action = model.ExchangeAll()
		}

		s.logger.Debug("stage finished",
			slog.String("stage", stage.String()),
			slog.String("next", next.String()),
		)
		stage = next
	}

	s.logger.Debug("move chosen",
		slog.String("rack", rack.String()),
		slog.String("action", action.String()),
	)
	return action, nil
}

// tryWords walks the candidate tiers and places the first word that fits
func (s *Selector) tryWords(rack model.Rack) (model.Action, bool) {
	feasible := FeasibleWords(rack, s.cfg.Words.Words())
	for _, tier := range Tiers(feasible, s.cfg.Rules, s.cfg.Ordering) {
		for _, word := range tier {
			placement, ok := FindPlacement(s.oracle, s.cfg.Rules.BoardSize, word, s.cfg.Placement)
			if !ok {
				continue
			}
			s.logger.Debug("word placed",
				slog.String("word", word),
				slog.Int("score", placement.Score),
			)
			return model.PlaceWord(placement.Word, placement.Origin, placement.Orientation), true
		}
	}
	return model.Action{}, false
}

var _ Agent = (*Selector)(nil)
