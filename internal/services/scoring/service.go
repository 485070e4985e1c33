package scoring

import (
	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/board"
)

// WordScore is the points one formed word contributes
type WordScore struct {
	Word  string
	Score int
}

// Breakdown is the itemised score of a move
type Breakdown struct {
	Words []WordScore
	Bingo int
	Total int
}

// Service scores resolved placements
type Service struct {
	rules *model.Rules
}

// New creates a new ScoringService
func New(rules *model.Rules) *Service {
	return &Service{
		rules: rules,
	}
}

// Score totals every word a layout forms.
// Premium squares count only under newly placed tiles, and a move
// using the whole rack earns the bingo bonus.
func (s *Service) Score(layout *board.Layout) *Breakdown {
	result := &Breakdown{}

	for _, w := range layout.Words() {
		if len(w.Cells) < 2 {
			continue
		}
		score := s.scoreWord(w)
		result.Words = append(result.Words, WordScore{Word: w.String(), Score: score})
		result.Total += score
	}

	if len(layout.Placed) == s.rules.RackSize {
		result.Bingo = s.rules.BingoBonus
		result.Total += result.Bingo
	}

	return result
}

func (s *Service) scoreWord(w board.Word) int {
	sum := 0
	multiplier := 1
	for _, c := range w.Cells {
		value := s.rules.LetterValue(c.Letter)
		if c.New {
			premium := s.rules.PremiumAt(c.Pos)
			value *= premium.LetterMultiplier()
			multiplier *= premium.WordMultiplier()
		}
		sum += value
	}
	return sum * multiplier
}
