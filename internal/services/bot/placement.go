package bot

import (
	"fmt"
	"strings"

	"github.com/mcoot/smartscrabble/internal/model"
)

// PlacementPolicy decides which legal placement of a word is taken
type PlacementPolicy int

const (
	// FirstLegal takes the first legal placement in scan order
	FirstLegal PlacementPolicy = iota
	// BestScoring takes the highest-scoring placement; the earliest scanned wins ties
	BestScoring
)

func (p PlacementPolicy) String() string {
	switch p {
	case FirstLegal:
		return "first_legal"
	case BestScoring:
		return "best_scoring"
	default:
		return fmt.Sprintf("PlacementPolicy(%d)", int(p))
	}
}

// ParsePlacementPolicy parses "first_legal" or "best_scoring"
func ParsePlacementPolicy(s string) (PlacementPolicy, error) {
	switch strings.ToLower(s) {
	case "first_legal", "first-legal", "first":
		return FirstLegal, nil
	case "best_scoring", "best-scoring", "best":
		return BestScoring, nil
	default:
		return FirstLegal, fmt.Errorf("unknown placement policy %q", s)
	}
}

// FindPlacement scans every cell of a size×size board in row-major order,
// horizontal before vertical, asking the oracle about word at each.
// It reports false when no cell and orientation is legal.
func FindPlacement(oracle Oracle, size int, word string, policy PlacementPolicy) (model.ScoredPlacement, bool) {
	var best model.ScoredPlacement
	found := false

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			for _, o := range model.Orientations {
				p := model.Placement{
					Word:        word,
					Origin:      model.Position{Row: row, Col: col},
					Orientation: o,
				}
				verdict := oracle.VerifyLegality(p)
				if !verdict.IsLegal() {
					continue
				}
				if policy == FirstLegal {
					return model.ScoredPlacement{Placement: p, Score: verdict.Score}, true
				}
				if !found || verdict.Score > best.Score {
					best = model.ScoredPlacement{Placement: p, Score: verdict.Score}
					found = true
				}
			}
		}
	}

	return best, found
}
