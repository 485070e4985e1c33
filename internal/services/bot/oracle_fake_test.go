package bot

import "github.com/mcoot/smartscrabble/internal/model"

// fakeOracle accepts only the placements it has been told about
type fakeOracle struct {
	hand    model.Rack
	legal   map[model.Placement]int
	judge   func(p model.Placement) (int, bool)
	queries []model.Placement
}

func newFakeOracle(hand string) *fakeOracle {
	rack, err := model.ParseRack(hand)
	if err != nil {
		panic(err)
	}
	return &fakeOracle{hand: rack, legal: make(map[model.Placement]int)}
}

func (o *fakeOracle) allow(word string, row, col int, orientation model.Orientation, score int) *fakeOracle {
	o.legal[model.Placement{Word: word, Origin: model.Position{Row: row, Col: col}, Orientation: orientation}] = score
	return o
}

func (o *fakeOracle) Hand() model.Rack {
	return o.hand.Clone()
}

func (o *fakeOracle) VerifyLegality(p model.Placement) model.Verdict {
	o.queries = append(o.queries, p)
	if score, ok := o.legal[p]; ok {
		return model.Legal(score)
	}
	if o.judge != nil {
		if score, ok := o.judge(p); ok {
			return model.Legal(score)
		}
	}
	return model.Illegal(model.ErrNotConnected)
}

func (o *fakeOracle) Score(p model.Placement) int {
	return o.VerifyLegality(p).Score
}

// queriedWords returns the distinct words asked about, in first-asked order
func (o *fakeOracle) queriedWords() []string {
	seen := make(map[string]bool)
	var words []string
	for _, q := range o.queries {
		if !seen[q.Word] {
			seen[q.Word] = true
			words = append(words, q.Word)
		}
	}
	return words
}
