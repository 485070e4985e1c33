package bot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/smartscrabble/internal/model"
)

// WordOrdering decides the order candidate words are tried in
type WordOrdering int

const (
	// LongestFirst tries longer words first, alphabetically within a length
	LongestFirst WordOrdering = iota
	// ScoreWithinLongestTier tries longer words first, highest tile value
	// first within a length, alphabetically on equal value
	ScoreWithinLongestTier
)

func (o WordOrdering) String() string {
	switch o {
	case LongestFirst:
		return "longest_first"
	case ScoreWithinLongestTier:
		return "score_within_longest_tier"
	default:
		return fmt.Sprintf("WordOrdering(%d)", int(o))
	}
}

// ParseWordOrdering parses "longest_first" or "score_within_longest_tier"
func ParseWordOrdering(s string) (WordOrdering, error) {
	switch strings.ToLower(s) {
	case "longest_first", "longest-first", "longest":
		return LongestFirst, nil
	case "score_within_longest_tier", "score-within-longest-tier", "score":
		return ScoreWithinLongestTier, nil
	default:
		return LongestFirst, fmt.Errorf("unknown word ordering %q", s)
	}
}

// Tiers groups candidate words by length, longest tier first, each tier
// sorted according to the ordering
func Tiers(words []string, rules *model.Rules, ordering WordOrdering) [][]string {
	byLength := lo.GroupBy(words, func(w string) int { return len(w) })

	lengths := lo.Keys(byLength)
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	tiers := make([][]string, 0, len(lengths))
	for _, n := range lengths {
		tier := append([]string(nil), byLength[n]...)
		switch ordering {
		case ScoreWithinLongestTier:
			sort.SliceStable(tier, func(i, j int) bool {
				vi, vj := rules.WordValue(tier[i]), rules.WordValue(tier[j])
				if vi != vj {
					return vi > vj
				}
				return tier[i] < tier[j]
			})
		default:
			sort.Strings(tier)
		}
		tiers = append(tiers, tier)
	}
	return tiers
}
