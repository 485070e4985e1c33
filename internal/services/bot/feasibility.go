package bot

import (
	"github.com/samber/lo"

	"github.com/mcoot/smartscrabble/internal/model"
)

const blankSlot = 26

// tally counts rack tiles by letter, with blanks in the last slot
type tally [27]int

func newTally(rack model.Rack) tally {
	var t tally
	for _, tile := range rack {
		switch {
		case tile == model.Blank:
			t[blankSlot]++
		case tile >= 'A' && tile <= 'Z':
			t[tile-'A']++
		}
	}
	return t
}

// canForm consumes a matching tile for each letter, or a blank when none is left
func (t tally) canForm(word string) bool {
	for _, ch := range word {
		if ch < 'A' || ch > 'Z' {
			return false
		}
		switch {
		case t[ch-'A'] > 0:
			t[ch-'A']--
		case t[blankSlot] > 0:
			t[blankSlot]--
		default:
			return false
		}
	}
	return true
}

// CanFormWord reports whether the rack can supply every letter of word,
// using each tile at most once and blanks for any shortfall
func CanFormWord(rack model.Rack, word string) bool {
	return newTally(rack).canForm(word)
}

// FeasibleWords returns the words the rack can form, preserving order
func FeasibleWords(rack model.Rack, words []string) []string {
	t := newTally(rack)
	return lo.Filter(words, func(w string, _ int) bool {
		return len(w) <= len(rack) && t.canForm(w)
	})
}
