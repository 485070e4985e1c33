package bot

import (
	"fmt"
	"strings"

	"github.com/mcoot/smartscrabble/internal/model"
)

// BlankResolution decides which letters a blank may stand for when played alone
type BlankResolution int

const (
	// BlankFixed plays a blank as a single configured letter
	BlankFixed BlankResolution = iota
	// BlankExhaustive tries a blank as every letter A-Z
	BlankExhaustive
)

func (b BlankResolution) String() string {
	switch b {
	case BlankFixed:
		return "fixed"
	case BlankExhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("BlankResolution(%d)", int(b))
	}
}

// ParseBlankResolution parses "fixed" or "exhaustive"
func ParseBlankResolution(s string) (BlankResolution, error) {
	switch strings.ToLower(s) {
	case "fixed":
		return BlankFixed, nil
	case "exhaustive":
		return BlankExhaustive, nil
	default:
		return BlankFixed, fmt.Errorf("unknown blank resolution %q", s)
	}
}

// singleTileLetters lists the letters to try alone, in rack order without repeats
func singleTileLetters(rack model.Rack, blank BlankResolution, blankLetter rune) []rune {
	seen := make(map[rune]bool)
	var letters []rune
	add := func(ch rune) {
		if !seen[ch] {
			seen[ch] = true
			letters = append(letters, ch)
		}
	}

	for _, tile := range rack {
		if tile != model.Blank {
			add(tile)
			continue
		}
		if blank == BlankExhaustive {
			for ch := 'A'; ch <= 'Z'; ch++ {
				add(ch)
			}
		} else {
			add(blankLetter)
		}
	}
	return letters
}

// paddings are the two ways a lone tile sits against an existing board tile
func paddings(letter rune) [2]string {
	return [2]string{
		string(letter) + string(model.Padding),
		string(model.Padding) + string(letter),
	}
}

// FindSingleTile searches every letter, padding, cell and orientation for
// the highest-scoring legal single tile. Ties keep the first one found.
func FindSingleTile(oracle Oracle, size int, rack model.Rack, blank BlankResolution, blankLetter rune) (model.Action, bool) {
	var best model.Action
	bestScore := 0
	found := false

	for _, letter := range singleTileLetters(rack, blank, blankLetter) {
		for _, word := range paddings(letter) {
			for row := 0; row < size; row++ {
				for col := 0; col < size; col++ {
					for _, o := range model.Orientations {
						origin := model.Position{Row: row, Col: col}
						verdict := oracle.VerifyLegality(model.Placement{Word: word, Origin: origin, Orientation: o})
						if !verdict.IsLegal() {
							continue
						}
						if !found || verdict.Score > bestScore {
							best = model.PlaceSingleTile(letter, word, origin, o)
							bestScore = verdict.Score
							found = true
						}
					}
				}
			}
		}
	}

	return best, found
}
