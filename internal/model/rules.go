package model

// Premium is the bonus marking of a board square
type Premium rune

const (
	PremiumNone         Premium = '.'
	PremiumDoubleLetter Premium = 'd'
	PremiumTripleLetter Premium = 't'
	PremiumDoubleWord   Premium = 'D'
	PremiumTripleWord   Premium = 'T'
)

// LetterMultiplier returns the multiplier applied to a tile placed on this square
func (p Premium) LetterMultiplier() int {
	switch p {
	case PremiumDoubleLetter:
		return 2
	case PremiumTripleLetter:
		return 3
	default:
		return 1
	}
}

// WordMultiplier returns the multiplier applied to a word covering this square
func (p Premium) WordMultiplier() int {
	switch p {
	case PremiumDoubleWord:
		return 2
	case PremiumTripleWord:
		return 3
	default:
		return 1
	}
}

// Rules holds the board geometry and tile tables for a game.
// A Rules value is passed explicitly to every component that needs it.
type Rules struct {
	BoardSize         int
	RackSize          int
	BingoBonus        int
	MaxScorelessTurns int
	Center            Position
	Premiums          []string     // One string per row, see Premium constants
	TileValues        map[rune]int // Upper-case letters plus Blank
	TileCounts        map[rune]int // Bag distribution
}

// DefaultRules returns the standard 15x15 English rules
func DefaultRules() *Rules {
	return &Rules{
		BoardSize:         15,
		RackSize:          7,
		BingoBonus:        50,
		MaxScorelessTurns: 6,
		Center:            Position{Row: 7, Col: 7},
		Premiums: []string{
			"T..d...T...d..T",
			".D...t...t...D.",
			"..D...d.d...D..",
			"d..D...d...D..d",
			"....D.....D....",
			".t...t...t...t.",
			"..d...d.d...d..",
			"T..d...D...d..T",
			"..d...d.d...d..",
			".t...t...t...t.",
			"....D.....D....",
			"d..D...d...D..d",
			"..D...d.d...D..",
			".D...t...t...D.",
			"T..d...T...d..T",
		},
		TileValues: map[rune]int{
			'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2,
			'H': 4, 'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1,
			'O': 1, 'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1,
			'V': 4, 'W': 4, 'X': 8, 'Y': 4, 'Z': 10, Blank: 0,
		},
		TileCounts: map[rune]int{
			'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3,
			'H': 2, 'I': 9, 'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6,
			'O': 8, 'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6, 'U': 4,
			'V': 2, 'W': 2, 'X': 1, 'Y': 2, 'Z': 1, Blank: 2,
		},
	}
}

// PremiumAt returns the premium marking of a square
func (r *Rules) PremiumAt(pos Position) Premium {
	if pos.Row < 0 || pos.Row >= len(r.Premiums) {
		return PremiumNone
	}
	row := []rune(r.Premiums[pos.Row])
	if pos.Col < 0 || pos.Col >= len(row) {
		return PremiumNone
	}
	return Premium(row[pos.Col])
}

// LetterValue returns the value of a board letter; lower case marks a blank
func (r *Rules) LetterValue(letter rune) int {
	if letter >= 'a' && letter <= 'z' {
		return 0
	}
	return r.TileValues[letter]
}

// WordValue sums the tile values of a word's letters
func (r *Rules) WordValue(word string) int {
	total := 0
	for _, ch := range word {
		total += r.TileValues[ch]
	}
	return total
}

// RackValue sums the tile values of a rack
func (r *Rules) RackValue(rack Rack) int {
	total := 0
	for _, t := range rack {
		total += r.TileValues[t]
	}
	return total
}

// TileSet returns the full bag contents in a stable order
func (r *Rules) TileSet() []rune {
	var tiles []rune
	for ch := 'A'; ch <= 'Z'; ch++ {
		for i := 0; i < r.TileCounts[ch]; i++ {
			tiles = append(tiles, ch)
		}
	}
	for i := 0; i < r.TileCounts[Blank]; i++ {
		tiles = append(tiles, Blank)
	}
	return tiles
}

// Validate checks that the rules are internally consistent
func (r *Rules) Validate() error {
	if r.BoardSize <= 0 || r.RackSize <= 0 {
		return ErrInvalidRules
	}
	if !(&Board{Size: r.BoardSize}).IsValidPosition(r.Center) {
		return ErrInvalidRules
	}
	if len(r.Premiums) != 0 && len(r.Premiums) != r.BoardSize {
		return ErrInvalidRules
	}
	for _, row := range r.Premiums {
		if len([]rune(row)) != r.BoardSize {
			return ErrInvalidRules
		}
	}
	return nil
}
