package model

import "fmt"

// Placement is a candidate word at an origin cell and orientation.
// A Padding character in Word stands for a square that already holds a tile.
type Placement struct {
	Word        string
	Origin      Position
	Orientation Orientation
}

// String returns a compact description such as "CAT@7,7 horizontal"
func (p Placement) String() string {
	return fmt.Sprintf("%q@%d,%d %s", p.Word, p.Origin.Row, p.Origin.Col, p.Orientation)
}

// ScoredPlacement is a legal placement with its score
type ScoredPlacement struct {
	Placement
	Score int
}

// Verdict is the oracle's answer for one placement:
// Legal with a score, or Illegal with a reason
type Verdict struct {
	Score  int
	Reason error
}

// Legal creates a legal verdict
func Legal(score int) Verdict {
	return Verdict{Score: score}
}

// Illegal creates an illegal verdict with the given reason
func Illegal(reason error) Verdict {
	return Verdict{Reason: reason}
}

// IsLegal reports whether the placement was accepted
func (v Verdict) IsLegal() bool {
	return v.Reason == nil
}

// ActionType identifies what a player does on their turn
type ActionType string

const (
	ActionPlaceWord       ActionType = "place_word"
	ActionPlaceSingleTile ActionType = "place_single_tile"
	ActionExchangeAll     ActionType = "exchange_all"
)

// Action is a player's committed choice for a turn
type Action struct {
	Type        ActionType
	Word        string // Word as laid down, including Padding for single tiles
	Tile        rune   // The tile played by a single-tile action
	Origin      Position
	Orientation Orientation
}

// PlaceWord creates a word-placement action
func PlaceWord(word string, origin Position, orientation Orientation) Action {
	return Action{
		Type:        ActionPlaceWord,
		Word:        word,
		Origin:      origin,
		Orientation: orientation,
	}
}

// PlaceSingleTile creates a single-tile action.
// word is the padded form the oracle accepted, e.g. "E " or " E".
func PlaceSingleTile(tile rune, word string, origin Position, orientation Orientation) Action {
	return Action{
		Type:        ActionPlaceSingleTile,
		Word:        word,
		Tile:        tile,
		Origin:      origin,
		Orientation: orientation,
	}
}

// ExchangeAll creates an action surrendering the whole rack
func ExchangeAll() Action {
	return Action{Type: ActionExchangeAll}
}

// IsPlacement reports whether the action puts tiles on the board
func (a Action) IsPlacement() bool {
	return a.Type == ActionPlaceWord || a.Type == ActionPlaceSingleTile
}

// Placement returns the placement an action lays down
func (a Action) Placement() Placement {
	return Placement{Word: a.Word, Origin: a.Origin, Orientation: a.Orientation}
}

// String describes the action for logs
func (a Action) String() string {
	switch a.Type {
	case ActionPlaceWord, ActionPlaceSingleTile:
		return fmt.Sprintf("%s %s", a.Type, a.Placement())
	default:
		return string(a.Type)
	}
}
