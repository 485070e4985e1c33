package board

import (
	"strings"
	"unicode"

	"github.com/mcoot/smartscrabble/internal/model"
)

// WordChecker answers whether a word is in the lexicon
type WordChecker interface {
	IsValidWord(word string) bool
}

// Cell is one square covered by a word.
// Letters played from a blank are lower case.
type Cell struct {
	Pos    model.Position
	Letter rune
	New    bool // Placed by this move rather than already on the board
}

// Word is a run of contiguous cells read in one orientation
type Word struct {
	Orientation model.Orientation
	Cells       []Cell
}

// String returns the word's letters in upper case
func (w Word) String() string {
	var sb strings.Builder
	for _, c := range w.Cells {
		sb.WriteRune(unicode.ToUpper(c.Letter))
	}
	return sb.String()
}

// Layout is a placement resolved against a board and rack
type Layout struct {
	Placement  model.Placement
	Main       Word
	CrossWords []Word
	Placed     []Cell // New tiles in word order
	RackTiles  []rune // Rack symbols consumed, Blank for wildcards
}

// Words returns every word the move forms, main word first
func (l *Layout) Words() []Word {
	words := make([]Word, 0, 1+len(l.CrossWords))
	words = append(words, l.Main)
	return append(words, l.CrossWords...)
}

// Service checks placements against the board rules
type Service struct {
	rules      *model.Rules
	dictionary WordChecker
}

// New creates a new BoardService
func New(rules *model.Rules, dictionary WordChecker) *Service {
	return &Service{
		rules:      rules,
		dictionary: dictionary,
	}
}

// Rules returns the rules the service checks against
func (s *Service) Rules() *model.Rules {
	return s.rules
}

// NewBoard creates an empty board sized by the rules
func (s *Service) NewBoard() *model.Board {
	return model.NewBoard(s.rules.BoardSize)
}

// Resolve checks a placement and returns its layout.
// The error is one of the model placement rejection errors.
func (s *Service) Resolve(board *model.Board, rack model.Rack, p model.Placement) (*Layout, error) {
	letters := []rune(p.Word)
	if len(letters) == 0 {
		return nil, model.ErrEmptyWord
	}

	layout := &Layout{Placement: p}
	var needed []rune
	touches := false

	for i, ch := range letters {
		pos := p.Origin.Advance(p.Orientation, i)
		if !board.IsValidPosition(pos) {
			return nil, model.ErrOutOfBounds
		}

		if ch == model.Padding {
			if board.IsEmpty(pos) {
				return nil, model.ErrMissingBoardTile
			}
			touches = true
			layout.Main.Cells = append(layout.Main.Cells, Cell{Pos: pos, Letter: board.Get(pos)})
			continue
		}

		if !model.IsLetter(ch) {
			return nil, model.ErrInvalidWord
		}
		if !board.IsEmpty(pos) {
			return nil, model.ErrCellOccupied
		}
		if board.HasNeighbour(pos) {
			touches = true
		}
		needed = append(needed, unicode.ToUpper(ch))
		layout.Main.Cells = append(layout.Main.Cells, Cell{Pos: pos, Letter: unicode.ToUpper(ch), New: true})
	}

	if len(needed) == 0 {
		return nil, model.ErrEmptyWord
	}

	blanked, consumed, ok := coverFromRack(rack, needed)
	if !ok {
		return nil, model.ErrTilesNotInRack
	}
	layout.RackTiles = consumed

	n := 0
	for i := range layout.Main.Cells {
		if !layout.Main.Cells[i].New {
			continue
		}
		if blanked[n] {
			layout.Main.Cells[i].Letter = unicode.ToLower(layout.Main.Cells[i].Letter)
		}
		n++
	}

	if board.HasTiles() {
		if !touches {
			return nil, model.ErrNotConnected
		}
	} else if !covers(layout.Main.Cells, s.rules.Center) {
		return nil, model.ErrMissesCenter
	}

	layout.Main = s.extend(board, layout.Main, p.Orientation)
	for _, c := range layout.Main.Cells {
		if c.New {
			layout.Placed = append(layout.Placed, c)
		}
	}

	for _, c := range layout.Placed {
		cross := s.extend(board, Word{Cells: []Cell{c}}, p.Orientation.Cross())
		if len(cross.Cells) > 1 {
			layout.CrossWords = append(layout.CrossWords, cross)
		}
	}

	if len(layout.Main.Cells) < 2 && len(layout.CrossWords) == 0 {
		return nil, model.ErrInvalidWord
	}
	if len(layout.Main.Cells) >= 2 && !s.dictionary.IsValidWord(layout.Main.String()) {
		return nil, model.ErrInvalidWord
	}
	for _, w := range layout.CrossWords {
		if !s.dictionary.IsValidWord(w.String()) {
			return nil, model.ErrInvalidCrossWord
		}
	}

	return layout, nil
}

// Apply writes a resolved layout's new tiles onto the board
func (s *Service) Apply(board *model.Board, layout *Layout) {
	for _, c := range layout.Placed {
		board.Set(c.Pos, c.Letter)
	}
}

// extend grows a word with the contiguous board tiles before and after it
func (s *Service) extend(board *model.Board, w Word, o model.Orientation) Word {
	out := Word{Orientation: o}
	first := w.Cells[0].Pos
	last := w.Cells[len(w.Cells)-1].Pos

	var before []Cell
	for pos := first.Advance(o, -1); !board.IsEmpty(pos); pos = pos.Advance(o, -1) {
		before = append(before, Cell{Pos: pos, Letter: board.Get(pos)})
	}
	for i := len(before) - 1; i >= 0; i-- {
		out.Cells = append(out.Cells, before[i])
	}

	out.Cells = append(out.Cells, w.Cells...)

	for pos := last.Advance(o, 1); !board.IsEmpty(pos); pos = pos.Advance(o, 1) {
		out.Cells = append(out.Cells, Cell{Pos: pos, Letter: board.Get(pos)})
	}
	return out
}

// coverFromRack matches needed letters against the rack, falling back to blanks.
// It reports per letter whether a blank was used and the rack symbols consumed.
func coverFromRack(rack model.Rack, needed []rune) ([]bool, []rune, bool) {
	available := make(map[rune]int)
	for _, t := range rack {
		available[t]++
	}

	blanked := make([]bool, len(needed))
	consumed := make([]rune, 0, len(needed))
	for i, ch := range needed {
		if available[ch] > 0 {
			available[ch]--
			consumed = append(consumed, ch)
			continue
		}
		if available[model.Blank] > 0 {
			available[model.Blank]--
			blanked[i] = true
			consumed = append(consumed, model.Blank)
			continue
		}
		return nil, nil, false
	}
	return blanked, consumed, true
}

func covers(cells []Cell, pos model.Position) bool {
	for _, c := range cells {
		if c.Pos == pos {
			return true
		}
	}
	return false
}

// Interface for dependency injection
type ServiceInterface interface {
	Rules() *model.Rules
	NewBoard() *model.Board
	Resolve(board *model.Board, rack model.Rack, p model.Placement) (*Layout, error)
	Apply(board *model.Board, layout *Layout)
}

var _ ServiceInterface = (*Service)(nil)
