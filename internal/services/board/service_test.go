package board

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/dictionary"
	"github.com/mcoot/smartscrabble/internal/storage/memory"
	"github.com/mcoot/smartscrabble/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	board   *model.Board
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	dict := dictionary.New(memory.New(), testutil.NopLogger())
	s.Require().NoError(dict.LoadWords([]string{"cat", "cats", "as", "at", "xi", "dog", "ta"}))

	s.service = New(model.DefaultRules(), dict)
	s.board = s.service.NewBoard()
}

// placeCat puts CAT on the centre row at columns 6-8
func (s *ServiceSuite) placeCat() {
	for i, ch := range "CAT" {
		s.board.Set(model.Position{Row: 7, Col: 6 + i}, ch)
	}
}

func (s *ServiceSuite) resolve(rack string, word string, row, col int, o model.Orientation) (*Layout, error) {
	r, err := model.ParseRack(rack)
	s.Require().NoError(err)
	return s.service.Resolve(s.board, r, model.Placement{Word: word, Origin: model.Position{Row: row, Col: col}, Orientation: o})
}

// First move tests

func (s *ServiceSuite) TestFirstMoveCoveringCentre() {
	layout, err := s.resolve("CATXYZQ", "CAT", 7, 6, model.Horizontal)
	s.Require().NoError(err)

	s.Equal("CAT", layout.Main.String())
	s.Len(layout.Placed, 3)
	s.Empty(layout.CrossWords)
	s.Equal([]rune("CAT"), layout.RackTiles)
}

func (s *ServiceSuite) TestFirstMoveMissingCentre() {
	_, err := s.resolve("CATXYZQ", "CAT", 0, 0, model.Horizontal)
	s.ErrorIs(err, model.ErrMissesCenter)
}

func (s *ServiceSuite) TestFirstMoveVertical() {
	layout, err := s.resolve("CAT", "CAT", 5, 7, model.Vertical)
	s.Require().NoError(err)
	s.Equal(model.Vertical, layout.Main.Orientation)
	s.Equal(model.Position{Row: 7, Col: 7}, layout.Placed[2].Pos)
}

// Rejection tests

func (s *ServiceSuite) TestEmptyWord() {
	_, err := s.resolve("CAT", "", 7, 7, model.Horizontal)
	s.ErrorIs(err, model.ErrEmptyWord)
}

func (s *ServiceSuite) TestAllPaddingPlacesNothing() {
	s.placeCat()
	_, err := s.resolve("CAT", "   ", 7, 6, model.Horizontal)
	s.ErrorIs(err, model.ErrEmptyWord)
}

func (s *ServiceSuite) TestOutOfBounds() {
	_, err := s.resolve("CAT", "CAT", 7, 13, model.Horizontal)
	s.ErrorIs(err, model.ErrOutOfBounds)
}

func (s *ServiceSuite) TestNonLetter() {
	_, err := s.resolve("CAT", "C4T", 7, 6, model.Horizontal)
	s.ErrorIs(err, model.ErrInvalidWord)
}

func (s *ServiceSuite) TestTilesNotInRack() {
	_, err := s.resolve("CAXYZQR", "CAT", 7, 6, model.Horizontal)
	s.ErrorIs(err, model.ErrTilesNotInRack)
}

func (s *ServiceSuite) TestWordNotInDictionary() {
	_, err := s.resolve("TAC", "TAC", 7, 6, model.Horizontal)
	s.ErrorIs(err, model.ErrInvalidWord)
}

func (s *ServiceSuite) TestLetterOnOccupiedCell() {
	s.placeCat()
	_, err := s.resolve("CATS", "CATS", 7, 6, model.Horizontal)
	s.ErrorIs(err, model.ErrCellOccupied)
}

func (s *ServiceSuite) TestPaddingOnEmptyCell() {
	s.placeCat()
	_, err := s.resolve("S", " S", 0, 0, model.Horizontal)
	s.ErrorIs(err, model.ErrMissingBoardTile)
}

func (s *ServiceSuite) TestNotConnected() {
	s.placeCat()
	_, err := s.resolve("DOG", "DOG", 0, 0, model.Horizontal)
	s.ErrorIs(err, model.ErrNotConnected)
}

func (s *ServiceSuite) TestInvalidCrossWord() {
	s.placeCat()
	// X under C forms CX down column 6
	_, err := s.resolve("XI", "XI", 8, 6, model.Horizontal)
	s.ErrorIs(err, model.ErrInvalidCrossWord)
}

// Extension tests

func (s *ServiceSuite) TestPaddingExtendsExistingWord() {
	s.placeCat()
	layout, err := s.resolve("S", "   S", 7, 6, model.Horizontal)
	s.Require().NoError(err)

	s.Equal("CATS", layout.Main.String())
	s.Len(layout.Placed, 1)
	s.Equal([]rune("S"), layout.RackTiles)
}

func (s *ServiceSuite) TestSingleTileAfterBoardTile() {
	s.placeCat()
	layout, err := s.resolve("S", " S", 7, 8, model.Horizontal)
	s.Require().NoError(err)

	// Leading C and A are picked up from the board
	s.Equal("CATS", layout.Main.String())
	s.Equal(model.Position{Row: 7, Col: 9}, layout.Placed[0].Pos)
}

func (s *ServiceSuite) TestSingleTileFormingInvalidWord() {
	s.placeCat()
	_, err := s.resolve("S", "S ", 6, 8, model.Vertical)
	s.ErrorIs(err, model.ErrInvalidWord)
}

func (s *ServiceSuite) TestCrossWordsAreCollected() {
	s.placeCat()
	// AS down column 9, the S completes CATS across
	layout, err := s.resolve("AS", "AS", 6, 9, model.Vertical)
	s.Require().NoError(err)

	s.Equal("AS", layout.Main.String())
	s.Require().Len(layout.CrossWords, 1)
	s.Equal("CATS", layout.CrossWords[0].String())
	s.Equal(model.Horizontal, layout.CrossWords[0].Orientation)
	s.Len(layout.Words(), 2)
}

// Blank tests

func (s *ServiceSuite) TestBlankCoversMissingLetter() {
	layout, err := s.resolve("CA_", "CAT", 7, 6, model.Horizontal)
	s.Require().NoError(err)

	s.Equal([]rune{'C', 'A', model.Blank}, layout.RackTiles)
	s.Equal('t', layout.Placed[2].Letter)
	s.Equal("CAT", layout.Main.String())
}

func (s *ServiceSuite) TestRealTilePreferredOverBlank() {
	layout, err := s.resolve("_CAT", "CAT", 7, 6, model.Horizontal)
	s.Require().NoError(err)

	s.NotContains(layout.RackTiles, model.Blank)
	for _, c := range layout.Placed {
		s.True(unicode.IsUpper(c.Letter))
	}
}

// Apply tests

func (s *ServiceSuite) TestApplyWritesPlacedTiles() {
	layout, err := s.resolve("CA_", "CAT", 7, 6, model.Horizontal)
	s.Require().NoError(err)

	s.service.Apply(s.board, layout)

	s.Equal([]string{"......CAt......"}, s.board.Rows()[7:8])
	s.Equal(3, s.board.TileCount())
}
