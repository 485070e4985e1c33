package model

import "strings"

// EmptyCell marks an unoccupied square in Board.Cells
const EmptyCell rune = 0

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Orientation is the direction a word is laid down in
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Orientations lists both orientations in scan order
var Orientations = [2]Orientation{Horizontal, Vertical}

// String returns the orientation name
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Step returns the row and column increment for one square in this orientation
func (o Orientation) Step() (dRow, dCol int) {
	if o == Vertical {
		return 1, 0
	}
	return 0, 1
}

// Cross returns the perpendicular orientation
func (o Orientation) Cross() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// ParseOrientation parses "horizontal"/"h" or "vertical"/"v"
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "horizontal", "h", "across":
		return Horizontal, nil
	case "vertical", "v", "down":
		return Vertical, nil
	default:
		return Horizontal, ErrInvalidOrientation
	}
}

// Advance returns the position n squares away in the given orientation
func (p Position) Advance(o Orientation, n int) Position {
	dr, dc := o.Step()
	return Position{Row: p.Row + dr*n, Col: p.Col + dc*n}
}

// Board is a square grid of placed tiles.
// Letters played from a blank are stored in lower case.
type Board struct {
	Size  int      // Grid dimension (e.g., 15 for 15x15)
	Cells [][]rune // Row-major: Cells[row][col], 0 means empty
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) *Board {
	cells := make([][]rune, size)
	for i := range cells {
		cells[i] = make([]rune, size)
	}
	return &Board{
		Size:  size,
		Cells: cells,
	}
}

// ParseBoard builds a board from row strings, where '.' or ' ' is an empty cell
func ParseBoard(rows []string) (*Board, error) {
	board := NewBoard(len(rows))
	for r, line := range rows {
		letters := []rune(line)
		if len(letters) != len(rows) {
			return nil, ErrInvalidBoard
		}
		for c, ch := range letters {
			if ch == '.' || ch == ' ' {
				continue
			}
			if !IsLetter(ch) {
				return nil, ErrInvalidBoard
			}
			board.Cells[r][c] = ch
		}
	}
	return board, nil
}

// Get returns the letter at the given position, or 0 if empty
func (b *Board) Get(pos Position) rune {
	if !b.IsValidPosition(pos) {
		return EmptyCell
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set places a letter at the given position
func (b *Board) Set(pos Position, letter rune) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col] = letter
	}
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == EmptyCell
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// HasTiles returns true if any cell is occupied
func (b *Board) HasTiles() bool {
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] != EmptyCell {
				return true
			}
		}
	}
	return false
}

// TileCount returns the number of occupied cells
func (b *Board) TileCount() int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] != EmptyCell {
				count++
			}
		}
	}
	return count
}

// HasNeighbour returns true if any orthogonally adjacent cell is occupied
func (b *Board) HasNeighbour(pos Position) bool {
	for _, o := range Orientations {
		if !b.IsEmpty(pos.Advance(o, -1)) || !b.IsEmpty(pos.Advance(o, 1)) {
			return true
		}
	}
	return false
}

// Rows renders the board as row strings with '.' for empty cells
func (b *Board) Rows() []string {
	rows := make([]string, b.Size)
	for row := 0; row < b.Size; row++ {
		var sb strings.Builder
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] == EmptyCell {
				sb.WriteRune('.')
			} else {
				sb.WriteRune(b.Cells[row][col])
			}
		}
		rows[row] = sb.String()
	}
	return rows
}

// String renders the board one row per line
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
