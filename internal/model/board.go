package model

import "strings"

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Offset returns the position shifted by the given row and column deltas
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Cell is one grid position. Occupancy and multiplier are independent:
// a bonus cell keeps its multiplier after a tile is placed on it.
type Cell struct {
	Letter     rune       // 0 means empty
	Blank      bool       // true if the letter was played with a blank tile
	Multiplier Multiplier // NoMultiplier for plain cells
}

// IsEmpty returns true if no tile has been placed on the cell
func (c Cell) IsEmpty() bool {
	return c.Letter == 0
}

// HasBonus returns true if the cell carries a multiplier
func (c Cell) HasBonus() bool {
	return c.Multiplier != NoMultiplier
}

// Glyph returns the character used for the cell in a board render
func (c Cell) Glyph() rune {
	if !c.IsEmpty() {
		return c.Letter
	}
	return c.Multiplier.Glyph()
}

// Board is the shared grid for a game
type Board struct {
	GameID GameID
	Width  int
	Height int
	Cells  [][]Cell // Row-major: Cells[row][col]
}

// NewBoard creates an empty board with no bonus cells
func NewBoard(gameID GameID, width, height int) *Board {
	return NewBoardFromLayout(gameID, PlainLayout(width, height))
}

// NewBoardFromLayout creates an empty board with the layout's bonus cells
func NewBoardFromLayout(gameID GameID, layout Layout) *Board {
	cells := make([][]Cell, layout.Height)
	for row := range cells {
		cells[row] = make([]Cell, layout.Width)
		for col := range cells[row] {
			cells[row][col].Multiplier = layout.Bonuses[Position{Row: row, Col: col}]
		}
	}
	return &Board{
		GameID: gameID,
		Width:  layout.Width,
		Height: layout.Height,
		Cells:  cells,
	}
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Height && pos.Col >= 0 && pos.Col < b.Width
}

// CellAt returns the cell at the given position
func (b *Board) CellAt(pos Position) (Cell, error) {
	if !b.IsValidPosition(pos) {
		return Cell{}, ErrOutOfBounds
	}
	return b.Cells[pos.Row][pos.Col], nil
}

// Get returns the letter at the given position, or 0 if empty or out of bounds
func (b *Board) Get(pos Position) rune {
	if !b.IsValidPosition(pos) {
		return 0
	}
	return b.Cells[pos.Row][pos.Col].Letter
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == 0
}

// IsPlaced returns true if the position is on the board and holds a tile
func (b *Board) IsPlaced(pos Position) bool {
	return b.Get(pos) != 0
}

// Place puts a letter on an empty cell. It does not check game rules.
func (b *Board) Place(pos Position, letter rune) error {
	return b.place(pos, letter, false)
}

// PlaceBlank puts a blank tile standing for letter on an empty cell
func (b *Board) PlaceBlank(pos Position, letter rune) error {
	return b.place(pos, letter, true)
}

func (b *Board) place(pos Position, letter rune, blank bool) error {
	if !b.IsValidPosition(pos) {
		return ErrOutOfBounds
	}
	cell := &b.Cells[pos.Row][pos.Col]
	if !cell.IsEmpty() {
		return ErrCellOccupied
	}
	cell.Letter = letter
	cell.Blank = blank
	return nil
}

// Center returns the center cell
func (b *Board) Center() Position {
	return Position{Row: b.Height / 2, Col: b.Width / 2}
}

// TileCount returns the number of placed tiles
func (b *Board) TileCount() int {
	count := 0
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if !b.Cells[row][col].IsEmpty() {
				count++
			}
		}
	}
	return count
}

// HasTiles returns true once any tile has been placed
func (b *Board) HasTiles() bool {
	return b.TileCount() > 0
}

var (
	orthogonalSteps = []Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	kingSteps       = []Position{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// AllTilesConnected returns true if the placed tiles form a single group
// joined up/down/left/right. An empty board counts as connected.
func (b *Board) AllTilesConnected() bool {
	unvisited := make(map[Position]struct{})
	var start Position
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if !b.Cells[row][col].IsEmpty() {
				start = Position{Row: row, Col: col}
				unvisited[start] = struct{}{}
			}
		}
	}
	if len(unvisited) == 0 {
		return true
	}

	delete(unvisited, start)
	queue := []Position{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, step := range orthogonalSteps {
			next := current.Offset(step.Row, step.Col)
			if !b.IsPlaced(next) {
				continue
			}
			if _, ok := unvisited[next]; ok {
				delete(unvisited, next)
				queue = append(queue, next)
			}
		}
	}
	return len(unvisited) == 0
}

// AdjacentToExistingTile returns true if any of the eight surrounding cells,
// diagonals included, holds a tile
func (b *Board) AdjacentToExistingTile(pos Position) bool {
	for _, step := range kingSteps {
		if b.IsPlaced(pos.Offset(step.Row, step.Col)) {
			return true
		}
	}
	return false
}

// Render returns a bordered text dump of the board
func (b *Board) Render() string {
	var sb strings.Builder
	border := strings.Repeat("-", b.Width+2) + "\n"

	sb.WriteString(border)
	for row := 0; row < b.Height; row++ {
		sb.WriteByte('|')
		for col := 0; col < b.Width; col++ {
			sb.WriteRune(b.Cells[row][col].Glyph())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}

// String implements fmt.Stringer
func (b *Board) String() string {
	return b.Render()
}

// Clone returns an independent copy for speculative validation
func (b *Board) Clone() *Board {
	cells := make([][]Cell, len(b.Cells))
	for row := range b.Cells {
		cells[row] = make([]Cell, len(b.Cells[row]))
		copy(cells[row], b.Cells[row])
	}
	return &Board{
		GameID: b.GameID,
		Width:  b.Width,
		Height: b.Height,
		Cells:  cells,
	}
}

// GetRow returns the letters in the given row, 0 for empty cells
func (b *Board) GetRow(row int) []rune {
	if row < 0 || row >= b.Height {
		return nil
	}
	result := make([]rune, b.Width)
	for col := 0; col < b.Width; col++ {
		result[col] = b.Cells[row][col].Letter
	}
	return result
}
