package model

import "strings"

// PlacedTile is one tile proposed for a move
type PlacedTile struct {
	Position Position
	Letter   rune
	Blank    bool // played from a blank tile; Letter is the letter it stands for
}

// HandTile returns the tile consumed from the hand
func (t PlacedTile) HandTile() rune {
	if t.Blank {
		return BlankTile
	}
	return t.Letter
}

// Placement is the set of tiles proposed for one turn
type Placement []PlacedTile

// Positions returns the target positions in placement order
func (p Placement) Positions() []Position {
	positions := make([]Position, len(p))
	for i, t := range p {
		positions[i] = t.Position
	}
	return positions
}

// HandTiles returns the tiles the placement consumes from the hand
func (p Placement) HandTiles() []rune {
	tiles := make([]rune, len(p))
	for i, t := range p {
		tiles[i] = t.HandTile()
	}
	return tiles
}

// WordTile is one letter of a formed word
type WordTile struct {
	Position Position
	Letter   rune
	Blank    bool
	New      bool // placed by the current move
}

// Word is a maximal run of tiles formed by a move
type Word struct {
	Tiles      []WordTile
	Horizontal bool
}

// String returns the word's letters
func (w Word) String() string {
	var sb strings.Builder
	for _, t := range w.Tiles {
		sb.WriteRune(t.Letter)
	}
	return sb.String()
}

// Start returns the position of the first letter
func (w Word) Start() Position {
	if len(w.Tiles) == 0 {
		return Position{}
	}
	return w.Tiles[0].Position
}

// Positions returns the word's coordinates in reading order
func (w Word) Positions() []Position {
	positions := make([]Position, len(w.Tiles))
	for i, t := range w.Tiles {
		positions[i] = t.Position
	}
	return positions
}

// MoveResult is the outcome of a successful validation
type MoveResult struct {
	Placement Placement
	Words     []Word
	Hand      Hand // the hand with the placed tiles removed
}

// WordScore is the points earned by one formed word
type WordScore struct {
	Word       string
	Start      Position
	Horizontal bool
	Score      int
}

// MoveScore is the points earned by a move
type MoveScore struct {
	Words []WordScore
	Bonus int // full-hand bonus
	Total int
}
