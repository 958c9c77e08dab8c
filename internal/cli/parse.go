package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/wordgrid/internal/model"
)

// moveSpec is a move as typed by the player: a starting cell, a direction
// and the tiles to lay down along it
type moveSpec struct {
	start      model.Position
	horizontal bool
	tiles      []model.PlacedTile
}

// parseMoveSpec parses "ROW COL h|v LETTERS"
func parseMoveSpec(args []string) (moveSpec, error) {
	if len(args) != 4 {
		return moveSpec{}, errors.New("usage: ROW COL h|v LETTERS")
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return moveSpec{}, fmt.Errorf("invalid row: %w", err)
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return moveSpec{}, fmt.Errorf("invalid col: %w", err)
	}

	var horizontal bool
	switch strings.ToLower(args[2]) {
	case "h", "across":
		horizontal = true
	case "v", "down":
		horizontal = false
	default:
		return moveSpec{}, fmt.Errorf("invalid direction %q: must be h or v", args[2])
	}

	tiles, err := parseTiles(args[3])
	if err != nil {
		return moveSpec{}, err
	}

	return moveSpec{
		start:      model.Position{Row: row, Col: col},
		horizontal: horizontal,
		tiles:      tiles,
	}, nil
}

// parseTiles reads letters, where "?x" is a blank standing for x
func parseTiles(s string) ([]model.PlacedTile, error) {
	runes := []rune(s)
	tiles := make([]model.PlacedTile, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] != model.BlankTile {
			tiles = append(tiles, model.PlacedTile{Letter: runes[i]})
			continue
		}
		if i+1 >= len(runes) {
			return nil, errors.New("blank needs a letter after it, e.g. ?E")
		}
		i++
		tiles = append(tiles, model.PlacedTile{Letter: runes[i], Blank: true})
	}
	return tiles, nil
}

// placement lays the tiles on successive empty cells from the start,
// stepping over tiles already on the board
func (m moveSpec) placement(b *model.Board) model.Placement {
	step := model.Position{Col: 1}
	if !m.horizontal {
		step = model.Position{Row: 1}
	}

	placement := make(model.Placement, 0, len(m.tiles))
	pos := m.start
	for _, t := range m.tiles {
		for b.IsValidPosition(pos) && !b.IsEmpty(pos) {
			pos = pos.Offset(step.Row, step.Col)
		}
		t.Position = pos
		placement = append(placement, t)
		pos = pos.Offset(step.Row, step.Col)
	}
	return placement
}

// parseDraw collects tiles from "draw" arguments. No arguments means
// refill from the bag, reported as nil.
func parseDraw(args []string) []rune {
	if len(args) == 0 {
		return nil
	}
	return []rune(strings.Join(args, ""))
}
