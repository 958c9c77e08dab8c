package testutil

import "github.com/mcoot/wordgrid/internal/model"

// BoardFromRows builds a board from text rows. Letters are placed tiles;
// '.' and ' ' are empty cells. The board takes the layout's dimensions.
func BoardFromRows(layout model.Layout, rows ...string) *model.Board {
	board := model.NewBoardFromLayout("game-1", layout)
	for row, letters := range rows {
		for col, letter := range []rune(letters) {
			if letter == '.' || letter == ' ' {
				continue
			}
			if err := board.Place(model.Position{Row: row, Col: col}, letter); err != nil {
				panic(err)
			}
		}
	}
	return board
}

// Tiles builds a placement of letters along a row or column starting at start
func Tiles(start model.Position, horizontal bool, letters string) model.Placement {
	placement := make(model.Placement, 0, len(letters))
	pos := start
	for _, letter := range letters {
		placement = append(placement, model.PlacedTile{Position: pos, Letter: letter})
		if horizontal {
			pos.Col++
		} else {
			pos.Row++
		}
	}
	return placement
}
