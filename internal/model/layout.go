package model

import (
	"fmt"
	"strings"
)

// Multiplier is a bonus printed on a cell
type Multiplier string

const (
	NoMultiplier Multiplier = ""
	DoubleLetter Multiplier = "DL"
	TripleLetter Multiplier = "TL"
	DoubleWord   Multiplier = "DW"
	TripleWord   Multiplier = "TW"
)

// LetterFactor returns the factor applied to the tile covering the cell
func (m Multiplier) LetterFactor() int {
	switch m {
	case DoubleLetter:
		return 2
	case TripleLetter:
		return 3
	default:
		return 1
	}
}

// WordFactor returns the factor applied to every word through the cell
func (m Multiplier) WordFactor() int {
	switch m {
	case DoubleWord:
		return 2
	case TripleWord:
		return 3
	default:
		return 1
	}
}

// Glyph returns the character used for the multiplier in layouts and renders
func (m Multiplier) Glyph() rune {
	switch m {
	case DoubleLetter:
		return '\''
	case TripleLetter:
		return '"'
	case DoubleWord:
		return '+'
	case TripleWord:
		return '='
	default:
		return ' '
	}
}

func multiplierForGlyph(glyph rune) (Multiplier, bool) {
	for _, m := range []Multiplier{NoMultiplier, DoubleLetter, TripleLetter, DoubleWord, TripleWord} {
		if m.Glyph() == glyph {
			return m, true
		}
	}
	return NoMultiplier, false
}

// Layout names
const (
	LayoutStandard = "standard"
	LayoutPlain    = "plain"
)

// Layout describes board dimensions and where the bonus cells are
type Layout struct {
	Width   int
	Height  int
	Bonuses map[Position]Multiplier
}

// standardRows is the reference 11x11 board
var standardRows = []string{
	`=  '   '  =`,
	` +   "   + `,
	`  + ' ' +  `,
	`'  +   +  '`,
	`  ' " " '  `,
	` "   +   " `,
	`  ' " " '  `,
	`'  +   +  '`,
	`  + ' ' +  `,
	` +   "   + `,
	`=  '   '  =`,
}

// StandardLayout returns the reference 11x11 layout
func StandardLayout() Layout {
	layout, err := ParseLayout(standardRows)
	if err != nil {
		panic(err)
	}
	return layout
}

// PlainLayout returns a layout with no bonus cells
func PlainLayout(width, height int) Layout {
	return Layout{
		Width:   width,
		Height:  height,
		Bonuses: make(map[Position]Multiplier),
	}
}

// LayoutByName resolves one of the named layouts
func LayoutByName(name string) (Layout, error) {
	switch name {
	case "", LayoutStandard:
		return StandardLayout(), nil
	case LayoutPlain:
		return PlainLayout(11, 11), nil
	default:
		return Layout{}, fmt.Errorf("unknown layout %q", name)
	}
}

// ParseLayout builds a layout from rows of glyphs, one string per board row.
// ' is double letter, " triple letter, + double word, = triple word, space plain.
func ParseLayout(rows []string) (Layout, error) {
	if len(rows) == 0 {
		return Layout{}, fmt.Errorf("layout has no rows")
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return Layout{}, fmt.Errorf("layout has no columns")
	}

	layout := PlainLayout(width, len(rows))
	for row, line := range rows {
		glyphs := []rune(line)
		if len(glyphs) != width {
			return Layout{}, fmt.Errorf("layout row %d has %d cells, want %d", row, len(glyphs), width)
		}
		for col, glyph := range glyphs {
			m, ok := multiplierForGlyph(glyph)
			if !ok {
				return Layout{}, fmt.Errorf("layout row %d col %d: unknown glyph %q", row, col, glyph)
			}
			if m != NoMultiplier {
				layout.Bonuses[Position{Row: row, Col: col}] = m
			}
		}
	}
	return layout, nil
}

// String renders the layout back into glyph rows
func (l Layout) String() string {
	var sb strings.Builder
	for row := 0; row < l.Height; row++ {
		for col := 0; col < l.Width; col++ {
			sb.WriteRune(l.Bonuses[Position{Row: row, Col: col}].Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
