package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/wordgrid/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case BoardView:
		o.printBoard(v)
	case HandView:
		o.printHand(v)
	case MoveView:
		o.printMove(v)
	case GameSummary:
		o.printSummary(v)
	case []WordCheck:
		o.printWordChecks(v)
	case DictionaryInfo:
		o.printDictionaryInfo(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// BoardView is a board as shown to the user
type BoardView struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cells  [][]string `json:"cells"`
	Text   string     `json:"-"`
}

// HandView lists the tiles held and how many are left to draw
type HandView struct {
	Tiles    string `json:"tiles"`
	Capacity int    `json:"capacity"`
	Bag      int    `json:"bag"`
}

// WordView is one scored word
type WordView struct {
	Word       string `json:"word"`
	Score      int    `json:"score"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Horizontal bool   `json:"horizontal"`
}

// MoveView is a previewed or committed move
type MoveView struct {
	Committed bool       `json:"committed"`
	Turn      int        `json:"turn,omitempty"`
	Words     []WordView `json:"words"`
	Bonus     int        `json:"bonus"`
	Score     int        `json:"score"`
	Total     int        `json:"total"`
	Hand      string     `json:"hand"`
}

// GameSummary is printed when a game ends
type GameSummary struct {
	ID    string `json:"id"`
	State string `json:"state"`
	Turns int    `json:"turns"`
	Score int    `json:"score"`
}

// WordCheck is the result of a dictionary lookup
type WordCheck struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

// DictionaryInfo describes the loaded word list
type DictionaryInfo struct {
	Path        string `json:"path"`
	WordCount   int    `json:"word_count"`
	Fingerprint string `json:"fingerprint"`
}

func newBoardView(b *model.Board) BoardView {
	cells := make([][]string, b.Height)
	for row := range cells {
		cells[row] = make([]string, b.Width)
		for col, letter := range b.GetRow(row) {
			if letter != 0 {
				cells[row][col] = string(letter)
			}
		}
	}
	return BoardView{
		Width:  b.Width,
		Height: b.Height,
		Cells:  cells,
		Text:   b.Render(),
	}
}

func newHandView(g *model.Game) HandView {
	return HandView{Tiles: g.Hand.String(), Capacity: g.Hand.Capacity, Bag: g.Bag.Len()}
}

func newWordViews(scores []model.WordScore) []WordView {
	words := make([]WordView, len(scores))
	for i, w := range scores {
		words[i] = WordView{
			Word:       w.Word,
			Score:      w.Score,
			Row:        w.Start.Row,
			Col:        w.Start.Col,
			Horizontal: w.Horizontal,
		}
	}
	return words
}

func (o *Output) printBoard(b BoardView) {
	fmt.Fprint(o.out, b.Text)
}

func (o *Output) printHand(h HandView) {
	fmt.Fprintf(o.out, "Hand: %s (%d/%d, %d in bag)\n", h.Tiles, len([]rune(h.Tiles)), h.Capacity, h.Bag)
}

func (o *Output) printMove(m MoveView) {
	for _, w := range m.Words {
		direction := "down"
		if w.Horizontal {
			direction = "across"
		}
		fmt.Fprintf(o.out, "  %s at %d,%d %s: %d pts\n", w.Word, w.Row, w.Col, direction, w.Score)
	}
	if m.Bonus > 0 {
		fmt.Fprintf(o.out, "  full hand bonus: %d pts\n", m.Bonus)
	}
	if m.Committed {
		fmt.Fprintf(o.out, "Turn %d: %d pts (total %d)\n", m.Turn, m.Score, m.Total)
	} else {
		fmt.Fprintf(o.out, "Preview: %d pts\n", m.Score)
	}
	fmt.Fprintf(o.out, "Hand: %s\n", m.Hand)
}

func (o *Output) printSummary(s GameSummary) {
	fmt.Fprintf(o.out, "Game: %s\n", s.ID)
	fmt.Fprintf(o.out, "State: %s\n", s.State)
	fmt.Fprintf(o.out, "Turns: %d\n", s.Turns)
	fmt.Fprintf(o.out, "Score: %d\n", s.Score)
}

func (o *Output) printWordChecks(checks []WordCheck) {
	for _, c := range checks {
		status := "not found"
		if c.Valid {
			status = "ok"
		}
		fmt.Fprintf(o.out, "%s: %s\n", c.Word, status)
	}
}

func (o *Output) printDictionaryInfo(d DictionaryInfo) {
	fmt.Fprintf(o.out, "Path: %s\n", d.Path)
	fmt.Fprintf(o.out, "Words: %d\n", d.WordCount)
	fmt.Fprintf(o.out, "Fingerprint: %s\n", d.Fingerprint)
}
