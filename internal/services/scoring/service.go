package scoring

import (
	"unicode"

	"github.com/mcoot/wordgrid/internal/model"
)

// Config holds the point table for scoring moves
type Config struct {
	// LetterValues maps upper-case letters to base points. Missing letters score 0.
	LetterValues map[rune]int
	// FullHandBonus is added when a move uses every tile a full hand holds
	FullHandBonus int
}

// DefaultConfig returns the English tile values and a 50 point bonus for
// playing a full hand
func DefaultConfig() Config {
	values := make(map[rune]int, 26)
	for points, letters := range map[int]string{
		1:  "AEILNORSTU",
		2:  "DG",
		3:  "BCMP",
		4:  "FHVWY",
		5:  "K",
		8:  "JX",
		10: "QZ",
	} {
		for _, letter := range letters {
			values[letter] = points
		}
	}
	return Config{
		LetterValues:  values,
		FullHandBonus: 50,
	}
}

// Service scores the words formed by a move
type Service struct {
	cfg Config
}

// New creates a new ScoringService
func New(cfg Config) *Service {
	return &Service{
		cfg: cfg,
	}
}

// LetterValue returns the base points for a letter
func (s *Service) LetterValue(letter rune) int {
	return s.cfg.LetterValues[unicode.ToUpper(letter)]
}

// ScoreWord returns the points for one formed word. Multipliers only count
// for tiles placed by the current move; blank tiles are worth nothing.
func (s *Service) ScoreWord(b *model.Board, w model.Word) int {
	sum := 0
	wordFactor := 1
	for _, t := range w.Tiles {
		value := 0
		if !t.Blank {
			value = s.LetterValue(t.Letter)
		}
		if t.New {
			cell, err := b.CellAt(t.Position)
			if err == nil {
				value *= cell.Multiplier.LetterFactor()
				wordFactor *= cell.Multiplier.WordFactor()
			}
		}
		sum += value
	}
	return sum * wordFactor
}

// ScoreMove scores every word formed by a validated move. The full-hand
// bonus applies when the move places as many tiles as the player's hand
// holds, taken from result.Hand.Capacity.
func (s *Service) ScoreMove(b *model.Board, result *model.MoveResult) *model.MoveScore {
	score := &model.MoveScore{
		Words: make([]model.WordScore, 0, len(result.Words)),
	}

	for _, w := range result.Words {
		points := s.ScoreWord(b, w)
		score.Words = append(score.Words, model.WordScore{
			Word:       w.String(),
			Start:      w.Start(),
			Horizontal: w.Horizontal,
			Score:      points,
		})
		score.Total += points
	}

	if capacity := result.Hand.Capacity; capacity > 0 && len(result.Placement) == capacity {
		score.Bonus = s.cfg.FullHandBonus
		score.Total += score.Bonus
	}

	return score
}

// Interface for dependency injection
type ServiceInterface interface {
	LetterValue(letter rune) int
	ScoreWord(b *model.Board, w model.Word) int
	ScoreMove(b *model.Board, result *model.MoveResult) *model.MoveScore
}

var _ ServiceInterface = (*Service)(nil)
