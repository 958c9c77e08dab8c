package validator

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/services/board"
)

// WordChecker answers dictionary membership queries
type WordChecker interface {
	Contains(word string) bool
}

// Service decides whether a placement is a legal move and which words it forms
type Service struct {
	dictionary WordChecker
	logger     *slog.Logger
}

// New creates a new move validator
func New(dictionary WordChecker, logger *slog.Logger) *Service {
	return &Service{
		dictionary: dictionary,
		logger:     logger,
	}
}

// Validate checks a placement against the board and hand. On success it
// returns the formed words and the hand with the placed tiles removed.
// The board and hand passed in are never modified.
func (s *Service) Validate(b *model.Board, hand model.Hand, placement model.Placement) (*model.MoveResult, error) {
	result, err := s.validate(b, hand, placement)
	if err != nil {
		s.logger.Debug("move rejected",
			slog.String("game_id", string(b.GameID)),
			slog.Int("tiles", len(placement)),
			slog.String("reason", err.Error()),
		)
		return nil, err
	}
	return result, nil
}

func (s *Service) validate(b *model.Board, hand model.Hand, placement model.Placement) (*model.MoveResult, error) {
	if len(placement) == 0 {
		return nil, model.ErrEmptyPlacement
	}

	// Targets must be distinct, on the board and empty
	seen := make(map[model.Position]bool, len(placement))
	for _, t := range placement {
		if seen[t.Position] {
			return nil, positionError(model.ErrDuplicatePosition, t.Position)
		}
		seen[t.Position] = true

		if !b.IsValidPosition(t.Position) {
			return nil, positionError(model.ErrOutOfBounds, t.Position)
		}
		if !b.IsEmpty(t.Position) {
			return nil, positionError(model.ErrCellOccupied, t.Position)
		}
	}

	// Letters must be real letters held in the hand
	normalized := make(model.Placement, len(placement))
	for i, t := range placement {
		if err := board.ValidateLetter(t.Letter); err != nil {
			return nil, fmt.Errorf("%w: %q", err, t.Letter)
		}
		t.Letter = unicode.ToUpper(t.Letter)
		normalized[i] = t
	}
	remaining, err := hand.Remove(normalized.HandTiles()...)
	if err != nil {
		return nil, err
	}

	horizontal, err := lineOf(b, normalized, seen)
	if err != nil {
		return nil, err
	}

	if !b.HasTiles() {
		if !seen[b.Center()] {
			return nil, model.ErrMustCoverCenter
		}
	} else if !touchesExisting(b, normalized) {
		return nil, model.ErrDisconnected
	}

	trial := b.Clone()
	for _, t := range normalized {
		if t.Blank {
			err = trial.PlaceBlank(t.Position, t.Letter)
		} else {
			err = trial.Place(t.Position, t.Letter)
		}
		if err != nil {
			return nil, err
		}
	}
	if !trial.AllTilesConnected() {
		return nil, model.ErrDisconnected
	}

	words := formedWords(trial, normalized, horizontal, seen)
	if len(words) == 0 {
		return nil, model.ErrNoWordFormed
	}
	for _, w := range words {
		if !s.dictionary.Contains(w.String()) {
			return nil, &model.InvalidWordError{Word: w.String()}
		}
	}

	return &model.MoveResult{
		Placement: normalized,
		Words:     words,
		Hand:      remaining,
	}, nil
}

func positionError(err error, pos model.Position) error {
	return fmt.Errorf("%w: row %d col %d", err, pos.Row, pos.Col)
}

// lineOf checks that the placement lies on one row or column and that the
// span it covers has no empty cells. A single tile is reported as horizontal.
func lineOf(b *model.Board, placement model.Placement, covered map[model.Position]bool) (bool, error) {
	first := placement[0].Position
	sameRow, sameCol := true, true
	minPos, maxPos := first, first
	for _, t := range placement[1:] {
		pos := t.Position
		if pos.Row != first.Row {
			sameRow = false
		}
		if pos.Col != first.Col {
			sameCol = false
		}
		if pos.Row < minPos.Row || pos.Col < minPos.Col {
			minPos = pos
		}
		if pos.Row > maxPos.Row || pos.Col > maxPos.Col {
			maxPos = pos
		}
	}
	if !sameRow && !sameCol {
		return false, model.ErrNotInLine
	}

	horizontal := sameRow
	dRow, dCol := step(horizontal)
	for pos := minPos; pos != maxPos; {
		pos = pos.Offset(dRow, dCol)
		if !covered[pos] && !b.IsPlaced(pos) {
			return false, model.ErrNotInLine
		}
	}
	return horizontal, nil
}

func touchesExisting(b *model.Board, placement model.Placement) bool {
	for _, t := range placement {
		if b.AdjacentToExistingTile(t.Position) {
			return true
		}
	}
	return false
}

// formedWords returns every run of two or more tiles through the new tiles:
// the word along the placement's line first, then the cross-words
func formedWords(b *model.Board, placement model.Placement, horizontal bool, placed map[model.Position]bool) []model.Word {
	type runKey struct {
		start      model.Position
		horizontal bool
	}
	seen := make(map[runKey]bool)
	var words []model.Word

	add := func(pos model.Position, horizontal bool) {
		w := runThrough(b, pos, horizontal, placed)
		if len(w.Tiles) < 2 {
			return
		}
		key := runKey{start: w.Start(), horizontal: horizontal}
		if seen[key] {
			return
		}
		seen[key] = true
		words = append(words, w)
	}

	if len(placement) == 1 {
		add(placement[0].Position, true)
		add(placement[0].Position, false)
		return words
	}

	add(placement[0].Position, horizontal)
	for _, t := range placement {
		add(t.Position, !horizontal)
	}
	return words
}

// runThrough returns the maximal run of tiles through pos in one direction
func runThrough(b *model.Board, pos model.Position, horizontal bool, placed map[model.Position]bool) model.Word {
	dRow, dCol := step(horizontal)

	start := pos
	for b.IsPlaced(start.Offset(-dRow, -dCol)) {
		start = start.Offset(-dRow, -dCol)
	}

	word := model.Word{Horizontal: horizontal}
	for p := start; b.IsPlaced(p); p = p.Offset(dRow, dCol) {
		cell := b.Cells[p.Row][p.Col]
		word.Tiles = append(word.Tiles, model.WordTile{
			Position: p,
			Letter:   cell.Letter,
			Blank:    cell.Blank,
			New:      placed[p],
		})
	}
	return word
}

func step(horizontal bool) (int, int) {
	if horizontal {
		return 0, 1
	}
	return 1, 0
}

// Interface for dependency injection
type ServiceInterface interface {
	Validate(b *model.Board, hand model.Hand, placement model.Placement) (*model.MoveResult, error)
}

var _ ServiceInterface = (*Service)(nil)
