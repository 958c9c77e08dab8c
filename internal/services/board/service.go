package board

import (
	"context"
	"log/slog"
	"unicode"

	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/storage"
)

// Service provides board operations
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new BoardService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// CreateBoard initializes an empty board for a game
func (s *Service) CreateBoard(ctx context.Context, gameID model.GameID, layout model.Layout) (*model.Board, error) {
	board := model.NewBoardFromLayout(gameID, layout)
	if err := s.storage.SaveBoard(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// GetBoard retrieves a game's board
func (s *Service) GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error) {
	return s.storage.GetBoard(ctx, gameID)
}

// Commit writes an approved placement to the board and saves it.
// The placement must already have passed validation; nothing is written
// unless every tile fits.
func (s *Service) Commit(ctx context.Context, board *model.Board, placement model.Placement) error {
	updated := board.Clone()
	for _, t := range placement {
		var err error
		if t.Blank {
			err = updated.PlaceBlank(t.Position, t.Letter)
		} else {
			err = updated.Place(t.Position, t.Letter)
		}
		if err != nil {
			return err
		}
	}

	if err := s.storage.SaveBoard(ctx, updated); err != nil {
		return err
	}
	board.Cells = updated.Cells

	s.logger.Debug("placement committed",
		slog.String("game_id", string(board.GameID)),
		slog.Int("tiles", len(placement)),
		slog.Int("tile_count", board.TileCount()),
	)
	return nil
}

// ValidateLetter checks if a letter is a valid A-Z character
func ValidateLetter(letter rune) error {
	upper := unicode.ToUpper(letter)
	if upper < 'A' || upper > 'Z' {
		return model.ErrInvalidLetter
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(ctx context.Context, gameID model.GameID, layout model.Layout) (*model.Board, error)
	GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error)
	Commit(ctx context.Context, board *model.Board, placement model.Placement) error
}

var _ ServiceInterface = (*Service)(nil)
