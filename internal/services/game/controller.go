package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode"

	"github.com/mcoot/wordgrid/internal/dependencies/clock"
	"github.com/mcoot/wordgrid/internal/dependencies/random"
	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/services/board"
	"github.com/mcoot/wordgrid/internal/services/scoring"
	"github.com/mcoot/wordgrid/internal/services/validator"
	"github.com/mcoot/wordgrid/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CreateOptions configures a new game
type CreateOptions struct {
	// Layout is a named layout, see model.LayoutByName. Empty means standard.
	Layout string
	// HandCapacity defaults to model.DefaultHandCapacity when zero
	HandCapacity int
}

// Controller runs the single-board game loop around the move validator
type Controller struct {
	storage        storage.Storage
	boardService   *board.Service
	validator      *validator.Service
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	validator *validator.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		boardService:   boardService,
		validator:      validator,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		logger:         logger,
	}
}

// CreateGame starts a game with an empty board, an empty hand and a full bag
func (c *Controller) CreateGame(ctx context.Context, opts CreateOptions) (*model.Game, error) {
	layout, err := model.LayoutByName(opts.Layout)
	if err != nil {
		return nil, err
	}
	layoutName := opts.Layout
	if layoutName == "" {
		layoutName = model.LayoutStandard
	}

	capacity := opts.HandCapacity
	if capacity == 0 {
		capacity = model.DefaultHandCapacity
	}
	hand, err := model.NewHand(capacity)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	gameID := model.GameID(c.random.String(12, gameIDAlphabet))

	game := &model.Game{
		ID:        gameID,
		State:     model.GameStateActive,
		Layout:    layoutName,
		Hand:      hand,
		Bag:       model.StandardBag(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := c.boardService.CreateBoard(ctx, gameID, layout); err != nil {
		return nil, err
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.String("layout", layoutName),
		slog.Int("hand_capacity", capacity),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// GetBoard retrieves the board for a game
func (c *Controller) GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error) {
	return c.boardService.GetBoard(ctx, gameID)
}

// DrawTiles adds tiles from an external source to the hand. Letters are
// upper-cased; '?' adds a blank.
func (c *Controller) DrawTiles(ctx context.Context, gameID model.GameID, tiles []rune) (*model.Game, error) {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	drawn := make([]rune, len(tiles))
	for i, t := range tiles {
		if t != model.BlankTile {
			if err := board.ValidateLetter(t); err != nil {
				return nil, fmt.Errorf("%w: %q", err, t)
			}
		}
		drawn[i] = unicode.ToUpper(t)
	}

	hand, err := game.Hand.Add(drawn...)
	if err != nil {
		return nil, err
	}
	game.Hand = hand
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// RefillHand draws random tiles from the game's bag until the hand is full
// or the bag is empty
func (c *Controller) RefillHand(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	count := min(game.Hand.Space(), game.Bag.Len())
	if count == 0 {
		return game, nil
	}

	bag := game.Bag
	drawn := make([]rune, 0, count)
	for range count {
		var tile rune
		tile, bag = bag.Take(c.random.Intn(bag.Len()))
		drawn = append(drawn, tile)
	}

	hand, err := game.Hand.Add(drawn...)
	if err != nil {
		return nil, err
	}
	game.Hand = hand
	game.Bag = bag
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Debug("hand refilled",
		slog.String("game_id", string(gameID)),
		slog.String("drawn", string(drawn)),
		slog.Int("bag_remaining", bag.Len()),
	)
	return game, nil
}

// PreviewMove validates and scores a placement without committing it
func (c *Controller) PreviewMove(ctx context.Context, gameID model.GameID, placement model.Placement) (*model.MoveScore, error) {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	b, err := c.boardService.GetBoard(ctx, gameID)
	if err != nil {
		return nil, err
	}

	result, err := c.validator.Validate(b, game.Hand, placement)
	if err != nil {
		return nil, err
	}
	return c.scoringService.ScoreMove(b, result), nil
}

// SubmitMove validates, scores and commits a placement. A rejected move, or
// one whose writes fail, leaves the stored board and hand as they were.
func (c *Controller) SubmitMove(ctx context.Context, gameID model.GameID, placement model.Placement) (*model.MoveRecord, error) {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	b, err := c.boardService.GetBoard(ctx, gameID)
	if err != nil {
		return nil, err
	}

	result, err := c.validator.Validate(b, game.Hand, placement)
	if err != nil {
		return nil, err
	}
	// Multipliers are read before the tiles go down
	score := c.scoringService.ScoreMove(b, result)

	previous := *game
	now := c.clock.Now()
	game.Turn++
	record := model.MoveRecord{
		Turn:      game.Turn,
		Placement: result.Placement,
		Words:     score.Words,
		Bonus:     score.Bonus,
		Score:     score.Total,
		PlayedAt:  now,
	}
	game.Moves = append(game.Moves, record)
	game.Hand = result.Hand
	game.Score += score.Total
	game.UpdatedAt = now

	// Game first, then board. A failed board write restores the previous game.
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game after move",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if err := c.boardService.Commit(ctx, b, result.Placement); err != nil {
		c.logger.Error("failed to commit board, restoring game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		if restoreErr := c.storage.SaveGame(ctx, &previous); restoreErr != nil {
			return nil, errors.Join(err, restoreErr)
		}
		return nil, err
	}

	words := make([]string, len(score.Words))
	for i, w := range score.Words {
		words[i] = w.Word
	}
	c.logger.Info("move committed",
		slog.String("game_id", string(game.ID)),
		slog.Int("turn", game.Turn),
		slog.Any("words", words),
		slog.Int("score", score.Total),
		slog.Int("total_score", game.Score),
	)

	return &record, nil
}

// FinishGame ends a game. Finishing a finished game is a no-op.
func (c *Controller) FinishGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsFinished() {
		return game, nil
	}

	game.State = model.GameStateFinished
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game finished",
		slog.String("game_id", string(gameID)),
		slog.Int("turns", game.Turn),
		slog.Int("score", game.Score),
	)
	return game, nil
}

func (c *Controller) activeGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsFinished() {
		return nil, model.ErrGameFinished
	}
	return game, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, opts CreateOptions) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error)
	DrawTiles(ctx context.Context, gameID model.GameID, tiles []rune) (*model.Game, error)
	RefillHand(ctx context.Context, gameID model.GameID) (*model.Game, error)
	PreviewMove(ctx context.Context, gameID model.GameID, placement model.Placement) (*model.MoveScore, error)
	SubmitMove(ctx context.Context, gameID model.GameID, placement model.Placement) (*model.MoveRecord, error)
	FinishGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
}

var _ ControllerInterface = (*Controller)(nil)
