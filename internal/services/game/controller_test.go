package game

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordgrid/internal/dependencies/mocks"
	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/services/board"
	"github.com/mcoot/wordgrid/internal/services/dictionary"
	"github.com/mcoot/wordgrid/internal/services/scoring"
	"github.com/mcoot/wordgrid/internal/services/validator"
	"github.com/mcoot/wordgrid/internal/storage"
	"github.com/mcoot/wordgrid/internal/storage/memory"
	"github.com/mcoot/wordgrid/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage      *memory.Storage
	boardService *board.Service
	dictService  *dictionary.Service
	clock        *mocks.MockClock
	random       *mocks.MockRandom
	logs         *testutil.LogRecorder
	controller   *Controller
	ctx          context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	logger, logs := testutil.CaptureLogger()
	s.logs = logs
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.ctx = context.Background()
	s.controller = s.newController(s.storage, logger)
}

// newController wires a controller over the given storage with the suite's
// clock, random source and word list
func (s *ControllerSuite) newController(store storage.Storage, logger *slog.Logger) *Controller {
	s.boardService = board.New(store, logger)
	s.dictService = dictionary.New(store, logger)
	s.Require().NoError(s.dictService.LoadWords([]string{"cat", "cats", "at", "to", "go", "dog", "retains"}))

	return NewController(
		store,
		s.boardService,
		validator.New(s.dictService, logger),
		scoring.New(scoring.DefaultConfig()),
		s.clock,
		s.random,
		logger,
	)
}

// flakyStorage fails selected writes after the game has been set up
type flakyStorage struct {
	*memory.Storage
	failSaveGame  bool
	failSaveBoard bool
}

func (f *flakyStorage) SaveGame(ctx context.Context, game *model.Game) error {
	if f.failSaveGame {
		return errors.New("save game failed")
	}
	return f.Storage.SaveGame(ctx, game)
}

func (f *flakyStorage) SaveBoard(ctx context.Context, b *model.Board) error {
	if f.failSaveBoard {
		return errors.New("save board failed")
	}
	return f.Storage.SaveBoard(ctx, b)
}

func (s *ControllerSuite) createGame(tiles string) *model.Game {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, CreateOptions{})
	s.Require().NoError(err)
	if tiles != "" {
		game, err = s.controller.DrawTiles(s.ctx, game.ID, []rune(tiles))
		s.Require().NoError(err)
	}
	return game
}

func catAcrossCenter() model.Placement {
	return testutil.Tiles(model.Position{Row: 5, Col: 4}, true, "CAT")
}

// CreateGame tests

func (s *ControllerSuite) TestCreateGameSucceeds() {
	s.random.QueueString("GAME12345678")

	game, err := s.controller.CreateGame(s.ctx, CreateOptions{})
	s.Require().NoError(err)

	s.Equal(model.GameID("GAME12345678"), game.ID)
	s.Equal(model.GameStateActive, game.State)
	s.Equal(model.LayoutStandard, game.Layout)
	s.Equal(model.DefaultHandCapacity, game.Hand.Capacity)
	s.Equal(0, game.Hand.Len())
	s.Equal(0, game.Score)
	s.Equal(0, game.Turn)
	s.Equal(100, game.Bag.Len())
	s.Equal(s.clock.Now(), game.CreatedAt)
}

func (s *ControllerSuite) TestCreateGameCreatesBoard() {
	game := s.createGame("")

	b, err := s.controller.GetBoard(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(11, b.Width)
	s.Equal(11, b.Height)
	s.False(b.HasTiles())

	cell, err := b.CellAt(b.Center())
	s.Require().NoError(err)
	s.Equal(model.DoubleWord, cell.Multiplier)
}

func (s *ControllerSuite) TestCreateGameWithOptions() {
	s.random.QueueString("GAME12345678")

	game, err := s.controller.CreateGame(s.ctx, CreateOptions{Layout: model.LayoutPlain, HandCapacity: 5})
	s.Require().NoError(err)
	s.Equal(model.LayoutPlain, game.Layout)
	s.Equal(5, game.Hand.Capacity)

	b, err := s.controller.GetBoard(s.ctx, game.ID)
	s.Require().NoError(err)
	cell, err := b.CellAt(b.Center())
	s.Require().NoError(err)
	s.False(cell.HasBonus())
}

func (s *ControllerSuite) TestCreateGameUnknownLayout() {
	_, err := s.controller.CreateGame(s.ctx, CreateOptions{Layout: "hexagonal"})
	s.Error(err)
}

func (s *ControllerSuite) TestCreateGameIsPersisted() {
	game := s.createGame("")

	retrieved, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
}

func (s *ControllerSuite) TestGetGameNotFound() {
	_, err := s.controller.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// RefillHand tests

func (s *ControllerSuite) TestRefillHandDrawsFromBag() {
	game := s.createGame("")
	// C from the full bag, then A from the front, then the last blank
	s.random.QueueIntn(11, 0, 97)

	game, err := s.controller.RefillHand(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal("CA?AAAA", game.Hand.String())
	s.Equal(93, game.Bag.Len())

	retrieved, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.Bag, retrieved.Bag)
	s.Equal(game.Hand, retrieved.Hand)
}

func (s *ControllerSuite) TestRefillHandTopsUp() {
	game := s.createGame("CAT")

	game, err := s.controller.RefillHand(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.DefaultHandCapacity, game.Hand.Len())
	s.Equal(96, game.Bag.Len())

	// A full hand draws nothing
	game, err = s.controller.RefillHand(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(96, game.Bag.Len())
}

func (s *ControllerSuite) TestRefillHandStopsWhenBagRunsOut() {
	game := s.createGame("")
	game.Bag = model.Bag("DO")
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	game, err := s.controller.RefillHand(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("DO", game.Hand.String())
	s.Equal(0, game.Bag.Len())

	game, err = s.controller.RefillHand(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("DO", game.Hand.String())
}

func (s *ControllerSuite) TestRefillHandAfterMove() {
	game := s.createGame("CATSDOG")
	_, err := s.controller.SubmitMove(s.ctx, game.ID, catAcrossCenter())
	s.Require().NoError(err)

	game, err = s.controller.RefillHand(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("SDOGAAA", game.Hand.String())
}

// DrawTiles tests

func (s *ControllerSuite) TestDrawTilesNormalizes() {
	game := s.createGame("")

	game, err := s.controller.DrawTiles(s.ctx, game.ID, []rune("cat?"))
	s.Require().NoError(err)
	s.Equal("CAT?", game.Hand.String())

	retrieved, _ := s.controller.GetGame(s.ctx, game.ID)
	s.Equal("CAT?", retrieved.Hand.String())
}

func (s *ControllerSuite) TestDrawTilesInvalidLetter() {
	game := s.createGame("")

	_, err := s.controller.DrawTiles(s.ctx, game.ID, []rune("A1"))
	s.ErrorIs(err, model.ErrInvalidLetter)
}

func (s *ControllerSuite) TestDrawTilesBeyondCapacity() {
	game := s.createGame("ABCDE")

	_, err := s.controller.DrawTiles(s.ctx, game.ID, []rune("FGH"))
	s.ErrorIs(err, model.ErrHandFull)

	retrieved, _ := s.controller.GetGame(s.ctx, game.ID)
	s.Equal("ABCDE", retrieved.Hand.String())
}

// PreviewMove tests

func (s *ControllerSuite) TestPreviewMoveDoesNotCommit() {
	game := s.createGame("CATS")

	score, err := s.controller.PreviewMove(s.ctx, game.ID, catAcrossCenter())
	s.Require().NoError(err)
	s.Equal(10, score.Total)

	b, _ := s.controller.GetBoard(s.ctx, game.ID)
	s.False(b.HasTiles())
	retrieved, _ := s.controller.GetGame(s.ctx, game.ID)
	s.Equal("CATS", retrieved.Hand.String())
	s.Equal(0, retrieved.Score)
}

func (s *ControllerSuite) TestPreviewMoveRejected() {
	game := s.createGame("CATS")

	_, err := s.controller.PreviewMove(s.ctx, game.ID, testutil.Tiles(model.Position{Row: 0, Col: 0}, true, "CAT"))
	s.ErrorIs(err, model.ErrMustCoverCenter)
}

// SubmitMove tests

func (s *ControllerSuite) TestSubmitMoveCommits() {
	game := s.createGame("CATSDOG")

	record, err := s.controller.SubmitMove(s.ctx, game.ID, catAcrossCenter())
	s.Require().NoError(err)

	s.Equal(1, record.Turn)
	s.Equal(10, record.Score)
	s.Require().Len(record.Words, 1)
	s.Equal("CAT", record.Words[0].Word)
	s.Equal(s.clock.Now(), record.PlayedAt)

	b, _ := s.controller.GetBoard(s.ctx, game.ID)
	s.Equal('A', b.Get(model.Position{Row: 5, Col: 5}))
	s.Equal(3, b.TileCount())

	retrieved, _ := s.controller.GetGame(s.ctx, game.ID)
	s.Equal("SDOG", retrieved.Hand.String())
	s.Equal(10, retrieved.Score)
	s.Equal(1, retrieved.Turn)
	s.Len(retrieved.Moves, 1)
}

func (s *ControllerSuite) TestSubmitMoveSecondMoveDoesNotReuseBonus() {
	game := s.createGame("CATS")
	_, err := s.controller.SubmitMove(s.ctx, game.ID, catAcrossCenter())
	s.Require().NoError(err)

	record, err := s.controller.SubmitMove(s.ctx, game.ID, model.Placement{
		{Position: model.Position{Row: 5, Col: 7}, Letter: 'S'},
	})
	s.Require().NoError(err)
	s.Equal(2, record.Turn)
	s.Equal(6, record.Score)

	retrieved, _ := s.controller.GetGame(s.ctx, game.ID)
	s.Equal(16, retrieved.Score)
	s.Equal(0, retrieved.Hand.Len())
	s.Len(retrieved.Moves, 2)
}

func (s *ControllerSuite) TestSubmitMoveRejectedLeavesStateUntouched() {
	game := s.createGame("CATS")

	_, err := s.controller.SubmitMove(s.ctx, game.ID, testutil.Tiles(model.Position{Row: 5, Col: 4}, true, "TAC"))
	s.ErrorIs(err, model.ErrInvalidWord)

	var invalid *model.InvalidWordError
	s.Require().ErrorAs(err, &invalid)
	s.Equal("TAC", invalid.Word)

	b, _ := s.controller.GetBoard(s.ctx, game.ID)
	s.False(b.HasTiles())
	retrieved, _ := s.controller.GetGame(s.ctx, game.ID)
	s.Equal("CATS", retrieved.Hand.String())
	s.Equal(0, retrieved.Turn)
}

func (s *ControllerSuite) TestSubmitMoveFullHandBonus() {
	game := s.createGame("RETAINS")

	record, err := s.controller.SubmitMove(s.ctx, game.ID, testutil.Tiles(model.Position{Row: 5, Col: 2}, true, "RETAINS"))
	s.Require().NoError(err)

	// Seven plain letters doubled by the center, plus the bonus
	s.Equal(7*2+50, record.Score)
}

func (s *ControllerSuite) TestSubmitMoveBonusUsesGameHandCapacity() {
	s.random.QueueString("SMALL0000001", "LARGE0000001")

	small, err := s.controller.CreateGame(s.ctx, CreateOptions{HandCapacity: 4})
	s.Require().NoError(err)
	_, err = s.controller.DrawTiles(s.ctx, small.ID, []rune("CATS"))
	s.Require().NoError(err)
	record, err := s.controller.SubmitMove(s.ctx, small.ID, testutil.Tiles(model.Position{Row: 5, Col: 4}, true, "CATS"))
	s.Require().NoError(err)
	s.Equal(50, record.Bonus)
	s.Equal((3+1+1+1)*2+50, record.Score)

	large, err := s.controller.CreateGame(s.ctx, CreateOptions{HandCapacity: 9})
	s.Require().NoError(err)
	_, err = s.controller.DrawTiles(s.ctx, large.ID, []rune("RETAINSXX"))
	s.Require().NoError(err)
	record, err = s.controller.SubmitMove(s.ctx, large.ID, testutil.Tiles(model.Position{Row: 5, Col: 2}, true, "RETAINS"))
	s.Require().NoError(err)
	s.Equal(0, record.Bonus)
	s.Equal(7*2, record.Score)
}

func (s *ControllerSuite) TestSubmitMoveWithBlank() {
	game := s.createGame("C?T")

	record, err := s.controller.SubmitMove(s.ctx, game.ID, model.Placement{
		{Position: model.Position{Row: 5, Col: 4}, Letter: 'C'},
		{Position: model.Position{Row: 5, Col: 5}, Letter: 'A', Blank: true},
		{Position: model.Position{Row: 5, Col: 6}, Letter: 'T'},
	})
	s.Require().NoError(err)
	s.Equal((3+0+1)*2, record.Score)

	b, _ := s.controller.GetBoard(s.ctx, game.ID)
	cell, err := b.CellAt(model.Position{Row: 5, Col: 5})
	s.Require().NoError(err)
	s.True(cell.Blank)
}

func (s *ControllerSuite) TestSubmitMoveGameSaveFailureLeavesBoardEmpty() {
	store := &flakyStorage{Storage: memory.New()}
	s.controller = s.newController(store, testutil.NopLogger())
	game := s.createGame("CAT")

	store.failSaveGame = true
	_, err := s.controller.SubmitMove(s.ctx, game.ID, catAcrossCenter())
	s.Require().Error(err)
	store.failSaveGame = false

	b, err := s.controller.GetBoard(s.ctx, game.ID)
	s.Require().NoError(err)
	s.False(b.HasTiles())

	retrieved, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("CAT", retrieved.Hand.String())
	s.Equal(0, retrieved.Score)

	// The same tiles can still be played once storage recovers
	record, err := s.controller.SubmitMove(s.ctx, game.ID, catAcrossCenter())
	s.Require().NoError(err)
	s.Equal(10, record.Score)
}

func (s *ControllerSuite) TestSubmitMoveBoardSaveFailureRestoresGame() {
	store := &flakyStorage{Storage: memory.New()}
	s.controller = s.newController(store, testutil.NopLogger())
	game := s.createGame("CATS")

	store.failSaveBoard = true
	_, err := s.controller.SubmitMove(s.ctx, game.ID, catAcrossCenter())
	s.Require().Error(err)
	store.failSaveBoard = false

	b, err := s.controller.GetBoard(s.ctx, game.ID)
	s.Require().NoError(err)
	s.False(b.HasTiles())

	retrieved, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("CATS", retrieved.Hand.String())
	s.Equal(0, retrieved.Score)
	s.Equal(0, retrieved.Turn)
	s.Empty(retrieved.Moves)
}

// FinishGame tests

func (s *ControllerSuite) TestFinishGameStopsPlay() {
	game := s.createGame("CATS")

	finished, err := s.controller.FinishGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(finished.IsFinished())

	_, err = s.controller.SubmitMove(s.ctx, game.ID, catAcrossCenter())
	s.ErrorIs(err, model.ErrGameFinished)

	_, err = s.controller.DrawTiles(s.ctx, game.ID, []rune("A"))
	s.ErrorIs(err, model.ErrGameFinished)

	_, err = s.controller.PreviewMove(s.ctx, game.ID, catAcrossCenter())
	s.ErrorIs(err, model.ErrGameFinished)
}

func (s *ControllerSuite) TestRefillHandAfterFinish() {
	game := s.createGame("")
	_, err := s.controller.FinishGame(s.ctx, game.ID)
	s.Require().NoError(err)

	_, err = s.controller.RefillHand(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameFinished)
}

func (s *ControllerSuite) TestMoveIsLogged() {
	game := s.createGame("CATSDOG")
	_, err := s.controller.SubmitMove(s.ctx, game.ID, catAcrossCenter())
	s.Require().NoError(err)

	entry := s.logs.Find("move committed")
	s.Require().NotNil(entry)
	s.Equal(string(game.ID), entry["game_id"])
	s.Equal([]any{"CAT"}, entry["words"])
	s.InDelta(10, entry["score"], 0)
}

func (s *ControllerSuite) TestRejectedMoveIsNotLoggedAsCommitted() {
	game := s.createGame("CATSDOG")
	_, err := s.controller.SubmitMove(s.ctx, game.ID, testutil.Tiles(model.Position{Row: 5, Col: 4}, true, "TAC"))
	s.Require().Error(err)

	s.Nil(s.logs.Find("move committed"))
	s.NotNil(s.logs.Find("move rejected"))
}

func (s *ControllerSuite) TestFinishGameIsIdempotent() {
	game := s.createGame("")

	_, err := s.controller.FinishGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)

	finished, err := s.controller.FinishGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(finished.IsFinished())
	s.Equal(game.CreatedAt, finished.UpdatedAt)
}
