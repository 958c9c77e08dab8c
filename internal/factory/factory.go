package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/wordgrid/internal/dependencies/clock"
	"github.com/mcoot/wordgrid/internal/dependencies/random"
	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/services/board"
	"github.com/mcoot/wordgrid/internal/services/dictionary"
	"github.com/mcoot/wordgrid/internal/services/game"
	"github.com/mcoot/wordgrid/internal/services/scoring"
	"github.com/mcoot/wordgrid/internal/services/validator"
	"github.com/mcoot/wordgrid/internal/storage"
	"github.com/mcoot/wordgrid/internal/storage/memory"
	redisstorage "github.com/mcoot/wordgrid/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	Validator         *validator.Service
	ScoringService    *scoring.Service
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to the word list (optional)
	// If empty, a word list previously saved to storage is used when present;
	// otherwise the dictionary must be loaded manually
	DictionaryPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// ScoringConfig overrides the letter values and bonus (optional)
	// If nil, defaults to scoring.DefaultConfig()
	ScoringConfig *scoring.Config
	// Seed fixes the order tiles come out of the bag (optional)
	// If zero, draws are seeded randomly
	Seed uint64
}

// New creates a new application with all dependencies wired.
// An unreadable word list is fatal.
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	scoringCfg := scoring.DefaultConfig()
	if cfg.ScoringConfig != nil {
		scoringCfg = *cfg.ScoringConfig
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	app := newWithDependencies(store, clk, rnd, scoringCfg, logger)

	if err := app.loadDictionary(ctx, cfg.DictionaryPath); err != nil {
		_ = app.Close()
		return nil, err
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, scoringCfg scoring.Config, logger *slog.Logger) *App {
	// Create services
	dictService := dictionary.New(store, logger)
	boardService := board.New(store, logger)
	moveValidator := validator.New(dictService, logger)
	scoringService := scoring.New(scoringCfg)
	gameController := game.NewController(store, boardService, moveValidator, scoringService, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		BoardService:      boardService,
		Validator:         moveValidator,
		ScoringService:    scoringService,
		GameController:    gameController,
	}
}

func (a *App) loadDictionary(ctx context.Context, path string) error {
	if path != "" {
		return a.DictionaryService.LoadFromFile(ctx, path)
	}
	err := a.DictionaryService.LoadFromStorage(ctx)
	if errors.Is(err, model.ErrDictionaryNotLoaded) {
		return nil
	}
	return err
}

// Close releases the storage connection, if the backend holds one
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
