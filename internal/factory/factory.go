package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/smartscrabble/internal/config"
	"github.com/mcoot/smartscrabble/internal/dependencies/clock"
	"github.com/mcoot/smartscrabble/internal/dependencies/random"
	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/board"
	"github.com/mcoot/smartscrabble/internal/services/bot"
	"github.com/mcoot/smartscrabble/internal/services/dictionary"
	"github.com/mcoot/smartscrabble/internal/services/game"
	"github.com/mcoot/smartscrabble/internal/services/scoring"
	"github.com/mcoot/smartscrabble/internal/services/tournament"
	"github.com/mcoot/smartscrabble/internal/storage"
	"github.com/mcoot/smartscrabble/internal/storage/memory"
	redisstorage "github.com/mcoot/smartscrabble/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageTypeMemory
	StorageTypeRedis  = config.StorageTypeRedis
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	Rules *model.Rules

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	BotService        *bot.Service
	GameController    *game.Controller
	TournamentService *tournament.Service
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the word list file.
	// If empty, the words last saved to storage are used.
	DictionaryPath string
	// MaxWordLength bounds the words agents consider.
	// If zero, the rack size is used; it may not exceed the rack size.
	MaxWordLength int
	// Rules are the game rules (optional).
	// If nil, model.DefaultRules() is used.
	Rules *model.Rules
	// BotOptions tune the agent presets.
	// If zero value, defaults to bot.DefaultOptions()
	BotOptions bot.Options
	// TournamentConfig bounds tournament runs.
	// If zero value, defaults to tournament.DefaultConfig()
	TournamentConfig tournament.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// ConfigFrom translates the application config into a factory config
func ConfigFrom(c *config.Config, logger *slog.Logger) (Config, error) {
	rules, err := config.LoadRules(c.RulesPath)
	if err != nil {
		return Config{}, err
	}

	blank, err := bot.ParseBlankResolution(c.BlankResolution)
	if err != nil {
		return Config{}, err
	}
	placement, err := bot.ParsePlacementPolicy(c.PlacementPolicy)
	if err != nil {
		return Config{}, err
	}
	ordering, err := bot.ParseWordOrdering(c.WordOrdering)
	if err != nil {
		return Config{}, err
	}
	opts := bot.DefaultOptions()
	opts.Blank = blank
	opts.BlankLetter = c.BlankRune()
	opts.Placement = placement
	opts.Ordering = ordering

	tcfg := tournament.DefaultConfig()
	if c.TournamentParallelism > 0 {
		tcfg.MaxParallelism = c.TournamentParallelism
	}

	cfg := Config{
		DictionaryPath:   c.DictionaryPath,
		MaxWordLength:    c.MaxWordLength,
		Rules:            rules,
		BotOptions:       opts,
		TournamentConfig: tcfg,
		Logger:           logger,
		StorageType:      c.StorageType,
	}
	if c.StorageType == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		cfg.RedisConfig = &redisCfg
	}
	return cfg, nil
}

// New creates a new application with all dependencies wired.
// The dictionary is loaded before any agent is built: a failed load is fatal.
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

	dictService := dictionary.New(store, logger)
	if cfg.DictionaryPath != "" {
		if err := dictService.LoadFromFile(ctx, cfg.DictionaryPath); err != nil {
			return nil, fmt.Errorf("load dictionary: %w", err)
		}
	} else if err := dictService.LoadFromStorage(ctx); err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	return newWithDependencies(store, clock.New(), random.New(), dictService, cfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	dictService *dictionary.Service,
	cfg Config,
	logger *slog.Logger,
) (*App, error) {
	rules := cfg.Rules
	if rules == nil {
		rules = model.DefaultRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	maxLength := cfg.MaxWordLength
	if maxLength <= 0 {
		maxLength = rules.RackSize
	}
	if maxLength > rules.RackSize {
		return nil, fmt.Errorf("max word length %d exceeds rack size %d", maxLength, rules.RackSize)
	}
	words, err := dictService.WordList(maxLength)
	if err != nil {
		return nil, err
	}

	botOptions := cfg.BotOptions
	if botOptions.BlankLetter == 0 {
		botOptions = bot.DefaultOptions()
	}
	tournamentCfg := cfg.TournamentConfig
	if tournamentCfg.MaxRounds == 0 {
		tournamentCfg = tournament.DefaultConfig()
	}

	// Create services
	boardService := board.New(rules, dictService)
	scoringService := scoring.New(rules)
	botService := bot.NewService(store, rules, words, botOptions, clk, rnd, logger)
	gameController := game.NewController(store, boardService, scoringService, clk, rnd, logger)
	tournamentService := tournament.NewService(store, gameController, botService, tournamentCfg, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Rules:             rules,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		BotService:        botService,
		GameController:    gameController,
		TournamentService: tournamentService,
	}, nil
}
