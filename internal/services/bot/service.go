package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/smartscrabble/internal/dependencies/clock"
	"github.com/mcoot/smartscrabble/internal/dependencies/random"
	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/dictionary"
	"github.com/mcoot/smartscrabble/internal/storage"
)

const (
	// PlayerIDAlphabet is the character set for generating bot player IDs
	PlayerIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// PlayerIDLength is the length of generated bot player IDs
	PlayerIDLength = 16
)

// Options tune the selector presets.
// Placement and Ordering only apply to the custom strategy.
type Options struct {
	Blank          BlankResolution
	BlankLetter    rune
	Placement      PlacementPolicy
	Ordering       WordOrdering
	RandomAttempts int
}

// DefaultOptions returns the reference agent's settings
func DefaultOptions() Options {
	return Options{
		Blank:          BlankFixed,
		BlankLetter:    DefaultBlankLetter,
		Placement:      BestScoring,
		Ordering:       ScoreWithinLongestTier,
		RandomAttempts: DefaultRandomAttempts,
	}
}

// Service builds agents by strategy name and manages bot players
type Service struct {
	storage storage.Storage
	rules   *model.Rules
	words   *dictionary.WordList
	options Options
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	store storage.Storage,
	rules *model.Rules,
	words *dictionary.WordList,
	options Options,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage: store,
		rules:   rules,
		words:   words,
		options: options,
		clock:   clk,
		random:  rnd,
		logger:  logger.With(slog.String("component", "bot-service")),
	}
}

// Words returns the candidate word list agents draw from
func (s *Service) Words() *dictionary.WordList {
	return s.words
}

// SelectorConfig returns the selector configuration behind a strategy name
func (s *Service) SelectorConfig(strategy string) (Config, error) {
	cfg := Config{
		Rules:       s.rules,
		Words:       s.words,
		Blank:       s.options.Blank,
		BlankLetter: s.options.BlankLetter,
		Logger:      s.logger,
	}

	switch strategy {
	case model.BotStrategySmart:
		cfg.Ordering = ScoreWithinLongestTier
		cfg.Placement = BestScoring
	case model.BotStrategyLongest:
		cfg.Ordering = LongestFirst
		cfg.Placement = FirstLegal
	case model.BotStrategyCustom:
		cfg.Ordering = s.options.Ordering
		cfg.Placement = s.options.Placement
	default:
		return Config{}, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, strategy)
	}
	return cfg, nil
}

// NewAgent creates a fresh agent for one game.
// Agents hold a bound oracle, so each seat needs its own.
func (s *Service) NewAgent(strategy string) (Agent, error) {
	if strategy == model.BotStrategyRandom {
		return NewRandomAgent(s.rules, s.words, s.random, s.options.RandomAttempts), nil
	}

	cfg, err := s.SelectorConfig(strategy)
	if err != nil {
		return nil, err
	}
	return NewSelector(cfg)
}

// CreateBotPlayer creates a new bot player and saves it to storage
func (s *Service) CreateBotPlayer(ctx context.Context, displayName string, strategy string) (*model.Player, error) {
	if !model.IsValidBotStrategy(strategy) {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, strategy)
	}
	if displayName == "" {
		displayName = model.BotStrategyDisplayName(strategy)
	}

	player := &model.Player{
		ID:          model.PlayerID("bot-" + s.random.String(PlayerIDLength, PlayerIDAlphabet)),
		DisplayName: displayName,
		BotStrategy: strategy,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("bot player created",
		slog.String("player_id", string(player.ID)),
		slog.String("strategy", strategy),
	)
	return player, nil
}
