package tournament

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/smartscrabble/internal/dependencies/clock"
	"github.com/mcoot/smartscrabble/internal/dependencies/random"
	"github.com/mcoot/smartscrabble/internal/model"
	"github.com/mcoot/smartscrabble/internal/services/bot"
	"github.com/mcoot/smartscrabble/internal/services/game"
	"github.com/mcoot/smartscrabble/internal/storage"
)

const (
	// TournamentIDAlphabet is the character set for generating tournament IDs
	TournamentIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// TournamentIDLength is the length of generated tournament IDs
	TournamentIDLength = 10
)

// Config holds tournament service settings
type Config struct {
	MaxRounds      int
	MaxParallelism int
}

// DefaultConfig returns sensible defaults for tournaments
func DefaultConfig() Config {
	return Config{
		MaxRounds:      1000,
		MaxParallelism: 8,
	}
}

// Service runs round-robin tournaments between bot strategies
type Service struct {
	storage storage.Storage
	games   *game.Controller
	bots    *bot.Service
	cfg     Config
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewService creates a new tournament Service
func NewService(
	store storage.Storage,
	games *game.Controller,
	bots *bot.Service,
	cfg Config,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage: store,
		games:   games,
		bots:    bots,
		cfg:     cfg,
		clock:   clk,
		random:  rnd,
		logger:  logger.With(slog.String("component", "tournament")),
	}
}

type pairing struct {
	first, second string
}

// Run plays every ordered pair of entrants once per round and saves the tally.
// A win is worth 1 point, a tie 0.5 to each side.
func (s *Service) Run(ctx context.Context, cfg model.TournamentConfig) (*model.Tournament, error) {
	if err := s.validate(&cfg); err != nil {
		return nil, err
	}

	var pairings []pairing
	for range cfg.Rounds {
		for i, a := range cfg.Entrants {
			for j, b := range cfg.Entrants {
				if i != j {
					pairings = append(pairings, pairing{first: a, second: b})
				}
			}
		}
	}

	start := s.clock.Now()
	s.logger.Info("tournament started",
		slog.Any("entrants", cfg.Entrants),
		slog.Int("rounds", cfg.Rounds),
		slog.Int("games", len(pairings)),
	)

	results := make([]model.GameResult, len(pairings))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)
	for i, p := range pairings {
		g.Go(func() error {
			result, err := s.PlayGame(gctx, p.first, p.second)
			if err != nil {
				return fmt.Errorf("game %d (%s vs %s): %w", i, p.first, p.second, err)
			}
			results[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("tournament failed", slog.String("error", err.Error()))
		return nil, err
	}

	tournament := &model.Tournament{
		ID:        model.TournamentID(s.random.String(TournamentIDLength, TournamentIDAlphabet)),
		Config:    cfg,
		Results:   results,
		Standings: Standings(cfg.Entrants, results),
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveTournament(ctx, tournament); err != nil {
		return nil, err
	}

	s.logger.Info("tournament complete",
		slog.String("tournament_id", string(tournament.ID)),
		slog.Float64("win_rate", tournament.WinRate()),
		slog.Duration("elapsed", s.clock.Since(start)),
	)
	return tournament, nil
}

// PlayGame plays one game, first moving first, and awards tournament points
func (s *Service) PlayGame(ctx context.Context, first, second string) (*model.GameResult, error) {
	agents := make([]bot.Agent, 0, 2)
	players := make([]*model.Player, 0, 2)
	for i, strategy := range []string{first, second} {
		agent, err := s.bots.NewAgent(strategy)
		if err != nil {
			return nil, err
		}
		agents = append(agents, agent)
		players = append(players, &model.Player{
			ID:          model.PlayerID(fmt.Sprintf("%s-%d", strategy, i+1)),
			DisplayName: model.BotStrategyDisplayName(strategy),
			BotStrategy: strategy,
		})
	}

	g, err := s.games.NewGame(players)
	if err != nil {
		return nil, err
	}
	if _, err := s.games.PlayGame(ctx, g, agents); err != nil {
		return nil, err
	}

	result := &model.GameResult{
		GameID:      g.ID,
		First:       first,
		Second:      second,
		FirstScore:  g.Seats[0].Score,
		SecondScore: g.Seats[1].Score,
	}
	result.FirstPoints, result.SecondPoints = Points(result.FirstScore, result.SecondScore)
	return result, nil
}

// GetTournament retrieves a tournament by ID
func (s *Service) GetTournament(ctx context.Context, id model.TournamentID) (*model.Tournament, error) {
	return s.storage.GetTournament(ctx, id)
}

func (s *Service) validate(cfg *model.TournamentConfig) error {
	if len(cfg.Entrants) < 2 || cfg.Rounds < 1 || cfg.Rounds > s.cfg.MaxRounds {
		return model.ErrInvalidTournament
	}
	for _, e := range cfg.Entrants {
		if !model.IsValidBotStrategy(e) {
			return fmt.Errorf("%w: %s", model.ErrUnknownStrategy, e)
		}
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	if cfg.Parallelism > s.cfg.MaxParallelism {
		cfg.Parallelism = s.cfg.MaxParallelism
	}
	return nil
}

// Points converts final scores into tournament points
func Points(firstScore, secondScore int) (float64, float64) {
	switch {
	case firstScore > secondScore:
		return 1, 0
	case firstScore < secondScore:
		return 0, 1
	default:
		return 0.5, 0.5
	}
}

// Standings totals each entrant's points, in entrant order.
// A strategy entered twice shares one standing.
func Standings(entrants []string, results []model.GameResult) []model.Standing {
	index := make(map[string]int)
	var standings []model.Standing
	for _, e := range lo.Uniq(entrants) {
		index[e] = len(standings)
		standings = append(standings, model.Standing{Strategy: e})
	}

	for _, r := range results {
		first, second := &standings[index[r.First]], &standings[index[r.Second]]
		first.Points += r.FirstPoints
		first.Games++
		second.Points += r.SecondPoints
		second.Games++
	}
	return standings
}
