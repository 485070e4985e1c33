package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/smartscrabble/internal/api/request"
	"github.com/mcoot/smartscrabble/internal/api/response"
	"github.com/mcoot/smartscrabble/internal/config"
	"github.com/mcoot/smartscrabble/internal/factory"
	"github.com/mcoot/smartscrabble/internal/model"
)

func newTournamentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Round-robin tournament commands",
	}

	cmd.AddCommand(newTournamentRunCmd())
	cmd.AddCommand(newTournamentGetCmd())

	return cmd
}

func newTournamentRunCmd() *cobra.Command {
	var (
		entrants    []string
		rounds      int
		parallelism int
		local       bool
		configFile  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a tournament between strategies",
		Long: `Run a round-robin tournament. Each round plays every ordered pair of
entrants once, so each entrant moves first against every other.

With --local the tournament runs in this process using the server
configuration (config file and SMARTSCRABBLE_* environment) instead of the API.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.RunTournamentRequest{
				Entrants:    entrants,
				Rounds:      rounds,
				Parallelism: parallelism,
			}

			var result response.Tournament
			if local {
				t, err := runLocalTournament(cmd.Context(), configFile, req)
				if err != nil {
					return err
				}
				result = response.TournamentFromModel(t)
			} else if err := client.Post(cmd.Context(), "/api/v1/tournaments", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&entrants, "entrant", "e",
		[]string{model.BotStrategySmart, model.BotStrategyLongest}, "Strategies to enter (repeatable)")
	cmd.Flags().IntVarP(&rounds, "rounds", "r", 1, "Number of rounds")
	cmd.Flags().IntVarP(&parallelism, "parallelism", "p", 0, "Games to play at once (0 for the server default)")
	cmd.Flags().BoolVar(&local, "local", false, "Run in this process instead of on the server")
	cmd.Flags().StringVar(&configFile, "config", "", "Config file for --local (env: SMARTSCRABBLE_CONFIG)")

	return cmd
}

// runLocalTournament builds the application in-process and runs the tournament
func runLocalTournament(ctx context.Context, configFile string, req request.RunTournamentRequest) (*model.Tournament, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	appCfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	factoryCfg, err := factory.ConfigFrom(appCfg, logger)
	if err != nil {
		return nil, err
	}
	// Nothing outlives this process
	factoryCfg.StorageType = factory.StorageTypeMemory
	factoryCfg.RedisConfig = nil

	app, err := factory.New(ctx, factoryCfg)
	if err != nil {
		return nil, err
	}

	return app.TournamentService.Run(ctx, model.TournamentConfig{
		Entrants:    req.Entrants,
		Rounds:      req.Rounds,
		Parallelism: req.Parallelism,
	})
}

func newTournamentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a tournament's results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Tournament

			if err := client.Get(cmd.Context(), fmt.Sprintf("/api/v1/tournaments/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
