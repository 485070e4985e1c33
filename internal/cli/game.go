package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/smartscrabble/internal/api/request"
	"github.com/mcoot/smartscrabble/internal/api/response"
	"github.com/mcoot/smartscrabble/internal/model"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Bot game commands",
	}

	cmd.AddCommand(newGamePlayCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameTurnCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGamePlayCmd() *cobra.Command {
	var (
		first  string
		second string
		step   bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a game between two strategies",
		Long: `Start a game between two bot strategies.

By default the server plays the game to the end. With --step the game is only
dealt, and each turn is played with 'game turn <id>'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			playToEnd := !step
			req := request.CreateGameRequest{
				First:     first,
				Second:    second,
				PlayToEnd: &playToEnd,
			}

			var result response.Game
			if err := client.Post(cmd.Context(), "/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", model.BotStrategySmart, "Strategy moving first")
	cmd.Flags().StringVar(&second, "second", model.BotStrategyLongest, "Strategy moving second")
	cmd.Flags().BoolVar(&step, "step", false, "Deal the game without playing it")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a game's state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game

			if err := client.Get(cmd.Context(), fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameTurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "turn <id>",
		Short: "Play the next turn of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.TurnResult

			if err := client.Post(cmd.Context(), fmt.Sprintf("/api/v1/games/%s/turn", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game and its bot players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), fmt.Sprintf("/api/v1/games/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}
