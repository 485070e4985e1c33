package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/smartscrabble/internal/api/middleware"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "API token commands",
	}

	cmd.AddCommand(newTokenHashCmd())
	cmd.AddCommand(newTokenSaveCmd())

	return cmd
}

func newTokenHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <token>",
		Short: "Print the hash to configure on the server for a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := middleware.HashToken(args[0])
			if err != nil {
				return fmt.Errorf("failed to hash token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(hash)
			return nil
		},
	}
}

func newTokenSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <token>",
		Short: "Save a token for later commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.SaveToken(args[0]); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Token saved to %s", cfg.TokenFile))
			return nil
		},
	}
}
