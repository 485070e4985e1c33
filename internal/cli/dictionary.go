package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/smartscrabble/internal/api/response"
)

func newDictionaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dictionary",
		Short: "Show the server's loaded word list",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Dictionary

			if err := client.Get(cmd.Context(), "/api/v1/dictionary", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
