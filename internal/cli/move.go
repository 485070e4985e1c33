package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/smartscrabble/internal/api/request"
	"github.com/mcoot/smartscrabble/internal/api/response"
	"github.com/mcoot/smartscrabble/internal/model"
)

func newMoveCmd() *cobra.Command {
	var (
		strategy  string
		boardFile string
	)

	cmd := &cobra.Command{
		Use:   "move <rack>",
		Short: "Choose a move for a rack",
		Long: `Ask the server which move a strategy would make with the given rack.

Blanks in the rack are written as '_'. Without --board the board is empty.
A board file holds one row per line, with '.' for empty squares and lower
case letters for blanks already played.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.MoveRequest{
				Strategy: strategy,
				Rack:     strings.ToUpper(args[0]),
			}

			if boardFile != "" {
				rows, err := readBoardFile(boardFile)
				if err != nil {
					return err
				}
				req.Board = rows
			}

			var result response.Move
			if err := client.Post(cmd.Context(), "/api/v1/moves", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", model.BotStrategySmart, "Strategy: smart, longest, random, custom")
	cmd.Flags().StringVarP(&boardFile, "board", "b", "", "File holding the board rows")

	return cmd
}

// readBoardFile reads board rows, skipping blank lines
func readBoardFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open board file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}
	return rows, nil
}
