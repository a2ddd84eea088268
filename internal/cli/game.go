package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Tic-Tac-Toe game commands",
	}

	cmd.AddCommand(newGameResetCmd())
	cmd.AddCommand(newGameMoveCmd())
	cmd.AddCommand(newGameViewCmd())
	cmd.AddCommand(newGameRevertCmd())
	cmd.AddCommand(newGameWinnerCmd())

	return cmd
}

// parseBoard turns "X.O/.X./..O" into a board: rows separated by slashes,
// a dot or space for an empty cell
func parseBoard(s string) ([3][3]string, error) {
	var board [3][3]string

	rows := strings.Split(s, "/")
	if len(rows) != 3 {
		return board, fmt.Errorf("board %q must have 3 rows separated by '/'", s)
	}
	for i, row := range rows {
		cells := []rune(row)
		if len(cells) != 3 {
			return board, fmt.Errorf("row %q must have exactly 3 cells", row)
		}
		for j, cell := range cells {
			switch cell {
			case 'X', 'x':
				board[i][j] = "X"
			case 'O', 'o':
				board[i][j] = "O"
			case '.', ' ':
				board[i][j] = ""
			default:
				return board, fmt.Errorf("cell %q must be X, O, '.' or ' '", cell)
			}
		}
	}
	return board, nil
}

func newGameResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the game, removing all moves",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MessageResult

			if err := client.Post("/api/v1/game/reset", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameMoveCmd() *cobra.Command {
	var boardStr string
	var xNext bool

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Save a move to the game history",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := parseBoard(boardStr)
			if err != nil {
				return err
			}

			req := map[string]any{
				"board": board,
				"xNext": xNext,
			}
			var result Move

			if err := client.Post("/api/v1/game/moves", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardStr, "board", "", `Board as rows separated by '/', e.g. "X.O/.X./..O" (required)`)
	cmd.Flags().BoolVar(&xNext, "x-next", false, "Whether X moves next")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

func newGameViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <index>",
		Short: "View the move at the given position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Move

			if err := client.Get("/api/v1/game/moves/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRevertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revert <index>",
		Short: "Revert the game to the move at the given position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Move

			if err := client.Post("/api/v1/game/moves/"+args[0]+"/revert", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameWinnerCmd() *cobra.Command {
	var boardStr string

	cmd := &cobra.Command{
		Use:   "winner",
		Short: "Evaluate a board for a winner",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := parseBoard(boardStr)
			if err != nil {
				return err
			}

			req := map[string]any{"board": board}
			var result WinnerResult

			if err := client.Post("/api/v1/game/winner", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardStr, "board", "", `Board as rows separated by '/', e.g. "X.O/.X./..O" (required)`)
	_ = cmd.MarkFlagRequired("board")

	return cmd
}
