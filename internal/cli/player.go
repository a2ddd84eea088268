package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// playerFlags holds the flags describing one ledger row
type playerFlags struct {
	first string
	last  string
	nick  string
	wins  int
	loss  int
	draws int
}

func (f *playerFlags) register(cmd *cobra.Command, prefix string) {
	cmd.Flags().StringVar(&f.first, prefix+"first", "", "First name (required)")
	cmd.Flags().StringVar(&f.last, prefix+"last", "", "Last name (required)")
	cmd.Flags().StringVar(&f.nick, prefix+"nick", "", "Nickname")
	cmd.Flags().IntVar(&f.wins, prefix+"wins", 0, "Win count")
	cmd.Flags().IntVar(&f.loss, prefix+"losses", 0, "Loss count")
	cmd.Flags().IntVar(&f.draws, prefix+"draws", 0, "Draw count")
	_ = cmd.MarkFlagRequired(prefix + "first")
	_ = cmd.MarkFlagRequired(prefix + "last")
}

func (f *playerFlags) body() map[string]any {
	return map[string]any{
		"firstName": f.first,
		"lastName":  f.last,
		"nickName":  f.nick,
		"numWin":    f.wins,
		"numLoss":   f.loss,
		"numDraw":   f.draws,
	}
}

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player ledger commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerReplaceCmd())
	cmd.AddCommand(newPlayerRecordCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var flags playerFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Post("/api/v1/players", flags.body(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd, "")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var page, size int
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerPage

			path := fmt.Sprintf("/api/v1/players?page=%d&size=%d&sortBy=%s", page, size, sortBy)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number (0-based)")
	cmd.Flags().IntVar(&size, "size", 10, "Page size")
	cmd.Flags().StringVar(&sortBy, "sort-by", "id", "Sort field: id, firstName, lastName, nickName, numWin, numLoss, numDraw, score")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	var flags playerFlags

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a player",
		Long: `Delete marks a player's record as deleted. The full record must be
supplied and match the stored one exactly, so a stale delete cannot
destroy newer statistics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MessageResult

			if err := client.Post("/api/v1/players/delete", flags.body(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd, "")

	return cmd
}

func newPlayerReplaceCmd() *cobra.Command {
	var oldFlags, newFlags playerFlags

	cmd := &cobra.Command{
		Use:   "replace",
		Short: "Replace a player's record with a new one",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"old": oldFlags.body(),
				"new": newFlags.body(),
			}
			var result Player

			if err := client.Post("/api/v1/players/replace", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	oldFlags.register(cmd, "old-")
	newFlags.register(cmd, "new-")

	return cmd
}

func newPlayerRecordCmd() *cobra.Command {
	var first, last, nick, outcome string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a game outcome for a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"firstName": first,
				"lastName":  last,
				"nickName":  nick,
			}
			switch outcome {
			case "win":
				body["numWin"] = 1
			case "loss":
				body["numLoss"] = 1
			case "draw":
				body["numDraw"] = 1
			default:
				return fmt.Errorf("--outcome must be win, loss or draw, got %q", outcome)
			}

			var result Player
			if err := client.Post("/api/v1/players/record", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", "", "First name (required)")
	cmd.Flags().StringVar(&last, "last", "", "Last name (required)")
	cmd.Flags().StringVar(&nick, "nick", "", "Nickname")
	cmd.Flags().StringVar(&outcome, "outcome", "", "Outcome: win, loss, draw (required)")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")
	_ = cmd.MarkFlagRequired("outcome")

	return cmd
}
