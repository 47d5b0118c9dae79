package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var errNoSession = errors.New("no session token; run 'wordgrid session new' first")

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Cobra runs only the nearest PersistentPreRunE
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			if cfg.Token == "" {
				return errNoSession
			}
			return nil
		},
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameCheckCmd())
	cmd.AddCommand(newGameScoreCmd())
	cmd.AddCommand(newGamePostScoreCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Deal a new board",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result BoardResult
			if err := client.Post("/api/v1/game", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current board",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result BoardResult
			if err := client.Get("/api/v1/game", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>",
		Short: "Check a word against the current board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"word": args[0]}
			var result CheckResult
			if err := client.Post("/api/v1/game/check-word", req, &result); err != nil {
				return err
			}
			result.Word = args[0]

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <word>...",
		Short: "Total the score for a list of words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string][]string{"words": args}
			var result ScoreResult
			if err := client.Post("/api/v1/game/score", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGamePostScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post-score <score>",
		Short: "Record a finished round's score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid score: %w", err)
			}

			req := map[string]int{"score": score}
			var result Stats
			if err := client.Post("/api/v1/game/post-score", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
