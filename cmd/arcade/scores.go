package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Print a game's high scores",
	Long: `Prints the best runs of a game with its stored best score and totals.
--clear forgets the game's runs and best score instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().Bool("clear", false, "delete every score of the game")
	scoresCmd.Flags().Int("limit", 10, "how many runs to print")
}

func runScores(cmd *cobra.Command, args []string) error {
	id := args[0]
	game, err := registry.Create(id, registry.Env{})
	switch {
	case errors.Is(err, registry.ErrUnknownGame):
		return fmt.Errorf("no game called %q; see 'arcade list'", id)
	case err != nil:
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if clearAll, _ := cmd.Flags().GetBool("clear"); clearAll {
		if err := store.ClearScores(id); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "Scores for %s cleared.\n", game.Title())
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.TopScores(id, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		_, err := fmt.Fprintf(out, "No %s scores yet. Try 'arcade play %s'.\n", game.Title(), id)
		return err
	}

	best, err := store.GetBestScore(id)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "SCORE", "DATE")
	for i, r := range runs {
		t.Row(strconv.Itoa(i+1), strconv.Itoa(r.Score), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintf(out, "%s high scores\n%s\nBest: %d\n", game.Title(), t, best)
	if stats, err := store.GetAllGamesStats(); err == nil {
		if s := stats[id]; s != nil {
			fmt.Fprintf(out, "Runs: %d  Average: %.0f\n", s.GamesCount, s.AvgScore)
		}
	}
	return nil
}
