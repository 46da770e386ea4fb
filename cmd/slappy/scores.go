package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slappy-bird/internal/registry"
	"github.com/vovakirdan/slappy-bird/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 sessions and the stored high score for a game
(default: slappy).

Examples:
  slappy scores
  slappy scores flappy
  slappy scores flappy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the session history for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'slappy list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared session history for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", game.Title())
	fmt.Fprintln(out)

	best := storage.NewHighScoreStore(store, game.HighScoreKey(), newLogger()).Load()

	if len(scores) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		if best > 0 {
			fmt.Fprintf(out, "High score: %d\n", best)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'slappy play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "High score: %d\n", best)

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(out, "Sessions: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}
