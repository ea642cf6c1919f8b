package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/willfaustino/funtomatch/internal/games/match3"
	"github.com/willfaustino/funtomatch/internal/platform/tui"
	"github.com/willfaustino/funtomatch/internal/registry"
	"github.com/willfaustino/funtomatch/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresRuns  bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and simulation runs",
	Long: `Display the top scores for a game (match3 by default), or the most
recent saved simulation runs with --runs.

Examples:
  funtomatch scores
  funtomatch scores --limit 25
  funtomatch scores --runs
  funtomatch scores --tui
  funtomatch scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresRuns, "runs", false, "List saved simulation runs instead of scores")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the game")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := match3.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'funtomatch list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagScoresTUI:
		cfg := runtimeConfig()
		_, err = tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	case flagScoresClear:
		if err = store.ClearScores(gameID); err == nil {
			fmt.Printf("Scores for %s cleared.\n", game.Title())
		}
	case flagScoresRuns:
		err = printRuns(store)
	default:
		err = printScores(store, gameID, game.Title())
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'funtomatch play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Average: %.1f   Last played: %s\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}

func printRuns(store *storage.Store) error {
	runs, err := store.RecentRuns(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Simulation Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No simulation runs saved yet.")
		fmt.Println()
		fmt.Println("Run 'funtomatch simulate --save' to record one.")
		return nil
	}

	fmt.Printf("  %-36s  %-20s  %-8s  %-6s  %-7s  %-7s  %s\n",
		"ID", "Seed", "Board", "Moves", "Score", "Combos", "Date")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-20d  %-8s  %-6d  %-7d  %-7d  %s\n",
			r.ID, r.Seed,
			fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.NumColors),
			r.Moves, r.Score, r.Cascades,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}
