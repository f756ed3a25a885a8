package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagAll    bool
	flagPoints bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best runs for a variant",
	Long: `Display the best runs for the given variant (default: invaders).
Runs are ranked by score, then by time.

Examples:
  invaders scores
  invaders scores invaders_classic
  invaders scores --recent --limit 20
  invaders scores --points
  invaders scores --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show score statistics for every variant")
	scoresCmd.Flags().BoolVar(&flagPoints, "points", false, "Show the top point totals only")
}

func runScores(_ *cobra.Command, args []string) error {
	if flagAll {
		return runAllStats()
	}

	gameID := variantArg(args)

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'invaders list' to see available variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagPoints {
		return printTopScores(store, gameID, title)
	}

	var runs []storage.Run
	if flagRecent {
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("cannot retrieve runs: %w", err)
	}

	heading := "Best Runs"
	if flagRecent {
		heading = "Recent Runs"
	}
	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'invaders play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "Rank", "Score", "Time", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "----", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8s  %-8s  %s\n",
			i+1, r.Score, r.Seconds()+"s", r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  Scored games: %d\n", stats.HighScore, stats.GamesCount)
	}
	return nil
}

// printTopScores lists the highest point totals, ignoring time and outcome.
func printTopScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("Top Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// runAllStats prints aggregated score statistics for every variant.
func runAllStats() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("cannot retrieve stats: %w", err)
	}

	fmt.Printf("  %-18s  %-6s  %-8s  %s\n", "Variant", "Games", "Best", "Average")
	fmt.Printf("  %-18s  %-6s  %-8s  %s\n", "-------", "-----", "----", "-------")
	for _, g := range registry.List() {
		st, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-18s  %-6d  %-8s  %s\n", g.ID, 0, "-", "-")
			continue
		}
		fmt.Printf("  %-18s  %-6d  %-8d  %.1f\n", g.ID, st.GamesCount, st.HighScore, st.AvgScore)
	}
	return nil
}
