package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arkadyvolkov/tui-ascend/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the top runs, best score first.

Examples:
  ascend scores
  ascend scores --limit 25`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ascend play' to leave the first trace!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-10s  %-8s  %s\n", "Rank", "Reached", "Score", "Streak", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-8s  %s\n", "----", "-------", "-----", "------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %-10d  %-8d  %s\n", i+1, r.Dimension.Title(), r.Score, r.BestStreak, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
