package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and level statistics",
	Long: `Display the top 10 high scores for a game mode (default: platformer),
followed by per-level run statistics.

Examples:
  platformer scores
  platformer scores practice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "platformer"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		exitErr(err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
		if best, err := store.HighScore(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", best)
		}
	}

	stats, err := store.AllLevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving level statistics: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Levels")
	fmt.Println()
	if len(stats) == 0 {
		fmt.Println("No levels played yet.")
		return
	}

	fmt.Printf("  %-5s  %-5s  %-6s  %-6s  %-10s  %s\n", "Level", "Runs", "Clears", "Deaths", "Best coins", "Best time")
	fmt.Printf("  %-5s  %-5s  %-6s  %-6s  %-10s  %s\n", "-----", "----", "------", "------", "----------", "---------")
	for _, st := range stats {
		best := "-"
		if st.FewestTicks > 0 {
			best = fmt.Sprintf("%d ticks", st.FewestTicks)
		}
		fmt.Printf("  %-5d  %-5d  %-6d  %-6d  %-10d  %s\n", st.LevelID, st.Runs, st.Clears, st.Deaths, st.BestCoins, best)
	}
}
