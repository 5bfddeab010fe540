package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wildfire/internal/registry"
	"github.com/vovakirdan/wildfire/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [game]",
	Short: "Show recent runs",
	Long: `List the most recent finished runs, newest first, with their
outcome and statistics. Without a game ID, runs of every game are shown.

Examples:
  wildfire runs
  wildfire runs forestfire --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
}

func runRuns(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(gameID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-12s  %-5s  %-4s  %-6s  %-6s  %-8s  %s\n",
		"Date", "Game", "Saved", "Gens", "Doused", "Breaks", "Time", "Outcome")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-12s  %-5s  %-4d  %-6d  %-6d  %-8s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.GameID,
			fmt.Sprintf("%d%%", r.SavedPercent),
			r.Generations,
			r.Extinguished,
			r.Firebreaks,
			formatDuration(r.DurationTicks),
			r.Outcome,
		)
	}
}

// formatDuration renders a tick count as m:ss at the configured frame rate.
func formatDuration(ticks uint64) string {
	fps := uint64(flagFPS)
	if fps == 0 {
		fps = 60
	}
	secs := ticks / fps
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
