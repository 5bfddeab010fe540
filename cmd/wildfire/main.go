// wildfire is a terminal forest-fire game: douse the flames with water or
// cut firebreaks before the whole forest burns down.
//
// Usage:
//
//	wildfire list              - List available games
//	wildfire play [game]       - Play a game (default: forestfire)
//	wildfire menu              - Start menu to pick games interactively
//	wildfire scores <game>     - Show high scores for a game
//	wildfire runs [game]       - Show recent runs
//	wildfire simulate          - Run the simulation headless
//	wildfire serve             - Start SSH server (and HTTP API) for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.wildfire/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/wildfire/internal/games/forestfire"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wildfire",
	Short: "Wildfire - Put out the forest fire in your terminal",
	Long: `Wildfire is a terminal forest-fire game.

Fire spreads from tree to tree on a square forest. Click a fire (or move
the cursor onto it and press Space) to douse it with water, or click a
tree to cut a firebreak through its whole column. The run ends when the
fire is out or no tree is left.

Available commands:
  list      - Show all available games
  play      - Play a game directly
  menu      - Interactive game picker menu
  scores    - View high scores
  runs      - View recent runs
  simulate  - Run the fire headless and print the result
  serve     - Start SSH server for remote play

Examples:
  wildfire play
  wildfire play --difficulty hard
  wildfire menu
  wildfire simulate --seed 42 --auto
  wildfire serve --ssh :2222 --http :8080`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wildfire/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogging configures the default logger from the global flags.
// Interactive commands own the terminal, so without a log file their
// logs are dropped.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		log.SetOutput(f)
		return nil
	}

	switch cmd.Name() {
	case playCmd.Name(), menuCmd.Name():
		log.SetOutput(io.Discard)
	}
	return nil
}
