package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wildfire/internal/audio"
	"github.com/vovakirdan/wildfire/internal/config"
	"github.com/vovakirdan/wildfire/internal/core"
	"github.com/vovakirdan/wildfire/internal/games/forestfire"
	"github.com/vovakirdan/wildfire/internal/platform/tui"
	"github.com/vovakirdan/wildfire/internal/registry"
	"github.com/vovakirdan/wildfire/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: forestfire).

Controls:
  Mouse click       - Douse a fire / cut a firebreak
  Arrows/WASD/hjkl  - Move the cursor
  Space/Enter       - Touch the cell under the cursor
  P                 - Pause
  R                 - Restart (after game over)
  Esc/B             - Back (when paused or over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Few fires, slow spread
  normal - The classic six fires
  hard   - Many fires, fast spread
  fixed  - Use the config file as written

Examples:
  wildfire play
  wildfire play --difficulty easy
  wildfire play --config ./my-forest.yaml --no-sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		cmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := forestfire.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'wildfire list' to see available games.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sound := setupSound()
	if sound != nil {
		defer sound.Cleanup()
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameFlags passes --config and --difficulty to the game package.
func applyGameFlags() error {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	if flagConfig != "" {
		if _, err := config.LoadForestFire(flagConfig); err != nil {
			return err
		}
	}

	forestfire.SetConfigPath(flagConfig)
	forestfire.SetDifficultyPreset(flagDifficulty)
	return nil
}

// setupSound starts the audio device and hands it to the game.
// It returns nil when sound is disabled or unavailable.
func setupSound() *audio.SoundManager {
	forestfire.SetSoundPlayer(nil)
	if flagNoSound {
		return nil
	}

	cfg, err := config.LoadForestFire(flagConfig)
	if err != nil || !cfg.Sound.Enabled {
		return nil
	}

	sm := audio.NewSoundManager(cfg.Sound.Volume)
	if err := sm.Initialize(); err != nil {
		log.Warn("sound disabled", "error", err)
		return nil
	}
	forestfire.SetSoundPlayer(sm)
	return sm
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("scores database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
