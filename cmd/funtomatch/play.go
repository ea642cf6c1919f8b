package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/willfaustino/funtomatch/internal/config"
	"github.com/willfaustino/funtomatch/internal/core"
	"github.com/willfaustino/funtomatch/internal/games/match3"
	"github.com/willfaustino/funtomatch/internal/platform/tui"
	"github.com/willfaustino/funtomatch/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The game defaults to match3.

Controls:
  Arrows/WASD   - Move the cursor
  Enter/Space   - Select a tile, select a neighbour to swap
  B/Esc         - Drop the selection
  H             - Show a hint
  M             - Toggle random-move autoplay
  P             - Pause
  R             - New board
  Ctrl+S        - Save a screenshot to ~/.funtomatch/screenshots
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - 4 colors
  normal - 5 colors
  hard   - 6 colors
  fixed  - Keep the config file's palette

Examples:
  funtomatch play
  funtomatch play --difficulty hard
  funtomatch play --width 10 --height 9 --max-moves 30
  funtomatch play --config ./my-match3.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	logger := newLogger()

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
	warnConfig(logger)

	store := openStore(logger)
	runErr := tui.Run(game, store, runtimeConfig())
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the screen from the terminal, 80x24 when unknown.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// warnConfig reports settings the game will ignore before the alt screen
// hides stderr.
func warnConfig(logger *log.Logger) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		logger.Warn("unknown difficulty, keeping config palette", "difficulty", flagDifficulty)
		preset = config.DifficultyFixed
	}
	if _, err := config.Resolve(flagConfig, preset, overrides()); err != nil {
		logger.Warn("config rejected, playing with defaults", "error", err)
	}
}
