package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/willfaustino/funtomatch/internal/games/match3"
	"github.com/willfaustino/funtomatch/internal/platform/tui"
	"github.com/willfaustino/funtomatch/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with difficulty picker and scores",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right, start a game with Enter, or open the
scoreboard with Tab. Leaving a game with Q returns to the menu.

Examples:
  funtomatch menu
  funtomatch menu --difficulty hard
  funtomatch menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()
	warnConfig(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	difficulty := flagDifficulty

	for {
		result, err := tui.RunMenu(match3.GameID, difficulty, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoiceScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}

		case tui.ChoicePlay:
			difficulty = string(result.Difficulty)
			match3.SetDifficultyPreset(difficulty)

			game, err := registry.Create(match3.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				return
			}
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, store, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}

		default:
			return
		}
	}
}
