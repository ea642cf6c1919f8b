// funtomatch is a match-3 tile puzzle for the terminal.
//
// Usage:
//
//	funtomatch play            - Play in the terminal
//	funtomatch menu            - Start menu with difficulty picker and scores
//	funtomatch simulate        - Run random moves headless and print a summary
//	funtomatch scores          - Show high scores and simulation runs
//	funtomatch list            - List available games
//	funtomatch serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.funtomatch/funtomatch.db)
//	--config <path>       - Custom match3 YAML config
//	--difficulty <name>   - easy, normal, hard or fixed
//	--width, --height     - Board size overrides
//	--colors              - Palette size override
//	--max-moves           - Move limit override
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/willfaustino/funtomatch/internal/config"
	"github.com/willfaustino/funtomatch/internal/games/match3"
	"github.com/willfaustino/funtomatch/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagColors     int
	flagMaxMoves   int
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "funtomatch",
	Short: "FunToMatch - a match-3 puzzle in your terminal",
	Long: `FunToMatch is a match-3 tile puzzle for the terminal. Swap two
neighbouring tiles to line up three or more of a color; matched tiles
disappear, the columns fall and new tiles drop in from the top.

Available commands:
  play      - Play in the terminal
  menu      - Start menu with difficulty picker and scores
  simulate  - Run random moves headless and print a summary
  scores    - View high scores and simulation runs
  list      - Show all available games
  serve     - Start SSH server for remote play

Examples:
  funtomatch play
  funtomatch play --difficulty easy --width 10 --height 10
  funtomatch simulate --moves 500 --seed 42 --save
  funtomatch scores --runs
  funtomatch serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		configureGame()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagWidth, "width", 0, "Board width (overrides config)")
	pf.IntVar(&flagHeight, "height", 0, "Board height (overrides config)")
	pf.IntVar(&flagColors, "colors", 0, "Number of tile colors (overrides config)")
	pf.IntVar(&flagMaxMoves, "max-moves", 0, "Move limit, 0 keeps the config value")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log every simulated move")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// overrides collects the board flags.
func overrides() config.Overrides {
	return config.Overrides{
		Width:     flagWidth,
		Height:    flagHeight,
		NumColors: flagColors,
		MaxMoves:  flagMaxMoves,
	}
}

// configureGame hands the global flags to the match3 game before any
// command creates one.
func configureGame() {
	match3.SetConfigPath(flagConfig)
	match3.SetDifficultyPreset(flagDifficulty)
	match3.SetOverrides(overrides())
}

// newLogger returns the stderr logger shared by the commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "funtomatch",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openStore opens the score database, warning and returning nil on failure
// so that games still run without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
