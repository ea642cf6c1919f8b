package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/willfaustino/funtomatch/internal/config"
	m3 "github.com/willfaustino/funtomatch/internal/match3"
	"github.com/willfaustino/funtomatch/internal/storage"
)

var (
	flagSimMoves int
	flagSimDelay time.Duration
	flagSimSave  bool
	flagSimBoard bool
	flagSimHint  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run random moves headless and print a summary",
	Long: `Deal a board from the config and play random swaps through the
same turn engine the game uses. Every move runs to a stable board before
the next one starts. Ctrl+C stops between moves and still reports.

Examples:
  funtomatch simulate
  funtomatch simulate --moves 1000 --seed 42
  funtomatch simulate --delay 200ms -v
  funtomatch simulate --save --board --hint`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 0, "Moves to play (0 = config simulation.moves)")
	simulateCmd.Flags().DurationVar(&flagSimDelay, "delay", -1, "Pause between moves (default: config simulation.delay_ms)")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the run summary in the database")
	simulateCmd.Flags().BoolVar(&flagSimBoard, "board", false, "Print the final board")
	simulateCmd.Flags().BoolVar(&flagSimHint, "hint", false, "Print a matching swap on the final board")
}

// simulation is one headless run.
type simulation struct {
	cfg   config.Match3Config
	seed  int64
	moves int
	delay time.Duration
}

// simulationResult is what a run leaves behind.
type simulationResult struct {
	run    storage.SimulationRun
	report m3.SimulationReport
	board  *m3.Board
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := newLogger()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Resolve(flagConfig, preset, overrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sim := simulation{
		cfg:   cfg,
		seed:  flagSeed,
		moves: cfg.Simulation.Moves,
		delay: time.Duration(cfg.Simulation.DelayMS) * time.Millisecond,
	}
	if flagSimMoves > 0 {
		sim.moves = flagSimMoves
	}
	if flagSimDelay >= 0 {
		sim.delay = flagSimDelay
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := sim.run(ctx, logger)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("simulation interrupted", "moves", res.report.Moves)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("simulation finished",
		"seed", res.run.Seed,
		"board", fmt.Sprintf("%dx%d", res.run.Width, res.run.Height),
		"colors", res.run.NumColors,
		"moves", res.report.Moves,
		"matches", res.report.Matches,
		"reverted", res.report.Reverted,
		"score", res.run.Score,
		"cascades", res.report.Cascades,
	)

	if flagSimBoard {
		fmt.Println(res.board.String())
	}
	if flagSimHint {
		if a, b, ok := m3.HintSwap(res.board); ok {
			fmt.Printf("Hint: swap %v with %v\n", a, b)
		} else {
			fmt.Println("Hint: no swap on this board makes a match")
		}
	}

	if flagSimSave {
		saveRun(logger, res.run)
	}
}

// run deals the board and plays the moves, logging each one at debug level.
// The result is filled in even when the run is cancelled part way.
func (s simulation) run(ctx context.Context, logger *log.Logger) (simulationResult, error) {
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := m3.NewRand(seed)
	board, err := m3.NewBoard(s.cfg.ToCore(seed), rng)
	if err != nil {
		return simulationResult{}, err
	}

	tally := &m3.Tally{}
	sim := &m3.Simulator{
		Controller: m3.NewTurnController(board, rng, tally, nil),
		Rand:       rng,
		Delay:      s.delay,
		OnMove: func(rec m3.MoveRecord) {
			r := rec.Result
			logger.Debug("move",
				"n", rec.Index+1,
				"from", r.From,
				"to", r.To,
				"removed", r.Removed,
				"cascades", r.Cascades,
				"reverted", r.Reverted,
			)
		},
	}

	report, runErr := sim.Run(ctx, s.moves)
	return simulationResult{
		run: storage.SimulationRun{
			Seed:      seed,
			Width:     board.Width(),
			Height:    board.Height(),
			NumColors: board.NumColors(),
			Moves:     report.Moves,
			Matches:   report.Matches,
			Score:     tally.Score,
			Cascades:  report.Cascades,
		},
		report: report,
		board:  board,
	}, runErr
}

func saveRun(logger *log.Logger, run storage.SimulationRun) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	id, err := store.SaveRun(run)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("run saved", "id", id)
}
