package match3

import (
	"context"
	"fmt"
	"time"
)

// PickRandomSwapPair picks a random cell and a random orthogonal neighbour,
// clamped to the board. Directions are re-drawn until the clamped target
// differs from the source.
func PickRandomSwapPair(b *Board, rng Random) (Coord, Coord) {
	src := C(rng.Intn(b.width), rng.Intn(b.height))
	for {
		dx, dy := Dirs[rng.Intn(len(Dirs))].Delta()
		dst := C(clamp(src.X+dx, 0, b.width-1), clamp(src.Y+dy, 0, b.height-1))
		if dst != src {
			return src, dst
		}
	}
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// MoveRecord describes one simulated move.
type MoveRecord struct {
	Index  int
	Result TurnResult
}

// SimulationReport aggregates the results of a simulation run.
type SimulationReport struct {
	Moves    int // Moves played
	Matches  int // Moves that produced a match
	Reverted int // Moves that were undone
	Removed  int // Tiles removed in total
	Cascades int // Removal passes in total
}

// Simulator plays random moves through a TurnController, one at a time.
type Simulator struct {
	Controller *TurnController
	Rand       Random
	Delay      time.Duration    // Pause between moves
	OnMove     func(MoveRecord) // Optional, called after every move
}

// Run plays up to moves random swaps. Cancelling ctx stops the run between
// turns; a turn that has started always completes.
func (s *Simulator) Run(ctx context.Context, moves int) (SimulationReport, error) {
	var report SimulationReport
	board := s.Controller.Board()

	for i := 0; i < moves; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		a, c := PickRandomSwapPair(board, s.Rand)
		result, err := s.Controller.RequestSwap(a, c)
		if err != nil {
			return report, fmt.Errorf("simulated move %d %v-%v: %w", i+1, a, c, err)
		}

		report.Moves++
		report.Removed += result.Removed
		report.Cascades += result.Cascades
		if result.Matched() {
			report.Matches++
		}
		if result.Reverted {
			report.Reverted++
		}
		if s.OnMove != nil {
			s.OnMove(MoveRecord{Index: i, Result: result})
		}

		if s.Delay > 0 && i < moves-1 {
			timer := time.NewTimer(s.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return report, ctx.Err()
			case <-timer.C:
			}
		}
	}
	return report, nil
}
