package match3

import (
	"errors"
	"fmt"
)

// State is the turn controller's position in the turn state machine.
type State uint8

const (
	StateIdle         State = iota // No turn in progress
	StateAwaitingSwap              // Swap requested, not yet applied
	StateValidating                // Swap applied, match check pending
	StateResolving                 // Removing, refilling and re-checking until stable
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingSwap:
		return "awaiting_swap"
	case StateValidating:
		return "validating"
	case StateResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Phase names the step performed by one call to Advance.
type Phase uint8

const (
	PhaseNone     Phase = iota // Nothing to do
	PhaseSwap                  // Tiles exchanged
	PhaseValidate              // Match check after the swap
	PhaseRemove                // Matched tiles removed and scored
	PhaseRefill                // Columns compacted and refilled
	PhaseRecheck               // Match check after a refill
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseSwap:
		return "swap"
	case PhaseValidate:
		return "validate"
	case PhaseRemove:
		return "remove"
	case PhaseRefill:
		return "refill"
	case PhaseRecheck:
		return "recheck"
	default:
		return "unknown"
	}
}

// resolveStep tracks progress inside StateResolving.
type resolveStep uint8

const (
	stepRemove resolveStep = iota
	stepRefill
	stepRecheck
)

// TurnResult summarizes one completed turn.
type TurnResult struct {
	From, To Coord
	Swapped  bool // Cells were adjacent and the swap was applied
	Reverted bool // No match formed, the swap was undone
	Removed  int  // Tiles removed over all cascade passes
	Cascades int  // Number of removal passes
}

// Matched reports whether the swap produced at least one match.
func (r TurnResult) Matched() bool {
	return r.Removed > 0
}

// TurnController owns the board for the duration of a turn and drives it
// from a swap request back to a stable board.
//
// A turn can be run to completion with RequestSwap, or stepped with
// BeginSwap and Advance so that a scheduler can insert delays between
// phases. Only one turn runs at a time.
type TurnController struct {
	board  *Board
	rng    Random
	scorer Scorer
	sink   EventSink

	state   State
	step    resolveStep
	from    Coord
	to      Coord
	matches []*Tile
	result  TurnResult
}

// NewTurnController creates a controller for board. Nil scorer or sink are
// replaced by no-op implementations.
func NewTurnController(board *Board, rng Random, scorer Scorer, sink EventSink) *TurnController {
	if scorer == nil {
		scorer = &Tally{}
	}
	if sink == nil {
		sink = NopSink{}
	}
	return &TurnController{
		board:  board,
		rng:    rng,
		scorer: scorer,
		sink:   sink,
	}
}

// Board returns the controlled board.
func (tc *TurnController) Board() *Board {
	return tc.board
}

// State returns the current state.
func (tc *TurnController) State() State {
	return tc.state
}

// Busy reports whether a turn is in progress.
func (tc *TurnController) Busy() bool {
	return tc.state != StateIdle
}

// Result returns the result of the current or last turn.
func (tc *TurnController) Result() TurnResult {
	return tc.result
}

// BeginSwap queues a swap between a and c. It fails with ErrTurnInProgress
// if another turn is active and with ErrOutOfBounds for bad coordinates.
func (tc *TurnController) BeginSwap(a, c Coord) error {
	if tc.Busy() {
		return fmt.Errorf("%w: state %s", ErrTurnInProgress, tc.state)
	}
	if err := tc.board.checkBounds(a); err != nil {
		return err
	}
	if err := tc.board.checkBounds(c); err != nil {
		return err
	}
	tc.from, tc.to = a, c
	tc.result = TurnResult{From: a, To: c}
	tc.matches = nil
	tc.state = StateAwaitingSwap
	return nil
}

// Cancel drops a queued swap that has not been applied yet.
// Returns false once the swap is on the board.
func (tc *TurnController) Cancel() bool {
	if tc.state != StateAwaitingSwap {
		return false
	}
	tc.state = StateIdle
	return true
}

// Advance performs the next phase of the current turn and returns it.
// Callers keep calling Advance until State returns StateIdle.
func (tc *TurnController) Advance() (Phase, error) {
	switch tc.state {
	case StateAwaitingSwap:
		return PhaseSwap, tc.applySwap()
	case StateValidating:
		return PhaseValidate, tc.validate()
	case StateResolving:
		return tc.resolve()
	default:
		return PhaseNone, nil
	}
}

// RequestSwap runs a full turn for a swap between a and c. Non-adjacent
// cells leave the board untouched and return ErrNotAdjacent.
func (tc *TurnController) RequestSwap(a, c Coord) (TurnResult, error) {
	if err := tc.BeginSwap(a, c); err != nil {
		return TurnResult{}, err
	}
	for tc.Busy() {
		if _, err := tc.Advance(); err != nil {
			return tc.result, err
		}
	}
	return tc.result, nil
}

func (tc *TurnController) applySwap() error {
	if err := TrySwap(tc.board, tc.from, tc.to); err != nil {
		tc.state = StateIdle
		return err
	}
	tc.scorer.OnMoveAttempted()
	tc.result.Swapped = true
	tc.emitSwap()
	tc.state = StateValidating
	return nil
}

func (tc *TurnController) validate() error {
	tc.matches = FindAllMatches(tc.board)
	if len(tc.matches) > 0 {
		tc.step = stepRemove
		tc.state = StateResolving
		return nil
	}

	if err := RevertSwap(tc.board, tc.from, tc.to); err != nil {
		tc.state = StateIdle
		return err
	}
	tc.result.Reverted = true
	tc.emitSwap()
	tc.state = StateIdle
	return nil
}

func (tc *TurnController) resolve() (Phase, error) {
	switch tc.step {
	case stepRemove:
		for _, t := range tc.matches {
			tc.board.put(t.Coord(), EmptyCell())
			tc.sink.TileRemoved(t.Handle)
		}
		tc.scorer.OnTilesRemoved(len(tc.matches))
		tc.result.Removed += len(tc.matches)
		tc.result.Cascades++
		tc.matches = nil
		tc.step = stepRefill
		return PhaseRemove, nil

	case stepRefill:
		if err := Refill(tc.board, tc.rng, tc.sink); err != nil {
			// Resolving never stops half-way; a refill error means a broken board.
			panic(errors.Join(ErrEmptyCell, err))
		}
		tc.step = stepRecheck
		return PhaseRefill, nil

	default:
		tc.matches = FindAllMatches(tc.board)
		if len(tc.matches) > 0 {
			tc.step = stepRemove
		} else {
			tc.state = StateIdle
		}
		return PhaseRecheck, nil
	}
}

// emitSwap reports the two swapped tiles moving to their new cells.
func (tc *TurnController) emitSwap() {
	for _, pair := range [2][2]Coord{{tc.to, tc.from}, {tc.from, tc.to}} {
		dst, src := pair[0], pair[1]
		if t := tc.board.at(dst).Tile(); t != nil {
			tc.sink.TileMoved(t.Handle, src.X, src.Y, dst.X, dst.Y)
		}
	}
}
