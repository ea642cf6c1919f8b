package match3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willfaustino/funtomatch/internal/match3"
)

func TestRequestSwapRemovesMatchAndScores(t *testing.T) {
	b := swapScenarioBoard(t)
	var tally match3.Tally
	var log match3.EventLog
	tc := match3.NewTurnController(b, script(4, 0, 4), &tally, &log)

	result, err := tc.RequestSwap(match3.C(0, 0), match3.C(1, 0))
	require.NoError(t, err)

	assert.True(t, result.Swapped)
	assert.False(t, result.Reverted)
	assert.True(t, result.Matched())
	assert.Equal(t, 3, result.Removed)
	assert.Equal(t, 1, result.Cascades)
	assert.Equal(t, 3, tally.Score)
	assert.Equal(t, 1, tally.Moves)
	assert.Equal(t, match3.StateIdle, tc.State())
	assert.Equal(t, 3, log.Count(match3.EventRemoved))
	assert.Equal(t, 3, log.Count(match3.EventSpawned))

	assert.Equal(t, "YMRM\nGRGB\nBYBY\nBGYG", b.String())
	requireRest(t, b)
}

func TestRequestSwapWithoutMatchReverts(t *testing.T) {
	b := swapScenarioBoard(t)
	before := b.Clone()
	var tally match3.Tally
	var log match3.EventLog
	tc := match3.NewTurnController(b, script(), &tally, &log)

	result, err := tc.RequestSwap(match3.C(0, 2), match3.C(0, 3))
	require.NoError(t, err)

	assert.True(t, result.Swapped)
	assert.True(t, result.Reverted)
	assert.False(t, result.Matched())
	assert.Equal(t, 1, tally.Moves)
	assert.Zero(t, tally.Score)
	assert.True(t, b.Equal(before))
	// Two moves out, two moves back.
	assert.Equal(t, 4, log.Count(match3.EventMoved))
	assert.Equal(t, match3.StateIdle, tc.State())
}

func TestRequestSwapRejectsNonAdjacent(t *testing.T) {
	b := swapScenarioBoard(t)
	before := b.Clone()
	var tally match3.Tally
	var log match3.EventLog
	tc := match3.NewTurnController(b, script(), &tally, &log)

	for _, c := range []match3.Coord{match3.C(2, 0), match3.C(1, 1), match3.C(0, 0)} {
		_, err := tc.RequestSwap(match3.C(0, 0), c)
		assert.ErrorIs(t, err, match3.ErrNotAdjacent)
		assert.Equal(t, match3.StateIdle, tc.State())
	}
	assert.Zero(t, tally.Moves)
	assert.Empty(t, log.Events)
	assert.True(t, b.Equal(before))

	_, err := tc.RequestSwap(match3.C(0, 0), match3.C(0, -1))
	assert.ErrorIs(t, err, match3.ErrOutOfBounds)
	assert.Equal(t, match3.StateIdle, tc.State())
}

func TestRequestSwapCascades(t *testing.T) {
	// Swapping the top-left pair stacks three reds in column 0. Scripted
	// spawns refill that column with three yellows, then three magentas,
	// before settling on red, yellow, red.
	b := boardFrom(t,
		[]match3.Color{R, B, G},
		[]match3.Color{R, G, B},
		[]match3.Color{B, R, G},
	)
	requireRest(t, b)

	var tally match3.Tally
	tc := match3.NewTurnController(b, script(3, 3, 3, 4, 4, 4, 0, 3, 0), &tally, nil)

	result, err := tc.RequestSwap(match3.C(0, 2), match3.C(1, 2))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Cascades)
	assert.Equal(t, 9, result.Removed)
	assert.Equal(t, 9, tally.Score)
	assert.Equal(t, 1, tally.Moves)
	assert.Equal(t, "RBG\nYGB\nRBG", b.String())
	requireRest(t, b)
}

func TestSteppedTurnPhases(t *testing.T) {
	b := swapScenarioBoard(t)
	var tally match3.Tally
	tc := match3.NewTurnController(b, script(4, 0, 4), &tally, nil)

	require.NoError(t, tc.BeginSwap(match3.C(0, 0), match3.C(1, 0)))
	assert.Equal(t, match3.StateAwaitingSwap, tc.State())
	assert.True(t, tc.Busy())

	steps := []struct {
		phase   match3.Phase
		state   match3.State
		empties int
	}{
		{match3.PhaseSwap, match3.StateValidating, 0},
		{match3.PhaseValidate, match3.StateResolving, 0},
		{match3.PhaseRemove, match3.StateResolving, 3},
		{match3.PhaseRefill, match3.StateResolving, 0},
		{match3.PhaseRecheck, match3.StateIdle, 0},
	}
	for _, step := range steps {
		// A second request is rejected at every suspension point.
		assert.ErrorIs(t, tc.BeginSwap(match3.C(2, 2), match3.C(2, 3)), match3.ErrTurnInProgress)
		_, err := tc.RequestSwap(match3.C(2, 2), match3.C(2, 3))
		assert.ErrorIs(t, err, match3.ErrTurnInProgress)

		phase, err := tc.Advance()
		require.NoError(t, err)
		assert.Equal(t, step.phase, phase)
		assert.Equal(t, step.state, tc.State(), "after %s", phase)
		assert.Equal(t, step.empties, b.EmptyCount(), "after %s", phase)
	}

	phase, err := tc.Advance()
	require.NoError(t, err)
	assert.Equal(t, match3.PhaseNone, phase)
	assert.Equal(t, 1, tally.Moves)
	assert.Equal(t, 3, tally.Score)
	assert.Equal(t, 3, tc.Result().Removed)
}

func TestCancelPendingSwap(t *testing.T) {
	b := swapScenarioBoard(t)
	before := b.Clone()
	var tally match3.Tally
	tc := match3.NewTurnController(b, script(), &tally, nil)

	require.NoError(t, tc.BeginSwap(match3.C(0, 0), match3.C(1, 0)))
	assert.True(t, tc.Cancel())
	assert.Equal(t, match3.StateIdle, tc.State())
	assert.Zero(t, tally.Moves)
	assert.True(t, b.Equal(before))

	require.NoError(t, tc.BeginSwap(match3.C(0, 0), match3.C(1, 0)))
	_, err := tc.Advance()
	require.NoError(t, err)
	assert.False(t, tc.Cancel(), "applied swap must not be cancellable")
}

func TestRandomTurnsKeepRestInvariant(t *testing.T) {
	rng := match3.NewRand(99)
	b, err := match3.NewBoard(match3.DefaultConfig(), rng)
	require.NoError(t, err)
	var tally match3.Tally
	tc := match3.NewTurnController(b, rng, &tally, nil)

	for i := 0; i < 200; i++ {
		a, c := match3.PickRandomSwapPair(b, rng)
		result, err := tc.RequestSwap(a, c)
		require.NoError(t, err)
		assert.NotEqual(t, result.Reverted, result.Matched())
		requireRest(t, b)
	}
	assert.Equal(t, 200, tally.Moves)
}

func TestStateAndPhaseNames(t *testing.T) {
	assert.Equal(t, "resolving", match3.StateResolving.String())
	assert.Equal(t, "refill", match3.PhaseRefill.String())
}
