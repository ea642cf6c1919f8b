package match3

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willfaustino/funtomatch/internal/config"
	"github.com/willfaustino/funtomatch/internal/core"
	m3 "github.com/willfaustino/funtomatch/internal/match3"
)

const (
	R = m3.ColorRed
	B = m3.ColorBlue
	G = m3.ColorGreen
	Y = m3.ColorYellow
)

// newTestGame returns a game on a fixed board, rows listed bottom first.
// Swapping (0,0) and (1,0) lines up three reds on the bottom row.
func newTestGame(t *testing.T, mutate func(*config.Match3Config)) *Game {
	t.Helper()
	board, err := m3.NewBoardFromColors([][]m3.Color{
		{R, B, R, R},
		{B, G, Y, G},
		{G, Y, B, Y},
		{Y, R, G, B},
	}, 5)
	require.NoError(t, err)

	g := New()
	g.cfg = config.DefaultMatch3Config()
	if mutate != nil {
		mutate(&g.cfg)
	}
	g.screenW, g.screenH = 80, 24
	g.load(board, m3.NewRand(1))
	g.checkScreenSize()
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// settle steps until the current turn has finished.
func settle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 500 && g.controller.Busy(); i++ {
		step(g)
	}
	require.False(t, g.controller.Busy(), "turn did not finish")
}

func selectPair(g *Game, a, c m3.Coord) {
	g.cursor = a
	step(g, core.ActionConfirm)
	g.cursor = c
	step(g, core.ActionConfirm)
}

func TestSelectingSameTileTwiceDeselects(t *testing.T) {
	g := newTestGame(t, nil)
	g.cursor = m3.C(1, 1)

	step(g, core.ActionConfirm)
	require.NotNil(t, g.selected)
	assert.Equal(t, m3.C(1, 1), *g.selected)

	step(g, core.ActionConfirm)
	assert.Nil(t, g.selected)
	assert.False(t, g.controller.Busy())
}

func TestNonAdjacentSelectionIsDropped(t *testing.T) {
	g := newTestGame(t, nil)
	before := g.board.Clone()

	selectPair(g, m3.C(0, 0), m3.C(2, 0))

	assert.Nil(t, g.selected)
	assert.False(t, g.controller.Busy())
	assert.Zero(t, g.moves)
	assert.True(t, g.board.Equal(before))
	assert.NotEmpty(t, g.status)
}

func TestMatchingSwapScores(t *testing.T) {
	g := newTestGame(t, nil)

	selectPair(g, m3.C(0, 0), m3.C(1, 0))
	assert.True(t, g.controller.Busy(), "turn should be paced over several ticks")
	settle(t, g)

	assert.Equal(t, 1, g.moves)
	assert.GreaterOrEqual(t, g.score, 3)
	assert.True(t, g.lastResult.Matched())
	assert.Zero(t, g.board.EmptyCount())
	assert.False(t, m3.HasAnyMatch(g.board))

	// The handle index follows every tile through swaps and refills.
	assert.Len(t, g.positions, 16)
	for h, c := range g.positions {
		cell, err := g.board.Get(c)
		require.NoError(t, err)
		require.True(t, cell.Occupied())
		assert.Equal(t, h, cell.Tile().Handle, "tile at %v", c)
	}
}

func TestFailedSwapRevertsAndCountsMove(t *testing.T) {
	g := newTestGame(t, nil)
	before := g.board.Clone()

	selectPair(g, m3.C(0, 2), m3.C(0, 3))
	settle(t, g)

	assert.True(t, g.lastResult.Reverted)
	assert.Equal(t, 1, g.moves)
	assert.Zero(t, g.score)
	assert.True(t, g.board.Equal(before))
	assert.Equal(t, "No match", g.status)
}

func TestInputIgnoredWhileResolving(t *testing.T) {
	g := newTestGame(t, nil)
	selectPair(g, m3.C(0, 0), m3.C(1, 0))
	require.True(t, g.controller.Busy())

	g.cursor = m3.C(3, 3)
	step(g, core.ActionConfirm)
	assert.Nil(t, g.selected)

	// Cursor movement still works mid-turn
	step(g, core.ActionLeft)
	assert.Equal(t, m3.C(2, 3), g.cursor)
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := newTestGame(t, nil)
	g.cursor = m3.C(0, 0)

	step(g, core.ActionLeft)
	step(g, core.ActionDown)
	assert.Equal(t, m3.C(0, 0), g.cursor)

	for i := 0; i < 10; i++ {
		step(g, core.ActionUp)
		step(g, core.ActionRight)
	}
	assert.Equal(t, m3.C(3, 3), g.cursor)
}

func TestMaxMovesEndsGame(t *testing.T) {
	g := newTestGame(t, func(c *config.Match3Config) { c.Rules.MaxMoves = 1 })

	selectPair(g, m3.C(0, 2), m3.C(0, 3))
	settle(t, g)

	assert.True(t, g.State().GameOver)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	// Further input is ignored
	selectPair(g, m3.C(0, 0), m3.C(1, 0))
	assert.False(t, g.controller.Busy())
	assert.Equal(t, 1, g.moves)
}

func TestDeadBoardIsReshuffled(t *testing.T) {
	g := newTestGame(t, nil)
	dead, err := m3.NewBoardFromColors([][]m3.Color{
		{R, B, R, B},
		{G, Y, G, Y},
		{B, R, B, R},
		{Y, G, Y, G},
	}, 5)
	require.NoError(t, err)
	g.load(dead, m3.NewRand(1))

	g.score, g.moves = 12, 7

	g.finishTurn(m3.TurnResult{Swapped: true, Reverted: true})

	assert.False(t, g.gameOver)
	assert.NotSame(t, dead, g.board)
	assert.True(t, m3.HasValidMove(g.board))
	assert.Equal(t, 4, g.board.Width())
	assert.Equal(t, 12, g.score)
	assert.Equal(t, 7, g.moves)
	assert.Contains(t, g.status, "reshuffled")
	assert.Len(t, g.positions, 16)
}

func TestHintHighlightsMatchingSwap(t *testing.T) {
	g := newTestGame(t, nil)

	step(g, core.ActionHint)
	require.NotNil(t, g.hint)

	trial := g.board.Clone()
	require.NoError(t, trial.Swap(g.hint[0], g.hint[1]))
	assert.True(t, m3.HasAnyMatch(trial))

	for i := 0; i < hintTicks; i++ {
		step(g)
	}
	assert.Nil(t, g.hint, "hint should expire")
}

func TestPauseFreezesTurn(t *testing.T) {
	g := newTestGame(t, nil)
	selectPair(g, m3.C(0, 0), m3.C(1, 0))

	step(g, core.ActionPause)
	require.True(t, g.State().Paused)
	state := g.controller.State()
	for i := 0; i < 50; i++ {
		step(g)
	}
	assert.Equal(t, state, g.controller.State())

	step(g, core.ActionPause)
	settle(t, g)
	assert.Equal(t, 1, g.moves)
}

func TestAutoplayPlaysConfiguredMoves(t *testing.T) {
	g := newTestGame(t, func(c *config.Match3Config) {
		c.Simulation.Moves = 3
		c.Simulation.TicksPerMove = 1
	})

	step(g, core.ActionSimulate)
	for i := 0; i < 2000 && (g.simulating || g.controller.Busy()); i++ {
		step(g)
	}

	assert.False(t, g.simulating)
	assert.Equal(t, 3, g.moves)
	assert.Zero(t, g.board.EmptyCount())
}

func TestAutoplayToggleStops(t *testing.T) {
	g := newTestGame(t, func(c *config.Match3Config) { c.Simulation.Moves = 0 })

	step(g, core.ActionSimulate)
	assert.Equal(t, StateSimulating, g.Snapshot().State)

	settle(t, g)
	step(g, core.ActionSimulate)
	settle(t, g)
	assert.False(t, g.simulating)

	moves := g.moves
	for i := 0; i < 100; i++ {
		step(g)
	}
	assert.Equal(t, moves, g.moves)
}

func TestResetIsDeterministic(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

	play := func() Snapshot {
		g := New()
		g.Reset(rc)
		step(g, core.ActionSimulate)
		for i := 0; i < 300; i++ {
			step(g)
		}
		return g.Snapshot()
	}

	first, second := play(), play()
	assert.Equal(t, first, second)
	assert.Positive(t, first.Moves)
	assert.Len(t, first.Board, 8)
}

func TestSetPresetIsPerGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}

	hard := New()
	hard.SetPreset("hard")
	hard.SetPreset("bogus")
	hard.Reset(rc)
	assert.Equal(t, 6, hard.cfg.Board.NumColors)

	plain := New()
	plain.Reset(rc)
	assert.Equal(t, config.DefaultMatch3Config().Board.NumColors, plain.cfg.Board.NumColors)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, nil)
	g.cursor = m3.C(0, 3)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "FunToMatch")
	assert.Contains(t, out, "Score: 0")
	// Top row, cursor on the first tile
	assert.Contains(t, out, "[Y] R  G  B ")

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[hudHeight+4], " R  B  R  R ")
}

func TestRenderHUDOnNarrowBoard(t *testing.T) {
	g := newTestGame(t, nil)
	g.score, g.moves = 12, 7
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	hud := strings.Split(screen.String(), "\n")[1]

	assert.Contains(t, hud, "Score: 12")
	assert.Contains(t, hud, "Moves: 7")
	assert.Less(t, strings.Index(hud, "Score: 12")+len("Score: 12"), strings.Index(hud, "Moves: 7"))
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	before := g.board.String()
	g.Resize(20, 8)

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
	assert.True(t, g.State().Paused)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	g.Resize(80, 24)
	assert.False(t, g.State().Paused)
	assert.Equal(t, before, g.board.String())
}
