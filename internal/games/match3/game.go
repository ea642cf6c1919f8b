// Package match3 adapts the match-3 grid engine to the arcade game
// interface: cursor selection, paced turn phases, hints and autoplay.
package match3

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/willfaustino/funtomatch/internal/config"
	"github.com/willfaustino/funtomatch/internal/core"
	m3 "github.com/willfaustino/funtomatch/internal/match3"
	"github.com/willfaustino/funtomatch/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "match3"

// Ticks spent on each visible turn phase.
var phaseTicks = map[m3.Phase]int{
	m3.PhaseSwap:     6,
	m3.PhaseValidate: 2,
	m3.PhaseRemove:   10,
	m3.PhaseRefill:   8,
	m3.PhaseRecheck:  2,
}

const (
	hintTicks         = 120
	reshuffleAttempts = 100
)

var (
	configPath       string
	difficultyPreset = config.DifficultyFixed
	overrides        config.Overrides
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// file's settings.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyFixed
	}
	difficultyPreset = p
}

// SetOverrides sets command-line values that replace file settings.
func SetOverrides(o config.Overrides) {
	overrides = o
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game is a single-player match-3 session.
type Game struct {
	cfg        config.Match3Config
	preset     *config.DifficultyPreset // per-session override of difficultyPreset
	rng        *rand.Rand
	board      *m3.Board
	controller *m3.TurnController
	anim       *animator
	positions  map[m3.Handle]m3.Coord // last known cell of every live tile

	tick  uint64
	score int
	moves int

	cursor   m3.Coord
	selected *m3.Coord
	hint     *[2]m3.Coord
	hintLeft int

	phaseWait  int
	lastResult m3.TurnResult
	status     string

	simulating   bool
	simRemaining int // 0 with simulating set means until toggled off
	simWait      int

	screenW    int
	screenH    int
	gameOver   bool
	outOfMoves bool // no swap on the board can match
	paused     bool
	tooSmall   bool
}

// New creates a match-3 game. Call Reset before use.
func New() *Game {
	return &Game{}
}

// SetPreset picks the difficulty for this game only, taking effect on the
// next Reset. Unknown names are ignored.
func (g *Game) SetPreset(name string) {
	p, err := config.ParsePreset(name)
	if err != nil {
		return
	}
	g.preset = &p
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "FunToMatch"
}

// Reset loads the configuration and deals a fresh stable board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	cfg, err := config.Resolve(configPath, preset, overrides)
	status := ""
	if err != nil {
		cfg = config.DefaultMatch3Config()
		status = "Config ignored: " + err.Error()
	}

	rng := m3.NewRand(rc.Seed)
	board, err := m3.NewBoard(cfg.ToCore(rc.Seed), rng)
	if err != nil {
		// Resolve validated the board already; only the defaults remain.
		cfg = config.DefaultMatch3Config()
		board, _ = m3.NewBoard(cfg.ToCore(rc.Seed), rng)
	}

	g.cfg = cfg
	g.screenW, g.screenH = rc.ScreenW, rc.ScreenH
	g.load(board, rng)
	g.status = status
	g.checkScreenSize()
}

// load resets session state around an existing board.
func (g *Game) load(board *m3.Board, rng *rand.Rand) {
	g.rng = rng
	g.board = board
	g.anim = newAnimator()
	g.controller = m3.NewTurnController(board, rng, g, g)
	g.positions = make(map[m3.Handle]m3.Coord, board.Width()*board.Height())
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if cell, err := board.Get(m3.C(x, y)); err == nil && cell.Occupied() {
				g.positions[cell.Tile().Handle] = m3.C(x, y)
			}
		}
	}

	g.tick = 0
	g.score, g.moves = 0, 0
	g.cursor = m3.C(board.Width()/2, board.Height()/2)
	g.selected, g.hint, g.hintLeft = nil, nil, 0
	g.phaseWait = 0
	g.lastResult = m3.TurnResult{}
	g.status = ""
	g.simulating, g.simRemaining, g.simWait = false, 0, 0
	g.gameOver, g.outOfMoves, g.paused = false, false, false
}

// Resize adapts to a new terminal size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	w, h := g.minScreenSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.anim.update()
	if g.hintLeft > 0 {
		g.hintLeft--
		if g.hintLeft == 0 {
			g.hint = nil
		}
	}

	// Restart is handled by the platform
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.advanceTurn()
	g.driveSimulation()

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, 1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, -1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	if in.Has(core.ActionSimulate) {
		g.toggleSimulation()
	}
	if g.simulating || g.controller.Busy() {
		return
	}

	switch {
	case in.Has(core.ActionConfirm):
		g.selectAt(g.cursor)
	case in.Has(core.ActionBack):
		g.selected = nil
	case in.Has(core.ActionHint):
		g.showHint()
	}
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursor = m3.C(
		core.Clamp(g.cursor.X+dx, 0, g.board.Width()-1),
		core.Clamp(g.cursor.Y+dy, 0, g.board.Height()-1),
	)
}

// selectAt toggles a selection or, with a tile already selected, swaps the
// two. Picking the selected tile again deselects it; a non-adjacent pick
// drops the selection.
func (g *Game) selectAt(c m3.Coord) {
	switch {
	case g.selected == nil:
		g.selected = &c
	case *g.selected == c:
		g.selected = nil
	default:
		from := *g.selected
		g.selected = nil
		if !m3.IsAdjacent(from, c) {
			g.status = "Tiles must be next to each other"
			return
		}
		g.startTurn(from, c)
	}
}

func (g *Game) startTurn(a, c m3.Coord) {
	if err := g.controller.BeginSwap(a, c); err != nil {
		g.status = err.Error()
		return
	}
	g.hint, g.hintLeft = nil, 0
	g.status = ""
	g.phaseWait = 0
}

// advanceTurn performs at most one turn phase, leaving the phase visible for
// a few ticks before the next.
func (g *Game) advanceTurn() {
	if !g.controller.Busy() {
		return
	}
	if g.phaseWait > 0 {
		g.phaseWait--
		return
	}

	phase, err := g.controller.Advance()
	if err != nil {
		g.status = err.Error()
		return
	}
	g.phaseWait = phaseTicks[phase]

	if !g.controller.Busy() {
		g.finishTurn(g.controller.Result())
	}
}

func (g *Game) finishTurn(r m3.TurnResult) {
	g.lastResult = r
	switch {
	case r.Reverted:
		g.status = "No match"
	case r.Cascades > 1:
		g.status = fmt.Sprintf("+%d  combo x%d", r.Removed, r.Cascades)
	case r.Matched():
		g.status = fmt.Sprintf("+%d", r.Removed)
	}

	if g.cfg.Rules.MaxMoves > 0 && g.moves >= g.cfg.Rules.MaxMoves {
		g.gameOver = true
		g.simulating = false
		return
	}
	if !m3.HasValidMove(g.board) {
		g.reshuffle()
	}
}

// reshuffle deals a new board of the same shape when no swap can match.
// Score and moves carry over. The game ends if no playable board turns up.
func (g *Game) reshuffle() {
	cfg := m3.Config{Width: g.board.Width(), Height: g.board.Height(), NumColors: g.board.NumColors()}
	for range reshuffleAttempts {
		board, err := m3.NewBoard(cfg, g.rng)
		if err != nil {
			break
		}
		if m3.HasValidMove(board) {
			score, moves, cursor, status := g.score, g.moves, g.cursor, g.status
			sim, simLeft, last := g.simulating, g.simRemaining, g.lastResult
			g.load(board, g.rng)
			g.score, g.moves, g.cursor = score, moves, cursor
			g.simulating, g.simRemaining, g.lastResult = sim, simLeft, last
			g.status = strings.TrimSpace(status + "  No moves left, reshuffled")
			return
		}
	}
	g.gameOver = true
	g.outOfMoves = true
	g.simulating = false
}

func (g *Game) showHint() {
	a, c, ok := m3.HintSwap(g.board)
	if !ok {
		g.status = "No moves available"
		return
	}
	g.hint = &[2]m3.Coord{a, c}
	g.hintLeft = hintTicks
}

func (g *Game) toggleSimulation() {
	if g.simulating {
		g.simulating = false
		g.status = "Autoplay stopped"
		return
	}
	g.simulating = true
	g.simRemaining = g.cfg.Simulation.Moves
	g.simWait = 0
	g.selected = nil
	g.status = "Autoplay"
}

// driveSimulation starts a random swap whenever the board is idle and the
// per-move delay has passed.
func (g *Game) driveSimulation() {
	if !g.simulating || g.controller.Busy() {
		return
	}
	if g.simWait > 0 {
		g.simWait--
		return
	}

	a, c := m3.PickRandomSwapPair(g.board, g.rng)
	g.startTurn(a, c)
	g.status = "Autoplay"
	g.simWait = g.cfg.Simulation.TicksPerMove
	if g.simRemaining > 0 {
		g.simRemaining--
		if g.simRemaining == 0 {
			g.simulating = false
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.moves,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// OnTilesRemoved implements m3.Scorer. One point per removed tile.
func (g *Game) OnTilesRemoved(count int) {
	g.score += count
}

// OnMoveAttempted implements m3.Scorer.
func (g *Game) OnMoveAttempted() {
	g.moves++
}

// TileSpawned implements m3.EventSink.
func (g *Game) TileSpawned(h m3.Handle, x, y int, color m3.Color) {
	g.positions[h] = m3.C(x, y)
	g.anim.push(effectSpawn, m3.C(x, y))
}

// TileMoved implements m3.EventSink.
func (g *Game) TileMoved(h m3.Handle, fromX, fromY, toX, toY int) {
	g.positions[h] = m3.C(toX, toY)
	g.anim.push(effectMove, m3.C(toX, toY))
}

// TileRemoved implements m3.EventSink.
func (g *Game) TileRemoved(h m3.Handle) {
	c, ok := g.positions[h]
	if !ok {
		return
	}
	delete(g.positions, h)
	g.anim.push(effectRemove, c)
}
