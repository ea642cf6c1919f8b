package match3

import m3 "github.com/willfaustino/funtomatch/internal/match3"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StateSimulating  GameStateType = "simulating"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	Moves     int
	MaxMoves  int
	Board     [][]int // [y][x] palette indexes, row 0 at the bottom
	Cursor    m3.Coord
	Selected  *m3.Coord
	TurnState string
	Animating bool
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.simulating:
		state = StateSimulating
	case g.controller.Busy():
		state = StateResolving
	}

	var selected *m3.Coord
	if g.selected != nil {
		c := *g.selected
		selected = &c
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Moves:     g.moves,
		MaxMoves:  g.cfg.Rules.MaxMoves,
		Board:     g.board.Colors(),
		Cursor:    g.cursor,
		Selected:  selected,
		TurnState: g.controller.State().String(),
		Animating: g.anim.active(),
		State:     state,
	}
}
