package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/willfaustino/funtomatch/internal/core"
	"github.com/willfaustino/funtomatch/internal/storage"
)

// stubGame records the calls the model makes.
type stubGame struct {
	resets  int
	steps   int
	last    core.InputFrame
	state   core.GameState
	preset  string
	resized [2]int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	// The model reuses its frame, so keep a copy.
	g.last = core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			g.last.Set(a)
		}
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

// resizingGame also follows terminal resizes.
type resizingGame struct{ stubGame }

func (g *resizingGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *resizingGame) SetPreset(name string) { g.preset = name }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})
	if m.config.Seed == 0 {
		t.Error("seed not filled in")
	}
	if m.config.TickRate != core.DefaultConfig().TickRate {
		t.Errorf("TickRate = %d, want %d", m.config.TickRate, core.DefaultConfig().TickRate)
	}
}

func TestModelTickForwardsInput(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.DefaultConfig())
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned no tick command")
	}
	if g.resets != 1 {
		t.Fatalf("resets = %d, want 1", g.resets)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	next, cmd := next.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if g.steps != 1 || !g.last.Has(core.ActionRight) {
		t.Errorf("steps = %d, last input = %v", g.steps, g.last)
	}

	next.Update(TickMsg{})
	if g.last.Has(core.ActionRight) {
		t.Error("input frame not cleared between ticks")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &stubGame{}
	m := NewModel(g, store, core.DefaultConfig())
	m.Init()

	g.state = core.GameState{Score: 42, GameOver: true}
	var next tea.Model = m
	for range 3 {
		next, _ = next.Update(TickMsg{})
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 42 {
		t.Errorf("scores = %+v, want one entry of 42", scores)
	}

	// Quitting after the save must not store the board twice.
	next.Update(runeKey('q'))
	scores, _ = store.TopScores("stub", 10)
	if len(scores) != 1 {
		t.Errorf("got %d scores after quit, want 1", len(scores))
	}
}

func TestModelQuitSavesRunningScore(t *testing.T) {
	store := openStore(t)
	g := &stubGame{}
	m := NewModel(g, store, core.DefaultConfig())
	m.Init()

	g.state = core.GameState{Score: 7}
	next, _ := m.Update(TickMsg{})
	next, cmd := next.Update(runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q did not quit the program")
	}
	if !next.(Model).Quitting() {
		t.Error("Quitting() = false after q")
	}
	if next.View() != "" {
		t.Error("View() not empty after quit")
	}

	high, err := store.HighScore("stub")
	if err != nil || high != 7 {
		t.Errorf("HighScore() = %d, %v; want 7", high, err)
	}
}

func TestModelEmbeddedQuitDoesNotExit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.DefaultConfig())
	m.embedded = true

	next, cmd := m.Update(runeKey('q'))
	if isQuit(cmd) {
		t.Error("embedded model sent tea.Quit")
	}
	if !next.(Model).Quitting() {
		t.Error("embedded model not marked as quitting")
	}
	if _, cmd := next.Update(TickMsg{}); cmd != nil {
		t.Error("tick loop kept running after quit")
	}
}

func TestModelRestart(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.DefaultConfig())
	m.Init()
	seed := m.config.Seed

	next, _ := m.Update(runeKey('r'))
	next, _ = next.Update(TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if g.steps != 0 {
		t.Errorf("restart tick also stepped the game")
	}
	if next.(Model).config.Seed == seed {
		t.Error("restart kept the old seed")
	}
}

func TestModelResize(t *testing.T) {
	t.Run("resizer keeps the game", func(t *testing.T) {
		g := &resizingGame{}
		m := NewModel(g, nil, core.DefaultConfig())
		m.Init()

		m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
		if g.resized != [2]int{100, 30} {
			t.Errorf("resized = %v", g.resized)
		}
		if g.resets != 1 {
			t.Errorf("resets = %d, want 1", g.resets)
		}
	})

	t.Run("plain game is reset", func(t *testing.T) {
		g := &stubGame{}
		m := NewModel(g, nil, core.DefaultConfig())
		m.Init()

		next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
		if g.resets != 2 {
			t.Errorf("resets = %d, want 2", g.resets)
		}
		if got := next.(Model).screen.Width(); got != 50 {
			t.Errorf("screen width = %d, want 50", got)
		}
	})
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.RuntimeConfig{ScreenW: 6, ScreenH: 1})
	if got := stripANSI(m.View()); got != "stub  " {
		t.Errorf("View() = %q, want %q", got, "stub  ")
	}
}
