package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/willfaustino/funtomatch/internal/storage"
)

func TestScoreboardPages(t *testing.T) {
	store := openStore(t)
	for _, s := range []int{30, 120, 75} {
		if _, err := store.SaveScore(stubGameID, s); err != nil {
			t.Fatalf("SaveScore() error = %v", err)
		}
	}
	runID, err := store.SaveRun(storage.SimulationRun{Seed: 3, Width: 8, Height: 8, NumColors: 5, Moves: 50, Score: 90, Cascades: 31})
	if err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	last := len(m.pages) - 1
	if !m.pages[last].runs() {
		t.Fatal("last page is not the run history")
	}

	// Move to the stub game's page.
	for m.page().gameID != stubGameID {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	if len(m.scores) != 3 || m.scores[0].Score != 120 {
		t.Errorf("scores = %+v", m.scores)
	}
	view := stripANSI(m.View())
	for _, want := range []string{"HIGH SCORES - Stub", "Best: 120", "Games: 3", "Average: 75.0"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	// shift+tab from the first page wraps to the runs page.
	m.cursor = 0
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if !m.page().runs() {
		t.Fatalf("page = %+v, want runs", m.page())
	}
	if len(m.runs) != 1 || m.runs[0].ID != runID {
		t.Errorf("runs = %+v", m.runs)
	}
	view = stripANSI(m.View())
	if !strings.Contains(view, "SIMULATION RUNS") || !strings.Contains(view, shortID(runID)) {
		t.Errorf("runs view missing data:\n%s", view)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if m.showSidebar {
		t.Error("sidebar shown on a narrow terminal")
	}
	if view := m.View(); !strings.Contains(view, "Score database unavailable") {
		t.Errorf("View() = %q", view)
	}

	next, cmd := m.Update(runeKey('q'))
	if !isQuit(cmd) || !next.(ScoreboardModel).IsQuitting() {
		t.Error("q did not quit the scoreboard")
	}
}

func TestShortIDAndTruncate(t *testing.T) {
	if got := shortID("1b4e28ba-2fa1-11d2-883f-0016d3cca427"); got != "1b4e28ba" {
		t.Errorf("shortID() = %q", got)
	}
	if got := shortID("plain"); got != "plain" {
		t.Errorf("shortID(plain) = %q", got)
	}
	if got := truncate("Simulation Runs", 8); got != "Simulat." {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("Stub", 8); got != "Stub" {
		t.Errorf("truncate(short) = %q", got)
	}
}
