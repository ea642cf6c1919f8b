package match3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/willfaustino/funtomatch/internal/match3"
)

// Palette shorthands for hand-built boards.
const (
	R = match3.ColorRed
	B = match3.ColorBlue
	G = match3.ColorGreen
	Y = match3.ColorYellow
	M = match3.ColorMagenta
)

// scriptRand replays a fixed sequence of values, reduced modulo n.
// Once exhausted it keeps returning 0.
type scriptRand struct {
	values []int
	next   int
}

func script(values ...int) *scriptRand {
	return &scriptRand{values: values}
}

func (r *scriptRand) Intn(n int) int {
	if r.next >= len(r.values) {
		return 0
	}
	v := r.values[r.next]
	r.next++
	return v % n
}

// boardFrom builds a five-color board from rows listed bottom row first.
func boardFrom(t *testing.T, rows ...[]match3.Color) *match3.Board {
	t.Helper()
	b, err := match3.NewBoardFromColors(rows, 5)
	require.NoError(t, err)
	return b
}

// stripedRows returns a w x h color matrix without any run longer than one,
// using blue, green and yellow only.
func stripedRows(w, h int) [][]match3.Color {
	rows := make([][]match3.Color, h)
	for y := range rows {
		rows[y] = make([]match3.Color, w)
		for x := range rows[y] {
			rows[y][x] = match3.Color(1 + (x+y)%3)
		}
	}
	return rows
}

// swapScenarioBoard is a stable 4x4 board where swapping (0,0) and (1,0)
// lines up three reds on the bottom row.
func swapScenarioBoard(t *testing.T) *match3.Board {
	t.Helper()
	return boardFrom(t,
		[]match3.Color{R, B, R, R},
		[]match3.Color{B, G, Y, G},
		[]match3.Color{G, Y, B, Y},
		[]match3.Color{Y, R, G, B},
	)
}

func requireRest(t *testing.T, b *match3.Board) {
	t.Helper()
	require.Zero(t, b.EmptyCount(), "board has empty cells:\n%s", b)
	require.False(t, match3.HasAnyMatch(b), "board is not stable:\n%s", b)
}

func tileAt(t *testing.T, b *match3.Board, x, y int) *match3.Tile {
	t.Helper()
	cell, err := b.Get(match3.C(x, y))
	require.NoError(t, err)
	require.True(t, cell.Occupied(), "cell (%d,%d) is empty", x, y)
	return cell.Tile()
}
