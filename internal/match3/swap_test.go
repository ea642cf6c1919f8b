package match3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willfaustino/funtomatch/internal/match3"
)

func TestIsAdjacent(t *testing.T) {
	tests := []struct {
		name     string
		a, b     match3.Coord
		expected bool
	}{
		{"right neighbour", match3.C(1, 1), match3.C(2, 1), true},
		{"left neighbour", match3.C(1, 1), match3.C(0, 1), true},
		{"upper neighbour", match3.C(1, 1), match3.C(1, 2), true},
		{"lower neighbour", match3.C(1, 1), match3.C(1, 0), true},
		{"same cell", match3.C(1, 1), match3.C(1, 1), false},
		{"diagonal", match3.C(1, 1), match3.C(2, 2), false},
		{"two apart", match3.C(0, 0), match3.C(2, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, match3.IsAdjacent(tc.a, tc.b))
			assert.Equal(t, tc.expected, match3.IsAdjacent(tc.b, tc.a))
		})
	}
}

func TestTrySwapRejectsNonAdjacent(t *testing.T) {
	b := swapScenarioBoard(t)
	before := b.Clone()

	for _, c := range []match3.Coord{match3.C(1, 1), match3.C(2, 0), match3.C(0, 0), match3.C(3, 3)} {
		err := match3.TrySwap(b, match3.C(0, 0), c)
		assert.ErrorIs(t, err, match3.ErrNotAdjacent, "swap with %v", c)
		assert.True(t, b.Equal(before))
	}
}

func TestTrySwapOutOfBounds(t *testing.T) {
	b := swapScenarioBoard(t)
	err := match3.TrySwap(b, match3.C(3, 0), match3.C(4, 0))
	assert.ErrorIs(t, err, match3.ErrOutOfBounds)
}

func TestTrySwapAndRevert(t *testing.T) {
	b := swapScenarioBoard(t)
	before := b.Clone()
	left, right := tileAt(t, b, 0, 0), tileAt(t, b, 1, 0)

	require.NoError(t, match3.TrySwap(b, match3.C(0, 0), match3.C(1, 0)))
	assert.Equal(t, right, tileAt(t, b, 0, 0))
	assert.Equal(t, left, tileAt(t, b, 1, 0))
	assert.Equal(t, match3.C(1, 0), left.Coord())

	require.NoError(t, match3.RevertSwap(b, match3.C(0, 0), match3.C(1, 0)))
	assert.True(t, b.Equal(before))
	assert.Equal(t, match3.C(0, 0), left.Coord())
}
