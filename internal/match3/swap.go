package match3

import "fmt"

// IsAdjacent reports whether two coordinates are orthogonal neighbours.
func IsAdjacent(a, b Coord) bool {
	return a.Manhattan(b) == 1
}

// TrySwap exchanges the tiles at a and c if they are adjacent.
// Whether the swap produces a match is for the caller to decide.
func TrySwap(b *Board, a, c Coord) error {
	if err := b.checkBounds(a); err != nil {
		return err
	}
	if err := b.checkBounds(c); err != nil {
		return err
	}
	if !IsAdjacent(a, c) {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, c)
	}
	return b.Swap(a, c)
}

// RevertSwap undoes a swap between a and c. A swap is its own inverse.
func RevertSwap(b *Board, a, c Coord) error {
	return b.Swap(a, c)
}
