package match3

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("match3: coordinate out of bounds")

	// ErrNotAdjacent is returned when a swap is requested between cells
	// that are not orthogonal neighbours. The board is left untouched.
	ErrNotAdjacent = errors.New("match3: cells are not adjacent")

	// ErrEmptyCell signals a broken rest invariant: a cell is empty after
	// the board should have been refilled. The core panics with it.
	ErrEmptyCell = errors.New("match3: empty cell at rest")

	// ErrTurnInProgress is returned when a swap is requested while another
	// turn has not yet returned to Idle.
	ErrTurnInProgress = errors.New("match3: turn in progress")

	// ErrInvalidConfig is returned for board dimensions or palette sizes
	// that cannot produce a playable board.
	ErrInvalidConfig = errors.New("match3: invalid config")
)
