package match3

import (
	"fmt"
	"strings"
)

// Board is a fixed-size grid of cells.
// Cells are stored in row-major order: index = y*width + x, row 0 at the bottom.
type Board struct {
	width      int
	height     int
	numColors  int
	cells      []Cell
	nextHandle Handle
}

// newEmptyBoard allocates a board with every cell empty.
func newEmptyBoard(width, height, numColors int) *Board {
	return &Board{
		width:     width,
		height:    height,
		numColors: numColors,
		cells:     make([]Cell, width*height),
	}
}

// NewBoard creates a board filled with random tiles and no existing match.
// Whole boards are regenerated until one is stable.
func NewBoard(cfg Config, rng Random) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := newEmptyBoard(cfg.Width, cfg.Height, cfg.NumColors)
	b.initialize(rng)
	return b, nil
}

// NewBoardFromColors builds a board from a color matrix indexed rows[y][x],
// with rows[0] being the bottom row. The result is not checked for stability.
func NewBoardFromColors(rows [][]Color, numColors int) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty color matrix", ErrInvalidConfig)
	}
	height := len(rows)
	width := len(rows[0])
	b := newEmptyBoard(width, height, numColors)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfig, y, len(row), width)
		}
		for x, color := range row {
			if int(color) >= numColors {
				return nil, fmt.Errorf("%w: color %d at %v outside palette of %d", ErrInvalidConfig, color, C(x, y), numColors)
			}
			b.spawn(C(x, y), color)
		}
	}
	return b, nil
}

// initialize fills every cell and re-rolls the whole board while any match exists.
func (b *Board) initialize(rng Random) {
	for {
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				b.spawn(C(x, y), b.randomColor(rng))
			}
		}
		if !HasAnyMatch(b) {
			return
		}
	}
}

func (b *Board) randomColor(rng Random) Color {
	return Color(rng.Intn(b.numColors))
}

// spawn creates a new tile with a fresh handle directly in the cell at c.
func (b *Board) spawn(c Coord, color Color) *Tile {
	b.nextHandle++
	t := &Tile{Handle: b.nextHandle, Color: color, X: c.X, Y: c.Y}
	b.put(c, OccupiedCell(t))
	return t
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// NumColors returns the palette size.
func (b *Board) NumColors() int {
	return b.numColors
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

func (b *Board) index(c Coord) int {
	return c.Y*b.width + c.X
}

func (b *Board) checkBounds(c Coord) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, b.width, b.height)
	}
	return nil
}

// at returns the cell at c without bounds checking.
func (b *Board) at(c Coord) Cell {
	return b.cells[b.index(c)]
}

// put stores cell at c and keeps the tile's position in sync.
func (b *Board) put(c Coord, cell Cell) {
	if t := cell.Tile(); t != nil {
		t.X, t.Y = c.X, c.Y
	}
	b.cells[b.index(c)] = cell
}

// Get returns the cell at c.
func (b *Board) Get(c Coord) (Cell, error) {
	if err := b.checkBounds(c); err != nil {
		return Cell{}, err
	}
	return b.at(c), nil
}

// Set stores cell at c. An occupied cell's tile takes on the coordinate c.
func (b *Board) Set(c Coord, cell Cell) error {
	if err := b.checkBounds(c); err != nil {
		return err
	}
	b.put(c, cell)
	return nil
}

// Swap exchanges the contents of two cells and updates the tiles' positions.
// It does not care whether the cells are adjacent.
func (b *Board) Swap(a, c Coord) error {
	if err := b.checkBounds(a); err != nil {
		return err
	}
	if err := b.checkBounds(c); err != nil {
		return err
	}
	ca, cc := b.at(a), b.at(c)
	b.put(a, cc)
	b.put(c, ca)
	return nil
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	count := 0
	for _, cell := range b.cells {
		if !cell.Occupied() {
			count++
		}
	}
	return count
}

// ensureFull panics if any cell is empty.
func (b *Board) ensureFull() {
	for i, cell := range b.cells {
		if !cell.Occupied() {
			panic(fmt.Errorf("%w: %v", ErrEmptyCell, C(i%b.width, i/b.width)))
		}
	}
}

// resetMatched clears the transient matched flag on every tile.
func (b *Board) resetMatched() {
	for _, cell := range b.cells {
		if t := cell.Tile(); t != nil {
			t.matched = false
		}
	}
}

// Colors returns the color matrix indexed [y][x]. Empty cells read as -1.
func (b *Board) Colors() [][]int {
	rows := make([][]int, b.height)
	for y := range rows {
		rows[y] = make([]int, b.width)
		for x := range rows[y] {
			if t := b.at(C(x, y)).Tile(); t != nil {
				rows[y][x] = int(t.Color)
			} else {
				rows[y][x] = -1
			}
		}
	}
	return rows
}

// Clone returns a deep copy of the board. Tiles keep their handles.
func (b *Board) Clone() *Board {
	clone := newEmptyBoard(b.width, b.height, b.numColors)
	clone.nextHandle = b.nextHandle
	for i, cell := range b.cells {
		if t := cell.Tile(); t != nil {
			copied := *t
			clone.cells[i] = OccupiedCell(&copied)
		}
	}
	return clone
}

// Equal returns true if both boards hold the same tiles (handle and color)
// at every coordinate.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, cell := range b.cells {
		t, o := cell.Tile(), other.cells[i].Tile()
		if (t == nil) != (o == nil) {
			return false
		}
		if t != nil && (t.Handle != o.Handle || t.Color != o.Color) {
			return false
		}
	}
	return true
}

// String renders the board with the top row first, one symbol per cell
// and '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			if t := b.at(C(x, y)).Tile(); t != nil {
				sb.WriteRune(t.Color.Rune())
			} else {
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
