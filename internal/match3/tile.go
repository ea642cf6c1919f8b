package match3

import "fmt"

// Color is a palette index in [0, NumColors).
type Color uint8

// Default palette, matching the five colors of the classic board.
const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorYellow
	ColorMagenta
)

var colorNames = [...]string{"red", "blue", "green", "yellow", "magenta"}

// String returns the palette name for the first five colors.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color%d", c)
}

// Rune returns a single-character symbol for ASCII dumps.
func (c Color) Rune() rune {
	const symbols = "RBGYM56789ABCDEF"
	if int(c) < len(symbols) {
		return rune(symbols[c])
	}
	return '?'
}

// Handle is an opaque identifier for a tile, issued by the board.
// Presentation layers use it to track the visual object for a tile.
type Handle uint64

// Tile is a colored piece occupying one cell.
type Tile struct {
	Handle Handle
	Color  Color
	X, Y   int // Always equal to the coordinate of the cell holding the tile

	matched bool // Transient, valid only during one detection pass
}

// Coord returns the tile's position.
func (t *Tile) Coord() Coord {
	return C(t.X, t.Y)
}

// Cell is a slot on the board: either occupied by a tile or empty.
// The zero value is empty.
type Cell struct {
	tile *Tile
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{}
}

// OccupiedCell returns a cell holding t.
func OccupiedCell(t *Tile) Cell {
	return Cell{tile: t}
}

// Occupied reports whether the cell holds a tile.
func (c Cell) Occupied() bool {
	return c.tile != nil
}

// Tile returns the tile in the cell, or nil if the cell is empty.
func (c Cell) Tile() *Tile {
	return c.tile
}
