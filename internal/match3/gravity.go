package match3

import "fmt"

// CompactColumn settles column x after removal. Rows are visited bottom to
// top; each empty row either receives the nearest tile above it, moved
// directly to its final row, or a newly spawned tile when nothing is left
// above.
func CompactColumn(b *Board, x int, rng Random, sink EventSink) error {
	if x < 0 || x >= b.width {
		return fmt.Errorf("%w: column %d on %dx%d board", ErrOutOfBounds, x, b.width, b.height)
	}
	if sink == nil {
		sink = NopSink{}
	}

	for y := 0; y < b.height; y++ {
		dst := C(x, y)
		if b.at(dst).Occupied() {
			continue
		}

		if src, ok := b.nearestAbove(dst); ok {
			cell := b.at(src)
			b.put(src, EmptyCell())
			b.put(dst, cell)
			sink.TileMoved(cell.Tile().Handle, src.X, src.Y, dst.X, dst.Y)
			continue
		}

		row := b.lowestEmpty(x)
		t := b.spawn(C(x, row), b.randomColor(rng))
		sink.TileSpawned(t.Handle, t.X, t.Y, t.Color)
	}
	return nil
}

// nearestAbove finds the closest occupied cell above c in the same column.
func (b *Board) nearestAbove(c Coord) (Coord, bool) {
	for y := c.Y + 1; y < b.height; y++ {
		above := C(c.X, y)
		if b.at(above).Occupied() {
			return above, true
		}
	}
	return Coord{}, false
}

// lowestEmpty scans column x from the top down and returns the lowest empty
// row, or -1 if the column is full.
func (b *Board) lowestEmpty(x int) int {
	lowest := -1
	for y := b.height - 1; y >= 0; y-- {
		if !b.at(C(x, y)).Occupied() {
			lowest = y
		}
	}
	return lowest
}

// Refill compacts every column, left to right, and then asserts that no
// empty cell remains.
func Refill(b *Board, rng Random, sink EventSink) error {
	for x := 0; x < b.width; x++ {
		if err := CompactColumn(b, x, rng, sink); err != nil {
			return err
		}
	}
	b.ensureFull()
	return nil
}
