package match3

// HintSwap returns the first adjacent swap, scanning column by column, that
// would create a match. The board is not modified.
func HintSwap(b *Board) (Coord, Coord, bool) {
	trial := b.Clone()
	for x := 0; x < trial.width; x++ {
		for y := 0; y < trial.height; y++ {
			a := C(x, y)
			for _, d := range [...]Dir{DirRight, DirUp} {
				c := a.Step(d)
				if !trial.InBounds(c) {
					continue
				}
				trial.Swap(a, c) //nolint:errcheck // both coordinates checked above
				matched := HasAnyMatch(trial)
				trial.Swap(a, c) //nolint:errcheck // both coordinates checked above
				if matched {
					return a, c, true
				}
			}
		}
	}
	return Coord{}, Coord{}, false
}

// HasValidMove reports whether any adjacent swap would create a match.
func HasValidMove(b *Board) bool {
	_, _, ok := HintSwap(b)
	return ok
}
