package match3

// Axis is the direction of a match run.
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// MatchGroup is a run of at least MinMatchSize same-colored tiles along one
// axis. Tiles are ordered from the low end of the run to the high end.
type MatchGroup struct {
	Axis  Axis
	Color Color
	Tiles []*Tile
}

// FindMatchGroups scans the board column by column and returns every group
// found from an unclaimed seed tile.
//
// For each seed not yet flagged as matched, the horizontal run through it is
// measured first, then the vertical run. A run of MinMatchSize or more is
// recorded and its tiles are flagged. Flags only stop a tile from acting as
// a seed: runs extend through flagged neighbours of the same color, so the
// two arms of a plus or T shape are both reported and share their center.
func FindMatchGroups(b *Board) []MatchGroup {
	b.resetMatched()

	var groups []MatchGroup
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			seed := b.at(C(x, y)).Tile()
			if seed == nil || seed.matched {
				continue
			}
			for _, axis := range [...]Axis{AxisHorizontal, AxisVertical} {
				run := b.run(seed, axis)
				if len(run) < MinMatchSize {
					continue
				}
				for _, t := range run {
					t.matched = true
				}
				groups = append(groups, MatchGroup{Axis: axis, Color: seed.Color, Tiles: run})
			}
		}
	}
	return groups
}

// run returns the maximal contiguous run of tiles sharing seed's color along
// axis, walking outward from the seed in both directions.
func (b *Board) run(seed *Tile, axis Axis) []*Tile {
	low, high := DirLeft, DirRight
	if axis == AxisVertical {
		low, high = DirDown, DirUp
	}

	before := b.walk(seed, low)
	after := b.walk(seed, high)

	run := make([]*Tile, 0, len(before)+1+len(after))
	for i := len(before) - 1; i >= 0; i-- {
		run = append(run, before[i])
	}
	run = append(run, seed)
	return append(run, after...)
}

// walk collects same-colored tiles from seed in direction d, stopping at the
// first empty cell, color change or board edge.
func (b *Board) walk(seed *Tile, d Dir) []*Tile {
	var tiles []*Tile
	c := seed.Coord().Step(d)
	for b.InBounds(c) {
		t := b.at(c).Tile()
		if t == nil || t.Color != seed.Color {
			break
		}
		tiles = append(tiles, t)
		c = c.Step(d)
	}
	return tiles
}

// FindAllMatches returns the set of tiles belonging to any match group, in
// detection order and without duplicates.
func FindAllMatches(b *Board) []*Tile {
	groups := FindMatchGroups(b)
	if len(groups) == 0 {
		return nil
	}

	seen := make(map[*Tile]bool)
	var tiles []*Tile
	for _, g := range groups {
		for _, t := range g.Tiles {
			if seen[t] {
				continue
			}
			seen[t] = true
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// HasAnyMatch reports whether the board contains at least one match.
func HasAnyMatch(b *Board) bool {
	return len(FindAllMatches(b)) > 0
}
