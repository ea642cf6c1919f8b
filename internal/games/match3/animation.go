package match3

import m3 "github.com/willfaustino/funtomatch/internal/match3"

// Effect durations in ticks (~60 ticks per second).
const (
	moveEffectTicks   = 8
	spawnEffectTicks  = 10
	removeEffectTicks = 12
)

type effectKind uint8

const (
	effectMove effectKind = iota
	effectSpawn
	effectRemove
)

// cellEffect highlights one board cell for a few ticks after an engine event.
type cellEffect struct {
	kind effectKind
	left int
}

// animator keeps the most recent effect per cell. A newer event on the same
// cell replaces the older one, so a refilled cell stops flashing as removed.
type animator struct {
	effects map[m3.Coord]cellEffect
}

func newAnimator() *animator {
	return &animator{effects: make(map[m3.Coord]cellEffect)}
}

func (a *animator) push(kind effectKind, c m3.Coord) {
	ticks := moveEffectTicks
	switch kind {
	case effectSpawn:
		ticks = spawnEffectTicks
	case effectRemove:
		ticks = removeEffectTicks
	}
	a.effects[c] = cellEffect{kind: kind, left: ticks}
}

// update ages every effect by one tick and drops expired ones.
func (a *animator) update() {
	for c, e := range a.effects {
		e.left--
		if e.left <= 0 {
			delete(a.effects, c)
			continue
		}
		a.effects[c] = e
	}
}

func (a *animator) at(c m3.Coord) (cellEffect, bool) {
	e, ok := a.effects[c]
	return e, ok
}

func (a *animator) active() bool {
	return len(a.effects) > 0
}
