package match3

// Scorer receives score and move-count updates from the turn controller.
type Scorer interface {
	// OnTilesRemoved is called once per removal pass with the number of
	// tiles removed in that pass.
	OnTilesRemoved(count int)

	// OnMoveAttempted is called once for every adjacent swap, whether or
	// not it produced a match.
	OnMoveAttempted()
}

// EventSink receives the facts a presentation layer needs to animate the
// board. Timing and easing are entirely up to the sink.
type EventSink interface {
	// TileSpawned reports a new tile settled at (x, y). Spawned tiles enter
	// visually from row Height of the board.
	TileSpawned(h Handle, x, y int, color Color)

	// TileMoved reports a tile moving directly from one cell to another.
	TileMoved(h Handle, fromX, fromY, toX, toY int)

	// TileRemoved reports that a tile left the board.
	TileRemoved(h Handle)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) TileSpawned(Handle, int, int, Color)  {}
func (NopSink) TileMoved(Handle, int, int, int, int) {}
func (NopSink) TileRemoved(Handle)                   {}

// Tally is a Scorer that keeps running totals.
type Tally struct {
	Score int
	Moves int
}

// OnTilesRemoved adds count to the score.
func (t *Tally) OnTilesRemoved(count int) {
	t.Score += count
}

// OnMoveAttempted increments the move counter.
func (t *Tally) OnMoveAttempted() {
	t.Moves++
}

// EventKind identifies the type of a recorded event.
type EventKind uint8

const (
	EventSpawned EventKind = iota
	EventMoved
	EventRemoved
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventMoved:
		return "moved"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event is a recorded presentation event.
type Event struct {
	Kind   EventKind
	Handle Handle
	From   Coord // Moved only
	To     Coord // Spawned and moved
	Color  Color // Spawned only
}

// EventLog is an EventSink that records every event in order.
type EventLog struct {
	Events []Event
}

func (l *EventLog) TileSpawned(h Handle, x, y int, color Color) {
	l.Events = append(l.Events, Event{Kind: EventSpawned, Handle: h, To: C(x, y), Color: color})
}

func (l *EventLog) TileMoved(h Handle, fromX, fromY, toX, toY int) {
	l.Events = append(l.Events, Event{Kind: EventMoved, Handle: h, From: C(fromX, fromY), To: C(toX, toY)})
}

func (l *EventLog) TileRemoved(h Handle) {
	l.Events = append(l.Events, Event{Kind: EventRemoved, Handle: h})
}

// Count returns how many events of the given kind were recorded.
func (l *EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range l.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded events.
func (l *EventLog) Reset() {
	l.Events = l.Events[:0]
}
