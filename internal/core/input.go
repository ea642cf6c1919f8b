package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Move cursor up
	ActionDown            // Move cursor down
	ActionLeft            // Move cursor left
	ActionRight           // Move cursor right
	ActionConfirm         // Select the tile under the cursor
	ActionBack            // Drop the current selection
	ActionHint            // Show a swap that would match
	ActionSimulate        // Toggle random-move autoplay
	ActionRestart         // Start a new board after game over
	ActionPause           // Pause or resume
	ActionQuit            // Leave the game
)

var actionNames = [...]string{
	ActionNone:     "None",
	ActionUp:       "Up",
	ActionDown:     "Down",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionHint:     "Hint",
	ActionSimulate: "Simulate",
	ActionRestart:  "Restart",
	ActionPause:    "Pause",
	ActionQuit:     "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
