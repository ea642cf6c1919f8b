package match3

import "fmt"

// Limits on board construction.
const (
	MinSize      = 3
	MaxSize      = 32
	MinColors    = 3
	MaxColors    = 16
	MinMatchSize = 3 // Shortest run that counts as a match

	// maxExpectedRuns caps the expected number of three-tile runs on a
	// random fill. Whole-board regeneration needs roughly e^runs attempts.
	maxExpectedRuns = 8.0
)

// Config holds the parameters fixed at board construction.
type Config struct {
	Width     int   // Number of columns
	Height    int   // Number of rows
	NumColors int   // Palette size
	Seed      int64 // RNG seed, 0 means time-based
}

// DefaultConfig returns the classic 8x8 board with five colors.
func DefaultConfig() Config {
	return Config{
		Width:     8,
		Height:    8,
		NumColors: 5,
	}
}

// Validate reports whether the config can produce a stable board.
func (c Config) Validate() error {
	if c.Width < MinSize || c.Width > MaxSize {
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrInvalidConfig, c.Width, MinSize, MaxSize)
	}
	if c.Height < MinSize || c.Height > MaxSize {
		return fmt.Errorf("%w: height %d not in [%d, %d]", ErrInvalidConfig, c.Height, MinSize, MaxSize)
	}
	if c.NumColors < MinColors || c.NumColors > MaxColors {
		return fmt.Errorf("%w: num_colors %d not in [%d, %d]", ErrInvalidConfig, c.NumColors, MinColors, MaxColors)
	}
	if runs := c.expectedRuns(); runs > maxExpectedRuns {
		return fmt.Errorf("%w: %dx%d board needs more than %d colors to settle", ErrInvalidConfig, c.Width, c.Height, c.NumColors)
	}
	return nil
}

// expectedRuns is the mean number of three-tile windows sharing one color
// on a uniformly random fill.
func (c Config) expectedRuns() float64 {
	windows := c.Height*(c.Width-MinMatchSize+1) + c.Width*(c.Height-MinMatchSize+1)
	return float64(windows) / float64(c.NumColors*c.NumColors)
}
