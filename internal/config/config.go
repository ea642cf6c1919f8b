// Package config loads the YAML settings for the match-3 game and applies
// difficulty presets and command-line overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/willfaustino/funtomatch/internal/match3"
)

// ErrInvalid is returned when a loaded config cannot be played.
var ErrInvalid = errors.New("config: invalid")

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board      Match3Board      `yaml:"board"`
	Rules      Match3Rules      `yaml:"rules"`
	Simulation Match3Simulation `yaml:"simulation"`
}

// Match3Board defines the grid.
type Match3Board struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	NumColors int `yaml:"num_colors"`
}

// Match3Rules defines session limits.
type Match3Rules struct {
	MaxMoves int `yaml:"max_moves"` // 0 = unlimited
}

// Match3Simulation defines random-move autoplay.
type Match3Simulation struct {
	Moves        int `yaml:"moves"`          // Moves per autoplay run
	DelayMS      int `yaml:"delay_ms"`       // Pause between headless moves
	TicksPerMove int `yaml:"ticks_per_move"` // Pause between moves in the TUI
}

// ToCore converts the board section into a core board config.
func (c Match3Config) ToCore(seed int64) match3.Config {
	return match3.Config{
		Width:     c.Board.Width,
		Height:    c.Board.Height,
		NumColors: c.Board.NumColors,
		Seed:      seed,
	}
}

// Validate checks the board against core limits and the remaining sections
// for negative values.
func (c Match3Config) Validate() error {
	if err := c.ToCore(0).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch {
	case c.Rules.MaxMoves < 0:
		return fmt.Errorf("%w: rules.max_moves %d is negative", ErrInvalid, c.Rules.MaxMoves)
	case c.Simulation.Moves < 0:
		return fmt.Errorf("%w: simulation.moves %d is negative", ErrInvalid, c.Simulation.Moves)
	case c.Simulation.DelayMS < 0:
		return fmt.Errorf("%w: simulation.delay_ms %d is negative", ErrInvalid, c.Simulation.DelayMS)
	case c.Simulation.TicksPerMove < 1:
		return fmt.Errorf("%w: simulation.ticks_per_move must be at least 1", ErrInvalid)
	}
	return nil
}

// Overrides holds command-line values that replace file settings.
// Zero fields are ignored.
type Overrides struct {
	Width     int
	Height    int
	NumColors int
	MaxMoves  int
}

// Apply copies the non-zero overrides into cfg.
func (o Overrides) Apply(cfg *Match3Config) {
	if o.Width > 0 {
		cfg.Board.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Board.Height = o.Height
	}
	if o.NumColors > 0 {
		cfg.Board.NumColors = o.NumColors
	}
	if o.MaxMoves > 0 {
		cfg.Rules.MaxMoves = o.MaxMoves
	}
}
