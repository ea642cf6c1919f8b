package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration: an 8x8 board with
// five colors and unlimited moves.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: Match3Board{
			Width:     8,
			Height:    8,
			NumColors: 5,
		},
		Simulation: Match3Simulation{
			Moves:        50,
			DelayMS:      0,
			TicksPerMove: 20,
		},
	}
}
