// Package match3 implements the grid state machine of a match-3 tile puzzle:
// the board model, match detection, swap validation, gravity refill and the
// turn controller that ties them together.
//
// The package is UI-agnostic and has no external dependencies. Presentation
// and scoring are reached through the EventSink and Scorer interfaces, and
// all randomness comes from an injected Random source so that games can be
// replayed from a seed.
package match3
