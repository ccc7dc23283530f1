package types

import "slices"

// Player is an agent to be matched to exactly one team.
//
// Players are created once from input and never mutated by the matching
// engine; all matching state lives in the engine for the duration of a run.
type Player struct {
	// ID uniquely identifies the player.
	ID string `json:"id" yaml:"id"`

	// Skills is the player's skill vector. All components must be non-negative.
	Skills Attributes `json:"skills" yaml:"skills"`

	// Preferences is the player's subjective ranking over teams, index 0 being
	// the most preferred. It must be a permutation of all team IDs.
	Preferences []string `json:"preferences" yaml:"preferences"`
}

// Clone returns a deep copy of the player.
func (p Player) Clone() Player {
	p.Preferences = slices.Clone(p.Preferences)

	return p
}
