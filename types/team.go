package types

// Team is a capacity-limited group filled with players.
type Team struct {
	// ID uniquely identifies the team.
	ID string `json:"id" yaml:"id"`

	// Weights is the team strategy used to compute player fit.
	Weights Attributes `json:"weights" yaml:"weights"`

	// Capacity is the fixed number of roster slots.
	// Zero means the configured default capacity applies.
	Capacity int `json:"capacity,omitempty" yaml:"capacity,omitempty"`
}

// Dataset holds the complete input of a matching run.
type Dataset struct {
	Players []Player `json:"players" yaml:"players"`
	Teams   []Team   `json:"teams" yaml:"teams"`
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}

	out := &Dataset{
		Players: make([]Player, len(d.Players)),
		Teams:   make([]Team, len(d.Teams)),
	}
	for i, p := range d.Players {
		out.Players[i] = p.Clone()
	}
	copy(out.Teams, d.Teams)

	return out
}
