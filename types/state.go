package types

// PlayerState represents a player's matching lifecycle state.
//
// States follow this progression during a run:
//
//	PlayerFree → PlayerMatched → (evicted) PlayerFree → ...
//
// PlayerExhausted is terminal: the player proposed to every team on its
// preference list and holds no roster slot.
type PlayerState int

const (
	// PlayerFree indicates the player proposes in the next round.
	PlayerFree PlayerState = iota

	// PlayerMatched indicates the player holds a roster slot.
	PlayerMatched

	// PlayerExhausted indicates the player ran out of teams to propose to.
	PlayerExhausted
)

// String returns the string representation of the state.
func (s PlayerState) String() string {
	switch s {
	case PlayerFree:
		return "Free"
	case PlayerMatched:
		return "Matched"
	case PlayerExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a single proposal.
type Outcome int

const (
	// OutcomeAdmitted means the proposer took a free roster slot.
	OutcomeAdmitted Outcome = iota

	// OutcomeDisplaced means the proposer was admitted and an incumbent was evicted.
	OutcomeDisplaced

	// OutcomeRejected means the team was full and preferred every incumbent.
	OutcomeRejected
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAdmitted:
		return "admitted"
	case OutcomeDisplaced:
		return "displaced"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MarshalText encodes the outcome as its string form.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
