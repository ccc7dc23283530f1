package types

import "slices"

// Proposal records one proposal made during a round.
type Proposal struct {
	// PlayerID is the proposing player.
	PlayerID string `json:"playerId"`

	// TeamID is the team proposed to.
	TeamID string `json:"teamId"`

	// Outcome is what happened to the proposal.
	Outcome Outcome `json:"outcome"`

	// Evicted is the incumbent freed by the proposal (OutcomeDisplaced only).
	Evicted string `json:"evicted,omitempty"`
}

// RoundReport summarizes a single round of the matching loop.
type RoundReport struct {
	// Round is the 1-based round number.
	Round int `json:"round"`

	// Proposals lists every proposal of the round in processing order.
	Proposals []Proposal `json:"proposals"`

	// Exhausted lists players found out of preferences during the round.
	Exhausted []string `json:"exhausted,omitempty"`

	// FreeAfter is the number of free players once the round completed.
	FreeAfter int `json:"freeAfter"`

	// Rosters is a snapshot of every roster at the end of the round, keyed by team ID.
	Rosters map[string][]string `json:"rosters"`
}

// TeamResult is the final state of a single team.
type TeamResult struct {
	// ID is the team ID.
	ID string `json:"id"`

	// Capacity is the resolved roster capacity.
	Capacity int `json:"capacity"`

	// Roster lists matched players, best fit first.
	Roster []string `json:"roster"`

	// Totals is the sum of the roster members' skills.
	Totals Attributes `json:"totals"`
}

// Result is the outcome of a matching run.
type Result struct {
	// RunID uniquely identifies the run in logs and metrics.
	RunID string `json:"runId"`

	// Rounds holds one report per executed round.
	Rounds []RoundReport `json:"rounds"`

	// Teams holds the final rosters sorted by team ID.
	Teams []TeamResult `json:"teams"`

	// Assignment maps each matched player ID to its team ID.
	Assignment map[string]string `json:"assignment"`

	// Unmatched lists players that exhausted their preferences, sorted by ID.
	Unmatched []string `json:"unmatched,omitempty"`

	// Infeasible is true when total capacity is below the player count.
	Infeasible bool `json:"infeasible,omitempty"`

	// Underfilled lists teams whose roster ended below capacity, sorted by ID.
	Underfilled []string `json:"underfilled,omitempty"`

	// Fingerprint is a digest of the final rosters; equal inputs yield equal fingerprints.
	Fingerprint uint64 `json:"fingerprint"`
}

// Complete reports whether every player was matched.
func (r *Result) Complete() bool {
	return len(r.Unmatched) == 0
}

// Team returns the result of a team. The boolean is false for unknown teams.
func (r *Result) Team(teamID string) (TeamResult, bool) {
	i, ok := slices.BinarySearchFunc(r.Teams, teamID, func(t TeamResult, id string) int {
		switch {
		case t.ID < id:
			return -1
		case t.ID > id:
			return 1
		default:
			return 0
		}
	})
	if !ok {
		return TeamResult{}, false
	}

	return r.Teams[i], true
}

// Roster returns a copy of a team's final roster, best fit first.
func (r *Result) Roster(teamID string) []string {
	t, ok := r.Team(teamID)
	if !ok {
		return nil
	}

	return slices.Clone(t.Roster)
}

// Totals returns the aggregate skill totals of a team's final roster.
func (r *Result) Totals(teamID string) Attributes {
	t, _ := r.Team(teamID)
	return t.Totals
}

// TeamOf returns the team a player was matched to. The boolean is false for unmatched players.
func (r *Result) TeamOf(playerID string) (string, bool) {
	teamID, ok := r.Assignment[playerID]
	return teamID, ok
}
