// Package stability verifies that a matching has no blocking pair.
package stability

import (
	"fmt"

	"github.com/philipjlin/TeamMatching/types"
)

// BlockingPair is a player and team that would both rather be matched together.
type BlockingPair struct {
	// PlayerID is the player preferring TeamID to its own assignment.
	PlayerID string

	// TeamID is the team that would accept the player.
	TeamID string

	// Over is the roster member the team ranks below the player,
	// or "" when the team has a free slot.
	Over string
}

// String implements fmt.Stringer.
func (b BlockingPair) String() string {
	if b.Over == "" {
		return fmt.Sprintf("%s→%s (free slot)", b.PlayerID, b.TeamID)
	}

	return fmt.Sprintf("%s→%s (over %s)", b.PlayerID, b.TeamID, b.Over)
}

// Check returns every blocking pair of a matching.
//
// A pair (p, t) blocks when p ranks t above its own team (or p is unmatched)
// and t either has a free slot or holds a player it ranks below p. For each
// such pair the reported Over player is the team's least-preferred member.
//
// Parameters:
//   - players: Players with their preference lists
//   - rankings: Objective ranking per team ID
//   - result: Matching to check
//
// Returns:
//   - []BlockingPair: Blocking pairs in player order (empty when stable)
func Check(players []types.Player, rankings map[string]*types.Ranking, result *types.Result) []BlockingPair {
	teams := make(map[string]types.TeamResult, len(result.Teams))
	for _, t := range result.Teams {
		teams[t.ID] = t
	}

	var pairs []BlockingPair
	for _, p := range players {
		assigned, matched := result.Assignment[p.ID]

		for _, teamID := range p.Preferences {
			if matched && teamID == assigned {
				break
			}

			team, ok := teams[teamID]
			if !ok {
				continue
			}
			if len(team.Roster) < team.Capacity {
				pairs = append(pairs, BlockingPair{PlayerID: p.ID, TeamID: teamID})
				continue
			}

			ranking := rankings[teamID]
			if ranking == nil || len(team.Roster) == 0 {
				continue
			}

			worst := team.Roster[0]
			for _, m := range team.Roster[1:] {
				if ranking.Prefers(worst, m) {
					worst = m
				}
			}
			if ranking.Prefers(p.ID, worst) {
				pairs = append(pairs, BlockingPair{PlayerID: p.ID, TeamID: teamID, Over: worst})
			}
		}
	}

	return pairs
}
