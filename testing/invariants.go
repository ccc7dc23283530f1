package testing

import (
	"testing"

	"github.com/philipjlin/TeamMatching/internal/stability"
	"github.com/philipjlin/TeamMatching/types"
)

// AssertMatchingInvariants verifies a completed matching.
//
// Checked:
//   - No roster exceeds its capacity, at the end of any round or in the result
//   - No player proposes to the same team twice
//   - Every player is on exactly one roster or unmatched
//   - The matching has no blocking pair
//
// Parameters:
//   - t: testing handle
//   - players: Players of the run
//   - teams: Teams with resolved capacities
//   - rankings: Team rankings used by the run
//   - res: Result to verify
func AssertMatchingInvariants(
	t testing.TB,
	players []types.Player,
	teams []types.Team,
	rankings map[string]*types.Ranking,
	res *types.Result,
) {
	t.Helper()

	capacity := make(map[string]int, len(teams))
	for _, team := range teams {
		capacity[team.ID] = team.Capacity
	}

	for _, round := range res.Rounds {
		for teamID, roster := range round.Rosters {
			if len(roster) > capacity[teamID] {
				t.Fatalf("round %d: team %s holds %d players, capacity %d", round.Round, teamID, len(roster), capacity[teamID])
			}
		}
	}

	proposed := make(map[[2]string]int)
	for _, round := range res.Rounds {
		for _, p := range round.Proposals {
			key := [2]string{p.PlayerID, p.TeamID}
			if first, dup := proposed[key]; dup {
				t.Fatalf("%s proposed to %s in round %d and again in round %d", p.PlayerID, p.TeamID, first, round.Round)
			}
			proposed[key] = round.Round
		}
	}

	placed := make(map[string]string, len(players))
	for _, team := range res.Teams {
		if len(team.Roster) > team.Capacity {
			t.Fatalf("team %s holds %d players, capacity %d", team.ID, len(team.Roster), team.Capacity)
		}
		for _, id := range team.Roster {
			if other, dup := placed[id]; dup {
				t.Fatalf("player %s is on rosters %s and %s", id, other, team.ID)
			}
			placed[id] = team.ID
			if res.Assignment[id] != team.ID {
				t.Fatalf("player %s on roster %s but assigned to %q", id, team.ID, res.Assignment[id])
			}
		}
	}
	for _, id := range res.Unmatched {
		if team, dup := placed[id]; dup {
			t.Fatalf("player %s is unmatched and on roster %s", id, team)
		}
		placed[id] = ""
	}
	if len(placed) != len(players) {
		t.Fatalf("%d of %d players accounted for", len(placed), len(players))
	}

	if pairs := stability.Check(players, rankings, res); len(pairs) > 0 {
		t.Fatalf("matching has %d blocking pair(s), first %s", len(pairs), pairs[0])
	}
}
