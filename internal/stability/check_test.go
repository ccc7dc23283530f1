package stability

import (
	"testing"

	"github.com/philipjlin/TeamMatching/types"
	"github.com/stretchr/testify/require"
)

// Team A ranks b above a; team B ranks a above b.
func fixture() ([]types.Player, map[string]*types.Ranking) {
	players := []types.Player{
		{ID: "a", Preferences: []string{"A", "B"}},
		{ID: "b", Preferences: []string{"A", "B"}},
	}
	rankings := map[string]*types.Ranking{
		"A": types.NewRanking("A", []types.RankEntry{{PlayerID: "a", Fit: 1}, {PlayerID: "b", Fit: 2}}),
		"B": types.NewRanking("B", []types.RankEntry{{PlayerID: "b", Fit: 1}, {PlayerID: "a", Fit: 2}}),
	}

	return players, rankings
}

func TestCheck_Stable(t *testing.T) {
	players, rankings := fixture()
	result := &types.Result{
		Teams: []types.TeamResult{
			{ID: "A", Capacity: 1, Roster: []string{"b"}},
			{ID: "B", Capacity: 1, Roster: []string{"a"}},
		},
		Assignment: map[string]string{"a": "B", "b": "A"},
	}

	require.Empty(t, Check(players, rankings, result))
}

func TestCheck_TeamPrefersOutsider(t *testing.T) {
	players, rankings := fixture()
	result := &types.Result{
		Teams: []types.TeamResult{
			{ID: "A", Capacity: 1, Roster: []string{"a"}},
			{ID: "B", Capacity: 1, Roster: []string{"b"}},
		},
		Assignment: map[string]string{"a": "A", "b": "B"},
	}

	pairs := Check(players, rankings, result)

	require.Equal(t, []BlockingPair{{PlayerID: "b", TeamID: "A", Over: "a"}}, pairs)
	require.Equal(t, "b→A (over a)", pairs[0].String())
}

func TestCheck_FreeSlot(t *testing.T) {
	players, rankings := fixture()
	result := &types.Result{
		Teams: []types.TeamResult{
			{ID: "A", Capacity: 2, Roster: []string{"b"}},
			{ID: "B", Capacity: 1, Roster: []string{"a"}},
		},
		Assignment: map[string]string{"a": "B", "b": "A"},
	}

	pairs := Check(players, rankings, result)

	require.Equal(t, []BlockingPair{{PlayerID: "a", TeamID: "A"}}, pairs)
	require.Equal(t, "a→A (free slot)", pairs[0].String())
}

func TestCheck_UnmatchedPlayer(t *testing.T) {
	players, rankings := fixture()
	result := &types.Result{
		Teams: []types.TeamResult{
			{ID: "A", Capacity: 1, Roster: []string{"b"}},
			{ID: "B", Capacity: 1, Roster: []string{"a"}},
		},
		Assignment: map[string]string{"a": "B", "b": "A"},
	}

	require.Empty(t, Check(players, rankings, result))

	// Dropping b from A leaves a free slot that both players would take.
	result.Teams[0].Roster = nil
	delete(result.Assignment, "b")

	pairs := Check(players, rankings, result)
	require.Len(t, pairs, 2)
	require.Equal(t, "a", pairs[0].PlayerID)
	require.Equal(t, "b", pairs[1].PlayerID)
}
