package strategy

import (
	"fmt"
	"slices"
	"testing"

	"github.com/philipjlin/TeamMatching/types"
	"github.com/stretchr/testify/require"
)

func makePlayers(n int) []types.Player {
	players := make([]types.Player, n)
	for i := range players {
		players[i] = types.Player{
			ID: fmt.Sprintf("player-%02d", i),
			Skills: types.Attributes{
				Attack:             (i * 7) % 10,
				Defense:            (i * 3) % 10,
				Intelligence:       (i * 5) % 10,
				ResourceProduction: (i * 11) % 10,
			},
		}
	}

	return players
}

func TestFit(t *testing.T) {
	team := types.Team{ID: "A", Weights: types.Attributes{Attack: 2, Defense: 1}}
	player := types.Player{ID: "p", Skills: types.Attributes{Attack: 3, Defense: 4, Intelligence: 5, ResourceProduction: 6}}

	require.EqualValues(t, 10, Fit(team, player))
}

func TestFitRanker_Rank(t *testing.T) {
	t.Run("computes fit and places player by it", func(t *testing.T) {
		team := types.Team{ID: "A", Weights: types.Attributes{Attack: 2, Defense: 1}}
		players := []types.Player{
			{ID: "mid", Skills: types.Attributes{Attack: 3, Defense: 4, Intelligence: 5, ResourceProduction: 6}}, // 10
			{ID: "low", Skills: types.Attributes{Attack: 1, Defense: 1, Intelligence: 9, ResourceProduction: 9}}, // 3
			{ID: "high", Skills: types.Attributes{Attack: 5, Defense: 5}},                                         // 15
		}

		ranking := NewFitRanker().Rank(team, players)

		fit, ok := ranking.FitOf("mid")
		require.True(t, ok)
		require.EqualValues(t, 10, fit)
		require.Equal(t, []string{"low", "mid", "high"}, ranking.Order())
		require.True(t, ranking.Prefers("high", "mid"))
		require.True(t, ranking.Prefers("mid", "low"))
	})

	t.Run("ranking is a permutation of all players", func(t *testing.T) {
		players := makePlayers(25)
		team := types.Team{ID: "A", Weights: types.Attributes{Attack: 3, Defense: 1, Intelligence: 2, ResourceProduction: 1}}

		ranking := NewFitRanker().Rank(team, players)

		want := make([]string, len(players))
		for i, p := range players {
			want[i] = p.ID
		}
		got := ranking.Order()
		slices.Sort(got)
		require.Equal(t, want, got)

		for rank := range ranking.Len() {
			r, ok := ranking.RankOf(ranking.At(rank))
			require.True(t, ok)
			require.Equal(t, rank, r)
		}
	})

	t.Run("ascending by fit", func(t *testing.T) {
		players := makePlayers(30)
		team := types.Team{ID: "A", Weights: types.Attributes{Attack: 1, Defense: 4, Intelligence: 2, ResourceProduction: 3}}

		entries := NewFitRanker().Rank(team, players).Entries()
		for i := 1; i < len(entries); i++ {
			require.LessOrEqual(t, entries[i-1].Fit, entries[i].Fit)
		}
	})

	t.Run("ties prefer the lexically smaller ID", func(t *testing.T) {
		team := types.Team{ID: "A", Weights: types.Attributes{Attack: 1}}
		players := []types.Player{
			{ID: "b", Skills: types.Attributes{Attack: 5}},
			{ID: "c", Skills: types.Attributes{Attack: 5}},
			{ID: "a", Skills: types.Attributes{Attack: 5}},
		}

		ranking := NewFitRanker().Rank(team, players)

		require.Equal(t, []string{"c", "b", "a"}, ranking.Order())
		require.True(t, ranking.Prefers("a", "b"))
	})

	t.Run("idempotent and independent of input order", func(t *testing.T) {
		players := makePlayers(20)
		team := types.Team{ID: "A", Weights: types.Attributes{Attack: 1, Defense: 1, Intelligence: 1, ResourceProduction: 1}}
		ranker := NewFitRanker()

		first := ranker.Rank(team, players).Order()
		second := ranker.Rank(team, players).Order()
		require.Equal(t, first, second)

		reversed := slices.Clone(players)
		slices.Reverse(reversed)
		require.Equal(t, first, ranker.Rank(team, reversed).Order())
	})

	t.Run("empty player set yields empty ranking", func(t *testing.T) {
		ranking := NewFitRanker().Rank(types.Team{ID: "A"}, nil)

		require.Equal(t, "A", ranking.TeamID())
		require.Equal(t, 0, ranking.Len())
	})
}
