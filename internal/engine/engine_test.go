package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipjlin/TeamMatching/internal/logger"
	"github.com/philipjlin/TeamMatching/strategy"
	matchtest "github.com/philipjlin/TeamMatching/testing"
	"github.com/philipjlin/TeamMatching/types"
)

func buildInput(t *testing.T, players []types.Player, teams []types.Team) Input {
	t.Helper()

	rankings, err := strategy.RankAll(context.Background(), strategy.NewFitRanker(), teams, players, 2, nil)
	require.NoError(t, err)

	return Input{Players: players, Teams: teams, Rankings: rankings}
}

func run(t *testing.T, in Input, opts ...Option) (*types.Result, error) {
	t.Helper()

	opts = append([]Option{WithLogger(logger.NewTest(t))}, opts...)
	eng, err := New(in, opts...)
	require.NoError(t, err)

	return eng.Run(context.Background())
}

func randomInstance(seed uint64, numPlayers int, capacities []int) ([]types.Player, []types.Team) {
	ds := matchtest.RandomDataset(seed, numPlayers, capacities)
	return ds.Players, ds.Teams
}

func requireInvariants(t *testing.T, in Input, res *types.Result) {
	t.Helper()
	matchtest.AssertMatchingInvariants(t, in.Players, in.Teams, in.Rankings, res)
}

func TestEngine_DisjointTopChoices(t *testing.T) {
	teams := []types.Team{
		{ID: "A", Weights: types.Attributes{Attack: 1}, Capacity: 1},
		{ID: "B", Weights: types.Attributes{Defense: 1}, Capacity: 1},
	}
	players := []types.Player{
		{ID: "p1", Skills: types.Attributes{Attack: 1}, Preferences: []string{"A", "B"}},
		{ID: "p2", Skills: types.Attributes{Defense: 1}, Preferences: []string{"B", "A"}},
	}
	in := buildInput(t, players, teams)

	res, err := run(t, in)

	require.NoError(t, err)
	require.Len(t, res.Rounds, 1)
	require.Equal(t, 0, res.Rounds[0].FreeAfter)
	require.Equal(t, map[string]string{"p1": "A", "p2": "B"}, res.Assignment)
	requireInvariants(t, in, res)
}

func TestEngine_SingleSlotContest(t *testing.T) {
	team := types.Team{ID: "A", Weights: types.Attributes{Attack: 1}, Capacity: 1}

	t.Run("better player proposes first", func(t *testing.T) {
		players := []types.Player{
			{ID: "x", Skills: types.Attributes{Attack: 9}, Preferences: []string{"A"}},
			{ID: "y", Skills: types.Attributes{Attack: 1}, Preferences: []string{"A"}},
		}
		in := buildInput(t, players, []types.Team{team})

		res, err := run(t, in)

		var pme *types.PartialMatchError
		require.ErrorAs(t, err, &pme)
		require.Equal(t, []string{"y"}, pme.Unmatched)
		require.True(t, pme.Infeasible)

		require.Len(t, res.Rounds, 2)
		require.Equal(t, []types.Proposal{
			{PlayerID: "x", TeamID: "A", Outcome: types.OutcomeAdmitted},
			{PlayerID: "y", TeamID: "A", Outcome: types.OutcomeRejected},
		}, res.Rounds[0].Proposals)
		require.Equal(t, 1, res.Rounds[0].FreeAfter)
		require.Empty(t, res.Rounds[1].Proposals)
		require.Equal(t, []string{"y"}, res.Rounds[1].Exhausted)

		require.Equal(t, []string{"x"}, res.Roster("A"))
		require.Equal(t, []string{"y"}, res.Unmatched)
		requireInvariants(t, in, res)
	})

	t.Run("better player proposes second", func(t *testing.T) {
		players := []types.Player{
			{ID: "x", Skills: types.Attributes{Attack: 1}, Preferences: []string{"A"}},
			{ID: "y", Skills: types.Attributes{Attack: 9}, Preferences: []string{"A"}},
		}
		in := buildInput(t, players, []types.Team{team})

		res, err := run(t, in)

		require.ErrorIs(t, err, types.ErrPartialMatching)
		require.Equal(t, types.Proposal{PlayerID: "y", TeamID: "A", Outcome: types.OutcomeDisplaced, Evicted: "x"},
			res.Rounds[0].Proposals[1])
		require.Equal(t, []string{"y"}, res.Roster("A"))
		require.Equal(t, []string{"x"}, res.Unmatched)
		requireInvariants(t, in, res)
	})
}

func TestEngine_ExactCapacityFillsEveryRoster(t *testing.T) {
	teams := []types.Team{
		{ID: "A", Weights: types.Attributes{Attack: 3, Defense: 1}, Capacity: 3},
		{ID: "B", Weights: types.Attributes{Defense: 2, Intelligence: 2}, Capacity: 3},
		{ID: "C", Weights: types.Attributes{ResourceProduction: 4, Attack: 1}, Capacity: 3},
	}
	orders := [][]string{{"A", "B", "C"}, {"B", "C", "A"}, {"C", "A", "B"}}
	players := make([]types.Player, 9)
	for i := range players {
		players[i] = types.Player{
			ID:          fmt.Sprintf("p%d", i),
			Skills:      types.Attributes{Attack: i, Defense: 9 - i, Intelligence: i % 3, ResourceProduction: (i * 2) % 7},
			Preferences: orders[i%2],
		}
	}
	in := buildInput(t, players, teams)

	res, err := run(t, in)

	require.NoError(t, err)
	require.True(t, res.Complete())
	require.False(t, res.Infeasible)
	require.Empty(t, res.Underfilled)
	for _, team := range res.Teams {
		require.Len(t, team.Roster, team.Capacity)
	}
	require.Equal(t, 0, res.Rounds[len(res.Rounds)-1].FreeAfter)
	requireInvariants(t, in, res)
}

func TestEngine_EvictedPlayerWaitsForNextRound(t *testing.T) {
	teams := []types.Team{
		{ID: "A", Weights: types.Attributes{Attack: 1}, Capacity: 1},
		{ID: "B", Weights: types.Attributes{Attack: 1}, Capacity: 1},
	}
	players := []types.Player{
		{ID: "a", Skills: types.Attributes{Attack: 1}, Preferences: []string{"A", "B"}},
		{ID: "b", Skills: types.Attributes{Attack: 5}, Preferences: []string{"A", "B"}},
	}
	in := buildInput(t, players, teams)

	res, err := run(t, in)

	require.NoError(t, err)
	require.Len(t, res.Rounds, 2)
	require.Len(t, res.Rounds[0].Proposals, 2)
	require.Equal(t, 1, res.Rounds[0].FreeAfter)
	require.Equal(t, []types.Proposal{{PlayerID: "a", TeamID: "B", Outcome: types.OutcomeAdmitted}}, res.Rounds[1].Proposals)
	requireInvariants(t, in, res)
}

func TestEngine_RosterOrderAndTotals(t *testing.T) {
	teams := []types.Team{{ID: "A", Weights: types.Attributes{Attack: 1}, Capacity: 3}}
	players := []types.Player{
		{ID: "p1", Skills: types.Attributes{Attack: 2, Defense: 1}, Preferences: []string{"A"}},
		{ID: "p2", Skills: types.Attributes{Attack: 7, Intelligence: 4}, Preferences: []string{"A"}},
		{ID: "p3", Skills: types.Attributes{Attack: 5, ResourceProduction: 3}, Preferences: []string{"A"}},
	}
	in := buildInput(t, players, teams)

	res, err := run(t, in)

	require.NoError(t, err)
	require.Equal(t, []string{"p2", "p3", "p1"}, res.Roster("A"))
	require.Equal(t, types.Attributes{Attack: 14, Defense: 1, Intelligence: 4, ResourceProduction: 3}, res.Totals("A"))
}

func TestEngine_Underfilled(t *testing.T) {
	teams := []types.Team{
		{ID: "A", Weights: types.Attributes{Attack: 1}, Capacity: 2},
		{ID: "B", Weights: types.Attributes{Attack: 1}, Capacity: 2},
	}
	players := []types.Player{
		{ID: "p1", Skills: types.Attributes{Attack: 1}, Preferences: []string{"A", "B"}},
	}
	in := buildInput(t, players, teams)

	res, err := run(t, in)

	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Underfilled)
	require.False(t, res.Infeasible)
}

func TestEngine_NoPlayers(t *testing.T) {
	in := buildInput(t, nil, []types.Team{{ID: "A", Capacity: 1}})

	res, err := run(t, in)

	require.NoError(t, err)
	require.Empty(t, res.Rounds)
	require.True(t, res.Complete())
}

func TestEngine_RandomInstances(t *testing.T) {
	for seed := uint64(1); seed <= 40; seed++ {
		t.Run(fmt.Sprintf("seed-%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(seed, seed))
			numTeams := 1 + rng.IntN(6)
			capacities := make([]int, numTeams)
			total := 0
			for i := range capacities {
				capacities[i] = 1 + rng.IntN(4)
				total += capacities[i]
			}
			// Alternate between feasible and infeasible instances.
			numPlayers := total - rng.IntN(total)
			if seed%2 == 0 {
				numPlayers = total + 1 + rng.IntN(5)
			}

			players, teams := randomInstance(seed, numPlayers, capacities)
			in := buildInput(t, players, teams)

			eng, err := New(in)
			require.NoError(t, err)
			res, err := eng.Run(context.Background())
			require.NotNil(t, res)

			if numPlayers <= total {
				require.NoError(t, err)
				require.True(t, res.Complete())
			} else {
				require.ErrorIs(t, err, types.ErrCapacityInfeasible)
				require.Len(t, res.Unmatched, numPlayers-total)
			}
			requireInvariants(t, in, res)
		})
	}
}

func TestEngine_Deterministic(t *testing.T) {
	players, teams := randomInstance(7, 20, []int{3, 4, 5, 2, 6})
	in := buildInput(t, players, teams)

	first, err := run(t, in)
	require.NoError(t, err)

	shuffled := slices.Clone(players)
	slices.Reverse(shuffled)
	second, err := run(t, Input{Players: shuffled, Teams: teams, Rankings: in.Rankings})
	require.NoError(t, err)

	require.Equal(t, first.Teams, second.Teams)
	require.Equal(t, first.Rounds, second.Rounds)
}

func TestEngine_DoesNotMutateInput(t *testing.T) {
	players, teams := randomInstance(3, 10, []int{2, 2, 2})
	original := (&types.Dataset{Players: players, Teams: teams}).Clone()
	in := buildInput(t, players, teams)

	_, err := run(t, in)

	require.ErrorIs(t, err, types.ErrPartialMatching)
	require.Equal(t, original.Players, players)
	require.Equal(t, original.Teams, teams)
}

func TestEngine_Hooks(t *testing.T) {
	players, teams := randomInstance(11, 8, []int{3, 3, 2})
	in := buildInput(t, players, teams)

	var rounds []int
	hooks := &types.Hooks{
		OnRoundComplete: func(_ context.Context, r types.RoundReport) error {
			rounds = append(rounds, r.Round)
			return errors.New("hook failure is logged, not fatal")
		},
	}

	res, err := run(t, in, WithHooks(hooks))

	require.NoError(t, err)
	require.Len(t, rounds, len(res.Rounds))
	for i, r := range rounds {
		require.Equal(t, i+1, r)
	}
}

func TestEngine_CancelledContext(t *testing.T) {
	players, teams := randomInstance(5, 6, []int{3, 3})
	eng, err := New(buildInput(t, players, teams))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := eng.Run(ctx)

	require.Nil(t, res)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEngine_RunOnce(t *testing.T) {
	players, teams := randomInstance(9, 2, []int{2})
	eng, err := New(buildInput(t, players, teams))
	require.NoError(t, err)

	_, err = eng.Run(context.Background())
	require.NoError(t, err)

	_, err = eng.Run(context.Background())
	require.ErrorIs(t, err, ErrAlreadyRan)
}

func TestNew_RejectsInconsistentInput(t *testing.T) {
	players, teams := randomInstance(2, 4, []int{2, 2})

	t.Run("non-positive capacity", func(t *testing.T) {
		in := buildInput(t, players, teams)
		in.Teams = slices.Clone(teams)
		in.Teams[0].Capacity = 0

		_, err := New(in)
		require.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("missing ranking", func(t *testing.T) {
		in := buildInput(t, players, teams)
		delete(in.Rankings, teams[1].ID)

		_, err := New(in)
		require.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("ranking lacks a player", func(t *testing.T) {
		in := buildInput(t, players, teams)
		in.Rankings[teams[0].ID] = strategy.NewFitRanker().Rank(teams[0], players[1:])

		_, err := New(in)
		require.ErrorIs(t, err, types.ErrInvalidInput)
	})

	t.Run("unknown preferred team", func(t *testing.T) {
		bad := slices.Clone(players)
		bad[0] = bad[0].Clone()
		bad[0].Preferences = append(bad[0].Preferences, "ghost")
		in := buildInput(t, bad, teams)

		_, err := New(in)
		require.ErrorIs(t, err, types.ErrInvalidInput)
	})
}
