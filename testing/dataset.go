package testing

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/philipjlin/TeamMatching/types"
)

// RandomDataset builds a reproducible dataset.
//
// Teams are named team-00, team-01, ... with the given capacities and random
// weights in [0, 5). Players are named player-000, player-001, ... with
// random skills in [0, 10) and a shuffled, complete preference list.
//
// Parameters:
//   - seed: Random seed; equal seeds give equal datasets
//   - players: Number of players
//   - capacities: Capacity of each team, in team order
//
// Returns:
//   - *types.Dataset: Valid dataset
func RandomDataset(seed uint64, players int, capacities []int) *types.Dataset {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec

	ds := &types.Dataset{
		Teams:   make([]types.Team, len(capacities)),
		Players: make([]types.Player, players),
	}

	teamIDs := make([]string, len(capacities))
	for i, c := range capacities {
		teamIDs[i] = fmt.Sprintf("team-%02d", i)
		ds.Teams[i] = types.Team{
			ID:       teamIDs[i],
			Weights:  randomAttributes(rng, 5),
			Capacity: c,
		}
	}

	for i := range ds.Players {
		prefs := slices.Clone(teamIDs)
		rng.Shuffle(len(prefs), func(a, b int) { prefs[a], prefs[b] = prefs[b], prefs[a] })
		ds.Players[i] = types.Player{
			ID:          fmt.Sprintf("player-%03d", i),
			Skills:      randomAttributes(rng, 10),
			Preferences: prefs,
		}
	}

	return ds
}

func randomAttributes(rng *rand.Rand, limit int) types.Attributes {
	return types.Attributes{
		Attack:             rng.IntN(limit),
		Defense:            rng.IntN(limit),
		Intelligence:       rng.IntN(limit),
		ResourceProduction: rng.IntN(limit),
	}
}
