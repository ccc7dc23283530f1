package strategy

import (
	"cmp"
	"slices"

	"github.com/philipjlin/TeamMatching/types"
)

// FitRanker ranks players by fit score.
type FitRanker struct{}

var _ types.Ranker = (*FitRanker)(nil)

// NewFitRanker creates a new fit-score ranker.
//
// Returns:
//   - *FitRanker: Stateless ranker, safe for concurrent use
//
// Example:
//
//	ranker := strategy.NewFitRanker()
//	ranking := ranker.Rank(team, players)
//	best := ranking.At(ranking.Len() - 1)
func NewFitRanker() *FitRanker {
	return &FitRanker{}
}

// Fit returns the fit score of a player for a team: the dot product of the
// team's strategy weights and the player's skills.
func Fit(team types.Team, player types.Player) int64 {
	return team.Weights.Dot(player.Skills)
}

// Rank builds the team's ranking over players.
//
// The algorithm:
//  1. Compute each player's fit score once
//  2. Sort ascending by fit, breaking ties by descending player ID
//
// The result does not depend on the order of players.
//
// Parameters:
//   - team: Team whose weights drive the order
//   - players: Players to rank (may be empty)
//
// Returns:
//   - *types.Ranking: Worst fit at rank 0, best fit at rank Len()-1
func (r *FitRanker) Rank(team types.Team, players []types.Player) *types.Ranking {
	entries := make([]types.RankEntry, len(players))
	for i, p := range players {
		entries[i] = types.RankEntry{PlayerID: p.ID, Fit: Fit(team, p)}
	}

	slices.SortFunc(entries, compareEntries)

	return types.NewRanking(team.ID, entries)
}

// compareEntries orders by ascending fit; among equal fits the larger ID
// sorts first so the smaller ID ends up more preferred.
func compareEntries(a, b types.RankEntry) int {
	if c := cmp.Compare(a.Fit, b.Fit); c != 0 {
		return c
	}

	return cmp.Compare(b.PlayerID, a.PlayerID)
}
