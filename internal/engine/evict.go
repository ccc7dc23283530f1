package engine

import "github.com/philipjlin/TeamMatching/types"

// leastPreferred returns the index within candidates of the player the team
// ranks lowest. Candidates must all be present in the ranking and non-empty.
//
// The candidate set is at most capacity+1 players, so a linear scan beats
// any queue structure and has no draining edge cases.
func leastPreferred(ranking *types.Ranking, candidates []string) int {
	worst := 0
	worstRank, _ := ranking.RankOf(candidates[0])

	for i := 1; i < len(candidates); i++ {
		rank, _ := ranking.RankOf(candidates[i])
		if rank < worstRank {
			worst, worstRank = i, rank
		}
	}

	return worst
}
