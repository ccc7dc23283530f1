package types

// Ranker computes a team's objective ranking over players.
//
// Implementations must:
//   - Return every player exactly once
//   - Follow the Ranking ordering convention (worst fit at rank 0)
//   - Be deterministic, breaking ties in a fixed order
//   - Be free of side effects, so rankings of distinct teams may be
//     computed concurrently
type Ranker interface {
	// Rank builds the ranking of players for a single team.
	//
	// Parameters:
	//   - team: Team whose strategy weights drive the order
	//   - players: All players to rank (may be empty)
	//
	// Returns:
	//   - *Ranking: Ranking containing every player exactly once
	Rank(team Team, players []Player) *Ranking
}
