package types

// RankEntry is one position of a team's objective ranking.
type RankEntry struct {
	PlayerID string `json:"playerId"`
	Fit      int64  `json:"fit"`
}

// Ranking is a team's objective order over all players.
//
// Ordering convention: the order is ASCENDING by fit. Rank 0 is the
// least-preferred (worst fit) player and rank Len()-1 is the most-preferred
// (best fit) player, so a higher rank always means "more preferred".
// Rankings are immutable once built.
type Ranking struct {
	teamID  string
	entries []RankEntry
	index   map[string]int
}

// NewRanking creates a ranking from entries already ordered worst fit first.
//
// Parameters:
//   - teamID: Team owning the ranking
//   - entries: Ordered entries (copied)
//
// Returns:
//   - *Ranking: Immutable ranking with O(1) lookups in both directions
func NewRanking(teamID string, entries []RankEntry) *Ranking {
	r := &Ranking{
		teamID:  teamID,
		entries: make([]RankEntry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(r.entries, entries)
	for i, e := range r.entries {
		r.index[e.PlayerID] = i
	}

	return r
}

// TeamID returns the ID of the team owning the ranking.
func (r *Ranking) TeamID() string {
	return r.teamID
}

// Len returns the number of ranked players.
func (r *Ranking) Len() int {
	return len(r.entries)
}

// Order returns a copy of the ranked player IDs, worst fit first.
func (r *Ranking) Order() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.PlayerID
	}

	return out
}

// Entries returns a copy of the ranking entries, worst fit first.
func (r *Ranking) Entries() []RankEntry {
	out := make([]RankEntry, len(r.entries))
	copy(out, r.entries)

	return out
}

// RankOf returns the rank of a player. The boolean is false for unknown players.
func (r *Ranking) RankOf(playerID string) (int, bool) {
	rank, ok := r.index[playerID]
	return rank, ok
}

// At returns the player holding the given rank, or "" when out of range.
func (r *Ranking) At(rank int) string {
	if rank < 0 || rank >= len(r.entries) {
		return ""
	}

	return r.entries[rank].PlayerID
}

// FitOf returns the fit score of a player. The boolean is false for unknown players.
func (r *Ranking) FitOf(playerID string) (int64, bool) {
	rank, ok := r.index[playerID]
	if !ok {
		return 0, false
	}

	return r.entries[rank].Fit, true
}

// Prefers reports whether the team strictly prefers player a over player b.
// Unknown players are never preferred.
func (r *Ranking) Prefers(a, b string) bool {
	ra, okA := r.index[a]
	if !okA {
		return false
	}
	rb, okB := r.index[b]
	if !okB {
		return true
	}

	return ra > rb
}
