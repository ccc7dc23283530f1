// Package engine runs player-proposing deferred acceptance to a fixed point.
//
// # Round Protocol
//
// Every player that is free when a round starts proposes exactly once in that
// round, in ascending lexical player ID order. A proposal targets the team at
// the player's preference cursor, and the cursor advances unconditionally, so
// no player ever proposes to the same team twice.
//
//   - A team below capacity admits the proposer.
//   - A full team forms the candidate set roster ∪ {proposer} and evicts the
//     candidate with the lowest objective rank (worst fit). The evicted player
//     becomes free and proposes again in the next round, resuming from its own
//     cursor.
//
// A free player whose cursor reached the end of its preference list is marked
// exhausted: it stays unmatched and no longer counts as free. The loop ends
// when no free player remains.
//
// # Ownership
//
// The engine copies its input and owns all mutable matching state (cursor,
// player state, rosters) for the duration of a run. The round loop is
// single-threaded and needs no locking.
package engine
