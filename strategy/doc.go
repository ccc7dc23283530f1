// Package strategy provides the built-in preference ranker.
//
// A ranker turns a team's strategy weights into an objective order over all
// players. The package ships one ranker:
//
//   - FitRanker: orders players by fit score, the dot product of the team's
//     strategy weights and the player's skills
//
// # Ordering Convention
//
// Rankings are ASCENDING by fit: rank 0 is the worst-fit player and the
// highest rank is the best-fit player. The matching engine evicts the
// candidate with the lowest rank when a roster overflows, so teams always
// keep their best-fit proposers.
//
// Ties in fit score are broken by player ID: the lexically smaller ID is
// preferred, i.e. placed at the higher rank.
//
// Custom rankers can be implemented by satisfying the types.Ranker interface.
package strategy
