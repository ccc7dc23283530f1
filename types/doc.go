// Package types provides core type definitions and interfaces for the teammatching library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root teammatching package and its internal implementations.
//
// Key types:
//   - Player, Team, Attributes: Immutable input records
//   - Ranking: A team's objective order over all players
//   - PlayerState: Matching lifecycle state of a player
//   - Result: Final rosters, per-round reports and diagnostics
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
