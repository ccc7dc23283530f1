package types

// MetricsCollector defines methods for recording matching metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Rankings are computed concurrently, so implementations must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	RankingMetrics
	EngineMetrics
}

// RankingMetrics defines metrics for preference ranking.
type RankingMetrics interface {
	// RecordRankingDuration records the time taken to rank one team.
	//
	// Parameters:
	//   - teamID: Team whose ranking was computed
	//   - duration: Time taken in seconds
	RecordRankingDuration(teamID string, duration float64)
}

// EngineMetrics defines metrics for the matching round loop.
type EngineMetrics interface {
	// RecordProposal records a single proposal outcome.
	RecordProposal(outcome Outcome)

	// RecordRound records a completed round.
	//
	// Parameters:
	//   - round: 1-based round number
	//   - free: Free players remaining after the round
	RecordRound(round int, free int)

	// RecordRun records a completed run.
	//
	// Parameters:
	//   - duration: Wall time in seconds
	//   - rounds: Number of executed rounds
	//   - complete: true if every player was matched
	RecordRun(duration float64, rounds int, complete bool)

	// RecordUnmatched sets the unmatched player count of the latest run (gauge metric).
	RecordUnmatched(count int)
}
