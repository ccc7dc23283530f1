// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/philipjlin/TeamMatching/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RankingMetrics implementation

// RecordRankingDuration discards the ranking duration metric.
func (n *NopMetrics) RecordRankingDuration(_ /* teamID */ string, _ /* duration */ float64) {
	// No-op
}

// EngineMetrics implementation

// RecordProposal discards the proposal metric.
func (n *NopMetrics) RecordProposal(_ /* outcome */ types.Outcome) {
	// No-op
}

// RecordRound discards the round metric.
func (n *NopMetrics) RecordRound(_ /* round */, _ /* free */ int) {
	// No-op
}

// RecordRun discards the run metric.
func (n *NopMetrics) RecordRun(_ /* duration */ float64, _ /* rounds */ int, _ /* complete */ bool) {
	// No-op
}

// RecordUnmatched discards the unmatched gauge.
func (n *NopMetrics) RecordUnmatched(_ /* count */ int) {
	// No-op
}
