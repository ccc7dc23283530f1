package metrics

import (
	"testing"

	"github.com/philipjlin/TeamMatching/types"
	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_AllMethods(t *testing.T) {
	metrics := NewNop()

	require.NotPanics(t, func() {
		metrics.RecordRankingDuration("A", 0.001)
		metrics.RecordProposal(types.OutcomeAdmitted)
		metrics.RecordProposal(types.Outcome(99))
		metrics.RecordRound(1, 3)
		metrics.RecordRun(0.5, 4, true)
		metrics.RecordUnmatched(-1)
	})
}
