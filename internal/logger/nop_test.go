package logger

import (
	"testing"

	"github.com/philipjlin/TeamMatching/types"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	var _ types.Logger = logger

	require.NotPanics(t, func() {
		logger.Debug("test message", "key", "value")
		logger.Info("test message", "key", "value")
		logger.Warn("test message", "key", "value")
		logger.Error("test message", "key", "value")
		logger.Fatal("test message", "key", "value") // Should NOT exit
	})
}

func TestNopLogger_OddArguments(t *testing.T) {
	logger := NewNop()

	require.NotPanics(t, func() {
		logger.Debug("")
		logger.Info("", nil)
		logger.Error("message", "single")
	})
}

func TestFormatKeyValues(t *testing.T) {
	require.Empty(t, formatKeyValues(nil))
	require.Equal(t, "round=1 free=3", formatKeyValues([]any{"round", 1, "free", 3}))
	require.Equal(t, "round=1 dangling=<missing>", formatKeyValues([]any{"round", 1, "dangling"}))
}

func TestTestLogger(t *testing.T) {
	logger := NewTest(t)

	require.NotPanics(t, func() {
		logger.Debug("proposal", "player", "p1", "team", "A")
		logger.Info("round complete", "round", 1)
		logger.Warn("capacity infeasible")
		logger.Error("unstable", "pairs", 2)
	})
}
