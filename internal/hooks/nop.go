// Package hooks provides default Hooks implementations.
package hooks

import (
	"context"

	"github.com/philipjlin/TeamMatching/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.RoundReport) error = (*NopHooks)(nil).OnRoundComplete
	_ func(context.Context, error) error             = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnRoundComplete: h.OnRoundComplete,
		OnError:         h.OnError,
	}
}

// Fill returns a copy of h with nil callbacks replaced by no-ops.
//
// Parameters:
//   - h: User hooks (may be nil)
//
// Returns:
//   - types.Hooks: Hooks whose callbacks are all non-nil
func Fill(h *types.Hooks) types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}
	if h.OnRoundComplete != nil {
		out.OnRoundComplete = h.OnRoundComplete
	}
	if h.OnError != nil {
		out.OnError = h.OnError
	}

	return out
}

// OnRoundComplete is a no-op implementation.
func (h *NopHooks) OnRoundComplete(ctx context.Context, report types.RoundReport) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(ctx context.Context, err error) error {
	return nil
}
