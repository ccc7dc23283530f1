package engine

import (
	"github.com/philipjlin/TeamMatching/internal/hooks"
	"github.com/philipjlin/TeamMatching/internal/logger"
	"github.com/philipjlin/TeamMatching/internal/metrics"
	"github.com/philipjlin/TeamMatching/types"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(l types.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics sets the metrics sink. Nil keeps the no-op collector.
func WithMetrics(m types.EngineMetrics) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithHooks sets run callbacks. Nil callbacks are replaced by no-ops.
func WithHooks(h *types.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks.Fill(h)
	}
}

func defaults(e *Engine) {
	e.logger = logger.NewNop()
	e.metrics = metrics.NewNop()
	e.hooks = hooks.NewNop()
}
