package teammatching

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Matcher with optional dependencies.
type Option func(*matcherOptions)

// matcherOptions holds optional Matcher configuration.
type matcherOptions struct {
	ranker    Ranker
	rankerSet bool
	hooks     *Hooks
	metrics   MetricsCollector
	registry  prometheus.Registerer
	logger    Logger
}

// WithRanker sets the ranker deriving team preferences over players.
//
// The default ranker orders players by fit, the dot product of team weights
// and player skills. A nil ranker makes NewMatcher fail with ErrRankerRequired.
//
// Parameters:
//   - ranker: Ranker implementation
//
// Returns:
//   - Option: Functional option for NewMatcher
//
// Example:
//
//	matcher, err := teammatching.NewMatcher(&cfg, src, teammatching.WithRanker(myRanker))
func WithRanker(ranker Ranker) Option {
	return func(o *matcherOptions) {
		o.ranker = ranker
		o.rankerSet = true
	}
}

// WithHooks sets run event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewMatcher
//
// Example:
//
//	hooks := &teammatching.Hooks{
//	    OnRoundComplete: func(ctx context.Context, report teammatching.RoundReport) error {
//	        log.Printf("round %d: %d free", report.Round, report.FreeAfter)
//	        return nil
//	    },
//	}
//	matcher, err := teammatching.NewMatcher(&cfg, src, teammatching.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *matcherOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewMatcher
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *matcherOptions) {
		o.metrics = metrics
	}
}

// WithPrometheus records metrics into a Prometheus registry, named with
// Config.Metrics.Namespace. It is ignored when WithMetrics is also given.
//
// Parameters:
//   - reg: Registerer receiving the collectors (prometheus.DefaultRegisterer if nil)
//
// Returns:
//   - Option: Functional option for NewMatcher
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	matcher, err := teammatching.NewMatcher(&cfg, src, teammatching.WithPrometheus(reg))
func WithPrometheus(reg prometheus.Registerer) Option {
	return func(o *matcherOptions) {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		o.registry = reg
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with slog-style key-value loggers)
//
// Returns:
//   - Option: Functional option for NewMatcher
func WithLogger(logger Logger) Option {
	return func(o *matcherOptions) {
		o.logger = logger
	}
}
