package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/philipjlin/TeamMatching/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are registered lazily on first use so constructing a collector
// never panics on duplicate registration until it is actually exercised.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	rankingDuration *prometheus.HistogramVec
	proposals       *prometheus.CounterVec
	rounds          prometheus.Counter
	freeAfterRound  prometheus.Gauge
	runs            *prometheus.CounterVec
	runDuration     prometheus.Histogram
	runRounds       prometheus.Histogram
	unmatched       prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "teammatching" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "teammatching"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		factory := promauto.With(p.reg)

		p.rankingDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "ranker",
			Name:      "ranking_duration_seconds",
			Help:      "Time taken to compute one team's objective ranking.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs .. ~2.6s
		}, []string{"team"})

		p.proposals = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "proposals_total",
			Help:      "Total proposals by outcome (admitted, displaced, rejected).",
		}, []string{"outcome"})

		p.rounds = factory.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "rounds_total",
			Help:      "Total executed matching rounds.",
		})

		p.freeAfterRound = factory.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "free_players",
			Help:      "Free players remaining after the latest round.",
		})

		p.runs = factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "runs_total",
			Help:      "Total matching runs by completeness (true, false).",
		}, []string{"complete"})

		p.runDuration = factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a matching run in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		})

		p.runRounds = factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "run_rounds",
			Help:      "Rounds executed per matching run.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
		})

		p.unmatched = factory.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "unmatched_players",
			Help:      "Players left unmatched by the latest run.",
		})
	})
}

// RecordRankingDuration observes one team's ranking time.
func (p *PrometheusCollector) RecordRankingDuration(teamID string, duration float64) {
	p.ensureRegistered()
	p.rankingDuration.WithLabelValues(teamID).Observe(duration)
}

// RecordProposal increments the proposal counter for the outcome.
func (p *PrometheusCollector) RecordProposal(outcome types.Outcome) {
	p.ensureRegistered()
	p.proposals.WithLabelValues(outcome.String()).Inc()
}

// RecordRound increments the round counter and sets the free-player gauge.
func (p *PrometheusCollector) RecordRound(_ /* round */ int, free int) {
	p.ensureRegistered()
	p.rounds.Inc()
	p.freeAfterRound.Set(float64(free))
}

// RecordRun records run completeness, duration and round count.
func (p *PrometheusCollector) RecordRun(duration float64, rounds int, complete bool) {
	p.ensureRegistered()
	p.runs.WithLabelValues(strconv.FormatBool(complete)).Inc()
	p.runDuration.Observe(duration)
	p.runRounds.Observe(float64(rounds))
}

// RecordUnmatched sets the unmatched gauge.
func (p *PrometheusCollector) RecordUnmatched(count int) {
	p.ensureRegistered()
	p.unmatched.Set(float64(count))
}
