package teammatching

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/philipjlin/TeamMatching/internal/engine"
	"github.com/philipjlin/TeamMatching/internal/hash"
	"github.com/philipjlin/TeamMatching/internal/hooks"
	"github.com/philipjlin/TeamMatching/internal/logger"
	"github.com/philipjlin/TeamMatching/internal/metrics"
	"github.com/philipjlin/TeamMatching/internal/stability"
	"github.com/philipjlin/TeamMatching/internal/validate"
	"github.com/philipjlin/TeamMatching/source"
	"github.com/philipjlin/TeamMatching/strategy"
)

// Matcher runs one player-proposing deferred-acceptance matching.
//
// A run loads the dataset, validates it, ranks players for every team,
// executes the round loop, then verifies the result has no blocking pair.
//
// Thread Safety:
//   - Run may be called once; concurrent calls are serialized and all but the first fail
//   - Diagnostics accessors are safe for concurrent use
type Matcher struct {
	cfg    Config
	source DataSource

	ranker  Ranker
	hooks   Hooks
	metrics MetricsCollector
	logger  Logger

	runMu sync.Mutex
	ran   bool

	mu          sync.RWMutex
	preferences map[string][]string
	rankings    map[string]*Ranking
}

// NewMatcher creates a new Matcher.
//
// Zero-valued configuration fields are filled with defaults before
// validation.
//
// Parameters:
//   - cfg: Configuration (updated in place with defaults)
//   - src: Data source providing players and teams
//   - opts: Optional ranker, hooks, metrics and logger
//
// Returns:
//   - *Matcher: Initialized matcher
//   - error: ErrInvalidConfig, ErrDataSourceRequired or ErrRankerRequired
//
// Example:
//
//	cfg := teammatching.DefaultConfig()
//	src, _ := source.NewFile("league.yaml")
//	matcher, err := teammatching.NewMatcher(&cfg, src)
//	if err != nil { /* handle */ }
//	result, err := matcher.Run(ctx)
func NewMatcher(cfg *Config, src DataSource, opts ...Option) (*Matcher, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if src == nil {
		return nil, ErrDataSourceRequired
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &matcherOptions{}
	for _, opt := range opts {
		opt(options)
	}

	rankerInstance := options.ranker
	if rankerInstance == nil {
		if options.rankerSet {
			return nil, ErrRankerRequired
		}
		rankerInstance = strategy.NewFitRanker()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		if options.registry != nil {
			metricsCollector = metrics.NewPrometheus(options.registry, cfg.Metrics.Namespace)
		} else {
			metricsCollector = metrics.NewNop()
		}
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	return &Matcher{
		cfg:     *cfg,
		source:  src,
		ranker:  rankerInstance,
		hooks:   hooks.Fill(options.hooks),
		metrics: metricsCollector,
		logger:  loggerInstance,
	}, nil
}

// Match is a convenience wrapper running a Matcher over an in-memory dataset.
//
// Parameters:
//   - ctx: Context for cancellation
//   - cfg: Configuration (nil means DefaultConfig)
//   - dataset: Players and teams
//   - opts: Optional ranker, hooks, metrics and logger
//
// Returns:
//   - *Result: Final matching, also returned with ErrPartialMatching and ErrUnstableMatching
//   - error: Setup, validation, or run error
func Match(ctx context.Context, cfg *Config, dataset *Dataset, opts ...Option) (*Result, error) {
	if cfg == nil {
		defaults := DefaultConfig()
		cfg = &defaults
	}

	m, err := NewMatcher(cfg, source.NewStatic(dataset), opts...)
	if err != nil {
		return nil, err
	}

	return m.Run(ctx)
}

// Run executes the matching.
//
// The result is non-nil whenever the round loop completed. In that case the
// error is nil, a *PartialMatchError (errors.Is ErrPartialMatching) when
// some players exhausted their preferences, and/or ErrUnstableMatching when
// a blocking pair was found. Setup failures (loading, validation, ranking,
// cancellation) return a nil result.
//
// Parameters:
//   - ctx: Context for cancellation, checked between rounds
//
// Returns:
//   - *Result: Final rosters with RunID and Fingerprint set
//   - error: See above
func (m *Matcher) Run(ctx context.Context) (*Result, error) {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	if m.ran {
		return nil, ErrAlreadyRan
	}
	m.ran = true

	runID := uuid.NewString()
	log := m.runLogger(runID)
	res, err := m.run(ctx, runID, log)
	if err != nil {
		if hookErr := m.hooks.OnError(ctx, err); hookErr != nil {
			log.Warn("error hook failed", "error", hookErr)
		}
	}

	return res, err
}

// runLogger scopes the configured logger to runID when it supports With.
func (m *Matcher) runLogger(runID string) Logger {
	if l, ok := m.logger.(interface{ With(keysAndValues ...any) Logger }); ok {
		return l.With("run_id", runID)
	}

	return m.logger
}

func (m *Matcher) run(ctx context.Context, runID string, log Logger) (*Result, error) {
	start := time.Now()

	dataset, err := m.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	if dataset == nil {
		dataset = &Dataset{}
	}

	if err := validate.Dataset(dataset, m.cfg.DefaultCapacity); err != nil {
		log.Error("dataset rejected", "error", err)
		return nil, err
	}

	teams := m.resolveCapacities(dataset.Teams)

	rankings, err := strategy.RankAll(ctx, m.ranker, teams, dataset.Players, m.cfg.Parallelism, m.metrics)
	if err != nil {
		return nil, err
	}
	m.recordDiagnostics(dataset.Players, rankings)

	log.Info("matching started",
		"players", len(dataset.Players),
		"teams", len(teams),
		"ranking_duration", time.Since(start),
	)

	eng, err := engine.New(
		engine.Input{Players: dataset.Players, Teams: teams, Rankings: rankings},
		engine.WithLogger(log),
		engine.WithMetrics(m.metrics),
		engine.WithHooks(&m.hooks),
	)
	if err != nil {
		return nil, err
	}

	res, runErr := eng.Run(ctx)
	if res == nil {
		return nil, runErr
	}

	res.RunID = runID
	res.Fingerprint = hash.Fingerprint(res.Teams)

	if !m.cfg.SkipStabilityCheck {
		if pairs := stability.Check(dataset.Players, rankings, res); len(pairs) > 0 {
			log.Error("blocking pairs found", "count", len(pairs), "first", pairs[0].String())
			runErr = errors.Join(runErr, fmt.Errorf("%w: %d blocking pair(s), first %s", ErrUnstableMatching, len(pairs), pairs[0]))
		}
	}

	log.Info("matching finished",
		"rounds", len(res.Rounds),
		"matched", len(res.Assignment),
		"unmatched", len(res.Unmatched),
		"fingerprint", fmt.Sprintf("%016x", res.Fingerprint),
		"duration", time.Since(start),
	)

	return res, runErr
}

// resolveCapacities returns a copy of teams with the default capacity applied.
func (m *Matcher) resolveCapacities(teams []Team) []Team {
	out := slices.Clone(teams)
	for i := range out {
		if out[i].Capacity == 0 {
			out[i].Capacity = m.cfg.DefaultCapacity
		}
	}

	return out
}

func (m *Matcher) recordDiagnostics(players []Player, rankings map[string]*Ranking) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.preferences = make(map[string][]string, len(players))
	for _, p := range players {
		m.preferences[p.ID] = slices.Clone(p.Preferences)
	}
	m.rankings = maps.Clone(rankings)
}

// PlayerPreferences returns each player's preference list, most preferred
// first, as loaded by the last run. It returns nil before Run.
func (m *Matcher) PlayerPreferences() map[string][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.preferences == nil {
		return nil
	}

	out := make(map[string][]string, len(m.preferences))
	for id, prefs := range m.preferences {
		out[id] = slices.Clone(prefs)
	}

	return out
}

// TeamRankings returns each team's ranking of players as computed by the
// last run. Rankings are immutable. It returns nil before Run.
func (m *Matcher) TeamRankings() map[string]*Ranking {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.rankings == nil {
		return nil
	}

	return maps.Clone(m.rankings)
}
