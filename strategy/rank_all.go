package strategy

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/philipjlin/TeamMatching/types"
)

// RankAll computes the ranking of every team.
//
// Teams are ranked concurrently, at most parallelism at a time. This is safe
// because each team's ranking depends only on its own weights and the shared
// read-only player slice, and every goroutine writes a distinct result slot.
//
// Parameters:
//   - ctx: Context for cancellation
//   - ranker: Ranker to apply
//   - teams: Teams to rank (IDs must be unique)
//   - players: Players to rank
//   - parallelism: Maximum concurrent rankings (values < 1 mean 1)
//   - metrics: Optional collector for per-team durations (may be nil)
//
// Returns:
//   - map[string]*types.Ranking: Ranking per team ID
//   - error: Context error or ErrDuplicateTeam
func RankAll(
	ctx context.Context,
	ranker types.Ranker,
	teams []types.Team,
	players []types.Player,
	parallelism int,
	metrics types.RankingMetrics,
) (map[string]*types.Ranking, error) {
	seen := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTeam, t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	if parallelism < 1 {
		parallelism = 1
	}

	rankings := make([]*types.Ranking, len(teams))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, team := range teams {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			rankings[i] = ranker.Rank(team, players)
			if metrics != nil {
				metrics.RecordRankingDuration(team.ID, time.Since(start).Seconds())
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking teams: %w", err)
	}

	out := make(map[string]*types.Ranking, len(teams))
	for i, team := range teams {
		out[team.ID] = rankings[i]
	}

	return out, nil
}
