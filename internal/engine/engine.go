package engine

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/philipjlin/TeamMatching/types"
)

// ErrAlreadyRan is returned when Run is called twice on the same Engine.
var ErrAlreadyRan = errors.New("engine already ran")

// Input is the validated input of a run.
type Input struct {
	// Players must have unique IDs and complete preference lists.
	Players []types.Player

	// Teams must have unique IDs and a resolved, positive capacity.
	Teams []types.Team

	// Rankings holds one ranking per team ID covering every player.
	Rankings map[string]*types.Ranking
}

type playerState struct {
	player types.Player
	cursor int
	state  types.PlayerState
	team   int // index into Engine.teams, -1 when unassigned
}

type teamState struct {
	team    types.Team
	ranking *types.Ranking
	roster  []int // indices into Engine.players
}

// Engine runs the matching round loop over an exclusively owned copy of its input.
type Engine struct {
	players   []playerState
	teams     []teamState
	teamIndex map[string]int

	logger  types.Logger
	metrics types.EngineMetrics
	hooks   types.Hooks

	ran bool
}

// New creates an engine for a single run.
//
// Players are visited in ascending ID order; teams are reported in ascending
// ID order. The input is deep-copied, so the caller's records are never
// mutated.
//
// Parameters:
//   - in: Validated input
//   - opts: Optional logger, metrics and hooks
//
// Returns:
//   - *Engine: Engine ready to Run
//   - error: types.ErrInvalidInput when capacities or rankings are inconsistent
func New(in Input, opts ...Option) (*Engine, error) {
	e := &Engine{
		players:   make([]playerState, len(in.Players)),
		teams:     make([]teamState, len(in.Teams)),
		teamIndex: make(map[string]int, len(in.Teams)),
	}
	defaults(e)
	for _, opt := range opts {
		opt(e)
	}

	for i, p := range in.Players {
		e.players[i] = playerState{player: p.Clone(), state: types.PlayerFree, team: -1}
	}
	slices.SortFunc(e.players, func(a, b playerState) int {
		return cmp.Compare(a.player.ID, b.player.ID)
	})

	sortedTeams := slices.Clone(in.Teams)
	slices.SortFunc(sortedTeams, func(a, b types.Team) int {
		return cmp.Compare(a.ID, b.ID)
	})

	for i, t := range sortedTeams {
		if t.Capacity <= 0 {
			return nil, fmt.Errorf("%w: team %q has non-positive capacity %d", types.ErrInvalidInput, t.ID, t.Capacity)
		}
		ranking := in.Rankings[t.ID]
		if ranking == nil {
			return nil, fmt.Errorf("%w: no ranking for team %q", types.ErrInvalidInput, t.ID)
		}
		if ranking.Len() != len(e.players) {
			return nil, fmt.Errorf("%w: ranking of team %q has %d players, want %d",
				types.ErrInvalidInput, t.ID, ranking.Len(), len(e.players))
		}
		for _, ps := range e.players {
			if _, ok := ranking.RankOf(ps.player.ID); !ok {
				return nil, fmt.Errorf("%w: ranking of team %q lacks player %q", types.ErrInvalidInput, t.ID, ps.player.ID)
			}
		}

		e.teams[i] = teamState{team: t, ranking: ranking, roster: make([]int, 0, t.Capacity)}
		e.teamIndex[t.ID] = i
	}

	for _, ps := range e.players {
		for _, id := range ps.player.Preferences {
			if _, ok := e.teamIndex[id]; !ok {
				return nil, fmt.Errorf("%w: player %q prefers unknown team %q", types.ErrInvalidInput, ps.player.ID, id)
			}
		}
	}

	return e, nil
}

// Run executes rounds until no player is free.
//
// When players exhaust their preference lists the partial result is returned
// together with a *types.PartialMatchError. A cancelled context is checked
// at round boundaries and aborts the run without a result.
//
// Run may be called once per Engine.
//
// Parameters:
//   - ctx: Context checked between rounds
//
// Returns:
//   - *types.Result: Final rosters and round reports (RunID and Fingerprint unset)
//   - error: nil, *types.PartialMatchError, or a wrapped context error
func (e *Engine) Run(ctx context.Context) (*types.Result, error) {
	if e.ran {
		return nil, ErrAlreadyRan
	}
	e.ran = true

	start := time.Now()
	infeasible := e.totalCapacity() < len(e.players)
	if infeasible {
		e.logger.Warn("total capacity below player count, matching will be partial",
			"capacity", e.totalCapacity(), "players", len(e.players))
	}

	var rounds []types.RoundReport
	for free := e.countFree(); free > 0; free = e.countFree() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("matching aborted after %d round(s): %w", len(rounds), err)
		}

		report := e.runRound(len(rounds) + 1)
		rounds = append(rounds, report)

		e.metrics.RecordRound(report.Round, report.FreeAfter)
		e.logger.Info("round complete",
			"round", report.Round,
			"proposals", len(report.Proposals),
			"exhausted", len(report.Exhausted),
			"free", report.FreeAfter,
		)
		if err := e.hooks.OnRoundComplete(ctx, report); err != nil {
			e.logger.Warn("round hook failed", "round", report.Round, "error", err)
		}
	}

	result := e.result(rounds, infeasible)

	e.metrics.RecordRun(time.Since(start).Seconds(), len(rounds), result.Complete())
	e.metrics.RecordUnmatched(len(result.Unmatched))

	if !result.Complete() {
		return result, &types.PartialMatchError{
			Unmatched:  slices.Clone(result.Unmatched),
			Infeasible: infeasible,
		}
	}

	return result, nil
}

// runRound lets every player free at round start act once.
func (e *Engine) runRound(round int) types.RoundReport {
	report := types.RoundReport{Round: round}

	var proposers []int
	for i := range e.players {
		if e.players[i].state == types.PlayerFree {
			proposers = append(proposers, i)
		}
	}

	for _, pi := range proposers {
		ps := &e.players[pi]
		if ps.cursor >= len(ps.player.Preferences) {
			ps.state = types.PlayerExhausted
			report.Exhausted = append(report.Exhausted, ps.player.ID)
			e.logger.Debug("preferences exhausted", "round", round, "player", ps.player.ID)

			continue
		}

		ti := e.teamIndex[ps.player.Preferences[ps.cursor]]
		ps.cursor++

		proposal := e.propose(pi, ti)
		report.Proposals = append(report.Proposals, proposal)

		e.metrics.RecordProposal(proposal.Outcome)
		e.logger.Debug("proposal",
			"round", round,
			"player", proposal.PlayerID,
			"team", proposal.TeamID,
			"outcome", proposal.Outcome,
			"evicted", proposal.Evicted,
		)
	}

	report.FreeAfter = e.countFree()
	report.Rosters = make(map[string][]string, len(e.teams))
	for i := range e.teams {
		report.Rosters[e.teams[i].team.ID] = e.rosterIDs(i)
	}

	return report
}

// propose applies one proposal of player pi to team ti.
func (e *Engine) propose(pi, ti int) types.Proposal {
	ps := &e.players[pi]
	ts := &e.teams[ti]
	proposal := types.Proposal{PlayerID: ps.player.ID, TeamID: ts.team.ID}

	if len(ts.roster) < ts.team.Capacity {
		ts.roster = append(ts.roster, pi)
		ps.state, ps.team = types.PlayerMatched, ti
		proposal.Outcome = types.OutcomeAdmitted

		return proposal
	}

	candidates := make([]string, 0, len(ts.roster)+1)
	for _, idx := range ts.roster {
		candidates = append(candidates, e.players[idx].player.ID)
	}
	candidates = append(candidates, ps.player.ID)

	worst := leastPreferred(ts.ranking, candidates)
	if worst == len(ts.roster) {
		proposal.Outcome = types.OutcomeRejected
		return proposal
	}

	evicted := &e.players[ts.roster[worst]]
	evicted.state, evicted.team = types.PlayerFree, -1

	ts.roster[worst] = pi
	ps.state, ps.team = types.PlayerMatched, ti

	proposal.Outcome = types.OutcomeDisplaced
	proposal.Evicted = evicted.player.ID

	return proposal
}

func (e *Engine) countFree() int {
	n := 0
	for i := range e.players {
		if e.players[i].state == types.PlayerFree {
			n++
		}
	}

	return n
}

func (e *Engine) totalCapacity() int {
	total := 0
	for i := range e.teams {
		total += e.teams[i].team.Capacity
	}

	return total
}

// rosterIDs returns the roster of team ti ordered best fit first.
func (e *Engine) rosterIDs(ti int) []string {
	ts := &e.teams[ti]

	ids := make([]string, len(ts.roster))
	for i, idx := range ts.roster {
		ids[i] = e.players[idx].player.ID
	}
	slices.SortFunc(ids, func(a, b string) int {
		ra, _ := ts.ranking.RankOf(a)
		rb, _ := ts.ranking.RankOf(b)

		return cmp.Compare(rb, ra)
	})

	return ids
}

func (e *Engine) result(rounds []types.RoundReport, infeasible bool) *types.Result {
	res := &types.Result{
		Rounds:     rounds,
		Teams:      make([]types.TeamResult, len(e.teams)),
		Assignment: make(map[string]string, len(e.players)),
		Infeasible: infeasible,
	}

	for i := range e.teams {
		ts := &e.teams[i]

		var totals types.Attributes
		for _, idx := range ts.roster {
			totals = totals.Add(e.players[idx].player.Skills)
		}

		res.Teams[i] = types.TeamResult{
			ID:       ts.team.ID,
			Capacity: ts.team.Capacity,
			Roster:   e.rosterIDs(i),
			Totals:   totals,
		}
		if len(ts.roster) < ts.team.Capacity {
			res.Underfilled = append(res.Underfilled, ts.team.ID)
		}
	}

	for i := range e.players {
		ps := &e.players[i]
		switch ps.state {
		case types.PlayerMatched:
			res.Assignment[ps.player.ID] = e.teams[ps.team].team.ID
		case types.PlayerExhausted:
			res.Unmatched = append(res.Unmatched, ps.player.ID)
		}
	}

	return res
}
