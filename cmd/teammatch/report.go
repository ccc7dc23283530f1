package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	teammatching "github.com/philipjlin/TeamMatching"
)

// report writes human-readable sections to an output stream.
type report struct {
	w io.Writer
}

func newReport(w io.Writer) *report {
	return &report{w: w}
}

func (r *report) heading(title string) {
	fmt.Fprintf(r.w, "\n== %s ==\n", title)
}

func (r *report) preferences(prefs map[string][]string) {
	r.heading("Player preferences")
	for _, id := range slices.Sorted(maps.Keys(prefs)) {
		fmt.Fprintf(r.w, "%-12s %s\n", id, strings.Join(prefs[id], " > "))
	}
}

func (r *report) rankings(rankings map[string]*teammatching.Ranking) {
	r.heading("Team rankings (best fit first)")
	for _, id := range slices.Sorted(maps.Keys(rankings)) {
		entries := rankings[id].Entries()
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[len(entries)-1-i] = fmt.Sprintf("%s(%d)", e.PlayerID, e.Fit)
		}
		fmt.Fprintf(r.w, "%-12s %s\n", id, strings.Join(parts, " "))
	}
}

// rounds traces every proposal and the roster snapshot taken after each round.
func (r *report) rounds(res *teammatching.Result) {
	r.heading("Rounds")
	for _, round := range res.Rounds {
		fmt.Fprintf(r.w, "round %d\n", round.Round)
		for _, p := range round.Proposals {
			switch p.Outcome {
			case teammatching.OutcomeDisplaced:
				fmt.Fprintf(r.w, "  %s -> %s: %s %s\n", p.PlayerID, p.TeamID, p.Outcome, p.Evicted)
			default:
				fmt.Fprintf(r.w, "  %s -> %s: %s\n", p.PlayerID, p.TeamID, p.Outcome)
			}
		}
		if len(round.Exhausted) > 0 {
			fmt.Fprintf(r.w, "  exhausted: %s\n", strings.Join(round.Exhausted, ", "))
		}
		for _, team := range res.Teams {
			fmt.Fprintf(r.w, "  %-10s [%s]\n", team.ID, strings.Join(round.Rosters[team.ID], ", "))
		}
		fmt.Fprintf(r.w, "  free: %d\n", round.FreeAfter)
	}
}

func (r *report) rosters(res *teammatching.Result) {
	r.heading("Rosters")
	for _, team := range res.Teams {
		fmt.Fprintf(r.w, "%s (%d/%d): %s\n", team.ID, len(team.Roster), team.Capacity, strings.Join(team.Roster, ", "))
		t := team.Totals
		fmt.Fprintf(r.w, "    attack=%d defense=%d intelligence=%d resourceProduction=%d total=%d\n",
			t.Attack, t.Defense, t.Intelligence, t.ResourceProduction, t.Total())
	}
	if len(res.Unmatched) > 0 {
		fmt.Fprintf(r.w, "unmatched: %s\n", strings.Join(res.Unmatched, ", "))
	}
}

func (r *report) summary(res *teammatching.Result) {
	r.heading("Summary")

	matched := len(res.Assignment)
	total := matched + len(res.Unmatched)
	proposals := 0
	for _, round := range res.Rounds {
		proposals += len(round.Proposals)
	}

	fmt.Fprintf(r.w, "matched %s of %s players into %s teams\n",
		humanize.Comma(int64(matched)), humanize.Comma(int64(total)), humanize.Comma(int64(len(res.Teams))))
	if len(res.Rounds) > 0 {
		fmt.Fprintf(r.w, "%s proposals, settled in the %s round\n",
			humanize.Comma(int64(proposals)), humanize.Ordinal(len(res.Rounds)))
	}
	if len(res.Underfilled) > 0 {
		fmt.Fprintf(r.w, "underfilled teams: %s\n", strings.Join(res.Underfilled, ", "))
	}
	if res.Infeasible {
		fmt.Fprintln(r.w, "total capacity is below the player count")
	}
	fmt.Fprintf(r.w, "run %s fingerprint %016x\n", res.RunID, res.Fingerprint)
}
