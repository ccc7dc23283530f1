// Package validate checks matching input against the record invariants.
//
// Validation runs before any ranking or matching work. Every violation is
// reported as a *types.ValidationError; all violations of a dataset are
// joined into a single error so callers see the complete list at once.
package validate

import (
	"errors"
	"fmt"

	"github.com/philipjlin/TeamMatching/types"
)

var attributeNames = [types.NumAttributes]string{"attack", "defense", "intelligence", "resourceProduction"}

// Dataset validates players and teams.
//
// Checked invariants:
//   - IDs are non-empty and unique within their kind
//   - Player skills are non-negative
//   - Skills and weights stay within ±types.MaxAttributeValue
//   - Team capacity is not negative, and resolves to a positive value
//     once defaultCapacity is applied to zero capacities
//   - Every preference list is a permutation of the team ID set
//
// Parameters:
//   - ds: Dataset to check
//   - defaultCapacity: Capacity applied to teams declaring zero
//
// Returns:
//   - error: nil when valid, otherwise errors.Join of *types.ValidationError
func Dataset(ds *types.Dataset, defaultCapacity int) error {
	if ds == nil {
		return fmt.Errorf("%w: dataset is nil", types.ErrInvalidInput)
	}

	var errs []error
	errs = append(errs, Teams(ds.Teams, defaultCapacity)...)
	errs = append(errs, Players(ds.Players, ds.Teams)...)

	return errors.Join(errs...)
}

// Teams validates team records.
func Teams(teams []types.Team, defaultCapacity int) []error {
	var errs []error
	seen := make(map[string]int, len(teams))

	for i, t := range teams {
		fail := func(field, format string, args ...any) {
			errs = append(errs, &types.ValidationError{
				Kind:   types.KindTeam,
				ID:     t.ID,
				Index:  i,
				Field:  field,
				Reason: fmt.Sprintf(format, args...),
			})
		}

		if t.ID == "" {
			fail("id", "must not be empty")
		} else if first, dup := seen[t.ID]; dup {
			fail("id", "duplicate of team at index %d", first)
		} else {
			seen[t.ID] = i
		}

		for k, v := range t.Weights.Vector() {
			if v > types.MaxAttributeValue || v < -types.MaxAttributeValue {
				fail("weights."+attributeNames[k], "magnitude exceeds %d, got %d", types.MaxAttributeValue, v)
			}
		}

		switch {
		case t.Capacity < 0:
			fail("capacity", "must not be negative, got %d", t.Capacity)
		case t.Capacity == 0 && defaultCapacity <= 0:
			fail("capacity", "unset and no positive default capacity configured")
		}
	}

	return errs
}

// Players validates player records against the team set.
func Players(players []types.Player, teams []types.Team) []error {
	var errs []error

	teamIDs := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		teamIDs[t.ID] = struct{}{}
	}

	seen := make(map[string]int, len(players))
	for i, p := range players {
		fail := func(field, format string, args ...any) {
			errs = append(errs, &types.ValidationError{
				Kind:   types.KindPlayer,
				ID:     p.ID,
				Index:  i,
				Field:  field,
				Reason: fmt.Sprintf(format, args...),
			})
		}

		if p.ID == "" {
			fail("id", "must not be empty")
		} else if first, dup := seen[p.ID]; dup {
			fail("id", "duplicate of player at index %d", first)
		} else {
			seen[p.ID] = i
		}

		for k, v := range p.Skills.Vector() {
			switch {
			case v < 0:
				fail("skills."+attributeNames[k], "must not be negative, got %d", v)
			case v > types.MaxAttributeValue:
				fail("skills."+attributeNames[k], "magnitude exceeds %d, got %d", types.MaxAttributeValue, v)
			}
		}

		for _, reason := range permutationViolations(p.Preferences, teams, teamIDs) {
			fail("preferences", "%s", reason)
		}
	}

	return errs
}

// permutationViolations lists why prefs is not a permutation of the team set.
func permutationViolations(prefs []string, teams []types.Team, teamIDs map[string]struct{}) []string {
	var reasons []string

	listed := make(map[string]struct{}, len(prefs))
	for _, id := range prefs {
		if _, ok := teamIDs[id]; !ok {
			reasons = append(reasons, fmt.Sprintf("unknown team %q", id))
			continue
		}
		if _, dup := listed[id]; dup {
			reasons = append(reasons, fmt.Sprintf("team %q listed more than once", id))
			continue
		}
		listed[id] = struct{}{}
	}

	// Iterate teams, not the map, so messages come out in input order.
	for _, t := range teams {
		if _, ok := listed[t.ID]; !ok {
			reasons = append(reasons, fmt.Sprintf("missing team %q", t.ID))
			listed[t.ID] = struct{}{}
		}
	}

	return reasons
}
