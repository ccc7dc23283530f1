package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the teammatching library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Matcher errors - Public API errors returned by the Matcher.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDataSourceRequired is returned when the data source is nil.
	ErrDataSourceRequired = errors.New("data source is required")

	// ErrRankerRequired is returned when a nil ranker is supplied.
	ErrRankerRequired = errors.New("ranker is required")
)

// Input errors - Setup-time violations; no matching round runs.
var (
	// ErrInvalidInput is returned when players or teams violate an input invariant.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownFormat is returned when a dataset file has an unsupported format.
	ErrUnknownFormat = errors.New("unknown dataset format")
)

// Run errors - Conditions discovered while the round loop executes.
var (
	// ErrPartialMatching is returned alongside a partial result when players
	// exhausted their preference lists without being matched.
	ErrPartialMatching = errors.New("partial matching")

	// ErrCapacityInfeasible indicates total team capacity is below the player count.
	ErrCapacityInfeasible = errors.New("total capacity below player count")

	// ErrUnstableMatching is returned when the final matching has a blocking pair.
	ErrUnstableMatching = errors.New("unstable matching")
)

// Record kinds used in ValidationError.
const (
	KindPlayer = "player"
	KindTeam   = "team"
)

// ValidationError describes a single input invariant violation.
type ValidationError struct {
	// Kind is the record kind ("player" or "team").
	Kind string

	// ID is the offending record's ID (may be empty when the ID itself is missing).
	ID string

	// Index is the record's position in its input slice.
	Index int

	// Field names the violating field.
	Field string

	// Reason describes the violated invariant.
	Reason string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q (index %d): %s: %s", e.Kind, e.ID, e.Index, e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// PartialMatchError annotates a partial result with the unresolved players.
type PartialMatchError struct {
	// Unmatched lists the players that exhausted their preference lists.
	Unmatched []string

	// Infeasible is true when total capacity was below the player count.
	Infeasible bool
}

// Error implements error.
func (e *PartialMatchError) Error() string {
	msg := fmt.Sprintf("%s: %d unmatched player(s): %s", ErrPartialMatching, len(e.Unmatched), strings.Join(e.Unmatched, ", "))
	if e.Infeasible {
		msg += " (" + ErrCapacityInfeasible.Error() + ")"
	}

	return msg
}

// Is matches ErrPartialMatching, and ErrCapacityInfeasible for infeasible runs.
func (e *PartialMatchError) Is(target error) bool {
	if target == ErrPartialMatching {
		return true
	}

	return e.Infeasible && target == ErrCapacityInfeasible
}
