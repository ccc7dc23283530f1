package teammatching

import (
	"errors"

	"github.com/philipjlin/TeamMatching/types"
)

// Sentinel errors returned by the Matcher.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrDataSourceRequired is returned when the data source is nil.
	ErrDataSourceRequired = types.ErrDataSourceRequired

	// ErrRankerRequired is returned when WithRanker is given a nil ranker.
	ErrRankerRequired = types.ErrRankerRequired

	// ErrInvalidInput is returned when players or teams violate an input invariant.
	ErrInvalidInput = types.ErrInvalidInput

	// ErrUnknownFormat is returned when a dataset file has an unsupported format.
	ErrUnknownFormat = types.ErrUnknownFormat

	// ErrPartialMatching is returned alongside a partial result when players
	// exhausted their preferences.
	ErrPartialMatching = types.ErrPartialMatching

	// ErrCapacityInfeasible is matched by partial results whose total capacity is below the player count.
	ErrCapacityInfeasible = types.ErrCapacityInfeasible

	// ErrUnstableMatching is returned when the final matching has a blocking pair.
	ErrUnstableMatching = types.ErrUnstableMatching

	// ErrAlreadyRan is returned when Run is called twice on the same Matcher.
	ErrAlreadyRan = errors.New("matcher already ran")
)
