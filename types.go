package teammatching

import "github.com/philipjlin/TeamMatching/types"

// Re-export types from the types package.
//
// Internal packages depend on types rather than the root package, which
// avoids import cycles while still offering teammatching.Player,
// teammatching.Result, and so on to callers.
type (
	Attributes        = types.Attributes
	Player            = types.Player
	Team              = types.Team
	Dataset           = types.Dataset
	PlayerState       = types.PlayerState
	Ranking           = types.Ranking
	RankEntry         = types.RankEntry
	Outcome           = types.Outcome
	Proposal          = types.Proposal
	RoundReport       = types.RoundReport
	TeamResult        = types.TeamResult
	Result            = types.Result
	ValidationError   = types.ValidationError
	PartialMatchError = types.PartialMatchError
)

// Re-export interfaces from the types package for convenience.
type (
	Ranker           = types.Ranker
	DataSource       = types.DataSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export constants from the types package.
const (
	PlayerFree      = types.PlayerFree
	PlayerMatched   = types.PlayerMatched
	PlayerExhausted = types.PlayerExhausted

	OutcomeAdmitted  = types.OutcomeAdmitted
	OutcomeDisplaced = types.OutcomeDisplaced
	OutcomeRejected  = types.OutcomeRejected
)
