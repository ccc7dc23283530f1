package strategy

import "errors"

// ErrDuplicateTeam indicates RankAll received two teams with the same ID.
var ErrDuplicateTeam = errors.New("duplicate team ID")
