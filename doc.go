// Package teammatching assigns players to capacity-limited teams with
// player-proposing deferred acceptance.
//
// Every player ranks all teams. Every team ranks all players by fit, the
// dot product of the team's strategy weights and the player's skills.
// Players propose to teams in preference order; a full team keeps the
// best-fitting players and frees the worst. The resulting matching is
// stable: no player and team would both rather be matched together.
//
// # Quick Start
//
//	import (
//	    "github.com/philipjlin/TeamMatching"
//	    "github.com/philipjlin/TeamMatching/source"
//	)
//
//	cfg := teammatching.DefaultConfig()
//	src, err := source.NewFile("league.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matcher, err := teammatching.NewMatcher(&cfg, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := matcher.Run(ctx)
//	if errors.Is(err, teammatching.ErrPartialMatching) {
//	    log.Printf("unmatched: %v", result.Unmatched)
//	}
//
// # Conventions
//
//   - Team rankings are ascending by fit: rank 0 is the worst fit
//   - Equal fits prefer the lexically smaller player ID
//   - Players act in ascending ID order within a round
//   - A player freed during a round proposes again in the next round
//
// # Data Sources
//
// Datasets come from a DataSource. The source package provides an
// in-memory Static source and a File source reading text, YAML or JSON
// (optionally zstd-compressed).
//
// See cmd/teammatch for a command-line front end.
package teammatching
