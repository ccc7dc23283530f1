// Package hash computes reproducible digests of matching results.
package hash

import (
	"cmp"
	"encoding/binary"
	"slices"

	"github.com/zeebo/xxh3"

	"github.com/philipjlin/TeamMatching/types"
)

// DefaultSeed is the seed used by Fingerprint.
const DefaultSeed uint64 = 0x7465616d6d617463 // "teammatc"

// Fingerprint digests the final rosters of a result with DefaultSeed.
//
// Parameters:
//   - teams: Final team results in any order
//
// Returns:
//   - uint64: Digest that is equal for equal rosters
func Fingerprint(teams []types.TeamResult) uint64 {
	return FingerprintSeed(teams, DefaultSeed)
}

// FingerprintSeed digests the final rosters of a result.
//
// Teams are folded in ascending ID order; each team ID, its roster size and
// every roster member are folded in turn, earlier values seeding later ones,
// so no intermediate joined string is built. Roster order is significant.
//
// Parameters:
//   - teams: Final team results in any order
//   - seed: Initial hash seed
//
// Returns:
//   - uint64: Digest that is equal for equal rosters and seeds
//
// Example:
//
//	res.Fingerprint = hash.FingerprintSeed(res.Teams, 42)
func FingerprintSeed(teams []types.TeamResult, seed uint64) uint64 {
	order := make([]int, len(teams))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(teams[a].ID, teams[b].ID)
	})

	h := seed
	var nb [8]byte
	for _, i := range order {
		team := teams[i]
		h = xxh3.HashStringSeed(team.ID, h)

		binary.LittleEndian.PutUint64(nb[:], uint64(len(team.Roster))) //nolint:gosec
		h = xxh3.HashSeed(nb[:], h)

		for _, playerID := range team.Roster {
			h = xxh3.HashStringSeed(playerID, h)
		}
	}

	return h
}
