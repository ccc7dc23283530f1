// Package testing provides test utilities for the teammatching library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger writing to the test log
//   - RandomDataset: Reproducible random players and teams
//   - AssertMatchingInvariants: Capacity, uniqueness, no re-proposal and stability checks
//
// Example usage:
//
//	import (
//	    "testing"
//	    matchtest "github.com/philipjlin/TeamMatching/testing"
//	)
//
//	func TestLeague(t *testing.T) {
//	    ds := matchtest.RandomDataset(42, 30, []int{3, 3, 4})
//	    res, err := teammatching.Match(ctx, nil, ds, teammatching.WithLogger(matchtest.NewTestLogger(t)))
//	    // ...
//	}
package testing
