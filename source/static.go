package source

import (
	"context"
	"sync"

	"github.com/philipjlin/TeamMatching/types"
)

// Static implements a data source with a fixed in-memory dataset.
type Static struct {
	mu      sync.RWMutex
	dataset *types.Dataset
}

var _ types.DataSource = (*Static)(nil)

// NewStatic creates a new static data source.
//
// The dataset is copied, so later changes by the caller are not observed.
//
// Parameters:
//   - dataset: Players and teams (nil behaves as an empty dataset)
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(&types.Dataset{
//	    Teams:   []types.Team{{ID: "red", Weights: types.Attributes{Attack: 2}}},
//	    Players: []types.Player{{ID: "ann", Skills: types.Attributes{Attack: 5}, Preferences: []string{"red"}}},
//	})
//	matcher, err := teammatching.NewMatcher(&cfg, src)
func NewStatic(dataset *types.Dataset) *Static {
	return &Static{
		dataset: cloneOrEmpty(dataset),
	}
}

// Load returns a deep copy of the dataset.
//
// Returns:
//   - *types.Dataset: Copy of the fixed dataset
//   - error: Always nil (never fails)
func (s *Static) Load(_ context.Context) (*types.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dataset.Clone(), nil
}

// Update replaces the dataset returned by later Load calls.
//
// Parameters:
//   - dataset: New players and teams
func (s *Static) Update(dataset *types.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dataset = cloneOrEmpty(dataset)
}

func cloneOrEmpty(dataset *types.Dataset) *types.Dataset {
	if dataset == nil {
		return &types.Dataset{}
	}

	return dataset.Clone()
}
