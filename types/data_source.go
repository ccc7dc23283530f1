package types

import "context"

// DataSource loads the players and teams of a matching run.
//
// Implementations can read various backends:
//   - Static: fixed in-memory dataset for tests and embedding
//   - File: text, YAML or JSON datasets, optionally zstd-compressed
//   - Custom: any loader producing the records
//
// The Matcher calls Load exactly once per run, before validation.
type DataSource interface {
	// Load returns the dataset.
	//
	// Implementations should return a dataset the caller may keep; the
	// matcher never mutates it.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - *Dataset: Loaded players and teams
	//   - error: Load error (nil on success)
	Load(ctx context.Context) (*Dataset, error)
}
